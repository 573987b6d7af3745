package mealplan

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kamel73-web/KingMenu/internal/dish"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type entryRequest struct {
	Date     string    `json:"date"`
	MealType MealType  `json:"mealType"`
	Dish     dish.Dish `json:"dish"`
	Servings int       `json:"servings"`
	Notes    string    `json:"notes"`
}

// --------------------------------------------------
// Schedule a dish
// --------------------------------------------------
func (h *Handler) Schedule(c *gin.Context) {
	var req entryRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	entry, err := h.service.Schedule(
		c.Request.Context(),
		c.GetString("userID"),
		req.Date,
		req.MealType,
		req.Dish,
		req.Servings,
		req.Notes,
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// --------------------------------------------------
// Whole-record update
// --------------------------------------------------
func (h *Handler) Update(c *gin.Context) {
	var req entryRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	entry := &Entry{
		ID:       c.Param("id"),
		UserID:   c.GetString("userID"),
		Date:     req.Date,
		MealType: req.MealType,
		Dish:     req.Dish,
		Servings: req.Servings,
		Notes:    req.Notes,
	}

	if err := h.service.Update(c.Request.Context(), entry); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entry)
}

// --------------------------------------------------
// Remove from the plan
// --------------------------------------------------
func (h *Handler) Remove(c *gin.Context) {
	err := h.service.Remove(c.Request.Context(), c.GetString("userID"), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "entry removed"})
}

// --------------------------------------------------
// Flat entry listing
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	entries, err := h.service.Entries(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if entries == nil {
		entries = []Entry{}
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// --------------------------------------------------
// Month grid (?month=YYYY-MM, defaults to now)
// --------------------------------------------------
func (h *Handler) Calendar(c *gin.Context) {
	anchor := time.Now().UTC()

	if month := c.Query("month"); month != "" {
		parsed, err := time.Parse("2006-01", month)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "month must be YYYY-MM"})
			return
		}
		anchor = parsed
	}

	days, err := h.service.MonthGrid(c.Request.Context(), c.GetString("userID"), anchor)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"days": days})
}

// --------------------------------------------------
// Date-range buckets for export (?start=&end=)
// --------------------------------------------------
func (h *Handler) Range(c *gin.Context) {
	start, err := time.Parse(dateLayout, c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start must be YYYY-MM-DD"})
		return
	}

	end, err := time.Parse(dateLayout, c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end must be YYYY-MM-DD"})
		return
	}

	grouped, err := h.service.Range(c.Request.Context(), c.GetString("userID"), start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"days": grouped})
}
