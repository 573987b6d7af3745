package selection

import (
	"errors"
	"net/http"

	"github.com/kamel73-web/KingMenu/internal/dish"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// Current selection
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	dishes, err := h.service.SelectedDishes(
		c.Request.Context(),
		c.GetString("userID"),
		c.Query("lang"),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"dishes": dishes})
}

// --------------------------------------------------
// Select a dish
// --------------------------------------------------
func (h *Handler) Select(c *gin.Context) {
	var req struct {
		DishID string `json:"dish_id"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	err := h.service.Select(
		c.Request.Context(),
		c.GetString("userID"),
		c.Query("lang"),
		req.DishID,
	)
	if err != nil {
		if errors.Is(err, dish.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "dish not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "dish selected"})
}

// --------------------------------------------------
// Deselect / clear
// --------------------------------------------------
func (h *Handler) Deselect(c *gin.Context) {
	err := h.service.Deselect(
		c.Request.Context(),
		c.GetString("userID"),
		c.Param("id"),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "dish deselected"})
}

func (h *Handler) Clear(c *gin.Context) {
	if err := h.service.Clear(c.Request.Context(), c.GetString("userID")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "selection cleared"})
}
