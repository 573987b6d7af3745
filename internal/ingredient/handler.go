package ingredient

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// List owned ingredients
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	userID := c.GetString("userID")

	owned, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if owned == nil {
		owned = []OwnedIngredient{}
	}

	c.JSON(http.StatusOK, gin.H{"ingredients": owned})
}

// --------------------------------------------------
// Declare an owned ingredient
// --------------------------------------------------
func (h *Handler) Add(c *gin.Context) {
	userID := c.GetString("userID")

	var req struct {
		Name     string  `json:"name"`
		Quantity float64 `json:"quantity"`
		Unit     string  `json:"unit"`
		Category string  `json:"category"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	owned, err := h.service.Add(
		c.Request.Context(),
		userID,
		req.Name,
		req.Quantity,
		req.Unit,
		req.Category,
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, owned)
}

// --------------------------------------------------
// Remove one / all owned ingredients
// --------------------------------------------------
func (h *Handler) Remove(c *gin.Context) {
	userID := c.GetString("userID")

	if err := h.service.Remove(c.Request.Context(), userID, c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "ingredient removed"})
}

func (h *Handler) Clear(c *gin.Context) {
	userID := c.GetString("userID")

	if err := h.service.Clear(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "ingredients cleared"})
}
