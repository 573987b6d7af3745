package match

import (
	"net/http"

	"github.com/kamel73-web/KingMenu/internal/ingredient"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// Match against ingredients supplied in the request
// --------------------------------------------------
func (h *Handler) MatchInline(c *gin.Context) {
	var req struct {
		Ingredients []ingredient.OwnedIngredient `json:"ingredients"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	matches, err := h.service.MatchInline(
		c.Request.Context(),
		c.Query("lang"),
		req.Ingredients,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"matches": matches})
}

// --------------------------------------------------
// Match against the caller's stored ingredients
// --------------------------------------------------
func (h *Handler) MatchStored(c *gin.Context) {
	matches, err := h.service.MatchStored(
		c.Request.Context(),
		c.Query("lang"),
		c.GetString("userID"),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"matches": matches})
}
