package shopping

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// Consolidated list for the current selection
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	entries, err := h.service.List(
		c.Request.Context(),
		c.GetString("userID"),
		c.Query("lang"),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": entries})
}

// --------------------------------------------------
// Toggle "I already have this"
// --------------------------------------------------
func (h *Handler) ToggleOwned(c *gin.Context) {
	var req struct {
		Name    string `json:"name"`
		IsOwned bool   `json:"is_owned"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	err := h.service.ToggleOwned(
		c.Request.Context(),
		c.GetString("userID"),
		req.Name,
		req.IsOwned,
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "ownership updated"})
}

// --------------------------------------------------
// Plain-text export for share / clipboard
// --------------------------------------------------
func (h *Handler) Export(c *gin.Context) {
	entries, err := h.service.List(
		c.Request.Context(),
		c.GetString("userID"),
		c.Query("lang"),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	text := ExportText("Shopping List", entries, time.Now())
	c.String(http.StatusOK, text)
}
