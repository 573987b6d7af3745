package dish

import (
	"errors"
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
// Browse the catalog
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	dishes, err := h.service.Catalog(c.Request.Context(), c.Query("lang"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if dishes == nil {
		dishes = []Dish{}
	}

	c.JSON(http.StatusOK, gin.H{"dishes": dishes})
}

func (h *Handler) Get(c *gin.Context) {
	d, err := h.service.Get(c.Request.Context(), c.Query("lang"), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "dish not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, d)
}

// --------------------------------------------------
// Admin uploads a dish image
// --------------------------------------------------
func (h *Handler) UploadImage(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image is required"})
		return
	}
	defer file.Close()

	url, err := h.service.UploadImage(
		c.Request.Context(),
		c.Param("id"),
		file,
		header.Filename,
	)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "dish not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"image_url": url})
}
