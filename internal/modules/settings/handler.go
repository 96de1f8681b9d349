package settings

import (
	"net/http"

	"courtwatch/internal/domain"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/settings/auto-cancel", h.Get)
	rg.PUT("/settings/auto-cancel", h.Update)
	rg.POST("/settings/auto-cancel/reset", h.Reset)
}

func (h *Handler) Get(c *gin.Context) {
	s, err := h.service.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": gin.H{"code": "INTERNAL", "message": "Failed to load settings"}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": s})
}

func (h *Handler) Update(c *gin.Context) {
	var in domain.AutoCancelSettings
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": gin.H{"code": "INVALID_REQUEST", "message": "Invalid request body"}})
		return
	}

	s, err := h.service.Update(c.Request.Context(), in)
	if err != nil {
		if err == ErrValidation {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": gin.H{"code": "VALIDATION_ERROR", "message": "Invalid settings"}})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": gin.H{"code": "INTERNAL", "message": "Failed to save settings"}})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": s})
}

func (h *Handler) Reset(c *gin.Context) {
	s, err := h.service.Reset(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": gin.H{"code": "INTERNAL", "message": "Failed to reset settings"}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": s})
}
