package booking

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.Create)
	rg.GET("/bookings", h.List)
	rg.GET("/bookings/:id", h.Get)
	rg.GET("/bookings/groups/:group_id", h.Group)
	rg.POST("/bookings/:id/cancel", h.Cancel)
	rg.DELETE("/bookings/:id", h.Delete)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": gin.H{"code": "INVALID_REQUEST", "message": "Invalid request body"}})
		return
	}

	userID := c.GetInt64("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": gin.H{"code": "UNAUTHORIZED", "message": "Authentication required"}})
		return
	}

	bookings, err := h.service.Classify(c.Request.Context(), userID, req)
	if err != nil {
		switch err {
		case ErrValidation:
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": gin.H{"code": "VALIDATION_ERROR", "message": "Invalid booking request"}})
		case ErrVenueNotFound:
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": gin.H{"code": "VENUE_NOT_FOUND", "message": "Venue not found"}})
		case ErrSlotInPast:
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": gin.H{"code": "SLOT_IN_PAST", "message": "Cannot book a slot in the past"}})
		case ErrInvalidRecurrence:
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": gin.H{"code": "INVALID_RECURRENCE", "message": "Invalid recurrence specification"}})
		case ErrNoUsableAccount:
			c.JSON(http.StatusConflict, gin.H{"success": false, "error": gin.H{"code": "NO_USABLE_ACCOUNT", "message": "No connected account available to book with"}})
		case ErrOverbooking:
			c.JSON(http.StatusConflict, gin.H{"success": false, "error": gin.H{"code": "BOOKING_CONFLICT", "message": "Court is already booked for the selected slot"}})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": gin.H{"code": "INTERNAL", "message": "Failed to create booking"}})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": gin.H{"bookings": bookings}})
}

func (h *Handler) List(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": gin.H{"code": "UNAUTHORIZED", "message": "Authentication required"}})
		return
	}

	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))

	bookings, err := h.service.ListMine(c.Request.Context(), userID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": gin.H{"code": "INTERNAL", "message": "Failed to list bookings"}})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": bookings})
}

func (h *Handler) Get(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": gin.H{"code": "UNAUTHORIZED", "message": "Authentication required"}})
		return
	}

	b, err := h.service.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if err == ErrUnknownBooking {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": gin.H{"code": "NOT_FOUND", "message": "Booking not found"}})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": gin.H{"code": "INTERNAL", "message": "Failed to load booking"}})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": b})
}

func (h *Handler) Group(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": gin.H{"code": "UNAUTHORIZED", "message": "Authentication required"}})
		return
	}

	bookings, err := h.service.Group(c.Request.Context(), userID, c.Param("group_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": gin.H{"code": "INTERNAL", "message": "Failed to load booking group"}})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": bookings})
}

func (h *Handler) Cancel(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": gin.H{"code": "UNAUTHORIZED", "message": "Authentication required"}})
		return
	}

	b, err := h.service.Cancel(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		switch err {
		case ErrUnknownBooking:
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": gin.H{"code": "NOT_FOUND", "message": "Booking not found"}})
		case ErrAlreadyCancelled:
			c.JSON(http.StatusConflict, gin.H{"success": false, "error": gin.H{"code": "ALREADY_CANCELLED", "message": "Booking is already cancelled"}})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": gin.H{"code": "INTERNAL", "message": "Failed to cancel booking"}})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": b})
}

func (h *Handler) Delete(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": gin.H{"code": "UNAUTHORIZED", "message": "Authentication required"}})
		return
	}

	if err := h.service.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		if err == ErrUnknownBooking {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": gin.H{"code": "NOT_FOUND", "message": "Booking not found"}})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": gin.H{"code": "INTERNAL", "message": "Failed to delete booking"}})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"deleted": true}})
}
