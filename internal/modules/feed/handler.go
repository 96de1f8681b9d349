package feed

import (
	"net/http"
	"time"

	"courtwatch/internal/modules/monitor"
	"courtwatch/internal/pkg/response"
	"courtwatch/internal/pkg/slotclock"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/feeds/availability", h.IngestAvailability)
	rg.POST("/feeds/weather", h.IngestWeather)
	rg.GET("/venues/:id/availability", h.GetAvailability)
}

func (h *Handler) IngestAvailability(c *gin.Context) {
	var req availabilityUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil || !slotclock.ValidSlot(req.TimeSlot) {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid date or time slot")
		return
	}

	h.store.SetAvailability(req.VenueID, date, req.TimeSlot, req.Courts)
	response.Success(c, http.StatusAccepted, gin.H{"ingested": true})
}

func (h *Handler) IngestWeather(c *gin.Context) {
	var req weatherUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil || !slotclock.ValidSlot(req.TimeSlot) {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid date or time slot")
		return
	}

	h.store.SetObservation(req.VenueID, date, req.TimeSlot, monitor.Observation{
		Temp:            req.Temp,
		RainProbability: req.RainProbability,
		HoursSinceRain:  req.HoursSinceRain,
		WindSpeed:       req.WindSpeed,
	})
	response.Success(c, http.StatusAccepted, gin.H{"ingested": true})
}

// GetAvailability returns the free courts and weather for every slot of
// one venue day, for display.
func (h *Handler) GetAvailability(c *gin.Context) {
	venueID := c.Param("id")
	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing or invalid date")
		return
	}

	type slotView struct {
		TimeSlot string               `json:"time_slot"`
		Courts   []int                `json:"courts"`
		Weather  *monitor.Observation `json:"weather,omitempty"`
		Price    int                  `json:"price"`
	}

	slots := make([]slotView, 0, len(slotclock.SlotsForDay()))
	for _, slot := range slotclock.SlotsForDay() {
		slots = append(slots, slotView{
			TimeSlot: slot,
			Courts:   h.store.AvailableCourts(venueID, date, slot),
			Weather:  h.store.Observation(venueID, date, slot),
			Price:    slotclock.Price(slot),
		})
	}

	response.Success(c, http.StatusOK, gin.H{
		"venue_id": venueID,
		"date":     c.Query("date"),
		"slots":    slots,
	})
}
