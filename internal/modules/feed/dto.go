package feed

type availabilityUpdate struct {
	VenueID  string `json:"venue_id" binding:"required"`
	Date     string `json:"date" binding:"required"`
	TimeSlot string `json:"time_slot" binding:"required"`
	Courts   []int  `json:"courts"`
}

type weatherUpdate struct {
	VenueID  string `json:"venue_id" binding:"required"`
	Date     string `json:"date" binding:"required"`
	TimeSlot string `json:"time_slot" binding:"required"`

	Temp            float64  `json:"temp"`
	RainProbability float64  `json:"rain_probability"`
	HoursSinceRain  *float64 `json:"hours_since_rain"`
	WindSpeed       *float64 `json:"wind_speed"`
}
