package domain

// AutoCancelSettings is the global automation policy. It only applies
// to bookings that opted in via AutoCancelEnabled / AutoRebookEnabled.
// The monitor engine reads one snapshot per tick; nothing holds it as
// ambient state.
type AutoCancelSettings struct {
	WeatherEnabled bool `json:"weather_enabled"`

	MinTempEnabled bool    `json:"min_temp_enabled"`
	MinTemp        float64 `json:"min_temp"`
	MaxTempEnabled bool    `json:"max_temp_enabled"`
	MaxTemp        float64 `json:"max_temp"`

	RainProbabilityEnabled bool    `json:"rain_probability_enabled"`
	RainProbability        float64 `json:"rain_probability"`

	// Cancel when it rained within the last RecentRainHours (wet courts).
	RecentRainEnabled bool    `json:"recent_rain_enabled"`
	RecentRainHours   float64 `json:"recent_rain_hours"`

	MaxWindEnabled bool    `json:"max_wind_enabled"`
	MaxWind        float64 `json:"max_wind"`

	// Cancel a held court once at least MinAvailableCourts others are free.
	AvailabilityEnabled bool `json:"availability_enabled"`
	MinAvailableCourts  int  `json:"min_available_courts"`

	// Re-acquire once availability tightens back to the lower threshold.
	AutoRebookEnabled           bool `json:"auto_rebook_enabled"`
	MaxAvailableCourtsForRebook int  `json:"max_available_courts_for_rebook"`
}

func DefaultAutoCancelSettings() AutoCancelSettings {
	return AutoCancelSettings{
		MinTemp:                     10,
		MaxTemp:                     30,
		RainProbability:             30,
		RecentRainHours:             24,
		MaxWind:                     20,
		MinAvailableCourts:          3,
		MaxAvailableCourtsForRebook: 2,
	}
}
