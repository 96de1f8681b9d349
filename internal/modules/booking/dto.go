package booking

// CreateBookingRequest asks for one slot (or two, for an hour) at a
// venue, optionally expanded into a recurring series.
type CreateBookingRequest struct {
	VenueID  string `json:"venue_id" binding:"required"`
	Date     string `json:"date" binding:"required"` // "2006-01-02"
	TimeSlot string `json:"time_slot" binding:"required"`

	// CourtPreference 0 books/watches any court; 1..N targets one.
	CourtPreference int `json:"court_preference"`

	// DurationMinutes is 30 or 60; 0 defaults to 30.
	DurationMinutes int `json:"duration_minutes"`

	AutoCancel bool `json:"auto_cancel"`
	AutoRebook bool `json:"auto_rebook"`

	Recurrence *RecurrenceRequest `json:"recurrence,omitempty"`
}

type RecurrenceRequest struct {
	Pattern string `json:"pattern"` // daily|weekly|biweekly|monthly

	// Weekdays filters weekly/biweekly series (0=Sunday .. 6=Saturday).
	Weekdays []int `json:"weekdays,omitempty"`

	Occurrences int  `json:"occurrences,omitempty"`
	WindowWeeks int  `json:"window_weeks,omitempty"`
	NeverEnds   bool `json:"never_ends,omitempty"`
}
