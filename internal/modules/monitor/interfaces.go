package monitor

import (
	"context"
	"time"

	"courtwatch/internal/domain"
)

// Observation is one weather reading for a slot. HoursSinceRain and
// WindSpeed are optional; a nil field disables the matching sub-rule
// for that slot on that tick.
type Observation struct {
	Temp            float64  `json:"temp"`
	RainProbability float64  `json:"rain_probability"`
	HoursSinceRain  *float64 `json:"hours_since_rain,omitempty"`
	WindSpeed       *float64 `json:"wind_speed,omitempty"`
}

// AvailabilityFeed supplies the current free-court snapshot for a slot
// and tracks courts the engine takes or gives back. Court lists are
// sorted ascending.
type AvailabilityFeed interface {
	AvailableCourts(venueID string, date time.Time, slot string) []int
	Reserve(venueID string, date time.Time, slot string, court int)
	Release(venueID string, date time.Time, slot string, court int)
}

// WeatherFeed supplies the latest observation for a slot, nil when no
// data has been ingested. Missing data is never a cancellation trigger.
type WeatherFeed interface {
	Observation(venueID string, date time.Time, slot string) *Observation
}

// BookingRegistry is the slice of the booking store the engine needs.
type BookingRegistry interface {
	ListMonitorable(ctx context.Context) ([]domain.Booking, error)
	Update(ctx context.Context, b *domain.Booking) error
}

// AccountPool hands out a usable external account for placing a booking.
type AccountPool interface {
	PickAccount(ctx context.Context) (string, error)
}

// PolicySource yields the automation policy snapshot for a tick.
type PolicySource interface {
	Get(ctx context.Context) (domain.AutoCancelSettings, error)
}

// NotificationSender is fire-and-forget; the engine never blocks on it
// and ignores its errors.
type NotificationSender interface {
	NotifyBookingConfirmed(ctx context.Context, b *domain.Booking) error
	NotifyBookingCancelled(ctx context.Context, b *domain.Booking, reason domain.CancelReason) error
	NotifyBookingRebooked(ctx context.Context, b *domain.Booking) error
}
