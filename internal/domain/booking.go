package domain

import "time"

type BookingStatus string

const (
	BookingBooked    BookingStatus = "booked"
	BookingScheduled BookingStatus = "scheduled"
	BookingWatching  BookingStatus = "watching"
	BookingCancelled BookingStatus = "cancelled"
)

type CancelReason string

const (
	CancelNone         CancelReason = ""
	CancelWeather      CancelReason = "weather"
	CancelAvailability CancelReason = "availability"
	CancelManual       CancelReason = "manual"
)

type Booking struct {
	ID      string `json:"id"`
	UserID  int64  `json:"user_id"`
	VenueID string `json:"venue_id" validate:"required"`

	// CourtNumber 0 means "any court": unassigned while scheduled,
	// watch-any while watching.
	CourtNumber int       `json:"court_number"`
	Date        time.Time `json:"date" validate:"required"`
	TimeSlot    string    `json:"time_slot" validate:"required"`

	Status       BookingStatus `json:"status"`
	ScheduledFor *time.Time    `json:"scheduled_for,omitempty"`

	AutoCancelEnabled bool         `json:"auto_cancel_enabled"`
	AutoRebookEnabled bool         `json:"auto_rebook_enabled"`
	CancelReason      CancelReason `json:"cancel_reason,omitempty"`

	// Cost in pence, fixed at creation from the slot pricing.
	Cost int `json:"cost"`

	RecurringGroupID string `json:"recurring_group_id,omitempty"`
	RecurringIndex   int    `json:"recurring_index,omitempty"`
	RecurringTotal   int    `json:"recurring_total,omitempty"`

	// AccountID is the connected external account used to place the
	// booking; set only once the booking reaches "booked".
	AccountID string `json:"account_id,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
}

// Terminal reports whether the booking can never transition again.
// Availability-reason cancellations stay live for auto-rebook.
func (b *Booking) Terminal() bool {
	if b.Status != BookingCancelled {
		return false
	}
	return !(b.CancelReason == CancelAvailability && b.AutoRebookEnabled)
}
