package domain

import "time"

type NotificationType string

const (
	NotifyBookingConfirmed NotificationType = "booking_confirmed"
	NotifyBookingScheduled NotificationType = "booking_scheduled"
	NotifyBookingWatching  NotificationType = "booking_watching"
	NotifyBookingCancelled NotificationType = "booking_cancelled"
	NotifyBookingRebooked  NotificationType = "booking_rebooked"
)

type Notification struct {
	ID        int64            `json:"id"`
	UserID    int64            `json:"user_id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	BookingID string           `json:"booking_id,omitempty"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"created_at"`
}
