package domain

import "time"

type AccountStatus string

const (
	AccountActive AccountStatus = "active"
	AccountError  AccountStatus = "error"
)

// ConnectedAccount is a credential set for the external booking site.
// Confirmed bookings are placed through one of these.
type ConnectedAccount struct {
	ID       string        `json:"id"`
	UserID   int64         `json:"user_id"`
	Name     string        `json:"name" validate:"required"`
	Username string        `json:"username" validate:"required"`
	Password string        `json:"-"`
	Status   AccountStatus `json:"status"`
	LastUsed *time.Time    `json:"last_used,omitempty"`
	AddedAt  time.Time     `json:"added_at"`
}
