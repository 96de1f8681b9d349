package booking

import (
	"context"
	"time"

	"courtwatch/internal/domain"
)

// BookingRepository defines the registry operations the service needs.
type BookingRepository interface {
	CreateBatch(ctx context.Context, bookings []*domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Booking, error)
	ListGroup(ctx context.Context, groupID string) ([]domain.Booking, error)
	Update(ctx context.Context, b *domain.Booking) error
	Delete(ctx context.Context, id string) error
}

// VenueRepository resolves venue reference data.
type VenueRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Venue, error)
}

// AccountPool hands out a usable external account. Must fail when no
// account is usable; classification turns that into ErrNoUsableAccount.
type AccountPool interface {
	PickAccount(ctx context.Context) (string, error)
}

// CourtLedger is the availability snapshot plus the take/give-back
// bookkeeping for confirmed bookings.
type CourtLedger interface {
	AvailableCourts(venueID string, date time.Time, slot string) []int
	Reserve(venueID string, date time.Time, slot string, court int)
	Release(venueID string, date time.Time, slot string, court int)
}

// NotificationSender is fire-and-forget; classification ignores errors.
type NotificationSender interface {
	NotifyBookingConfirmed(ctx context.Context, b *domain.Booking) error
	NotifyBookingPending(ctx context.Context, b *domain.Booking) error
	NotifyBookingCancelled(ctx context.Context, b *domain.Booking, reason domain.CancelReason) error
}
