package notification

import (
	"context"
	"fmt"
	"time"

	"courtwatch/internal/domain"
)

type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	ListByUser(ctx context.Context, userID int64, limit int) ([]domain.Notification, error)
	MarkRead(ctx context.Context, userID, id int64) error
	MarkAllRead(ctx context.Context, userID int64) error
	Delete(ctx context.Context, userID, id int64) error
}

// Service persists notifications and pushes them to connected clients.
// It backs the NotifyBooking* hooks used by the booking service and the
// monitor engine.
type Service struct {
	repo NotificationRepository
	hub  *Hub
	now  func() time.Time
}

func NewService(repo NotificationRepository, hub *Hub) *Service {
	return &Service{repo: repo, hub: hub, now: time.Now}
}

func (s *Service) NotifyBookingConfirmed(ctx context.Context, b *domain.Booking) error {
	return s.record(ctx, b, domain.NotifyBookingConfirmed,
		"Booking confirmed",
		fmt.Sprintf("Court %d booked for %s at %s", b.CourtNumber, b.Date.Format("2006-01-02"), b.TimeSlot))
}

func (s *Service) NotifyBookingPending(ctx context.Context, b *domain.Booking) error {
	switch b.Status {
	case domain.BookingScheduled:
		return s.record(ctx, b, domain.NotifyBookingScheduled,
			"Booking scheduled",
			fmt.Sprintf("Will book %s at %s once the window opens", b.Date.Format("2006-01-02"), b.TimeSlot))
	default:
		return s.record(ctx, b, domain.NotifyBookingWatching,
			"Watching for a court",
			fmt.Sprintf("Watching %s at %s for a free court", b.Date.Format("2006-01-02"), b.TimeSlot))
	}
}

func (s *Service) NotifyBookingCancelled(ctx context.Context, b *domain.Booking, reason domain.CancelReason) error {
	msg := fmt.Sprintf("Booking for %s at %s was cancelled", b.Date.Format("2006-01-02"), b.TimeSlot)
	switch reason {
	case domain.CancelWeather:
		msg = fmt.Sprintf("Booking for %s at %s cancelled due to weather", b.Date.Format("2006-01-02"), b.TimeSlot)
	case domain.CancelAvailability:
		msg = fmt.Sprintf("Booking for %s at %s released, plenty of courts free", b.Date.Format("2006-01-02"), b.TimeSlot)
	}
	return s.record(ctx, b, domain.NotifyBookingCancelled, "Booking cancelled", msg)
}

func (s *Service) NotifyBookingRebooked(ctx context.Context, b *domain.Booking) error {
	return s.record(ctx, b, domain.NotifyBookingRebooked,
		"Booking re-acquired",
		fmt.Sprintf("Court %d rebooked for %s at %s", b.CourtNumber, b.Date.Format("2006-01-02"), b.TimeSlot))
}

func (s *Service) record(ctx context.Context, b *domain.Booking, typ domain.NotificationType, title, message string) error {
	n := &domain.Notification{
		UserID:    b.UserID,
		Type:      typ,
		Title:     title,
		Message:   message,
		BookingID: b.ID,
		CreatedAt: s.now(),
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return err
	}
	s.hub.SendToUser(b.UserID, n)
	return nil
}

func (s *Service) List(ctx context.Context, userID int64, limit int) ([]domain.Notification, error) {
	return s.repo.ListByUser(ctx, userID, limit)
}

func (s *Service) MarkRead(ctx context.Context, userID, id int64) error {
	return s.repo.MarkRead(ctx, userID, id)
}

func (s *Service) MarkAllRead(ctx context.Context, userID int64) error {
	return s.repo.MarkAllRead(ctx, userID)
}

func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	return s.repo.Delete(ctx, userID, id)
}
