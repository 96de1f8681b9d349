package booking

import (
	"context"
	"errors"
	"sync"
	"time"

	"courtwatch/internal/domain"
	"courtwatch/internal/pkg/recurrence"
	"courtwatch/internal/pkg/slotclock"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Service owns the booking lifecycle entry points: classification of a
// new request into its acquisition strategy, manual cancellation, and
// registry reads for display. All further state change is the monitor
// engine's job.
type Service struct {
	bookings BookingRepository
	venues   VenueRepository
	accounts AccountPool
	ledger   CourtLedger
	notifs   NotificationSender

	// mu is shared with the monitor engine so user actions linearize
	// against ticks.
	mu  *sync.Mutex
	now func() time.Time
}

func NewService(
	bookings BookingRepository,
	venues VenueRepository,
	accounts AccountPool,
	ledger CourtLedger,
	notifs NotificationSender,
	mu *sync.Mutex,
) *Service {
	return &Service{
		bookings: bookings,
		venues:   venues,
		accounts: accounts,
		ledger:   ledger,
		notifs:   notifs,
		mu:       mu,
		now:      time.Now,
	}
}

// Classify turns one request into one or more bookings, one per
// generated date and half-hour slot. Strategy per slot, in priority
// order: window not open yet -> scheduled; a matching court free ->
// booked; otherwise -> watching. All-or-nothing: any failure creates no
// bookings at all.
func (s *Service) Classify(ctx context.Context, userID int64, req CreateBookingRequest) ([]*domain.Booking, error) {
	venue, err := s.venues.GetByID(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}

	startDate, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrValidation
	}
	if !slotclock.ValidSlot(req.TimeSlot) {
		return nil, ErrValidation
	}
	if req.CourtPreference < 0 || req.CourtPreference > venue.NumCourts {
		return nil, ErrValidation
	}
	duration := req.DurationMinutes
	if duration == 0 {
		duration = 30
	}
	if duration != 30 && duration != 60 {
		return nil, ErrValidation
	}

	loc := slotclock.Location(venue.Timezone)
	if slotclock.IsPast(startDate, req.TimeSlot, loc, s.now()) {
		return nil, ErrSlotInPast
	}

	spec, err := recurrenceSpec(startDate, req.Recurrence)
	if err != nil {
		return nil, err
	}
	dates, err := recurrence.Generate(spec)
	if err != nil {
		return nil, ErrInvalidRecurrence
	}

	groupID := ""
	if spec.Pattern != recurrence.None {
		groupID = uuid.NewString()
	}

	slots := []string{req.TimeSlot}
	if duration == 60 {
		if next := slotclock.NextSlot(req.TimeSlot); next != "" {
			slots = append(slots, next)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	var out []*domain.Booking
	needAccount := false

	for i, date := range dates {
		for _, slot := range slots {
			b := &domain.Booking{
				ID:                uuid.NewString(),
				UserID:            userID,
				VenueID:           venue.ID,
				Date:              date,
				TimeSlot:          slot,
				Cost:              slotclock.Price(slot),
				AutoCancelEnabled: req.AutoCancel,
				AutoRebookEnabled: req.AutoRebook,
				CreatedAt:         now,
				UpdatedAt:         now,
			}
			if groupID != "" {
				b.RecurringGroupID = groupID
				b.RecurringIndex = i + 1
				b.RecurringTotal = len(dates)
			}

			// Window-closed dominates: even a listed-free court cannot
			// be booked before its window opens.
			if !slotclock.IsWindowOpen(date, slot, loc, now) {
				opens := slotclock.WindowOpensAt(date, slot, loc)
				b.Status = domain.BookingScheduled
				b.ScheduledFor = &opens
			} else {
				avail := s.ledger.AvailableCourts(venue.ID, date, slot)
				switch {
				case req.CourtPreference > 0 && courtIn(avail, req.CourtPreference):
					b.Status = domain.BookingBooked
					b.CourtNumber = req.CourtPreference
					needAccount = true
				case req.CourtPreference > 0:
					// The wanted court is taken: watch it specifically.
					b.Status = domain.BookingWatching
					b.CourtNumber = req.CourtPreference
				case len(avail) > 0:
					b.Status = domain.BookingBooked
					b.CourtNumber = avail[0]
					needAccount = true
				default:
					b.Status = domain.BookingWatching
				}
			}
			out = append(out, b)
		}
	}

	if needAccount {
		accountID, err := s.accounts.PickAccount(ctx)
		if err != nil {
			return nil, ErrNoUsableAccount
		}
		for _, b := range out {
			if b.Status == domain.BookingBooked {
				b.AccountID = accountID
			}
		}
	}

	if err := s.bookings.CreateBatch(ctx, out); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrOverbooking
		}
		return nil, err
	}

	for _, b := range out {
		if b.Status == domain.BookingBooked {
			s.ledger.Reserve(b.VenueID, b.Date, b.TimeSlot, b.CourtNumber)
			_ = s.notifs.NotifyBookingConfirmed(ctx, b)
		} else {
			_ = s.notifs.NotifyBookingPending(ctx, b)
		}
	}

	return out, nil
}

// Cancel is the explicit user cancellation: valid from any non-terminal
// state, immediate, and final. The record is kept with reason "manual"
// so the monitor never touches it again.
func (s *Service) Cancel(ctx context.Context, userID int64, id string) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if b.Status == domain.BookingCancelled {
		return nil, ErrAlreadyCancelled
	}

	wasBooked := b.Status == domain.BookingBooked
	court := b.CourtNumber

	now := s.now()
	b.Status = domain.BookingCancelled
	b.CancelReason = domain.CancelManual
	b.CancelledAt = &now
	b.UpdatedAt = now

	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, err
	}
	if wasBooked && court > 0 {
		s.ledger.Release(b.VenueID, b.Date, b.TimeSlot, court)
	}
	_ = s.notifs.NotifyBookingCancelled(ctx, b, domain.CancelManual)

	return b, nil
}

// Delete removes a booking record entirely.
func (s *Service) Delete(ctx context.Context, userID int64, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.getOwned(ctx, userID, id); err != nil {
		return err
	}
	return s.bookings.Delete(ctx, id)
}

func (s *Service) Get(ctx context.Context, userID int64, id string) (*domain.Booking, error) {
	return s.getOwned(ctx, userID, id)
}

func (s *Service) ListMine(ctx context.Context, userID int64, limit, offset int) ([]domain.Booking, error) {
	return s.bookings.ListByUser(ctx, userID, limit, offset)
}

// Group returns the sibling bookings of a recurring series.
func (s *Service) Group(ctx context.Context, userID int64, groupID string) ([]domain.Booking, error) {
	all, err := s.bookings.ListGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	mine := make([]domain.Booking, 0, len(all))
	for _, b := range all {
		if b.UserID == userID {
			mine = append(mine, b)
		}
	}
	return mine, nil
}

func (s *Service) getOwned(ctx context.Context, userID int64, id string) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownBooking
		}
		return nil, err
	}
	if b.UserID != userID {
		return nil, ErrUnknownBooking
	}
	return b, nil
}

func recurrenceSpec(start time.Time, req *RecurrenceRequest) (recurrence.Spec, error) {
	spec := recurrence.Spec{Start: start, Pattern: recurrence.None}
	if req == nil || req.Pattern == "" || req.Pattern == string(recurrence.None) {
		return spec, nil
	}

	spec.Pattern = recurrence.Pattern(req.Pattern)
	for _, d := range req.Weekdays {
		if d < 0 || d > 6 {
			return spec, ErrInvalidRecurrence
		}
		spec.Weekdays = append(spec.Weekdays, time.Weekday(d))
	}

	if req.NeverEnds {
		spec.WindowWeeks = recurrence.NeverEndsWindowWeeks
		return spec, nil
	}
	spec.Occurrences = req.Occurrences
	spec.WindowWeeks = req.WindowWeeks
	return spec, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func courtIn(courts []int, court int) bool {
	for _, c := range courts {
		if c == court {
			return true
		}
	}
	return false
}
