package monitor

import (
	"context"
	"log"
	"sync"
	"time"

	"courtwatch/internal/domain"
)

// Engine re-evaluates every monitorable booking against the current
// availability/weather snapshots and the automation policy. Ticks are
// serialized: the shared mutex also guards user-initiated booking
// mutations, so a tick always observes a consistent registry.
type Engine struct {
	registry     BookingRegistry
	availability AvailabilityFeed
	weather      WeatherFeed
	policy       PolicySource
	accounts     AccountPool
	notifs       NotificationSender

	interval time.Duration
	mu       *sync.Mutex
	poke     chan struct{}

	// Now is the engine clock; tests substitute a fixed one.
	Now func() time.Time
}

func New(
	registry BookingRegistry,
	availability AvailabilityFeed,
	weather WeatherFeed,
	policy PolicySource,
	accounts AccountPool,
	notifs NotificationSender,
	interval time.Duration,
	mu *sync.Mutex,
) *Engine {
	return &Engine{
		registry:     registry,
		availability: availability,
		weather:      weather,
		policy:       policy,
		accounts:     accounts,
		notifs:       notifs,
		interval:     interval,
		mu:           mu,
		poke:         make(chan struct{}, 1),
		Now:          time.Now,
	}
}

// Poke requests an immediate tick, used by the availability feed when a
// snapshot changes so freed courts are acted on without waiting out the
// interval. Non-blocking; a pending poke coalesces.
func (e *Engine) Poke() {
	select {
	case e.poke <- struct{}{}:
	default:
	}
}

// Run drives Tick on the fixed interval and on pokes until the context
// is cancelled.
func (e *Engine) Run(ctx context.Context) {
	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	log.Printf("monitor: started interval=%s", e.interval)

	for {
		select {
		case <-ticker.C:
		case <-e.poke:
		case <-ctx.Done():
			log.Println("monitor: stopped")
			return
		}
		if err := e.Tick(ctx); err != nil {
			log.Printf("monitor: tick failed: %v", err)
		}
	}
}

// Tick runs one full evaluation pass. Idempotent and safe to call on a
// schedule: a pass over an unchanged registry applies nothing.
func (e *Engine) Tick(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	cfg, err := e.policy.Get(ctx)
	if err != nil {
		return err
	}
	bookings, err := e.registry.ListMonitorable(ctx)
	if err != nil {
		return err
	}

	now := e.Now()
	for i := range bookings {
		b := &bookings[i]
		if b.Terminal() {
			// The registry never hands these out; seeing one is a bug.
			log.Printf("monitor: terminal booking %s in monitorable set", b.ID)
			continue
		}

		avail := e.availability.AvailableCourts(b.VenueID, b.Date, b.TimeSlot)
		obs := e.weather.Observation(b.VenueID, b.Date, b.TimeSlot)

		tr := Evaluate(b, avail, obs, cfg, now)
		if tr == nil {
			continue
		}
		if err := e.apply(ctx, b, tr, now); err != nil {
			log.Printf("monitor: booking %s: %v", b.ID, err)
		}
	}
	return nil
}

func (e *Engine) apply(ctx context.Context, b *domain.Booking, tr *Transition, now time.Time) error {
	from := b.Status

	switch tr.To {
	case domain.BookingBooked:
		if tr.NeedsAccount && b.AccountID == "" {
			accountID, err := e.accounts.PickAccount(ctx)
			if err != nil {
				// No usable account right now; leave the booking as-is
				// and let a later tick retry.
				return nil
			}
			b.AccountID = accountID
		}
		b.Status = domain.BookingBooked
		b.CourtNumber = tr.Court
		b.ScheduledFor = nil
		if tr.ClearReason {
			b.CancelReason = domain.CancelNone
			b.CancelledAt = nil
		}
		b.UpdatedAt = now
		if err := e.registry.Update(ctx, b); err != nil {
			return err
		}
		e.availability.Reserve(b.VenueID, b.Date, b.TimeSlot, b.CourtNumber)
		if from == domain.BookingCancelled {
			_ = e.notifs.NotifyBookingRebooked(ctx, b)
		} else {
			_ = e.notifs.NotifyBookingConfirmed(ctx, b)
		}

	case domain.BookingCancelled:
		court := b.CourtNumber
		b.Status = domain.BookingCancelled
		b.CancelReason = tr.Reason
		b.CancelledAt = &now
		b.UpdatedAt = now
		if err := e.registry.Update(ctx, b); err != nil {
			return err
		}
		if from == domain.BookingBooked && court > 0 {
			e.availability.Release(b.VenueID, b.Date, b.TimeSlot, court)
		}
		_ = e.notifs.NotifyBookingCancelled(ctx, b, tr.Reason)
	}

	log.Printf("monitor: booking=%s %s -> %s court=%d reason=%s",
		b.ID, from, b.Status, b.CourtNumber, b.CancelReason)
	return nil
}
