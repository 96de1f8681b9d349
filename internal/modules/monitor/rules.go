package monitor

import (
	"time"

	"courtwatch/internal/domain"
)

// Transition is the single state change a booking may take on one tick.
type Transition struct {
	To           domain.BookingStatus
	Court        int
	Reason       domain.CancelReason
	ClearReason  bool
	NeedsAccount bool
}

// Evaluate applies the guard rules for the booking's current state and
// returns the first matching transition, or nil. Guards are mutually
// exclusive per state, so at most one transition can fire per booking
// per tick. Pure function: the caller supplies the snapshots and clock.
func Evaluate(b *domain.Booking, avail []int, obs *Observation, cfg domain.AutoCancelSettings, now time.Time) *Transition {
	switch b.Status {
	case domain.BookingScheduled:
		if b.ScheduledFor != nil && !now.Before(*b.ScheduledFor) && len(avail) > 0 {
			return &Transition{To: domain.BookingBooked, Court: avail[0], NeedsAccount: true}
		}

	case domain.BookingWatching:
		if b.CourtNumber > 0 {
			// Watching one specific court.
			if courtIn(avail, b.CourtNumber) {
				return &Transition{To: domain.BookingBooked, Court: b.CourtNumber, NeedsAccount: true}
			}
		} else if len(avail) > 0 {
			return &Transition{To: domain.BookingBooked, Court: avail[0], NeedsAccount: true}
		}

	case domain.BookingBooked:
		if !b.AutoCancelEnabled {
			return nil
		}
		if cfg.WeatherEnabled && obs != nil && weatherViolated(*obs, cfg) {
			return &Transition{To: domain.BookingCancelled, Reason: domain.CancelWeather}
		}
		// len(avail) > 0 keeps a slot with no ingested data (nil
		// snapshot) from ever counting as "plenty of courts free".
		if cfg.AvailabilityEnabled && len(avail) > 0 && len(avail) >= cfg.MinAvailableCourts {
			return &Transition{To: domain.BookingCancelled, Reason: domain.CancelAvailability}
		}

	case domain.BookingCancelled:
		// Only availability-reason cancellations ever come back; manual
		// and weather cancellations are terminal.
		if b.CancelReason == domain.CancelAvailability &&
			b.AutoRebookEnabled && cfg.AutoRebookEnabled &&
			len(avail) > 0 && len(avail) <= cfg.MaxAvailableCourtsForRebook {
			return &Transition{To: domain.BookingBooked, Court: avail[0], ClearReason: true}
		}
	}

	return nil
}

func weatherViolated(obs Observation, cfg domain.AutoCancelSettings) bool {
	if cfg.MinTempEnabled && obs.Temp < cfg.MinTemp {
		return true
	}
	if cfg.MaxTempEnabled && obs.Temp > cfg.MaxTemp {
		return true
	}
	if cfg.RainProbabilityEnabled && obs.RainProbability > cfg.RainProbability {
		return true
	}
	if cfg.RecentRainEnabled && obs.HoursSinceRain != nil && *obs.HoursSinceRain <= cfg.RecentRainHours {
		return true
	}
	if cfg.MaxWindEnabled && obs.WindSpeed != nil && *obs.WindSpeed > cfg.MaxWind {
		return true
	}
	return false
}

func courtIn(courts []int, court int) bool {
	for _, c := range courts {
		if c == court {
			return true
		}
	}
	return false
}
