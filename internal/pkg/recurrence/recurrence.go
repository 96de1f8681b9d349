// Package recurrence expands a single booking request into the ordered
// series of dates it covers.
package recurrence

import (
	"errors"
	"time"
)

type Pattern string

const (
	None     Pattern = "none"
	Daily    Pattern = "daily"
	Weekly   Pattern = "weekly"
	Biweekly Pattern = "biweekly"
	Monthly  Pattern = "monthly"
)

var ErrInvalidSpec = errors.New("invalid recurrence spec")

// NeverEndsWindowWeeks encodes an open-ended series as a one-year window.
const NeverEndsWindowWeeks = 52

// Spec describes one recurrence request. Exactly one of Occurrences and
// WindowWeeks terminates the series (Pattern None needs neither).
type Spec struct {
	Start   time.Time
	Pattern Pattern

	// Weekdays filters Weekly/Biweekly series to the given days; empty
	// means "same weekday as Start".
	Weekdays []time.Weekday

	Occurrences int
	WindowWeeks int
}

func (s Spec) validate() error {
	switch s.Pattern {
	case None:
		return nil
	case Daily, Weekly, Biweekly, Monthly:
	default:
		return ErrInvalidSpec
	}
	if s.Occurrences < 0 || s.WindowWeeks < 0 {
		return ErrInvalidSpec
	}
	if (s.Occurrences == 0) == (s.WindowWeeks == 0) {
		// Both or neither termination rule given.
		return ErrInvalidSpec
	}
	return nil
}

// Generate expands the spec into a strictly increasing list of dates,
// starting at Start. It is a pure function of the spec: no clock access.
func Generate(s Spec) ([]time.Time, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}

	start := midnight(s.Start)
	if s.Pattern == None {
		return []time.Time{start}, nil
	}

	windowDays := s.WindowWeeks * 7

	// Hard ceiling so contradictory inputs still terminate.
	maxIter := 365
	if windowDays > maxIter {
		maxIter = windowDays
	}
	if n := s.Occurrences * 14; n > maxIter {
		maxIter = n
	}

	byWeekday := (s.Pattern == Weekly || s.Pattern == Biweekly) && len(s.Weekdays) > 0

	var dates []time.Time
	cur := start
	for iter := 0; iter < maxIter; iter++ {
		if byWeekday {
			// Walk day by day, emitting every matching weekday.
			if weekdayIn(cur.Weekday(), s.Weekdays) {
				dates = append(dates, cur)
				if s.Occurrences > 0 && len(dates) >= s.Occurrences {
					break
				}
			}
			cur = cur.AddDate(0, 0, 1)
		} else {
			dates = append(dates, cur)
			if s.Occurrences > 0 && len(dates) >= s.Occurrences {
				break
			}
			switch s.Pattern {
			case Daily:
				cur = cur.AddDate(0, 0, 1)
			case Weekly:
				cur = cur.AddDate(0, 0, 7)
			case Biweekly:
				cur = cur.AddDate(0, 0, 14)
			case Monthly:
				cur = cur.AddDate(0, 1, 0)
			}
		}

		// Window boundary is exclusive: the day at exactly windowDays
		// elapsed is never emitted on a later iteration.
		if windowDays > 0 && daysBetween(start, cur) >= windowDays {
			break
		}
	}

	return dates, nil
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func weekdayIn(d time.Weekday, set []time.Weekday) bool {
	for _, w := range set {
		if w == d {
			return true
		}
	}
	return false
}

func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
