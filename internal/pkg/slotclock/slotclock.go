// Package slotclock holds the pure time arithmetic for half-hour court
// slots: the daily slot grid, past checks in venue-local time, the
// booking-window opening rule and peak/off-peak pricing.
package slotclock

import (
	"fmt"
	"time"
)

// Courts are bookable from opening to closing in 30-minute steps; the
// last slot of the day starts half an hour before close.
const (
	OpeningHour = 8
	ClosingHour = 20

	SlotMinutes = 30
)

const (
	// Prices in pence per 30-minute slot.
	PeakPrice    = 1500
	OffPeakPrice = 1000

	// Peak pricing applies to start hours in [PeakStartHour, PeakEndHour).
	PeakStartHour = 16
	PeakEndHour   = 20
)

// SlotsForDay returns the fixed ordered daily grid, "08:00" through "19:30".
func SlotsForDay() []string {
	slots := make([]string, 0, (ClosingHour-OpeningHour)*60/SlotMinutes)
	for h := OpeningHour; h < ClosingHour; h++ {
		slots = append(slots, fmt.Sprintf("%02d:00", h), fmt.Sprintf("%02d:30", h))
	}
	return slots
}

// ValidSlot reports whether slot is on the daily grid.
func ValidSlot(slot string) bool {
	h, m, err := ParseSlot(slot)
	if err != nil {
		return false
	}
	return h >= OpeningHour && h < ClosingHour && (m == 0 || m == 30)
}

// NextSlot returns the slot immediately after the given one, or "" when
// it is the last of the day.
func NextSlot(slot string) string {
	h, m, err := ParseSlot(slot)
	if err != nil {
		return ""
	}
	m += SlotMinutes
	if m >= 60 {
		h++
		m -= 60
	}
	if h >= ClosingHour {
		return ""
	}
	return fmt.Sprintf("%02d:%02d", h, m)
}

// ParseSlot splits a "HH:MM" time-of-day value.
func ParseSlot(slot string) (hour, minute int, err error) {
	if _, err := time.Parse("15:04", slot); err != nil {
		return 0, 0, fmt.Errorf("invalid time slot %q", slot)
	}
	fmt.Sscanf(slot, "%d:%d", &hour, &minute)
	return hour, minute, nil
}

// Location resolves an IANA timezone name, falling back to UTC when the
// name is unknown so a bad venue row cannot break slot arithmetic.
func Location(tz string) *time.Location {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}

// SlotStart returns the instant the slot begins, in the venue's
// timezone. The date is a civil date stored at UTC midnight; it is read
// in UTC so a value scanned back in another session timezone does not
// shift to the previous day.
func SlotStart(date time.Time, slot string, loc *time.Location) time.Time {
	h, m, _ := ParseSlot(slot)
	d := date.UTC()
	return time.Date(d.Year(), d.Month(), d.Day(), h, m, 0, 0, loc)
}

// IsPast reports whether the slot's start is strictly earlier than now,
// judged in the venue's local time. The caller's own timezone never
// enters the comparison.
func IsPast(date time.Time, slot string, loc *time.Location, now time.Time) bool {
	return SlotStart(date, slot, loc).Before(now)
}

// WindowOpensAt returns when the booking window for a slot opens:
// exactly 7 days before the slot's date, at 20:00 venue-local.
func WindowOpensAt(date time.Time, slot string, loc *time.Location) time.Time {
	start := SlotStart(date, slot, loc)
	opens := start.AddDate(0, 0, -7)
	return time.Date(opens.Year(), opens.Month(), opens.Day(), 20, 0, 0, 0, loc)
}

// IsWindowOpen reports whether the booking window has opened by now.
func IsWindowOpen(date time.Time, slot string, loc *time.Location, now time.Time) bool {
	return !now.Before(WindowOpensAt(date, slot, loc))
}

// Price returns the cost of one slot in pence. Peak rate applies to
// start hours from 16:00 up to but not including 20:00.
func Price(slot string) int {
	h, _, err := ParseSlot(slot)
	if err != nil {
		return OffPeakPrice
	}
	if h >= PeakStartHour && h < PeakEndHour {
		return PeakPrice
	}
	return OffPeakPrice
}
