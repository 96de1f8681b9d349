package slotclock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSlotsForDay(t *testing.T) {
	slots := SlotsForDay()

	assert.Len(t, slots, 24)
	assert.Equal(t, "08:00", slots[0])
	assert.Equal(t, "08:30", slots[1])
	assert.Equal(t, "19:30", slots[len(slots)-1])

	for i := 1; i < len(slots); i++ {
		assert.Less(t, slots[i-1], slots[i])
	}
}

func TestNextSlot(t *testing.T) {
	assert.Equal(t, "08:30", NextSlot("08:00"))
	assert.Equal(t, "09:00", NextSlot("08:30"))
	assert.Equal(t, "", NextSlot("19:30"), "last slot of the day has no successor")
}

func TestValidSlot(t *testing.T) {
	assert.True(t, ValidSlot("08:00"))
	assert.True(t, ValidSlot("19:30"))
	assert.False(t, ValidSlot("20:00"), "closing time is not a slot")
	assert.False(t, ValidSlot("07:30"))
	assert.False(t, ValidSlot("18:15"))
	assert.False(t, ValidSlot("six pm"))
}

func TestIsPast_UsesVenueTimezone(t *testing.T) {
	london := Location("Europe/London")
	newYork := Location("America/New_York")

	// 2024-06-15 10:00 UTC = 11:00 London (BST) = 06:00 New York.
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
	day := date(2024, 6, 15)

	assert.True(t, IsPast(day, "10:30", london, now))
	assert.False(t, IsPast(day, "11:00", london, now), "slot starting exactly now is not past")
	assert.False(t, IsPast(day, "11:30", london, now))

	// The same wall-clock slot is still in the future in New York.
	assert.False(t, IsPast(day, "10:30", newYork, now))
	assert.True(t, IsPast(day, "05:30", newYork, now))
}

func TestLocation_FallsBackToUTC(t *testing.T) {
	assert.Equal(t, time.UTC, Location("Neverland/Nowhere"))
}

func TestWindowOpensAt(t *testing.T) {
	london := Location("Europe/London")

	opens := WindowOpensAt(date(2024, 12, 2), "18:00", london)
	assert.Equal(t, time.Date(2024, 11, 25, 20, 0, 0, 0, london), opens)

	// Deterministic: same inputs, same output.
	assert.Equal(t, opens, WindowOpensAt(date(2024, 12, 2), "18:00", london))

	// The time-of-day of the slot does not move the opening timestamp.
	assert.Equal(t, opens, WindowOpensAt(date(2024, 12, 2), "08:00", london))
}

func TestIsWindowOpen(t *testing.T) {
	london := Location("Europe/London")
	day := date(2024, 12, 2)

	before := time.Date(2024, 11, 25, 19, 59, 59, 0, london)
	exact := time.Date(2024, 11, 25, 20, 0, 0, 0, london)
	after := time.Date(2024, 11, 25, 20, 1, 0, 0, london)

	assert.False(t, IsWindowOpen(day, "18:00", london, before))
	assert.True(t, IsWindowOpen(day, "18:00", london, exact), "window opens at the boundary instant")
	assert.True(t, IsWindowOpen(day, "18:00", london, after))
}

func TestPrice(t *testing.T) {
	assert.Equal(t, OffPeakPrice, Price("08:00"))
	assert.Equal(t, OffPeakPrice, Price("15:30"))
	assert.Equal(t, PeakPrice, Price("16:00"))
	assert.Equal(t, PeakPrice, Price("19:30"))
	assert.Equal(t, OffPeakPrice, Price("12:00"))
}

func TestSlotStart_DateTimezoneDoesNotShiftDay(t *testing.T) {
	london := Location("Europe/London")

	utc := date(2024, time.December, 2)
	// The same instant as read back from a database session running
	// five hours behind UTC: renders as Dec 1, 19:00 local.
	shifted := utc.In(time.FixedZone("EST", -5*60*60))

	assert.Equal(t, SlotStart(utc, "18:00", london), SlotStart(shifted, "18:00", london))
	assert.Equal(t, 2, SlotStart(shifted, "18:00", london).Day())
}

func TestWindowOpensAt_DateTimezoneDoesNotShiftDay(t *testing.T) {
	london := Location("Europe/London")

	utc := date(2024, time.December, 2)
	shifted := utc.In(time.FixedZone("EST", -5*60*60))

	assert.Equal(t, WindowOpensAt(utc, "18:00", london), WindowOpensAt(shifted, "18:00", london))
}
