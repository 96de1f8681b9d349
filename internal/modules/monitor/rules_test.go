package monitor

import (
	"testing"
	"time"

	"courtwatch/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tickNow = time.Date(2024, 11, 25, 20, 1, 0, 0, time.UTC)

func f64(v float64) *float64 { return &v }

func scheduledBooking(openedAt time.Time) *domain.Booking {
	return &domain.Booking{
		ID:           "b1",
		Status:       domain.BookingScheduled,
		ScheduledFor: &openedAt,
	}
}

func TestEvaluate_ScheduledToBooked(t *testing.T) {
	opened := tickNow.Add(-time.Minute)
	b := scheduledBooking(opened)

	tr := Evaluate(b, []int{2, 3}, nil, domain.AutoCancelSettings{}, tickNow)

	require.NotNil(t, tr)
	assert.Equal(t, domain.BookingBooked, tr.To)
	assert.Equal(t, 2, tr.Court, "first available court wins")
	assert.True(t, tr.NeedsAccount)
}

func TestEvaluate_ScheduledWaitsForWindow(t *testing.T) {
	opened := tickNow.Add(time.Hour)
	b := scheduledBooking(opened)

	assert.Nil(t, Evaluate(b, []int{1, 2, 3, 4}, nil, domain.AutoCancelSettings{}, tickNow),
		"availability alone never books before the window opens")
}

func TestEvaluate_ScheduledWaitsForAvailability(t *testing.T) {
	opened := tickNow.Add(-time.Hour)
	b := scheduledBooking(opened)

	assert.Nil(t, Evaluate(b, nil, nil, domain.AutoCancelSettings{}, tickNow))
}

func TestEvaluate_WatchingAnyCourt(t *testing.T) {
	b := &domain.Booking{Status: domain.BookingWatching, CourtNumber: 0}

	assert.Nil(t, Evaluate(b, nil, nil, domain.AutoCancelSettings{}, tickNow))

	tr := Evaluate(b, []int{4}, nil, domain.AutoCancelSettings{}, tickNow)
	require.NotNil(t, tr)
	assert.Equal(t, domain.BookingBooked, tr.To)
	assert.Equal(t, 4, tr.Court)
}

func TestEvaluate_WatchingSpecificCourt(t *testing.T) {
	b := &domain.Booking{Status: domain.BookingWatching, CourtNumber: 3}

	assert.Nil(t, Evaluate(b, []int{1, 2, 4}, nil, domain.AutoCancelSettings{}, tickNow),
		"other courts freeing up is not enough")

	tr := Evaluate(b, []int{1, 3}, nil, domain.AutoCancelSettings{}, tickNow)
	require.NotNil(t, tr)
	assert.Equal(t, 3, tr.Court)
}

func TestEvaluate_WeatherCancel(t *testing.T) {
	b := &domain.Booking{Status: domain.BookingBooked, CourtNumber: 1, AutoCancelEnabled: true}
	cfg := domain.DefaultAutoCancelSettings()
	cfg.WeatherEnabled = true
	cfg.RainProbabilityEnabled = true

	wet := &Observation{Temp: 18, RainProbability: 80}
	tr := Evaluate(b, nil, wet, cfg, tickNow)
	require.NotNil(t, tr)
	assert.Equal(t, domain.BookingCancelled, tr.To)
	assert.Equal(t, domain.CancelWeather, tr.Reason)

	dry := &Observation{Temp: 18, RainProbability: 10}
	assert.Nil(t, Evaluate(b, nil, dry, cfg, tickNow))
}

func TestEvaluate_WeatherSubRules(t *testing.T) {
	b := &domain.Booking{Status: domain.BookingBooked, CourtNumber: 1, AutoCancelEnabled: true}

	cases := []struct {
		name   string
		tweak  func(*domain.AutoCancelSettings)
		obs    Observation
		cancel bool
	}{
		{"too cold", func(c *domain.AutoCancelSettings) { c.MinTempEnabled = true }, Observation{Temp: 5}, true},
		{"warm enough", func(c *domain.AutoCancelSettings) { c.MinTempEnabled = true }, Observation{Temp: 12}, false},
		{"too hot", func(c *domain.AutoCancelSettings) { c.MaxTempEnabled = true }, Observation{Temp: 35}, true},
		{"recent rain", func(c *domain.AutoCancelSettings) { c.RecentRainEnabled = true }, Observation{Temp: 15, HoursSinceRain: f64(3)}, true},
		{"rain long ago", func(c *domain.AutoCancelSettings) { c.RecentRainEnabled = true }, Observation{Temp: 15, HoursSinceRain: f64(48)}, false},
		{"no rain data", func(c *domain.AutoCancelSettings) { c.RecentRainEnabled = true }, Observation{Temp: 15}, false},
		{"too windy", func(c *domain.AutoCancelSettings) { c.MaxWindEnabled = true }, Observation{Temp: 15, WindSpeed: f64(30)}, true},
		{"no wind data", func(c *domain.AutoCancelSettings) { c.MaxWindEnabled = true }, Observation{Temp: 15}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := domain.DefaultAutoCancelSettings()
			cfg.WeatherEnabled = true
			tc.tweak(&cfg)

			tr := Evaluate(b, nil, &tc.obs, cfg, tickNow)
			if tc.cancel {
				require.NotNil(t, tr)
				assert.Equal(t, domain.CancelWeather, tr.Reason)
			} else {
				assert.Nil(t, tr)
			}
		})
	}
}

func TestEvaluate_MissingObservationIsNotATrigger(t *testing.T) {
	b := &domain.Booking{Status: domain.BookingBooked, CourtNumber: 1, AutoCancelEnabled: true}
	cfg := domain.DefaultAutoCancelSettings()
	cfg.WeatherEnabled = true
	cfg.MinTempEnabled = true

	assert.Nil(t, Evaluate(b, nil, nil, cfg, tickNow))
}

func TestEvaluate_AvailabilityCancel(t *testing.T) {
	b := &domain.Booking{Status: domain.BookingBooked, CourtNumber: 1, AutoCancelEnabled: true}
	cfg := domain.DefaultAutoCancelSettings()
	cfg.AvailabilityEnabled = true // threshold 3

	assert.Nil(t, Evaluate(b, []int{2, 3}, nil, cfg, tickNow))

	tr := Evaluate(b, []int{2, 3, 4}, nil, cfg, tickNow)
	require.NotNil(t, tr)
	assert.Equal(t, domain.CancelAvailability, tr.Reason)
}

func TestEvaluate_OptOutIgnoresPolicy(t *testing.T) {
	b := &domain.Booking{Status: domain.BookingBooked, CourtNumber: 1}
	cfg := domain.DefaultAutoCancelSettings()
	cfg.WeatherEnabled = true
	cfg.MinTempEnabled = true
	cfg.AvailabilityEnabled = true

	assert.Nil(t, Evaluate(b, []int{2, 3, 4}, &Observation{Temp: -5}, cfg, tickNow))
}

func TestEvaluate_Rebook(t *testing.T) {
	b := &domain.Booking{
		Status:            domain.BookingCancelled,
		CancelReason:      domain.CancelAvailability,
		AutoRebookEnabled: true,
	}
	cfg := domain.DefaultAutoCancelSettings()
	cfg.AutoRebookEnabled = true // rebook threshold 2

	assert.Nil(t, Evaluate(b, []int{1, 2, 3}, nil, cfg, tickNow), "too many courts still free")
	assert.Nil(t, Evaluate(b, nil, nil, cfg, tickNow), "nothing free to take")

	tr := Evaluate(b, []int{2}, nil, cfg, tickNow)
	require.NotNil(t, tr)
	assert.Equal(t, domain.BookingBooked, tr.To)
	assert.Equal(t, 2, tr.Court)
	assert.True(t, tr.ClearReason)
}

func TestEvaluate_RebookExclusivity(t *testing.T) {
	cfg := domain.DefaultAutoCancelSettings()
	cfg.AutoRebookEnabled = true

	weatherCancelled := &domain.Booking{
		Status:            domain.BookingCancelled,
		CancelReason:      domain.CancelWeather,
		AutoRebookEnabled: true,
	}
	manualCancelled := &domain.Booking{
		Status:            domain.BookingCancelled,
		CancelReason:      domain.CancelManual,
		AutoRebookEnabled: true,
	}
	optedOut := &domain.Booking{
		Status:       domain.BookingCancelled,
		CancelReason: domain.CancelAvailability,
	}

	for _, avail := range [][]int{nil, {1}, {1, 2}, {1, 2, 3, 4}} {
		assert.Nil(t, Evaluate(weatherCancelled, avail, nil, cfg, tickNow),
			"weather cancellations never rebook")
		assert.Nil(t, Evaluate(manualCancelled, avail, nil, cfg, tickNow),
			"manual cancellations never rebook")
		assert.Nil(t, Evaluate(optedOut, avail, nil, cfg, tickNow),
			"rebook requires the per-booking opt-in")
	}
}

func TestEvaluate_AtMostOneTransition(t *testing.T) {
	// A booked booking matching both the weather and availability rules
	// takes the weather cancellation only.
	b := &domain.Booking{Status: domain.BookingBooked, CourtNumber: 1, AutoCancelEnabled: true}
	cfg := domain.DefaultAutoCancelSettings()
	cfg.WeatherEnabled = true
	cfg.MinTempEnabled = true
	cfg.AvailabilityEnabled = true

	tr := Evaluate(b, []int{2, 3, 4}, &Observation{Temp: -2}, cfg, tickNow)
	require.NotNil(t, tr)
	assert.Equal(t, domain.CancelWeather, tr.Reason)
}

func TestEvaluate_MissingAvailabilityIsNotATrigger(t *testing.T) {
	// A zero threshold (possible in a policy row written before
	// validation tightened) must still not cancel a slot that has no
	// ingested availability data.
	b := &domain.Booking{Status: domain.BookingBooked, CourtNumber: 1, AutoCancelEnabled: true}
	cfg := domain.DefaultAutoCancelSettings()
	cfg.AvailabilityEnabled = true
	cfg.MinAvailableCourts = 0

	assert.Nil(t, Evaluate(b, nil, nil, cfg, tickNow))
}
