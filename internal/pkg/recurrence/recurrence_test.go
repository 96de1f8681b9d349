package recurrence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// 2024-12-02 is a Monday.
var monday = date(2024, 12, 2)

func TestGenerate_NonePattern(t *testing.T) {
	dates, err := Generate(Spec{Start: monday, Pattern: None})
	require.NoError(t, err)
	assert.Equal(t, []time.Time{monday}, dates)
}

func TestGenerate_SingleOccurrence(t *testing.T) {
	for _, p := range []Pattern{Daily, Weekly, Biweekly, Monthly} {
		dates, err := Generate(Spec{Start: monday, Pattern: p, Occurrences: 1})
		require.NoError(t, err, p)
		assert.Equal(t, []time.Time{monday}, dates, "occurrences=1 yields just the start date for %s", p)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	spec := Spec{Start: monday, Pattern: Weekly, Occurrences: 6}

	first, err := Generate(spec)
	require.NoError(t, err)
	second, err := Generate(spec)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerate_DailyByOccurrences(t *testing.T) {
	dates, err := Generate(Spec{Start: monday, Pattern: Daily, Occurrences: 3})
	require.NoError(t, err)
	assert.Equal(t, []time.Time{monday, date(2024, 12, 3), date(2024, 12, 4)}, dates)
}

func TestGenerate_WeeklyDefaultsToStartWeekday(t *testing.T) {
	// Empty weekday filter: fixed 7-day stride from the start date.
	dates, err := Generate(Spec{Start: monday, Pattern: Weekly, Occurrences: 3})
	require.NoError(t, err)
	assert.Equal(t, []time.Time{monday, date(2024, 12, 9), date(2024, 12, 16)}, dates)
	for _, d := range dates {
		assert.Equal(t, time.Monday, d.Weekday())
	}
}

func TestGenerate_WeeklyWithWeekdayFilter(t *testing.T) {
	dates, err := Generate(Spec{
		Start:       monday,
		Pattern:     Weekly,
		Weekdays:    []time.Weekday{time.Monday, time.Wednesday},
		Occurrences: 4,
	})
	require.NoError(t, err)

	require.Len(t, dates, 4)
	assert.Equal(t, []time.Time{
		monday,
		date(2024, 12, 4),
		date(2024, 12, 9),
		date(2024, 12, 11),
	}, dates)
	for i, d := range dates {
		assert.Contains(t, []time.Weekday{time.Monday, time.Wednesday}, d.Weekday())
		if i > 0 {
			assert.True(t, d.After(dates[i-1]), "dates strictly increasing")
		}
	}
}

func TestGenerate_BiweeklyStride(t *testing.T) {
	dates, err := Generate(Spec{Start: monday, Pattern: Biweekly, Occurrences: 3})
	require.NoError(t, err)
	assert.Equal(t, []time.Time{monday, date(2024, 12, 16), date(2024, 12, 30)}, dates)
}

func TestGenerate_MonthlyRollsOver(t *testing.T) {
	// Jan 31 + 1 month normalizes past the end of February.
	dates, err := Generate(Spec{Start: date(2025, 1, 31), Pattern: Monthly, Occurrences: 3})
	require.NoError(t, err)
	assert.Equal(t, []time.Time{date(2025, 1, 31), date(2025, 3, 3), date(2025, 4, 3)}, dates)
}

func TestGenerate_WindowWeeksBoundaryExclusive(t *testing.T) {
	// A 2-week window from Monday: day 14 itself is past the boundary,
	// so the series stops at day 7.
	dates, err := Generate(Spec{Start: monday, Pattern: Weekly, WindowWeeks: 2})
	require.NoError(t, err)
	assert.Equal(t, []time.Time{monday, date(2024, 12, 9)}, dates)
}

func TestGenerate_WindowWeeksWithWeekdayFilter(t *testing.T) {
	dates, err := Generate(Spec{
		Start:       monday,
		Pattern:     Weekly,
		Weekdays:    []time.Weekday{time.Friday},
		WindowWeeks: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, []time.Time{date(2024, 12, 6), date(2024, 12, 13)}, dates)
}

func TestGenerate_NeverEndsIsBounded(t *testing.T) {
	dates, err := Generate(Spec{Start: monday, Pattern: Weekly, WindowWeeks: NeverEndsWindowWeeks})
	require.NoError(t, err)
	assert.Len(t, dates, 52)
}

func TestGenerate_InvalidSpecs(t *testing.T) {
	cases := map[string]Spec{
		"both terminations":    {Start: monday, Pattern: Weekly, Occurrences: 4, WindowWeeks: 4},
		"neither termination":  {Start: monday, Pattern: Weekly},
		"negative occurrences": {Start: monday, Pattern: Daily, Occurrences: -1},
		"negative window":      {Start: monday, Pattern: Daily, WindowWeeks: -2},
		"unknown pattern":      {Start: monday, Pattern: "hourly", Occurrences: 4},
	}
	for name, spec := range cases {
		dates, err := Generate(spec)
		assert.ErrorIs(t, err, ErrInvalidSpec, name)
		assert.Nil(t, dates, name)
	}
}
