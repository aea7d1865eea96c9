package recurrence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gatherly/models"
)

func at(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

func TestGenerateRejectsInvalidFrequency(t *testing.T) {
	for _, pattern := range []models.RecurrencePattern{
		models.PatternDaily, models.PatternWeekly, models.PatternCustom, models.PatternMonthly,
	} {
		t.Run(string(pattern), func(t *testing.T) {
			for _, freq := range []int{0, -1} {
				_, err := Generate(models.RecurrenceRule{
					StartDate: at(2024, time.January, 1, 9, 0),
					Pattern:   pattern,
					Frequency: freq,
					EndType:   models.EndNever,
				})
				assert.ErrorIs(t, err, ErrInvalidFrequency)
			}
		})
	}
}

func TestGenerateRejectsUnknownPattern(t *testing.T) {
	_, err := Generate(models.RecurrenceRule{
		StartDate: at(2024, time.January, 1, 9, 0),
		Pattern:   "yearly",
		Frequency: 1,
		EndType:   models.EndNever,
	})
	require.Error(t, err)
}

func TestGenerateDailyByCount(t *testing.T) {
	start := at(2025, time.March, 1, 10, 30)
	got, err := Generate(models.RecurrenceRule{
		StartDate: start,
		Pattern:   models.PatternDaily,
		Frequency: 1,
		EndType:   models.EndByCount,
		Count:     5,
	})
	require.NoError(t, err)
	require.Len(t, got, 5)
	for i, instant := range got {
		assert.Equal(t, start.AddDate(0, 0, i), instant)
	}
}

func TestGenerateDailyEveryThirdDayByDate(t *testing.T) {
	start := at(2025, time.March, 1, 8, 0)
	end := at(2025, time.March, 10, 8, 0)
	got, err := Generate(models.RecurrenceRule{
		StartDate: start,
		Pattern:   models.PatternDaily,
		Frequency: 3,
		EndType:   models.EndByDate,
		EndDate:   end,
	})
	require.NoError(t, err)
	want := []time.Time{
		at(2025, time.March, 1, 8, 0),
		at(2025, time.March, 4, 8, 0),
		at(2025, time.March, 7, 8, 0),
		at(2025, time.March, 10, 8, 0), // end date is inclusive
	}
	assert.Equal(t, want, got)
}

func TestGenerateSafetyCaps(t *testing.T) {
	start := at(2024, time.January, 1, 12, 0)
	tests := []struct {
		name    string
		pattern models.RecurrencePattern
		endType models.RecurrenceEndType
		count   int
		cap     int
	}{
		{"daily never", models.PatternDaily, models.EndNever, 0, MaxDailyInstances},
		{"daily count over cap", models.PatternDaily, models.EndByCount, 1000, MaxDailyInstances},
		{"weekly never", models.PatternWeekly, models.EndNever, 0, MaxWeeklyInstances},
		{"custom count over cap", models.PatternCustom, models.EndByCount, 500, MaxWeeklyInstances},
		{"monthly never", models.PatternMonthly, models.EndNever, 0, MaxMonthlyInstances},
		{"monthly count over cap", models.PatternMonthly, models.EndByCount, 99, MaxMonthlyInstances},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Generate(models.RecurrenceRule{
				StartDate: start,
				Pattern:   tc.pattern,
				Frequency: 1,
				EndType:   tc.endType,
				Count:     tc.count,
			})
			require.NoError(t, err)
			assert.Len(t, got, tc.cap)
		})
	}
}

func TestGenerateFarFutureEndDateStillCapped(t *testing.T) {
	got, err := Generate(models.RecurrenceRule{
		StartDate: at(2024, time.January, 1, 12, 0),
		Pattern:   models.PatternDaily,
		Frequency: 1,
		EndType:   models.EndByDate,
		EndDate:   at(2099, time.January, 1, 12, 0),
	})
	require.NoError(t, err)
	assert.Len(t, got, MaxDailyInstances)
}

func TestGenerateZeroCountYieldsEmptySequence(t *testing.T) {
	for _, pattern := range []models.RecurrencePattern{
		models.PatternDaily, models.PatternWeekly, models.PatternMonthly,
	} {
		got, err := Generate(models.RecurrenceRule{
			StartDate: at(2024, time.June, 3, 9, 0),
			Pattern:   pattern,
			Frequency: 1,
			EndType:   models.EndByCount,
			Count:     0,
		})
		require.NoError(t, err)
		assert.Empty(t, got)
	}
}

// 2024-01-01 is a Monday.
func TestGenerateWeeklyMonWedFri(t *testing.T) {
	start := at(2024, time.January, 1, 9, 15)
	got, err := Generate(models.RecurrenceRule{
		StartDate:  start,
		Pattern:    models.PatternWeekly,
		Frequency:  1,
		DaysOfWeek: []int{1, 3, 5},
		EndType:    models.EndByCount,
		Count:      6,
	})
	require.NoError(t, err)
	want := []time.Time{
		at(2024, time.January, 1, 9, 15),  // Mon
		at(2024, time.January, 3, 9, 15),  // Wed
		at(2024, time.January, 5, 9, 15),  // Fri
		at(2024, time.January, 8, 9, 15),  // Mon
		at(2024, time.January, 10, 9, 15), // Wed
		at(2024, time.January, 12, 9, 15), // Fri
	}
	assert.Equal(t, want, got)
}

func TestGenerateWeeklyDiscardsDaysBeforeStart(t *testing.T) {
	// Start on Wednesday 2024-01-03 with Mon/Wed/Fri selected: the Monday
	// of the start week must not appear.
	got, err := Generate(models.RecurrenceRule{
		StartDate:  at(2024, time.January, 3, 14, 0),
		Pattern:    models.PatternWeekly,
		Frequency:  1,
		DaysOfWeek: []int{1, 3, 5},
		EndType:    models.EndByCount,
		Count:      5,
	})
	require.NoError(t, err)
	want := []time.Time{
		at(2024, time.January, 3, 14, 0),
		at(2024, time.January, 5, 14, 0),
		at(2024, time.January, 8, 14, 0),
		at(2024, time.January, 10, 14, 0),
		at(2024, time.January, 12, 14, 0),
	}
	assert.Equal(t, want, got)
}

func TestGenerateWeeklyEveryOtherWeek(t *testing.T) {
	// 2024-01-07 is a Sunday; only week indices divisible by 2 emit.
	got, err := Generate(models.RecurrenceRule{
		StartDate:  at(2024, time.January, 7, 11, 0),
		Pattern:    models.PatternWeekly,
		Frequency:  2,
		DaysOfWeek: []int{0},
		EndType:    models.EndByCount,
		Count:      3,
	})
	require.NoError(t, err)
	want := []time.Time{
		at(2024, time.January, 7, 11, 0),
		at(2024, time.January, 21, 11, 0),
		at(2024, time.February, 4, 11, 0),
	}
	assert.Equal(t, want, got)
}

func TestGenerateWeeklyEndDateInclusive(t *testing.T) {
	start := at(2024, time.January, 1, 18, 30)
	got, err := Generate(models.RecurrenceRule{
		StartDate: start,
		Pattern:   models.PatternWeekly,
		Frequency: 1,
		EndType:   models.EndByDate,
		EndDate:   at(2024, time.January, 15, 18, 30), // exactly the third Monday
	})
	require.NoError(t, err)
	want := []time.Time{
		at(2024, time.January, 1, 18, 30),
		at(2024, time.January, 8, 18, 30),
		at(2024, time.January, 15, 18, 30),
	}
	assert.Equal(t, want, got)
}

func TestGenerateWeeklyDefaultsToStartWeekday(t *testing.T) {
	// No day selection: the rule recurs on the start date's weekday.
	got, err := Generate(models.RecurrenceRule{
		StartDate: at(2024, time.January, 4, 7, 45), // Thursday
		Pattern:   models.PatternWeekly,
		Frequency: 1,
		EndType:   models.EndByCount,
		Count:     3,
	})
	require.NoError(t, err)
	want := []time.Time{
		at(2024, time.January, 4, 7, 45),
		at(2024, time.January, 11, 7, 45),
		at(2024, time.January, 18, 7, 45),
	}
	assert.Equal(t, want, got)
}

func TestGenerateWeeklyIgnoresOutOfRangeWeekdays(t *testing.T) {
	got, err := Generate(models.RecurrenceRule{
		StartDate:  at(2024, time.January, 4, 7, 45), // Thursday
		Pattern:    models.PatternWeekly,
		Frequency:  1,
		DaysOfWeek: []int{-1, 7, 12},
		EndType:    models.EndByCount,
		Count:      2,
	})
	require.NoError(t, err)
	// All selections invalid: falls back to the start weekday.
	want := []time.Time{
		at(2024, time.January, 4, 7, 45),
		at(2024, time.January, 11, 7, 45),
	}
	assert.Equal(t, want, got)
}

func TestGenerateCustomMatchesWeekly(t *testing.T) {
	rule := models.RecurrenceRule{
		StartDate:  at(2024, time.January, 1, 9, 15),
		Pattern:    models.PatternWeekly,
		Frequency:  1,
		DaysOfWeek: []int{2, 4},
		EndType:    models.EndByCount,
		Count:      8,
	}
	weekly, err := Generate(rule)
	require.NoError(t, err)

	rule.Pattern = models.PatternCustom
	custom, err := Generate(rule)
	require.NoError(t, err)

	assert.Equal(t, weekly, custom)
}

func TestGenerateWeeklyNoCandidateBeforeHorizon(t *testing.T) {
	// Start on Friday, only Monday selected, end date the next day: the
	// first eligible Monday falls past the cutoff, so the sequence is empty.
	got, err := Generate(models.RecurrenceRule{
		StartDate:  at(2024, time.January, 5, 9, 0), // Friday
		Pattern:    models.PatternWeekly,
		Frequency:  1,
		DaysOfWeek: []int{1},
		EndType:    models.EndByDate,
		EndDate:    at(2024, time.January, 6, 9, 0),
	})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGenerateMonthlyClampsDay31(t *testing.T) {
	got, err := Generate(models.RecurrenceRule{
		StartDate:  at(2024, time.January, 31, 18, 0),
		Pattern:    models.PatternMonthly,
		Frequency:  1,
		DayOfMonth: 31,
		EndType:    models.EndByCount,
		Count:      4,
	})
	require.NoError(t, err)
	want := []time.Time{
		at(2024, time.January, 31, 18, 0),
		at(2024, time.February, 29, 18, 0), // leap year
		at(2024, time.March, 31, 18, 0),
		at(2024, time.April, 30, 18, 0),
	}
	assert.Equal(t, want, got)
}

func TestGenerateMonthlyClampsFebruaryNonLeap(t *testing.T) {
	got, err := Generate(models.RecurrenceRule{
		StartDate:  at(2023, time.January, 31, 18, 0),
		Pattern:    models.PatternMonthly,
		Frequency:  1,
		DayOfMonth: 31,
		EndType:    models.EndByCount,
		Count:      2,
	})
	require.NoError(t, err)
	want := []time.Time{
		at(2023, time.January, 31, 18, 0),
		at(2023, time.February, 28, 18, 0),
	}
	assert.Equal(t, want, got)
}

func TestGenerateMonthlySkipsTargetDayBeforeStart(t *testing.T) {
	// Day 10 of the start month precedes the start date, so the series
	// begins the following month.
	got, err := Generate(models.RecurrenceRule{
		StartDate:  at(2024, time.March, 15, 10, 0),
		Pattern:    models.PatternMonthly,
		Frequency:  1,
		DayOfMonth: 10,
		EndType:    models.EndByCount,
		Count:      2,
	})
	require.NoError(t, err)
	want := []time.Time{
		at(2024, time.April, 10, 10, 0),
		at(2024, time.May, 10, 10, 0),
	}
	assert.Equal(t, want, got)
}

func TestGenerateMonthlyDefaultsToStartDay(t *testing.T) {
	got, err := Generate(models.RecurrenceRule{
		StartDate: at(2024, time.May, 20, 16, 0),
		Pattern:   models.PatternMonthly,
		Frequency: 1,
		EndType:   models.EndByCount,
		Count:     3,
	})
	require.NoError(t, err)
	want := []time.Time{
		at(2024, time.May, 20, 16, 0),
		at(2024, time.June, 20, 16, 0),
		at(2024, time.July, 20, 16, 0),
	}
	assert.Equal(t, want, got)
}

func TestGenerateMonthlyQuarterly(t *testing.T) {
	got, err := Generate(models.RecurrenceRule{
		StartDate: at(2024, time.January, 15, 12, 0),
		Pattern:   models.PatternMonthly,
		Frequency: 3,
		EndType:   models.EndByDate,
		EndDate:   at(2024, time.December, 31, 23, 59),
	})
	require.NoError(t, err)
	want := []time.Time{
		at(2024, time.January, 15, 12, 0),
		at(2024, time.April, 15, 12, 0),
		at(2024, time.July, 15, 12, 0),
		at(2024, time.October, 15, 12, 0),
	}
	assert.Equal(t, want, got)
}

func TestGenerateSequenceProperties(t *testing.T) {
	start := time.Date(2024, time.February, 29, 13, 37, 21, 0, time.UTC)
	rules := []models.RecurrenceRule{
		{StartDate: start, Pattern: models.PatternDaily, Frequency: 2, EndType: models.EndNever},
		{StartDate: start, Pattern: models.PatternWeekly, Frequency: 1, DaysOfWeek: []int{0, 2, 6}, EndType: models.EndNever},
		{StartDate: start, Pattern: models.PatternCustom, Frequency: 3, DaysOfWeek: []int{1, 5}, EndType: models.EndByCount, Count: 20},
		{StartDate: start, Pattern: models.PatternMonthly, Frequency: 1, DayOfMonth: 30, EndType: models.EndNever},
	}
	for _, rule := range rules {
		got, err := Generate(rule)
		require.NoError(t, err)
		require.NotEmpty(t, got)
		for i, instant := range got {
			hh, mm, ss := instant.Clock()
			sh, sm, sst := start.Clock()
			assert.Equal(t, [3]int{sh, sm, sst}, [3]int{hh, mm, ss}, "time-of-day must match the start date")
			assert.False(t, instant.Before(start), "no instant may precede the start date")
			if i > 0 {
				assert.True(t, got[i-1].Before(instant), "sequence must be strictly increasing")
			}
		}
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	rule := models.RecurrenceRule{
		StartDate:  at(2024, time.January, 1, 9, 15),
		Pattern:    models.PatternWeekly,
		Frequency:  2,
		DaysOfWeek: []int{1, 3, 5},
		EndType:    models.EndByCount,
		Count:      12,
	}
	first, err := Generate(rule)
	require.NoError(t, err)
	second, err := Generate(rule)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestClampDayOfMonth(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		day   int
		want  int
	}{
		{2024, time.February, 31, 29}, // leap year
		{2023, time.February, 31, 28},
		{2000, time.February, 31, 29}, // divisible by 400
		{2100, time.February, 31, 28}, // century, not leap
		{2023, time.April, 31, 30},
		{2023, time.January, 31, 31},
		{2023, time.February, 15, 15},
		{2024, time.December, 31, 31},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, clampDayOfMonth(tc.year, tc.month, tc.day),
			"clamp(%d, %s, %d)", tc.year, tc.month, tc.day)
	}
}
