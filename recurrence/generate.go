// Package recurrence expands a compact recurrence rule into the concrete
// date-times of a recurring event series and materializes them as child
// event payloads. Everything in this package is pure computation: no I/O,
// no shared state, and every function is deterministic in its inputs.
package recurrence

import (
	"errors"
	"fmt"
	"time"

	"gatherly/models"
)

// Per-pattern hard caps on the number of generated instances. They bound
// every expansion regardless of the configured end condition, including
// "never" and far-future end dates.
const (
	MaxDailyInstances   = 365
	MaxWeeklyInstances  = 52
	MaxMonthlyInstances = 24
)

// safetyHorizon bounds the week scan for rules that have no end date.
const safetyHorizon = 366 * 24 * time.Hour

// ErrInvalidFrequency is returned for a frequency below 1. A zero step would
// never advance the cursor, so it is rejected up front instead of being
// silently clamped.
var ErrInvalidFrequency = errors.New("recurrence: frequency must be >= 1")

// Generate expands rule into a chronological, finite sequence of instants.
// Every instant carries the clock time of rule.StartDate; only the date
// component varies. The sequence length never exceeds the pattern's cap.
func Generate(rule models.RecurrenceRule) ([]time.Time, error) {
	if rule.Frequency < 1 {
		return nil, ErrInvalidFrequency
	}
	switch rule.Pattern {
	case models.PatternDaily:
		return generateDaily(rule), nil
	case models.PatternWeekly, models.PatternCustom:
		return generateWeekly(rule), nil
	case models.PatternMonthly:
		return generateMonthly(rule), nil
	default:
		return nil, fmt.Errorf("recurrence: unknown pattern %q", rule.Pattern)
	}
}

func generateDaily(rule models.RecurrenceRule) []time.Time {
	out := make([]time.Time, 0, MaxDailyInstances)
	cursor := rule.StartDate
	for len(out) < MaxDailyInstances && admits(rule, cursor, len(out)) {
		out = append(out, cursor)
		cursor = cursor.AddDate(0, 0, rule.Frequency)
	}
	return out
}

// generateWeekly serves both the weekly and the custom pattern. It walks
// Sunday-aligned week windows from the week containing the start date; a
// window is eligible when its index is a multiple of the frequency, and each
// eligible window contributes one candidate per selected weekday, in
// ascending weekday order. Candidates earlier than the start date are
// discarded, so the first emitted instant is never before it.
func generateWeekly(rule models.RecurrenceRule) []time.Time {
	start := rule.StartDate
	weekStart := start.AddDate(0, 0, -int(start.Weekday()))

	days := normalizeWeekdays(rule.DaysOfWeek, start.Weekday())
	cutoff := scanCutoff(rule)

	out := make([]time.Time, 0, MaxWeeklyInstances)
	for week := 0; ; week++ {
		anchor := weekStart.AddDate(0, 0, week*7)
		if !anchor.Before(cutoff) {
			return out
		}
		if week%rule.Frequency != 0 {
			continue
		}
		for _, wd := range days {
			candidate := anchor.AddDate(0, 0, wd)
			if candidate.Before(start) {
				continue
			}
			if !candidate.Before(cutoff) {
				return out
			}
			if len(out) >= MaxWeeklyInstances || !admits(rule, candidate, len(out)) {
				return out
			}
			out = append(out, candidate)
		}
	}
}

func generateMonthly(rule models.RecurrenceRule) []time.Time {
	start := rule.StartDate
	targetDay := rule.DayOfMonth
	if targetDay == 0 {
		targetDay = start.Day()
	}
	hh, mm, ss := start.Clock()
	firstOfMonth := time.Date(start.Year(), start.Month(), 1, hh, mm, ss, start.Nanosecond(), start.Location())

	out := make([]time.Time, 0, MaxMonthlyInstances)
	for month := 0; len(out) < MaxMonthlyInstances; month++ {
		// Advancing from the first of the month keeps AddDate free of
		// end-of-month normalization; the target day is clamped per month.
		cursor := firstOfMonth.AddDate(0, month*rule.Frequency, 0)
		day := clampDayOfMonth(cursor.Year(), cursor.Month(), targetDay)
		candidate := time.Date(cursor.Year(), cursor.Month(), day, hh, mm, ss, start.Nanosecond(), start.Location())
		if candidate.Before(start) {
			// Only the opening months can land before the start date; the
			// candidate grows by Frequency months per iteration.
			continue
		}
		if !admits(rule, candidate, len(out)) {
			return out
		}
		out = append(out, candidate)
	}
	return out
}

// admits reports whether the end condition still allows emitting candidate
// as the (emitted+1)-th instance. The safety caps are enforced by the
// callers independently of this check.
func admits(rule models.RecurrenceRule, candidate time.Time, emitted int) bool {
	switch rule.EndType {
	case models.EndByDate:
		return !candidate.After(rule.EndDate)
	case models.EndByCount:
		return emitted < rule.Count
	default:
		return true
	}
}

// scanCutoff is the exclusive upper bound for the weekly window scan: one
// day past the end date when the rule ends by date, otherwise a fixed
// horizon past the start date so count/never rules still terminate even if
// every candidate is discarded.
func scanCutoff(rule models.RecurrenceRule) time.Time {
	if rule.EndType == models.EndByDate {
		return rule.EndDate.AddDate(0, 0, 1)
	}
	return rule.StartDate.Add(safetyHorizon)
}

// normalizeWeekdays sorts and deduplicates the selected weekday indices,
// dropping out-of-range values. An empty selection defaults to the weekday
// of the start date.
func normalizeWeekdays(days []int, fallback time.Weekday) []int {
	seen := [7]bool{}
	for _, d := range days {
		if d >= 0 && d <= 6 {
			seen[d] = true
		}
	}
	out := make([]int, 0, 7)
	for d := 0; d < 7; d++ {
		if seen[d] {
			out = append(out, d)
		}
	}
	if len(out) == 0 {
		out = append(out, int(fallback))
	}
	return out
}

// clampDayOfMonth maps a requested day-of-month onto the last valid day of
// the given month. Total over all inputs: day 31 in February yields 28, or
// 29 in a leap year.
func clampDayOfMonth(year int, month time.Month, day int) int {
	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if day > lastDay {
		return lastDay
	}
	return day
}
