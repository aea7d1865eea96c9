package models

import "time"

// RecurrencePattern selects the expansion strategy for a recurring event.
type RecurrencePattern string

const (
	PatternDaily   RecurrencePattern = "daily"
	PatternWeekly  RecurrencePattern = "weekly"
	PatternMonthly RecurrencePattern = "monthly"
	// PatternCustom expands exactly like weekly; it exists so the operator
	// form can distinguish "every week" from an explicit multi-day selection.
	PatternCustom RecurrencePattern = "custom"
)

// RecurrenceEndType says how a recurring series terminates.
type RecurrenceEndType string

const (
	EndByDate  RecurrenceEndType = "date"  // stop after EndDate, inclusive
	EndByCount RecurrenceEndType = "count" // stop after Count instances
	EndNever   RecurrenceEndType = "never" // bounded only by the safety cap
)

// RecurrenceRule describes how a recurring event expands into concrete
// instances. It is built once from the operator form and never mutated.
type RecurrenceRule struct {
	StartDate  time.Time         `bson:"start_date" json:"startDate"` // anchors the first instance and the time-of-day of every instance
	Pattern    RecurrencePattern `bson:"pattern" json:"pattern"`
	Frequency  int               `bson:"frequency" json:"frequency"`                       // every N days/weeks/months; must be >= 1
	DaysOfWeek []int             `bson:"days_of_week,omitempty" json:"daysOfWeek,omitempty"` // 0=Sunday..6=Saturday; weekly/custom only
	DayOfMonth int               `bson:"day_of_month,omitempty" json:"dayOfMonth,omitempty"` // 1-31; monthly only
	EndType    RecurrenceEndType `bson:"end_type" json:"endType"`
	EndDate    time.Time         `bson:"end_date,omitempty" json:"endDate,omitempty"` // required iff EndType == date
	Count      int               `bson:"count,omitempty" json:"count,omitempty"`      // required iff EndType == count
}
