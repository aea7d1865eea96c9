package recurrence

import (
	"time"

	"gatherly/models"
)

// DefaultSeriesStart is the series index of the first child payload. The
// parent record conventionally occupies index 1.
const DefaultSeriesStart = 2

// BuildChildPayloads projects the generated instants onto child event
// payloads, one per instant and in the same order. Each payload carries the
// parent's shared fields with its own date-time and a contiguous series
// index starting at startIndex (pass DefaultSeriesStart unless resuming an
// existing series). IDs are left empty for the repository to assign.
func BuildChildPayloads(parentID string, shared models.Event, instants []time.Time, startIndex int) []models.Event {
	children := make([]models.Event, 0, len(instants))
	for i, instant := range instants {
		child := shared
		child.ID = ""
		child.DateTime = instant
		child.ParentEventID = parentID
		child.SeriesIndex = startIndex + i
		child.IsRecurringParent = false
		child.Recurrence = nil
		children = append(children, child)
	}
	return children
}
