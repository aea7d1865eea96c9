package recurrence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gatherly/models"
)

func TestBuildChildPayloads(t *testing.T) {
	parent := models.Event{
		ID:                "parent-1",
		CommunityID:       "community-9",
		Title:             "Weekly standup",
		Description:       "All hands",
		Location:          "Main hall",
		Capacity:          40,
		PriceMinor:        1500,
		Currency:          "EUR",
		IsRecurringParent: true,
		SeriesIndex:       1,
		Recurrence: &models.RecurrenceRule{
			Pattern:   models.PatternWeekly,
			Frequency: 1,
			EndType:   models.EndNever,
		},
	}
	instants := []time.Time{
		time.Date(2024, time.January, 8, 9, 0, 0, 0, time.UTC),
		time.Date(2024, time.January, 15, 9, 0, 0, 0, time.UTC),
		time.Date(2024, time.January, 22, 9, 0, 0, 0, time.UTC),
	}

	children := BuildChildPayloads(parent.ID, parent, instants, DefaultSeriesStart)
	require.Len(t, children, len(instants))

	for i, child := range children {
		assert.Empty(t, child.ID, "repository assigns child IDs")
		assert.Equal(t, instants[i], child.DateTime, "input order preserved")
		assert.Equal(t, parent.ID, child.ParentEventID)
		assert.Equal(t, DefaultSeriesStart+i, child.SeriesIndex, "contiguous indices, no gaps")
		assert.False(t, child.IsRecurringParent)
		assert.Nil(t, child.Recurrence, "children carry no rule of their own")

		// Shared fields are copied through untouched.
		assert.Equal(t, parent.CommunityID, child.CommunityID)
		assert.Equal(t, parent.Title, child.Title)
		assert.Equal(t, parent.Description, child.Description)
		assert.Equal(t, parent.Location, child.Location)
		assert.Equal(t, parent.Capacity, child.Capacity)
		assert.Equal(t, parent.PriceMinor, child.PriceMinor)
		assert.Equal(t, parent.Currency, child.Currency)
	}
}

func TestBuildChildPayloadsCustomStartIndex(t *testing.T) {
	instants := []time.Time{
		time.Date(2024, time.March, 1, 19, 30, 0, 0, time.UTC),
		time.Date(2024, time.March, 8, 19, 30, 0, 0, time.UTC),
	}
	children := BuildChildPayloads("parent-2", models.Event{Title: "Movie night"}, instants, 7)
	require.Len(t, children, 2)
	assert.Equal(t, 7, children[0].SeriesIndex)
	assert.Equal(t, 8, children[1].SeriesIndex)
}

func TestBuildChildPayloadsEmptyInput(t *testing.T) {
	children := BuildChildPayloads("parent-3", models.Event{}, nil, DefaultSeriesStart)
	assert.Empty(t, children)
}
