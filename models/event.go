package models

import "time"

// Event represents one calendar entry of a community. A recurring series is
// stored as a parent event (series index 1) plus one child event per
// generated instance; children point back at the parent and the parent is
// unaware of its children.
type Event struct {
	ID          string    `bson:"id" json:"id"`
	CommunityID string    `bson:"community_id" json:"communityId"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Location    string    `bson:"location,omitempty" json:"location,omitempty"`
	DateTime    time.Time `bson:"date_time" json:"dateTime"`
	Capacity    int       `bson:"capacity,omitempty" json:"capacity,omitempty"`

	// Ticket price in minor units (cents); formatted for display only.
	PriceMinor int64  `bson:"price_minor,omitempty" json:"priceMinor,omitempty"`
	Currency   string `bson:"currency,omitempty" json:"currency,omitempty"`

	BannerURL string `bson:"banner_url,omitempty" json:"bannerUrl,omitempty"`

	IsRecurringParent bool            `bson:"is_recurring_parent" json:"isRecurringParent"`
	ParentEventID     string          `bson:"parent_event_id,omitempty" json:"parentEventId,omitempty"`
	SeriesIndex       int             `bson:"series_index,omitempty" json:"seriesIndex,omitempty"`
	Recurrence        *RecurrenceRule `bson:"recurrence,omitempty" json:"recurrence,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
