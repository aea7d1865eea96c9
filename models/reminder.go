package models

import "time"

// ReminderPayload is the asynq task payload for an event instance reminder.
type ReminderPayload struct {
	EventID     string    `json:"eventId"`
	CommunityID string    `json:"communityId"`
	Title       string    `json:"title"`
	StartsAt    time.Time `json:"startsAt"`
	SeriesIndex int       `json:"seriesIndex"`
}
