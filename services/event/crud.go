package event

import (
	"context"
	"fmt"
	"strconv"

	"gatherly/models"
)

// GetEvent returns a single event by ID.
func (s *DefaultEventService) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	if id == "" {
		return nil, NewEventError("event id is required")
	}
	evt, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch event %s: %w", id, err)
	}
	return evt, nil
}

// ListCommunityEvents returns all events of a community in date order.
func (s *DefaultEventService) ListCommunityEvents(ctx context.Context, communityID string) ([]models.Event, error) {
	if communityID == "" {
		return nil, NewEventError("community id is required")
	}
	events, err := s.Repo.ListByCommunity(ctx, communityID)
	if err != nil {
		return nil, fmt.Errorf("failed to list events for community %s: %w", communityID, err)
	}
	return events, nil
}

// GetSeries returns the parent and all of its instances in series order.
func (s *DefaultEventService) GetSeries(ctx context.Context, parentID string) ([]models.Event, error) {
	if parentID == "" {
		return nil, NewEventError("event id is required")
	}
	events, err := s.Repo.ListSeries(ctx, parentID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch series %s: %w", parentID, err)
	}
	return events, nil
}

// UpdateEvent replaces the stored event. Recurrence rules are fixed at
// creation time; updates may not introduce or alter one.
func (s *DefaultEventService) UpdateEvent(ctx context.Context, actorID string, event models.Event) (*models.Event, error) {
	if event.ID == "" {
		return nil, NewEventError("event id is required")
	}
	if err := validateEvent(&event); err != nil {
		return nil, err
	}

	existing, err := s.Repo.GetByID(ctx, event.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch event %s: %w", event.ID, err)
	}
	event.Recurrence = existing.Recurrence
	event.IsRecurringParent = existing.IsRecurringParent
	event.ParentEventID = existing.ParentEventID
	event.SeriesIndex = existing.SeriesIndex
	event.CreatedAt = existing.CreatedAt

	if err := s.Repo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to update event %s: %w", event.ID, err)
	}

	s.audit(ctx, actorID, "event.update", event.ID, map[string]string{"title": event.Title})
	return &event, nil
}

// DeleteSeries removes an event and every instance generated from it.
func (s *DefaultEventService) DeleteSeries(ctx context.Context, actorID, parentID string) (int64, error) {
	if parentID == "" {
		return 0, NewEventError("event id is required")
	}
	deleted, err := s.Repo.DeleteSeries(ctx, parentID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete series %s: %w", parentID, err)
	}

	s.audit(ctx, actorID, "event.delete", parentID, map[string]string{
		"deleted": strconv.FormatInt(deleted, 10),
	})
	return deleted, nil
}
