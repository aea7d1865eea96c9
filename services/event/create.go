package event

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"gatherly/config"
	"gatherly/models"
	"gatherly/recurrence"
	"gatherly/services/tasks"

	"go.uber.org/zap"
)

// CreateEvent persists the parent record first, then expands the recurrence
// rule and persists all generated instances as one batch. The parent itself
// is the first occurrence of the series (series index 1); children start at
// recurrence.DefaultSeriesStart.
func (s *DefaultEventService) CreateEvent(ctx context.Context, actorID string, event models.Event) (*models.Event, []models.Event, error) {
	if err := validateEvent(&event); err != nil {
		return nil, nil, err
	}

	var instants []time.Time
	if event.Recurrence != nil {
		rule := *event.Recurrence
		if rule.StartDate.IsZero() {
			rule.StartDate = event.DateTime
		}
		if err := validateRule(rule); err != nil {
			return nil, nil, err
		}
		var err error
		instants, err = recurrence.Generate(rule)
		if err != nil {
			return nil, nil, NewEventError(err.Error())
		}
		event.Recurrence = &rule
		event.IsRecurringParent = true
		event.SeriesIndex = 1
		event.DateTime = rule.StartDate
	}

	parentID, err := s.Repo.Create(ctx, event)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create event: %w", err)
	}
	event.ID = parentID

	var children []models.Event
	if event.IsRecurringParent {
		// The parent record covers the first instance.
		if len(instants) > 0 && instants[0].Equal(event.DateTime) {
			instants = instants[1:]
		}
		children = recurrence.BuildChildPayloads(parentID, event, instants, recurrence.DefaultSeriesStart)
		ids, err := s.Repo.InsertInstances(ctx, children)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to persist series instances for event %s: %w", parentID, err)
		}
		for i := range children {
			children[i].ID = ids[i]
		}
		s.scheduleReminders(event, children)
	}

	s.audit(ctx, actorID, "event.create", parentID, map[string]string{
		"title":     event.Title,
		"instances": strconv.Itoa(len(children) + 1),
	})
	return &event, children, nil
}

// scheduleReminders enqueues one reminder task per occurrence, including the
// parent's own. Reminders are best-effort: failures are logged, never
// surfaced to the create flow.
func (s *DefaultEventService) scheduleReminders(parent models.Event, children []models.Event) {
	if s.Reminders == nil {
		return
	}
	lead := time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute

	occurrences := append([]models.Event{parent}, children...)
	for _, occ := range occurrences {
		fireAt := occ.DateTime.Add(-lead)
		if fireAt.Before(time.Now()) {
			continue
		}
		payload := models.ReminderPayload{
			EventID:     occ.ID,
			CommunityID: occ.CommunityID,
			Title:       occ.Title,
			StartsAt:    occ.DateTime,
			SeriesIndex: occ.SeriesIndex,
		}
		task, opts, err := tasks.NewReminderTask(payload, fireAt)
		if err != nil {
			zap.L().Error("Failed to build reminder task", zap.String("eventID", occ.ID), zap.Error(err))
			continue
		}
		if _, err := s.Reminders.Enqueue(task, opts...); err != nil {
			zap.L().Error("Failed to enqueue reminder task", zap.String("eventID", occ.ID), zap.Error(err))
		}
	}
}

// audit records the action; audit failures are logged but do not fail the
// operation that triggered them.
func (s *DefaultEventService) audit(ctx context.Context, actorID, action, eventID string, detail map[string]string) {
	if s.AuditRepo == nil {
		return
	}
	_, err := s.AuditRepo.Record(ctx, models.AuditEntry{
		ActorID:    actorID,
		Action:     action,
		EntityType: "event",
		EntityID:   eventID,
		Detail:     detail,
	})
	if err != nil {
		zap.L().Error("Failed to record audit entry", zap.String("action", action), zap.Error(err))
	}
}

func validateEvent(event *models.Event) error {
	if event.Title == "" {
		return NewEventError("event title is required")
	}
	if event.CommunityID == "" {
		return NewEventError("community id is required")
	}
	if event.DateTime.IsZero() {
		return NewEventError("event date-time is required")
	}
	return nil
}

func validateRule(rule models.RecurrenceRule) error {
	if rule.StartDate.IsZero() {
		return NewEventError("recurrence start date is required")
	}
	if rule.Frequency < 1 {
		return NewEventError("recurrence frequency must be at least 1")
	}
	switch rule.Pattern {
	case models.PatternDaily, models.PatternWeekly, models.PatternCustom, models.PatternMonthly:
	default:
		return NewEventError(fmt.Sprintf("unknown recurrence pattern %q", rule.Pattern))
	}
	switch rule.EndType {
	case models.EndByDate:
		if rule.EndDate.IsZero() {
			return NewEventError("end date is required when the series ends by date")
		}
		if rule.EndDate.Before(rule.StartDate) {
			return NewEventError("end date is before the start date")
		}
	case models.EndByCount:
		if rule.Count < 1 {
			return NewEventError("instance count must be at least 1 when the series ends by count")
		}
	case models.EndNever:
	default:
		return NewEventError(fmt.Sprintf("unknown recurrence end type %q", rule.EndType))
	}
	if rule.DayOfMonth < 0 || rule.DayOfMonth > 31 {
		return NewEventError("day of month must be between 1 and 31")
	}
	for _, d := range rule.DaysOfWeek {
		if d < 0 || d > 6 {
			return NewEventError("days of week must be between 0 (Sunday) and 6 (Saturday)")
		}
	}
	return nil
}
