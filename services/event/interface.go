package event

import (
	"context"
	"time"

	auditRepo "gatherly/database/repository/audit"
	eventRepo "gatherly/database/repository/event"
	"gatherly/models"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// EventService is the event-management surface of the admin panel.
type EventService interface {
	// CreateEvent persists the event and, when it carries a recurrence
	// rule, expands and persists the whole series. It returns the stored
	// parent and its children in series order.
	CreateEvent(ctx context.Context, actorID string, event models.Event) (*models.Event, []models.Event, error)
	// PreviewRecurrence expands a draft rule for the operator form without
	// persisting anything.
	PreviewRecurrence(ctx context.Context, rule models.RecurrenceRule) ([]time.Time, error)
	GetEvent(ctx context.Context, id string) (*models.Event, error)
	ListCommunityEvents(ctx context.Context, communityID string) ([]models.Event, error)
	GetSeries(ctx context.Context, parentID string) ([]models.Event, error)
	UpdateEvent(ctx context.Context, actorID string, event models.Event) (*models.Event, error)
	DeleteSeries(ctx context.Context, actorID, parentID string) (int64, error)
}

// DefaultEventService implements EventService.
type DefaultEventService struct {
	Repo      eventRepo.EventRepository
	AuditRepo auditRepo.AuditRepository
	// Reminders enqueues instance reminder tasks; nil disables scheduling.
	Reminders *asynq.Client
	// PreviewCache serves repeated previews of an unchanged draft rule;
	// nil disables caching.
	PreviewCache *redis.Client
}
