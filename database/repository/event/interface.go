package eventRepo

import (
	"context"

	"gatherly/database"
	"gatherly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// EventRepository persists parent events and their generated instances.
type EventRepository interface {
	Create(ctx context.Context, event models.Event) (string, error)
	// InsertInstances persists the materialized child payloads of one
	// recurring series as a single batch and returns the assigned IDs in
	// input order.
	InsertInstances(ctx context.Context, children []models.Event) ([]string, error)
	GetByID(ctx context.Context, id string) (*models.Event, error)
	ListByCommunity(ctx context.Context, communityID string) ([]models.Event, error)
	// ListSeries returns the parent and all of its children ordered by
	// series index.
	ListSeries(ctx context.Context, parentID string) ([]models.Event, error)
	Update(ctx context.Context, event models.Event) error
	// DeleteSeries removes an event together with every child that points
	// at it and reports how many records were deleted.
	DeleteSeries(ctx context.Context, parentID string) (int64, error)
}

type mongoEventRepo struct {
	coll *mongo.Collection
}

// NewMongoEventRepo returns a new EventRepository instance using MongoDB.
func NewMongoEventRepo() EventRepository {
	db := database.MongoClient.Database("gatherly")
	return &mongoEventRepo{
		coll: db.Collection("events"),
	}
}
