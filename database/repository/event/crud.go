package eventRepo

import (
	"context"
	"errors"
	"time"

	"gatherly/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new event and returns its ID.
func (r *mongoEventRepo) Create(ctx context.Context, event models.Event) (string, error) {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	event.CreatedAt = time.Now()
	event.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, event)
	if err != nil {
		return "", err
	}
	return event.ID, nil
}

// InsertInstances persists all child payloads of a series in one batch.
func (r *mongoEventRepo) InsertInstances(ctx context.Context, children []models.Event) ([]string, error) {
	if len(children) == 0 {
		return nil, nil
	}

	now := time.Now()
	ids := make([]string, 0, len(children))
	docs := make([]interface{}, 0, len(children))
	for _, child := range children {
		if child.ID == "" {
			child.ID = uuid.New().String()
		}
		child.CreatedAt = now
		child.UpdatedAt = now
		ids = append(ids, child.ID)
		docs = append(docs, child)
	}

	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return nil, err
	}
	return ids, nil
}

// GetByID returns an event by its ID.
func (r *mongoEventRepo) GetByID(ctx context.Context, id string) (*models.Event, error) {
	var event models.Event
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&event)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// Update replaces the stored event with the given one.
func (r *mongoEventRepo) Update(ctx context.Context, event models.Event) error {
	event.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": event.ID}, event)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("event not found")
	}
	return nil
}

// DeleteSeries removes the event and every child pointing at it.
func (r *mongoEventRepo) DeleteSeries(ctx context.Context, parentID string) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{
		"$or": []bson.M{
			{"id": parentID},
			{"parent_event_id": parentID},
		},
	})
	if err != nil {
		return 0, err
	}
	if res.DeletedCount == 0 {
		return 0, errors.New("event not found")
	}
	return res.DeletedCount, nil
}
