package eventRepo

import (
	"context"

	"gatherly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListByCommunity fetches all events of a community in chronological order.
func (r *mongoEventRepo) ListByCommunity(ctx context.Context, communityID string) ([]models.Event, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date_time", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"community_id": communityID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []models.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// ListSeries returns the parent event and all of its children ordered by
// series index (the parent carries index 1).
func (r *mongoEventRepo) ListSeries(ctx context.Context, parentID string) ([]models.Event, error) {
	opts := options.Find().SetSort(bson.D{{Key: "series_index", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{
		"$or": []bson.M{
			{"id": parentID},
			{"parent_event_id": parentID},
		},
	}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []models.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}
