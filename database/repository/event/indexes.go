package eventRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the events collection.
func (r *mongoEventRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Primary list-view query: community calendar in date order.
		{
			Keys:    bson.D{{Key: "community_id", Value: 1}, {Key: "date_time", Value: 1}},
			Options: options.Index().SetName("community_date_idx"),
		},
		// Series lookups and cascade deletes.
		{
			Keys:    bson.D{{Key: "parent_event_id", Value: 1}, {Key: "series_index", Value: 1}},
			Options: options.Index().SetName("parent_series_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create event indexes: %w", err)
	}
	return nil
}
