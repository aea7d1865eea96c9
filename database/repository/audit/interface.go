package auditRepo

import (
	"context"

	"gatherly/database"
	"gatherly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AuditRepository stores the append-only admin action log.
type AuditRepository interface {
	Record(ctx context.Context, entry models.AuditEntry) (string, error)
	ListByEntity(ctx context.Context, entityType, entityID string) ([]models.AuditEntry, error)
	ListRecent(ctx context.Context, limit int64) ([]models.AuditEntry, error)
}

type mongoAuditRepo struct {
	coll *mongo.Collection
}

// NewMongoAuditRepo returns a new AuditRepository instance using MongoDB.
func NewMongoAuditRepo() AuditRepository {
	db := database.MongoClient.Database("gatherly")
	return &mongoAuditRepo{
		coll: db.Collection("audit_log"),
	}
}
