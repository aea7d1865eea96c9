package adminRepo

import (
	"context"

	"gatherly/database"
	"gatherly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AdminRepository manages operator accounts of the admin panel.
type AdminRepository interface {
	Create(ctx context.Context, admin models.Admin) (string, error)
	GetByID(ctx context.Context, id string) (*models.Admin, error)
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
}

type mongoAdminRepo struct {
	coll *mongo.Collection
}

// NewMongoAdminRepo returns a new AdminRepository instance using MongoDB.
func NewMongoAdminRepo() AdminRepository {
	db := database.MongoClient.Database("gatherly")
	return &mongoAdminRepo{
		coll: db.Collection("admins"),
	}
}
