package adminRepo

import (
	"context"
	"time"

	"gatherly/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new admin account and returns its ID.
func (r *mongoAdminRepo) Create(ctx context.Context, admin models.Admin) (string, error) {
	if admin.ID == "" {
		admin.ID = uuid.New().String()
	}
	admin.CreatedAt = time.Now()
	admin.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, admin)
	if err != nil {
		return "", err
	}
	return admin.ID, nil
}

// GetByID returns an admin account by its ID.
func (r *mongoAdminRepo) GetByID(ctx context.Context, id string) (*models.Admin, error) {
	var admin models.Admin
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&admin)
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// GetByEmail returns an admin account by its email address.
func (r *mongoAdminRepo) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&admin)
	if err != nil {
		return nil, err
	}
	return &admin, nil
}
