package petRepo

import (
	"context"
	"fmt"
	"time"

	"pawmart/database"
	"pawmart/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoPetRepo is the MongoDB-backed pet repository.
type MongoPetRepo struct {
	coll *mongo.Collection
}

// NewMongoPetRepo returns a repository over the "pets" collection.
func NewMongoPetRepo() *MongoPetRepo {
	return &MongoPetRepo{coll: database.DB().Collection("pets")}
}

func (r *MongoPetRepo) GetByID(ctx context.Context, id string) (*models.Pet, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var pet models.Pet
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&pet)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pet: %w", err)
	}
	return &pet, nil
}

func (r *MongoPetRepo) IsOwnedBy(ctx context.Context, petID, consumerID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{"id": petID, "ownerId": consumerID})
	if err != nil {
		return false, fmt.Errorf("failed to check pet ownership: %w", err)
	}
	return count > 0, nil
}
