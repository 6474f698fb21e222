package providerRepo

import (
	"context"
	"fmt"
	"time"

	"pawmart/database"
	"pawmart/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoProviderRepo is the MongoDB-backed provider repository.
type MongoProviderRepo struct {
	coll *mongo.Collection
}

// NewMongoProviderRepo returns a repository over the "providers" collection.
func NewMongoProviderRepo() *MongoProviderRepo {
	return &MongoProviderRepo{coll: database.DB().Collection("providers")}
}

func (r *MongoProviderRepo) GetByID(ctx context.Context, id string) (*models.Provider, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var provider models.Provider
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&provider)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch provider: %w", err)
	}
	return &provider, nil
}

func (r *MongoProviderRepo) SetStatus(ctx context.Context, id, status string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("failed to update provider status: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
