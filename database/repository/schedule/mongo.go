package scheduleRepo

import (
	"context"
	"fmt"
	"time"

	"pawmart/database"
	"pawmart/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoScheduleRepo is the MongoDB-backed schedule repository.
type MongoScheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoScheduleRepo returns a repository over the "schedules" collection.
func NewMongoScheduleRepo() *MongoScheduleRepo {
	return &MongoScheduleRepo{coll: database.DB().Collection("schedules")}
}

func (r *MongoScheduleRepo) Replace(ctx context.Context, schedule *models.WeeklySchedule) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	schedule.UpdatedAt = time.Now()
	filter := bson.M{"providerId": schedule.ProviderID}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, filter, schedule, opts); err != nil {
		return fmt.Errorf("failed to replace weekly schedule: %w", err)
	}
	return nil
}

func (r *MongoScheduleRepo) GetByProvider(ctx context.Context, providerID string) (*models.WeeklySchedule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var schedule models.WeeklySchedule
	err := r.coll.FindOne(ctx, bson.M{"providerId": providerID}).Decode(&schedule)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch weekly schedule: %w", err)
	}
	return &schedule, nil
}

func (r *MongoScheduleRepo) DeleteWindow(ctx context.Context, providerID, windowID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"providerId": providerID}
	update := bson.M{
		"$pull": bson.M{"windows": bson.M{"id": windowID}},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to delete availability window: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoScheduleRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "providerId", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_provider"),
		},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create schedule indexes: %w", err)
	}
	return nil
}
