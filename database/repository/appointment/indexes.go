package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"pawmart/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the appointments collection.
func (r *MongoAppointmentRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		// Unique index on appointment ID.
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// The exclusivity invariant: at most one active appointment per
		// (providerId, date, start). Cancelled docs fall out of the partial
		// filter, which is what frees a slot on release. Partial filters
		// cannot express $ne, so the active statuses are enumerated.
		{
			Keys: bson.D{
				{Key: "providerId", Value: 1},
				{Key: "date", Value: 1},
				{Key: "start", Value: 1},
			},
			Options: options.Index().
				SetUnique(true).
				SetName("unique_active_slot").
				SetPartialFilterExpression(bson.M{
					"status": bson.M{"$in": bson.A{
						models.AppointmentPendingPayment,
						models.AppointmentConfirmed,
					}},
				}),
		},
		// Listing patterns.
		{
			Keys:    bson.D{{Key: "consumerId", Value: 1}, {Key: "date", Value: -1}},
			Options: options.Index().SetName("consumer_date_idx"),
		},
		{
			Keys:    bson.D{{Key: "providerId", Value: 1}, {Key: "date", Value: 1}, {Key: "start", Value: 1}},
			Options: options.Index().SetName("provider_date_start_idx"),
		},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create appointment indexes: %w", err)
	}
	return nil
}
