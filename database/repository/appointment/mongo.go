package appointmentRepo

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

// MongoAppointmentRepo is the MongoDB-backed appointment repository.
type MongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo returns a repository over the "appointments"
// collection.
func NewMongoAppointmentRepo() *MongoAppointmentRepo {
	return &MongoAppointmentRepo{coll: database.DB().Collection("appointments")}
}

func (r *MongoAppointmentRepo) Insert(ctx context.Context, appt *models.Appointment) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	appt.CreatedAt = now
	appt.UpdatedAt = now
	if _, err := r.coll.InsertOne(ctx, appt); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrSlotTaken
		}
		return fmt.Errorf("failed to insert appointment: %w", err)
	}
	return nil
}

func (r *MongoAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var appt models.Appointment
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&appt)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointment: %w", err)
	}
	return &appt, nil
}

func (r *MongoAppointmentRepo) SetCheckoutID(ctx context.Context, id, checkoutID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"checkoutId": checkoutID, "updatedAt": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("failed to set checkout id: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoAppointmentRepo) TransitionStatus(ctx context.Context, id, from, to, paymentRef, reason string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{"status": to, "updatedAt": time.Now()}
	if paymentRef != "" {
		set["paymentRef"] = paymentRef
	}
	if reason != "" {
		set["cancelReason"] = reason
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": id, "status": from},
		bson.M{"$set": set},
	)
	if err != nil {
		return fmt.Errorf("failed to transition appointment status: %w", err)
	}
	if res.MatchedCount == 0 {
		// Distinguish a missing appointment from a stale transition.
		if count, err := r.coll.CountDocuments(ctx, bson.M{"id": id}); err == nil && count == 0 {
			return ErrNotFound
		}
		return ErrStaleStatus
	}
	return nil
}

func (r *MongoAppointmentRepo) BookedStarts(ctx context.Context, providerID, date string) (map[int]bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"providerId": providerID,
		"date":       date,
		"status":     bson.M{"$ne": models.AppointmentCancelled},
	}
	opts := options.Find().SetProjection(bson.M{"start": 1})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query booked starts: %w", err)
	}
	defer cursor.Close(ctx)

	booked := make(map[int]bool)
	for cursor.Next(ctx) {
		var doc struct {
			Start int `bson:"start"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode booked start: %w", err)
		}
		booked[doc.Start] = true
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("booked starts cursor failed: %w", err)
	}
	return booked, nil
}

func (r *MongoAppointmentRepo) ListByConsumer(ctx context.Context, consumerID string) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "start", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"consumerId": consumerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list consumer appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("failed to decode consumer appointments: %w", err)
	}
	return appts, nil
}

func (r *MongoAppointmentRepo) ListByProvider(ctx context.Context, providerID, fromDate, toDate string) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"providerId": providerID}
	if fromDate != "" || toDate != "" {
		dateRange := bson.M{}
		if fromDate != "" {
			dateRange["$gte"] = fromDate
		}
		if toDate != "" {
			dateRange["$lte"] = toDate
		}
		filter["date"] = dateRange
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "start", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list provider appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("failed to decode provider appointments: %w", err)
	}
	return appts, nil
}
