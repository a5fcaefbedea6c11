package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"fitbook/database"
	"fitbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	coll := database.MongoClient.Database("fitbook").Collection("bookings")
	repo := &MongoBookingRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// slotFilter matches the exact (trainer, user, date, slot) tuple with an
// active status. The slot is compared field by field against the snapshot.
func slotFilter(trainerID, userID, date string, slot models.TimeSlot) bson.M {
	return bson.M{
		"trainerId":         trainerID,
		"userId":            userID,
		"date":              date,
		"slot.day":          slot.Day,
		"slot.startingTime": slot.StartingTime,
		"slot.endingTime":   slot.EndingTime,
		"status":            bson.M{"$in": bson.A{models.BookingStatusPending, models.BookingStatusApproved}},
	}
}

// CreateApproved inserts the booking row. The unique index on
// externalSessionId makes the insert the idempotence point: a replayed webhook
// hits a duplicate-key error, which is reported as created=false rather than
// an error so the caller can ack the delivery.
func (r *MongoBookingRepo) CreateApproved(ctx context.Context, booking *models.Booking) (bool, error) {
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now()
	}

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to insert booking: %w", err)
	}
	return true, nil
}

// CountActiveOnSlot counts competing active bookings from other sessions.
func (r *MongoBookingRepo) CountActiveOnSlot(ctx context.Context, trainerID, userID, date string, slot models.TimeSlot, excludeSessionID string) (int64, error) {
	filter := slotFilter(trainerID, userID, date, slot)
	filter["externalSessionId"] = bson.M{"$ne": excludeSessionID}

	n, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings on slot: %w", err)
	}
	return n, nil
}

// MarkConflict flags a booking for manual reconciliation.
func (r *MongoBookingRepo) MarkConflict(ctx context.Context, bookingID string) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": bookingID},
		bson.M{"$set": bson.M{"conflict": true}},
	)
	if err != nil {
		return fmt.Errorf("failed to mark booking %s as conflicted: %w", bookingID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("booking with id %s not found", bookingID)
	}
	return nil
}

// HasActiveConflict reports whether an active booking already holds the tuple.
func (r *MongoBookingRepo) HasActiveConflict(trainerID, userID, date string, slot models.TimeSlot) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, slotFilter(trainerID, userID, date, slot))
	if err != nil {
		return false, fmt.Errorf("failed to check for booking conflicts: %w", err)
	}
	return n > 0, nil
}

// GetBySessionID retrieves a booking by its external session id.
func (r *MongoBookingRepo) GetBySessionID(sessionID string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"externalSessionId": sessionID}).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking for session %s: %w", sessionID, err)
	}
	return &booking, nil
}
