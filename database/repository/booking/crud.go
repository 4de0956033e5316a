package bookingRepo

import (
	"context"
	"time"

	"impulso/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new booking and returns its ID.
func (r *mongoBookingRepo) Create(ctx context.Context, booking models.Booking) (string, error) {
	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return "", err
	}
	return booking.ID, nil
}

// GetByID returns a booking by its ID, or nil when absent.
func (r *mongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	var booking models.Booking
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// List returns bookings matching the filter.
func (r *mongoBookingRepo) List(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error) {
	query := bson.M{}
	if filter.ClientID != "" {
		query["clientId"] = filter.ClientID
	}
	if filter.JovemID != "" {
		query["jovemId"] = filter.JovemID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	cursor, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// Update replaces the stored booking unconditionally.
func (r *mongoBookingRepo) Update(ctx context.Context, booking models.Booking) error {
	booking.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": booking.ID}, booking)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// ReplaceIfStatus replaces the booking only if it still carries the expected
// status. A zero match means another writer won the race.
func (r *mongoBookingRepo) ReplaceIfStatus(ctx context.Context, next models.Booking, from models.BookingStatus) (bool, error) {
	next.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": next.ID, "status": from}, next)
	if err != nil {
		return false, err
	}
	return res.MatchedCount == 1, nil
}

// ActiveOnDate returns the jovem's non-terminal bookings on the given date.
func (r *mongoBookingRepo) ActiveOnDate(ctx context.Context, jovemID, date string) ([]models.Booking, error) {
	query := bson.M{
		"jovemId": jovemID,
		"date":    date,
		"status": bson.M{"$nin": []models.BookingStatus{
			models.BookingCancelled,
			models.BookingCompleted,
			models.BookingRejected,
		}},
	}

	cursor, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// PendingForJovens returns pending bookings recommending any of the given jovens.
func (r *mongoBookingRepo) PendingForJovens(ctx context.Context, jovemIDs []string) ([]models.Booking, error) {
	if len(jovemIDs) == 0 {
		return nil, nil
	}
	query := bson.M{
		"status":               models.BookingPending,
		"recommendedJovens.id": bson.M{"$in": jovemIDs},
	}

	cursor, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}
