package bookingRepo

import (
	"context"

	"impulso/database"
	"impulso/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository persists bookings. Lookups return (nil, nil) when the
// booking does not exist; errors are reserved for storage failures.
type BookingRepository interface {
	Create(ctx context.Context, booking models.Booking) (string, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	List(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error)
	Update(ctx context.Context, booking models.Booking) error

	// ReplaceIfStatus persists the full next-state object only when the stored
	// booking still carries the expected status. It returns false when another
	// writer got there first; at most one transition wins a race.
	ReplaceIfStatus(ctx context.Context, next models.Booking, from models.BookingStatus) (bool, error)

	// ActiveOnDate returns the jovem's non-terminal bookings on a date, used
	// for schedule conflict scans.
	ActiveOnDate(ctx context.Context, jovemID, date string) ([]models.Booking, error)

	// PendingForJovens returns pending bookings whose recommendation snapshot
	// references any of the given jovem ids.
	PendingForJovens(ctx context.Context, jovemIDs []string) ([]models.Booking, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a BookingRepository backed by MongoDB.
func NewMongoBookingRepo() BookingRepository {
	return &mongoBookingRepo{coll: database.DB().Collection("bookings")}
}
