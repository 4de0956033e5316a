package reviewRepo

import (
	"context"

	"impulso/database"
	"impulso/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ReviewRepository persists append-only reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review models.Review) (string, error)
	List(ctx context.Context, filter models.ReviewFilter) ([]models.Review, error)

	// GetByJovemID returns every review targeting the jovem, the input of the
	// full re-scan rating average.
	GetByJovemID(ctx context.Context, jovemID string) ([]models.Review, error)
}

type mongoReviewRepo struct {
	coll *mongo.Collection
}

// NewMongoReviewRepo returns a ReviewRepository backed by MongoDB.
func NewMongoReviewRepo() ReviewRepository {
	return &mongoReviewRepo{coll: database.DB().Collection("reviews")}
}
