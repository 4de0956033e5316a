package reviewRepo

import (
	"context"
	"time"

	"impulso/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new review and returns its ID. Reviews are never updated.
func (r *mongoReviewRepo) Create(ctx context.Context, review models.Review) (string, error) {
	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	review.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, review); err != nil {
		return "", err
	}
	return review.ID, nil
}

// List returns reviews matching the filter.
func (r *mongoReviewRepo) List(ctx context.Context, filter models.ReviewFilter) ([]models.Review, error) {
	query := bson.M{}
	if filter.JovemID != "" {
		query["jovemId"] = filter.JovemID
	}
	if filter.ClientID != "" {
		query["clientId"] = filter.ClientID
	}
	if filter.BookingID != "" {
		query["bookingId"] = filter.BookingID
	}

	cursor, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// GetByJovemID returns every jovem-targeted review for the given jovem.
func (r *mongoReviewRepo) GetByJovemID(ctx context.Context, jovemID string) ([]models.Review, error) {
	cursor, err := r.coll.Find(ctx, bson.M{
		"jovemId":    jovemID,
		"targetType": models.ReviewTargetJovem,
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}
