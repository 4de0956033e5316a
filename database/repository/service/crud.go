package serviceRepo

import (
	"context"
	"errors"
	"time"

	"impulso/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new catalog entry and returns its ID.
func (r *mongoServiceRepo) Create(ctx context.Context, service models.Service) (string, error) {
	if service.ID == "" {
		service.ID = uuid.New().String()
	}
	service.CreatedAt = time.Now()
	service.UpdatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, service); err != nil {
		return "", err
	}
	return service.ID, nil
}

// GetByID returns a catalog entry by ID, or nil when absent.
func (r *mongoServiceRepo) GetByID(ctx context.Context, id string) (*models.Service, error) {
	var service models.Service
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&service)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &service, nil
}

// List returns catalog entries matching the filter.
func (r *mongoServiceRepo) List(ctx context.Context, filter models.ServiceFilter) ([]models.Service, error) {
	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.OngID != "" {
		query["ongId"] = filter.OngID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	cursor, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, err
	}
	return services, nil
}

// Update replaces the stored catalog entry.
func (r *mongoServiceRepo) Update(ctx context.Context, service models.Service) error {
	service.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": service.ID}, service)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete removes a catalog entry by ID.
func (r *mongoServiceRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("service not found")
	}
	return nil
}
