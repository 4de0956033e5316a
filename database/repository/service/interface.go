package serviceRepo

import (
	"context"

	"impulso/database"
	"impulso/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ServiceRepository persists the service catalog.
type ServiceRepository interface {
	Create(ctx context.Context, service models.Service) (string, error)
	GetByID(ctx context.Context, id string) (*models.Service, error)
	List(ctx context.Context, filter models.ServiceFilter) ([]models.Service, error)
	Update(ctx context.Context, service models.Service) error
	Delete(ctx context.Context, id string) error
}

type mongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo returns a ServiceRepository backed by MongoDB.
func NewMongoServiceRepo() ServiceRepository {
	return &mongoServiceRepo{coll: database.DB().Collection("services")}
}
