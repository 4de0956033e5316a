package ongRepo

import (
	"context"

	"impulso/database"
	"impulso/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// OngRepository persists partner-organization profiles.
type OngRepository interface {
	Create(ctx context.Context, ong models.Ong) (string, error)
	GetByID(ctx context.Context, id string) (*models.Ong, error)
	GetByUserID(ctx context.Context, userID string) (*models.Ong, error)
	List(ctx context.Context) ([]models.Ong, error)
	Update(ctx context.Context, ong models.Ong) error
}

type mongoOngRepo struct {
	coll *mongo.Collection
}

// NewMongoOngRepo returns an OngRepository backed by MongoDB.
func NewMongoOngRepo() OngRepository {
	return &mongoOngRepo{coll: database.DB().Collection("ongs")}
}
