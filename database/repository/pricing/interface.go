package pricingRepo

import (
	"context"

	"impulso/database"
	"impulso/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// PricingConfigRepository persists the single global pricing record.
type PricingConfigRepository interface {
	// Get returns the config record, or nil when none has been written yet.
	Get(ctx context.Context) (*models.PricingConfig, error)
	Upsert(ctx context.Context, cfg models.PricingConfig) error
}

type mongoPricingRepo struct {
	coll *mongo.Collection
}

// NewMongoPricingRepo returns a PricingConfigRepository backed by MongoDB.
func NewMongoPricingRepo() PricingConfigRepository {
	return &mongoPricingRepo{coll: database.DB().Collection("pricing_config")}
}
