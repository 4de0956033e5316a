package pricingRepo

import (
	"context"
	"time"

	"impulso/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Get returns the global pricing record, or nil when absent.
func (r *mongoPricingRepo) Get(ctx context.Context) (*models.PricingConfig, error) {
	var cfg models.PricingConfig
	err := r.coll.FindOne(ctx, bson.M{"id": models.PricingConfigID}).Decode(&cfg)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Upsert writes the single global pricing record.
func (r *mongoPricingRepo) Upsert(ctx context.Context, cfg models.PricingConfig) error {
	cfg.ID = models.PricingConfigID
	cfg.UpdatedAt = time.Now()

	opts := options.Replace().SetUpsert(true)
	_, err := r.coll.ReplaceOne(ctx, bson.M{"id": models.PricingConfigID}, cfg, opts)
	return err
}
