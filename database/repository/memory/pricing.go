package memoryRepo

import (
	"context"
	"sync"
	"time"

	pricingRepo "impulso/database/repository/pricing"
	"impulso/models"
)

type memPricingRepo struct {
	mu  sync.RWMutex
	cfg *models.PricingConfig
}

// NewPricingRepo returns an in-memory PricingConfigRepository.
func NewPricingRepo() pricingRepo.PricingConfigRepository {
	return &memPricingRepo{}
}

func (r *memPricingRepo) Get(ctx context.Context) (*models.PricingConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.cfg == nil {
		return nil, nil
	}
	cfg := *r.cfg
	return &cfg, nil
}

func (r *memPricingRepo) Upsert(ctx context.Context, cfg models.PricingConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cfg.ID = models.PricingConfigID
	cfg.UpdatedAt = time.Now()
	r.cfg = &cfg
	return nil
}
