// Package pricing applies the global profit margin to base prices.
package pricing

import (
	"context"
	"math"

	"impulso/apperrors"
	pricingRepo "impulso/database/repository/pricing"
	"impulso/models"
)

// Service computes final prices from the single global margin record.
type Service interface {
	// PriceWithMargin returns round2(basePrice * (1 + margin/100)). A missing
	// config record means margin 0.
	PriceWithMargin(ctx context.Context, basePrice float64) (float64, error)
	SetMargin(ctx context.Context, value float64) error
	GetMargin(ctx context.Context) (float64, error)
}

// DefaultService is the production implementation.
type DefaultService struct {
	Repo pricingRepo.PricingConfigRepository
}

func (s *DefaultService) PriceWithMargin(ctx context.Context, basePrice float64) (float64, error) {
	margin, err := s.GetMargin(ctx)
	if err != nil {
		return 0, err
	}
	return Round2(basePrice * (1 + margin/100)), nil
}

func (s *DefaultService) SetMargin(ctx context.Context, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 || value > 100 {
		return apperrors.Validation("margin must be a number between 0 and 100, got %v", value)
	}
	cfg := models.PricingConfig{MarginPercent: value}
	if err := s.Repo.Upsert(ctx, cfg); err != nil {
		return apperrors.Storage(err, "failed to persist pricing config")
	}
	return nil
}

func (s *DefaultService) GetMargin(ctx context.Context) (float64, error) {
	cfg, err := s.Repo.Get(ctx)
	if err != nil {
		return 0, apperrors.Storage(err, "failed to load pricing config")
	}
	if cfg == nil {
		return 0, nil
	}
	return cfg.MarginPercent, nil
}

// Round2 rounds half-up to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
