// Package catalog manages the bookable service catalog.
package catalog

import (
	"context"

	"impulso/apperrors"
	serviceRepo "impulso/database/repository/service"
	"impulso/models"
)

// Service is the catalog operation surface.
type Service interface {
	Create(ctx context.Context, svc models.Service) (*models.Service, error)
	Get(ctx context.Context, id string) (*models.Service, error)
	List(ctx context.Context, filter models.ServiceFilter) ([]models.Service, error)
	Update(ctx context.Context, id string, upd models.ServiceUpdate) (*models.Service, error)
	Delete(ctx context.Context, id string) error
}

// DefaultService is the production implementation.
type DefaultService struct {
	Catalog serviceRepo.ServiceRepository
}

func (s *DefaultService) Create(ctx context.Context, svc models.Service) (*models.Service, error) {
	if svc.Name == "" || svc.Category == "" {
		return nil, apperrors.Validation("name and category are required")
	}
	if svc.BasePrice < 0 {
		return nil, apperrors.Validation("basePrice must not be negative")
	}
	if svc.DurationHours < 0 {
		return nil, apperrors.Validation("durationHours must not be negative")
	}
	if svc.Status == "" {
		svc.Status = models.ServiceAvailable
	}
	switch svc.Status {
	case models.ServiceAvailable, models.ServiceInactive:
	default:
		return nil, apperrors.Validation("unknown status %q", svc.Status)
	}

	id, err := s.Catalog.Create(ctx, svc)
	if err != nil {
		return nil, apperrors.Storage(err, "failed to persist service")
	}
	return s.Catalog.GetByID(ctx, id)
}

func (s *DefaultService) Get(ctx context.Context, id string) (*models.Service, error) {
	return s.loadService(ctx, id)
}

func (s *DefaultService) List(ctx context.Context, filter models.ServiceFilter) ([]models.Service, error) {
	services, err := s.Catalog.List(ctx, filter)
	if err != nil {
		return nil, apperrors.Storage(err, "failed to list services")
	}
	return services, nil
}

func (s *DefaultService) Update(ctx context.Context, id string, upd models.ServiceUpdate) (*models.Service, error) {
	svc, err := s.loadService(ctx, id)
	if err != nil {
		return nil, err
	}
	if upd.Name != nil {
		svc.Name = *upd.Name
	}
	if upd.Description != nil {
		svc.Description = *upd.Description
	}
	if upd.Category != nil {
		svc.Category = *upd.Category
	}
	if upd.BasePrice != nil {
		if *upd.BasePrice < 0 {
			return nil, apperrors.Validation("basePrice must not be negative")
		}
		svc.BasePrice = *upd.BasePrice
	}
	if upd.DurationHours != nil {
		svc.DurationHours = *upd.DurationHours
	}
	if upd.Status != nil {
		switch *upd.Status {
		case models.ServiceAvailable, models.ServiceInactive:
		default:
			return nil, apperrors.Validation("unknown status %q", *upd.Status)
		}
		svc.Status = *upd.Status
	}

	if err := s.Catalog.Update(ctx, *svc); err != nil {
		return nil, apperrors.Storage(err, "failed to persist service %s", id)
	}
	return s.Catalog.GetByID(ctx, id)
}

func (s *DefaultService) Delete(ctx context.Context, id string) error {
	if _, err := s.loadService(ctx, id); err != nil {
		return err
	}
	if err := s.Catalog.Delete(ctx, id); err != nil {
		return apperrors.Storage(err, "failed to delete service %s", id)
	}
	return nil
}

func (s *DefaultService) loadService(ctx context.Context, id string) (*models.Service, error) {
	svc, err := s.Catalog.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.Storage(err, "failed to load service %s", id)
	}
	if svc == nil {
		return nil, apperrors.NotFound("service %s not found", id)
	}
	return svc, nil
}
