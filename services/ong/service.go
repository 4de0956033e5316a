// Package ong manages partner-organization profiles and their rosters.
package ong

import (
	"context"

	"impulso/apperrors"
	jovemRepo "impulso/database/repository/jovem"
	ongRepo "impulso/database/repository/ong"
	"impulso/models"
)

// Service is the ONG operation surface.
type Service interface {
	Get(ctx context.Context, id string) (*models.Ong, error)
	GetByUserID(ctx context.Context, userID string) (*models.Ong, error)
	List(ctx context.Context) ([]models.Ong, error)
	Update(ctx context.Context, id string, upd models.OngUpdate) (*models.Ong, error)

	// Roster lists the ONG's jovens with their derived statistics.
	Roster(ctx context.Context, id string) ([]models.Jovem, error)
}

// DefaultService is the production implementation.
type DefaultService struct {
	Ongs   ongRepo.OngRepository
	Jovens jovemRepo.JovemRepository
}

func (s *DefaultService) Get(ctx context.Context, id string) (*models.Ong, error) {
	return s.loadOng(ctx, id)
}

func (s *DefaultService) GetByUserID(ctx context.Context, userID string) (*models.Ong, error) {
	ong, err := s.Ongs.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperrors.Storage(err, "failed to load ONG for user %s", userID)
	}
	if ong == nil {
		return nil, apperrors.NotFound("no ONG profile for user %s", userID)
	}
	return ong, nil
}

func (s *DefaultService) List(ctx context.Context) ([]models.Ong, error) {
	ongs, err := s.Ongs.List(ctx)
	if err != nil {
		return nil, apperrors.Storage(err, "failed to list ONGs")
	}
	return ongs, nil
}

func (s *DefaultService) Update(ctx context.Context, id string, upd models.OngUpdate) (*models.Ong, error) {
	ong, err := s.loadOng(ctx, id)
	if err != nil {
		return nil, err
	}
	if upd.Name != nil {
		ong.Name = *upd.Name
	}
	if upd.Phone != nil {
		ong.Phone = *upd.Phone
	}
	if upd.Description != nil {
		ong.Description = *upd.Description
	}
	if upd.Location != nil {
		ong.Location = *upd.Location
	}
	if err := s.Ongs.Update(ctx, *ong); err != nil {
		return nil, apperrors.Storage(err, "failed to persist ONG %s", id)
	}
	return s.Ongs.GetByID(ctx, id)
}

func (s *DefaultService) Roster(ctx context.Context, id string) ([]models.Jovem, error) {
	if _, err := s.loadOng(ctx, id); err != nil {
		return nil, err
	}
	jovens, err := s.Jovens.List(ctx, id)
	if err != nil {
		return nil, apperrors.Storage(err, "failed to list jovens for ONG %s", id)
	}
	return jovens, nil
}

func (s *DefaultService) loadOng(ctx context.Context, id string) (*models.Ong, error) {
	ong, err := s.Ongs.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.Storage(err, "failed to load ONG %s", id)
	}
	if ong == nil {
		return nil, apperrors.NotFound("ONG %s not found", id)
	}
	return ong, nil
}
