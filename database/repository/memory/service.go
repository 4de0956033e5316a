package memoryRepo

import (
	"context"
	"errors"
	"sync"
	"time"

	serviceRepo "impulso/database/repository/service"
	"impulso/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

type memServiceRepo struct {
	mu       sync.RWMutex
	services map[string]models.Service
}

// NewServiceRepo returns an in-memory ServiceRepository.
func NewServiceRepo() serviceRepo.ServiceRepository {
	return &memServiceRepo{services: make(map[string]models.Service)}
}

func (r *memServiceRepo) Create(ctx context.Context, service models.Service) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if service.ID == "" {
		service.ID = uuid.New().String()
	}
	service.CreatedAt = time.Now()
	service.UpdatedAt = time.Now()
	r.services[service.ID] = service
	return service.ID, nil
}

func (r *memServiceRepo) GetByID(ctx context.Context, id string) (*models.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	service, ok := r.services[id]
	if !ok {
		return nil, nil
	}
	return &service, nil
}

func (r *memServiceRepo) List(ctx context.Context, filter models.ServiceFilter) ([]models.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Service
	for _, s := range r.services {
		if filter.Category != "" && s.Category != filter.Category {
			continue
		}
		if filter.OngID != "" && s.OngID != filter.OngID {
			continue
		}
		if filter.Status != "" && s.Status != filter.Status {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *memServiceRepo) Update(ctx context.Context, service models.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.services[service.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	service.UpdatedAt = time.Now()
	r.services[service.ID] = service
	return nil
}

func (r *memServiceRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.services[id]; !ok {
		return errors.New("service not found")
	}
	delete(r.services, id)
	return nil
}
