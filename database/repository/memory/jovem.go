package memoryRepo

import (
	"context"
	"errors"
	"sync"
	"time"

	jovemRepo "impulso/database/repository/jovem"
	"impulso/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

type memJovemRepo struct {
	mu     sync.RWMutex
	jovens map[string]models.Jovem
}

// NewJovemRepo returns an in-memory JovemRepository.
func NewJovemRepo() jovemRepo.JovemRepository {
	return &memJovemRepo{jovens: make(map[string]models.Jovem)}
}

func (r *memJovemRepo) Create(ctx context.Context, jovem models.Jovem) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if jovem.ID == "" {
		jovem.ID = uuid.New().String()
	}
	jovem.CreatedAt = time.Now()
	jovem.UpdatedAt = time.Now()
	r.jovens[jovem.ID] = jovem
	return jovem.ID, nil
}

func (r *memJovemRepo) GetByID(ctx context.Context, id string) (*models.Jovem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	jovem, ok := r.jovens[id]
	if !ok {
		return nil, nil
	}
	return &jovem, nil
}

func (r *memJovemRepo) List(ctx context.Context, ongID string) ([]models.Jovem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Jovem
	for _, j := range r.jovens {
		if ongID != "" && j.OngID != ongID {
			continue
		}
		out = append(out, j)
	}
	return out, nil
}

func (r *memJovemRepo) ListAvailable(ctx context.Context) ([]models.Jovem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Jovem
	for _, j := range r.jovens {
		if j.Availability {
			out = append(out, j)
		}
	}
	return out, nil
}

func (r *memJovemRepo) Update(ctx context.Context, jovem models.Jovem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.jovens[jovem.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	jovem.UpdatedAt = time.Now()
	r.jovens[jovem.ID] = jovem
	return nil
}

func (r *memJovemRepo) UpdateStats(ctx context.Context, id string, stats models.JovemStats) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	jovem, ok := r.jovens[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	jovem.Stats = stats
	jovem.UpdatedAt = time.Now()
	r.jovens[id] = jovem
	return nil
}

func (r *memJovemRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.jovens[id]; !ok {
		return errors.New("jovem not found")
	}
	delete(r.jovens, id)
	return nil
}
