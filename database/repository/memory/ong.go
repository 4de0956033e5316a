package memoryRepo

import (
	"context"
	"sync"
	"time"

	ongRepo "impulso/database/repository/ong"
	"impulso/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

type memOngRepo struct {
	mu   sync.RWMutex
	ongs map[string]models.Ong
}

// NewOngRepo returns an in-memory OngRepository.
func NewOngRepo() ongRepo.OngRepository {
	return &memOngRepo{ongs: make(map[string]models.Ong)}
}

func (r *memOngRepo) Create(ctx context.Context, ong models.Ong) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ong.ID == "" {
		ong.ID = uuid.New().String()
	}
	ong.CreatedAt = time.Now()
	ong.UpdatedAt = time.Now()
	r.ongs[ong.ID] = ong
	return ong.ID, nil
}

func (r *memOngRepo) GetByID(ctx context.Context, id string) (*models.Ong, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ong, ok := r.ongs[id]
	if !ok {
		return nil, nil
	}
	return &ong, nil
}

func (r *memOngRepo) GetByUserID(ctx context.Context, userID string) (*models.Ong, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, o := range r.ongs {
		if o.UserID == userID {
			ong := o
			return &ong, nil
		}
	}
	return nil, nil
}

func (r *memOngRepo) List(ctx context.Context) ([]models.Ong, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Ong, 0, len(r.ongs))
	for _, o := range r.ongs {
		out = append(out, o)
	}
	return out, nil
}

func (r *memOngRepo) Update(ctx context.Context, ong models.Ong) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.ongs[ong.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	ong.UpdatedAt = time.Now()
	r.ongs[ong.ID] = ong
	return nil
}
