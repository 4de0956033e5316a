package memoryRepo

import (
	"context"
	"sync"
	"time"

	reviewRepo "impulso/database/repository/review"
	"impulso/models"

	"github.com/google/uuid"
)

type memReviewRepo struct {
	mu      sync.RWMutex
	reviews []models.Review
}

// NewReviewRepo returns an in-memory ReviewRepository.
func NewReviewRepo() reviewRepo.ReviewRepository {
	return &memReviewRepo{}
}

func (r *memReviewRepo) Create(ctx context.Context, review models.Review) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	review.CreatedAt = time.Now()
	r.reviews = append(r.reviews, review)
	return review.ID, nil
}

func (r *memReviewRepo) List(ctx context.Context, filter models.ReviewFilter) ([]models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Review
	for _, rev := range r.reviews {
		if filter.JovemID != "" && rev.JovemID != filter.JovemID {
			continue
		}
		if filter.ClientID != "" && rev.ClientID != filter.ClientID {
			continue
		}
		if filter.BookingID != "" && rev.BookingID != filter.BookingID {
			continue
		}
		out = append(out, rev)
	}
	return out, nil
}

func (r *memReviewRepo) GetByJovemID(ctx context.Context, jovemID string) ([]models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Review
	for _, rev := range r.reviews {
		if rev.JovemID == jovemID && rev.TargetType == models.ReviewTargetJovem {
			out = append(out, rev)
		}
	}
	return out, nil
}
