// Package memoryRepo provides mutex-guarded in-memory implementations of
// every repository interface. It backs the "memory" storage driver and the
// service test suites.
package memoryRepo

import (
	"context"
	"sync"
	"time"

	bookingRepo "impulso/database/repository/booking"
	"impulso/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

type memBookingRepo struct {
	mu       sync.RWMutex
	bookings map[string]models.Booking
}

// NewBookingRepo returns an in-memory BookingRepository.
func NewBookingRepo() bookingRepo.BookingRepository {
	return &memBookingRepo{bookings: make(map[string]models.Booking)}
}

func (r *memBookingRepo) Create(ctx context.Context, booking models.Booking) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = time.Now()
	r.bookings[booking.ID] = booking
	return booking.ID, nil
}

func (r *memBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	booking, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	return &booking, nil
}

func (r *memBookingRepo) List(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Booking
	for _, b := range r.bookings {
		if filter.ClientID != "" && b.ClientID != filter.ClientID {
			continue
		}
		if filter.JovemID != "" && b.JovemID != filter.JovemID {
			continue
		}
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *memBookingRepo) Update(ctx context.Context, booking models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bookings[booking.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	booking.UpdatedAt = time.Now()
	r.bookings[booking.ID] = booking
	return nil
}

func (r *memBookingRepo) ReplaceIfStatus(ctx context.Context, next models.Booking, from models.BookingStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.bookings[next.ID]
	if !ok || stored.Status != from {
		return false, nil
	}
	next.UpdatedAt = time.Now()
	r.bookings[next.ID] = next
	return true, nil
}

func (r *memBookingRepo) ActiveOnDate(ctx context.Context, jovemID, date string) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Booking
	for _, b := range r.bookings {
		if b.JovemID != jovemID || b.Date != date {
			continue
		}
		switch b.Status {
		case models.BookingCancelled, models.BookingCompleted, models.BookingRejected:
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *memBookingRepo) PendingForJovens(ctx context.Context, jovemIDs []string) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make(map[string]bool, len(jovemIDs))
	for _, id := range jovemIDs {
		ids[id] = true
	}

	var out []models.Booking
	for _, b := range r.bookings {
		if b.Status != models.BookingPending {
			continue
		}
		for _, rj := range b.RecommendedJovens {
			if ids[rj.ID] {
				out = append(out, b)
				break
			}
		}
	}
	return out, nil
}
