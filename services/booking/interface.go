// Package booking owns the booking assignment and lifecycle engine: matching
// and auto-assignment, the multi-party confirmation state machine, PIN
// check-in, completion with review, and the statistics rollup hand-off.
package booking

import (
	"context"

	bookingRepo "impulso/database/repository/booking"
	jovemRepo "impulso/database/repository/jovem"
	serviceRepo "impulso/database/repository/service"
	userRepo "impulso/database/repository/user"
	"impulso/models"
	"impulso/services/availability"
	"impulso/services/notification"
	"impulso/services/pricing"
	"impulso/services/review"
	"impulso/services/storage"

	"go.uber.org/zap"
)

// Service is the booking engine's full operation surface.
type Service interface {
	CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error)
	ListBookings(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)

	AcceptBooking(ctx context.Context, id, jovemID, acceptedBy string) (*models.Booking, error)
	RejectBooking(ctx context.Context, id, jovemID, reason string) (*models.Booking, error)
	GenerateCheckInPin(ctx context.Context, id, jovemID string) (*models.Booking, error)
	ValidateCheckInPin(ctx context.Context, id, clientID, pin string) (*models.Booking, error)
	CompleteBooking(ctx context.Context, req models.CompletionRequest) (*models.Booking, error)
	CancelBooking(ctx context.Context, id, clientID, reason string) (*models.Booking, error)
	RescheduleBooking(ctx context.Context, id, clientID, newDate, newTime string) (*models.Booking, error)

	AvailableSlots(ctx context.Context, jovemID, serviceID, date string) ([]string, error)
	AvailableServices(ctx context.Context, clientID string) ([]models.Service, error)
	PendingForOng(ctx context.Context, ongID string) ([]models.Booking, error)
	PendingForJovem(ctx context.Context, jovemID string) ([]models.Booking, error)
}

// DefaultService is the production implementation.
type DefaultService struct {
	Bookings bookingRepo.BookingRepository
	Jovens   jovemRepo.JovemRepository
	Users    userRepo.UserRepository
	Catalog  serviceRepo.ServiceRepository

	Pricing      pricing.Service
	Reviews      review.Service
	Availability *availability.Evaluator
	Matcher      *Matcher

	// Notify and Content are optional collaborators; a nil value disables
	// the corresponding side effect.
	Notify  notification.Dispatcher
	Content storage.StorageService

	Logger *zap.Logger
}

func (s *DefaultService) log() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}
