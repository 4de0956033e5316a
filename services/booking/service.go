package booking

import (
	"context"
	"strconv"

	"impulso/apperrors"
	"impulso/models"

	"go.uber.org/zap"
)

// recommendationLimit bounds the snapshot stored on each booking.
const recommendationLimit = 5

// CreateBooking resolves the service and client, ranks eligible jovens,
// auto-assigns the top candidate, and persists the booking with its
// recommendation snapshot.
func (s *DefaultService) CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error) {
	if req.ServiceID == "" || req.ClientID == "" || req.Date == "" {
		return nil, apperrors.Validation("serviceId, clientId and date are required")
	}

	svc, err := s.Catalog.GetByID(ctx, req.ServiceID)
	if err != nil {
		return nil, apperrors.Storage(err, "failed to load service %s", req.ServiceID)
	}
	if svc == nil {
		return nil, apperrors.NotFound("service %s not found", req.ServiceID)
	}

	client, err := s.Users.GetByID(ctx, req.ClientID)
	if err != nil {
		return nil, apperrors.Storage(err, "failed to load client %s", req.ClientID)
	}
	if client == nil {
		return nil, apperrors.NotFound("client %s not found", req.ClientID)
	}

	ranked, err := s.Matcher.EligibleJovens(ctx, svc, client.Location, req.Date, req.Time)
	if err != nil {
		return nil, err
	}

	booking := models.Booking{
		ServiceID:         svc.ID,
		ServiceName:       svc.Name,
		ServiceCategory:   svc.Category,
		ClientID:          client.ID,
		Date:              req.Date,
		Time:              req.Time,
		Address:           req.Address,
		Notes:             req.Notes,
		Photos:            req.Photos,
		BasePrice:         svc.BasePrice,
		RecommendedJovens: Snapshot(ranked, recommendationLimit),
		Status:            models.BookingPending,
	}
	if len(ranked) > 0 {
		booking.JovemID = ranked[0].ID
		booking.Status = models.BookingAssigned
	}

	id, err := s.Bookings.Create(ctx, booking)
	if err != nil {
		return nil, apperrors.Storage(err, "failed to persist booking")
	}
	booking.ID = id

	s.log().Info("booking created",
		zap.String("bookingId", booking.ID),
		zap.String("serviceId", svc.ID),
		zap.String("status", string(booking.Status)),
		zap.Int("candidates", len(ranked)))

	s.dispatch(models.NotificationEvent{
		Kind: models.EventBookingCreated,
		To:   client.Email,
		Name: client.Name,
		Data: map[string]string{
			"service": svc.Name,
			"date":    booking.Date,
			"time":    booking.Time,
		},
	})

	return s.Bookings.GetByID(ctx, booking.ID)
}

// ListBookings returns bookings matching the optional filters.
func (s *DefaultService) ListBookings(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error) {
	bookings, err := s.Bookings.List(ctx, filter)
	if err != nil {
		return nil, apperrors.Storage(err, "failed to list bookings")
	}
	return bookings, nil
}

// GetBooking returns one booking by id.
func (s *DefaultService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	booking, err := s.loadBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	return booking, nil
}

// AvailableSlots lists the open start times for a jovem, service and date.
func (s *DefaultService) AvailableSlots(ctx context.Context, jovemID, serviceID, date string) ([]string, error) {
	jovem, err := s.Jovens.GetByID(ctx, jovemID)
	if err != nil {
		return nil, apperrors.Storage(err, "failed to load jovem %s", jovemID)
	}
	if jovem == nil {
		return nil, apperrors.NotFound("jovem %s not found", jovemID)
	}

	svc, err := s.Catalog.GetByID(ctx, serviceID)
	if err != nil {
		return nil, apperrors.Storage(err, "failed to load service %s", serviceID)
	}
	if svc == nil {
		return nil, apperrors.NotFound("service %s not found", serviceID)
	}

	duration := svc.DurationHours
	if duration <= 0 {
		duration = 1
	}
	return s.Availability.AvailableSlots(ctx, jovem, duration, date)
}

// AvailableServices lists bookable catalog entries; when the client's
// location is known, only services with at least one skill-matching,
// location-matching available jovem are returned.
func (s *DefaultService) AvailableServices(ctx context.Context, clientID string) ([]models.Service, error) {
	services, err := s.Catalog.List(ctx, models.ServiceFilter{Status: models.ServiceAvailable})
	if err != nil {
		return nil, apperrors.Storage(err, "failed to list services")
	}

	var clientLoc models.Location
	if clientID != "" {
		client, err := s.Users.GetByID(ctx, clientID)
		if err != nil {
			return nil, apperrors.Storage(err, "failed to load client %s", clientID)
		}
		if client != nil {
			clientLoc = client.Location
		}
	}
	if !clientLoc.Known() {
		return services, nil
	}

	jovens, err := s.Jovens.ListAvailable(ctx)
	if err != nil {
		return nil, apperrors.Storage(err, "failed to load jovens")
	}

	var out []models.Service
	for _, svc := range services {
		for _, j := range jovens {
			if j.Location.Known() && !j.Location.Matches(clientLoc) {
				continue
			}
			if j.Skills.Allows(svc.ID, svc.Category) {
				out = append(out, svc)
				break
			}
		}
	}
	return out, nil
}

// PendingForOng returns pending bookings recommending any jovem of the ONG.
func (s *DefaultService) PendingForOng(ctx context.Context, ongID string) ([]models.Booking, error) {
	jovens, err := s.Jovens.List(ctx, ongID)
	if err != nil {
		return nil, apperrors.Storage(err, "failed to load jovens for ONG %s", ongID)
	}
	ids := make([]string, 0, len(jovens))
	for _, j := range jovens {
		ids = append(ids, j.ID)
	}

	bookings, err := s.Bookings.PendingForJovens(ctx, ids)
	if err != nil {
		return nil, apperrors.Storage(err, "failed to load pending bookings")
	}
	return bookings, nil
}

// PendingForJovem returns pending bookings where the jovem is recommended.
func (s *DefaultService) PendingForJovem(ctx context.Context, jovemID string) ([]models.Booking, error) {
	bookings, err := s.Bookings.PendingForJovens(ctx, []string{jovemID})
	if err != nil {
		return nil, apperrors.Storage(err, "failed to load pending bookings")
	}
	return bookings, nil
}

// loadBooking fetches a booking, mapping absence to a NotFound error.
func (s *DefaultService) loadBooking(ctx context.Context, id string) (*models.Booking, error) {
	booking, err := s.Bookings.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.Storage(err, "failed to load booking %s", id)
	}
	if booking == nil {
		return nil, apperrors.NotFound("booking %s not found", id)
	}
	return booking, nil
}

// dispatch queues a notification event. Best effort only: a nil dispatcher
// disables notifications, and dispatch failures never reach callers.
func (s *DefaultService) dispatch(event models.NotificationEvent) {
	if s.Notify == nil {
		return
	}
	s.Notify.Dispatch(event)
}

// notifyClient queues an event addressed to the booking's client.
func (s *DefaultService) notifyClient(ctx context.Context, booking *models.Booking, kind string, extra map[string]string) {
	if s.Notify == nil {
		return
	}
	client, err := s.Users.GetByID(ctx, booking.ClientID)
	if err != nil || client == nil {
		s.log().Warn("cannot resolve client for notification",
			zap.String("bookingId", booking.ID), zap.String("clientId", booking.ClientID))
		return
	}

	data := map[string]string{
		"service": booking.ServiceName,
		"date":    booking.Date,
		"time":    booking.Time,
	}
	for k, v := range extra {
		data[k] = v
	}
	s.Notify.Dispatch(models.NotificationEvent{
		Kind: kind,
		To:   client.Email,
		Name: client.Name,
		Data: data,
	})
}

func formatRating(rating int) string {
	return strconv.Itoa(rating)
}
