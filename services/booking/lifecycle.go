package booking

import (
	"context"
	"time"

	"impulso/apperrors"
	"impulso/models"
	"impulso/services/availability"

	"go.uber.org/zap"
)

// AcceptBooking binds the accepting jovem and moves the booking to confirmed,
// issuing the check-in PIN. acceptedBy records whether the jovem or their ONG
// acted. At most one accept wins a race; losers get a conflict error.
func (s *DefaultService) AcceptBooking(ctx context.Context, id, jovemID, acceptedBy string) (*models.Booking, error) {
	// An unassigned pending booking has an empty jovemId; an empty actor
	// would match it and confirm the booking with no worker bound.
	if jovemID == "" {
		return nil, apperrors.Validation("jovemId is required")
	}
	booking, err := s.loadBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if acceptedBy == "" {
		acceptedBy = models.RoleJovem
	}

	if booking.JovemID != jovemID && !booking.Recommended(jovemID) {
		return nil, apperrors.Authorization("jovem %s is neither assigned nor recommended for booking %s", jovemID, id)
	}
	if booking.Status != models.BookingPending && booking.Status != models.BookingAssigned {
		return nil, apperrors.Conflict("booking %s is already %s", id, booking.Status)
	}

	pin, err := generateCheckInPin()
	if err != nil {
		return nil, apperrors.Storage(err, "failed to issue check-in PIN")
	}

	now := time.Now()
	next := *booking
	next.JovemID = jovemID
	next.Status = models.BookingConfirmed
	next.AcceptedBy = acceptedBy
	next.AcceptedAt = &now
	next.CheckInPin = pin
	next.PinIssuedAt = &now

	if err := s.commit(ctx, &next, booking.Status); err != nil {
		return nil, err
	}

	jovemName := jovemID
	if jovem, err := s.Jovens.GetByID(ctx, jovemID); err == nil && jovem != nil {
		jovemName = jovem.Name
	}
	s.notifyClient(ctx, &next, models.EventBookingAccepted, map[string]string{
		"jovem": jovemName,
		"pin":   pin,
	})

	return &next, nil
}

// RejectBooking handles both reject flavors: the assigned jovem declining
// cancels the booking; a merely recommended jovem declining is removed from
// the snapshot while the booking stays open. A pending booking whose
// snapshot empties out is marked rejected.
func (s *DefaultService) RejectBooking(ctx context.Context, id, jovemID, reason string) (*models.Booking, error) {
	// Same guard as AcceptBooking: an empty actor must not match the empty
	// jovemId of an unassigned booking and cancel it.
	if jovemID == "" {
		return nil, apperrors.Validation("jovemId is required")
	}
	booking, err := s.loadBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.Status.Terminal() || booking.Status == models.BookingInProgress {
		return nil, apperrors.Conflict("booking %s is already %s", id, booking.Status)
	}

	now := time.Now()
	rejection := models.Rejection{JovemID: jovemID, Reason: reason, At: now}

	switch {
	case booking.JovemID == jovemID:
		if booking.Status != models.BookingPending && booking.Status != models.BookingAssigned {
			return nil, apperrors.Conflict("booking %s is already %s", id, booking.Status)
		}
		next := *booking
		next.Status = models.BookingCancelled
		next.CancelReason = reason
		next.CancelledAt = &now
		next.Rejections = append(next.Rejections, rejection)
		if err := s.commit(ctx, &next, booking.Status); err != nil {
			return nil, err
		}
		s.notifyClient(ctx, &next, models.EventBookingCancelled, map[string]string{"reason": reason})
		return &next, nil

	case booking.Recommended(jovemID):
		next := *booking
		remaining := make([]models.RecommendedJovem, 0, len(booking.RecommendedJovens))
		for _, rj := range booking.RecommendedJovens {
			if rj.ID != jovemID {
				remaining = append(remaining, rj)
			}
		}
		next.RecommendedJovens = remaining
		next.Rejections = append(next.Rejections, rejection)
		if next.Status == models.BookingPending && len(remaining) == 0 {
			next.Status = models.BookingRejected
		}
		if err := s.commit(ctx, &next, booking.Status); err != nil {
			return nil, err
		}
		return &next, nil

	default:
		return nil, apperrors.Authorization("jovem %s is neither assigned nor recommended for booking %s", jovemID, id)
	}
}

// GenerateCheckInPin lets the assigned jovem reissue the PIN while the
// booking is still confirmed.
func (s *DefaultService) GenerateCheckInPin(ctx context.Context, id, jovemID string) (*models.Booking, error) {
	booking, err := s.loadBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.JovemID != jovemID {
		return nil, apperrors.Authorization("jovem %s is not assigned to booking %s", jovemID, id)
	}
	if booking.Status != models.BookingConfirmed {
		return nil, apperrors.Conflict("check-in PIN can only be issued for a confirmed booking, booking %s is %s", id, booking.Status)
	}

	pin, err := generateCheckInPin()
	if err != nil {
		return nil, apperrors.Storage(err, "failed to issue check-in PIN")
	}

	now := time.Now()
	next := *booking
	next.CheckInPin = pin
	next.PinIssuedAt = &now

	if err := s.commit(ctx, &next, models.BookingConfirmed); err != nil {
		return nil, err
	}
	return &next, nil
}

// ValidateCheckInPin checks the client-submitted PIN and starts the service.
// The transition fires exactly once: a second submission finds the booking
// in_progress and fails with a conflict.
func (s *DefaultService) ValidateCheckInPin(ctx context.Context, id, clientID, pin string) (*models.Booking, error) {
	booking, err := s.loadBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.ClientID != clientID {
		return nil, apperrors.Authorization("user %s is not the client of booking %s", clientID, id)
	}
	if !validPinFormat(pin) {
		return nil, apperrors.Validation("check-in PIN must be 4 digits")
	}
	if booking.Status != models.BookingConfirmed {
		return nil, apperrors.Conflict("booking %s is %s, check-in requires a confirmed booking", id, booking.Status)
	}
	if booking.CheckInPin != pin {
		return nil, apperrors.Validation("incorrect check-in PIN")
	}

	now := time.Now()
	next := *booking
	next.Status = models.BookingInProgress
	next.CheckInAt = &now

	if err := s.commit(ctx, &next, models.BookingConfirmed); err != nil {
		return nil, err
	}
	return &next, nil
}

// CompleteBooking finalizes an in-progress booking: the final price is
// captured through the pricing engine, the review is recorded, and the
// jovem's statistics are rolled up.
func (s *DefaultService) CompleteBooking(ctx context.Context, req models.CompletionRequest) (*models.Booking, error) {
	booking, err := s.loadBooking(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}
	if booking.ClientID != req.ClientID {
		return nil, apperrors.Authorization("user %s is not the client of booking %s", req.ClientID, req.BookingID)
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, apperrors.Validation("rating must be between 1 and 5, got %d", req.Rating)
	}
	if booking.Status != models.BookingInProgress {
		return nil, apperrors.Conflict("booking %s is %s, completion requires an in-progress booking", req.BookingID, booking.Status)
	}

	// Captured now, never recomputed: later margin edits must not alter
	// historical bookings.
	finalPrice, err := s.Pricing.PriceWithMargin(ctx, booking.BasePrice)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	next := *booking
	next.Status = models.BookingCompleted
	next.Rating = req.Rating
	next.Review = req.Comment
	next.FinalPrice = finalPrice
	next.CompletedAt = &now

	if err := s.commit(ctx, &next, models.BookingInProgress); err != nil {
		return nil, err
	}

	if _, err := s.Reviews.Complete(ctx, models.Review{
		BookingID: next.ID,
		ServiceID: next.ServiceID,
		JovemID:   next.JovemID,
		ClientID:  next.ClientID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		Photos:    req.Photos,
	}, finalPrice); err != nil {
		return nil, err
	}

	jovemName := next.JovemID
	if jovem, err := s.Jovens.GetByID(ctx, next.JovemID); err == nil && jovem != nil {
		jovemName = jovem.Name
	}
	s.notifyClient(ctx, &next, models.EventBookingCompleted, map[string]string{
		"jovem":  jovemName,
		"rating": formatRating(req.Rating),
	})

	return &next, nil
}

// CancelBooking lets the client cancel any booking that has not started.
// Client-submitted photos are released from the content store.
func (s *DefaultService) CancelBooking(ctx context.Context, id, clientID, reason string) (*models.Booking, error) {
	booking, err := s.loadBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.ClientID != clientID {
		return nil, apperrors.Authorization("user %s is not the client of booking %s", clientID, id)
	}
	if !booking.Status.CanTransition(models.BookingCancelled) {
		return nil, apperrors.Conflict("booking %s is %s and can no longer be cancelled", id, booking.Status)
	}

	now := time.Now()
	next := *booking
	next.Status = models.BookingCancelled
	next.CancelReason = reason
	next.CancelledAt = &now

	if err := s.commit(ctx, &next, booking.Status); err != nil {
		return nil, err
	}

	s.releasePhotos(ctx, &next)
	s.notifyClient(ctx, &next, models.EventBookingCancelled, map[string]string{"reason": reason})
	return &next, nil
}

// RescheduleBooking moves the booking to a new date/time. The PIN is cleared
// and the booking drops back to assigned so it must be re-confirmed. When a
// jovem is already bound, the new slot must pass the availability check.
func (s *DefaultService) RescheduleBooking(ctx context.Context, id, clientID, newDate, newTime string) (*models.Booking, error) {
	booking, err := s.loadBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.ClientID != clientID {
		return nil, apperrors.Authorization("user %s is not the client of booking %s", clientID, id)
	}
	if newDate == "" {
		return nil, apperrors.Validation("a new date is required to reschedule")
	}
	if booking.Status.Terminal() || booking.Status == models.BookingInProgress {
		return nil, apperrors.Conflict("booking %s is %s and can no longer be rescheduled", id, booking.Status)
	}

	if booking.JovemID != "" {
		jovem, err := s.Jovens.GetByID(ctx, booking.JovemID)
		if err != nil {
			return nil, apperrors.Storage(err, "failed to load jovem %s", booking.JovemID)
		}
		if jovem == nil {
			return nil, apperrors.NotFound("jovem %s not found", booking.JovemID)
		}

		existing, err := s.Bookings.ActiveOnDate(ctx, jovem.ID, newDate)
		if err != nil {
			return nil, apperrors.Storage(err, "failed to load bookings for availability check")
		}
		// The booking being moved must not conflict with itself.
		others := existing[:0]
		for _, b := range existing {
			if b.ID != booking.ID {
				others = append(others, b)
			}
		}
		ok, err := availability.Fits(jovem, newDate, newTime, others)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, apperrors.Conflict("jovem %s is not available on %s %s", jovem.ID, newDate, newTime)
		}
	}

	now := time.Now()
	next := *booking
	next.PreviousSchedules = append(next.PreviousSchedules, models.ScheduleChange{
		Date:      booking.Date,
		Time:      booking.Time,
		ChangedAt: now,
	})
	next.Date = newDate
	next.Time = newTime
	next.CheckInPin = ""
	next.PinIssuedAt = nil
	next.RescheduleCount++
	if next.JovemID != "" {
		next.Status = models.BookingAssigned
	}

	if err := s.commit(ctx, &next, booking.Status); err != nil {
		return nil, err
	}

	s.notifyClient(ctx, &next, models.EventBookingRescheduled, nil)
	return &next, nil
}

// commit persists the full next-state object, conditioned on the status the
// transition was computed from. A lost race surfaces as a conflict carrying
// the state the winner left behind.
func (s *DefaultService) commit(ctx context.Context, next *models.Booking, from models.BookingStatus) error {
	ok, err := s.Bookings.ReplaceIfStatus(ctx, *next, from)
	if err != nil {
		return apperrors.Storage(err, "failed to persist booking %s", next.ID)
	}
	if !ok {
		current, err := s.Bookings.GetByID(ctx, next.ID)
		if err == nil && current != nil {
			return apperrors.Conflict("booking %s is already %s", next.ID, current.Status)
		}
		return apperrors.Conflict("booking %s was modified concurrently", next.ID)
	}
	return nil
}

// releasePhotos best-effort deletes the booking's client-submitted photos.
func (s *DefaultService) releasePhotos(ctx context.Context, booking *models.Booking) {
	if s.Content == nil {
		return
	}
	for _, ref := range booking.Photos {
		if err := s.Content.DeleteFile(ctx, ref); err != nil {
			s.log().Warn("failed to release booking photo",
				zap.String("bookingId", booking.ID), zap.String("ref", ref), zap.Error(err))
		}
	}
}
