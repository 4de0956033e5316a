// Package availability decides whether a jovem can serve a request at a given
// date and time, based on the weekly schedule and existing commitments.
package availability

import (
	"context"
	"fmt"
	"strings"
	"time"

	"impulso/apperrors"
	bookingRepo "impulso/database/repository/booking"
	"impulso/models"
)

// Default working window applied when a schedule entry carries no times.
const (
	DefaultWindowStart = "08:00"
	DefaultWindowEnd   = "18:00"
)

// conflictBufferMinutes is the minimum spacing between two timed bookings on
// the same day. Bookings closer than or at this distance conflict.
const conflictBufferMinutes = 120

// Evaluator answers availability questions against stored bookings.
type Evaluator struct {
	Bookings bookingRepo.BookingRepository
}

// IsAvailable reports whether the jovem can take a booking on date at timeStr
// (optional, "15:04"). It loads the jovem's active bookings for the conflict
// scan.
func (e *Evaluator) IsAvailable(ctx context.Context, jovem *models.Jovem, date, timeStr string) (bool, error) {
	existing, err := e.Bookings.ActiveOnDate(ctx, jovem.ID, date)
	if err != nil {
		return false, apperrors.Storage(err, "failed to load bookings for availability check")
	}
	return Fits(jovem, date, timeStr, existing)
}

// AvailableSlots returns the open hourly start times for the jovem on date,
// bounded so the service duration still fits inside the working window.
func (e *Evaluator) AvailableSlots(ctx context.Context, jovem *models.Jovem, durationHours float64, date string) ([]string, error) {
	existing, err := e.Bookings.ActiveOnDate(ctx, jovem.ID, date)
	if err != nil {
		return nil, apperrors.Storage(err, "failed to load bookings for slot listing")
	}

	weekday, err := weekdayOf(date)
	if err != nil {
		return nil, err
	}
	window, enabled := resolveWindow(jovem, weekday)
	if !jovem.Availability || !enabled {
		return []string{}, nil
	}

	start, err := minutesOf(window.Start)
	if err != nil {
		return nil, err
	}
	end, err := minutesOf(window.End)
	if err != nil {
		return nil, err
	}

	duration := int(durationHours * 60)
	slots := []string{}
	for m := start; m+duration <= end; m += 60 {
		slot := fmt.Sprintf("%02d:%02d", m/60, m%60)
		ok, err := Fits(jovem, date, slot, existing)
		if err != nil {
			return nil, err
		}
		if ok {
			slots = append(slots, slot)
		}
	}
	return slots, nil
}

// Fits is the pure availability predicate over a pre-fetched booking list.
// timeStr may be empty for an untimed request; an untimed request conflicts
// with any active same-date booking, mirroring how an untimed existing
// booking blocks the whole day.
func Fits(jovem *models.Jovem, date, timeStr string, existing []models.Booking) (bool, error) {
	if !jovem.Availability {
		return false, nil
	}

	weekday, err := weekdayOf(date)
	if err != nil {
		return false, err
	}
	window, enabled := resolveWindow(jovem, weekday)
	if !enabled {
		return false, nil
	}

	var requested int = -1
	if timeStr != "" {
		requested, err = minutesOf(timeStr)
		if err != nil {
			return false, err
		}
		start, err := minutesOf(window.Start)
		if err != nil {
			return false, err
		}
		end, err := minutesOf(window.End)
		if err != nil {
			return false, err
		}
		// Window bounds are inclusive.
		if requested < start || requested > end {
			return false, nil
		}
	}

	for _, b := range existing {
		if b.Date != date {
			continue
		}
		if requested < 0 || b.Time == "" {
			// Either side lacking a time blocks the whole day.
			return false, nil
		}
		other, err := minutesOf(b.Time)
		if err != nil {
			return false, nil // malformed stored time, treat the day slot as taken
		}
		diff := requested - other
		if diff < 0 {
			diff = -diff
		}
		if diff <= conflictBufferMinutes {
			return false, nil
		}
	}
	return true, nil
}

// resolveWindow returns the working window for the weekday and whether the
// day is enabled at all.
func resolveWindow(jovem *models.Jovem, weekday string) (models.TimeWindow, bool) {
	if len(jovem.WeeklySchedule) > 0 {
		day, ok := jovem.WeeklySchedule[weekday]
		if !ok || !day.Enabled {
			return models.TimeWindow{}, false
		}
		window := models.TimeWindow{Start: day.Start, End: day.End}
		if window.Start == "" {
			window.Start = DefaultWindowStart
		}
		if window.End == "" {
			window.End = DefaultWindowEnd
		}
		return window, true
	}

	// Fallback: one weekly window plus a set of enabled weekdays. An empty
	// set means every day is enabled.
	if len(jovem.WorkDays) > 0 {
		found := false
		for _, d := range jovem.WorkDays {
			if strings.EqualFold(d, weekday) {
				found = true
				break
			}
		}
		if !found {
			return models.TimeWindow{}, false
		}
	}

	window := models.TimeWindow{Start: DefaultWindowStart, End: DefaultWindowEnd}
	if jovem.Window != nil {
		if jovem.Window.Start != "" {
			window.Start = jovem.Window.Start
		}
		if jovem.Window.End != "" {
			window.End = jovem.Window.End
		}
	}
	return window, true
}

// weekdayOf returns the lowercase weekday name of a "2006-01-02" date.
func weekdayOf(date string) (string, error) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", apperrors.Validation("invalid date %q, expected YYYY-MM-DD", date)
	}
	return strings.ToLower(t.Weekday().String()), nil
}

// minutesOf converts "15:04" to minutes since midnight.
func minutesOf(clock string) (int, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return 0, apperrors.Validation("invalid time %q, expected HH:MM", clock)
	}
	return t.Hour()*60 + t.Minute(), nil
}
