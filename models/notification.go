package models

// Notification event kinds emitted by the booking lifecycle.
const (
	EventBookingCreated     = "booking_created"
	EventBookingAccepted    = "booking_accepted"
	EventBookingCompleted   = "booking_completed"
	EventBookingCancelled   = "booking_cancelled"
	EventBookingRescheduled = "booking_rescheduled"
)

// NotificationEvent is the outbox payload queued by lifecycle operations and
// delivered by the background worker. Delivery is advisory: failures are
// logged, never surfaced to the caller.
type NotificationEvent struct {
	Kind string            `json:"kind"`
	To   string            `json:"to"`
	Name string            `json:"name,omitempty"`
	Data map[string]string `json:"data,omitempty"`
}
