package notification

import (
	"context"

	"impulso/models"
)

// Notifier delivers a single event to its recipient.
type Notifier interface {
	Notify(ctx context.Context, event models.NotificationEvent) error
}

// Dispatcher hands events to the background delivery queue. Dispatch is
// fire-and-forget: it never blocks the caller on delivery and never returns
// an error; failures are logged only.
type Dispatcher interface {
	Dispatch(event models.NotificationEvent)
}
