package notification

import (
	"impulso/models"
	"impulso/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// AsynqDispatcher enqueues events on the notify:email queue for the
// background worker to deliver.
type AsynqDispatcher struct {
	Client *asynq.Client
	Logger *zap.Logger
}

func (d *AsynqDispatcher) Dispatch(event models.NotificationEvent) {
	task, err := tasks.NewEmailTask(event)
	if err != nil {
		d.Logger.Error("failed to build notification task",
			zap.String("kind", event.Kind), zap.Error(err))
		return
	}
	if _, err := d.Client.Enqueue(task); err != nil {
		d.Logger.Error("failed to enqueue notification",
			zap.String("kind", event.Kind), zap.String("to", event.To), zap.Error(err))
	}
}

// LogDispatcher only logs events. It stands in for the queue when running on
// the in-memory storage driver without Redis.
type LogDispatcher struct {
	Logger *zap.Logger
}

func (d *LogDispatcher) Dispatch(event models.NotificationEvent) {
	d.Logger.Info("notification (log only)",
		zap.String("kind", event.Kind), zap.String("to", event.To))
}
