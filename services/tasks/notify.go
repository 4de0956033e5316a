package tasks

import (
	"encoding/json"

	"impulso/models"

	"github.com/hibiken/asynq"
)

const TypeNotifyEmail = "notify:email"

// NewEmailTask wraps a notification event into a queued email task.
func NewEmailTask(event models.NotificationEvent) (*asynq.Task, error) {
	b, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeNotifyEmail, b), nil
}
