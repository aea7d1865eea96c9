package tasks

import (
	"encoding/json"
	"time"

	"gatherly/models"

	"github.com/hibiken/asynq"
)

const TypeEventReminder = "event:reminder"

// NewReminderTask builds an asynq task that fires at the given instant for
// one event instance.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeEventReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}
