package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// TaskReminder is the job type name stored in Redis.
	// Asynq uses task type strings to route to handlers.
	TaskReminder = "email:habit_reminder"
)

// ReminderEmailPayload is the JSON payload for the habit reminder task.
// It gets serialized into bytes and stored in Redis.
type ReminderEmailPayload struct {
	To        string `json:"to"`
	Name      string `json:"name"`
	OpenTasks int    `json:"open_tasks"`
}

// NewReminderEmailTask constructs an Asynq task for a habit reminder email.
//
// Options:
//   - MaxRetry(3): retry up to 3 times on failure
//   - Queue("low"): reminders are not urgent; let critical work win
//   - Timeout(30s): kill the task if the handler runs too long
func NewReminderEmailTask(to, name string, openTasks int) (*asynq.Task, error) {
	payload, err := json.Marshal(ReminderEmailPayload{
		To:        to,
		Name:      name,
		OpenTasks: openTasks,
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskReminder,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("low"),
		asynq.Timeout(30*time.Second),
	), nil
}
