package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/brianloooooh/accountability-app/internal/config"
	"github.com/brianloooooh/accountability-app/internal/lib/email"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// emailClient is a package-level singleton used by job handlers.
//
// InitHandlers must run before the worker server starts, otherwise
// handlers panic on a nil client.
var emailClient *email.Client

// InitHandlers initializes dependencies required by job handlers.
func (j *JobService) InitHandlers(config *config.Config, logger *zerolog.Logger) {
	emailClient = email.NewClient(config, logger)
}

// handleReminderEmailTask processes one habit reminder email task.
//
// Steps:
//   - Parse the JSON payload from the Asynq task
//   - Send the reminder email
//   - Log success/failure (returning an error makes Asynq retry)
func (j *JobService) handleReminderEmailTask(ctx context.Context, t *asynq.Task) error {
	var p ReminderEmailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal reminder email payload: %w", err)
	}

	j.logger.Info().
		Str("type", "habit_reminder").
		Str("to", p.To).
		Int("open_tasks", p.OpenTasks).
		Msg("Processing habit reminder task")

	err := emailClient.SendReminderEmail(p.To, p.Name, p.OpenTasks)
	if err != nil {
		j.logger.Error().
			Str("type", "habit_reminder").
			Str("to", p.To).
			Err(err).
			Msg("Failed to send habit reminder email")
		return err
	}

	j.logger.Info().
		Str("type", "habit_reminder").
		Str("to", p.To).
		Msg("Successfully sent habit reminder email")

	return nil
}
