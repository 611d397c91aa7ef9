package service

import (
	"context"
	"time"

	"github.com/brianloooooh/accountability-app/internal/lib/job"
	"github.com/brianloooooh/accountability-app/internal/repository"
	"github.com/brianloooooh/accountability-app/internal/server"
	"github.com/hibiken/asynq"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// ReminderStore lists the recipients of the daily reminder email.
type ReminderStore interface {
	OpenReminderTargets(ctx context.Context) ([]repository.ReminderTarget, error)
}

// ReminderService schedules the daily reminder run.
//
// On each cron tick it queries for users with open habits and a contact
// email, and enqueues one reminder email job per user. Actual delivery
// happens in the background worker; a full queue or a dead Redis only
// delays reminders, it never affects request handling.
type ReminderService struct {
	log     *zerolog.Logger
	store   ReminderStore
	client  *asynq.Client
	cron    *cron.Cron
	enabled bool
}

// NewReminderService constructs the scheduler and, when enabled in
// config, registers the cron entry and starts it.
func NewReminderService(s *server.Server, repos *repository.Repositories) (*ReminderService, error) {
	rs := &ReminderService{
		log:     s.Logger,
		store:   repos.Habits,
		client:  s.Job.Client,
		enabled: s.Config.Reminder.Enabled,
	}

	if !rs.enabled {
		s.Logger.Info().Msg("habit reminders disabled")
		return rs, nil
	}

	rs.cron = cron.New()
	if _, err := rs.cron.AddFunc(s.Config.Reminder.Schedule, rs.enqueueReminders); err != nil {
		return nil, err
	}
	rs.cron.Start()

	s.Logger.Info().
		Str("schedule", s.Config.Reminder.Schedule).
		Msg("habit reminder scheduler started")

	return rs, nil
}

// enqueueReminders runs on the cron schedule.
//
// Enqueue failures are logged per recipient and do not stop the run;
// a missed reminder for one user should not cost everyone else theirs.
func (r *ReminderService) enqueueReminders() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	targets, err := r.store.OpenReminderTargets(ctx)
	if err != nil {
		r.log.Error().Err(err).Msg("failed to list reminder targets")
		return
	}

	enqueued := 0
	for _, target := range targets {
		task, err := job.NewReminderEmailTask(target.Email, target.DisplayName, target.OpenTasks)
		if err != nil {
			r.log.Error().Err(err).Str("to", target.Email).Msg("failed to build reminder task")
			continue
		}

		if _, err := r.client.EnqueueContext(ctx, task); err != nil {
			r.log.Error().Err(err).Str("to", target.Email).Msg("failed to enqueue reminder task")
			continue
		}
		enqueued++
	}

	r.log.Info().
		Int("targets", len(targets)).
		Int("enqueued", enqueued).
		Msg("reminder run completed")
}

// Stop halts the cron scheduler and waits for a running enqueue pass to
// finish.
func (r *ReminderService) Stop() {
	if r.cron == nil {
		return
	}
	<-r.cron.Stop().Done()
}
