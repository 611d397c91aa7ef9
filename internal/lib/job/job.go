// Package job provides background job processing using Asynq.
//
// Asynq is a Redis-backed job queue:
//   - You enqueue tasks (producer) using asynq.Client.
//   - A server runs workers that process those tasks (consumer) using
//     asynq.Server.
package job

import (
	"github.com/brianloooooh/accountability-app/internal/config"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// JobService holds the Asynq client (enqueue) and server (worker
// execution).
type JobService struct {
	// Client is used to enqueue tasks into Redis.
	Client *asynq.Client

	// server runs worker processes that pull tasks from Redis and
	// execute handlers.
	server *asynq.Server

	// logger is used for lifecycle logs and handler logs.
	logger *zerolog.Logger
}

// NewJobService creates a JobService configured to use Redis from cfg.
//
// It builds both an asynq.Client (to push jobs) and an asynq.Server (to
// process them), with queue weights so "critical" tasks get more worker
// share.
func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	redisAddr := cfg.Redis.Address

	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr: redisAddr,
	})

	// Concurrency = 10 means up to 10 tasks processed in parallel.
	// Queue weights distribute those workers across queues by ratio.
	server := asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisAddr},
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
		},
	)

	return &JobService{
		Client: client,
		server: server,
		logger: logger,
	}
}

// Start registers task handlers and starts the background worker server.
//
// asynq.Server.Start is non-blocking; workers run until Stop.
func (j *JobService) Start() error {
	// ServeMux is like HTTP routing, but for job types.
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskReminder, j.handleReminderEmailTask)

	j.logger.Info().Msg("Starting background job server")

	if err := j.server.Start(mux); err != nil {
		return err
	}

	return nil
}

// Stop gracefully stops the job server and closes client resources.
//
// Shutdown stops workers and waits for current tasks to finish;
// Client.Close closes the Redis connections used for enqueueing.
func (j *JobService) Stop() {
	j.logger.Info().Msg("Stopping background job server")
	j.server.Shutdown()
	j.Client.Close()
}
