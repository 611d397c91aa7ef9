package service

import (
	"github.com/brianloooooh/accountability-app/internal/lib/job"
	"github.com/brianloooooh/accountability-app/internal/repository"
	"github.com/brianloooooh/accountability-app/internal/server"
)

// Services is the container for all business-layer services.
type Services struct {
	Auth     *AuthService
	Habits   *HabitService
	Profiles *ProfileService
	Reminder *ReminderService
	Job      *job.JobService
}

// NewService wires the services over the shared app container and the
// repository layer. The reminder scheduler starts here (when enabled);
// callers must Stop it on shutdown.
func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	authService := NewAuthService(s)

	reminderService, err := NewReminderService(s, repos)
	if err != nil {
		return nil, err
	}

	return &Services{
		Auth:     authService,
		Habits:   NewHabitService(s, repos),
		Profiles: NewProfileService(s, repos),
		Reminder: reminderService,
		Job:      s.Job,
	}, nil
}
