package repository

import (
	"github.com/brianloooooh/accountability-app/internal/server"
)

// Repositories is a container for all repository instances.
//
// Build it once after the Server container exists and hand it to the
// service layer; services never touch the pool directly.
type Repositories struct {
	Habits   *HabitsRepository
	Groups   *GroupsRepository
	Profiles *ProfilesRepository
}

// NewRepositories constructs the repository container.
//
// Parameter:
//   - s: application container (DB pool lives on s.DB, logger on s.Logger)
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Habits:   NewHabitsRepository(s),
		Groups:   NewGroupsRepository(s),
		Profiles: NewProfilesRepository(s),
	}
}
