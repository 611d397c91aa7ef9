package service

import (
	"context"

	"github.com/brianloooooh/accountability-app/internal/errs"
	"github.com/brianloooooh/accountability-app/internal/model"
	"github.com/brianloooooh/accountability-app/internal/repository"
	"github.com/brianloooooh/accountability-app/internal/server"
	"github.com/rs/zerolog"
)

// ProfileStore is the slice of the profiles repository the service uses.
type ProfileStore interface {
	GetByUserID(ctx context.Context, userID string) (model.Profile, error)
	Upsert(ctx context.Context, userID, displayName, email string) (model.Profile, error)
}

// ProfileService manages the caller's display profile. The display name
// feeds the habit board; the email feeds reminder delivery.
type ProfileService struct {
	log      *zerolog.Logger
	profiles ProfileStore
}

// NewProfileService constructs the service over the real repository.
func NewProfileService(s *server.Server, repos *repository.Repositories) *ProfileService {
	return &ProfileService{
		log:      s.Logger,
		profiles: repos.Profiles,
	}
}

// GetProfile fetches the caller's profile. A missing row flows through
// as-is so the error funnel can phrase the 404.
func (s *ProfileService) GetProfile(ctx context.Context, userID string) (model.Profile, error) {
	if userID == "" {
		return model.Profile{}, errs.NewTaskError(errs.TaskAuthError, "Not authenticated")
	}

	return s.profiles.GetByUserID(ctx, userID)
}

// UpsertProfile creates or replaces the caller's profile row.
func (s *ProfileService) UpsertProfile(ctx context.Context, userID, displayName, email string) (model.Profile, error) {
	if userID == "" {
		return model.Profile{}, errs.NewTaskError(errs.TaskAuthError, "Not authenticated")
	}

	profile, err := s.profiles.Upsert(ctx, userID, displayName, email)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Msg("profile upsert failed")
		return model.Profile{}, err
	}

	return profile, nil
}
