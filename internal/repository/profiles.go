package repository

import (
	"context"
	"fmt"

	"github.com/brianloooooh/accountability-app/internal/model"
	"github.com/brianloooooh/accountability-app/internal/server"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// ProfilesRepository reads and writes display profiles.
type ProfilesRepository struct {
	pool *pgxpool.Pool
	log  *zerolog.Logger
}

// NewProfilesRepository constructs a ProfilesRepository from the app container.
func NewProfilesRepository(s *server.Server) *ProfilesRepository {
	return &ProfilesRepository{
		pool: s.DB.Pool,
		log:  s.Logger,
	}
}

// GetByUserID fetches a user's profile row.
//
// A missing row surfaces as a wrapped pgx.ErrNoRows; the "table:" prefix
// lets the global error handler phrase the 404 per entity.
func (r *ProfilesRepository) GetByUserID(ctx context.Context, userID string) (model.Profile, error) {
	const query = `
		SELECT user_id, display_name, COALESCE(email, ''), updated_at
		FROM profiles
		WHERE user_id = $1`

	var profile model.Profile
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&profile.UserID,
		&profile.DisplayName,
		&profile.Email,
		&profile.UpdatedAt,
	)
	if err != nil {
		return model.Profile{}, fmt.Errorf("table:profiles: fetching profile: %w", err)
	}

	return profile, nil
}

// Upsert creates or replaces a user's profile row and returns the stored
// version.
func (r *ProfilesRepository) Upsert(ctx context.Context, userID, displayName, email string) (model.Profile, error) {
	const query = `
		INSERT INTO profiles (user_id, display_name, email)
		VALUES ($1, $2, NULLIF($3, ''))
		ON CONFLICT (user_id) DO UPDATE
		SET display_name = EXCLUDED.display_name,
		    email = EXCLUDED.email,
		    updated_at = now()
		RETURNING user_id, display_name, COALESCE(email, ''), updated_at`

	var profile model.Profile
	err := r.pool.QueryRow(ctx, query, userID, displayName, email).Scan(
		&profile.UserID,
		&profile.DisplayName,
		&profile.Email,
		&profile.UpdatedAt,
	)
	if err != nil {
		return model.Profile{}, fmt.Errorf("table:profiles: upserting profile: %w", err)
	}

	return profile, nil
}
