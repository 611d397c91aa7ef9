package repository

import (
	"context"
	"fmt"

	"github.com/brianloooooh/accountability-app/internal/model"
	"github.com/brianloooooh/accountability-app/internal/server"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// HabitsRepository performs all reads and writes against the habits table.
type HabitsRepository struct {
	pool *pgxpool.Pool
	log  *zerolog.Logger
}

// NewHabitsRepository constructs a HabitsRepository from the app container.
func NewHabitsRepository(s *server.Server) *HabitsRepository {
	return &HabitsRepository{
		pool: s.DB.Pool,
		log:  s.Logger,
	}
}

// Insert persists a new habit row and returns it.
//
// The group id comes from the creating user's resolved membership, never
// from the caller; completed always starts false.
func (r *HabitsRepository) Insert(ctx context.Context, groupID, userID, name string) (model.Habit, error) {
	const query = `
		INSERT INTO habits (group_id, user_id, name, completed)
		VALUES ($1, $2, $3, false)
		RETURNING id, group_id, user_id, name, completed, created_at`

	var habit model.Habit
	err := r.pool.QueryRow(ctx, query, groupID, userID, name).Scan(
		&habit.ID,
		&habit.GroupID,
		&habit.UserID,
		&habit.Name,
		&habit.Completed,
		&habit.CreatedAt,
	)
	if err != nil {
		return model.Habit{}, fmt.Errorf("table:habits: inserting habit: %w", err)
	}

	return habit, nil
}

// Delete removes a habit row by id.
//
// Matching zero rows is not an error: the caller-facing contract is an
// idempotent delete, and malformed ids simply match nothing.
func (r *HabitsRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM habits WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("table:habits: deleting habit: %w", err)
	}

	if tag.RowsAffected() == 0 {
		r.log.Debug().Int64("habit_id", id).Msg("delete matched no rows")
	}

	return nil
}

// MarkComplete sets completed=true unconditionally.
//
// The flag is monotonic: there is no operation that reverts it, and
// repeating the update is a no-op success.
func (r *HabitsRepository) MarkComplete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `UPDATE habits SET completed = true WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("table:habits: updating habit completion: %w", err)
	}

	return nil
}

// ListByGroup fetches every habit row in a group, oldest first.
func (r *HabitsRepository) ListByGroup(ctx context.Context, groupID string) ([]model.Habit, error) {
	const query = `
		SELECT id, group_id, user_id, name, completed, created_at
		FROM habits
		WHERE group_id = $1
		ORDER BY created_at, id`

	rows, err := r.pool.Query(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("table:habits: listing group habits: %w", err)
	}
	defer rows.Close()

	var habits []model.Habit
	for rows.Next() {
		var habit model.Habit
		if err := rows.Scan(
			&habit.ID,
			&habit.GroupID,
			&habit.UserID,
			&habit.Name,
			&habit.Completed,
			&habit.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("table:habits: scanning habit row: %w", err)
		}
		habits = append(habits, habit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("table:habits: reading habit rows: %w", err)
	}

	return habits, nil
}

// ReminderTarget is one recipient of the daily reminder email: a user
// with at least one open habit and a contact email on their profile.
type ReminderTarget struct {
	Email       string
	DisplayName string
	OpenTasks   int
}

// OpenReminderTargets lists every user who should receive a reminder.
//
// Users without a profile email are skipped; they simply cannot be
// reached.
func (r *HabitsRepository) OpenReminderTargets(ctx context.Context) ([]ReminderTarget, error) {
	const query = `
		SELECT p.email, p.display_name, COUNT(*)
		FROM habits h
		JOIN profiles p ON p.user_id = h.user_id
		WHERE h.completed = false
		  AND p.email IS NOT NULL
		  AND p.email <> ''
		GROUP BY p.email, p.display_name
		ORDER BY p.email`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("table:habits: listing reminder targets: %w", err)
	}
	defer rows.Close()

	var targets []ReminderTarget
	for rows.Next() {
		var t ReminderTarget
		if err := rows.Scan(&t.Email, &t.DisplayName, &t.OpenTasks); err != nil {
			return nil, fmt.Errorf("table:habits: scanning reminder target: %w", err)
		}
		targets = append(targets, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("table:habits: reading reminder targets: %w", err)
	}

	return targets, nil
}
