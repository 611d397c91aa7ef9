package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/brianloooooh/accountability-app/internal/errs"
	"github.com/brianloooooh/accountability-app/internal/model"
	"github.com/brianloooooh/accountability-app/internal/repository"
	"github.com/brianloooooh/accountability-app/internal/server"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// CallerDisplayName replaces the stored profile name when a member entry
// describes the requesting user.
const CallerDisplayName = "You"

// HabitStore is the slice of the habits repository the service depends on.
// Declared here so tests can substitute a fake backend.
type HabitStore interface {
	Insert(ctx context.Context, groupID, userID, name string) (model.Habit, error)
	Delete(ctx context.Context, id int64) error
	MarkComplete(ctx context.Context, id int64) error
	ListByGroup(ctx context.Context, groupID string) ([]model.Habit, error)
}

// GroupStore resolves memberships and member+profile joins.
type GroupStore interface {
	FirstMembership(ctx context.Context, userID string) (model.GroupMembership, error)
	ListMembers(ctx context.Context, groupID string) ([]model.MemberProfile, error)
}

// HabitService implements the habit task operations of the dashboard:
// add, delete, complete, and the member-grouped read.
//
// Every operation is a stateless request/response cycle: authenticate,
// resolve the group, perform the table operation, translate errors into
// the closed code enumerations in errs, and shape the response. There
// are no retries; every failure is terminal for its call.
type HabitService struct {
	log    *zerolog.Logger
	habits HabitStore
	groups GroupStore
	avatar string
}

// NewHabitService constructs the service over the real repositories.
func NewHabitService(s *server.Server, repos *repository.Repositories) *HabitService {
	return &HabitService{
		log:    s.Logger,
		habits: repos.Habits,
		groups: repos.Groups,
		avatar: s.Config.Habits.AvatarPlaceholder,
	}
}

// AddHabitTask inserts a new habit for the authenticated user.
//
// The task name is trimmed; the group is derived from the user's current
// membership, never supplied by the caller. The new row's id is returned
// as a string for the UI.
//
// Error codes: AUTH_ERROR, NO_GROUP, TASK_INSERT_ERROR, UNKNOWN.
func (s *HabitService) AddHabitTask(ctx context.Context, userID, name string) (string, error) {
	if userID == "" {
		return "", errs.NewTaskError(errs.TaskAuthError, "Not authenticated")
	}

	name = strings.TrimSpace(name)

	membership, err := s.groups.FirstMembership(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", errs.NewGroupError(errs.GroupNoGroup, "You are not a member of any group")
		}
		return "", s.unknown("add_habit_task", userID, err)
	}

	habit, err := s.habits.Insert(ctx, membership.GroupID, userID, name)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Msg("habit insert failed")
		return "", errs.NewTaskError(errs.TaskInsertError, "Could not create the task")
	}

	return strconv.FormatInt(habit.ID, 10), nil
}

// DeleteHabitTask removes a habit row by its caller-supplied id.
//
// The id is trusted: there is no check that the caller owns the task.
// A non-numeric id parses to zero and simply matches no row, and a
// delete that matches nothing still succeeds (idempotent delete).
//
// Error codes: AUTH_ERROR, TASK_DELETE_ERROR.
func (s *HabitService) DeleteHabitTask(ctx context.Context, userID, taskID string) error {
	if userID == "" {
		return errs.NewTaskError(errs.TaskAuthError, "Not authenticated")
	}

	// Malformed input falls through as a key matching no row.
	id, _ := strconv.ParseInt(taskID, 10, 64)

	if err := s.habits.Delete(ctx, id); err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Str("task_id", taskID).Msg("habit delete failed")
		return errs.NewTaskError(errs.TaskDeleteError, "Could not delete the task")
	}

	return nil
}

// MarkHabitComplete sets a habit's completed flag to true.
//
// Same id-parsing policy as delete. The flag is monotonic: nothing in
// this API reverts it, and repeating the call is a no-op success.
//
// Error codes: AUTH_ERROR, TASK_UPDATE_ERROR.
func (s *HabitService) MarkHabitComplete(ctx context.Context, userID, taskID string) error {
	if userID == "" {
		return errs.NewTaskError(errs.TaskAuthError, "Not authenticated")
	}

	id, _ := strconv.ParseInt(taskID, 10, 64)

	if err := s.habits.MarkComplete(ctx, id); err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Str("task_id", taskID).Msg("habit completion update failed")
		return errs.NewTaskError(errs.TaskUpdateError, "Could not update the task")
	}

	return nil
}

// GetHabitTasks builds the dashboard view: one GroupMember per member of
// the caller's group, each carrying that member's tasks.
//
// Sequential flow (later calls depend on earlier results):
//  1. resolve the caller's membership
//  2. fetch members with joined profiles
//  3. fetch all habits in the group
//
// Shaping rules:
//   - member order follows the member fetch; no explicit sort
//   - display name resolves through the ProfileRef union ("Unknown"
//     when absent); the caller's own entry reads "You"
//   - avatar is a constant placeholder for every member
//   - lastCheckin is not tracked and is always empty
//
// Error codes: AUTH_ERROR, NO_GROUP, GROUP_FETCH_ERROR,
// MEMBERS_FETCH_ERROR, TASK_FETCH_ERROR.
func (s *HabitService) GetHabitTasks(ctx context.Context, userID string) ([]model.GroupMember, error) {
	if userID == "" {
		return nil, errs.NewTaskError(errs.TaskAuthError, "Not authenticated")
	}

	membership, err := s.groups.FirstMembership(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NewGroupError(errs.GroupNoGroup, "You are not a member of any group")
		}
		s.log.Error().Err(err).Str("user_id", userID).Msg("membership lookup failed")
		return nil, errs.NewGroupError(errs.GroupFetchError, "Could not load your group")
	}

	memberProfiles, err := s.groups.ListMembers(ctx, membership.GroupID)
	if err != nil {
		s.log.Error().Err(err).Str("group_id", membership.GroupID).Msg("member fetch failed")
		return nil, errs.NewGroupError(errs.GroupMembersFetchError, "Could not load group members")
	}

	habits, err := s.habits.ListByGroup(ctx, membership.GroupID)
	if err != nil {
		s.log.Error().Err(err).Str("group_id", membership.GroupID).Msg("habit fetch failed")
		return nil, errs.NewTaskError(errs.TaskFetchError, "Could not load group tasks")
	}

	// Group tasks by owner, preserving habit fetch order within each
	// member.
	tasksByUser := make(map[string][]model.Task, len(memberProfiles))
	for _, habit := range habits {
		tasksByUser[habit.UserID] = append(tasksByUser[habit.UserID], model.Task{
			ID:        strconv.FormatInt(habit.ID, 10),
			Title:     habit.Name,
			Completed: habit.Completed,
		})
	}

	members := make([]model.GroupMember, 0, len(memberProfiles))
	for _, mp := range memberProfiles {
		name := mp.Profile.DisplayName()
		if mp.UserID == userID {
			name = CallerDisplayName
		}

		tasks := tasksByUser[mp.UserID]
		if tasks == nil {
			// Members without tasks get an empty list, not null.
			tasks = []model.Task{}
		}

		members = append(members, model.GroupMember{
			ID:          mp.UserID,
			Name:        name,
			Avatar:      s.avatar,
			Tasks:       tasks,
			LastCheckin: "",
		})
	}

	return members, nil
}

// unknown logs an unclassified failure and normalizes it to the UNKNOWN
// code so nothing escapes the operation boundary untyped.
func (s *HabitService) unknown(op, userID string, err error) error {
	s.log.Error().Err(err).Str("operation", op).Str("user_id", userID).Msg("unexpected error")
	return errs.NewTaskError(errs.TaskUnknown, "Something went wrong")
}
