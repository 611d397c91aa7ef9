package handler

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/brianloooooh/accountability-app/internal/middleware"
	"github.com/brianloooooh/accountability-app/internal/model"
	"github.com/brianloooooh/accountability-app/internal/server"
	"github.com/brianloooooh/accountability-app/internal/service"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var validate = validator.New()

// HabitsHandler serves the habit board endpoints: create a task, delete
// it, mark it complete, and read the member-grouped board.
type HabitsHandler struct {
	Handler
	habits *service.HabitService
}

// NewHabitsHandler constructs a HabitsHandler over the habit service.
func NewHabitsHandler(s *server.Server, habits *service.HabitService) *HabitsHandler {
	return &HabitsHandler{
		Handler: NewHandler(s),
		habits:  habits,
	}
}

// AddHabitRequest is the payload for creating a habit task.
type AddHabitRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

func (r *AddHabitRequest) Validate() error {
	return validate.Struct(r)
}

// NewAddHabitRequest builds an empty payload for the request pipeline.
func NewAddHabitRequest() *AddHabitRequest {
	return &AddHabitRequest{}
}

// HabitIDRequest carries the habit id path parameter.
//
// The id stays a string end to end. Malformed values are not rejected
// here; the service parses them to a key that matches no row.
type HabitIDRequest struct {
	ID string `param:"id" validate:"required"`
}

func (r *HabitIDRequest) Validate() error {
	return validate.Struct(r)
}

// NewHabitIDRequest builds an empty payload for the request pipeline.
func NewHabitIDRequest() *HabitIDRequest {
	return &HabitIDRequest{}
}

// EmptyRequest is the payload for endpoints that take no input.
type EmptyRequest struct{}

func (r *EmptyRequest) Validate() error {
	return nil
}

// NewEmptyRequest builds an empty payload for the request pipeline.
func NewEmptyRequest() *EmptyRequest {
	return &EmptyRequest{}
}

// AddHabitResponse is returned on successful task creation.
type AddHabitResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

// StatusResponse is the generic success envelope for mutations that
// return no payload.
type StatusResponse struct {
	Success bool `json:"success"`
}

// MembersResponse wraps the habit board.
type MembersResponse struct {
	Members []model.GroupMember `json:"members"`
}

// AddHabit handles POST /api/v1/habits.
func (h *HabitsHandler) AddHabit(c echo.Context, req *AddHabitRequest) (AddHabitResponse, error) {
	id, err := h.habits.AddHabitTask(c.Request().Context(), middleware.GetUserID(c), req.Name)
	if err != nil {
		return AddHabitResponse{}, err
	}

	return AddHabitResponse{Success: true, ID: id}, nil
}

// DeleteHabit handles DELETE /api/v1/habits/:id.
//
// Deleting an id that matches nothing still reports success, so retries
// from the UI are harmless.
func (h *HabitsHandler) DeleteHabit(c echo.Context, req *HabitIDRequest) (StatusResponse, error) {
	if err := h.habits.DeleteHabitTask(c.Request().Context(), middleware.GetUserID(c), req.ID); err != nil {
		return StatusResponse{}, err
	}

	return StatusResponse{Success: true}, nil
}

// CompleteHabit handles PATCH /api/v1/habits/:id/complete.
func (h *HabitsHandler) CompleteHabit(c echo.Context, req *HabitIDRequest) (StatusResponse, error) {
	if err := h.habits.MarkHabitComplete(c.Request().Context(), middleware.GetUserID(c), req.ID); err != nil {
		return StatusResponse{}, err
	}

	return StatusResponse{Success: true}, nil
}

// GetHabits handles GET /api/v1/habits and returns the member-grouped
// board for the caller's group.
func (h *HabitsHandler) GetHabits(c echo.Context, req *EmptyRequest) (MembersResponse, error) {
	members, err := h.habits.GetHabitTasks(c.Request().Context(), middleware.GetUserID(c))
	if err != nil {
		return MembersResponse{}, err
	}

	return MembersResponse{Members: members}, nil
}

// ExportHabits handles GET /api/v1/habits/export, rendering the board
// as a CSV download (one row per task, plus members without tasks).
func (h *HabitsHandler) ExportHabits(c echo.Context, req *EmptyRequest) ([]byte, error) {
	members, err := h.habits.GetHabitTasks(c.Request().Context(), middleware.GetUserID(c))
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"member", "task_id", "task", "completed"}); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, member := range members {
		if len(member.Tasks) == 0 {
			if err := w.Write([]string{member.Name, "", "", ""}); err != nil {
				return nil, fmt.Errorf("failed to write CSV row: %w", err)
			}
			continue
		}

		for _, task := range member.Tasks {
			completed := "no"
			if task.Completed {
				completed = "yes"
			}

			if err := w.Write([]string{member.Name, task.ID, task.Title, completed}); err != nil {
				return nil, fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}

	return buf.Bytes(), nil
}
