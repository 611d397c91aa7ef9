package handler

import (
	"github.com/brianloooooh/accountability-app/internal/middleware"
	"github.com/brianloooooh/accountability-app/internal/server"
	"github.com/brianloooooh/accountability-app/internal/service"
	"github.com/labstack/echo/v4"
)

// ProfilesHandler serves the caller's display profile. The display name
// shows up on the habit board; the email receives reminder mail.
type ProfilesHandler struct {
	Handler
	profiles *service.ProfileService
}

// NewProfilesHandler constructs a ProfilesHandler over the profile
// service.
func NewProfilesHandler(s *server.Server, profiles *service.ProfileService) *ProfilesHandler {
	return &ProfilesHandler{
		Handler:  NewHandler(s),
		profiles: profiles,
	}
}

// UpsertProfileRequest is the payload for creating or replacing the
// caller's profile.
type UpsertProfileRequest struct {
	DisplayName string `json:"displayName" validate:"required,min=1,max=100"`
	Email       string `json:"email" validate:"omitempty,email"`
}

func (r *UpsertProfileRequest) Validate() error {
	return validate.Struct(r)
}

// NewUpsertProfileRequest builds an empty payload for the request
// pipeline.
func NewUpsertProfileRequest() *UpsertProfileRequest {
	return &UpsertProfileRequest{}
}

// ProfileResponse mirrors the stored profile row.
type ProfileResponse struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email,omitempty"`
}

// GetProfile handles GET /api/v1/profile.
func (h *ProfilesHandler) GetProfile(c echo.Context, req *EmptyRequest) (ProfileResponse, error) {
	profile, err := h.profiles.GetProfile(c.Request().Context(), middleware.GetUserID(c))
	if err != nil {
		return ProfileResponse{}, err
	}

	return ProfileResponse{
		UserID:      profile.UserID,
		DisplayName: profile.DisplayName,
		Email:       profile.Email,
	}, nil
}

// UpsertProfile handles PUT /api/v1/profile.
func (h *ProfilesHandler) UpsertProfile(c echo.Context, req *UpsertProfileRequest) (ProfileResponse, error) {
	profile, err := h.profiles.UpsertProfile(c.Request().Context(), middleware.GetUserID(c), req.DisplayName, req.Email)
	if err != nil {
		return ProfileResponse{}, err
	}

	return ProfileResponse{
		UserID:      profile.UserID,
		DisplayName: profile.DisplayName,
		Email:       profile.Email,
	}, nil
}
