package handler

import (
	"log/slog"
	"net/http"

	"smartdine/internal/delivery/api/middleware"
	"smartdine/internal/delivery/api/response"
	domainerrors "smartdine/internal/domain/errors"
	"smartdine/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler holds dependencies for profile-related handlers
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// CreateUserRequest represents the request body for creating a profile
type CreateUserRequest struct {
	Name             string `json:"name"`
	Email            string `json:"email" validate:"omitempty,email"`
	PreferredCuisine string `json:"preferred_cuisine"`
}

// SelectUserRequest represents the request body for switching to a profile
type SelectUserRequest struct {
	UserID int64 `json:"user_id" validate:"required"`
}

// CreateUserResponse is returned after a profile is created
type CreateUserResponse struct {
	ID    int64  `json:"id"`
	Token string `json:"token"`
}

// SelectUserResponse is returned after switching to a profile
type SelectUserResponse struct {
	OK    bool         `json:"ok"`
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ListUsers lists every profile.
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userUC.ListUsers(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapSlice(users, toUserResponse))
}

// CreateUser creates a profile and returns an access token for it.
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	out, err := h.userUC.CreateUser(c.Request().Context(), usecase.CreateUserInput{
		Name:             req.Name,
		Email:            req.Email,
		PreferredCuisine: req.PreferredCuisine,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, CreateUserResponse{ID: out.User.ID, Token: out.AccessToken})
}

// SelectUser switches the caller to an existing profile by issuing a token for it.
func (h *UserHandler) SelectUser(c echo.Context) error {
	var req SelectUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user selection")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, domainerrors.ErrInvalidID.ErrorCode(), "User ID required")
	}

	out, err := h.userUC.SelectUser(c.Request().Context(), req.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, SelectUserResponse{
		OK:    true,
		Token: out.AccessToken,
		User:  toUserResponse(out.User),
	})
}

// GetActiveUser returns the profile identified by the caller's token.
func (h *UserHandler) GetActiveUser(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	user, err := h.userUC.GetUser(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}
