package usecase

import (
	"context"

	"smartdine/internal/domain/entity"
)

// CreateUserInput defines the data required to create a diner profile.
type CreateUserInput struct {
	Name             string
	Email            string
	PreferredCuisine string
}

// SessionOutput is a user together with a freshly issued access token.
type SessionOutput struct {
	User        *entity.User
	AccessToken string
}

// UserUsecase defines the interface for diner profiles and identity.
type UserUsecase interface {
	ListUsers(ctx context.Context) ([]*entity.User, error)
	CreateUser(ctx context.Context, input CreateUserInput) (*SessionOutput, error)

	// SelectUser makes an existing profile the caller's identity by issuing a token for it.
	SelectUser(ctx context.Context, userID int64) (*SessionOutput, error)
	GetUser(ctx context.Context, userID int64) (*entity.User, error)
}
