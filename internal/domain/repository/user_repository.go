package repository

import (
	"context"

	"smartdine/internal/domain/entity"
	"smartdine/internal/errors"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
)

// UserRepository defines the interface for diner profile operations.
type UserRepository interface {
	// CreateUser persists a new user and fills in its ID and CreatedAt.
	CreateUser(ctx context.Context, user *entity.User) error

	// FindUserByID retrieves a user by ID.
	FindUserByID(ctx context.Context, id int64) (*entity.User, error)

	// ListUsers returns every user ordered by id.
	ListUsers(ctx context.Context) ([]*entity.User, error)

	// CountUsers returns the number of users.
	CountUsers(ctx context.Context) (int64, error)
}
