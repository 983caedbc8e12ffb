// Package repository defines the persistence contracts of the domain layer.
// Implementations live under internal/infra/persistence.
package repository

import (
	"context"

	"closecart/internal/domain/entity"
	"closecart/internal/errors"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned when no user matches the query.
var ErrUserNotFound = errors.New("user not found")

// UserRepository persists shop-owner accounts.
type UserRepository interface {
	// Create persists a new user. The implementation fills generated fields
	// (ID, timestamps) back into the entity.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user by its login email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Update persists changes to an existing user.
	Update(ctx context.Context, user *entity.User) error
}
