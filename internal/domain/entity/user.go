// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a shop-owner account. Authentication is email/password only;
// the password hash never leaves the persistence and usecase layers.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email        string    // Login identifier and primary contact email.
	Name         string    // The owner's display name.
	Phone        string    // Contact phone number.
	PasswordHash string    // bcrypt hash of the login password.
	ShopID       uuid.UUID // The shop this account administers.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}
