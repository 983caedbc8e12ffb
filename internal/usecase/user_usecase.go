// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"closecart/internal/domain/entity"

	"github.com/google/uuid"
)

// UserUsecase defines the interface for account-related business operations.
type UserUsecase interface {
	// Register creates the owner account together with its shop and default
	// settings, then issues a token pair.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login verifies credentials and issues a token pair.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// ChangePassword verifies the current password and stores a new one.
	ChangePassword(ctx context.Context, userID uuid.UUID, input *ChangePasswordInput) error

	// GetMe returns the authenticated account and its shop.
	GetMe(ctx context.Context, userID uuid.UUID) (*MeOutput, error)
}

// --- Input DTOs ---

// RegisterInput defines the data required to create an account.
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone"`
	ShopName string `json:"shopName" validate:"required"`
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ChangePasswordInput defines the data required to change the password.
type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

// --- Output DTOs ---

// AuthOutput carries the authenticated account plus a fresh token pair.
type AuthOutput struct {
	User         *entity.User `json:"user"`
	Shop         *entity.Shop `json:"shop"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
}

// MeOutput carries the authenticated account and its shop.
type MeOutput struct {
	User *entity.User `json:"user"`
	Shop *entity.Shop `json:"shop"`
}
