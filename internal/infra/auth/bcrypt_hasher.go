// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"fmt"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"closecart/config"
	domainerrors "closecart/internal/domain/errors"
	"closecart/internal/domain/service"
)

const defaultMinPasswordLength = 8

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost     int
	strength *config.PasswordStrengthConfig
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost > 0 {
		cost = cfg.Auth.BcryptCost
	}

	return &bcryptHasher{
		cost:     cost,
		strength: cfg.PasswordStrength,
	}
}

// NewBcryptHasherWithCost builds a hasher with an explicit cost factor.
// Mainly used by tests where the default cost is too slow.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	return &bcryptHasher{cost: cost}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	if err := h.ValidatePasswordStrength(password); err != nil {
		return "", err
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)

	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// ValidatePasswordStrength checks the plaintext password against the
// configured requirements. Only the minimum length is enforced when no
// strength config is present.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	minLength := defaultMinPasswordLength
	if h.strength != nil && h.strength.MinLength > 0 {
		minLength = h.strength.MinLength
	}

	if len(password) < minLength {
		return domainerrors.ErrPasswordStrength.WithDetails(
			fmt.Sprintf("password must be at least %d characters long", minLength))
	}

	if h.strength == nil {
		return nil
	}

	if h.strength.MaxLength > 0 && len(password) > h.strength.MaxLength {
		return domainerrors.ErrPasswordStrength.WithDetails(
			fmt.Sprintf("password must be at most %d characters long", h.strength.MaxLength))
	}

	if h.strength.RequireUppercase && !hasUppercase(password) {
		return domainerrors.ErrPasswordStrength.WithDetails(
			"password must contain at least one uppercase letter")
	}

	if h.strength.RequireLowercase && !hasLowercase(password) {
		return domainerrors.ErrPasswordStrength.WithDetails(
			"password must contain at least one lowercase letter")
	}

	if h.strength.RequireNumbers && !hasNumbers(password) {
		return domainerrors.ErrPasswordStrength.WithDetails(
			"password must contain at least one number")
	}

	if h.strength.RequireSpecial && !hasSpecialChars(password) {
		return domainerrors.ErrPasswordStrength.WithDetails(
			"password must contain at least one special character")
	}

	return nil
}

func hasUppercase(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}

	return false
}

func hasLowercase(s string) bool {
	for _, r := range s {
		if unicode.IsLower(r) {
			return true
		}
	}

	return false
}

func hasNumbers(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}

	return false
}

func hasSpecialChars(s string) bool {
	for _, r := range s {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			return true
		}
	}

	return false
}
