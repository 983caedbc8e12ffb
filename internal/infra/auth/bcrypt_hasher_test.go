package auth

import (
	"testing"

	"closecart/config"
	domainerrors "closecart/internal/domain/errors"
	"closecart/internal/errors"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func strictConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{BcryptCost: bcrypt.MinCost}
	cfg.PasswordStrength = &config.PasswordStrengthConfig{
		MinLength:        8,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireNumbers:   true,
		RequireSpecial:   true,
		MaxLength:        128,
	}

	return cfg
}

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasher(strictConfig())

	strongPassword := "StrongPass123!"
	hash, err := hasher.Hash(strongPassword)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, strongPassword, hash)

	// Verify the hash can be checked
	assert.True(t, hasher.Check(strongPassword, hash))
}

func TestBcryptHasher_HashWithWeakPassword(t *testing.T) {
	hasher := NewBcryptHasher(strictConfig())

	weakPasswords := []string{
		"123",          // Too short
		"short",        // Too short
		"PASSWORD123!", // No lowercase
		"password123!", // No uppercase
		"PasswordABC!", // No numbers
		"Password123",  // No special characters
	}

	for _, weakPassword := range weakPasswords {
		_, err := hasher.Hash(weakPassword)
		assert.Error(t, err, "Expected error for weak password: %s", weakPassword)
		assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
	}
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasher(strictConfig())
	password := "StrongPass123!"

	hash, err := hasher.Hash(password)
	assert.NoError(t, err)

	// Test correct password
	assert.True(t, hasher.Check(password, hash))

	// Test incorrect password
	assert.False(t, hasher.Check("WrongPassword123!", hash))

	// Test empty password
	assert.False(t, hasher.Check("", hash))

	// Test with invalid hash
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := NewBcryptHasher(strictConfig())

	validPasswords := []string{
		"StrongPass123!",
		"MySecure@Pass1",
		"Complex#Secret9",
		"Valid$Phrase2024",
	}

	for _, password := range validPasswords {
		err := hasher.ValidatePasswordStrength(password)
		assert.NoError(t, err, "Expected no error for valid password: %s", password)
	}

	testCases := []struct {
		password        string
		expectedDetails string
	}{
		{"123", "at least 8 characters"},
		{"short", "at least 8 characters"},
		{"PASSWORD123!", "at least one lowercase letter"},
		{"password123!", "at least one uppercase letter"},
		{"PasswordABC!", "at least one number"},
		{"Password123", "at least one special character"},
	}

	for _, tc := range testCases {
		err := hasher.ValidatePasswordStrength(tc.password)
		assert.Error(t, err, "Expected error for password: %s", tc.password)

		var appErr domainerrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Contains(t, appErr.Details(), tc.expectedDetails)
	}
}

func TestBcryptHasher_MinLengthOnlyWithoutStrengthConfig(t *testing.T) {
	// Without a strength config the hasher still enforces the minimum length.
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	err := hasher.ValidatePasswordStrength("short")
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))

	// Any 8+ character password passes when composition rules are off.
	assert.NoError(t, hasher.ValidatePasswordStrength("longenough"))
}

func TestBcryptHasher_WithCustomCost(t *testing.T) {
	customCost := 6 // Lower cost for faster testing
	hasher := NewBcryptHasherWithCost(customCost)

	password := "StrongPass123!"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)

	// Verify the hash uses the correct cost
	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, customCost, cost)

	// Verify the hash can be checked
	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_EdgeCases(t *testing.T) {
	hasher := NewBcryptHasher(strictConfig())

	// Empty password
	err := hasher.ValidatePasswordStrength("")
	assert.Error(t, err)

	// Unicode characters count as letters
	err = hasher.ValidatePasswordStrength("Pässphräse123!")
	assert.NoError(t, err)

	// Only special characters fails the letter and number rules
	err = hasher.ValidatePasswordStrength("!@#$%^&*()")
	assert.Error(t, err)
}
