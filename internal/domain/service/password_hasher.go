// Package service defines the contracts for domain services whose concrete
// implementations live under internal/infra.
package service

// PasswordHasher abstracts password hashing so the use case layer never
// touches a specific algorithm.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored hash.
	Check(password, hash string) bool

	// ValidatePasswordStrength rejects passwords that do not meet the
	// configured requirements before any hashing happens.
	ValidatePasswordStrength(password string) error
}
