package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the work factor for password hashing, pinned above the
// library default so offline guessing stays expensive.
const BcryptCost = 12

// ErrEmptyPassword is returned when an empty password is offered for hashing.
var ErrEmptyPassword = errors.New("password must not be empty")

// HashPassword hashes a plaintext password with bcrypt. The salt is generated
// per call and embedded in the returned hash, so hashing the same password
// twice yields different strings.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword checks a plaintext password against a stored bcrypt hash.
// A mismatch is a result, not an error: it returns (false, nil). An error is
// returned only when the stored hash itself is malformed.
func VerifyPassword(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("verify password: %w", err)
	}
}
