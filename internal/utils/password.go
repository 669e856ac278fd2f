package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a bcrypt hash from the given plaintext password.
//
// bcrypt embeds a per-hash random salt, so two users with the same password
// never share a stored hash. The plaintext is never persisted or logged by
// any caller of this function.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// CheckPasswordHash reports whether plaintext matches the stored bcrypt hash.
// The comparison is constant-time with respect to the hash contents.
func CheckPasswordHash(hash, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
