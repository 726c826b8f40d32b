package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHashCost is the bcrypt cost factor used for stored passwords.
const PasswordHashCost = 10

// HashPassword returns the salted bcrypt hash of password.
//
// bcrypt only considers the first 72 bytes of the input; longer passwords
// are rejected by the library with an error.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordHashCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// ComparePassword reports whether password matches the stored bcrypt hash.
// A malformed hash is treated as a mismatch.
func ComparePassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
