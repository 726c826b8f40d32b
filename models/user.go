package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User represents an account entity used for authentication.
// Password holds the bcrypt hash once the user is persisted and is never
// serialized.
type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the body of the register and login requests.
// Name is ignored on login.
type Credentials struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// NormalizedEmail returns the email trimmed and lower-cased, the form in
// which it is stored.
func (c Credentials) NormalizedEmail() string {
	return strings.ToLower(strings.TrimSpace(c.Email))
}

// UserInfo is the public part of a user returned by the auth endpoints.
type UserInfo struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// LoginResult is the payload of a successful login.
type LoginResult struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}
