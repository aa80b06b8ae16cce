package domain

import (
	"errors"
	"time"
)

// Role is the closed set of authorization levels.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
)

var ErrInvalidInput = errors.New("invalid input")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleEditor
}

// Satisfies reports whether a holder of role r passes a check requiring need.
// Admin satisfies every requirement; other roles only satisfy themselves.
// Unknown roles satisfy nothing.
func (r Role) Satisfies(need Role) bool {
	if !r.Valid() {
		return false
	}
	if r == RoleAdmin {
		return true
	}
	return r == need
}

// User models an authenticated principal.
type User struct {
	ID           string    `json:"id" bson:"id"`
	Username     string    `json:"username" bson:"username"`
	Email        string    `json:"email,omitempty" bson:"email"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	Role         Role      `json:"role" bson:"role"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

// Principal is the identity snapshot embedded in a token at issuance time.
// It is authoritative for the token's lifetime and never re-checked against
// the live user record.
type Principal struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}
