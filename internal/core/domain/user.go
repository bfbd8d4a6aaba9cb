package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin   = "admin"
	RoleStudent = "alumno"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrMissingCredentials = errors.New("email and password are required")
var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrStudentNotFound = errors.New("student not found")
var ErrSigningKeyMissing = errors.New("signing key not configured")

// User models an authenticated actor in the system.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"nombre"`
	Role         string    `json:"rol"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsAdmin reports whether the user carries the administrative role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
