package ports

import (
	"context"

	"github.com/academia-online/courses-api/internal/core/domain"
)

// UserRepository defines the interface for user persistence.
type UserRepository interface {
	// Create inserts a new user. Returns domain.ErrUserExists when the
	// email is already registered.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindStudentByID retrieves a user only when it carries the alumno
	// role. Returns domain.ErrStudentNotFound otherwise.
	FindStudentByID(ctx context.Context, id string) (*domain.User, error)
}
