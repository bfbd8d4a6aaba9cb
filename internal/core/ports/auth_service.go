package ports

import (
	"context"

	"github.com/academia-online/courses-api/internal/core/domain"
)

// RegisterInput carries a registration request into the auth service.
// CallerRole is the role of the authenticated caller, when there is one;
// public registrations leave it empty.
type RegisterInput struct {
	Email         string
	Password      string
	Name          string
	RequestedRole string
	CallerRole    string
}

type AuthService interface {
	// Register creates an account and returns a signed token for it.
	// Requesting the admin role without an admin caller fails with
	// domain.ErrForbidden.
	Register(ctx context.Context, input RegisterInput) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
