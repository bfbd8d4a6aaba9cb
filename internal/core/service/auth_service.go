package service

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/academia-online/courses-api/internal/api/metrics"
	"github.com/academia-online/courses-api/internal/core/domain"
	"github.com/academia-online/courses-api/internal/core/ports"
)

const bcryptCost = 10

// AuthService implements registration and login.
type AuthService struct {
	users     ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(users ports.UserRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 7 * 24 * time.Hour
	}
	return &AuthService{users: users, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (string, *domain.User, error) {
	if input.Email == "" || input.Password == "" {
		return "", nil, domain.ErrMissingCredentials
	}
	if s.jwtSecret == "" {
		return "", nil, domain.ErrSigningKeyMissing
	}

	// Only an already authenticated admin may mint another admin; public
	// registration always yields alumno.
	role := domain.RoleStudent
	if input.RequestedRole == domain.RoleAdmin {
		if input.CallerRole != domain.RoleAdmin {
			return "", nil, domain.ErrForbidden
		}
		role = domain.RoleAdmin
	}

	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		return "", nil, domain.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return "", nil, err
	}

	name := input.Name
	if name == "" {
		name = emailLocalPart(input.Email)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        input.Email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}

	token, err := s.generateToken(created)
	if err != nil {
		return "", nil, err
	}

	metrics.UsersRegisteredTotal.WithLabelValues(created.Role).Inc()
	return token, created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrMissingCredentials
	}
	if s.jwtSecret == "" {
		return "", nil, domain.ErrSigningKeyMissing
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"id":     user.ID,
		"email":  user.Email,
		"nombre": user.Name,
		"rol":    user.Role,
		"exp":    time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// emailLocalPart derives a display name from the address when none is given.
func emailLocalPart(email string) string {
	if i := strings.Index(email, "@"); i > 0 {
		return email[:i]
	}
	return email
}
