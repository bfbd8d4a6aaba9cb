package main

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/academia-online/courses-api/internal/core/domain"
	"github.com/academia-online/courses-api/internal/infrastructure/config"
	"github.com/academia-online/courses-api/internal/infrastructure/db/postgres"
)

// Seeds the first administrator account. Reads ADMIN_EMAIL, ADMIN_PASSWORD
// and optionally ADMIN_NOMBRE from the environment.
func main() {
	_ = godotenv.Load()

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	nombre := os.Getenv("ADMIN_NOMBRE")

	if email == "" || password == "" {
		log.Fatal("createadmin: ADMIN_EMAIL and ADMIN_PASSWORD are required")
	}
	if nombre == "" {
		nombre = strings.SplitN(email, "@", 2)[0]
	}

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("createadmin: load config: %v", err)
	}

	db, err := postgres.Connect(ctx, postgres.Config{URL: cfg.Postgres.URL})
	if err != nil {
		log.Fatalf("createadmin: connect: %v", err)
	}
	defer db.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		log.Fatalf("createadmin: hash password: %v", err)
	}

	users := postgres.NewUserRepository(db)
	now := time.Now().UTC()
	admin, err := users.Create(ctx, &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         nombre,
		Role:         domain.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		log.Fatalf("createadmin: %v", err)
	}

	log.Printf("admin created: %s (%s)", admin.Email, admin.ID)
}
