// Command create-admin creates the first admin staff account.
// Signup is admin-gated, so a fresh deployment needs this to bootstrap.
//
// Usage:
//
//	create-admin --username=root --email=admin@example.com
//
// Requires DATABASE_DSN and ADMIN_PASSWORD environment variables to be set.
// The password comes from the environment so it never lands in shell history.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	staffrepo "github.com/SoloAk21/library-manager-backend/internal/adapter/postgres/staff"
	"github.com/SoloAk21/library-manager-backend/internal/auth"
	"github.com/SoloAk21/library-manager-backend/internal/domain"
)

func main() {
	username := flag.String("username", "", "username for the admin account")
	email := flag.String("email", "", "email for the admin account")
	flag.Parse()

	if *username == "" || *email == "" {
		fmt.Fprintln(os.Stderr, "Usage: create-admin --username=root --email=admin@example.com")
		os.Exit(1)
	}

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if len(password) < 6 {
		log.Fatal("ADMIN_PASSWORD environment variable is required (min 6 characters)")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	hash, err := auth.NewPasswordHasher(bcrypt.DefaultCost).Hash(password)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	staff := staffrepo.New(pool)
	created, err := staff.Create(ctx, &domain.Staff{
		ID:       uuid.New(),
		Username: *username,
		Email:    *email,
		Role:     domain.RoleAdmin,
	}, hash)
	if err != nil {
		log.Fatalf("create admin: %v", err)
	}

	fmt.Printf("Admin account %q (%s) created.\n", created.Username, created.ID)
}
