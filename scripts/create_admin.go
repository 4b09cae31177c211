// scripts/create_admin.go
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"sctclinic/config"
	"sctclinic/database"
	adminRepo "sctclinic/database/repository/admin"
	"sctclinic/models"

	"github.com/google/uuid"
)

func main() {
	config.LoadConfig()
	database.InitDB()

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	name := os.Getenv("ADMIN_NAME")
	if email == "" || password == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}
	if name == "" {
		name = "Administrator"
	}

	repo := adminRepo.NewMongoAdminRepo()
	if err := repo.EnsureIndexes(); err != nil {
		log.Fatalf("failed to ensure admin indexes: %v", err)
	}

	ctx := context.Background()
	if existing, err := repo.GetByEmail(ctx, email); err == nil && existing != nil {
		fmt.Println("Admin already exists with email:", email)
		os.Exit(0)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	now := time.Now().UTC()
	adm := models.Admin{
		ID:           uuid.New().String(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hashed),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := repo.Create(ctx, adm); err != nil {
		log.Fatalf("failed to insert admin: %v", err)
	}

	fmt.Println("Admin created successfully:", email)
}
