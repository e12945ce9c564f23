package main

import (
	"context"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"alumniport/internal/config"
	"alumniport/internal/db"
	"alumniport/internal/model"
	"alumniport/internal/repository"
)

// seedPassword is the login password for every seeded demo account.
const seedPassword = "password123"

type seedUser struct {
	user model.User
	post string
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Post{},
		&model.Like{},
		&model.Comment{},
		&model.Message{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), 10)
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}

	seeds := []seedUser{
		{
			user: model.User{
				Name:            "John Doe",
				Email:           "john.doe@example.com",
				Role:            model.RoleAlumni,
				BatchYear:       2018,
				Branch:          "Computer Science",
				CurrentPosition: "Backend Engineer",
				Location:        "Bengaluru",
			},
			post: "Happy to connect with juniors looking for backend roles, drop me a message!",
		},
		{
			user: model.User{
				Name:            "Priya Sharma",
				Email:           "priya.sharma@example.com",
				Role:            model.RoleAlumni,
				BatchYear:       2016,
				Branch:          "Electronics",
				CurrentPosition: "Product Manager",
				Location:        "Pune",
			},
			post: "We are hiring interns this summer. Comment here if interested.",
		},
		{
			user: model.User{
				Name:      "Jane Smith",
				Email:     "jane.smith@example.com",
				Role:      model.RoleStudent,
				BatchYear: 2026,
				Branch:    "Computer Science",
			},
		},
	}

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	postRepo := repository.NewPostRepository(gormDB)

	created := 0
	for _, s := range seeds {
		existing, err := userRepo.FindByEmail(ctx, s.user.Email)
		if err == nil && existing != nil {
			log.Printf("Skipping %s (already seeded)", s.user.Email)
			continue
		}
		if err != nil && err != gorm.ErrRecordNotFound {
			log.Fatalf("Failed to check user %s: %v", s.user.Email, err)
		}

		u := s.user
		u.PasswordHash = string(hash)
		if err := userRepo.Create(ctx, &u); err != nil {
			log.Fatalf("Failed to seed user %s: %v", u.Email, err)
		}
		created++

		if s.post != "" {
			post := &model.Post{
				AuthorID:         u.ID,
				AuthorName:       u.Name,
				AuthorRole:       u.Role,
				AuthorBatch:      u.BatchYear,
				AuthorBranch:     u.Branch,
				AuthorProfilePic: u.ProfilePicture,
				Content:          s.post,
			}
			if err := postRepo.Create(ctx, post); err != nil {
				log.Fatalf("Failed to seed post for %s: %v", u.Email, err)
			}
		}
	}

	log.Printf("Seed complete: %d users created (password %q)", created, seedPassword)
}
