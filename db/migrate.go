package db

import (
	"fmt"
	"log"

	"github.com/psymatch/therapy-app/models"
)

func Migrate() {
	// Initialize DB connection
	Init()

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.TherapistProfile{},
		&models.ClientProfile{},
		&models.InviteCode{},
		&models.Skill{},
		&models.Language{},
		&models.TherapistPhoto{},
		&models.Publication{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}
