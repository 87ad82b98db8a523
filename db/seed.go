package db

import (
	"log"

	"github.com/psymatch/therapy-app/models"
)

var defaultSkills = []string{
	"Anxiety",
	"Depression",
	"Relationships",
	"Burnout",
	"Self-esteem",
	"Grief",
	"Trauma",
	"Career",
}

var defaultLanguages = []models.Language{
	{Name: "English", Code: "en"},
	{Name: "Russian", Code: "ru"},
	{Name: "German", Code: "de"},
	{Name: "Spanish", Code: "es"},
	{Name: "French", Code: "fr"},
}

// Seed fills the skill and language lookup tables. Safe to call on every
// start, existing rows are left alone.
func Seed() {
	for _, name := range defaultSkills {
		var existing models.Skill
		if DB.Where("name = ?", name).First(&existing).RowsAffected == 0 {
			if err := DB.Create(&models.Skill{Name: name}).Error; err != nil {
				log.Printf("Failed to seed skill %q: %v", name, err)
			}
		}
	}

	for _, lang := range defaultLanguages {
		var existing models.Language
		if DB.Where("name = ?", lang.Name).First(&existing).RowsAffected == 0 {
			l := lang
			if err := DB.Create(&l).Error; err != nil {
				log.Printf("Failed to seed language %q: %v", lang.Name, err)
			}
		}
	}

	log.Println("✅ Reference data seeded")
}
