package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/psymatch/therapy-app/db"
	"github.com/psymatch/therapy-app/models"
)

// ListSkills returns the full skill vocabulary, name-ordered.
func ListSkills(c *fiber.Ctx) error {
	var skills []models.Skill
	if err := db.DB.Order("name ASC").Find(&skills).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch skills",
		})
	}
	return c.JSON(skills)
}

// ListLanguages returns all supported languages, name-ordered.
func ListLanguages(c *fiber.Ctx) error {
	var languages []models.Language
	if err := db.DB.Order("name ASC").Find(&languages).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch languages",
		})
	}
	return c.JSON(languages)
}
