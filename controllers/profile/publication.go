package profile

import (
	"github.com/gofiber/fiber/v2"
	"github.com/psymatch/therapy-app/db"
	"github.com/psymatch/therapy-app/models"
)

type PublicationInput struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// ListMyPublications returns the caller's articles, newest first.
func ListMyPublications(c *fiber.Ctx) error {
	therapist, err := ownTherapistProfile(c)
	if err != nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "No therapist profile for this account",
		})
	}

	var publications []models.Publication
	if err := db.DB.Where("therapist_profile_id = ?", therapist.ID).
		Order("created_at DESC").
		Find(&publications).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch publications",
		})
	}

	return c.JSON(publications)
}

// CreatePublication adds a new article to the caller's profile.
func CreatePublication(c *fiber.Ctx) error {
	therapist, err := ownTherapistProfile(c)
	if err != nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "No therapist profile for this account",
		})
	}

	var input PublicationInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}
	if input.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Title is required",
		})
	}

	publication := models.Publication{
		TherapistProfileID: therapist.ID,
		Title:              input.Title,
		Body:               input.Body,
	}
	if err := db.DB.Create(&publication).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create publication",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(publication)
}

// UpdatePublication edits one of the caller's articles.
func UpdatePublication(c *fiber.Ctx) error {
	therapist, err := ownTherapistProfile(c)
	if err != nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "No therapist profile for this account",
		})
	}

	var input PublicationInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	var publication models.Publication
	if err := db.DB.Where("id = ? AND therapist_profile_id = ?", c.Params("id"), therapist.ID).
		First(&publication).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Publication not found",
		})
	}

	if input.Title != "" {
		publication.Title = input.Title
	}
	if input.Body != "" {
		publication.Body = input.Body
	}

	if err := db.DB.Save(&publication).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update publication",
		})
	}

	return c.JSON(publication)
}

// DeletePublication removes one of the caller's articles.
func DeletePublication(c *fiber.Ctx) error {
	therapist, err := ownTherapistProfile(c)
	if err != nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "No therapist profile for this account",
		})
	}

	result := db.DB.Where("id = ? AND therapist_profile_id = ?", c.Params("id"), therapist.ID).
		Delete(&models.Publication{})
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete publication",
		})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Publication not found",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Publication deleted successfully",
	})
}
