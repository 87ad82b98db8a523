package profile

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/psymatch/therapy-app/db"
	"github.com/psymatch/therapy-app/models"
	"github.com/psymatch/therapy-app/utils"
)

func ownTherapistProfile(c *fiber.Ctx) (*models.TherapistProfile, error) {
	userID := c.Locals("userID").(uint)
	var therapist models.TherapistProfile
	if err := db.DB.Where("user_id = ?", userID).First(&therapist).Error; err != nil {
		return nil, err
	}
	return &therapist, nil
}

// ListMyPhotos returns the caller's gallery in display order.
func ListMyPhotos(c *fiber.Ctx) error {
	therapist, err := ownTherapistProfile(c)
	if err != nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "No therapist profile for this account",
		})
	}

	var photos []models.TherapistPhoto
	if err := db.DB.Where("therapist_profile_id = ?", therapist.ID).
		Order("position ASC").
		Find(&photos).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch photos",
		})
	}

	return c.JSON(photos)
}

// AddPhoto uploads a new gallery image. New photos go to the end of the
// gallery unless a position is given.
func AddPhoto(c *fiber.Ctx) error {
	therapist, err := ownTherapistProfile(c)
	if err != nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "No therapist profile for this account",
		})
	}

	file, err := c.FormFile("photo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to get photo",
		})
	}

	f, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to open photo",
		})
	}
	defer f.Close()

	publicID := fmt.Sprintf("therapist_%d_%d", therapist.ID, time.Now().Unix())
	secureURL, err := utils.UploadImage(f, publicID, "gallery")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to upload photo",
		})
	}

	position, posErr := strconv.Atoi(c.FormValue("position"))
	if posErr != nil {
		var count int64
		db.DB.Model(&models.TherapistPhoto{}).
			Where("therapist_profile_id = ?", therapist.ID).
			Count(&count)
		position = int(count)
	}

	photo := models.TherapistPhoto{
		TherapistProfileID: therapist.ID,
		URL:                secureURL,
		Caption:            c.FormValue("caption"),
		Position:           position,
	}
	if err := db.DB.Create(&photo).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save photo",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(photo)
}

type PhotoUpdateInput struct {
	Caption  *string `json:"caption"`
	Position *int    `json:"position"`
}

// UpdatePhoto changes a photo's caption or position. The photo must
// belong to the caller's gallery.
func UpdatePhoto(c *fiber.Ctx) error {
	therapist, err := ownTherapistProfile(c)
	if err != nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "No therapist profile for this account",
		})
	}

	var input PhotoUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	var photo models.TherapistPhoto
	if err := db.DB.Where("id = ? AND therapist_profile_id = ?", c.Params("id"), therapist.ID).
		First(&photo).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Photo not found",
		})
	}

	if input.Caption != nil {
		photo.Caption = *input.Caption
	}
	if input.Position != nil {
		photo.Position = *input.Position
	}

	if err := db.DB.Save(&photo).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update photo",
		})
	}

	return c.JSON(photo)
}

// DeletePhoto removes a photo from the caller's gallery.
func DeletePhoto(c *fiber.Ctx) error {
	therapist, err := ownTherapistProfile(c)
	if err != nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "No therapist profile for this account",
		})
	}

	result := db.DB.Where("id = ? AND therapist_profile_id = ?", c.Params("id"), therapist.ID).
		Delete(&models.TherapistPhoto{})
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete photo",
		})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Photo not found",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Photo deleted successfully",
	})
}
