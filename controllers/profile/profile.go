package profile

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/psymatch/therapy-app/db"
	"github.com/psymatch/therapy-app/models"
	"github.com/psymatch/therapy-app/utils"
)

// Every handler here resolves the row from the authenticated user's ID.
// Client-supplied ids are never accepted, so ownership needs no extra
// check.

type BaseProfileInput struct {
	FirstName *string        `json:"first_name"`
	LastName  *string        `json:"last_name"`
	Gender    *models.Gender `json:"gender"`
}

// UpdateBaseProfile patches first/last name and gender on the caller's
// base profile.
func UpdateBaseProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var input BaseProfileInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	var profile models.UserProfile
	if err := db.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Profile not found",
		})
	}

	if input.FirstName != nil {
		profile.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		profile.LastName = *input.LastName
	}
	if input.Gender != nil {
		switch *input.Gender {
		case models.GenderFemale, models.GenderMale, models.GenderUnspecified:
			profile.Gender = *input.Gender
		default:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid gender",
			})
		}
	}

	if err := db.DB.Save(&profile).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update profile",
		})
	}

	return c.JSON(profile)
}

// UpdateAvatar replaces the caller's avatar with an uploaded image.
func UpdateAvatar(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	file, err := c.FormFile("avatar")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to get avatar image",
		})
	}

	f, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to open avatar image",
		})
	}
	defer f.Close()

	publicID := fmt.Sprintf("user_%d_%d", userID, time.Now().Unix())
	secureURL, err := utils.UploadImage(f, publicID, "avatars")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to upload avatar",
		})
	}

	var profile models.UserProfile
	if err := db.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Profile not found",
		})
	}

	profile.AvatarURL = secureURL
	if err := db.DB.Save(&profile).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update avatar",
		})
	}

	return c.JSON(fiber.Map{
		"avatar_url": profile.Avatar(),
	})
}

type TherapistProfileInput struct {
	Bio             *string `json:"bio"`
	ExperienceYears *uint   `json:"experience_years"`
	DisplayHours    *bool   `json:"display_hours"`
	SkillIDs        []uint  `json:"skill_ids"`
	LanguageIDs     []uint  `json:"language_ids"`
}

// UpdateTherapistProfile patches the caller's therapist fields. The
// is_verified/is_subscribed/status gates are not writable here.
func UpdateTherapistProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var input TherapistProfileInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	var therapist models.TherapistProfile
	if err := db.DB.Where("user_id = ?", userID).First(&therapist).Error; err != nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "No therapist profile for this account",
		})
	}

	if input.Bio != nil {
		therapist.Bio = *input.Bio
	}
	if input.ExperienceYears != nil {
		therapist.ExperienceYears = *input.ExperienceYears
	}
	if input.DisplayHours != nil {
		therapist.DisplayHours = *input.DisplayHours
	}

	if err := db.DB.Save(&therapist).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update therapist profile",
		})
	}

	if input.SkillIDs != nil {
		var skills []models.Skill
		if len(input.SkillIDs) > 0 {
			if err := db.DB.Where("id IN ?", input.SkillIDs).Find(&skills).Error; err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error": "Failed to fetch skills",
				})
			}
		}
		if err := db.DB.Model(&therapist).Association("Skills").Replace(skills); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to update skills",
			})
		}
	}

	if input.LanguageIDs != nil {
		var languages []models.Language
		if len(input.LanguageIDs) > 0 {
			if err := db.DB.Where("id IN ?", input.LanguageIDs).Find(&languages).Error; err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error": "Failed to fetch languages",
				})
			}
		}
		if err := db.DB.Model(&therapist).Association("Languages").Replace(languages); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to update languages",
			})
		}
	}

	var updated models.TherapistProfile
	if err := db.DB.Preload("Skills").Preload("Languages").First(&updated, therapist.ID).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch updated profile",
		})
	}

	return c.JSON(updated)
}

type ClientProfileInput struct {
	RequestText *string `json:"request_text"`
	InterestIDs []uint  `json:"interest_ids"`
}

// UpdateClientProfile patches the caller's client fields.
func UpdateClientProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var input ClientProfileInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	var client models.ClientProfile
	if err := db.DB.Where("user_id = ?", userID).First(&client).Error; err != nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "No client profile for this account",
		})
	}

	if input.RequestText != nil {
		client.RequestText = *input.RequestText
	}

	if err := db.DB.Save(&client).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update client profile",
		})
	}

	if input.InterestIDs != nil {
		var interests []models.Skill
		if len(input.InterestIDs) > 0 {
			if err := db.DB.Where("id IN ?", input.InterestIDs).Find(&interests).Error; err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error": "Failed to fetch interests",
				})
			}
		}
		if err := db.DB.Model(&client).Association("Interests").Replace(interests); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to update interests",
			})
		}
	}

	var updated models.ClientProfile
	if err := db.DB.Preload("Interests").First(&updated, client.ID).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch updated profile",
		})
	}

	return c.JSON(updated)
}
