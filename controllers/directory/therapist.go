package directory

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/psymatch/therapy-app/db"
	"github.com/psymatch/therapy-app/models"
	"gorm.io/gorm"
)

func therapistView(t *models.TherapistProfile) fiber.Map {
	view := fiber.Map{
		"id":               t.ID,
		"bio":              t.Bio,
		"experience_years": t.ExperienceYears,
		"status":           t.Status,
		"skills":           t.Skills,
		"languages":        t.Languages,
		"created_at":       t.CreatedAt,
	}
	if t.User.ID != 0 {
		view["public_id"] = t.User.PublicID
		if t.User.Profile != nil {
			view["first_name"] = t.User.Profile.FirstName
			view["last_name"] = t.User.Profile.LastName
			view["avatar_url"] = t.User.Profile.Avatar()
		}
	}
	if hours := t.HoursWorked(); hours != nil {
		view["total_hours_worked"] = *hours
	}
	return view
}

// ListTherapists returns the public directory: verified and subscribed
// therapists only, newest profiles first.
func ListTherapists(c *fiber.Ctx) error {
	var therapists []models.TherapistProfile

	// Get pagination parameters
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	offset := (page - 1) * limit

	// The count must see the same joins and filters as the page itself,
	// otherwise filtered pages report the unfiltered total.
	filtered := func(q *gorm.DB) *gorm.DB {
		q = q.Where("is_verified = ? AND is_subscribed = ?", true, true)
		if skillID := c.Query("skill_id"); skillID != "" {
			q = q.Joins("JOIN therapist_skills ON therapist_skills.therapist_profile_id = therapist_profiles.id").
				Where("therapist_skills.skill_id = ?", skillID)
		}
		if languageID := c.Query("language_id"); languageID != "" {
			q = q.Joins("JOIN therapist_languages ON therapist_languages.therapist_profile_id = therapist_profiles.id").
				Where("therapist_languages.language_id = ?", languageID)
		}
		return q
	}

	query := filtered(db.DB.Preload("User").
		Preload("User.Profile").
		Preload("Skills").
		Preload("Languages")).
		Order("created_at DESC")

	if err := query.Limit(limit).Offset(offset).Find(&therapists).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch therapists",
		})
	}

	var count int64
	filtered(db.DB.Model(&models.TherapistProfile{})).Count(&count)

	views := make([]fiber.Map, 0, len(therapists))
	for i := range therapists {
		views = append(views, therapistView(&therapists[i]))
	}

	return c.JSON(fiber.Map{
		"therapists": views,
		"total":      count,
		"page":       page,
		"limit":      limit,
		"pages":      (int(count) + limit - 1) / limit,
	})
}

// GetTherapist returns one directory entry. A profile that exists but
// fails the visibility gate yields the same 404 as a missing one.
func GetTherapist(c *fiber.Ctx) error {
	id := c.Params("id")

	var therapist models.TherapistProfile
	if err := db.DB.Preload("User").
		Preload("User.Profile").
		Preload("Skills").
		Preload("Languages").
		Preload("Photos", func(q *gorm.DB) *gorm.DB { return q.Order("position ASC") }).
		Where("id = ? AND is_verified = ? AND is_subscribed = ?", id, true, true).
		First(&therapist).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Therapist not found",
		})
	}

	view := therapistView(&therapist)
	view["photos"] = therapist.Photos
	return c.JSON(view)
}

// ListTherapistPhotos returns the gallery of a visible therapist, in
// display order.
func ListTherapistPhotos(c *fiber.Ctx) error {
	id := c.Params("id")

	var therapist models.TherapistProfile
	if err := db.DB.Where("id = ? AND is_verified = ? AND is_subscribed = ?", id, true, true).
		First(&therapist).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Therapist not found",
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

// ListTherapistPublications returns a visible therapist's articles,
// newest first.
func ListTherapistPublications(c *fiber.Ctx) error {
	id := c.Params("id")

	var therapist models.TherapistProfile
	if err := db.DB.Where("id = ? AND is_verified = ? AND is_subscribed = ?", id, true, true).
		First(&therapist).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Therapist not found",
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

// GetPublicProfile looks a user up by opaque public id. Only verified
// therapists are exposed; a client account, an unverified therapist and a
// nonexistent id all produce the same 404.
func GetPublicProfile(c *fiber.Ctx) error {
	publicID := c.Params("public_id")

	var user models.User
	if err := db.DB.Preload("Profile").
		Preload("TherapistProfile").
		Preload("TherapistProfile.Skills").
		Preload("TherapistProfile.Languages").
		Where("public_id = ?", publicID).
		First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Profile not found",
		})
	}

	if user.Role != models.RoleTherapist || user.TherapistProfile == nil || !user.TherapistProfile.IsVerified {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Profile not found",
		})
	}

	therapist := user.TherapistProfile
	therapist.User = user
	return c.JSON(therapistView(therapist))
}
