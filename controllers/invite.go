package controllers

import (
	"time"

	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/psymatch/therapy-app/db"
	"github.com/psymatch/therapy-app/models"
	"github.com/psymatch/therapy-app/utils"
)

type InviteCodeInput struct {
	Code      string     `json:"code"`
	ExpiresAt *time.Time `json:"expires_at"`
}

// CreateInviteCode mints a therapist invite code attributed to the
// calling admin. A code can be supplied or generated.
func CreateInviteCode(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	input := new(InviteCodeInput)
	if err := c.BodyParser(input); err != nil && len(c.Body()) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	code := input.Code
	if code == "" {
		code = utils.GenerateInviteCode()
	}

	var existing models.InviteCode
	if db.DB.Where("code = ?", code).First(&existing).RowsAffected > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Invite code already exists",
		})
	}

	invite := models.InviteCode{
		Code:      code,
		CreatedBy: &userID,
		ExpiresAt: input.ExpiresAt,
	}
	if err := db.DB.Create(&invite).Error; err != nil {
		log.Printf("Error creating invite code: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create invite code",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(invite)
}

// ListInviteCodes returns the codes created by the caller, newest first.
func ListInviteCodes(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var invites []models.InviteCode
	if err := db.DB.Where("created_by = ?", userID).
		Order("created_at DESC").
		Find(&invites).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch invite codes",
		})
	}

	return c.JSON(invites)
}
