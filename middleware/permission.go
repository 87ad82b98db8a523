package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/psymatch/therapy-app/models"
)

// RequireRole checks the role claim set by Protected. Gating fields like
// is_verified are never part of this check; they only affect the public
// directory.
func RequireRole(role models.AccountRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		current, ok := c.Locals("role").(string)
		if !ok || current != string(role) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "You don't have the required role to perform this action",
			})
		}
		return c.Next()
	}
}
