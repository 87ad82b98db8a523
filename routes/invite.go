package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/psymatch/therapy-app/controllers"
	"github.com/psymatch/therapy-app/middleware"
	"github.com/psymatch/therapy-app/models"
)

// SetupInviteRoutes configures invite code management (admin only)
func SetupInviteRoutes(app *fiber.App) {
	invites := app.Group("/invites", middleware.Protected(), middleware.RequireRole(models.RoleAdmin))
	invites.Post("/", controllers.CreateInviteCode)
	invites.Get("/", controllers.ListInviteCodes)
}
