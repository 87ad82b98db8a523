package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/psymatch/therapy-app/controllers"
)

// SetupReferenceRoutes configures the skill and language lookups
func SetupReferenceRoutes(app *fiber.App) {
	app.Get("/skills", controllers.ListSkills)
	app.Get("/languages", controllers.ListLanguages)
}
