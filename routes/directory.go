package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/psymatch/therapy-app/controllers/directory"
)

// SetupDirectoryRoutes configures the public therapist directory
func SetupDirectoryRoutes(app *fiber.App) {
	app.Get("/therapists", directory.ListTherapists)
	app.Get("/therapists/:id", directory.GetTherapist)
	app.Get("/therapists/:id/photos", directory.ListTherapistPhotos)
	app.Get("/therapists/:id/publications", directory.ListTherapistPublications)

	// Opaque public-id lookup, safe for external URLs
	app.Get("/users/:public_id", directory.GetPublicProfile)
}
