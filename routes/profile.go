package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/psymatch/therapy-app/controllers/profile"
	"github.com/psymatch/therapy-app/middleware"
)

// SetupProfileRoutes configures all owner-scoped profile management routes
func SetupProfileRoutes(app *fiber.App) {
	profileGroup := app.Group("/profile", middleware.Protected())

	profileGroup.Patch("/base", profile.UpdateBaseProfile)
	profileGroup.Put("/avatar", profile.UpdateAvatar)
	profileGroup.Patch("/therapist", profile.UpdateTherapistProfile)
	profileGroup.Patch("/client", profile.UpdateClientProfile)

	// Therapist-owned gallery and publications
	profileGroup.Get("/photos", profile.ListMyPhotos)
	profileGroup.Post("/photos", profile.AddPhoto)
	profileGroup.Patch("/photos/:id", profile.UpdatePhoto)
	profileGroup.Delete("/photos/:id", profile.DeletePhoto)

	profileGroup.Get("/publications", profile.ListMyPublications)
	profileGroup.Post("/publications", profile.CreatePublication)
	profileGroup.Patch("/publications/:id", profile.UpdatePublication)
	profileGroup.Delete("/publications/:id", profile.DeletePublication)
}
