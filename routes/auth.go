package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/psymatch/therapy-app/controllers"
	"github.com/psymatch/therapy-app/middleware"
)

// SetupAuthRoutes configures all authentication related routes
func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	// Public routes
	auth.Post("/register/client", controllers.RegisterClient)
	auth.Post("/register/therapist", controllers.RegisterTherapist)
	auth.Post("/login", controllers.Login)
	auth.Post("/refresh", controllers.RefreshToken)

	// Protected routes
	auth.Get("/me", middleware.Protected(), controllers.CurrentUser)
	auth.Post("/logout", middleware.Protected(), controllers.Logout)
}
