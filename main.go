package main

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/psymatch/therapy-app/cron"

	"github.com/psymatch/therapy-app/db"

	"github.com/psymatch/therapy-app/redis"

	"github.com/psymatch/therapy-app/routes"
)

func main() {
	app := fiber.New()
	db.Init()
	db.Seed()
	redis.InitRedis()
	cron.StartCronJobs()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Hello, World!")
	})
	routes.SetupAuthRoutes(app)
	routes.SetupDirectoryRoutes(app)
	routes.SetupProfileRoutes(app)
	routes.SetupReferenceRoutes(app)
	routes.SetupInviteRoutes(app)

	app.Listen(":8000")
	fmt.Println("Server started on port 8000")
}
