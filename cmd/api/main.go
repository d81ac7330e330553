package main

import (
	"log"
	"time"

	"github.com/kamogelodev/student_fund/database"
	"github.com/kamogelodev/student_fund/handlers"
	"github.com/kamogelodev/student_fund/jobs"
	"github.com/kamogelodev/student_fund/notifications"
	"github.com/kamogelodev/student_fund/routes"
	"github.com/kamogelodev/student_fund/storage"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"
)

func main() {
	database.ConnectDB()
	database.Migrate()
	database.SeedAdmin()
	database.SeedUniversities()
	notifications.InitEmailService()

	proofStore, err := storage.NewCloudinaryStore()
	if err != nil {
		log.Fatalf("🔥 Failed to initialize document store: %v", err)
	}
	handlers.InitDonationHandlers(proofStore)

	c := cron.New()
	c.AddFunc("0 * * * *", jobs.CloseEndedCampaigns)
	go c.Start()
	log.Println("✅ Cron job for campaign expiry scheduled successfully.")

	app := fiber.New(fiber.Config{
		Prefork:       false,
		AppName:       "Student Fund",
		CaseSensitive: true,
		StrictRouting: true,
		ReadTimeout:   15 * time.Second,
		WriteTimeout:  15 * time.Second,
		IdleTimeout:   60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{
				"status":  "error",
				"code":    code,
				"message": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Authorization",
		MaxAge:        86400,
	}))

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Africa/Johannesburg",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "success",
			"message": "Welcome to Student Fund API",
		})
	})

	routes.AuthRoutes(app)
	routes.ProfileRoutes(app)
	routes.CampaignRoutes(app)
	routes.DonationRoutes(app)
	routes.AdminRoutes(app)
	routes.NotificationRoutes(app)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})

	log.Println("✅ Server is running on port 8080")
	if err := app.Listen(":8080"); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
