package routes

import (
	"github.com/kamogelodev/student_fund/handlers"
	"github.com/kamogelodev/student_fund/middleware"
	"github.com/gofiber/fiber/v2"
)

func ProfileRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	profile := api.Group("/profile", middleware.Protected())
	profile.Get("", handlers.GetProfile)
	profile.Post("/student", handlers.SubmitStudentProfile)
}
