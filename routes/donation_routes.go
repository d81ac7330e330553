package routes

import (
	"github.com/kamogelodev/student_fund/handlers"
	"github.com/gofiber/fiber/v2"
)

// Donation routes stay public: guests can donate without an account.
func DonationRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Post("/campaigns/:campaignId/donations", handlers.SubmitProofDonation)

	tips := api.Group("/donations/tip")
	tips.Post("/initialize", handlers.InitializeTip)
	tips.Post("/verify", handlers.VerifyTip)
}
