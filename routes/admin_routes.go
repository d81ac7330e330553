package routes

import (
	"github.com/kamogelodev/student_fund/handlers"
	"github.com/kamogelodev/student_fund/middleware"
	"github.com/gofiber/fiber/v2"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())

	admin.Get("/campaigns/pending", handlers.ListPendingCampaigns)
	admin.Put("/campaigns/:campaignId/approve", handlers.ApproveCampaign)
	admin.Put("/campaigns/:campaignId/reject", handlers.RejectCampaign)

	admin.Get("/donations/pending", handlers.ListPendingDonations)
	admin.Get("/donations/:donationId/proof", handlers.GetDonationProofURL)
}
