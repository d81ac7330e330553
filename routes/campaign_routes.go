package routes

import (
	"github.com/kamogelodev/student_fund/handlers"
	"github.com/kamogelodev/student_fund/middleware"
	"github.com/gofiber/fiber/v2"
)

func CampaignRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	campaigns := api.Group("/campaigns")
	campaigns.Get("", handlers.ListCampaigns)
	campaigns.Get("/:campaignId", handlers.GetCampaign)
	campaigns.Get("/:campaignId/bank-details", handlers.GetCampaignBankDetails)
	campaigns.Post("", middleware.Protected(), handlers.CreateCampaign)

	api.Get("/universities", handlers.ListUniversities)
}
