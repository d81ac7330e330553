package handlers

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/kamogelodev/student_fund/database"
	"github.com/kamogelodev/student_fund/models"
	"github.com/kamogelodev/student_fund/notifications"
	"github.com/kamogelodev/student_fund/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const proofURLTTL = 15 * time.Minute

func reviewService() *services.ReviewService {
	return services.NewReviewService(database.DB, notifications.NewNotifier(database.DB))
}

func ListPendingCampaigns(c *fiber.Ctx) error {
	var pendingCampaigns []models.Campaign
	if err := database.DB.Preload("Student.User").Preload("Student.University").
		Where("status = ?", "pending").Order("created_at asc").
		Find(&pendingCampaigns).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(pendingCampaigns)
}

// ApproveCampaign sets a campaign live and cascades the approval to the
// student and their pending verification requests. The response carries the
// cascade warnings and tells the client to reload campaign state in full.
func ApproveCampaign(c *fiber.Ctx) error {
	campaignID, err := uuid.Parse(c.Params("campaignId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid campaign ID format"})
	}

	result, err := reviewService().Approve(campaignID)
	if err != nil {
		return reviewErrorResponse(c, err)
	}

	student := result.Campaign.Student.User
	go notifications.SendEmail(student.FullName, student.Email, "Your Campaign has been Approved!",
		fmt.Sprintf("<h1>Congratulations!</h1><p>Your campaign %q is now live and your student account has been verified.</p>", result.Campaign.Title))

	return c.JSON(fiber.Map{
		"message":  "Campaign approved",
		"campaign": result.Campaign,
		"warnings": result.Warnings,
		"reload":   true,
	})
}

type RejectCampaignRequest struct {
	Reason string `json:"reason" validate:"required"`
}

func RejectCampaign(c *fiber.Ctx) error {
	campaignID, err := uuid.Parse(c.Params("campaignId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid campaign ID format"})
	}

	var req RejectCampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	result, err := reviewService().Reject(campaignID, req.Reason)
	if err != nil {
		return reviewErrorResponse(c, err)
	}

	student := result.Campaign.Student.User
	go notifications.SendEmail(student.FullName, student.Email, "Update on Your Campaign",
		fmt.Sprintf("<h1>Campaign Update</h1><p>Your campaign %q was not approved. Reason: %s</p>", result.Campaign.Title, req.Reason))

	return c.JSON(fiber.Map{
		"message":  "Campaign rejected",
		"campaign": result.Campaign,
		"warnings": result.Warnings,
		"reload":   true,
	})
}

// GetDonationProofURL returns a short-lived signed link to a donation's
// uploaded proof of payment.
func GetDonationProofURL(c *fiber.Ctx) error {
	donationID := c.Params("donationId")
	if _, err := uuid.Parse(donationID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid donation ID format"})
	}

	var donation models.Donation
	if err := database.DB.Where("id = ?", donationID).First(&donation).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Donation not found"})
	}

	url, err := captureService.ProofViewURL(&donation, proofURLTTL)
	if err != nil {
		return donationErrorResponse(c, err)
	}
	return c.JSON(fiber.Map{"url": url, "expires_in": int(proofURLTTL.Seconds())})
}

func ListPendingDonations(c *fiber.Ctx) error {
	var pendingDonations []models.Donation
	if err := database.DB.Where("status = ?", "pending").Order("created_at asc").
		Find(&pendingDonations).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(pendingDonations)
}

func reviewErrorResponse(c *fiber.Ctx, err error) error {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr.Error()})
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Campaign not found"})
	}

	log.Printf("🔥 %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update the campaign. Please try again."})
}
