package handlers

import (
	"time"

	"github.com/kamogelodev/student_fund/database"
	"github.com/kamogelodev/student_fund/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func ListCampaigns(c *fiber.Ctx) error {
	status := c.Query("status", "active")

	query := database.DB.Preload("Student.User").Preload("Student.University").
		Where("status = ?", status).Order("created_at desc")
	if c.Query("urgent") == "true" {
		query = query.Where("is_urgent = ?", true)
	}

	var campaigns []models.Campaign
	if err := query.Find(&campaigns).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(campaigns)
}

func GetCampaign(c *fiber.Ctx) error {
	campaignID := c.Params("campaignId")
	if _, err := uuid.Parse(campaignID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid campaign ID format"})
	}

	var campaign models.Campaign
	if err := database.DB.Preload("Student.User").Preload("Student.University").
		Where("id = ?", campaignID).First(&campaign).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Campaign not found"})
	}
	return c.JSON(campaign)
}

// GetCampaignBankDetails returns the university bank account a donor
// transfers into, with the student number as payment reference. The
// reference is passed through verbatim: it is the reconciliation key the
// university back-office matches transfers on.
func GetCampaignBankDetails(c *fiber.Ctx) error {
	campaignID := c.Params("campaignId")
	if _, err := uuid.Parse(campaignID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid campaign ID format"})
	}

	var campaign models.Campaign
	if err := database.DB.Preload("Student.University").
		Where("id = ?", campaignID).First(&campaign).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Campaign not found"})
	}

	university := campaign.Student.University
	if university.ID == uuid.Nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No university bank details on record for this campaign"})
	}

	return c.JSON(fiber.Map{
		"university_name":   university.Name,
		"bank_name":         university.BankName,
		"account_name":      university.AccountName,
		"account_number":    university.AccountNumber,
		"branch_code":       university.BranchCode,
		"payment_reference": campaign.Student.StudentNumber,
	})
}

type CreateCampaignRequest struct {
	Title           string     `json:"title" validate:"required,min=5"`
	Story           *string    `json:"story"`
	Goal            float64    `json:"goal" validate:"required,gt=0"`
	IsUrgent        bool       `json:"is_urgent"`
	EndDate         *time.Time `json:"end_date"`
	FeeStatementURL *string    `json:"fee_statement_url"`
	IDDocumentURL   *string    `json:"id_document_url"`
	EnrollmentURL   *string    `json:"enrollment_url"`
	InvoiceURL      *string    `json:"invoice_url"`
}

func CreateCampaign(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req CreateCampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var student models.Student
	if err := database.DB.Where("user_id = ?", userID).First(&student).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Complete your student profile before creating a campaign"})
	}

	campaign := models.Campaign{
		StudentID:       student.UserID,
		Title:           req.Title,
		Story:           req.Story,
		Goal:            req.Goal,
		Status:          "pending",
		IsUrgent:        req.IsUrgent,
		EndDate:         req.EndDate,
		FeeStatementURL: req.FeeStatementURL,
		IDDocumentURL:   req.IDDocumentURL,
		EnrollmentURL:   req.EnrollmentURL,
		InvoiceURL:      req.InvoiceURL,
	}
	if err := database.DB.Create(&campaign).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create campaign"})
	}

	return c.Status(fiber.StatusCreated).JSON(campaign)
}
