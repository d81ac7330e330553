package handlers

import (
	"errors"
	"log"
	"strconv"

	"github.com/kamogelodev/student_fund/database"
	"github.com/kamogelodev/student_fund/notifications"
	"github.com/kamogelodev/student_fund/payments"
	"github.com/kamogelodev/student_fund/services"
	"github.com/kamogelodev/student_fund/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Donors without an email get charged against this address; Paystack
// requires a payer email even for anonymous tips.
const placeholderDonorEmail = "guest@studentfund.app"

var captureService *services.CaptureService

// InitDonationHandlers wires the document store into the capture pipeline.
// Called once from main after the store is constructed.
func InitDonationHandlers(store services.ProofStore) {
	captureService = services.NewCaptureService(database.DB, store, notifications.NewNotifier(database.DB))
}

// SubmitProofDonation handles the proof-upload step of the donation flow:
// multipart form with the proof file, the amount and the donor identity
// fields.
func SubmitProofDonation(c *fiber.Ctx) error {
	campaignID, err := uuid.Parse(c.Params("campaignId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid campaign ID format"})
	}

	amount, err := strconv.ParseFloat(c.FormValue("amount"), 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid donation amount"})
	}

	fileHeader, err := c.FormFile("proof")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "A proof of payment file is required"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Could not read the uploaded file"})
	}
	defer file.Close()

	submission := services.ProofSubmission{
		Amount: amount,
		Donor: services.DonorDetails{
			FirstName: c.FormValue("first_name"),
			LastName:  c.FormValue("last_name"),
			Email:     c.FormValue("email"),
			Anonymous: c.FormValue("is_anonymous") == "true",
		},
		File: file,
	}

	result, err := captureService.SubmitProof(c.Context(), campaignID, submission)
	if err != nil {
		return donationErrorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"donation": result.Donation,
		"warnings": result.Warnings,
	})
}

type TipInitializeRequest struct {
	CampaignID string  `json:"campaign_id" validate:"required,uuid4"`
	Amount     float64 `json:"amount" validate:"required,gt=0"`
	Email      string  `json:"email" validate:"omitempty,email"`
}

// InitializeTip opens a Paystack charge for a platform tip. The metadata
// tags the charge as a tip and records the campaign it was initiated from
// for audit traceability; the resulting donation is still platform-level.
func InitializeTip(c *fiber.Ctx) error {
	var req TipInitializeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	email := req.Email
	if email == "" {
		email = placeholderDonorEmail
	}

	reference := utils.GeneratePaymentReference()
	metadata := map[string]interface{}{
		"purpose":     "platform_tip",
		"campaign_id": req.CampaignID,
	}

	data, err := payments.InitializeTransaction(req.Amount, "ZAR", email, reference, metadata)
	if err != nil {
		log.Printf("Failed to initialize tip charge %s: %v", reference, err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Could not reach the payment gateway. Please try again."})
	}

	return c.JSON(fiber.Map{
		"authorization_url": data.AuthorizationURL,
		"access_code":       data.AccessCode,
		"reference":         data.Reference,
	})
}

type TipVerifyRequest struct {
	Reference string `json:"reference" validate:"required"`
}

// VerifyTip confirms settlement with the gateway and records the tip. The
// gateway is authoritative: if the charge settled but the local insert
// fails, the donor still gets a success response and the gap is surfaced
// for manual reconciliation.
func VerifyTip(c *fiber.Ctx) error {
	var req TipVerifyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	verified, err := payments.VerifyTransaction(req.Reference)
	if err != nil {
		log.Printf("Failed to verify tip charge %s: %v", req.Reference, err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Could not verify the payment. Please try again."})
	}

	if verified.Status != "success" {
		return c.Status(fiber.StatusPaymentRequired).JSON(fiber.Map{"error": "Payment was not completed. Please try again."})
	}

	amount := float64(verified.Amount) / 100
	donation, err := captureService.RecordTip(amount, verified.Reference, req.Reference)
	if err != nil {
		log.Printf("🔥 Tip %s settled but could not be recorded: %v", req.Reference, err)
		return c.JSON(fiber.Map{
			"status":  "success",
			"warning": "Your tip was received but could not be recorded. Our team will reconcile it manually.",
		})
	}

	return c.JSON(fiber.Map{"status": "success", "donation": donation})
}

func donationErrorResponse(c *fiber.Ctx, err error) error {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr.Error()})
	}

	var storageErr *services.StorageError
	if errors.As(err, &storageErr) {
		log.Printf("🔥 %v", storageErr)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to upload the proof of payment. Please try again."})
	}

	var gatewayErr *services.GatewayError
	if errors.As(err, &gatewayErr) {
		log.Printf("🔥 %v", gatewayErr)
		return c.Status(fiber.StatusPaymentRequired).JSON(fiber.Map{"error": "Payment was not completed. Please try again."})
	}

	log.Printf("🔥 %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record the donation. Please try again."})
}
