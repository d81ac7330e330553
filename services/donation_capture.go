package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"time"

	"github.com/kamogelodev/student_fund/models"
	"github.com/kamogelodev/student_fund/notifications"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const gatewayReferencePrefix = "paystack:"

// validAmount reports whether amount is a finite value greater than zero.
// NaN fails the comparison; infinities are rejected explicitly so that
// values like ParseFloat("+Inf") never reach an insert.
func validAmount(amount float64) bool {
	return amount > 0 && !math.IsInf(amount, 0)
}

// ProofStore is the narrow slice of the document store the capture flow
// needs: put a blob, get a short-lived viewing link later.
type ProofStore interface {
	Upload(ctx context.Context, publicID string, file io.Reader) (string, error)
	SignedURL(publicID string, ttl time.Duration) (string, error)
}

type CaptureService struct {
	db       *gorm.DB
	store    ProofStore
	notifier *notifications.Notifier
}

func NewCaptureService(db *gorm.DB, store ProofStore, notifier *notifications.Notifier) *CaptureService {
	return &CaptureService{db: db, store: store, notifier: notifier}
}

type ProofSubmission struct {
	Amount float64
	Donor  DonorDetails
	File   io.Reader
}

// CaptureResult separates the primary outcome (the created donation) from
// non-fatal warnings accumulated by best-effort side effects.
type CaptureResult struct {
	Donation *models.Donation
	Warnings []string
}

// SubmitProof runs the proof-upload step: upload the document, insert the
// pending donation, then fan out notifications. The three stages run
// strictly in that order. A storage or persistence failure aborts before
// any later stage; notification failures never block.
//
// If the donation insert fails after the upload succeeded, the uploaded
// document is left orphaned in the store. Accepted behavior: reconciliation
// is cheaper than a compensating delete that can itself fail.
func (s *CaptureService) SubmitProof(ctx context.Context, campaignID uuid.UUID, sub ProofSubmission) (*CaptureResult, error) {
	if !validAmount(sub.Amount) {
		return nil, &ValidationError{Field: "amount", Reason: "must be a finite amount greater than zero"}
	}
	if sub.File == nil {
		return nil, &ValidationError{Field: "proof", Reason: "a proof of payment file is required"}
	}

	guestName, guestEmail, err := sub.Donor.GuestIdentity()
	if err != nil {
		return nil, err
	}

	var campaign models.Campaign
	if err := s.db.Preload("Student").First(&campaign, "id = ?", campaignID).Error; err != nil {
		return nil, &PersistenceError{Op: "load campaign " + campaignID.String(), Err: err}
	}

	publicID := fmt.Sprintf("proof_of_payments/%s/%d", campaignID, time.Now().UnixNano())
	storedPath, err := s.store.Upload(ctx, publicID, sub.File)
	if err != nil {
		return nil, &StorageError{Op: "upload proof for campaign " + campaignID.String(), Err: err}
	}

	donation := models.Donation{
		CampaignID:        &campaign.ID,
		Amount:            sub.Amount,
		IsAnonymous:       sub.Donor.Anonymous,
		GuestName:         guestName,
		GuestEmail:        guestEmail,
		ProofOfPaymentURL: storedPath,
		Status:            "pending",
	}
	if err := s.db.Create(&donation).Error; err != nil {
		return nil, &PersistenceError{Op: "insert donation for campaign " + campaignID.String(), Err: err}
	}

	result := &CaptureResult{Donation: &donation}

	studentMsg := fmt.Sprintf("A donation of R%.2f for %q is awaiting proof verification.", sub.Amount, campaign.Title)
	if err := s.notifier.NotifyUser(campaign.StudentID, "New donation pending", studentMsg, models.NotificationTypeDonationReceived); err != nil {
		log.Printf("Failed to notify student %s about donation %s: %v", campaign.StudentID, donation.ID, err)
		result.Warnings = append(result.Warnings, "student notification failed")
	}

	adminMsg := fmt.Sprintf("A donation of R%.2f for campaign %q has a proof of payment to review.", sub.Amount, campaign.Title)
	if err := s.notifier.NotifyAdmins("Donation awaiting review", adminMsg, models.NotificationTypeDonationReceived); err != nil {
		log.Printf("Failed to notify admins about donation %s: %v", donation.ID, err)
		result.Warnings = append(result.Warnings, "admin notification failed")
	}

	return result, nil
}

// RecordTip persists a gateway-settled platform tip. Tips belong to the
// platform, not the campaign they were initiated from, so CampaignID stays
// nil and the donation is auto-verified: the gateway already attests
// settlement. The stored reference prefers the gateway's own, falling back
// to the locally generated one when the callback omits it.
//
// Recording the same gateway reference twice returns the already persisted
// donation instead of inserting a duplicate, so a replayed verification
// callback cannot double-count a tip.
func (s *CaptureService) RecordTip(amount float64, gatewayReference, localReference string) (*models.Donation, error) {
	if !validAmount(amount) {
		return nil, &ValidationError{Field: "amount", Reason: "must be a finite amount greater than zero"}
	}

	reference := gatewayReference
	if reference == "" {
		reference = localReference
	}
	storedReference := gatewayReferencePrefix + reference

	var existing models.Donation
	err := s.db.Where("proof_of_payment_url = ? AND campaign_id IS NULL", storedReference).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &PersistenceError{Op: "look up tip donation " + reference, Err: err}
	}

	donation := models.Donation{
		CampaignID:        nil,
		Amount:            amount,
		IsAnonymous:       true,
		GuestName:         "Anonymous",
		ProofOfPaymentURL: storedReference,
		Status:            "received",
	}
	if err := s.db.Create(&donation).Error; err != nil {
		return nil, &PersistenceError{Op: "insert tip donation " + reference, Err: err}
	}
	return &donation, nil
}

// ProofViewURL returns a short-lived signed link to an uploaded proof
// document. Gateway-settled tips carry a transaction reference instead of a
// document and have nothing to view.
func (s *CaptureService) ProofViewURL(donation *models.Donation, ttl time.Duration) (string, error) {
	if donation.Status == "received" {
		return "", &ValidationError{Field: "donation", Reason: "gateway-settled tips have no proof document"}
	}
	url, err := s.store.SignedURL(donation.ProofOfPaymentURL, ttl)
	if err != nil {
		return "", &StorageError{Op: "sign proof url for donation " + donation.ID.String(), Err: err}
	}
	return url, nil
}
