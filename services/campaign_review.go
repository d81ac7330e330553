package services

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/kamogelodev/student_fund/models"
	"github.com/kamogelodev/student_fund/notifications"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReviewService applies an admin decision to a campaign and cascades it to
// the owning student and their pending verification requests.
type ReviewService struct {
	db       *gorm.DB
	notifier *notifications.Notifier
}

func NewReviewService(db *gorm.DB, notifier *notifications.Notifier) *ReviewService {
	return &ReviewService{db: db, notifier: notifier}
}

// ReviewResult carries the primary outcome plus the non-fatal warnings from
// best-effort cascade steps. A warning means a secondary write failed and
// was logged; the campaign status change itself already stuck.
type ReviewResult struct {
	Campaign *models.Campaign `json:"campaign"`
	Warnings []string         `json:"warnings,omitempty"`
}

// Approve sets the campaign live, marks the student verified, closes their
// pending verification requests and notifies them. Only the campaign status
// write is a hard failure; every later step logs and continues, so a
// partially applied cascade leaves the campaign live rather than rolled
// back. Callers should reload campaign state in full afterwards.
func (s *ReviewService) Approve(campaignID uuid.UUID) (*ReviewResult, error) {
	campaign, err := s.loadCampaign(campaignID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.Campaign{}).Where("id = ?", campaign.ID).
		Update("status", "active").Error; err != nil {
		return nil, &PersistenceError{Op: "approve campaign " + campaign.ID.String(), Err: err}
	}
	campaign.Status = "active"

	result := &ReviewResult{Campaign: campaign}

	if err := s.db.Model(&models.Student{}).Where("user_id = ?", campaign.StudentID).
		Update("verification_status", "approved").Error; err != nil {
		log.Printf("Failed to mark student %s approved after campaign %s: %v", campaign.StudentID, campaign.ID, err)
		result.Warnings = append(result.Warnings, "student verification status not updated")
	}

	now := time.Now()
	if err := s.db.Model(&models.VerificationRequest{}).
		Where("student_id = ? AND status = ?", campaign.StudentID, "pending").
		Updates(map[string]interface{}{"status": "approved", "reviewed_at": now}).Error; err != nil {
		log.Printf("Failed to close pending verification requests for student %s: %v", campaign.StudentID, err)
		result.Warnings = append(result.Warnings, "pending verification requests not closed")
	}

	message := fmt.Sprintf("Your campaign %q is now live and your student account has been verified.", campaign.Title)
	if err := s.notifier.NotifyUser(campaign.StudentID, "Campaign approved", message, models.NotificationTypeVerificationUpdate); err != nil {
		log.Printf("Failed to notify student %s of campaign approval: %v", campaign.StudentID, err)
		result.Warnings = append(result.Warnings, "student notification failed")
	}

	return result, nil
}

// Reject mirrors Approve with a mandatory free-text reason. An empty reason
// aborts before any write. Pending verification requests get a templated
// rejection reason embedding the admin's text; the student notification
// echoes it verbatim.
func (s *ReviewService) Reject(campaignID uuid.UUID, reason string) (*ReviewResult, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, &ValidationError{Field: "reason", Reason: "a rejection reason is required"}
	}

	campaign, err := s.loadCampaign(campaignID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.Campaign{}).Where("id = ?", campaign.ID).
		Update("status", "rejected").Error; err != nil {
		return nil, &PersistenceError{Op: "reject campaign " + campaign.ID.String(), Err: err}
	}
	campaign.Status = "rejected"

	result := &ReviewResult{Campaign: campaign}

	if err := s.db.Model(&models.Student{}).Where("user_id = ?", campaign.StudentID).
		Update("verification_status", "rejected").Error; err != nil {
		log.Printf("Failed to mark student %s rejected after campaign %s: %v", campaign.StudentID, campaign.ID, err)
		result.Warnings = append(result.Warnings, "student verification status not updated")
	}

	now := time.Now()
	rejectionReason := fmt.Sprintf("Your verification was declined: %s", reason)
	if err := s.db.Model(&models.VerificationRequest{}).
		Where("student_id = ? AND status = ?", campaign.StudentID, "pending").
		Updates(map[string]interface{}{
			"status":           "rejected",
			"rejection_reason": rejectionReason,
			"reviewed_at":      now,
		}).Error; err != nil {
		log.Printf("Failed to close pending verification requests for student %s: %v", campaign.StudentID, err)
		result.Warnings = append(result.Warnings, "pending verification requests not closed")
	}

	message := fmt.Sprintf("Your campaign %q was rejected. Reason: %s", campaign.Title, reason)
	if err := s.notifier.NotifyUser(campaign.StudentID, "Campaign rejected", message, models.NotificationTypeVerificationUpdate); err != nil {
		log.Printf("Failed to notify student %s of campaign rejection: %v", campaign.StudentID, err)
		result.Warnings = append(result.Warnings, "student notification failed")
	}

	return result, nil
}

func (s *ReviewService) loadCampaign(campaignID uuid.UUID) (*models.Campaign, error) {
	var campaign models.Campaign
	if err := s.db.Preload("Student.User").First(&campaign, "id = ?", campaignID).Error; err != nil {
		return nil, &PersistenceError{Op: "load campaign " + campaignID.String(), Err: err}
	}
	if campaign.Student.UserID == uuid.Nil {
		return nil, &ValidationError{Field: "campaign", Reason: "campaign has no associated student"}
	}
	return &campaign, nil
}
