package services

import (
	"testing"
	"time"

	"github.com/kamogelodev/student_fund/models"
	"github.com/kamogelodev/student_fund/notifications"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func seedVerificationRequest(t *testing.T, db *gorm.DB, studentID uuid.UUID, status string) models.VerificationRequest {
	t.Helper()
	request := models.VerificationRequest{StudentID: studentID, Status: status}
	if status != "pending" {
		reviewed := time.Now().Add(-24 * time.Hour)
		request.ReviewedAt = &reviewed
	}
	if err := db.Create(&request).Error; err != nil {
		t.Fatalf("failed to seed verification request: %v", err)
	}
	return request
}

func TestApproveCascades(t *testing.T) {
	db := setupTestDB(t)
	student, campaign := seedStudentWithCampaign(t, db, "pending")

	pending := seedVerificationRequest(t, db, student.UserID, "pending")
	historic := seedVerificationRequest(t, db, student.UserID, "approved")

	service := NewReviewService(db, notifications.NewNotifier(db))

	result, err := service.Approve(campaign.ID)
	assert.NoError(t, err)
	assert.Empty(t, result.Warnings)
	assert.Equal(t, "active", result.Campaign.Status)

	var updatedCampaign models.Campaign
	assert.NoError(t, db.First(&updatedCampaign, "id = ?", campaign.ID).Error)
	assert.Equal(t, "active", updatedCampaign.Status)

	var updatedStudent models.Student
	assert.NoError(t, db.First(&updatedStudent, "user_id = ?", student.UserID).Error)
	assert.Equal(t, "approved", updatedStudent.VerificationStatus)

	var updatedRequest models.VerificationRequest
	assert.NoError(t, db.First(&updatedRequest, "id = ?", pending.ID).Error)
	assert.Equal(t, "approved", updatedRequest.Status)
	assert.NotNil(t, updatedRequest.ReviewedAt)

	// Already-reviewed requests are immutable history.
	var untouched models.VerificationRequest
	assert.NoError(t, db.First(&untouched, "id = ?", historic.ID).Error)
	assert.Equal(t, "approved", untouched.Status)
	assert.Equal(t, historic.ReviewedAt.Unix(), untouched.ReviewedAt.Unix())

	var notificationList []models.Notification
	assert.NoError(t, db.Where("user_id = ?", student.UserID).Find(&notificationList).Error)
	if assert.Len(t, notificationList, 1) {
		assert.Equal(t, models.NotificationTypeVerificationUpdate, notificationList[0].Type)
		assert.Equal(t, "Campaign approved", notificationList[0].Title)
	}
}

func TestRejectCascadesWithReason(t *testing.T) {
	db := setupTestDB(t)
	student, campaign := seedStudentWithCampaign(t, db, "pending")

	pending := seedVerificationRequest(t, db, student.UserID, "pending")
	historic := seedVerificationRequest(t, db, student.UserID, "rejected")

	service := NewReviewService(db, notifications.NewNotifier(db))

	reason := "Fee statement is unreadable"
	result, err := service.Reject(campaign.ID, reason)
	assert.NoError(t, err)
	assert.Equal(t, "rejected", result.Campaign.Status)

	var updatedStudent models.Student
	assert.NoError(t, db.First(&updatedStudent, "user_id = ?", student.UserID).Error)
	assert.Equal(t, "rejected", updatedStudent.VerificationStatus)

	var updatedRequest models.VerificationRequest
	assert.NoError(t, db.First(&updatedRequest, "id = ?", pending.ID).Error)
	assert.Equal(t, "rejected", updatedRequest.Status)
	assert.NotNil(t, updatedRequest.ReviewedAt)
	if assert.NotNil(t, updatedRequest.RejectionReason) {
		assert.Contains(t, *updatedRequest.RejectionReason, reason)
	}

	var untouched models.VerificationRequest
	assert.NoError(t, db.First(&untouched, "id = ?", historic.ID).Error)
	assert.Nil(t, untouched.RejectionReason)

	var notificationList []models.Notification
	assert.NoError(t, db.Where("user_id = ?", student.UserID).Find(&notificationList).Error)
	if assert.Len(t, notificationList, 1) {
		assert.Contains(t, notificationList[0].Message, reason, "the notification echoes the reason verbatim")
	}
}

func TestRejectEmptyReasonPerformsZeroWrites(t *testing.T) {
	db := setupTestDB(t)
	student, campaign := seedStudentWithCampaign(t, db, "pending")
	seedVerificationRequest(t, db, student.UserID, "pending")

	service := NewReviewService(db, notifications.NewNotifier(db))

	for _, reason := range []string{"", "   "} {
		_, err := service.Reject(campaign.ID, reason)
		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
	}

	var untouchedCampaign models.Campaign
	assert.NoError(t, db.First(&untouchedCampaign, "id = ?", campaign.ID).Error)
	assert.Equal(t, "pending", untouchedCampaign.Status)

	var untouchedStudent models.Student
	assert.NoError(t, db.First(&untouchedStudent, "user_id = ?", student.UserID).Error)
	assert.Equal(t, "pending", untouchedStudent.VerificationStatus)

	var pendingRequests int64
	db.Model(&models.VerificationRequest{}).Where("status = ?", "pending").Count(&pendingRequests)
	assert.Equal(t, int64(1), pendingRequests)

	var notificationCount int64
	db.Model(&models.Notification{}).Count(&notificationCount)
	assert.Zero(t, notificationCount)
}

func TestReviewMissingCampaign(t *testing.T) {
	db := setupTestDB(t)

	service := NewReviewService(db, notifications.NewNotifier(db))

	_, err := service.Approve(uuid.New())
	var persistenceErr *PersistenceError
	assert.ErrorAs(t, err, &persistenceErr)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestReviewCampaignWithoutStudent(t *testing.T) {
	db := setupTestDB(t)

	campaign := models.Campaign{StudentID: uuid.New(), Title: "Orphaned", Goal: 1000, Status: "pending"}
	assert.NoError(t, db.Create(&campaign).Error)

	service := NewReviewService(db, notifications.NewNotifier(db))

	_, err := service.Approve(campaign.ID)
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}
