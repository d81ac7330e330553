package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/kamogelodev/student_fund/models"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.University{},
		&models.Student{},
		&models.Campaign{},
		&models.VerificationRequest{},
		&models.Donation{},
		&models.Notification{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func seedAdmin(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()
	admin := models.User{FullName: "Test Admin", Email: email, Password: "secret", Role: "admin"}
	if err := db.Create(&admin).Error; err != nil {
		t.Fatalf("failed to seed admin: %v", err)
	}
	return admin
}

func seedStudentWithCampaign(t *testing.T, db *gorm.DB, campaignStatus string) (models.Student, models.Campaign) {
	t.Helper()

	user := models.User{FullName: "Thabo Mokoena", Email: fmt.Sprintf("%s@students.example", uuid.NewString()[:8]), Password: "secret", Role: "student"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed student user: %v", err)
	}

	student := models.Student{UserID: user.ID, StudentNumber: "MKN0042", VerificationStatus: "pending"}
	if err := db.Create(&student).Error; err != nil {
		t.Fatalf("failed to seed student: %v", err)
	}

	campaign := models.Campaign{StudentID: student.UserID, Title: "Final year tuition", Goal: 45000, Status: campaignStatus}
	if err := db.Create(&campaign).Error; err != nil {
		t.Fatalf("failed to seed campaign: %v", err)
	}
	return student, campaign
}

type fakeProofStore struct {
	uploads    []string
	failUpload bool
}

func (f *fakeProofStore) Upload(ctx context.Context, publicID string, file io.Reader) (string, error) {
	if f.failUpload {
		return "", errors.New("bucket unavailable")
	}
	f.uploads = append(f.uploads, publicID)
	return publicID, nil
}

func (f *fakeProofStore) SignedURL(publicID string, ttl time.Duration) (string, error) {
	return "https://storage.example/signed/" + publicID, nil
}
