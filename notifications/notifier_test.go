package notifications

import (
	"fmt"
	"testing"

	"github.com/kamogelodev/student_fund/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupNotifierTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Notification{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func TestNotifyUserCreatesSingleUnreadNotification(t *testing.T) {
	db := setupNotifierTestDB(t)

	user := models.User{FullName: "Recipient", Email: "recipient@example.com", Password: "secret"}
	assert.NoError(t, db.Create(&user).Error)

	notifier := NewNotifier(db)
	err := notifier.NotifyUser(user.ID, "Campaign approved", "Your campaign is live.", models.NotificationTypeVerificationUpdate)
	assert.NoError(t, err)

	var notificationList []models.Notification
	assert.NoError(t, db.Find(&notificationList).Error)
	if assert.Len(t, notificationList, 1) {
		assert.Equal(t, user.ID, notificationList[0].UserID)
		assert.Equal(t, "Campaign approved", notificationList[0].Title)
		assert.False(t, notificationList[0].Read)
	}
}

func TestNotifyAdminsBroadcastsToEveryAdmin(t *testing.T) {
	db := setupNotifierTestDB(t)

	adminOne := models.User{FullName: "Admin One", Email: "one@example.com", Password: "secret", Role: "admin"}
	adminTwo := models.User{FullName: "Admin Two", Email: "two@example.com", Password: "secret", Role: "admin"}
	donor := models.User{FullName: "Donor", Email: "donor@example.com", Password: "secret", Role: "donor"}
	assert.NoError(t, db.Create(&adminOne).Error)
	assert.NoError(t, db.Create(&adminTwo).Error)
	assert.NoError(t, db.Create(&donor).Error)

	notifier := NewNotifier(db)
	err := notifier.NotifyAdmins("Donation awaiting review", "A new proof of payment needs review.", models.NotificationTypeDonationReceived)
	assert.NoError(t, err)

	var notificationList []models.Notification
	assert.NoError(t, db.Find(&notificationList).Error)
	assert.Len(t, notificationList, 2)

	recipients := map[string]bool{}
	for _, n := range notificationList {
		recipients[n.UserID.String()] = true
		assert.Equal(t, "Donation awaiting review", n.Title)
	}
	assert.True(t, recipients[adminOne.ID.String()])
	assert.True(t, recipients[adminTwo.ID.String()])
	assert.False(t, recipients[donor.ID.String()])
}

func TestNotifyAdminsWithZeroAdminsInsertsNothing(t *testing.T) {
	db := setupNotifierTestDB(t)

	donor := models.User{FullName: "Donor", Email: "donor@example.com", Password: "secret", Role: "donor"}
	assert.NoError(t, db.Create(&donor).Error)

	notifier := NewNotifier(db)
	err := notifier.NotifyAdmins("Donation awaiting review", "A new proof of payment needs review.", models.NotificationTypeDonationReceived)
	assert.NoError(t, err)

	var count int64
	db.Model(&models.Notification{}).Count(&count)
	assert.Zero(t, count)
}
