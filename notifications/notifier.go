package notifications

import (
	"github.com/kamogelodev/student_fund/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notifier writes in-app notification rows. It is an eventually-consistent
// side channel: callers treat every error here as non-fatal and never roll
// back a primary state change over a failed insert.
type Notifier struct {
	db *gorm.DB
}

func NewNotifier(db *gorm.DB) *Notifier {
	return &Notifier{db: db}
}

// NotifyUser inserts a single notification for a known recipient.
func (n *Notifier) NotifyUser(userID uuid.UUID, title, message, notifType string) error {
	notification := models.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
		Type:    notifType,
	}
	return n.db.Create(&notification).Error
}

// NotifyAdmins broadcasts one identical notification to every admin profile.
// Zero matching admins performs no insert and is not an error.
func (n *Notifier) NotifyAdmins(title, message, notifType string) error {
	var admins []models.User
	if err := n.db.Where("role = ?", "admin").Find(&admins).Error; err != nil {
		return err
	}
	if len(admins) == 0 {
		return nil
	}

	notifications := make([]models.Notification, 0, len(admins))
	for _, admin := range admins {
		notifications = append(notifications, models.Notification{
			UserID:  admin.ID,
			Title:   title,
			Message: message,
			Type:    notifType,
		})
	}
	return n.db.Create(&notifications).Error
}
