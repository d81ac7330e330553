package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notification types used by the fan-out.
const (
	NotificationTypeDonationReceived   = "donation_received"
	NotificationTypeVerificationUpdate = "verification_update"
	NotificationTypeSuccess            = "success"
	NotificationTypeError              = "error"
)

type Notification struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Title   string    `gorm:"size:255;not null" json:"title"`
	Message string    `gorm:"type:text;not null" json:"message"`
	Type    string    `gorm:"size:50;not null" json:"type"`
	Read    bool      `gorm:"default:false" json:"read"`

	CreatedAt time.Time `json:"created_at"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}
