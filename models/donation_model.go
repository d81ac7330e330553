package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Donation is written once per donor action and never updated by the capture
// flow. A nil CampaignID marks a platform tip settled through the payment
// gateway rather than a contribution to a campaign.
//
// ProofOfPaymentURL holds either the storage path of an uploaded proof
// document (status "pending") or a gateway transaction reference (status
// "received", auto-verified by settlement).
type Donation struct {
	ID                uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	CampaignID        *uuid.UUID `gorm:"type:uuid;index" json:"campaign_id"`
	Amount            float64    `gorm:"type:numeric(12,2);not null" json:"amount"`
	IsAnonymous       bool       `gorm:"default:false" json:"is_anonymous"`
	GuestName         string     `gorm:"size:255" json:"guest_name"`
	GuestEmail        *string    `gorm:"size:255" json:"guest_email"`
	ProofOfPaymentURL string     `gorm:"size:512" json:"proof_of_payment_url"`
	Status            string     `gorm:"size:20;not null;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (d *Donation) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
