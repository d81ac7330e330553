package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VerificationRequest tracks the admin review of a student's identity and
// enrollment documents. Rows that have left "pending" are immutable history.
type VerificationRequest struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	StudentID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"student_id"`
	Status          string     `gorm:"size:20;not null;default:'pending'" json:"status"`
	RejectionReason *string    `gorm:"type:text" json:"rejection_reason"`
	ReviewedAt      *time.Time `json:"reviewed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (v *VerificationRequest) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}
