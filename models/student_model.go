package models

import (
	"time"

	"github.com/google/uuid"
)

type Student struct {
	UserID       uuid.UUID  `gorm:"primary_key" json:"user_id"`
	UniversityID *uuid.UUID `gorm:"type:uuid" json:"university_id"`

	// StudentNumber is the payment reference the university back-office uses
	// to reconcile transfers. It is opaque: stored and rendered verbatim,
	// never reformatted.
	StudentNumber      string `gorm:"size:50" json:"student_number"`
	VerificationStatus string `gorm:"size:20;not null;default:'pending'" json:"verification_status"`

	User       User       `gorm:"foreignkey:UserID" json:"user"`
	University University `gorm:"foreignkey:UniversityID" json:"university"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
