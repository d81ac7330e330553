package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Campaign struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	StudentID uuid.UUID `gorm:"type:uuid;not null" json:"student_id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Story     *string   `gorm:"type:text" json:"story"`
	Goal      float64   `gorm:"type:numeric(12,2);not null" json:"goal"`

	// Raised and Donors are aggregates maintained by the donation
	// verification surface, never written here.
	Raised float64 `gorm:"type:numeric(12,2);default:0.00" json:"raised"`
	Donors int     `gorm:"default:0" json:"donors"`

	Status   string     `gorm:"size:20;not null;default:'pending'" json:"status"`
	IsUrgent bool       `gorm:"default:false" json:"is_urgent"`
	EndDate  *time.Time `json:"end_date"`

	FeeStatementURL *string `gorm:"size:512" json:"fee_statement_url"`
	IDDocumentURL   *string `gorm:"size:512" json:"id_document_url"`
	EnrollmentURL   *string `gorm:"size:512" json:"enrollment_url"`
	InvoiceURL      *string `gorm:"size:512" json:"invoice_url"`

	Student Student `gorm:"foreignkey:StudentID;references:UserID" json:"student"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Campaign) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
