package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// University is read-only reference data supplying the bank account donors
// transfer into. Nothing in the donation or review flows mutates it.
type University struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name          string    `gorm:"size:255;not null;unique" json:"name"`
	BankName      string    `gorm:"size:100;not null" json:"bank_name"`
	AccountName   string    `gorm:"size:255;not null" json:"account_name"`
	AccountNumber string    `gorm:"size:50;not null" json:"account_number"`
	BranchCode    string    `gorm:"size:20" json:"branch_code"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (u *University) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
