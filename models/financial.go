package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type FinancialType string

const (
	TypeIncome  FinancialType = "income"
	TypeExpense FinancialType = "expense"
)

// FinancialRecord is a single ledger entry. Records are created by explicit
// user entry or posted automatically when a service is completed; there is no
// structural link back to the originating service.
type FinancialRecord struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Type        FinancialType   `gorm:"type:varchar(10);not null" json:"type"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Date        time.Time       `gorm:"not null" json:"date"`
	Category    string          `json:"category"`

	CreatedAt time.Time `json:"-"`
}

func (f *FinancialRecord) BeforeCreate(tx *gorm.DB) (err error) {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return
}
