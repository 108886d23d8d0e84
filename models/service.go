package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ServiceStatus string

const (
	StatusScheduled  ServiceStatus = "scheduled"
	StatusInProgress ServiceStatus = "in_progress"
	StatusCompleted  ServiceStatus = "completed"
)

type Service struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ClientID uuid.UUID `gorm:"type:uuid;index;not null" json:"client_id"`
	Client   Client    `gorm:"foreignKey:ClientID" json:"client"`

	Date   time.Time     `gorm:"not null" json:"date"`
	Status ServiceStatus `gorm:"type:varchar(20);default:'scheduled'" json:"status"`

	PhotosBefore ImageList `gorm:"type:text" json:"photos_before"`
	PhotosAfter  ImageList `gorm:"type:text" json:"photos_after"`

	Value         decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"value"`
	PaymentMethod string          `json:"payment_method"`
	Installments  int             `gorm:"default:1" json:"installments"`
	Signature     string          `gorm:"type:text" json:"signature"`
	Notes         string          `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"-"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}

// ImageList stores an ordered list of image data URLs as a JSON text column.
type ImageList []string

func (l ImageList) Value() (driver.Value, error) {
	if l == nil {
		l = ImageList{}
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *ImageList) Scan(value interface{}) error {
	if value == nil {
		*l = ImageList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return errors.New("type assertion to []byte or string failed")
	}
}
