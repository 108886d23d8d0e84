package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Client struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name    string    `gorm:"not null" json:"name"`
	Address string    `json:"address"`
	Phone   string    `json:"phone"`

	// Both dates are written only by the service-completion side effect.
	// NextReminderDate is always LastServiceDate + 6 calendar months.
	LastServiceDate  *time.Time `json:"last_service_date"`
	NextReminderDate *time.Time `json:"next_reminder_date"`

	gorm.Model `json:"-"`
}

func (c *Client) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}
