// services/reminder.go
package services

import (
	"time"

	"afclean-backend/models"
	"afclean-backend/utils"

	"gorm.io/gorm"
)

// Reminders answers the read-side questions behind the dashboard and the
// notifier: which services need a confirmation, which clients are due for a
// return visit. Pure queries, no mutation.
type Reminders struct {
	db *gorm.DB
}

func NewReminders(db *gorm.DB) *Reminders {
	return &Reminders{db: db}
}

// DueTomorrow returns the scheduled services whose date falls on the calendar
// day after now. Comparison is by calendar date, not a 24-hour window.
func (r *Reminders) DueTomorrow(now time.Time) ([]models.Service, error) {
	start := utils.BeginningOfDay(now.AddDate(0, 0, 1))
	end := start.AddDate(0, 0, 1)

	var services []models.Service
	err := r.db.Preload("Client").
		Where("status = ? AND date >= ? AND date < ?", models.StatusScheduled, start, end).
		Order("date ASC").
		Find(&services).Error
	if err != nil {
		return nil, err
	}
	return services, nil
}

// OverdueClients returns the clients whose next_reminder_date is set and
// strictly before now.
func (r *Reminders) OverdueClients(now time.Time) ([]models.Client, error) {
	var clients []models.Client
	err := r.db.
		Where("next_reminder_date IS NOT NULL AND next_reminder_date < ?", now).
		Order("next_reminder_date ASC").
		Find(&clients).Error
	if err != nil {
		return nil, err
	}
	return clients, nil
}

// Upcoming returns the next non-completed services by ascending date.
func (r *Reminders) Upcoming(limit int) ([]models.Service, error) {
	var services []models.Service
	err := r.db.Preload("Client").
		Where("status <> ?", models.StatusCompleted).
		Order("date ASC").
		Limit(limit).
		Find(&services).Error
	if err != nil {
		return nil, err
	}
	return services, nil
}
