// services/lifecycle.go
package services

import (
	"errors"
	"fmt"
	"time"

	"afclean-backend/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// statusRank orders the service lifecycle. Patches may skip forward
// (scheduled straight to completed) but never move backward.
var statusRank = map[models.ServiceStatus]int{
	models.StatusScheduled:  0,
	models.StatusInProgress: 1,
	models.StatusCompleted:  2,
}

// ServicePatch carries a sparse update: nil fields are left unchanged.
type ServicePatch struct {
	Status        *models.ServiceStatus
	Date          *time.Time
	PhotosBefore  *models.ImageList
	PhotosAfter   *models.ImageList
	Value         *decimal.Decimal
	PaymentMethod *string
	Installments  *int
	Signature     *string
	Notes         *string
}

// Lifecycle owns service CRUD and the side effects of status transitions.
type Lifecycle struct {
	db *gorm.DB
}

func NewLifecycle(db *gorm.DB) *Lifecycle {
	return &Lifecycle{db: db}
}

// List returns every service with its client preloaded, newest first.
func (s *Lifecycle) List() ([]models.Service, error) {
	var services []models.Service
	if err := s.db.Preload("Client").Order("date DESC").Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// Get returns a single service with its client preloaded.
func (s *Lifecycle) Get(id uuid.UUID) (*models.Service, error) {
	var service models.Service
	if err := s.db.Preload("Client").First(&service, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("service %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &service, nil
}

// Create inserts a new service in scheduled status for an existing client.
func (s *Lifecycle) Create(clientID uuid.UUID, date time.Time, value decimal.Decimal) (*models.Service, error) {
	var client models.Client
	if err := s.db.First(&client, "id = ?", clientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("client %s does not exist: %w", clientID, ErrValidation)
		}
		return nil, err
	}

	service := models.Service{
		ClientID:     clientID,
		Date:         date,
		Status:       models.StatusScheduled,
		PhotosBefore: models.ImageList{},
		PhotosAfter:  models.ImageList{},
		Value:        value,
		Installments: 1,
	}
	if err := s.db.Create(&service).Error; err != nil {
		return nil, err
	}
	service.Client = client
	return &service, nil
}

// Update merges the patch into the service. Setting status to completed on a
// not-yet-completed service additionally, in the same transaction, stamps the
// owning client's last_service_date / next_reminder_date and posts one income
// record to the ledger. The side effects read the post-merge date and value:
// redating and completing in one call uses the new date. Re-completing an
// already completed service merges fields but performs no side effects.
func (s *Lifecycle) Update(id uuid.UUID, patch ServicePatch) (*models.Service, error) {
	if patch.Installments != nil && *patch.Installments < 1 {
		return nil, fmt.Errorf("installments must be at least 1: %w", ErrValidation)
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var service models.Service
	if err := tx.First(&service, "id = ?", id).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("service %s: %w", id, ErrNotFound)
		}
		return nil, err
	}

	prevStatus := service.Status
	if patch.Status != nil {
		newRank, ok := statusRank[*patch.Status]
		if !ok {
			tx.Rollback()
			return nil, fmt.Errorf("unknown status %q: %w", *patch.Status, ErrValidation)
		}
		if newRank < statusRank[prevStatus] {
			tx.Rollback()
			return nil, fmt.Errorf("cannot move from %s to %s: %w", prevStatus, *patch.Status, ErrInvalidTransition)
		}
		service.Status = *patch.Status
	}
	if patch.Date != nil {
		service.Date = *patch.Date
	}
	if patch.PhotosBefore != nil {
		service.PhotosBefore = *patch.PhotosBefore
	}
	if patch.PhotosAfter != nil {
		service.PhotosAfter = *patch.PhotosAfter
	}
	if patch.Value != nil {
		service.Value = *patch.Value
	}
	if patch.PaymentMethod != nil {
		service.PaymentMethod = *patch.PaymentMethod
	}
	if patch.Installments != nil {
		service.Installments = *patch.Installments
	}
	if patch.Signature != nil {
		service.Signature = *patch.Signature
	}
	if patch.Notes != nil {
		service.Notes = *patch.Notes
	}

	if err := tx.Save(&service).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	justCompleted := patch.Status != nil &&
		*patch.Status == models.StatusCompleted &&
		prevStatus != models.StatusCompleted
	if justCompleted {
		if err := s.applyCompletion(tx, &service); err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return &service, nil
}

// applyCompletion runs the two completion side effects inside the caller's
// transaction: the client reminder update and the income posting.
func (s *Lifecycle) applyCompletion(tx *gorm.DB, service *models.Service) error {
	// AddDate normalizes day overflow into the following month, so a
	// completion on Aug 31 schedules the reminder for Mar 2 or 3.
	nextReminder := service.Date.AddDate(0, 6, 0)

	result := tx.Model(&models.Client{}).Where("id = ?", service.ClientID).
		Updates(map[string]interface{}{
			"last_service_date":  service.Date,
			"next_reminder_date": nextReminder,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("client %s: %w", service.ClientID, ErrNotFound)
	}

	record := models.FinancialRecord{
		Type:        models.TypeIncome,
		Description: fmt.Sprintf("Serviço #%s", service.ID),
		Amount:      service.Value,
		Date:        service.Date,
		Category:    "Limpeza",
	}
	return tx.Create(&record).Error
}

// Delete removes a service. Financial records already posted for it stay.
func (s *Lifecycle) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.Service{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("service %s: %w", id, ErrNotFound)
	}
	return nil
}
