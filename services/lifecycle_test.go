package services

import (
	"testing"
	"time"

	"afclean-backend/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statusPtr(s models.ServiceStatus) *models.ServiceStatus { return &s }

func TestCreateService_RequiresExistingClient(t *testing.T) {
	db := openTestDB(t)
	lifecycle := NewLifecycle(db)

	_, err := lifecycle.Create(uuid.New(), date(2024, time.January, 10), decimal.NewFromInt(100))
	require.ErrorIs(t, err, ErrValidation)
}

func TestCreateService_Defaults(t *testing.T) {
	db := openTestDB(t)
	lifecycle := NewLifecycle(db)
	client := createTestClient(t, db, "Maria")

	service, err := lifecycle.Create(client.ID, date(2024, time.January, 10), decimal.NewFromInt(100))
	require.NoError(t, err)

	assert.Equal(t, models.StatusScheduled, service.Status)
	assert.Equal(t, 1, service.Installments)
	assert.Empty(t, service.PhotosBefore)
	assert.Empty(t, service.PhotosAfter)
}

func TestCompleteService_PostsIncomeAndSchedulesReminder(t *testing.T) {
	db := openTestDB(t)
	lifecycle := NewLifecycle(db)
	client := createTestClient(t, db, "Maria")
	require.Nil(t, client.LastServiceDate)

	serviceDate := date(2024, time.January, 10)
	value := decimal.RequireFromString("150.00")
	service, err := lifecycle.Create(client.ID, serviceDate, value)
	require.NoError(t, err)

	// Intermediate transition has no side effects.
	_, err = lifecycle.Update(service.ID, ServicePatch{Status: statusPtr(models.StatusInProgress)})
	require.NoError(t, err)

	var recordCount int64
	db.Model(&models.FinancialRecord{}).Count(&recordCount)
	assert.Zero(t, recordCount)

	var midClient models.Client
	require.NoError(t, db.First(&midClient, "id = ?", client.ID).Error)
	assert.Nil(t, midClient.LastServiceDate)
	assert.Nil(t, midClient.NextReminderDate)

	_, err = lifecycle.Update(service.ID, ServicePatch{Status: statusPtr(models.StatusCompleted)})
	require.NoError(t, err)

	var records []models.FinancialRecord
	require.NoError(t, db.Find(&records).Error)
	require.Len(t, records, 1)
	assert.Equal(t, models.TypeIncome, records[0].Type)
	assert.True(t, records[0].Amount.Equal(value), "amount %s", records[0].Amount)
	assert.Equal(t, "2024-01-10", records[0].Date.Format("2006-01-02"))
	assert.Equal(t, "Limpeza", records[0].Category)
	assert.Contains(t, records[0].Description, service.ID.String())

	var updated models.Client
	require.NoError(t, db.First(&updated, "id = ?", client.ID).Error)
	require.NotNil(t, updated.LastServiceDate)
	require.NotNil(t, updated.NextReminderDate)
	assert.Equal(t, "2024-01-10", updated.LastServiceDate.Format("2006-01-02"))
	assert.Equal(t, "2024-07-10", updated.NextReminderDate.Format("2006-01-02"))
}

func TestCompleteService_Idempotent(t *testing.T) {
	db := openTestDB(t)
	lifecycle := NewLifecycle(db)
	client := createTestClient(t, db, "Maria")

	service, err := lifecycle.Create(client.ID, date(2024, time.March, 5), decimal.NewFromInt(200))
	require.NoError(t, err)

	_, err = lifecycle.Update(service.ID, ServicePatch{Status: statusPtr(models.StatusCompleted)})
	require.NoError(t, err)

	// Completing again merges fields but must not re-post income.
	notes := "faxina completa"
	_, err = lifecycle.Update(service.ID, ServicePatch{
		Status: statusPtr(models.StatusCompleted),
		Notes:  &notes,
	})
	require.NoError(t, err)

	var recordCount int64
	db.Model(&models.FinancialRecord{}).Count(&recordCount)
	assert.Equal(t, int64(1), recordCount)

	updated, err := lifecycle.Get(service.ID)
	require.NoError(t, err)
	assert.Equal(t, "faxina completa", updated.Notes)
}

func TestUpdateService_RejectsBackwardTransition(t *testing.T) {
	db := openTestDB(t)
	lifecycle := NewLifecycle(db)
	client := createTestClient(t, db, "Maria")

	service, err := lifecycle.Create(client.ID, date(2024, time.March, 5), decimal.Zero)
	require.NoError(t, err)

	_, err = lifecycle.Update(service.ID, ServicePatch{Status: statusPtr(models.StatusCompleted)})
	require.NoError(t, err)

	_, err = lifecycle.Update(service.ID, ServicePatch{Status: statusPtr(models.StatusScheduled)})
	require.ErrorIs(t, err, ErrInvalidTransition)

	_, err = lifecycle.Update(service.ID, ServicePatch{Status: statusPtr("paused")})
	require.ErrorIs(t, err, ErrValidation)
}

func TestUpdateService_MergesSparseFields(t *testing.T) {
	db := openTestDB(t)
	lifecycle := NewLifecycle(db)
	client := createTestClient(t, db, "Maria")

	service, err := lifecycle.Create(client.ID, date(2024, time.April, 1), decimal.NewFromInt(80))
	require.NoError(t, err)

	method := "pix"
	photos := models.ImageList{"data:image/png;base64,aGk="}
	_, err = lifecycle.Update(service.ID, ServicePatch{
		PaymentMethod: &method,
		PhotosBefore:  &photos,
	})
	require.NoError(t, err)

	updated, err := lifecycle.Get(service.ID)
	require.NoError(t, err)
	assert.Equal(t, "pix", updated.PaymentMethod)
	assert.Equal(t, photos, updated.PhotosBefore)
	// Untouched fields keep their values.
	assert.True(t, updated.Value.Equal(decimal.NewFromInt(80)))
	assert.Equal(t, models.StatusScheduled, updated.Status)
	assert.Equal(t, 1, updated.Installments)
}

func TestUpdateService_CompletionUsesPostMergeDate(t *testing.T) {
	db := openTestDB(t)
	lifecycle := NewLifecycle(db)
	client := createTestClient(t, db, "Maria")

	service, err := lifecycle.Create(client.ID, date(2024, time.May, 1), decimal.NewFromInt(90))
	require.NoError(t, err)

	// Redating and completing in the same call: the side effects must use
	// the new date.
	newDate := date(2024, time.May, 20)
	_, err = lifecycle.Update(service.ID, ServicePatch{
		Status: statusPtr(models.StatusCompleted),
		Date:   &newDate,
	})
	require.NoError(t, err)

	var updated models.Client
	require.NoError(t, db.First(&updated, "id = ?", client.ID).Error)
	require.NotNil(t, updated.NextReminderDate)
	assert.Equal(t, "2024-11-20", updated.NextReminderDate.Format("2006-01-02"))

	var record models.FinancialRecord
	require.NoError(t, db.First(&record).Error)
	assert.Equal(t, "2024-05-20", record.Date.Format("2006-01-02"))
}

func TestUpdateService_InstallmentsMustBePositive(t *testing.T) {
	db := openTestDB(t)
	lifecycle := NewLifecycle(db)
	client := createTestClient(t, db, "Maria")

	service, err := lifecycle.Create(client.ID, date(2024, time.May, 1), decimal.Zero)
	require.NoError(t, err)

	zero := 0
	_, err = lifecycle.Update(service.ID, ServicePatch{Installments: &zero})
	require.ErrorIs(t, err, ErrValidation)
}

func TestUpdateService_NotFound(t *testing.T) {
	db := openTestDB(t)
	lifecycle := NewLifecycle(db)

	_, err := lifecycle.Update(uuid.New(), ServicePatch{})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteService_KeepsLedger(t *testing.T) {
	db := openTestDB(t)
	lifecycle := NewLifecycle(db)
	client := createTestClient(t, db, "Maria")

	service, err := lifecycle.Create(client.ID, date(2024, time.June, 1), decimal.NewFromInt(120))
	require.NoError(t, err)

	_, err = lifecycle.Update(service.ID, ServicePatch{Status: statusPtr(models.StatusCompleted)})
	require.NoError(t, err)

	require.NoError(t, lifecycle.Delete(service.ID))

	_, err = lifecycle.Get(service.ID)
	require.ErrorIs(t, err, ErrNotFound)

	var recordCount int64
	db.Model(&models.FinancialRecord{}).Count(&recordCount)
	assert.Equal(t, int64(1), recordCount)

	require.ErrorIs(t, lifecycle.Delete(service.ID), ErrNotFound)
}
