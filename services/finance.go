// services/finance.go
package services

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"afclean-backend/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Finance owns the ledger and the derived summaries built from it. All
// aggregation is recomputed from the current records on every read.
type Finance struct {
	db *gorm.DB
}

func NewFinance(db *gorm.DB) *Finance {
	return &Finance{db: db}
}

func (f *Finance) List() ([]models.FinancialRecord, error) {
	var records []models.FinancialRecord
	if err := f.db.Order("date DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (f *Finance) Create(record models.FinancialRecord) (*models.FinancialRecord, error) {
	if err := validateRecord(&record); err != nil {
		return nil, err
	}
	if err := f.db.Create(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (f *Finance) Update(id uuid.UUID, fields models.FinancialRecord) (*models.FinancialRecord, error) {
	if err := validateRecord(&fields); err != nil {
		return nil, err
	}

	var record models.FinancialRecord
	if err := f.db.First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("financial record %s: %w", id, ErrNotFound)
		}
		return nil, err
	}

	record.Type = fields.Type
	record.Description = fields.Description
	record.Amount = fields.Amount
	record.Date = fields.Date
	record.Category = fields.Category
	if err := f.db.Save(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (f *Finance) Delete(id uuid.UUID) error {
	result := f.db.Delete(&models.FinancialRecord{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("financial record %s: %w", id, ErrNotFound)
	}
	return nil
}

func validateRecord(record *models.FinancialRecord) error {
	if record.Type != models.TypeIncome && record.Type != models.TypeExpense {
		return fmt.Errorf("type must be income or expense: %w", ErrValidation)
	}
	if record.Date.IsZero() {
		return fmt.Errorf("date is required: %w", ErrValidation)
	}
	return nil
}

// MonthSummary is the derived income/expense/net triple for one calendar
// month, keyed "YYYY-MM" so December and January of different years never
// collide.
type MonthSummary struct {
	Month   string          `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}

const monthKeyLayout = "2006-01"

// TotalByType sums the amounts of every record with the given type.
func TotalByType(records []models.FinancialRecord, t models.FinancialType) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		if r.Type == t {
			total = total.Add(r.Amount)
		}
	}
	return total
}

// Net is income minus expense. Every surface that shows a net figure
// (dashboard, monthly summary, reports) goes through this one function.
func Net(records []models.FinancialRecord) decimal.Decimal {
	return TotalByType(records, models.TypeIncome).Sub(TotalByType(records, models.TypeExpense))
}

// FilterMonth keeps the records dated in the calendar month of now.
func FilterMonth(records []models.FinancialRecord, now time.Time) []models.FinancialRecord {
	var out []models.FinancialRecord
	for _, r := range records {
		if r.Date.Year() == now.Year() && r.Date.Month() == now.Month() {
			out = append(out, r)
		}
	}
	return out
}

// MonthlyBreakdown groups the records by calendar month and returns the
// summaries in chronological order.
func MonthlyBreakdown(records []models.FinancialRecord) []MonthSummary {
	byMonth := make(map[string][]models.FinancialRecord)
	for _, r := range records {
		key := r.Date.Format(monthKeyLayout)
		byMonth[key] = append(byMonth[key], r)
	}

	keys := make([]string, 0, len(byMonth))
	for key := range byMonth {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	summaries := make([]MonthSummary, 0, len(keys))
	for _, key := range keys {
		group := byMonth[key]
		summaries = append(summaries, MonthSummary{
			Month:   key,
			Income:  TotalByType(group, models.TypeIncome),
			Expense: TotalByType(group, models.TypeExpense),
			Net:     Net(group),
		})
	}
	return summaries
}
