package services

import (
	"testing"
	"time"

	"afclean-backend/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReceipt(t *testing.T) {
	service := &models.Service{
		Date:          date(2024, time.January, 10),
		Value:         decimal.RequireFromString("150.00"),
		PaymentMethod: "pix",
		Installments:  3,
		Client: models.Client{
			Name:    "Maria Silva",
			Address: "Rua A, 123",
			Phone:   "+5511999990000",
		},
	}

	pdf, err := BuildReceipt(service, "AF CLEAN", "")
	require.NoError(t, err)
	assert.True(t, len(pdf) > 0)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestBuildFinancialReportAndSummary(t *testing.T) {
	records := []models.FinancialRecord{
		record(models.TypeIncome, "150.00", date(2024, time.January, 10)),
		record(models.TypeExpense, "30.00", date(2024, time.February, 2)),
	}

	report, err := BuildFinancialReport(records)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(report[:4]))

	summary, err := BuildMonthlySummary(records)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(summary[:4]))
}

func TestBuildFinancialWorkbook(t *testing.T) {
	records := []models.FinancialRecord{
		record(models.TypeIncome, "150.00", date(2024, time.January, 10)),
	}

	f, err := BuildFinancialWorkbook(records)
	require.NoError(t, err)

	value, err := f.GetCellValue("Financeiro", "A2")
	require.NoError(t, err)
	assert.Equal(t, "10/01/2024", value)
}
