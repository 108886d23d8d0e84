// services/export.go
package services

import (
	"fmt"

	"afclean-backend/models"

	"github.com/xuri/excelize/v2"
)

// BuildFinancialWorkbook builds an XLSX export of the ledger, one row per
// record plus a totals row.
func BuildFinancialWorkbook(records []models.FinancialRecord) (*excelize.File, error) {
	f := excelize.NewFile()
	sheetName := "Financeiro"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Data", "Descrição", "Tipo", "Categoria", "Valor"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	for i, r := range records {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), r.Date.Format("02/01/2006"))
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), r.Description)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), typeLabel(r.Type))
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), r.Category)
		amount, _ := r.Amount.Float64()
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), amount)
	}

	totalsRow := len(records) + 3
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", totalsRow), "Lucro Líquido")
	net, _ := Net(records).Float64()
	f.SetCellValue(sheetName, fmt.Sprintf("E%d", totalsRow), net)

	return f, nil
}
