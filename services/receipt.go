// services/receipt.go
package services

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"

	"afclean-backend/models"

	"github.com/jung-kurt/gofpdf"
)

// BuildReceipt renders the service receipt PDF: company header, client data,
// value and payment terms, the captured signature and the first before/after
// photos.
func BuildReceipt(service *models.Service, companyName, logo string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	if logo != "" {
		embedDataURL(pdf, logo, "logo", 10, 10, 30, 30)
	}

	if companyName == "" {
		companyName = "AF CLEAN"
	}
	pdf.SetFont("Arial", "B", 20)
	pdf.Text(50, 25, tr(companyName+" - Recibo de Serviço"))

	pdf.SetFont("Arial", "", 12)
	pdf.Text(10, 50, tr("Data: "+service.Date.Format("02/01/2006")))
	pdf.Text(10, 60, tr("Cliente: "+service.Client.Name))
	pdf.Text(10, 70, tr("Endereço: "+service.Client.Address))
	pdf.Text(10, 80, tr("Telefone: "+service.Client.Phone))

	pdf.Line(10, 85, 200, 85)

	pdf.Text(10, 95, tr("Descrição do Serviço:"))
	pdf.Text(10, 105, tr("Limpeza e Higienização Profissional"))

	pdf.Text(10, 120, tr("Valor Total: R$ "+service.Value.StringFixed(2)))
	paymentMethod := service.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "N/A"
	}
	pdf.Text(10, 130, tr("Forma de Pagamento: "+paymentMethod))
	if service.Installments > 1 {
		pdf.Text(10, 140, tr(fmt.Sprintf("Parcelas: %dx", service.Installments)))
	}

	if service.Signature != "" {
		pdf.Text(10, 160, tr("Assinatura do Cliente:"))
		embedDataURL(pdf, service.Signature, "signature", 10, 165, 50, 20)
	}

	photoY := 190.0
	pdf.SetFont("Arial", "", 10)
	if len(service.PhotosBefore) > 0 {
		pdf.Text(10, photoY, tr("Registro Antes:"))
		embedDataURL(pdf, service.PhotosBefore[0], "before", 10, photoY+5, 40, 30)
		photoY += 40
	}
	if len(service.PhotosAfter) > 0 {
		pdf.Text(10, photoY, tr("Registro Depois:"))
		embedDataURL(pdf, service.PhotosAfter[0], "after", 10, photoY+5, 40, 30)
	}

	pdf.Text(10, 270, tr("Próxima limpeza recomendada em 6 meses."))

	return output(pdf)
}

// BuildFinancialReport renders the full ledger with income/expense/net
// totals. Totals come from the shared aggregation functions, so they always
// match the dashboard figures.
func BuildFinancialReport(records []models.FinancialRecord) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, tr("AF CLEAN - Relatório Financeiro"))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 10)
	widths := []float64{30, 80, 30, 40}
	headers := []string{"Data", "Descrição", "Tipo", "Valor"}
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, tr(h), "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, r := range records {
		pdf.CellFormat(widths[0], 7, r.Date.Format("02/01/2006"), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 7, tr(r.Description), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 7, tr(typeLabel(r.Type)), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[3], 7, "R$ "+r.Amount.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 7, tr("Total Entradas: R$ "+TotalByType(records, models.TypeIncome).StringFixed(2)))
	pdf.Ln(7)
	pdf.Cell(0, 7, tr("Total Saídas: R$ "+TotalByType(records, models.TypeExpense).StringFixed(2)))
	pdf.Ln(7)
	pdf.Cell(0, 7, tr("Lucro Líquido: R$ "+Net(records).StringFixed(2)))

	return output(pdf)
}

// BuildMonthlySummary renders one income/expense/net block per calendar
// month, oldest first.
func BuildMonthlySummary(records []models.FinancialRecord) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, tr("AF CLEAN - Resumo Financeiro Mensal"))
	pdf.Ln(14)

	for _, month := range MonthlyBreakdown(records) {
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(0, 8, month.Month)
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 11)
		pdf.Cell(0, 6, tr("Entradas: R$ "+month.Income.StringFixed(2)))
		pdf.Ln(6)
		pdf.Cell(0, 6, tr("Saídas: R$ "+month.Expense.StringFixed(2)))
		pdf.Ln(6)
		pdf.Cell(0, 6, tr("Lucro: R$ "+month.Net.StringFixed(2)))
		pdf.Ln(12)
	}

	return output(pdf)
}

func typeLabel(t models.FinancialType) string {
	if t == models.TypeIncome {
		return "Entrada"
	}
	return "Saída"
}

// embedDataURL decodes a base64 data URL and places the image on the page.
// Anything that fails to decode is skipped so a corrupt photo cannot break
// receipt generation.
func embedDataURL(pdf *gofpdf.Fpdf, dataURL, name string, x, y, w, h float64) {
	imageType, payload, ok := strings.Cut(dataURL, ";base64,")
	if !ok {
		return
	}
	imageType = strings.TrimPrefix(imageType, "data:image/")
	switch strings.ToLower(imageType) {
	case "png":
		imageType = "PNG"
	case "jpeg", "jpg":
		imageType = "JPG"
	default:
		return
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return
	}

	opts := gofpdf.ImageOptions{ImageType: imageType}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(raw))
	pdf.ImageOptions(name, x, y, w, h, false, opts, 0, "")
}

func output(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
