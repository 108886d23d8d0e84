// controllers/report.go
package controllers

import (
	"fmt"
	"net/http"
	"time"

	"afclean-backend/services"
	"afclean-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ReportController handles all reporting functions
type ReportController struct {
	Finance *services.Finance
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{Finance: services.NewFinance(db)}
}

// GetFinancialReport streams the full-ledger PDF
func (ctl *ReportController) GetFinancialReport(c *gin.Context) {
	records, err := ctl.Finance.List()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve financial records")
		return
	}

	pdf, err := services.BuildFinancialReport(records)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate report")
		return
	}

	c.Header("Content-Disposition", "attachment; filename=relatorio-financeiro-afclean.pdf")
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// GetMonthlySummary streams the per-month summary PDF
func (ctl *ReportController) GetMonthlySummary(c *gin.Context) {
	records, err := ctl.Finance.List()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve financial records")
		return
	}

	pdf, err := services.BuildMonthlySummary(records)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate summary")
		return
	}

	c.Header("Content-Disposition", "attachment; filename=resumo-financeiro-mensal-afclean.pdf")
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// ExportFinancials streams the ledger as an XLSX attachment
func (ctl *ReportController) ExportFinancials(c *gin.Context) {
	records, err := ctl.Finance.List()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve financial records")
		return
	}

	f, err := services.BuildFinancialWorkbook(records)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to build workbook")
		return
	}

	fileName := fmt.Sprintf("financeiro_afclean_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	if err := f.Write(c.Writer); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to write workbook")
	}
}
