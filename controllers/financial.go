// controllers/financial.go
package controllers

import (
	"net/http"
	"time"

	"afclean-backend/models"
	"afclean-backend/services"
	"afclean-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FinancialRecordInput defines the expected JSON structure for creating or
// updating a ledger entry
type FinancialRecordInput struct {
	Type        models.FinancialType `json:"type" binding:"required,oneof=income expense"`
	Description string               `json:"description"`
	Amount      decimal.Decimal      `json:"amount" binding:"required"`
	Date        time.Time            `json:"date" binding:"required"`
	Category    string               `json:"category"`
}

type FinancialController struct {
	Finance *services.Finance
}

func NewFinancialController(db *gorm.DB) *FinancialController {
	return &FinancialController{Finance: services.NewFinance(db)}
}

// GetFinancials retrieves the ledger, newest first
func (ctl *FinancialController) GetFinancials(c *gin.Context) {
	records, err := ctl.Finance.List()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve financial records")
		return
	}

	c.JSON(http.StatusOK, records)
}

// CreateFinancial adds a manual ledger entry
func (ctl *FinancialController) CreateFinancial(c *gin.Context) {
	var input FinancialRecordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	record, err := ctl.Finance.Create(models.FinancialRecord{
		Type:        input.Type,
		Description: input.Description,
		Amount:      input.Amount,
		Date:        input.Date,
		Category:    input.Category,
	})
	if err != nil {
		respondServiceError(c, err, "Failed to create financial record")
		return
	}

	c.JSON(http.StatusCreated, record)
}

// UpdateFinancial overwrites a ledger entry
func (ctl *FinancialController) UpdateFinancial(c *gin.Context) {
	recordUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid record ID format")
		return
	}

	var input FinancialRecordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	record, err := ctl.Finance.Update(recordUUID, models.FinancialRecord{
		Type:        input.Type,
		Description: input.Description,
		Amount:      input.Amount,
		Date:        input.Date,
		Category:    input.Category,
	})
	if err != nil {
		respondServiceError(c, err, "Failed to update financial record")
		return
	}

	c.JSON(http.StatusOK, record)
}

// DeleteFinancial removes a ledger entry
func (ctl *FinancialController) DeleteFinancial(c *gin.Context) {
	recordUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid record ID format")
		return
	}

	if err := ctl.Finance.Delete(recordUUID); err != nil {
		respondServiceError(c, err, "Failed to delete financial record")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Financial record deleted successfully"})
}
