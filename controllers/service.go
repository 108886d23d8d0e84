// controllers/service.go
package controllers

import (
	"errors"
	"fmt"
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

// CreateServiceInput defines the expected JSON structure for creating a service
type CreateServiceInput struct {
	ClientID uuid.UUID        `json:"client_id" binding:"required"`
	Date     time.Time        `json:"date" binding:"required"`
	Value    *decimal.Decimal `json:"value"`
}

// UpdateServiceInput defines the expected JSON structure for patching a
// service; absent fields are left unchanged.
type UpdateServiceInput struct {
	Status        *models.ServiceStatus `json:"status"`
	Date          *time.Time            `json:"date"`
	PhotosBefore  *models.ImageList     `json:"photos_before"`
	PhotosAfter   *models.ImageList     `json:"photos_after"`
	Value         *decimal.Decimal      `json:"value"`
	PaymentMethod *string               `json:"payment_method"`
	Installments  *int                  `json:"installments"`
	Signature     *string               `json:"signature"`
	Notes         *string               `json:"notes"`
}

type ServiceController struct {
	DB        *gorm.DB
	Lifecycle *services.Lifecycle
}

func NewServiceController(db *gorm.DB) *ServiceController {
	return &ServiceController{DB: db, Lifecycle: services.NewLifecycle(db)}
}

// GetServices retrieves all services with their clients
func (ctl *ServiceController) GetServices(c *gin.Context) {
	list, err := ctl.Lifecycle.List()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}

	c.JSON(http.StatusOK, list)
}

// CreateService schedules a new service for an existing client
func (ctl *ServiceController) CreateService(c *gin.Context) {
	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	value := decimal.Zero
	if input.Value != nil {
		value = *input.Value
	}

	service, err := ctl.Lifecycle.Create(input.ClientID, input.Date, value)
	if err != nil {
		respondServiceError(c, err, "Failed to create service")
		return
	}

	c.JSON(http.StatusCreated, service)
}

// UpdateService applies a partial update; completing a service triggers the
// client-reminder and ledger side effects.
func (ctl *ServiceController) UpdateService(c *gin.Context) {
	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	var input UpdateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	service, err := ctl.Lifecycle.Update(serviceUUID, services.ServicePatch{
		Status:        input.Status,
		Date:          input.Date,
		PhotosBefore:  input.PhotosBefore,
		PhotosAfter:   input.PhotosAfter,
		Value:         input.Value,
		PaymentMethod: input.PaymentMethod,
		Installments:  input.Installments,
		Signature:     input.Signature,
		Notes:         input.Notes,
	})
	if err != nil {
		respondServiceError(c, err, "Failed to update service")
		return
	}

	c.JSON(http.StatusOK, service)
}

// DeleteService removes a service; ledger entries posted for it remain
func (ctl *ServiceController) DeleteService(c *gin.Context) {
	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	if err := ctl.Lifecycle.Delete(serviceUUID); err != nil {
		respondServiceError(c, err, "Failed to delete service")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}

// GetReceipt streams the receipt PDF for a service
func (ctl *ServiceController) GetReceipt(c *gin.Context) {
	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	service, err := ctl.Lifecycle.Get(serviceUUID)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve service")
		return
	}

	settings := loadSettings(ctl.DB)
	pdf, err := services.BuildReceipt(service, settings["company_name"], settings["logo"])
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate receipt")
		return
	}

	fileName := fmt.Sprintf("recibo-afclean-%s.pdf", service.ID)
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// respondServiceError maps core errors to HTTP statuses.
func respondServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.RespondWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrValidation):
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrInvalidTransition):
		utils.RespondWithError(c, http.StatusConflict, err.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		utils.RespondWithError(c, http.StatusNotFound, err.Error())
	default:
		utils.RespondWithError(c, http.StatusInternalServerError, fallback)
	}
}
