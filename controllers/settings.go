// controllers/settings.go
package controllers

import (
	"fmt"
	"net/http"

	"afclean-backend/models"
	"afclean-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingsController struct {
	DB *gorm.DB
}

func NewSettingsController(db *gorm.DB) *SettingsController {
	return &SettingsController{DB: db}
}

// GetSettings returns the whole settings mapping. Values stored as "true" or
// "false" come back as JSON booleans, mirroring how the UI saved them.
func (ctl *SettingsController) GetSettings(c *gin.Context) {
	var rows []models.Setting
	if err := ctl.DB.Find(&rows).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve settings")
		return
	}

	settings := make(map[string]interface{}, len(rows))
	for _, row := range rows {
		switch row.Value {
		case "true":
			settings[row.Key] = true
		case "false":
			settings[row.Key] = false
		default:
			settings[row.Key] = row.Value
		}
	}

	c.JSON(http.StatusOK, settings)
}

// SaveSettings upserts settings. Accepts the {key, value} wire form and also
// a flat object of key/value pairs, since the UI sends both shapes.
func (ctl *SettingsController) SaveSettings(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if len(body) == 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "No settings provided")
		return
	}

	pairs := body
	if key, ok := body["key"]; ok && len(body) <= 2 {
		pairs = map[string]interface{}{fmt.Sprint(key): body["value"]}
	}

	for key, value := range pairs {
		setting := models.Setting{Key: key, Value: fmt.Sprint(value)}
		err := ctl.DB.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).Create(&setting).Error
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save setting")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// loadSettings reads the settings mapping as raw strings.
func loadSettings(db *gorm.DB) map[string]string {
	var rows []models.Setting
	if err := db.Find(&rows).Error; err != nil {
		return map[string]string{}
	}
	settings := make(map[string]string, len(rows))
	for _, row := range rows {
		settings[row.Key] = row.Value
	}
	return settings
}
