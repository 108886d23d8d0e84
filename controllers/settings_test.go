package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"afclean-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Client{},
		&models.Service{},
		&models.FinancialRecord{},
		&models.Setting{},
		&models.ReminderLog{},
	))
	return db
}

func settingsRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ctl := NewSettingsController(db)
	r.GET("/api/settings", ctl.GetSettings)
	r.POST("/api/settings", ctl.SaveSettings)
	return r
}

func TestSettings_KeyValueUpsertAndCoercion(t *testing.T) {
	db := openTestDB(t)
	r := settingsRouter(db)

	body := `{"key": "push_notifications_enabled", "value": true}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/settings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	// Upsert again with a new value for the same key.
	body = `{"key": "push_notifications_enabled", "value": false}`
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/settings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/settings", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var settings map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &settings))
	assert.Equal(t, false, settings["push_notifications_enabled"])
}

func TestSettings_FlatObjectForm(t *testing.T) {
	db := openTestDB(t)
	r := settingsRouter(db)

	body := `{"company_name": "AF Clean", "whatsapp_contact": "+5511999990000"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/settings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/settings", nil)
	r.ServeHTTP(w, req)

	var settings map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &settings))
	assert.Equal(t, "AF Clean", settings["company_name"])
	assert.Equal(t, "+5511999990000", settings["whatsapp_contact"])
}
