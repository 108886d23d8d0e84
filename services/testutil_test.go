package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"afclean-backend/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB gives each test its own in-memory database. The shared-cache
// name keeps all pooled connections pointed at the same instance.
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

func createTestClient(t *testing.T, db *gorm.DB, name string) *models.Client {
	t.Helper()

	client := models.Client{Name: name, Address: "Rua A, 123", Phone: "+5511999990000"}
	require.NoError(t, db.Create(&client).Error)
	return &client
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 10, 0, 0, 0, time.UTC)
}
