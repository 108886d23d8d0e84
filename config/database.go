package config

import (
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectDB opens the database from DB_URL and returns the handle. The handle
// is passed down to services and controllers, never held as package state, so
// tests can run against their own instances.
func ConnectDB() (*gorm.DB, error) {
	dsn := os.Getenv("DB_URL")

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return db, nil
}
