package main

import (
	"fmt"
	"os"

	"afclean-backend/config"
	"afclean-backend/models"
	"afclean-backend/routes"
	"afclean-backend/services"
	"afclean-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found")
	}

	utils.InitializeLogger()
	log := utils.GetLogger()
	defer log.Sync()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatal("failed to connect database", zap.Error(err))
	}

	if err := db.AutoMigrate(
		&models.Client{},
		&models.Service{},
		&models.FinancialRecord{},
		&models.Setting{},
		&models.ReminderLog{},
	); err != nil {
		log.Fatal("failed to migrate database", zap.Error(err))
	}

	services.NewNotifier(db).StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter(db)
	printRoutes(r)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
