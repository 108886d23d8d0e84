package routes

import (
	"afclean-backend/config"
	"afclean-backend/controllers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	clientController := controllers.NewClientController(db)
	serviceController := controllers.NewServiceController(db)
	financialController := controllers.NewFinancialController(db)
	settingsController := controllers.NewSettingsController(db)
	dashboardController := controllers.NewDashboardController(db)
	reportController := controllers.NewReportController(db)

	api := r.Group("/api")
	{
		// Client routes (clients are never deleted)
		clients := api.Group("/clients")
		{
			clients.GET("", clientController.GetClients)
			clients.POST("", clientController.CreateClient)
			clients.PUT("/:id", clientController.UpdateClient)
		}

		// Service routes
		services := api.Group("/services")
		{
			services.GET("", serviceController.GetServices)
			services.POST("", serviceController.CreateService)
			services.PUT("/:id", serviceController.UpdateService)
			services.DELETE("/:id", serviceController.DeleteService)
			services.GET("/:id/receipt", serviceController.GetReceipt)
		}

		// Financial routes
		financials := api.Group("/financials")
		{
			financials.GET("", financialController.GetFinancials)
			financials.POST("", financialController.CreateFinancial)
			financials.PUT("/:id", financialController.UpdateFinancial)
			financials.DELETE("/:id", financialController.DeleteFinancial)
		}

		// Settings routes
		settings := api.Group("/settings")
		{
			settings.GET("", settingsController.GetSettings)
			settings.POST("", settingsController.SaveSettings)
		}

		// Dashboard routes
		api.GET("/dashboard", dashboardController.GetDashboardOverview)

		// Report routes
		reports := api.Group("/reports")
		{
			reports.GET("/financial", reportController.GetFinancialReport)
			reports.GET("/monthly", reportController.GetMonthlySummary)
			reports.GET("/export", reportController.ExportFinancials)
		}
	}

	return r
}
