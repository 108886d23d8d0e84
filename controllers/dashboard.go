// controllers/dashboard.go
package controllers

import (
	"net/http"
	"time"

	"afclean-backend/models"
	"afclean-backend/services"
	"afclean-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DashboardController struct {
	DB        *gorm.DB
	Finance   *services.Finance
	Reminders *services.Reminders
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{
		DB:        db,
		Finance:   services.NewFinance(db),
		Reminders: services.NewReminders(db),
	}
}

// GetDashboardOverview composes the dashboard cards: today's appointments,
// the current month's income and net, completion count, tomorrow's
// confirmations, the next upcoming services and overdue return clients. The
// month figures come from the same aggregation functions the reports use.
func (ctl *DashboardController) GetDashboardOverview(c *gin.Context) {
	now := time.Now()
	startOfDay := utils.BeginningOfDay(now)
	endOfDay := startOfDay.AddDate(0, 0, 1)

	var todayServices int64
	ctl.DB.Model(&models.Service{}).
		Where("date >= ? AND date < ?", startOfDay, endOfDay).
		Count(&todayServices)

	var completedServices int64
	ctl.DB.Model(&models.Service{}).
		Where("status = ?", models.StatusCompleted).
		Count(&completedServices)

	records, err := ctl.Finance.List()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve financial records")
		return
	}
	monthRecords := services.FilterMonth(records, now)

	confirmations, err := ctl.Reminders.DueTomorrow(now)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to evaluate reminders")
		return
	}

	upcoming, err := ctl.Reminders.Upcoming(3)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve upcoming services")
		return
	}

	overdue, err := ctl.Reminders.OverdueClients(now)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to evaluate overdue clients")
		return
	}
	if len(overdue) > 3 {
		overdue = overdue[:3]
	}

	c.JSON(http.StatusOK, gin.H{
		"todayServices":     todayServices,
		"completedServices": completedServices,
		"monthIncome":       services.TotalByType(monthRecords, models.TypeIncome),
		"monthNet":          services.Net(monthRecords),
		"confirmations":     confirmations,
		"upcomingServices":  upcoming,
		"overdueClients":    overdue,
	})
}
