// services/notifier.go
package services

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"afclean-backend/models"
	"afclean-backend/utils"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var nonDigits = regexp.MustCompile(`\D`)

// Notifier delivers next-day service confirmations over WhatsApp. It re-runs
// hourly; the ReminderLog table keeps each service from being notified twice.
type Notifier struct {
	db        *gorm.DB
	reminders *Reminders
	client    *twilio.RestClient
}

func NewNotifier(db *gorm.DB) *Notifier {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &Notifier{
		db:        db,
		reminders: NewReminders(db),
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

func (n *Notifier) StartScheduler() {
	c := cron.New()

	// Hourly, matching the original product's reminder polling cadence.
	c.AddFunc("0 * * * *", func() {
		n.ProcessReminders(time.Now())
	})

	c.Start()
	n.ProcessReminders(time.Now())
	utils.GetLogger().Info("reminder scheduler started")
}

// ProcessReminders sends one confirmation per service due tomorrow that has
// no prior log entry. A delivery failure is logged and skipped, never retried
// inside the same evaluation.
func (n *Notifier) ProcessReminders(now time.Time) {
	log := utils.GetLogger()

	if !n.notificationsEnabled() {
		return
	}

	services, err := n.reminders.DueTomorrow(now)
	if err != nil {
		log.Error("failed to evaluate due services", zap.Error(err))
		return
	}

	for _, service := range services {
		var count int64
		if err := n.db.Model(&models.ReminderLog{}).
			Where("service_id = ?", service.ID).
			Count(&count).Error; err != nil {
			log.Error("failed to check reminder log", zap.String("service", service.ID.String()), zap.Error(err))
			continue
		}
		if count > 0 {
			continue
		}
		n.sendConfirmation(service)
	}
}

func (n *Notifier) notificationsEnabled() bool {
	var setting models.Setting
	if err := n.db.First(&setting, "key = ?", "push_notifications_enabled").Error; err != nil {
		return false
	}
	return setting.Value == "true"
}

func (n *Notifier) sendConfirmation(service models.Service) {
	log := utils.GetLogger()

	message := fmt.Sprintf(
		"Olá %s! Gostaria de confirmar nosso serviço de limpeza agendado para amanhã, dia %s, às %s. Podemos confirmar?",
		service.Client.Name,
		service.Date.Format("02/01"),
		service.Date.Format("15:04"),
	)

	to := service.Client.Phone
	if !strings.HasPrefix(to, "+") {
		// Brazilian numbers, same default the original product applied.
		to = "+55" + nonDigits.ReplaceAllString(to, "")
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo("whatsapp:" + to)
	params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	params.SetBody(message)

	status := "sent"
	errorMsg := ""
	resp, err := n.client.Api.CreateMessage(params)
	if err != nil {
		log.Error("failed to send confirmation", zap.String("phone", service.Client.Phone), zap.Error(err))
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		log.Info("confirmation sent", zap.String("service", service.ID.String()), zap.String("sid", *resp.Sid))
	}

	reminderLog := models.ReminderLog{
		ServiceID:    service.ID,
		ClientID:     service.ClientID,
		Message:      message,
		Status:       status,
		ErrorMessage: errorMsg,
		Channel:      "whatsapp",
		SentAt:       time.Now(),
	}
	if err := n.db.Create(&reminderLog).Error; err != nil {
		log.Error("failed to log reminder", zap.String("service", service.ID.String()), zap.Error(err))
	}
}
