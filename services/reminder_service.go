// services/reminder_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"zentrixia-backend/models"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// ReminderService sends each owner a morning summary of the next day's
// confirmed appointments. Delivery goes through Twilio's WhatsApp API when
// credentials are configured; otherwise the summary is only logged. This is
// separate from the Notifier, which never delivers anything itself.
type ReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient
	cron   *cron.Cron
}

func NewReminderService(db *gorm.DB) *ReminderService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	var client *twilio.RestClient
	if accountSid != "" && authToken != "" {
		client = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		})
	}

	return &ReminderService{db: db, client: client, cron: cron.New()}
}

// StartScheduler runs the daily summary at 9 AM.
func (s *ReminderService) StartScheduler() {
	s.cron.AddFunc("0 9 * * *", s.SendDailySummaries)
	s.cron.Start()
	log.Println("Reminder scheduler started")
}

func (s *ReminderService) StopScheduler() {
	s.cron.Stop()
}

func (s *ReminderService) SendDailySummaries() {
	log.Println("Starting daily summary processing...")

	var owners []models.User
	if err := s.db.Find(&owners, "is_active = ?", true).Error; err != nil {
		log.Printf("Failed to fetch owners: %v", err)
		return
	}

	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	for _, owner := range owners {
		s.processOwnerSummary(owner, tomorrow)
	}

	log.Println("Daily summary processing completed")
}

func (s *ReminderService) processOwnerSummary(owner models.User, date string) {
	var appointments []models.Appointment
	err := s.db.
		Where("owner_id = ? AND date = ? AND status = ?", owner.ID, date, models.StatusConfirmed).
		Order("time_slot asc").
		Find(&appointments).Error
	if err != nil {
		log.Printf("Owner %s: failed to fetch appointments for %s: %v", owner.ID, date, err)
		return
	}
	if len(appointments) == 0 {
		return
	}

	message := buildDailySummary(owner.BusinessName, date, appointments)

	if s.client == nil || owner.WhatsApp == "" {
		log.Printf("Owner %s: Twilio not configured, summary:\n%s", owner.ID, message)
		return
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo("whatsapp:" + owner.WhatsApp)
	params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	params.SetBody(message)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("Failed to send summary to %s: %v", owner.WhatsApp, err)
		return
	}
	if resp.Sid != nil {
		log.Printf("Summary sent to %s, SID: %s", owner.WhatsApp, *resp.Sid)
	} else {
		log.Printf("Summary sent to %s, but no SID returned", owner.WhatsApp)
	}
}

func buildDailySummary(businessName, date string, appointments []models.Appointment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📅 *%s* — agenda confirmada para %s:\n\n", businessName, FormatDate(date))
	for _, a := range appointments {
		fmt.Fprintf(&b, "🕐 %s — %s (%s) — %s\n",
			a.TimeSlot, a.CustomerName, a.ServiceName, FormatCurrency(a.ServicePrice))
	}
	fmt.Fprintf(&b, "\nTotal: %d agendamento(s)", len(appointments))
	return b.String()
}
