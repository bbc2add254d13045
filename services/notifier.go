// services/notifier.go
package services

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"zentrixia-backend/config"
	"zentrixia-backend/models"

	"gorm.io/gorm"
)

// NotificationEvent identifies which lifecycle event a notification announces.
type NotificationEvent string

const (
	EventNewAppointment NotificationEvent = "novo_agendamento"
	EventConfirmed      NotificationEvent = "confirmacao"
	EventCompleted      NotificationEvent = "conclusao"
	EventCancelled      NotificationEvent = "cancelamento"
)

// EventForStatus maps a new appointment status to the notification event it
// triggers. The zero value means no notification.
func EventForStatus(status string) NotificationEvent {
	switch status {
	case models.StatusConfirmed:
		return EventConfirmed
	case models.StatusCompleted:
		return EventCompleted
	case models.StatusCancelled:
		return EventCancelled
	}
	return ""
}

type notification struct {
	Event       NotificationEvent
	Appointment models.Appointment
}

// Notifier renders WhatsApp deep links for appointment events. Events are
// queued on a buffered channel and consumed by a single worker, so a full
// queue or a render failure never blocks or fails the create/update that
// produced the event. There is no delivery and no retry; opening the link
// is up to a human.
type Notifier struct {
	db          *gorm.DB
	ownerNumber string
	queue       chan notification
}

func NewNotifier(db *gorm.DB) *Notifier {
	return &Notifier{
		db:          db,
		ownerNumber: os.Getenv("OWNER_WHATSAPP_NUMBER"),
		queue:       make(chan notification, 64),
	}
}

// Start launches the worker goroutine. Stop closes the queue and lets the
// worker drain it.
func (n *Notifier) Start() {
	go func() {
		for msg := range n.queue {
			n.dispatch(msg)
		}
	}()
	log.Println("WhatsApp notifier started")
}

func (n *Notifier) Stop() {
	close(n.queue)
}

// Notify enqueues an event without blocking. When the buffer is full the
// event is dropped; the triggering operation already succeeded.
func (n *Notifier) Notify(event NotificationEvent, appointment models.Appointment) {
	if event == "" {
		return
	}
	select {
	case n.queue <- notification{Event: event, Appointment: appointment}:
	default:
		log.Printf("Notification queue full, dropping %s for appointment %s", event, appointment.ID)
		config.NotificationsDispatched.WithLabelValues(string(event), "dropped").Inc()
	}
}

func (n *Notifier) dispatch(msg notification) {
	message := BuildMessage(msg.Event, msg.Appointment)
	link := BuildLink(n.ownerNumber, message)

	log.Printf("WhatsApp notification %s for %s: %s", msg.Event, msg.Appointment.CustomerName, link)
	config.NotificationsDispatched.WithLabelValues(string(msg.Event), "generated").Inc()

	entry := models.NotificationLog{
		OwnerID:       msg.Appointment.OwnerID,
		AppointmentID: msg.Appointment.ID,
		Event:         string(msg.Event),
		Message:       message,
		Status:        "generated",
		Channel:       "whatsapp",
		SentAt:        time.Now(),
	}
	if err := n.db.Create(&entry).Error; err != nil {
		log.Printf("Failed to log notification for appointment %s: %v", msg.Appointment.ID, err)
	}
}

// BuildMessage renders the fixed pt-BR template for an event.
func BuildMessage(event NotificationEvent, a models.Appointment) string {
	var emoji, title string
	switch event {
	case EventNewAppointment:
		emoji, title = "🆕", "NOVO AGENDAMENTO"
	case EventConfirmed:
		emoji, title = "✅", "AGENDAMENTO CONFIRMADO"
	case EventCompleted:
		emoji, title = "🎉", "AGENDAMENTO CONCLUÍDO"
	case EventCancelled:
		emoji, title = "❌", "AGENDAMENTO CANCELADO"
	}

	divider := strings.Repeat("━", 20)

	var b strings.Builder
	fmt.Fprintf(&b, "%s *%s* %s\n\n", emoji, title, emoji)
	fmt.Fprintf(&b, "%s\n📋 *Detalhes do Agendamento*\n%s\n\n", divider, divider)
	fmt.Fprintf(&b, "👤 *Cliente:* %s\n", a.CustomerName)
	fmt.Fprintf(&b, "📱 *WhatsApp:* %s\n", a.CustomerPhone)
	fmt.Fprintf(&b, "📧 *Email:* %s\n", a.CustomerEmail)
	fmt.Fprintf(&b, "✂️ *Serviço:* %s\n", a.ServiceName)
	fmt.Fprintf(&b, "📅 *Data:* %s\n", FormatDate(a.Date))
	fmt.Fprintf(&b, "🕐 *Horário:* %s\n", a.TimeSlot)
	fmt.Fprintf(&b, "💰 *Valor:* %s\n", FormatCurrency(a.ServicePrice))
	if a.Notes != "" {
		fmt.Fprintf(&b, "📝 *Obs:* %s\n", a.Notes)
	}
	fmt.Fprintf(&b, "\n%s\n⏰ %s\n%s\n\n", divider, time.Now().Format("02/01/2006 15:04:05"), divider)
	b.WriteString("🏆 *ZENTRIXIA Barbearia Premium*")

	return b.String()
}

// BuildLink produces a wa.me deep link that pre-fills a chat with the
// message. Encoding mirrors encodeURIComponent (%20 for spaces).
func BuildLink(number, message string) string {
	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return "https://wa.me/" + number + "?text=" + encoded
}

// FormatDate converts a stored YYYY-MM-DD date to the dd/mm/yyyy form used
// in messages. Unparseable input is returned as is.
func FormatDate(date string) string {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return d.Format("02/01/2006")
}

// FormatCurrency renders a price as pt-BR currency: R$ 1.234,56.
func FormatCurrency(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	parts := strings.SplitN(s, ".", 2)
	intPart, fracPart := parts[0], parts[1]

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	out := "R$ " + strings.Join(groups, ".") + "," + fracPart
	if neg {
		out = "-" + out
	}
	return out
}
