// models/notification_log.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationLog struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	OwnerID       uuid.UUID `gorm:"type:uuid;index"`
	AppointmentID uuid.UUID `gorm:"type:uuid;index;not null"`
	Event         string    `gorm:"type:varchar(30)"` // novo_agendamento, confirmacao, conclusao, cancelamento
	Message       string    `gorm:"type:text"`
	Status        string    `gorm:"type:varchar(20)"` // generated, failed
	ErrorMessage  string    `gorm:"type:text"`
	Channel       string    `gorm:"type:varchar(20)"` // whatsapp
	SentAt        time.Time
	gorm.Model
}

func (n *NotificationLog) BeforeCreate(tx *gorm.DB) (err error) {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return
}
