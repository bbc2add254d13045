package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Appointment is a booking request made through the public form. Date is kept
// as YYYY-MM-DD text so lexicographic ordering matches chronological ordering.
type Appointment struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID uuid.UUID `gorm:"type:uuid;index;not null" json:"ownerId"`

	CustomerName  string `gorm:"not null" json:"name"`
	CustomerPhone string `gorm:"not null" json:"whatsapp"`
	CustomerEmail string `gorm:"not null" json:"email"`

	ServiceName  string  `gorm:"not null" json:"service"`
	ServicePrice float64 `gorm:"type:decimal(10,2);not null" json:"price"`

	Date     string `gorm:"type:varchar(10);index;not null" json:"date"`
	TimeSlot string `gorm:"type:varchar(5);not null" json:"timeSlot"`
	Notes    string `gorm:"type:text" json:"notes"`

	Status string `gorm:"type:varchar(20);not null;default:'pendente'" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Status == "" {
		a.Status = StatusPending
	}
	return
}
