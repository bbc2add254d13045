package models

import (
	"time"

	"zentrixia-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a barbershop owner account. Appointments reference it through
// OwnerID; it never manages them directly.
type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key"`
	Email    string    `gorm:"uniqueIndex;not null"`
	Password string    `gorm:"not null"`

	BusinessName string `gorm:"not null"`
	WhatsApp     string

	LastLogin *time.Time
	IsActive  bool `gorm:"default:true"`

	gorm.Model
}

// Initialize UUID and hash the password before creating
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	hashed, err := utils.HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return
}
