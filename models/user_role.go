package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const RoleAdmin = "admin"

// UserRole maps an account to a capability. Admin rows are provisioned
// directly in the database; there is no endpoint that grants roles.
type UserRole struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_role,priority:1"`
	Role   string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_user_role,priority:2"`

	gorm.Model
}

func (r *UserRole) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}
