package model

import "github.com/google/uuid"

// Manager oversees sellers and employees, records production and expense data
type Manager struct {
	BaseModel
	Code   string    `gorm:"type:varchar(20);uniqueIndex" json:"code"` // manager001, manager002, ...
	Name   string    `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	User   *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
