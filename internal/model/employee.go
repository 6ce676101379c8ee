package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Employee is a farm worker paid per day worked
type Employee struct {
	BaseModel
	Code       string          `gorm:"type:varchar(10);uniqueIndex" json:"code"` // EMP001, EMP002, ...
	Name       string          `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	BaseSalary decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"base_salary" validate:"dgt0"` // Per day worked
	UserID     uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	User       *User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	ManagerID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"manager_id" validate:"uuid_required"`
	Manager    *Manager        `gorm:"foreignKey:ManagerID" json:"manager,omitempty"`
	IsActive   bool            `gorm:"default:true" json:"is_active"`
}
