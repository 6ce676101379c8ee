package model

import "github.com/google/uuid"

// Seller is a field operative who receives milk and sells to customers
type Seller struct {
	BaseModel
	Name       string    `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	LocationID uuid.UUID `gorm:"type:uuid;not null;index" json:"location_id" validate:"uuid_required"`
	Location   *Location `gorm:"foreignKey:LocationID" json:"location,omitempty"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	User       *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	IsActive   bool      `gorm:"default:true" json:"is_active"`
}
