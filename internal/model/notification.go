package model

import "github.com/google/uuid"

// Notification is one message on a user's feed
type Notification struct {
	BaseModel
	UserID  uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	User    *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Message string    `gorm:"type:text;not null" json:"message"`
	IsRead  bool      `gorm:"default:false" json:"is_read"`
}

func (Notification) TableName() string {
	return "notifications"
}
