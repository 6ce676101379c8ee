package repository

import (
	"go-dairy-ops/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(tx *gorm.DB, notification *model.Notification) error
	ListLatest(userID uuid.UUID, limit int) ([]model.Notification, error)
	MarkRead(id, userID uuid.UUID) (int64, error)
}

type notificationRepo struct {
	db *gorm.DB
}

func NewNotificationRepo(db *gorm.DB) NotificationRepository {
	return &notificationRepo{db}
}

func (r *notificationRepo) Create(tx *gorm.DB, notification *model.Notification) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Create(notification).Error
}

func (r *notificationRepo) ListLatest(userID uuid.UUID, limit int) ([]model.Notification, error) {
	var notifications []model.Notification
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&notifications).Error
	return notifications, err
}

func (r *notificationRepo) MarkRead(id, userID uuid.UUID) (int64, error) {
	res := r.db.Model(&model.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}
