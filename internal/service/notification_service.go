package service

import (
	"encoding/json"
	"time"

	"go-dairy-ops/internal/model"
	"go-dairy-ops/internal/repository"
	"go-dairy-ops/internal/ws"
	"go-dairy-ops/pkg/apperr"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationService interface {
	// Notify persists a notification (inside tx when given) and broadcasts it
	// over the websocket hub.
	Notify(tx *gorm.DB, userID uuid.UUID, message string) error
	List(userID uuid.UUID) ([]model.Notification, error)
	MarkRead(id, userID uuid.UUID) error
}

type notificationService struct {
	repo  repository.NotificationRepository
	wsHub *ws.Hub
}

func NewNotificationService(repo repository.NotificationRepository, hub *ws.Hub) NotificationService {
	return &notificationService{repo: repo, wsHub: hub}
}

func (s *notificationService) Notify(tx *gorm.DB, userID uuid.UUID, message string) error {
	notification := &model.Notification{
		UserID:  userID,
		Message: message,
	}
	if err := s.repo.Create(tx, notification); err != nil {
		return err
	}

	// Broadcast to connected clients
	go func() {
		payload := map[string]interface{}{
			"type":            "notification",
			"notification_id": notification.ID,
			"user_id":         userID.String(),
			"message":         message,
			"timestamp":       time.Now(),
		}
		msg, _ := json.Marshal(payload)
		s.wsHub.Broadcast <- msg
	}()

	return nil
}

func (s *notificationService) List(userID uuid.UUID) ([]model.Notification, error) {
	return s.repo.ListLatest(userID, 20)
}

func (s *notificationService) MarkRead(id, userID uuid.UUID) error {
	rows, err := s.repo.MarkRead(id, userID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperr.NotFound("notification not found")
	}
	return nil
}
