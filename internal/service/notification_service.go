package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"go-stockflow/internal/apperr"
	"go-stockflow/internal/model"
	"go-stockflow/internal/policy"
	"go-stockflow/internal/repository"
)

// NotificationList is the combined listing payload callers poll for
type NotificationList struct {
	Notifications []model.Notification `json:"notifications"`
	UnreadCount   int64                `json:"unread_count"`
}

type NotificationService interface {
	ListNotifications(actor policy.Actor) (*NotificationList, error)
	MarkAsRead(actor policy.Actor, id uuid.UUID) (*model.Notification, error)
	MarkAllAsRead(actor policy.Actor) error
	DeleteNotification(actor policy.Actor, id uuid.UUID) error
	UnreadCount(actor policy.Actor) (int64, error)
}

type notificationService struct {
	notificationRepo repository.NotificationRepository
}

func NewNotificationService(nRepo repository.NotificationRepository) NotificationService {
	return &notificationService{notificationRepo: nRepo}
}

func (s *notificationService) ListNotifications(actor policy.Actor) (*NotificationList, error) {
	notifications, err := s.notificationRepo.FindByRecipient(actor.ID)
	if err != nil {
		return nil, err
	}
	unreadCount, err := s.notificationRepo.CountUnread(actor.ID)
	if err != nil {
		return nil, err
	}
	return &NotificationList{
		Notifications: notifications,
		UnreadCount:   unreadCount,
	}, nil
}

// MarkAsRead is idempotent: re-marking an already-read notification succeeds
// and re-stamps ReadAt
func (s *notificationService) MarkAsRead(actor policy.Actor, id uuid.UUID) (*model.Notification, error) {
	notification, err := s.findNotification(id)
	if err != nil {
		return nil, err
	}
	if notification.RecipientID != actor.ID {
		return nil, apperr.Forbidden("Not authorized to mark this notification as read")
	}

	now := time.Now()
	notification.IsRead = true
	notification.ReadAt = &now

	if err := s.notificationRepo.Save(notification); err != nil {
		return nil, err
	}
	return notification, nil
}

func (s *notificationService) MarkAllAsRead(actor policy.Actor) error {
	return s.notificationRepo.MarkAllRead(actor.ID, time.Now())
}

func (s *notificationService) DeleteNotification(actor policy.Actor, id uuid.UUID) error {
	notification, err := s.findNotification(id)
	if err != nil {
		return err
	}
	if notification.RecipientID != actor.ID {
		return apperr.Forbidden("Not authorized to delete this notification")
	}
	return s.notificationRepo.Delete(id)
}

func (s *notificationService) UnreadCount(actor policy.Actor) (int64, error) {
	return s.notificationRepo.CountUnread(actor.ID)
}

func (s *notificationService) findNotification(id uuid.UUID) (*model.Notification, error) {
	notification, err := s.notificationRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Notification not found")
		}
		return nil, err
	}
	return notification, nil
}
