package repository

import (
	"time"

	"go-stockflow/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(notification *model.Notification) error
	FindByRecipient(recipientID uuid.UUID) ([]model.Notification, error)
	FindByID(id uuid.UUID) (*model.Notification, error)
	Save(notification *model.Notification) error
	Delete(id uuid.UUID) error
	CountUnread(recipientID uuid.UUID) (int64, error)
	MarkAllRead(recipientID uuid.UUID, readAt time.Time) error
}

type notificationRepo struct {
	db *gorm.DB
}

func NewNotificationRepo(db *gorm.DB) NotificationRepository {
	return &notificationRepo{db}
}

func (r *notificationRepo) Create(notification *model.Notification) error {
	return r.db.Create(notification).Error
}

func (r *notificationRepo) FindByRecipient(recipientID uuid.UUID) ([]model.Notification, error) {
	var notifications []model.Notification
	err := r.db.Preload("Sender").Preload("RelatedProduct").
		Where("recipient_id = ?", recipientID).
		Order("created_at DESC").Find(&notifications).Error
	return notifications, err
}

func (r *notificationRepo) FindByID(id uuid.UUID) (*model.Notification, error) {
	var notification model.Notification
	err := r.db.First(&notification, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &notification, nil
}

func (r *notificationRepo) Save(notification *model.Notification) error {
	return r.db.Save(notification).Error
}

func (r *notificationRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Notification{}, "id = ?", id).Error
}

func (r *notificationRepo) CountUnread(recipientID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&model.Notification{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Count(&count).Error
	return count, err
}

func (r *notificationRepo) MarkAllRead(recipientID uuid.UUID, readAt time.Time) error {
	return r.db.Model(&model.Notification{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Updates(map[string]interface{}{"is_read": true, "read_at": readAt}).Error
}
