package mocks

import (
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"go-stockflow/internal/model"
)

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Create(notification *model.Notification) error {
	args := m.Called(notification)
	if notification != nil && args.Error(0) == nil {
		notification.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *MockNotificationRepository) FindByRecipient(recipientID uuid.UUID) ([]model.Notification, error) {
	args := m.Called(recipientID)
	if n := args.Get(0); n != nil {
		return n.([]model.Notification), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockNotificationRepository) FindByID(id uuid.UUID) (*model.Notification, error) {
	args := m.Called(id)
	if n := args.Get(0); n != nil {
		return n.(*model.Notification), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockNotificationRepository) Save(notification *model.Notification) error {
	args := m.Called(notification)
	return args.Error(0)
}

func (m *MockNotificationRepository) Delete(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockNotificationRepository) CountUnread(recipientID uuid.UUID) (int64, error) {
	args := m.Called(recipientID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) MarkAllRead(recipientID uuid.UUID, readAt time.Time) error {
	args := m.Called(recipientID, readAt)
	return args.Error(0)
}
