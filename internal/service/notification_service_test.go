package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"go-stockflow/internal/apperr"
	"go-stockflow/internal/model"
	"go-stockflow/internal/repository/mocks"
)

func testNotification(recipientID uuid.UUID) *model.Notification {
	n := &model.Notification{
		RecipientID: recipientID,
		SenderID:    uuid.New(),
		Type:        model.NotifRequestCreated,
		Title:       "New request requires your attention",
		Message:     "Udin Staff created a new Stock Out request for Widget (WIDGET-01) - Quantity: 30 units",
	}
	n.ID = uuid.New()
	return n
}

func TestListNotifications(t *testing.T) {
	repo := new(mocks.MockNotificationRepository)
	svc := NewNotificationService(repo)
	actor := staffActor()

	repo.On("FindByRecipient", actor.ID).Return([]model.Notification{*testNotification(actor.ID)}, nil)
	repo.On("CountUnread", actor.ID).Return(int64(1), nil)

	list, err := svc.ListNotifications(actor)

	require.NoError(t, err)
	assert.Len(t, list.Notifications, 1)
	assert.Equal(t, int64(1), list.UnreadCount)
}

func TestMarkAsRead(t *testing.T) {
	t.Run("recipient marks a notification read", func(t *testing.T) {
		repo := new(mocks.MockNotificationRepository)
		svc := NewNotificationService(repo)
		actor := staffActor()
		notification := testNotification(actor.ID)

		repo.On("FindByID", notification.ID).Return(notification, nil)
		repo.On("Save", notification).Return(nil)

		read, err := svc.MarkAsRead(actor, notification.ID)

		require.NoError(t, err)
		assert.True(t, read.IsRead)
		assert.NotNil(t, read.ReadAt)
	})

	t.Run("marking twice is idempotent and re-stamps ReadAt", func(t *testing.T) {
		repo := new(mocks.MockNotificationRepository)
		svc := NewNotificationService(repo)
		actor := staffActor()
		notification := testNotification(actor.ID)

		repo.On("FindByID", notification.ID).Return(notification, nil)
		repo.On("Save", notification).Return(nil)

		first, err := svc.MarkAsRead(actor, notification.ID)
		require.NoError(t, err)
		firstReadAt := *first.ReadAt

		time.Sleep(5 * time.Millisecond)

		second, err := svc.MarkAsRead(actor, notification.ID)
		require.NoError(t, err)
		assert.True(t, second.IsRead)
		assert.True(t, second.ReadAt.After(firstReadAt))
	})

	t.Run("only the recipient may mark it read", func(t *testing.T) {
		repo := new(mocks.MockNotificationRepository)
		svc := NewNotificationService(repo)
		notification := testNotification(uuid.New())

		repo.On("FindByID", notification.ID).Return(notification, nil)

		_, err := svc.MarkAsRead(staffActor(), notification.ID)

		require.Error(t, err)
		assert.True(t, apperr.IsForbidden(err))
		repo.AssertNotCalled(t, "Save", mock.Anything)
	})

	t.Run("unknown id maps to not found", func(t *testing.T) {
		repo := new(mocks.MockNotificationRepository)
		svc := NewNotificationService(repo)
		id := uuid.New()

		repo.On("FindByID", id).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.MarkAsRead(staffActor(), id)

		require.Error(t, err)
		assert.True(t, apperr.IsNotFound(err))
	})
}

func TestMarkAllAsRead(t *testing.T) {
	repo := new(mocks.MockNotificationRepository)
	svc := NewNotificationService(repo)
	actor := staffActor()

	repo.On("MarkAllRead", actor.ID, mock.AnythingOfType("time.Time")).Return(nil)

	require.NoError(t, svc.MarkAllAsRead(actor))
	repo.AssertExpectations(t)
}

func TestDeleteNotification(t *testing.T) {
	t.Run("recipient deletes their notification", func(t *testing.T) {
		repo := new(mocks.MockNotificationRepository)
		svc := NewNotificationService(repo)
		actor := staffActor()
		notification := testNotification(actor.ID)

		repo.On("FindByID", notification.ID).Return(notification, nil)
		repo.On("Delete", notification.ID).Return(nil)

		require.NoError(t, svc.DeleteNotification(actor, notification.ID))
	})

	t.Run("sender has no delete rights over it", func(t *testing.T) {
		repo := new(mocks.MockNotificationRepository)
		svc := NewNotificationService(repo)
		sender := staffActor()
		notification := testNotification(uuid.New())
		notification.SenderID = sender.ID

		repo.On("FindByID", notification.ID).Return(notification, nil)

		err := svc.DeleteNotification(sender, notification.ID)

		require.Error(t, err)
		assert.True(t, apperr.IsForbidden(err))
		repo.AssertNotCalled(t, "Delete", mock.Anything)
	})
}

func TestUnreadCount(t *testing.T) {
	repo := new(mocks.MockNotificationRepository)
	svc := NewNotificationService(repo)
	actor := staffActor()

	repo.On("CountUnread", actor.ID).Return(int64(3), nil)

	count, err := svc.UnreadCount(actor)

	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
