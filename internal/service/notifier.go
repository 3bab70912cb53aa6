package service

import (
	"fmt"

	"go.uber.org/zap"

	"go-stockflow/internal/model"
	"go-stockflow/internal/policy"
	"go-stockflow/internal/repository"
)

// Notifier fans out notification records in response to request operations.
// Delivery is best-effort and at-most-once: a failed write is logged and
// skipped, and never rolls back the request mutation that triggered it.
type Notifier struct {
	notificationRepo repository.NotificationRepository
	userRepo         repository.UserRepository
	log              *zap.Logger
}

func NewNotifier(nRepo repository.NotificationRepository, uRepo repository.UserRepository, log *zap.Logger) *Notifier {
	return &Notifier{
		notificationRepo: nRepo,
		userRepo:         uRepo,
		log:              log,
	}
}

// RequestCreated notifies every current admin about a staff-created request.
// One admin's failed write must not block the others.
func (n *Notifier) RequestCreated(actor policy.Actor, request *model.Request, product *model.Product) {
	admins, err := n.userRepo.FindAdmins()
	if err != nil {
		n.log.Error("failed to enumerate admins for request notification",
			zap.String("request_id", request.ID.String()),
			zap.Error(err))
		return
	}

	label := request.TransactionType.Label()
	for _, admin := range admins {
		notification := &model.Notification{
			RecipientID: admin.ID,
			SenderID:    actor.ID,
			Type:        model.NotifRequestCreated,
			Title:       "New request requires your attention",
			Message: fmt.Sprintf("%s created a new %s request for %s (%s) - Quantity: %d units",
				actor.Name, label, product.Name, product.SKU, request.ItemAmount),
			RelatedRequestID: &request.ID,
			RelatedProductID: &request.ProductID,
		}
		if err := n.notificationRepo.Create(notification); err != nil {
			n.log.Error("failed to write request_created notification",
				zap.String("recipient_id", admin.ID.String()),
				zap.String("request_id", request.ID.String()),
				zap.Error(err))
		}
	}
}

// RequestUpdated notifies the request owner after an admin edited their request
func (n *Notifier) RequestUpdated(actor policy.Actor, request *model.Request) {
	productName, productSKU := productLabel(request.Product)
	label := request.TransactionType.Label()

	notification := &model.Notification{
		RecipientID: request.UserID,
		SenderID:    actor.ID,
		Type:        model.NotifRequestUpdated,
		Title:       "Your request has been updated",
		Message: fmt.Sprintf("Admin %s updated your %s request for %s (%s) - Quantity: %d units",
			actor.Name, label, productName, productSKU, request.ItemAmount),
		RelatedRequestID: &request.ID,
		RelatedProductID: &request.ProductID,
	}
	if err := n.notificationRepo.Create(notification); err != nil {
		n.log.Error("failed to write request_updated notification",
			zap.String("recipient_id", request.UserID.String()),
			zap.String("request_id", request.ID.String()),
			zap.Error(err))
	}
}

// RequestDeleted notifies the request owner after an admin deleted their
// request. The message carries the original transaction date since the
// request itself is gone.
func (n *Notifier) RequestDeleted(actor policy.Actor, request *model.Request) {
	productName, productSKU := productLabel(request.Product)
	label := request.TransactionType.Label()

	notification := &model.Notification{
		RecipientID: request.UserID,
		SenderID:    actor.ID,
		Type:        model.NotifRequestDeleted,
		Title:       "Your request has been deleted",
		Message: fmt.Sprintf("Admin %s deleted your %s request for %s (%s) - %d units. Request date: %s",
			actor.Name, label, productName, productSKU, request.ItemAmount,
			request.TransactionDate.Format("1/2/2006")),
		RelatedProductID: &request.ProductID,
	}
	if err := n.notificationRepo.Create(notification); err != nil {
		n.log.Error("failed to write request_deleted notification",
			zap.String("recipient_id", request.UserID.String()),
			zap.String("request_id", request.ID.String()),
			zap.Error(err))
	}
}

func productLabel(product *model.Product) (name, sku string) {
	if product == nil {
		return "Unknown Product", ""
	}
	return product.Name, product.SKU
}
