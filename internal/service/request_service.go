package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"go-stockflow/internal/apperr"
	"go-stockflow/internal/model"
	"go-stockflow/internal/policy"
	"go-stockflow/internal/repository"
	"go-stockflow/pkg/validator"
)

// Staff stock-out requests may never exceed this amount, at creation or on
// any later edit. Admins have no ceiling.
const maxStaffStockOut = 50

type CreateRequestInput struct {
	ProductID       uuid.UUID             `json:"product_id" validate:"uuid_required"`
	TransactionType model.TransactionType `json:"transaction_type" validate:"required,oneof=stockIn stockOut"`
	ItemAmount      int                   `json:"item_amount" validate:"required,gt=0"`
	TransactionDate time.Time             `json:"transaction_date" validate:"required"`
}

// UpdateRequestInput carries partial edits; nil fields are left untouched.
// Owner and status are not editable through this path.
type UpdateRequestInput struct {
	TransactionType *model.TransactionType `json:"transaction_type,omitempty"`
	ItemAmount      *int                   `json:"item_amount,omitempty"`
	TransactionDate *time.Time             `json:"transaction_date,omitempty"`
}

type RequestService interface {
	ListRequests(actor policy.Actor) ([]model.Request, error)
	GetRequest(actor policy.Actor, id uuid.UUID) (*model.Request, error)
	CreateRequest(actor policy.Actor, input CreateRequestInput) (*model.Request, error)
	UpdateRequest(actor policy.Actor, id uuid.UUID, input UpdateRequestInput) (*model.Request, error)
	CancelRequest(actor policy.Actor, id uuid.UUID) (*model.Request, error)
	ApproveRequest(actor policy.Actor, id uuid.UUID) (*model.Request, error)
	RejectRequest(actor policy.Actor, id uuid.UUID, rejectionReason string) (*model.Request, error)
	DeleteRequest(actor policy.Actor, id uuid.UUID) error
}

type requestService struct {
	requestRepo repository.RequestRepository
	productRepo repository.ProductRepository
	notifier    *Notifier
}

func NewRequestService(rRepo repository.RequestRepository, pRepo repository.ProductRepository, notifier *Notifier) RequestService {
	return &requestService{
		requestRepo: rRepo,
		productRepo: pRepo,
		notifier:    notifier,
	}
}

func (s *requestService) ListRequests(actor policy.Actor) ([]model.Request, error) {
	if actor.IsAdmin() {
		return s.requestRepo.FindAll()
	}
	return s.requestRepo.FindByOwner(actor.ID)
}

func (s *requestService) GetRequest(actor policy.Actor, id uuid.UUID) (*model.Request, error) {
	request, err := s.findRequest(id)
	if err != nil {
		return nil, err
	}
	if !policy.CanViewRequest(actor, request.UserID) {
		return nil, apperr.Forbidden("Not authorized to view this request")
	}
	return request, nil
}

func (s *requestService) CreateRequest(actor policy.Actor, input CreateRequestInput) (*model.Request, error) {
	if errs := validator.ValidateStruct(input); len(errs) > 0 {
		firstErr := errs[0]
		return nil, apperr.Validation(fmt.Sprintf("Validation failed: Field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag))
	}

	if err := checkAmountRules(actor, input.TransactionType, input.ItemAmount); err != nil {
		return nil, err
	}

	// Validate against the current stock snapshot. This does not reserve or
	// deduct stock; approval is a status change only.
	product, err := s.productRepo.FindByID(input.ProductID)
	if err != nil || !product.IsActive {
		return nil, apperr.Validation("Product not found or inactive")
	}
	if input.TransactionType == model.TxStockOut && product.StockQuantity < input.ItemAmount {
		return nil, apperr.Validation("Insufficient stock available")
	}

	request := &model.Request{
		UserID:          actor.ID,
		ProductID:       input.ProductID,
		TransactionType: input.TransactionType,
		ItemAmount:      input.ItemAmount,
		TransactionDate: input.TransactionDate,
		Status:          model.StatusPending,
	}
	request.AppendActivity("created", actor.ID, fmt.Sprintf("Created by %s", actor.Role))

	if err := s.requestRepo.Create(request); err != nil {
		return nil, err
	}
	request.Product = product

	// Fan-out happens after the request is durably written; its outcome does
	// not affect the result of this call.
	if actor.Role == model.RoleStaff {
		s.notifier.RequestCreated(actor, request, product)
	}

	return request, nil
}

func (s *requestService) UpdateRequest(actor policy.Actor, id uuid.UUID, input UpdateRequestInput) (*model.Request, error) {
	request, err := s.findRequest(id)
	if err != nil {
		return nil, err
	}
	if !policy.CanModifyRequest(actor, request.UserID) {
		return nil, apperr.Forbidden("Not authorized to edit this request")
	}

	if input.TransactionType != nil {
		request.TransactionType = *input.TransactionType
	}
	if input.ItemAmount != nil {
		request.ItemAmount = *input.ItemAmount
	}
	if input.TransactionDate != nil {
		request.TransactionDate = *input.TransactionDate
	}

	// The amount rules hold on the merged result of every edit, not just
	// the fields being changed
	if err := checkAmountRules(actor, request.TransactionType, request.ItemAmount); err != nil {
		return nil, err
	}

	request.LastModifiedByID = &actor.ID
	request.AppendActivity("updated", actor.ID, fmt.Sprintf("Updated by %s", actor.Role))

	if err := s.requestRepo.Save(request); err != nil {
		return nil, err
	}

	if actor.IsAdmin() && request.UserID != actor.ID {
		s.notifier.RequestUpdated(actor, request)
	}

	return request, nil
}

func (s *requestService) CancelRequest(actor policy.Actor, id uuid.UUID) (*model.Request, error) {
	request, err := s.findRequest(id)
	if err != nil {
		return nil, err
	}
	if !policy.CanModifyRequest(actor, request.UserID) {
		return nil, apperr.Forbidden("Not authorized to cancel this request")
	}
	if request.Status != model.StatusPending {
		return nil, apperr.InvalidState("Only pending requests can be cancelled")
	}

	request.Status = model.StatusCancelled
	request.AppendActivity("cancelled", actor.ID, fmt.Sprintf("Cancelled by %s", actor.Role))

	if err := s.requestRepo.Save(request); err != nil {
		return nil, err
	}
	return request, nil
}

func (s *requestService) ApproveRequest(actor policy.Actor, id uuid.UUID) (*model.Request, error) {
	request, err := s.findRequest(id)
	if err != nil {
		return nil, err
	}
	if !policy.CanReviewRequest(actor) {
		return nil, apperr.Forbidden("Only admin can approve requests")
	}
	if request.Status != model.StatusPending {
		return nil, apperr.InvalidState("Only pending requests can be approved")
	}

	// Approval records who decided and when; stock quantities are untouched
	now := time.Now()
	request.Status = model.StatusApproved
	request.ApprovedByID = &actor.ID
	request.ApprovedAt = &now
	request.AppendActivity("approved", actor.ID, "Approved by admin")

	if err := s.requestRepo.Save(request); err != nil {
		return nil, err
	}
	return request, nil
}

func (s *requestService) RejectRequest(actor policy.Actor, id uuid.UUID, rejectionReason string) (*model.Request, error) {
	if rejectionReason == "" {
		return nil, apperr.Validation("Rejection reason is required")
	}

	request, err := s.findRequest(id)
	if err != nil {
		return nil, err
	}
	if !policy.CanReviewRequest(actor) {
		return nil, apperr.Forbidden("Only admin can reject requests")
	}
	if request.Status != model.StatusPending {
		return nil, apperr.InvalidState("Only pending requests can be rejected")
	}

	now := time.Now()
	request.Status = model.StatusRejected
	request.RejectionReason = rejectionReason
	request.ApprovedByID = &actor.ID
	request.ApprovedAt = &now
	request.AppendActivity("rejected", actor.ID, "Rejected by admin")

	if err := s.requestRepo.Save(request); err != nil {
		return nil, err
	}
	return request, nil
}

func (s *requestService) DeleteRequest(actor policy.Actor, id uuid.UUID) error {
	request, err := s.findRequest(id)
	if err != nil {
		return err
	}
	if !policy.CanModifyRequest(actor, request.UserID) {
		return apperr.Forbidden("Not authorized to delete this request")
	}

	// The owner must hear about an admin deleting their request; the
	// notification is written first because the request row is about to go
	ownerIsStaff := request.User != nil && request.User.Role == model.RoleStaff
	if actor.IsAdmin() && ownerIsStaff && request.UserID != actor.ID {
		s.notifier.RequestDeleted(actor, request)
	}

	return s.requestRepo.Delete(id)
}

func (s *requestService) findRequest(id uuid.UUID) (*model.Request, error) {
	request, err := s.requestRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Request not found")
		}
		return nil, err
	}
	return request, nil
}

func checkAmountRules(actor policy.Actor, txType model.TransactionType, amount int) error {
	if amount <= 0 {
		return apperr.Validation("Item amount must be greater than zero")
	}
	if actor.Role == model.RoleStaff && txType == model.TxStockOut && amount > maxStaffStockOut {
		return apperr.Validation("Stock-out amount cannot exceed 50 items")
	}
	return nil
}
