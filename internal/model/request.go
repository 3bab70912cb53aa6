package model

import (
	"time"

	"github.com/google/uuid"
)

type TransactionType string

const (
	TxStockIn  TransactionType = "stockIn"
	TxStockOut TransactionType = "stockOut"
)

// Label returns the human-readable form used in notification messages
func (t TransactionType) Label() string {
	if t == TxStockIn {
		return "Stock In"
	}
	return "Stock Out"
}

// RequestStatus tracks the workflow state of a stock request.
// pending is the initial state; the other three are terminal.
type RequestStatus string

const (
	StatusPending   RequestStatus = "pending"
	StatusApproved  RequestStatus = "approved"
	StatusRejected  RequestStatus = "rejected"
	StatusCancelled RequestStatus = "cancelled"
)

// Terminal reports whether no further workflow transition is permitted
func (s RequestStatus) Terminal() bool {
	return s == StatusApproved || s == StatusRejected || s == StatusCancelled
}

// ActivityEntry is one line of a request's audit trail
type ActivityEntry struct {
	Action      string    `json:"action"`
	PerformedBy uuid.UUID `json:"performed_by"`
	PerformedAt time.Time `json:"performed_at"`
	Details     string    `json:"details"`
}

// ActivityLog is append-only: entries are never edited, removed, or reordered
type ActivityLog []ActivityEntry

// Request represents one stock movement proposal awaiting admin review
type Request struct {
	BaseModel
	// Owner of the request, set at creation and never changed
	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	User   *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`

	ProductID uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id" validate:"uuid_required"`
	Product   *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`

	TransactionType TransactionType `gorm:"type:varchar(10);not null" json:"transaction_type" validate:"required,oneof=stockIn stockOut"`
	ItemAmount      int             `gorm:"not null" json:"item_amount" validate:"required,gt=0"`
	TransactionDate time.Time       `gorm:"not null" json:"transaction_date" validate:"required"`

	Status RequestStatus `gorm:"type:varchar(10);not null;default:'pending'" json:"status"`

	// Set on approve and reject alike
	ApprovedByID *uuid.UUID `gorm:"type:uuid" json:"approved_by_id,omitempty"`
	ApprovedBy   *User      `gorm:"foreignKey:ApprovedByID" json:"approved_by,omitempty"`
	ApprovedAt   *time.Time `json:"approved_at,omitempty"`

	// Required and non-empty only on reject
	RejectionReason string `gorm:"type:text" json:"rejection_reason,omitempty"`

	LastModifiedByID *uuid.UUID `gorm:"type:uuid" json:"last_modified_by_id,omitempty"`
	LastModifiedBy   *User      `gorm:"foreignKey:LastModifiedByID" json:"last_modified_by,omitempty"`

	ActivityLog ActivityLog `gorm:"serializer:json" json:"activity_log"`
}

// AppendActivity records an action on the request's audit trail
func (r *Request) AppendActivity(action string, performedBy uuid.UUID, details string) {
	r.ActivityLog = append(r.ActivityLog, ActivityEntry{
		Action:      action,
		PerformedBy: performedBy,
		PerformedAt: time.Now(),
		Details:     details,
	})
}
