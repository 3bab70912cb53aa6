package model

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotifRequestCreated NotificationType = "request_created"
	NotifRequestUpdated NotificationType = "request_updated"
	NotifRequestDeleted NotificationType = "request_deleted"
)

// Notification is written only as a side effect of request operations.
// It is owned by its recipient: only the recipient may mark it read or delete it.
type Notification struct {
	BaseModel
	RecipientID uuid.UUID `gorm:"type:uuid;not null;index:idx_recipient_unread,priority:1" json:"recipient_id"`
	Recipient   *User     `gorm:"foreignKey:RecipientID" json:"recipient,omitempty"`

	SenderID uuid.UUID `gorm:"type:uuid;not null" json:"sender_id"`
	Sender   *User     `gorm:"foreignKey:SenderID" json:"sender,omitempty"`

	Type    NotificationType `gorm:"type:varchar(20);not null" json:"type"`
	Title   string           `gorm:"type:varchar(255);not null" json:"title"`
	Message string           `gorm:"type:text;not null" json:"message"`

	// Optional back references; the request may no longer exist by the time
	// the notification is read
	RelatedRequestID *uuid.UUID `gorm:"type:uuid" json:"related_request_id,omitempty"`
	RelatedProductID *uuid.UUID `gorm:"type:uuid" json:"related_product_id,omitempty"`
	RelatedProduct   *Product   `gorm:"foreignKey:RelatedProductID" json:"related_product,omitempty"`

	IsRead bool       `gorm:"default:false;index:idx_recipient_unread,priority:2" json:"is_read"`
	ReadAt *time.Time `json:"read_at,omitempty"`
}
