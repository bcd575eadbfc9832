package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sothea-dev/shoppos-api/internal/domain/enum"
)

// ReceiveOrder tracks the delivery of one purchase order. At most one
// receive order exists per purchase order.
type ReceiveOrder struct {
	ID              uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	PurchaseOrderID uuid.UUID           `gorm:"type:uuid;not null;uniqueIndex" json:"purchase_order_id"`
	AccountID       *uuid.UUID          `gorm:"type:uuid" json:"account_id,omitempty"`
	Status          enum.PurchaseStatus `gorm:"size:50;not null;default:'pending'" json:"status"`
	ReceiveAt       *time.Time          `json:"receive_at,omitempty"`
	Note            *string             `gorm:"type:text" json:"note,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
	DeletedAt       gorm.DeletedAt      `gorm:"index" json:"-"`

	// Relationships
	PurchaseOrder PurchaseOrder `gorm:"foreignKey:PurchaseOrderID" json:"purchase_order,omitempty"`
	Receiver      *Account      `gorm:"foreignKey:AccountID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new receive order
func (r *ReceiveOrder) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ReceiveOrder model
func (ReceiveOrder) TableName() string {
	return "receive_orders"
}
