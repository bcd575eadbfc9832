package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/sothea-dev/shoppos-api/internal/domain/enum"
)

// PurchaseOrder represents an outbound order to a supplier. Its total
// contributes to the expense series only while the status is complete.
type PurchaseOrder struct {
	ID               uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceNo        string              `gorm:"size:100;unique;not null" json:"invoice_no"`
	SupplierID       uuid.UUID           `gorm:"type:uuid;not null;index" json:"supplier_id"`
	AccountID        uuid.UUID           `gorm:"type:uuid;not null;index" json:"account_id"`
	PurchaseDate     *time.Time          `gorm:"type:date" json:"purchase_date,omitempty"`
	ExpectedDelivery *time.Time          `gorm:"type:date" json:"expected_delivery,omitempty"`
	Status           enum.PurchaseStatus `gorm:"size:50;not null;default:'pending'" json:"status"`
	TotalPrice       decimal.Decimal     `gorm:"type:decimal(12,2);not null" json:"-"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
	DeletedAt        gorm.DeletedAt      `gorm:"index" json:"-"`

	// Relationships
	Supplier Supplier            `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	Creator  Account             `gorm:"foreignKey:AccountID" json:"-"`
	Items    []PurchaseOrderItem `gorm:"foreignKey:PurchaseOrderID" json:"items,omitempty"`
}

// MarshalJSON custom marshaler to emit the total as a JSON number and the
// resolved creator display name
func (p PurchaseOrder) MarshalJSON() ([]byte, error) {
	type Alias PurchaseOrder
	return json.Marshal(&struct {
		Alias
		TotalPrice  float64 `json:"total_price"`
		CreatorName string  `json:"creator_name,omitempty"`
	}{
		Alias:       Alias(p),
		TotalPrice:  p.TotalPrice.InexactFloat64(),
		CreatorName: p.Creator.DisplayName,
	})
}

// BeforeCreate generates a UUID before creating a new purchase order
func (p *PurchaseOrder) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PurchaseOrder model
func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}

// PurchaseOrderItem is one stock line on a purchase order. Quantities are
// whole units of at least one.
type PurchaseOrderItem struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	PurchaseOrderID uuid.UUID       `gorm:"type:uuid;not null;index" json:"purchase_order_id"`
	Name            string          `gorm:"size:255;not null" json:"name"`
	Quantity        int             `gorm:"not null" json:"quantity"`
	Price           decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"-"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	DeletedAt       gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	PurchaseOrder PurchaseOrder `gorm:"foreignKey:PurchaseOrderID" json:"-"`
}

// MarshalJSON custom marshaler to emit the price as a JSON number
func (pi PurchaseOrderItem) MarshalJSON() ([]byte, error) {
	type Alias PurchaseOrderItem
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
	}{
		Alias: Alias(pi),
		Price: pi.Price.InexactFloat64(),
	})
}

// BeforeCreate generates a UUID before creating a new purchase order item
func (pi *PurchaseOrderItem) BeforeCreate(tx *gorm.DB) error {
	if pi.ID == uuid.Nil {
		pi.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PurchaseOrderItem model
func (PurchaseOrderItem) TableName() string {
	return "purchase_order_items"
}
