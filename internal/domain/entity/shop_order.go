package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/sothea-dev/shoppos-api/internal/domain/enum"
	"github.com/sothea-dev/shoppos-api/internal/domain/pricing"
)

// SelectedOptionList holds the options the customer picked for one cart
// line, stored as a JSON column and passed through untouched to invoice
// rendering.
type SelectedOptionList []pricing.Option

// Scan implements sql.Scanner for JSON columns
func (l *SelectedOptionList) Scan(value interface{}) error {
	if value == nil {
		*l = SelectedOptionList{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("failed to scan SelectedOptionList: %v", value)
	}
	return json.Unmarshal(bytes, l)
}

// Value implements driver.Valuer for JSON columns
func (l SelectedOptionList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	return json.Marshal(l)
}

// ShopOrder represents a point-of-sale transaction. The total is computed
// once at creation from its line items and never recomputed afterwards.
type ShopOrder struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceNo     string             `gorm:"size:100;unique;not null" json:"invoice_no"`
	AccountID     uuid.UUID          `gorm:"type:uuid;not null;index" json:"account_id"`
	PaidBy        string             `gorm:"size:255" json:"paid_by"`
	PaymentMethod enum.PaymentMethod `gorm:"size:50;not null;default:'cash'" json:"payment_method"`
	Currency      *enum.Currency     `gorm:"size:10" json:"currency,omitempty"`
	TotalPay      decimal.Decimal    `gorm:"type:decimal(12,2);not null" json:"-"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
	DeletedAt     gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Creator Account     `gorm:"foreignKey:AccountID" json:"-"`
	Items   []OrderItem `gorm:"foreignKey:ShopOrderID" json:"items,omitempty"`
}

// MarshalJSON custom marshaler to emit the total as a JSON number and the
// resolved creator display name
func (o ShopOrder) MarshalJSON() ([]byte, error) {
	type Alias ShopOrder
	creator := o.PaidBy
	if o.Creator.DisplayName != "" {
		creator = o.Creator.DisplayName
	}
	return json.Marshal(&struct {
		Alias
		TotalPay    float64 `json:"total_pay"`
		CreatorName string  `json:"creator_name"`
	}{
		Alias:       Alias(o),
		TotalPay:    o.TotalPay.InexactFloat64(),
		CreatorName: creator,
	})
}

// BeforeCreate generates a UUID before creating a new shop order
func (o *ShopOrder) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ShopOrder model
func (ShopOrder) TableName() string {
	return "shop_orders"
}

// OrderItem represents a line item in a shop order. Quantity is a decimal
// because the POS cart adjusts in 0.01 steps (weighed goods).
type OrderItem struct {
	ID          uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	ShopOrderID uuid.UUID          `gorm:"type:uuid;not null;index" json:"shop_order_id"`
	ItemID      uuid.UUID          `gorm:"type:uuid;not null;index" json:"item_id"`
	Quantity    decimal.Decimal    `gorm:"type:decimal(10,2);not null" json:"-"`
	Price       decimal.Decimal    `gorm:"type:decimal(12,2);not null" json:"-"`
	Discount    decimal.Decimal    `gorm:"type:decimal(5,2);not null;default:0" json:"-"`
	Options     SelectedOptionList `gorm:"type:jsonb" json:"options"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
	DeletedAt   gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Order ShopOrder `gorm:"foreignKey:ShopOrderID" json:"-"`
	Item  Item      `gorm:"foreignKey:ItemID" json:"item,omitempty"`
}

// MarshalJSON custom marshaler to emit monetary fields as JSON numbers
func (oi OrderItem) MarshalJSON() ([]byte, error) {
	type Alias OrderItem
	return json.Marshal(&struct {
		Alias
		Quantity float64 `json:"quantity"`
		Price    float64 `json:"price"`
		Discount float64 `json:"discount"`
	}{
		Alias:    Alias(oi),
		Quantity: oi.Quantity.InexactFloat64(),
		Price:    oi.Price.InexactFloat64(),
		Discount: oi.Discount.InexactFloat64(),
	})
}

// BeforeCreate generates a UUID before creating a new order item
func (oi *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if oi.ID == uuid.Nil {
		oi.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}
