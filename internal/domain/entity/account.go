package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sothea-dev/shoppos-api/internal/domain/enum"
)

// Account is anyone who can sign in and create orders. Admins and employees
// are the two variants of the same abstraction; both act as order creators
// in the POS flow.
type Account struct {
	ID          uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	Username    string           `gorm:"size:255;unique;not null" json:"username"`
	Password    string           `gorm:"size:255;not null" json:"-"`
	DisplayName string           `gorm:"size:255;not null" json:"display_name"`
	Kind        enum.AccountKind `gorm:"size:50;not null;default:'employee'" json:"kind"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	DeletedAt   gorm.DeletedAt   `gorm:"index" json:"-"`

	// Relationships
	ShopOrders     []ShopOrder     `gorm:"foreignKey:AccountID" json:"-"`
	PurchaseOrders []PurchaseOrder `gorm:"foreignKey:AccountID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new account
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Account model
func (Account) TableName() string {
	return "accounts"
}
