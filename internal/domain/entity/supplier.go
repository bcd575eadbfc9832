package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sothea-dev/shoppos-api/internal/domain/enum"
)

// Supplier represents a stock supplier
type Supplier struct {
	ID        uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	Name      string              `gorm:"size:255;not null" json:"name"`
	Email     *string             `gorm:"size:255;uniqueIndex" json:"email,omitempty"`
	Contact   *string             `gorm:"size:50" json:"contact,omitempty"`
	Address   *string             `gorm:"size:255" json:"address,omitempty"`
	Status    enum.SupplierStatus `gorm:"size:50;not null;default:'active'" json:"status"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
	DeletedAt gorm.DeletedAt      `gorm:"index" json:"-"`

	// Relationships
	PurchaseOrders []PurchaseOrder `gorm:"foreignKey:SupplierID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new supplier
func (s *Supplier) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Supplier model
func (Supplier) TableName() string {
	return "suppliers"
}
