package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ItemOption is one configurable option on a catalog item, e.g.
// {Name: "Sugar", Values: ["0%", "50%", "100%"]}. Options are display
// metadata only; they never change the price.
type ItemOption struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// ItemOptionList is stored as a JSON column.
type ItemOptionList []ItemOption

// Scan implements sql.Scanner for JSON columns
func (l *ItemOptionList) Scan(value interface{}) error {
	if value == nil {
		*l = ItemOptionList{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("failed to scan ItemOptionList: %v", value)
	}
	return json.Unmarshal(bytes, l)
}

// Value implements driver.Valuer for JSON columns
func (l ItemOptionList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	return json.Marshal(l)
}

// Item represents a catalog item sold at the shop
type Item struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name      string          `gorm:"size:255;not null" json:"name"`
	Price     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"-"`
	Image     *string         `gorm:"size:255" json:"image,omitempty"`
	Options   ItemOptionList  `gorm:"type:jsonb" json:"options"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	DeletedAt gorm.DeletedAt  `gorm:"index" json:"-"`
}

// MarshalJSON custom marshaler to emit price as a JSON number
func (i Item) MarshalJSON() ([]byte, error) {
	type Alias Item
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
	}{
		Alias: Alias(i),
		Price: i.Price.InexactFloat64(),
	})
}

// BeforeCreate generates a UUID before creating a new item
func (i *Item) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Item model
func (Item) TableName() string {
	return "items"
}
