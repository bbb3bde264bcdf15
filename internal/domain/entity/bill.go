package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/seyalworks/tailorshop-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Bill represents a composite bill for one customer. Total is supplied by
// the caller, not derived from item prices; Balance and PaymentStatus are
// derived from (Total, PaidAmount) and recomputed on every write.
type Bill struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID    string             `gorm:"size:50;not null;index;column:customer_id" json:"customerId"`
	Total         int64              `gorm:"not null;default:0" json:"-"` // Stored in paise
	PaidAmount    int64              `gorm:"not null;default:0" json:"-"` // Stored in paise
	Balance       int64              `gorm:"not null;default:0" json:"-"` // Stored in paise, negative when overpaid
	PaymentStatus enum.PaymentStatus `gorm:"default:0" json:"paymentStatus"`
	Date          time.Time          `gorm:"not null" json:"date"`
	CreatedAt     time.Time          `json:"-"`
	UpdatedAt     time.Time          `json:"-"`

	// Relationships
	Items []BillItem `gorm:"foreignKey:BillID" json:"items,omitempty"`
}

// MarshalJSON converts paise amounts to rupees for API responses
func (b Bill) MarshalJSON() ([]byte, error) {
	type Alias Bill
	return json.Marshal(&struct {
		Alias
		Total      float64 `json:"total"`
		PaidAmount float64 `json:"paidAmount"`
		Balance    float64 `json:"balance"`
	}{
		Alias:      Alias(b),
		Total:      float64(b.Total) / 100,
		PaidAmount: float64(b.PaidAmount) / 100,
		Balance:    float64(b.Balance) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new bill
func (b *Bill) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Bill model
func (Bill) TableName() string {
	return "bills"
}

// BillItem is one line of a bill: a weak reference to a catalog item plus
// a quantity.
type BillItem struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	BillID   uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	ItemID   string    `gorm:"size:20;not null;column:item_id" json:"itemId"`
	Quantity int       `gorm:"not null;default:1" json:"quantity"`
}

// BeforeCreate generates a UUID before creating a new bill item
func (i *BillItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the BillItem model
func (BillItem) TableName() string {
	return "bill_items"
}
