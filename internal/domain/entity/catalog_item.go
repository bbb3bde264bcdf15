package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogItem represents a priced item on the billing catalog. Bills refer
// to items by ItemID only; editing or deleting an item never touches the
// bills that already reference it.
type CatalogItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ItemID    string    `gorm:"size:20;unique;not null;column:item_id" json:"itemId"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Price     int64     `gorm:"not null;default:0" json:"-"` // Stored in paise
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MarshalJSON converts the paise price to rupees for API responses
func (i CatalogItem) MarshalJSON() ([]byte, error) {
	type Alias CatalogItem
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
	}{
		Alias: Alias(i),
		Price: float64(i.Price) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new catalog item
func (i *CatalogItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// BeforeSave restamps UpdatedAt on every write, creation included.
func (i *CatalogItem) BeforeSave(tx *gorm.DB) error {
	i.UpdatedAt = time.Now()
	return nil
}

// TableName returns the table name for the CatalogItem model
func (CatalogItem) TableName() string {
	return "catalog_items"
}
