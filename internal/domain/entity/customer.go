package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer represents a customer of the shop
type Customer struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID    string    `gorm:"size:50;unique;not null;column:customer_id" json:"customerId"`
	Name          string    `gorm:"size:255;not null" json:"name"`
	PhoneNumber   string    `gorm:"size:15;unique;not null" json:"phoneNumber"`
	Address       string    `gorm:"type:text" json:"address"`
	Town          *string   `gorm:"size:100" json:"town,omitempty"`
	District      string    `gorm:"size:100;default:'Dindigul'" json:"district"`
	State         string    `gorm:"size:100;default:'Tamil Nadu'" json:"state"`
	MaritalStatus string    `gorm:"size:20;default:'Married'" json:"maritalStatus"`
	Favorite      bool      `gorm:"default:false" json:"favorite"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// BeforeCreate generates a UUID before creating a new customer
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}
