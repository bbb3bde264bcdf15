package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Shop holds the single shop profile row used on printed bills and the
// storefront page.
type Shop struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	LogoURL     string    `gorm:"size:500" json:"logoUrl"`
	BannerURL   string    `gorm:"size:500" json:"bannerUrl"`
	Address     string    `gorm:"type:text" json:"address"`
	PhoneNumber string    `gorm:"size:15" json:"phoneNumber"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// BeforeCreate generates a UUID before creating the shop row
func (s *Shop) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Shop model
func (Shop) TableName() string {
	return "shops"
}
