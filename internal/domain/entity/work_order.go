package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/seyalworks/tailorshop-api/internal/domain/enum"
	"gorm.io/gorm"
)

// WorkOrder represents an Aari embroidery job for a customer. CompletedDate
// is stamped once when the status first transitions to completed and never
// moved afterwards.
type WorkOrder struct {
	ID             uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	OrderID        string               `gorm:"size:20;unique;not null;column:order_id" json:"orderId"`
	CustomerID     string               `gorm:"size:50;not null;index;column:customer_id" json:"customerId"`
	Name           string               `gorm:"size:255;not null" json:"name"`
	PhoneNumber    string               `gorm:"size:15;not null" json:"phoneNumber"`
	SubmissionDate time.Time            `gorm:"not null" json:"submissionDate"`
	DeliveryDate   time.Time            `gorm:"not null" json:"deliveryDate"`
	Address        string               `gorm:"type:text" json:"address"`
	Designs        []string             `gorm:"serializer:json;type:jsonb" json:"designs"`
	WorkType       enum.WorkType        `gorm:"default:0" json:"workType"`
	StaffName      string               `gorm:"size:255" json:"staffName"`
	Status         enum.WorkOrderStatus `gorm:"default:0" json:"status"`
	QuotedPrice    int64                `gorm:"not null" json:"-"` // Stored in paise
	WorkerPrice    *int64               `json:"-"`                 // Stored in paise
	ClientPrice    *int64               `json:"-"`                 // Stored in paise
	CompletedDate  *time.Time           `json:"completedDate,omitempty"`
	CreatedAt      time.Time            `json:"createdAt"`
	UpdatedAt      time.Time            `json:"updatedAt"`
}

// MarshalJSON converts paise amounts to rupees for API responses
func (w WorkOrder) MarshalJSON() ([]byte, error) {
	type Alias WorkOrder
	out := &struct {
		Alias
		QuotedPrice float64  `json:"quotedPrice"`
		WorkerPrice *float64 `json:"workerPrice,omitempty"`
		ClientPrice *float64 `json:"clientPrice,omitempty"`
	}{
		Alias:       Alias(w),
		QuotedPrice: float64(w.QuotedPrice) / 100,
	}
	if w.WorkerPrice != nil {
		v := float64(*w.WorkerPrice) / 100
		out.WorkerPrice = &v
	}
	if w.ClientPrice != nil {
		v := float64(*w.ClientPrice) / 100
		out.ClientPrice = &v
	}
	return json.Marshal(out)
}

// BeforeCreate generates a UUID before creating a new work order
func (w *WorkOrder) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the WorkOrder model
func (WorkOrder) TableName() string {
	return "work_orders"
}
