package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/seyalworks/tailorshop-api/internal/domain/entity"
	"github.com/seyalworks/tailorshop-api/internal/domain/enum"
	"github.com/seyalworks/tailorshop-api/internal/domain/repository"
	"github.com/seyalworks/tailorshop-api/pkg/apperror"
	"github.com/seyalworks/tailorshop-api/pkg/validate"
)

// BillService owns the financial state of bills: the balance and payment
// status derivations, the referential checks against customers and the
// catalog, and the read-side enrichment of bill line items.
type BillService struct {
	billRepo     repository.BillRepository
	catalogRepo  repository.CatalogRepository
	customerRepo repository.CustomerRepository
}

// NewBillService creates a new bill service
func NewBillService(
	billRepo repository.BillRepository,
	catalogRepo repository.CatalogRepository,
	customerRepo repository.CustomerRepository,
) *BillService {
	return &BillService{
		billRepo:     billRepo,
		catalogRepo:  catalogRepo,
		customerRepo: customerRepo,
	}
}

// BillItemInput represents one line of a bill being created
type BillItemInput struct {
	ItemID   string `validate:"required,itemid"`
	Quantity int    `validate:"gte=1"`
}

// CreateBillInput represents the create bill input. Total is supplied by the
// caller and is not derived from item prices.
type CreateBillInput struct {
	CustomerID string          `validate:"required,customerid"`
	Items      []BillItemInput `validate:"required,min=1,dive"`
	Total      float64         `validate:"gte=0"`
	PaidAmount float64         `validate:"gte=0"`
}

// CreateBill validates the referenced customer and catalog items, derives
// the balance and payment status, and persists the bill. The existence
// checks and the write are separate store operations; a reference deleted
// in between is a known best-effort gap, not a guarded transaction.
func (s *BillService) CreateBill(ctx context.Context, input *CreateBillInput) (*entity.Bill, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.GetByCustomerID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	// Batch fetch all referenced items in one query
	itemIDs := make([]string, len(input.Items))
	for i, item := range input.Items {
		itemIDs[i] = item.ItemID
	}

	items, err := s.catalogRepo.GetByItemIDs(ctx, itemIDs)
	if err != nil {
		return nil, err
	}

	known := make(map[string]struct{}, len(items))
	for _, item := range items {
		known[item.ItemID] = struct{}{}
	}

	// Collect every unmatched id, not just the first
	var missing []string
	seen := make(map[string]struct{})
	for _, id := range itemIDs {
		if _, ok := known[id]; ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		missing = append(missing, id)
	}
	if len(missing) > 0 {
		return nil, apperror.NewInvalidReferenceError("catalog items", missing)
	}

	total := toPaise(input.Total)
	paid := toPaise(input.PaidAmount)

	billItems := make([]entity.BillItem, 0, len(input.Items))
	for _, item := range input.Items {
		billItems = append(billItems, entity.BillItem{
			ItemID:   item.ItemID,
			Quantity: item.Quantity,
		})
	}

	bill := &entity.Bill{
		CustomerID:    input.CustomerID,
		Total:         total,
		PaidAmount:    paid,
		Balance:       total - paid,
		PaymentStatus: enum.PaymentStatusFor(total, paid),
		Date:          time.Now(),
		Items:         billItems,
	}

	if err := s.billRepo.Create(ctx, bill); err != nil {
		return nil, err
	}

	return bill, nil
}

// RecordPayment overwrites the bill's paid amount with a new absolute total
// and recomputes the derived fields. It is a replace, not an accumulate, so
// repeating the same amount yields the same stored state.
func (s *BillService) RecordPayment(ctx context.Context, billID uuid.UUID, paidAmount float64) (*entity.Bill, error) {
	if paidAmount < 0 {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "paidAmount", Message: "must be at least 0"},
		})
	}

	bill, err := s.billRepo.GetByID(ctx, billID)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}

	bill.PaidAmount = toPaise(paidAmount)
	bill.Balance = bill.Total - bill.PaidAmount
	bill.PaymentStatus = enum.PaymentStatusFor(bill.Total, bill.PaidAmount)

	if err := s.billRepo.Update(ctx, bill); err != nil {
		return nil, err
	}

	return bill, nil
}

// EnrichedBillItem is a bill line joined with its catalog snapshot
type EnrichedBillItem struct {
	ItemID   string  `json:"itemId"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// EnrichedBill is the read-side view of a bill
type EnrichedBill struct {
	ID            uuid.UUID          `json:"id"`
	CustomerID    string             `json:"customerId"`
	Items         []EnrichedBillItem `json:"items"`
	Total         float64            `json:"total"`
	PaidAmount    float64            `json:"paidAmount"`
	Balance       float64            `json:"balance"`
	PaymentStatus enum.PaymentStatus `json:"paymentStatus"`
	Date          time.Time          `json:"date"`
}

// ListBillsForCustomer returns the customer's bills newest first, each line
// item joined against the catalog. A nonexistent customer yields an empty
// list, not an error. Lines whose catalog item has since been deleted are
// dropped from the view.
func (s *BillService) ListBillsForCustomer(ctx context.Context, customerID string) ([]EnrichedBill, error) {
	if !validate.CustomerID(customerID) {
		return nil, apperror.NewBadRequestError("Invalid customer ID format")
	}

	customer, err := s.customerRepo.GetByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return []EnrichedBill{}, nil
	}

	bills, err := s.billRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	// One catalog fetch for every referenced item across all bills
	idSet := make(map[string]struct{})
	var itemIDs []string
	for _, bill := range bills {
		for _, line := range bill.Items {
			if _, ok := idSet[line.ItemID]; !ok {
				idSet[line.ItemID] = struct{}{}
				itemIDs = append(itemIDs, line.ItemID)
			}
		}
	}

	catalog := make(map[string]*entity.CatalogItem)
	if len(itemIDs) > 0 {
		items, err := s.catalogRepo.GetByItemIDs(ctx, itemIDs)
		if err != nil {
			return nil, err
		}
		for i := range items {
			catalog[items[i].ItemID] = &items[i]
		}
	}

	enriched := make([]EnrichedBill, 0, len(bills))
	for _, bill := range bills {
		view := EnrichedBill{
			ID:            bill.ID,
			CustomerID:    bill.CustomerID,
			Items:         make([]EnrichedBillItem, 0, len(bill.Items)),
			Total:         toRupees(bill.Total),
			PaidAmount:    toRupees(bill.PaidAmount),
			Balance:       toRupees(bill.Balance),
			PaymentStatus: bill.PaymentStatus,
			Date:          bill.Date,
		}
		for _, line := range bill.Items {
			item, ok := catalog[line.ItemID]
			if !ok {
				// Catalog item deleted after the bill was written
				continue
			}
			view.Items = append(view.Items, EnrichedBillItem{
				ItemID:   line.ItemID,
				Name:     item.Name,
				Price:    toRupees(item.Price),
				Quantity: line.Quantity,
			})
		}
		enriched = append(enriched, view)
	}

	return enriched, nil
}
