package service

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/seyalworks/tailorshop-api/internal/domain/entity"
	"github.com/seyalworks/tailorshop-api/internal/domain/enum"
	"github.com/seyalworks/tailorshop-api/pkg/pagination"
)

// In-memory repository fakes backing the service tests. They mirror the
// store contract: lookups return (nil, nil) when nothing matches.

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[string]*entity.Customer)}
}

func (r *fakeCustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	cp := *customer
	r.customers[customer.CustomerID] = &cp
	return nil
}

func (r *fakeCustomerRepo) GetByCustomerID(ctx context.Context, customerID string) (*entity.Customer, error) {
	c, ok := r.customers[customerID]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCustomerRepo) GetByPhone(ctx context.Context, phone string) (*entity.Customer, error) {
	for _, c := range r.customers {
		if c.PhoneNumber == phone {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) Update(ctx context.Context, customer *entity.Customer) error {
	cp := *customer
	r.customers[customer.CustomerID] = &cp
	return nil
}

func (r *fakeCustomerRepo) Delete(ctx context.Context, customerID string) error {
	delete(r.customers, customerID)
	return nil
}

func (r *fakeCustomerRepo) Search(ctx context.Context, q string, params *pagination.PaginationParams) ([]entity.Customer, int64, error) {
	var matched []entity.Customer
	needle := strings.ToLower(q)
	for _, c := range r.customers {
		if strings.Contains(strings.ToLower(c.Name), needle) || strings.Contains(c.PhoneNumber, q) {
			matched = append(matched, *c)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Name < matched[j].Name })
	return matched, int64(len(matched)), nil
}

type fakeCatalogRepo struct {
	items map[string]*entity.CatalogItem
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{items: make(map[string]*entity.CatalogItem)}
}

func (r *fakeCatalogRepo) Create(ctx context.Context, item *entity.CatalogItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	cp := *item
	r.items[item.ItemID] = &cp
	return nil
}

func (r *fakeCatalogRepo) GetByItemID(ctx context.Context, itemID string) (*entity.CatalogItem, error) {
	it, ok := r.items[itemID]
	if !ok {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (r *fakeCatalogRepo) GetByItemIDs(ctx context.Context, itemIDs []string) ([]entity.CatalogItem, error) {
	var found []entity.CatalogItem
	for _, id := range itemIDs {
		if it, ok := r.items[id]; ok {
			found = append(found, *it)
		}
	}
	return found, nil
}

func (r *fakeCatalogRepo) List(ctx context.Context) ([]entity.CatalogItem, error) {
	var items []entity.CatalogItem
	for _, it := range r.items {
		items = append(items, *it)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

func (r *fakeCatalogRepo) Update(ctx context.Context, item *entity.CatalogItem) error {
	cp := *item
	r.items[item.ItemID] = &cp
	return nil
}

func (r *fakeCatalogRepo) Delete(ctx context.Context, itemID string) error {
	delete(r.items, itemID)
	return nil
}

type fakeBillRepo struct {
	bills map[uuid.UUID]*entity.Bill
}

func newFakeBillRepo() *fakeBillRepo {
	return &fakeBillRepo{bills: make(map[uuid.UUID]*entity.Bill)}
}

func (r *fakeBillRepo) Create(ctx context.Context, bill *entity.Bill) error {
	if bill.ID == uuid.Nil {
		bill.ID = uuid.New()
	}
	for i := range bill.Items {
		if bill.Items[i].ID == uuid.Nil {
			bill.Items[i].ID = uuid.New()
		}
		bill.Items[i].BillID = bill.ID
	}
	cp := *bill
	cp.Items = append([]entity.BillItem(nil), bill.Items...)
	r.bills[bill.ID] = &cp
	return nil
}

func (r *fakeBillRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	b, ok := r.bills[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	cp.Items = append([]entity.BillItem(nil), b.Items...)
	return &cp, nil
}

func (r *fakeBillRepo) ListByCustomer(ctx context.Context, customerID string) ([]entity.Bill, error) {
	var bills []entity.Bill
	for _, b := range r.bills {
		if b.CustomerID == customerID {
			cp := *b
			cp.Items = append([]entity.BillItem(nil), b.Items...)
			bills = append(bills, cp)
		}
	}
	sort.Slice(bills, func(i, j int) bool { return bills[i].Date.After(bills[j].Date) })
	return bills, nil
}

func (r *fakeBillRepo) Update(ctx context.Context, bill *entity.Bill) error {
	cp := *bill
	cp.Items = append([]entity.BillItem(nil), bill.Items...)
	r.bills[bill.ID] = &cp
	return nil
}

type fakeWorkOrderRepo struct {
	orders map[string]*entity.WorkOrder
}

func newFakeWorkOrderRepo() *fakeWorkOrderRepo {
	return &fakeWorkOrderRepo{orders: make(map[string]*entity.WorkOrder)}
}

func (r *fakeWorkOrderRepo) Create(ctx context.Context, order *entity.WorkOrder) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	cp := *order
	r.orders[order.OrderID] = &cp
	return nil
}

func (r *fakeWorkOrderRepo) GetByOrderID(ctx context.Context, orderID string) (*entity.WorkOrder, error) {
	o, ok := r.orders[orderID]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *fakeWorkOrderRepo) Update(ctx context.Context, order *entity.WorkOrder) error {
	cp := *order
	r.orders[order.OrderID] = &cp
	return nil
}

func (r *fakeWorkOrderRepo) Delete(ctx context.Context, orderID string) error {
	delete(r.orders, orderID)
	return nil
}

func (r *fakeWorkOrderRepo) List(ctx context.Context, status *enum.WorkOrderStatus, params *pagination.PaginationParams) ([]entity.WorkOrder, int64, error) {
	var orders []entity.WorkOrder
	for _, o := range r.orders {
		if status != nil && o.Status != *status {
			continue
		}
		orders = append(orders, *o)
	}
	// Same sort key as the store: newest submission first
	sort.Slice(orders, func(i, j int) bool { return orders[i].SubmissionDate.After(orders[j].SubmissionDate) })
	return orders, int64(len(orders)), nil
}
