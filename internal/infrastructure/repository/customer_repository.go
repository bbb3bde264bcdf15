package repository

import (
	"context"
	"errors"

	"github.com/seyalworks/tailorshop-api/internal/domain/entity"
	domainRepo "github.com/seyalworks/tailorshop-api/internal/domain/repository"
	"github.com/seyalworks/tailorshop-api/pkg/pagination"
	"gorm.io/gorm"
)

type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) domainRepo.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	return translateDuplicate(r.db.WithContext(ctx).Create(customer).Error,
		"Customer ID or phone number already registered")
}

func (r *customerRepository) GetByCustomerID(ctx context.Context, customerID string) (*entity.Customer, error) {
	var customer entity.Customer
	err := r.db.WithContext(ctx).First(&customer, "customer_id = ?", customerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &customer, err
}

func (r *customerRepository) GetByPhone(ctx context.Context, phone string) (*entity.Customer, error) {
	var customer entity.Customer
	err := r.db.WithContext(ctx).First(&customer, "phone_number = ?", phone).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &customer, err
}

func (r *customerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	return translateDuplicate(r.db.WithContext(ctx).Save(customer).Error,
		"Phone number already registered")
}

func (r *customerRepository) Delete(ctx context.Context, customerID string) error {
	return r.db.WithContext(ctx).Delete(&entity.Customer{}, "customer_id = ?", customerID).Error
}

func (r *customerRepository) Search(ctx context.Context, q string, params *pagination.PaginationParams) ([]entity.Customer, int64, error) {
	var customers []entity.Customer
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Customer{})

	if q != "" {
		query = query.Where("name ILIKE ? OR phone_number ILIKE ?",
			"%"+q+"%", "%"+q+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("name ASC").
		Find(&customers).Error

	return customers, total, err
}
