package repository

import (
	"context"
	"errors"

	"github.com/seyalworks/tailorshop-api/internal/domain/entity"
	domainRepo "github.com/seyalworks/tailorshop-api/internal/domain/repository"
	"gorm.io/gorm"
)

type shopRepository struct {
	db *gorm.DB
}

// NewShopRepository creates a new shop repository
func NewShopRepository(db *gorm.DB) domainRepo.ShopRepository {
	return &shopRepository{db: db}
}

func (r *shopRepository) Get(ctx context.Context) (*entity.Shop, error) {
	var shop entity.Shop
	err := r.db.WithContext(ctx).Order("created_at ASC").First(&shop).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &shop, err
}

func (r *shopRepository) Create(ctx context.Context, shop *entity.Shop) error {
	return r.db.WithContext(ctx).Create(shop).Error
}

func (r *shopRepository) Update(ctx context.Context, shop *entity.Shop) error {
	return r.db.WithContext(ctx).Save(shop).Error
}
