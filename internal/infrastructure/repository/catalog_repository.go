package repository

import (
	"context"
	"errors"

	"github.com/seyalworks/tailorshop-api/internal/domain/entity"
	domainRepo "github.com/seyalworks/tailorshop-api/internal/domain/repository"
	"gorm.io/gorm"
)

type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository creates a new catalog item repository
func NewCatalogRepository(db *gorm.DB) domainRepo.CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) Create(ctx context.Context, item *entity.CatalogItem) error {
	return translateDuplicate(r.db.WithContext(ctx).Create(item).Error,
		"Item ID already exists")
}

func (r *catalogRepository) GetByItemID(ctx context.Context, itemID string) (*entity.CatalogItem, error) {
	var item entity.CatalogItem
	err := r.db.WithContext(ctx).First(&item, "item_id = ?", itemID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *catalogRepository) GetByItemIDs(ctx context.Context, itemIDs []string) ([]entity.CatalogItem, error) {
	var items []entity.CatalogItem
	err := r.db.WithContext(ctx).Where("item_id IN ?", itemIDs).Find(&items).Error
	return items, err
}

func (r *catalogRepository) List(ctx context.Context) ([]entity.CatalogItem, error) {
	var items []entity.CatalogItem
	err := r.db.WithContext(ctx).Order("name ASC").Find(&items).Error
	return items, err
}

func (r *catalogRepository) Update(ctx context.Context, item *entity.CatalogItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *catalogRepository) Delete(ctx context.Context, itemID string) error {
	return r.db.WithContext(ctx).Delete(&entity.CatalogItem{}, "item_id = ?", itemID).Error
}
