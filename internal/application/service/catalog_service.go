package service

import (
	"context"

	"github.com/seyalworks/tailorshop-api/internal/domain/entity"
	"github.com/seyalworks/tailorshop-api/internal/domain/repository"
	"github.com/seyalworks/tailorshop-api/pkg/apperror"
	"github.com/seyalworks/tailorshop-api/pkg/identifier"
	"github.com/seyalworks/tailorshop-api/pkg/validate"
)

// CatalogService handles billing catalog item operations
type CatalogService struct {
	catalogRepo repository.CatalogRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(catalogRepo repository.CatalogRepository) *CatalogService {
	return &CatalogService{catalogRepo: catalogRepo}
}

// CreateItemInput represents the create catalog item input
type CreateItemInput struct {
	Name  string  `validate:"required,min=1,max=255"`
	Price float64 `validate:"gte=0"`
}

// CreateItem assigns an item id and persists a catalog item.
func (s *CatalogService) CreateItem(ctx context.Context, input *CreateItemInput) (*entity.CatalogItem, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	itemID, err := s.freshItemID(ctx)
	if err != nil {
		return nil, err
	}

	item := &entity.CatalogItem{
		ItemID: itemID,
		Name:   input.Name,
		Price:  toPaise(input.Price),
	}

	if err := s.catalogRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// freshItemID generates an item id that is not yet taken. Collisions on a
// 7-character alphanumeric suffix are rare; a handful of retries is plenty.
func (s *CatalogService) freshItemID(ctx context.Context) (string, error) {
	for range [5]struct{}{} {
		id := identifier.NewItemID()
		existing, err := s.catalogRepo.GetByItemID(ctx, id)
		if err != nil {
			return "", err
		}
		if existing == nil {
			return id, nil
		}
	}
	return "", apperror.NewConflictError("Could not allocate a unique item ID")
}

// ListItems returns every catalog item sorted by name
func (s *CatalogService) ListItems(ctx context.Context) ([]entity.CatalogItem, error) {
	return s.catalogRepo.List(ctx)
}

// UpdateItemInput represents the update catalog item input; the item is
// addressed by its id carried in the body.
type UpdateItemInput struct {
	ItemID string   `validate:"required,itemid"`
	Name   *string  `validate:"omitempty,min=1,max=255"`
	Price  *float64 `validate:"omitempty,gte=0"`
}

// UpdateItem applies a partial update. UpdatedAt is restamped on every save
// regardless of which fields changed.
func (s *CatalogService) UpdateItem(ctx context.Context, input *UpdateItemInput) (*entity.CatalogItem, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	item, err := s.catalogRepo.GetByItemID(ctx, input.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Catalog item")
	}

	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.Price != nil {
		item.Price = toPaise(*input.Price)
	}

	if err := s.catalogRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// DeleteItem removes a catalog item. Bills referencing it keep their line
// rows; the reference simply stops resolving on enriched reads.
func (s *CatalogService) DeleteItem(ctx context.Context, itemID string) error {
	if !validate.ItemID(itemID) {
		return apperror.NewBadRequestError("Invalid item ID format")
	}

	item, err := s.catalogRepo.GetByItemID(ctx, itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NewNotFoundError("Catalog item")
	}

	return s.catalogRepo.Delete(ctx, itemID)
}
