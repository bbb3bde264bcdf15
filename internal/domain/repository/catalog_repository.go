package repository

import (
	"context"

	"github.com/seyalworks/tailorshop-api/internal/domain/entity"
)

// CatalogRepository defines the interface for catalog item data operations
type CatalogRepository interface {
	Create(ctx context.Context, item *entity.CatalogItem) error
	GetByItemID(ctx context.Context, itemID string) (*entity.CatalogItem, error)
	// GetByItemIDs returns the catalog items whose ids are in itemIDs.
	// Missing ids are simply absent from the result.
	GetByItemIDs(ctx context.Context, itemIDs []string) ([]entity.CatalogItem, error)
	// List returns every catalog item ordered by name.
	List(ctx context.Context) ([]entity.CatalogItem, error)
	Update(ctx context.Context, item *entity.CatalogItem) error
	Delete(ctx context.Context, itemID string) error
}
