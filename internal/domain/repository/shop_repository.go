package repository

import (
	"context"

	"github.com/seyalworks/tailorshop-api/internal/domain/entity"
)

// ShopRepository defines the interface for the singleton shop profile row
type ShopRepository interface {
	Get(ctx context.Context) (*entity.Shop, error)
	Create(ctx context.Context, shop *entity.Shop) error
	Update(ctx context.Context, shop *entity.Shop) error
}
