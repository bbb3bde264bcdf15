package service

import (
	"context"

	"github.com/seyalworks/tailorshop-api/internal/domain/entity"
	"github.com/seyalworks/tailorshop-api/internal/domain/repository"
	"github.com/seyalworks/tailorshop-api/pkg/validate"
)

// ShopService handles the singleton shop profile
type ShopService struct {
	shopRepo repository.ShopRepository
}

// NewShopService creates a new shop service
func NewShopService(shopRepo repository.ShopRepository) *ShopService {
	return &ShopService{shopRepo: shopRepo}
}

// GetShop returns the shop profile, creating a blank row if none exists yet.
func (s *ShopService) GetShop(ctx context.Context) (*entity.Shop, error) {
	shop, err := s.shopRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if shop != nil {
		return shop, nil
	}

	shop = &entity.Shop{Name: "Tailor Shop"}
	if err := s.shopRepo.Create(ctx, shop); err != nil {
		return nil, err
	}
	return shop, nil
}

// UpdateShopInput represents the update shop input
type UpdateShopInput struct {
	Name        *string `validate:"omitempty,min=1,max=255"`
	LogoURL     *string `validate:"omitempty,url"`
	BannerURL   *string `validate:"omitempty,url"`
	Address     *string
	PhoneNumber *string
}

// UpdateShop applies a partial update to the shop profile
func (s *ShopService) UpdateShop(ctx context.Context, input *UpdateShopInput) (*entity.Shop, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	shop, err := s.GetShop(ctx)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		shop.Name = *input.Name
	}
	if input.LogoURL != nil {
		shop.LogoURL = *input.LogoURL
	}
	if input.BannerURL != nil {
		shop.BannerURL = *input.BannerURL
	}
	if input.Address != nil {
		shop.Address = *input.Address
	}
	if input.PhoneNumber != nil {
		phone := validate.NormalizePhone(*input.PhoneNumber)
		shop.PhoneNumber = phone
	}

	if err := s.shopRepo.Update(ctx, shop); err != nil {
		return nil, err
	}

	return shop, nil
}
