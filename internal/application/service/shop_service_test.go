package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seyalworks/tailorshop-api/internal/domain/entity"
	"github.com/seyalworks/tailorshop-api/internal/domain/repository"
)

type fakeShopRepo struct {
	shop *entity.Shop
}

func (r *fakeShopRepo) Get(ctx context.Context) (*entity.Shop, error) {
	if r.shop == nil {
		return nil, nil
	}
	cp := *r.shop
	return &cp, nil
}

func (r *fakeShopRepo) Create(ctx context.Context, shop *entity.Shop) error {
	cp := *shop
	r.shop = &cp
	return nil
}

func (r *fakeShopRepo) Update(ctx context.Context, shop *entity.Shop) error {
	cp := *shop
	r.shop = &cp
	return nil
}

func TestGetShopCreatesRowOnFirstRead(t *testing.T) {
	repo := &fakeShopRepo{}
	svc := NewShopService(repo)

	shop, err := svc.GetShop(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Tailor Shop", shop.Name)
	assert.NotNil(t, repo.shop)

	// A second read returns the same row, not another create
	again, err := svc.GetShop(context.Background())
	require.NoError(t, err)
	assert.Equal(t, shop.Name, again.Name)
}

func TestUpdateShopPartial(t *testing.T) {
	repo := &fakeShopRepo{shop: &entity.Shop{
		Name:    "Seyal Works",
		Address: "12 Bazaar St",
	}}
	svc := NewShopService(repo)

	logo := "https://cdn.example.com/logo.png"
	phone := "9876543210"
	shop, err := svc.UpdateShop(context.Background(), &UpdateShopInput{
		LogoURL:     &logo,
		PhoneNumber: &phone,
	})
	require.NoError(t, err)

	assert.Equal(t, logo, shop.LogoURL)
	assert.Equal(t, "+919876543210", shop.PhoneNumber)
	// Untouched fields survive
	assert.Equal(t, "Seyal Works", shop.Name)
	assert.Equal(t, "12 Bazaar St", shop.Address)
}

func TestUpdateShopRejectsBadLogoURL(t *testing.T) {
	svc := NewShopService(&fakeShopRepo{})

	bad := "not a url"
	_, err := svc.UpdateShop(context.Background(), &UpdateShopInput{LogoURL: &bad})
	require.Error(t, err)
}

type fakeAnalyticsRepo struct {
	stats repository.DashboardStats
}

func (r *fakeAnalyticsRepo) GetDashboardStats(ctx context.Context) (*repository.DashboardStats, error) {
	cp := r.stats
	return &cp, nil
}

func TestDashboardStatsConvertsMoney(t *testing.T) {
	svc := NewDashboardService(&fakeAnalyticsRepo{stats: repository.DashboardStats{
		TotalCustomers:      42,
		TotalCatalogItems:   7,
		TotalBills:          120,
		OutstandingBalance:  1234550,
		PendingWorkOrders:   3,
		CompletedWorkOrders: 9,
	}})

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(42), stats.TotalCustomers)
	assert.Equal(t, 12345.50, stats.OutstandingBalance)
	assert.Equal(t, int64(3), stats.PendingWorkOrders)
	assert.Equal(t, int64(9), stats.CompletedWorkOrders)
}
