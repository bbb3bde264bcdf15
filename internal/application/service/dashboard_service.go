package service

import (
	"context"

	"github.com/seyalworks/tailorshop-api/internal/domain/repository"
)

// DashboardService assembles the back-office overview numbers
type DashboardService struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(analyticsRepo repository.AnalyticsRepository) *DashboardService {
	return &DashboardService{analyticsRepo: analyticsRepo}
}

// DashboardStats is the API-facing view of the aggregates, with money in
// rupees.
type DashboardStats struct {
	TotalCustomers      int64   `json:"totalCustomers"`
	TotalCatalogItems   int64   `json:"totalCatalogItems"`
	TotalBills          int64   `json:"totalBills"`
	OutstandingBalance  float64 `json:"outstandingBalance"`
	PendingWorkOrders   int64   `json:"pendingWorkOrders"`
	CompletedWorkOrders int64   `json:"completedWorkOrders"`
}

// GetStats returns the dashboard aggregates
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	raw, err := s.analyticsRepo.GetDashboardStats(ctx)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalCustomers:      raw.TotalCustomers,
		TotalCatalogItems:   raw.TotalCatalogItems,
		TotalBills:          raw.TotalBills,
		OutstandingBalance:  toRupees(raw.OutstandingBalance),
		PendingWorkOrders:   raw.PendingWorkOrders,
		CompletedWorkOrders: raw.CompletedWorkOrders,
	}, nil
}
