package repository

import "context"

// DashboardStats aggregates the counts shown on the back-office dashboard.
// Monetary values are in paise.
type DashboardStats struct {
	TotalCustomers      int64
	TotalCatalogItems   int64
	TotalBills          int64
	OutstandingBalance  int64
	PendingWorkOrders   int64
	CompletedWorkOrders int64
}

// AnalyticsRepository defines interface for aggregation queries
type AnalyticsRepository interface {
	GetDashboardStats(ctx context.Context) (*DashboardStats, error)
}
