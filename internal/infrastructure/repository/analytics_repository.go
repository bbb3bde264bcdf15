package repository

import (
	"context"

	"github.com/seyalworks/tailorshop-api/internal/domain/entity"
	"github.com/seyalworks/tailorshop-api/internal/domain/enum"
	domainRepo "github.com/seyalworks/tailorshop-api/internal/domain/repository"
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) GetDashboardStats(ctx context.Context) (*domainRepo.DashboardStats, error) {
	stats := &domainRepo.DashboardStats{}
	db := r.db.WithContext(ctx)

	if err := db.Model(&entity.Customer{}).Count(&stats.TotalCustomers).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&entity.CatalogItem{}).Count(&stats.TotalCatalogItems).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&entity.Bill{}).Count(&stats.TotalBills).Error; err != nil {
		return nil, err
	}

	// Overpaid bills carry a negative balance; only amounts still owed count
	// as outstanding.
	err := db.Raw(`
		SELECT COALESCE(SUM(balance), 0)
		FROM bills
		WHERE balance > 0
	`).Scan(&stats.OutstandingBalance).Error
	if err != nil {
		return nil, err
	}

	if err := db.Model(&entity.WorkOrder{}).Where("status = ?", enum.WorkOrderStatusPending).Count(&stats.PendingWorkOrders).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&entity.WorkOrder{}).Where("status = ?", enum.WorkOrderStatusCompleted).Count(&stats.CompletedWorkOrders).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
