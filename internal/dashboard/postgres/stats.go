package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/usahaku/erp-dashboard/internal/dashboard"
)

type StatsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) dashboard.StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) SumProductionQuantity(ctx context.Context) (float64, error) {
	var total float64
	query := `SELECT COALESCE(SUM(quantity), 0) FROM production_records`
	if err := r.db.GetContext(ctx, &total, query); err != nil {
		return 0, fmt.Errorf("sum production quantity: %w", err)
	}
	return total, nil
}

func (r *StatsRepository) CountInventoryItems(ctx context.Context) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM inventory_items`
	if err := r.db.GetContext(ctx, &count, query); err != nil {
		return 0, fmt.Errorf("count inventory items: %w", err)
	}
	return count, nil
}

func (r *StatsRepository) SumSalesTotal(ctx context.Context) (float64, error) {
	var total float64
	query := `SELECT COALESCE(SUM(total_amount), 0) FROM sales_orders`
	if err := r.db.GetContext(ctx, &total, query); err != nil {
		return 0, fmt.Errorf("sum sales total: %w", err)
	}
	return total, nil
}

func (r *StatsRepository) CountLowStockItems(ctx context.Context) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM inventory_items WHERE quantity < min_stock`
	if err := r.db.GetContext(ctx, &count, query); err != nil {
		return 0, fmt.Errorf("count low stock items: %w", err)
	}
	return count, nil
}
