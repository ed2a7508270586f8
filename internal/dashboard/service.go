package dashboard

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

type StatsRepository interface {
	SumProductionQuantity(ctx context.Context) (float64, error)
	CountInventoryItems(ctx context.Context) (int64, error)
	SumSalesTotal(ctx context.Context) (float64, error)
	CountLowStockItems(ctx context.Context) (int64, error)
}

type Service struct {
	stats        StatsRepository
	logger       *slog.Logger
	queryTimeout time.Duration
}

func NewService(stats StatsRepository, logger *slog.Logger, queryTimeout time.Duration) *Service {
	if queryTimeout <= 0 {
		queryTimeout = 10 * time.Second
	}
	return &Service{
		stats:        stats,
		logger:       logger,
		queryTimeout: queryTimeout,
	}
}

// Summary fans the KPI queries out concurrently. A failed query logs
// and leaves its KPI at zero; the response is always complete.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	var kpis KPIs
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		total, err := s.stats.SumProductionQuantity(gctx)
		if err != nil {
			s.logger.Error("dashboard: production KPI query failed", "error", err)
			return nil
		}
		kpis.ProductionOutput = total
		return nil
	})
	g.Go(func() error {
		count, err := s.stats.CountInventoryItems(gctx)
		if err != nil {
			s.logger.Error("dashboard: inventory KPI query failed", "error", err)
			return nil
		}
		kpis.InventoryItems = count
		return nil
	})
	g.Go(func() error {
		total, err := s.stats.SumSalesTotal(gctx)
		if err != nil {
			s.logger.Error("dashboard: sales KPI query failed", "error", err)
			return nil
		}
		kpis.SalesRevenue = total
		return nil
	})
	g.Go(func() error {
		count, err := s.stats.CountLowStockItems(gctx)
		if err != nil {
			s.logger.Error("dashboard: low stock KPI query failed", "error", err)
			return nil
		}
		kpis.LowStockAlerts = count
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Summary{
		KPIs:   kpis,
		Charts: placeholderCharts(),
	}, nil
}
