package dashboard_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/usahaku/erp-dashboard/internal/dashboard"
)

func TestDashboard(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Dashboard Suite")
}

type MockStats struct {
	productionTotal float64
	inventoryCount  int64
	salesTotal      float64
	lowStockCount   int64

	productionErr error
	inventoryErr  error
	salesErr      error
	lowStockErr   error
}

func (m *MockStats) SumProductionQuantity(ctx context.Context) (float64, error) {
	return m.productionTotal, m.productionErr
}

func (m *MockStats) CountInventoryItems(ctx context.Context) (int64, error) {
	return m.inventoryCount, m.inventoryErr
}

func (m *MockStats) SumSalesTotal(ctx context.Context) (float64, error) {
	return m.salesTotal, m.salesErr
}

func (m *MockStats) CountLowStockItems(ctx context.Context) (int64, error) {
	return m.lowStockCount, m.lowStockErr
}

var _ = Describe("Dashboard Service", func() {
	var (
		stats   *MockStats
		service *dashboard.Service
		ctx     context.Context
	)

	BeforeEach(func() {
		stats = &MockStats{
			productionTotal: 4900,
			inventoryCount:  3,
			salesTotal:      85500000,
			lowStockCount:   1,
		}
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = dashboard.NewService(stats, logger, 2*time.Second)
		ctx = context.Background()
	})

	Describe("Summary", func() {
		It("should aggregate every KPI", func() {
			summary, err := service.Summary(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(summary.KPIs.ProductionOutput).To(Equal(4900.0))
			Expect(summary.KPIs.InventoryItems).To(Equal(int64(3)))
			Expect(summary.KPIs.SalesRevenue).To(Equal(85500000.0))
			Expect(summary.KPIs.LowStockAlerts).To(Equal(int64(1)))
		})

		It("should mark the chart series as placeholder data", func() {
			summary, err := service.Summary(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(summary.Charts.Placeholder).To(BeTrue())
			Expect(summary.Charts.RevenueVsExpense).To(HaveLen(6))
			Expect(summary.Charts.WeeklyProduction).To(HaveLen(4))
			Expect(summary.Charts.StatusDistribution).To(HaveLen(4))
		})

		Context("when one query fails", func() {
			BeforeEach(func() {
				stats.salesErr = errors.New("relation does not exist")
			})

			It("should degrade that KPI to zero and keep the rest", func() {
				summary, err := service.Summary(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(summary.KPIs.SalesRevenue).To(BeZero())
				Expect(summary.KPIs.ProductionOutput).To(Equal(4900.0))
				Expect(summary.KPIs.InventoryItems).To(Equal(int64(3)))
				Expect(summary.KPIs.LowStockAlerts).To(Equal(int64(1)))
			})
		})

		Context("when every query fails", func() {
			BeforeEach(func() {
				dbErr := errors.New("connection refused")
				stats.productionErr = dbErr
				stats.inventoryErr = dbErr
				stats.salesErr = dbErr
				stats.lowStockErr = dbErr
			})

			It("should still return a complete zeroed summary", func() {
				summary, err := service.Summary(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(summary.KPIs).To(Equal(dashboard.KPIs{}))
				Expect(summary.Charts.Placeholder).To(BeTrue())
			})
		})
	})
})
