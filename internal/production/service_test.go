package production_test

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/usahaku/erp-dashboard/internal"
	"github.com/usahaku/erp-dashboard/internal/production"
	"github.com/usahaku/erp-dashboard/internal/resource"
	"github.com/usahaku/erp-dashboard/pkg/types"
)

func TestProduction(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Production Suite")
}

type MockStore struct {
	records     []*production.Record
	deleteCalls int
}

func (m *MockStore) List(ctx context.Context) ([]*production.Record, error) {
	return m.records, nil
}

func (m *MockStore) Insert(ctx context.Context, record *production.Record) error {
	record.ID = int64(len(m.records) + 1)
	m.records = append(m.records, record)
	return nil
}

func (m *MockStore) Update(ctx context.Context, id int64, record *production.Record) error {
	for i, existing := range m.records {
		if existing.ID == id {
			record.ID = id
			m.records[i] = record
			return nil
		}
	}
	return resource.ErrNotFound
}

func (m *MockStore) Delete(ctx context.Context, id int64) error {
	m.deleteCalls++
	for i, existing := range m.records {
		if existing.ID == id {
			m.records = append(m.records[:i], m.records[i+1:]...)
			return nil
		}
	}
	return resource.ErrNotFound
}

var _ = Describe("Production Service", func() {
	var (
		store   *MockStore
		service *production.Service
		ctx     context.Context
	)

	BeforeEach(func() {
		store = &MockStore{}
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = production.NewService(store, logger, resource.Options{
			Timeout:       2 * time.Second,
			RetryAttempts: 1,
			RetryBackoff:  time.Millisecond,
		})
		ctx = context.Background()
	})

	Describe("Create", func() {
		It("should default status to planned and date to today", func() {
			record, err := service.Create(ctx, production.RecordDTO{ProductName: "Steel Frame A200"})
			Expect(err).NotTo(HaveOccurred())
			Expect(record.Status).To(Equal(production.StatusPlanned))
			Expect(record.StatusLabel).To(Equal("Planned"))
			Expect(record.Date.Equal(types.Today())).To(BeTrue())
			Expect(record.Reference).To(MatchRegexp(`^PRD-\d+$`))
		})

		It("should reject an unknown status", func() {
			_, err := service.Create(ctx, production.RecordDTO{
				ProductName: "Steel Frame A200",
				Status:      "cancelled",
			})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeValidation))
		})

		It("should reject a draft without a product name", func() {
			_, err := service.Create(ctx, production.RecordDTO{Quantity: 100})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeValidation))
			Expect(store.records).To(BeEmpty())
		})
	})

	Describe("Update", func() {
		BeforeEach(func() {
			store.records = []*production.Record{
				{ID: 1, Reference: "PRD-1", ProductName: "Steel Frame A200", Status: production.StatusPlanned},
			}
		})

		It("should replace the record while keeping its id", func() {
			record, err := service.Update(ctx, 1, production.RecordDTO{
				Reference:   "PRD-1",
				ProductName: "Steel Frame A200",
				Quantity:    1200,
				Status:      production.StatusCompleted,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(record.ID).To(Equal(int64(1)))
			Expect(record.Status).To(Equal(production.StatusCompleted))
			Expect(store.records[0].Quantity).To(Equal(1200))
		})

		It("should report an unknown id", func() {
			_, err := service.Update(ctx, 42, production.RecordDTO{ProductName: "Steel Frame A200"})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeNotFound))
		})
	})

	Describe("Delete", func() {
		BeforeEach(func() {
			store.records = []*production.Record{{ID: 1, ProductName: "Steel Frame A200"}}
		})

		It("should be a no-op when the confirmation is declined", func() {
			deleted, err := service.Delete(ctx, 1, false)
			Expect(err).NotTo(HaveOccurred())
			Expect(deleted).To(BeFalse())
			Expect(store.deleteCalls).To(BeZero())
		})

		It("should remove the record when confirmed", func() {
			deleted, err := service.Delete(ctx, 1, true)
			Expect(err).NotTo(HaveOccurred())
			Expect(deleted).To(BeTrue())
			Expect(store.records).To(BeEmpty())
		})
	})

	Describe("Drafts", func() {
		It("should prefill a new draft with planned status and today's date", func() {
			draft := service.NewDraft()
			Expect(draft.Status).To(Equal(production.StatusPlanned))
			Expect(draft.Date.Equal(types.Today())).To(BeTrue())
		})
	})
})
