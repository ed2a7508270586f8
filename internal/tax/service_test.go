package tax_test

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/usahaku/erp-dashboard/internal"
	"github.com/usahaku/erp-dashboard/internal/resource"
	"github.com/usahaku/erp-dashboard/internal/tax"
	"github.com/usahaku/erp-dashboard/pkg/types"
)

func TestTax(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Tax Suite")
}

type MockStore struct {
	records []*tax.Record
}

func (m *MockStore) List(ctx context.Context) ([]*tax.Record, error) {
	return m.records, nil
}

func (m *MockStore) Insert(ctx context.Context, record *tax.Record) error {
	record.ID = int64(len(m.records) + 1)
	m.records = append(m.records, record)
	return nil
}

func (m *MockStore) Update(ctx context.Context, id int64, record *tax.Record) error {
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
	for i, existing := range m.records {
		if existing.ID == id {
			m.records = append(m.records[:i], m.records[i+1:]...)
			return nil
		}
	}
	return resource.ErrNotFound
}

var _ = Describe("Record", func() {
	today := types.NewDate(2025, time.June, 15)

	Describe("IsOverdue", func() {
		It("should flag an unpaid record past its due date", func() {
			record := &tax.Record{Status: tax.StatusPending, DueDate: types.NewDate(2025, time.June, 14)}
			Expect(record.IsOverdue(today)).To(BeTrue())
		})

		It("should not flag a record due today", func() {
			record := &tax.Record{Status: tax.StatusPending, DueDate: today}
			Expect(record.IsOverdue(today)).To(BeFalse())
		})

		It("should never flag a paid record", func() {
			record := &tax.Record{Status: tax.StatusPaid, DueDate: types.NewDate(2024, time.January, 1)}
			Expect(record.IsOverdue(today)).To(BeFalse())
		})

		It("should treat a filed but unpaid record as overdue when late", func() {
			record := &tax.Record{Status: tax.StatusFiled, DueDate: types.NewDate(2025, time.May, 31)}
			Expect(record.IsOverdue(today)).To(BeTrue())
		})
	})
})

var _ = Describe("Tax Service", func() {
	var (
		store   *MockStore
		service *tax.Service
		ctx     context.Context
	)

	BeforeEach(func() {
		store = &MockStore{}
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = tax.NewService(store, logger, resource.Options{
			Timeout:       2 * time.Second,
			RetryAttempts: 1,
			RetryBackoff:  time.Millisecond,
		})
		ctx = context.Background()
	})

	Describe("Create", func() {
		It("should accept a valid monthly period", func() {
			record, err := service.Create(ctx, tax.RecordDTO{
				Type:   tax.TypePPN,
				Period: "2025-06",
				Amount: 4500000,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(record.Reference).To(MatchRegexp(`^TAX-\d+$`))
			Expect(record.TypeLabel).To(Equal("PPN (VAT)"))
			Expect(record.Status).To(Equal(tax.StatusPending))
		})

		It("should reject a period that is not YYYY-MM", func() {
			_, err := service.Create(ctx, tax.RecordDTO{Type: tax.TypePPh, Period: "June 2025"})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeValidation))
		})

		It("should reject a month out of range", func() {
			_, err := service.Create(ctx, tax.RecordDTO{Type: tax.TypePPh, Period: "2025-13"})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeValidation))
		})

		It("should reject an unknown tax type", func() {
			_, err := service.Create(ctx, tax.RecordDTO{Type: "pbb", Period: "2025-06"})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeValidation))
		})
	})

	Describe("List", func() {
		It("should decorate each record with its overdue flag", func() {
			yesterday := types.DateOf(time.Now().AddDate(0, 0, -1))
			tomorrow := types.DateOf(time.Now().AddDate(0, 0, 1))
			store.records = []*tax.Record{
				{ID: 1, Type: tax.TypePPN, Period: "2025-05", Status: tax.StatusPending, DueDate: yesterday},
				{ID: 2, Type: tax.TypePPN, Period: "2025-05", Status: tax.StatusPaid, DueDate: yesterday},
				{ID: 3, Type: tax.TypePPh, Period: "2025-06", Status: tax.StatusPending, DueDate: tomorrow},
			}

			records, err := service.List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(3))
			Expect(records[0].Overdue).To(BeTrue())
			Expect(records[1].Overdue).To(BeFalse())
			Expect(records[2].Overdue).To(BeFalse())
		})
	})

	Describe("NewDraft", func() {
		It("should prefill the current period and pending status", func() {
			draft := service.NewDraft()
			Expect(draft.Type).To(Equal(tax.TypePPN))
			Expect(draft.Status).To(Equal(tax.StatusPending))
			Expect(draft.Period).To(Equal(time.Now().Format("2006-01")))
		})
	})
})
