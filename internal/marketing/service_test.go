package marketing_test

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/usahaku/erp-dashboard/internal"
	"github.com/usahaku/erp-dashboard/internal/marketing"
	"github.com/usahaku/erp-dashboard/internal/resource"
	"github.com/usahaku/erp-dashboard/pkg/types"
)

func TestMarketing(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Marketing Suite")
}

type MockStore struct {
	campaigns []*marketing.Campaign
}

func (m *MockStore) List(ctx context.Context) ([]*marketing.Campaign, error) {
	return m.campaigns, nil
}

func (m *MockStore) Insert(ctx context.Context, campaign *marketing.Campaign) error {
	campaign.ID = int64(len(m.campaigns) + 1)
	m.campaigns = append(m.campaigns, campaign)
	return nil
}

func (m *MockStore) Update(ctx context.Context, id int64, campaign *marketing.Campaign) error {
	for i, existing := range m.campaigns {
		if existing.ID == id {
			campaign.ID = id
			m.campaigns[i] = campaign
			return nil
		}
	}
	return resource.ErrNotFound
}

func (m *MockStore) Delete(ctx context.Context, id int64) error {
	for i, existing := range m.campaigns {
		if existing.ID == id {
			m.campaigns = append(m.campaigns[:i], m.campaigns[i+1:]...)
			return nil
		}
	}
	return resource.ErrNotFound
}

var _ = Describe("Marketing Service", func() {
	var (
		store   *MockStore
		service *marketing.Service
		ctx     context.Context
	)

	BeforeEach(func() {
		store = &MockStore{}
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = marketing.NewService(store, logger, resource.Options{
			Timeout:       2 * time.Second,
			RetryAttempts: 1,
			RetryBackoff:  time.Millisecond,
		})
		ctx = context.Background()
	})

	Describe("Create", func() {
		It("should default channel, status and run window", func() {
			campaign, err := service.Create(ctx, marketing.CampaignDTO{Name: "Q1 Product Launch"})
			Expect(err).NotTo(HaveOccurred())
			Expect(campaign.Channel).To(Equal(marketing.ChannelDigital))
			Expect(campaign.Status).To(Equal(marketing.StatusPlanned))
			Expect(campaign.StartDate.Equal(types.Today())).To(BeTrue())
			Expect(campaign.EndDate.Equal(campaign.StartDate)).To(BeTrue())
			Expect(campaign.ChannelLabel).To(Equal("Digital"))
		})

		It("should require a name", func() {
			_, err := service.Create(ctx, marketing.CampaignDTO{Budget: 1000})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeValidation))
		})

		It("should reject an end date before the start date", func() {
			_, err := service.Create(ctx, marketing.CampaignDTO{
				Name:      "Trade Show Booth",
				StartDate: types.NewDate(2025, time.June, 10),
				EndDate:   types.NewDate(2025, time.June, 1),
			})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeValidation))
		})

		It("should reject an unknown channel", func() {
			_, err := service.Create(ctx, marketing.CampaignDTO{Name: "Billboards", Channel: "skywriting"})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeValidation))
		})
	})

	Describe("NewDraft", func() {
		It("should prefill digital channel and planned status", func() {
			draft := service.NewDraft()
			Expect(draft.Channel).To(Equal(marketing.ChannelDigital))
			Expect(draft.Status).To(Equal(marketing.StatusPlanned))
			Expect(draft.StartDate.Equal(types.Today())).To(BeTrue())
		})
	})
})
