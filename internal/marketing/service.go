package marketing

import (
	"context"
	"log/slog"
	"time"

	"github.com/usahaku/erp-dashboard/internal"
	"github.com/usahaku/erp-dashboard/internal/resource"
	"github.com/usahaku/erp-dashboard/pkg/types"
)

type Service struct {
	records *resource.Service[Campaign]
	logger  *slog.Logger
	now     func() time.Time
}

func NewService(store resource.Store[Campaign], logger *slog.Logger, opts resource.Options) *Service {
	return &Service{
		records: resource.NewService(store, "marketing campaign", logger, opts),
		logger:  logger,
		now:     time.Now,
	}
}

func (s *Service) List(ctx context.Context) ([]CampaignResponse, error) {
	campaigns, err := s.records.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]CampaignResponse, len(campaigns))
	for i, campaign := range campaigns {
		responses[i] = toResponse(campaign)
	}
	return responses, nil
}

func (s *Service) Create(ctx context.Context, dto CampaignDTO) (*CampaignResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	campaign := dto.toCampaign(s.now())
	if err := s.records.Create(ctx, campaign); err != nil {
		return nil, err
	}

	s.logger.Info("marketing campaign created",
		"campaign_id", campaign.ID,
		"name", campaign.Name,
		"channel", campaign.Channel)
	resp := toResponse(campaign)
	return &resp, nil
}

func (s *Service) Update(ctx context.Context, id int64, dto CampaignDTO) (*CampaignResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	campaign := dto.toCampaign(s.now())
	if err := s.records.Update(ctx, id, campaign); err != nil {
		return nil, err
	}
	campaign.ID = id

	s.logger.Info("marketing campaign updated", "campaign_id", id, "name", campaign.Name)
	resp := toResponse(campaign)
	return &resp, nil
}

func (s *Service) Delete(ctx context.Context, id int64, confirmed bool) (bool, error) {
	if !confirmed {
		s.logger.Info("marketing campaign deletion declined", "campaign_id", id)
		return false, nil
	}
	if err := s.records.Delete(ctx, id); err != nil {
		return false, err
	}
	s.logger.Info("marketing campaign deleted", "campaign_id", id)
	return true, nil
}

func (s *Service) NewDraft() CampaignDTO {
	today := types.DateOf(s.now())
	return CampaignDTO{
		Channel:   ChannelDigital,
		Status:    StatusPlanned,
		StartDate: today,
		EndDate:   today,
	}
}

func (s *Service) DraftFor(ctx context.Context, id int64) (*CampaignDTO, error) {
	campaigns, err := s.records.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, campaign := range campaigns {
		if campaign.ID == id {
			draft := draftFrom(campaign)
			return &draft, nil
		}
	}
	return nil, internal.NewNotFoundError("marketing campaign not found")
}
