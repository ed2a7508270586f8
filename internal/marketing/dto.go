package marketing

import (
	"strings"
	"time"

	"github.com/usahaku/erp-dashboard/internal"
	"github.com/usahaku/erp-dashboard/pkg/types"
)

type CampaignDTO struct {
	Name      string          `json:"name"`
	Channel   Channel         `json:"channel"`
	Budget    types.FlexFloat `json:"budget"`
	StartDate types.Date      `json:"start_date"`
	EndDate   types.Date      `json:"end_date"`
	Status    Status          `json:"status"`
}

func (dto CampaignDTO) Validate() error {
	if strings.TrimSpace(dto.Name) == "" {
		return internal.NewValidationFieldError("name", "campaign name is required", internal.ErrCodeRequiredField)
	}
	if dto.Channel != "" && !dto.Channel.Valid() {
		return internal.NewValidationFieldError("channel", "unknown campaign channel", internal.ErrCodeInvalidType)
	}
	if dto.Status != "" && !dto.Status.Valid() {
		return internal.NewValidationFieldError("status", "unknown campaign status", internal.ErrCodeInvalidStatus)
	}
	if dto.Budget < 0 {
		return internal.NewValidationFieldError("budget", "budget cannot be negative", internal.ErrCodeInvalidNumber)
	}
	if !dto.StartDate.IsZero() && !dto.EndDate.IsZero() && dto.EndDate.Before(dto.StartDate) {
		return internal.NewValidationFieldError("end_date", "end date cannot be before start date", internal.ErrCodeInvalidDate)
	}
	return nil
}

func (dto CampaignDTO) toCampaign(now time.Time) *Campaign {
	channel := dto.Channel
	if channel == "" {
		channel = ChannelDigital
	}
	status := dto.Status
	if status == "" {
		status = StatusPlanned
	}
	start := dto.StartDate
	if start.IsZero() {
		start = types.DateOf(now)
	}
	end := dto.EndDate
	if end.IsZero() {
		end = start
	}
	return &Campaign{
		Name:      dto.Name,
		Channel:   channel,
		Budget:    dto.Budget.Float64(),
		StartDate: start,
		EndDate:   end,
		Status:    status,
	}
}

func draftFrom(campaign *Campaign) CampaignDTO {
	return CampaignDTO{
		Name:      campaign.Name,
		Channel:   campaign.Channel,
		Budget:    types.FlexFloat(campaign.Budget),
		StartDate: campaign.StartDate,
		EndDate:   campaign.EndDate,
		Status:    campaign.Status,
	}
}

type CampaignResponse struct {
	Campaign
	ChannelLabel string `json:"channel_label"`
	StatusLabel  string `json:"status_label"`
}

func toResponse(campaign *Campaign) CampaignResponse {
	return CampaignResponse{
		Campaign:     *campaign,
		ChannelLabel: campaign.Channel.Label(),
		StatusLabel:  campaign.Status.Label(),
	}
}

type CampaignsResponse struct {
	Campaigns []CampaignResponse `json:"campaigns"`
}
