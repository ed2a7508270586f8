package marketing

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/usahaku/erp-dashboard/internal/transport"
	"github.com/usahaku/erp-dashboard/pkg/logger"
)

type ServiceAPI interface {
	List(ctx context.Context) ([]CampaignResponse, error)
	Create(ctx context.Context, dto CampaignDTO) (*CampaignResponse, error)
	Update(ctx context.Context, id int64, dto CampaignDTO) (*CampaignResponse, error)
	Delete(ctx context.Context, id int64, confirmed bool) (bool, error)
	NewDraft() CampaignDTO
	DraftFor(ctx context.Context, id int64) (*CampaignDTO, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(logger.LoggerWrapper()),
		Service:     service,
	}
}

func (h *Handler) ListCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.Service.List(r.Context())
	if err != nil {
		h.Logger.Error("ListCampaigns: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, CampaignsResponse{Campaigns: campaigns})
}

func (h *Handler) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	var dto CampaignDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateCampaign: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	campaign, err := h.Service.Create(r.Context(), dto)
	if err != nil {
		h.Logger.Error("CreateCampaign: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, campaign)
}

func (h *Handler) UpdateCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := h.IDParam(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid campaign ID")
		return
	}

	var dto CampaignDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateCampaign: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	campaign, err := h.Service.Update(r.Context(), id, dto)
	if err != nil {
		h.Logger.Error("UpdateCampaign: service error", "error", err, "campaign_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, campaign)
}

func (h *Handler) DeleteCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := h.IDParam(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid campaign ID")
		return
	}

	confirmed := r.URL.Query().Get("confirm") == "true"
	deleted, err := h.Service.Delete(r.Context(), id, confirmed)
	if err != nil {
		h.Logger.Error("DeleteCampaign: service error", "error", err, "campaign_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]any{"deleted": deleted})
}

func (h *Handler) NewDraft(w http.ResponseWriter, r *http.Request) {
	h.WriteJSON(w, http.StatusOK, h.Service.NewDraft())
}

func (h *Handler) EditDraft(w http.ResponseWriter, r *http.Request) {
	id, err := h.IDParam(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid campaign ID")
		return
	}

	draft, err := h.Service.DraftFor(r.Context(), id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, draft)
}
