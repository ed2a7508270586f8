package inventory

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/usahaku/erp-dashboard/internal/transport"
	"github.com/usahaku/erp-dashboard/pkg/logger"
)

type ServiceAPI interface {
	List(ctx context.Context) ([]ItemResponse, error)
	Create(ctx context.Context, dto ItemDTO) (*ItemResponse, error)
	Update(ctx context.Context, id int64, dto ItemDTO) (*ItemResponse, error)
	Delete(ctx context.Context, id int64, confirmed bool) (bool, error)
	NewDraft() ItemDTO
	DraftFor(ctx context.Context, id int64) (*ItemDTO, error)
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

func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.List(r.Context())
	if err != nil {
		h.Logger.Error("ListItems: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, ItemsResponse{Items: items})
}

func (h *Handler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var dto ItemDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateItem: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.Service.Create(r.Context(), dto)
	if err != nil {
		h.Logger.Error("CreateItem: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, item)
}

func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, err := h.IDParam(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid item ID")
		return
	}

	var dto ItemDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateItem: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.Service.Update(r.Context(), id, dto)
	if err != nil {
		h.Logger.Error("UpdateItem: service error", "error", err, "item_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, item)
}

func (h *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := h.IDParam(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid item ID")
		return
	}

	confirmed := r.URL.Query().Get("confirm") == "true"
	deleted, err := h.Service.Delete(r.Context(), id, confirmed)
	if err != nil {
		h.Logger.Error("DeleteItem: service error", "error", err, "item_id", id)
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
		h.WriteError(w, http.StatusBadRequest, "invalid item ID")
		return
	}

	draft, err := h.Service.DraftFor(r.Context(), id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, draft)
}
