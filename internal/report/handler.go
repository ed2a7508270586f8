package report

import (
	"net/http"

	"github.com/go-chi/chi"

	"github.com/usahaku/erp-dashboard/internal/transport"
	"github.com/usahaku/erp-dashboard/pkg/logger"
)

type Handler struct {
	*transport.BaseHandler
}

func NewHandler() *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(logger.LoggerWrapper()),
	}
}

func (h *Handler) ListReports(w http.ResponseWriter, r *http.Request) {
	h.WriteJSON(w, http.StatusOK, map[string]any{"reports": Catalog})
}

func (h *Handler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	report, ok := BySlug(slug)
	if !ok {
		h.WriteError(w, http.StatusNotFound, "unknown report")
		return
	}

	h.Logger.Info("report generation requested", "slug", report.Slug)
	h.WriteJSON(w, http.StatusNotImplemented, map[string]any{
		"report":  report.Slug,
		"message": "report generation is not available yet",
	})
}
