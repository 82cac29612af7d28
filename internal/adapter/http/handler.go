package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"agora-ads/internal/core/domain"
	"agora-ads/internal/core/port"
)

// Handler is the inbound HTTP adapter. It holds the three usecase ports
// and a logger, and registers all routes on a chi.Router. Authentication
// is external: the upstream gateway forwards the resolved identity in
// the X-User-Id and X-User-Role headers.
type Handler struct {
	lifecycle  port.CampaignLifecycle
	ads        port.AdServer
	reconciler port.PaymentReconciler
	logger     *slog.Logger
	router     chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(lifecycle port.CampaignLifecycle, ads port.AdServer, reconciler port.PaymentReconciler, logger *slog.Logger) *Handler {
	h := &Handler{lifecycle: lifecycle, ads: ads, reconciler: reconciler, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/ads/query", h.handleAdQuery)
		r.Post("/ads/track", h.handleAdTrack)
		r.Route("/campaigns", func(r chi.Router) {
			r.Post("/", h.handleCampaignSubmit)
			r.Post("/{id}/review", h.handleCampaignReview)
			r.Post("/{id}/approve", h.handleCampaignApprove)
			r.Post("/{id}/reject", h.handleCampaignReject)
			r.Post("/{id}/checkout", h.handleCampaignCheckout)
			r.Post("/{id}/archive", h.handleCampaignArchive)
		})
		r.Post("/webhooks/payment", h.handlePaymentWebhook)
		r.Get("/stats/overview", h.handleStatsOverview)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// actorFrom builds the acting identity from gateway headers.
func actorFrom(r *http.Request) domain.Actor {
	return domain.Actor{
		ID:   r.Header.Get("X-User-Id"),
		Role: domain.Role(r.Header.Get("X-User-Role")),
	}
}

// writeError maps port sentinel errors onto HTTP status codes. Unknown
// errors are logged and reported as 500 without leaking detail.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, port.ErrValidation), errors.Is(err, port.ErrExternalEvent):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, port.ErrPermission):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, port.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, port.ErrConflict):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		h.logger.Error("internal error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
