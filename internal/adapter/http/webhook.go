package httpadapter

import (
	"encoding/json"
	"net/http"

	"agora-ads/internal/core/domain"
)

type paymentWebhookRequest struct {
	EventID        string `json:"event_id"`
	CampaignID     string `json:"campaign_id"`
	Confirmed      bool   `json:"confirmed"`
	ValidityMonths int    `json:"validity_months"`
}

// handlePaymentWebhook accepts payment-confirmation events from the
// gateway integration. Processed and absorbed events both return 202 so
// the gateway stops redelivering; a 400 signals a rejected event it may
// retry after correction. Signature verification happens upstream.
func (h *Handler) handlePaymentWebhook(w http.ResponseWriter, r *http.Request) {
	var req paymentWebhookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	err := h.reconciler.HandleEvent(r.Context(), domain.PaymentEvent{
		EventID:        req.EventID,
		CampaignID:     req.CampaignID,
		Confirmed:      req.Confirmed,
		ValidityMonths: req.ValidityMonths,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}
