package httpadapter

import (
	"net/http"

	"agora-ads/internal/core/port"
)

// handleStatsOverview returns aggregated impression and click counters.
// An optional campaign_id query parameter scopes the report to one
// campaign; without it the totals span all campaigns.
func (h *Handler) handleStatsOverview(w http.ResponseWriter, r *http.Request) {
	var req port.StatsReq
	if cid := r.URL.Query().Get("campaign_id"); cid != "" {
		req.CampaignID = &cid
	}
	stats, err := h.ads.Stats(r.Context(), req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, stats)
}
