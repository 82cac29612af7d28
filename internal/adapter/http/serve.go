package httpadapter

import (
	"encoding/json"
	"net/http"

	"agora-ads/internal/core/domain"
	"agora-ads/internal/core/port"
)

type adQueryRequest struct {
	Placement       string   `json:"placement"`
	CommunityID     string   `json:"community_id,omitempty"`
	CategoryID      string   `json:"category_id,omitempty"`
	BusinessID      string   `json:"business_id,omitempty"`
	Limit           int      `json:"limit"`
	Strategy        string   `json:"strategy,omitempty"`
	IncludeFallback bool     `json:"include_fallback"`
}

// handleAdQuery selects campaigns for a placement. The response is a
// JSON array of ad descriptors; an empty eligible set produces an empty
// array, not an error.
func (h *Handler) handleAdQuery(w http.ResponseWriter, r *http.Request) {
	var req adQueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	ads, err := h.ads.Query(r.Context(), port.QueryReq{
		Placement: domain.Placement(req.Placement),
		Segment: domain.SegmentQuery{
			CommunityID: req.CommunityID,
			CategoryID:  req.CategoryID,
			BusinessID:  req.BusinessID,
		},
		Limit:           req.Limit,
		Strategy:        port.Strategy(req.Strategy),
		IncludeFallback: req.IncludeFallback,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	if ads == nil {
		ads = []port.AdDescriptor{}
	}
	h.writeJSON(w, http.StatusOK, ads)
}

type adTrackRequest struct {
	CampaignID string `json:"campaign_id"`
	Kind       string `json:"kind"`
}

type adTrackResponse struct {
	Accepted bool `json:"accepted"`
}

// handleAdTrack records an impression or click. A reached cap or
// unknown campaign returns accepted=false with HTTP 200; only malformed
// input is an error.
func (h *Handler) handleAdTrack(w http.ResponseWriter, r *http.Request) {
	var req adTrackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	accepted, err := h.ads.Track(r.Context(), req.CampaignID, domain.TrackKind(req.Kind))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, adTrackResponse{Accepted: accepted})
}
