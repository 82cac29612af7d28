package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"agora-ads/internal/core/domain"
	"agora-ads/internal/core/port"
)

type submitCampaignRequest struct {
	Title          string     `json:"title"`
	ImageURL       string     `json:"image_url"`
	TargetURL      string     `json:"target_url"`
	Placement      string     `json:"placement"`
	Weight         int64      `json:"weight"`
	PriceMinor     int64      `json:"price_minor"`
	IsFallback     bool       `json:"is_fallback"`
	StartAt        *time.Time `json:"start_at,omitempty"`
	EndAt          *time.Time `json:"end_at,omitempty"`
	MaxImpressions *int64     `json:"max_impressions,omitempty"`
	MaxClicks      *int64     `json:"max_clicks,omitempty"`
	Communities    []string   `json:"communities,omitempty"`
	Categories     []string   `json:"categories,omitempty"`
	Businesses     []string   `json:"businesses,omitempty"`
}

type campaignResponse struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Placement      string     `json:"placement"`
	Status         string     `json:"status"`
	IsActive       bool       `json:"is_active"`
	IsFallback     bool       `json:"is_fallback"`
	PriceMinor     int64      `json:"price_minor"`
	StartAt        *time.Time `json:"start_at,omitempty"`
	EndAt          *time.Time `json:"end_at,omitempty"`
	RejectedReason string     `json:"rejected_reason,omitempty"`
}

func toCampaignResponse(c *domain.Campaign) campaignResponse {
	return campaignResponse{
		ID:             c.ID,
		Title:          c.Title,
		Placement:      string(c.Placement),
		Status:         string(c.Status),
		IsActive:       c.IsActive,
		IsFallback:     c.IsFallback,
		PriceMinor:     c.PriceMinor,
		StartAt:        c.StartAt,
		EndAt:          c.EndAt,
		RejectedReason: c.RejectedReason,
	}
}

// handleCampaignSubmit creates a campaign in the submitted status.
func (h *Handler) handleCampaignSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	c, err := h.lifecycle.Submit(r.Context(), actorFrom(r), port.SubmitReq{
		Title:          req.Title,
		ImageURL:       req.ImageURL,
		TargetURL:      req.TargetURL,
		Placement:      domain.Placement(req.Placement),
		Weight:         req.Weight,
		PriceMinor:     req.PriceMinor,
		IsFallback:     req.IsFallback,
		StartAt:        req.StartAt,
		EndAt:          req.EndAt,
		MaxImpressions: req.MaxImpressions,
		MaxClicks:      req.MaxClicks,
		Segmentation: domain.Segmentation{
			Communities: req.Communities,
			Categories:  req.Categories,
			Businesses:  req.Businesses,
		},
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toCampaignResponse(c))
}

// handleCampaignReview marks a campaign as under review.
func (h *Handler) handleCampaignReview(w http.ResponseWriter, r *http.Request) {
	c, err := h.lifecycle.Review(r.Context(), actorFrom(r), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(c))
}

// handleCampaignApprove approves a campaign and assigns its price.
func (h *Handler) handleCampaignApprove(w http.ResponseWriter, r *http.Request) {
	c, err := h.lifecycle.Approve(r.Context(), actorFrom(r), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(c))
}

type rejectCampaignRequest struct {
	Reason string `json:"reason"`
}

// handleCampaignReject rejects a campaign with a mandatory reason.
func (h *Handler) handleCampaignReject(w http.ResponseWriter, r *http.Request) {
	var req rejectCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	c, err := h.lifecycle.Reject(r.Context(), actorFrom(r), chi.URLParam(r, "id"), req.Reason)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(c))
}

// handleCampaignCheckout moves an approved campaign to awaiting_payment.
func (h *Handler) handleCampaignCheckout(w http.ResponseWriter, r *http.Request) {
	c, err := h.lifecycle.Checkout(r.Context(), actorFrom(r), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(c))
}

// handleCampaignArchive retires a campaign.
func (h *Handler) handleCampaignArchive(w http.ResponseWriter, r *http.Request) {
	c, err := h.lifecycle.Archive(r.Context(), actorFrom(r), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(c))
}
