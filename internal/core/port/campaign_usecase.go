package port

import (
	"context"
	"time"

	"agora-ads/internal/core/domain"
)

// Strategy selects how the serving engine picks among eligible
// campaigns.
type Strategy string

const (
	StrategyAll      Strategy = "all"
	StrategyRandom   Strategy = "random"
	StrategyWeighted Strategy = "weighted"
)

// SubmitReq carries everything an advertiser provides when submitting a
// campaign. Caps and window bounds are optional; a zero PriceMinor
// means the price will be computed at approval time.
type SubmitReq struct {
	Title          string
	ImageURL       string
	TargetURL      string
	Placement      domain.Placement
	Weight         int64
	PriceMinor     int64
	IsFallback     bool
	StartAt        *time.Time
	EndAt          *time.Time
	MaxImpressions *int64
	MaxClicks      *int64
	Segmentation   domain.Segmentation
}

// CampaignLifecycle is the inbound port for state-machine transitions.
// Every method validates the actor before touching the store and
// returns the campaign as persisted after the transition.
type CampaignLifecycle interface {
	Submit(ctx context.Context, actor domain.Actor, req SubmitReq) (*domain.Campaign, error)
	Review(ctx context.Context, actor domain.Actor, id string) (*domain.Campaign, error)
	Approve(ctx context.Context, actor domain.Actor, id string) (*domain.Campaign, error)
	Reject(ctx context.Context, actor domain.Actor, id, reason string) (*domain.Campaign, error)
	Checkout(ctx context.Context, actor domain.Actor, id string) (*domain.Campaign, error)
	Archive(ctx context.Context, actor domain.Actor, id string) (*domain.Campaign, error)
}

// QueryReq describes one ad request.
type QueryReq struct {
	Placement       domain.Placement
	Segment         domain.SegmentQuery
	Limit           int
	Strategy        Strategy
	IncludeFallback bool
}

// AdDescriptor is the serializable view of a served campaign. Counters
// and audit fields stay internal.
type AdDescriptor struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	ImageURL  string           `json:"image_url"`
	TargetURL string           `json:"target_url"`
	Placement domain.Placement `json:"placement"`
	Fallback  bool             `json:"fallback"`
}

// AdServer is the inbound port for serving traffic: eligibility,
// selection and usage tracking.
type AdServer interface {
	// Query returns up to Limit descriptors for the placement using the
	// requested strategy. An empty result is not an error.
	Query(ctx context.Context, req QueryReq) ([]AdDescriptor, error)

	// Track records an impression or click. The returned bool reports
	// whether the event was accepted; a cap having been reached or an
	// unknown campaign yields (false, nil).
	Track(ctx context.Context, campaignID string, kind domain.TrackKind) (bool, error)

	// Stats returns aggregated counters for reporting.
	Stats(ctx context.Context, req StatsReq) (*StatsResp, error)
}

// PaymentReconciler consumes payment-confirmation events. Duplicate and
// alternate-shape deliveries for one transaction converge on a single
// activation.
type PaymentReconciler interface {
	HandleEvent(ctx context.Context, ev domain.PaymentEvent) error
}
