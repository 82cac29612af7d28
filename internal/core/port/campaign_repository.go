package port

import (
	"context"
	"errors"
	"time"

	"agora-ads/internal/core/domain"
)

// Sentinel errors shared across ports. Adapters translate them at the
// edge (HTTP status codes); usecases wrap them with context via
// fmt.Errorf("...: %w", err).
var (
	ErrValidation    = errors.New("validation failed")
	ErrNotFound      = errors.New("campaign not found")
	ErrPermission    = errors.New("permission denied")
	ErrConflict      = errors.New("illegal status transition")
	ErrExternalEvent = errors.New("unprocessable payment event")
)

// StatusChange describes the field updates applied together with a
// status transition. Nil pointer fields leave the stored value
// untouched. The repository applies the whole change and the status
// compare in one conditional write.
type StatusChange struct {
	To             domain.Status
	IsActive       *bool
	PriceMinor     *int64
	ApprovedBy     *string
	ApprovedAt     *time.Time
	RejectedBy     *string
	RejectedAt     *time.Time
	RejectedReason *string
}

// StatsReq scopes a counters report. A nil CampaignID aggregates over
// all campaigns.
type StatsReq struct {
	CampaignID *string
}

// StatsResp carries the aggregated impression and click counters.
type StatsResp struct {
	Impressions int64
	Clicks      int64
}

// CampaignRepository is the outbound persistence port. Implementations
// must be concurrency-safe; every mutating method is a single atomic
// round trip so concurrent callers cannot observe partial effects.
type CampaignRepository interface {
	// Create stores a new campaign.
	Create(ctx context.Context, c *domain.Campaign) error

	// Get returns a campaign by id, or (nil, nil) when absent.
	Get(ctx context.Context, id string) (*domain.Campaign, error)

	// ListEligible returns servable non-fallback campaigns for the
	// placement: active status and flag, inside the window at now, and
	// below both caps, newest first. Segmentation is not applied here.
	ListEligible(ctx context.Context, placement domain.Placement, now time.Time) ([]domain.Campaign, error)

	// ListFallback returns active fallback campaigns for the placement,
	// newest first, truncated to limit. Caps and segmentation do not
	// apply to fallback candidates.
	ListFallback(ctx context.Context, placement domain.Placement, limit int) ([]domain.Campaign, error)

	// UpdateStatus performs the compare-and-set transition: apply change
	// iff the current status is one of from. It returns ErrNotFound for
	// an unknown id and ErrConflict when the campaign exists but its
	// status is outside from.
	UpdateStatus(ctx context.Context, id string, from []domain.Status, change StatusChange) (*domain.Campaign, error)

	// IncrementCounter atomically bumps the counter for kind iff the
	// campaign exists and the corresponding cap is unset or not yet
	// reached. It reports whether the increment was applied; a false
	// result is not an error.
	IncrementCounter(ctx context.Context, id string, kind domain.TrackKind) (bool, error)

	// Activate drives the campaign to active iff it is not already in a
	// terminal or active status, setting start_at to its existing value
	// or now and end_at to start plus months. The bool reports whether
	// this call performed the activation; false with a nil error means
	// the write was absorbed (already active or terminal).
	Activate(ctx context.Context, id string, now time.Time, months int) (*domain.Campaign, bool, error)

	// RecordPaymentEvent inserts the event id as an idempotency key and
	// reports whether the id was seen for the first time.
	RecordPaymentEvent(ctx context.Context, eventID, campaignID string) (bool, error)

	// Stats aggregates the serving counters.
	Stats(ctx context.Context, req StatsReq) (*StatsResp, error)
}
