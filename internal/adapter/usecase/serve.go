package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"agora-ads/internal/core/domain"
	"agora-ads/internal/core/port"
)

// AdServer implements port.AdServer: eligibility filtering, candidate
// selection and usage tracking. It holds no mutable state; all
// cross-request coordination happens in the repository.
type AdServer struct {
	repo port.CampaignRepository

	now func() time.Time
	rnd func() *rand.Rand
}

// NewAdServer creates the serving usecase with a time-seeded random
// source per request.
func NewAdServer(repo port.CampaignRepository) *AdServer {
	return &AdServer{
		repo: repo,
		now:  time.Now,
		rnd: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
}

// Query returns up to req.Limit ad descriptors for the placement. When
// the eligible set is empty and fallback is requested, fallback
// campaigns substitute wholesale; the two pools never mix.
func (u *AdServer) Query(ctx context.Context, req port.QueryReq) ([]port.AdDescriptor, error) {
	if !req.Placement.Valid() {
		return nil, fmt.Errorf("%w: unknown placement %q", port.ErrValidation, req.Placement)
	}
	if req.Limit <= 0 {
		req.Limit = 1
	}
	strategy := req.Strategy
	if strategy == "" {
		strategy = port.StrategyWeighted
	}
	switch strategy {
	case port.StrategyAll, port.StrategyRandom, port.StrategyWeighted:
	default:
		return nil, fmt.Errorf("%w: unknown strategy %q", port.ErrValidation, strategy)
	}

	now := u.now()
	pool, err := u.repo.ListEligible(ctx, req.Placement, now)
	if err != nil {
		return nil, err
	}

	// Re-check the snapshot: the SQL filter bounds staleness but the
	// segmentation match and the wildcard semantics live here.
	eligible := pool[:0]
	for _, c := range pool {
		if !c.EligibleAt(now) || c.IsFallback {
			continue
		}
		if !c.Segmentation.Matches(req.Segment) {
			continue
		}
		eligible = append(eligible, c)
	}

	var picks []domain.Campaign
	switch strategy {
	case port.StrategyAll:
		picks = pickAll(eligible, req.Limit)
	case port.StrategyRandom:
		picks = pickRandom(eligible, req.Limit, u.rnd())
	case port.StrategyWeighted:
		picks = pickWeighted(eligible, req.Limit, u.rnd())
	}

	// Fallback substitutes only for an empty eligible set. A non-empty
	// pool that produced no picks (all weights zero) stays primary.
	if len(eligible) == 0 && req.IncludeFallback {
		picks, err = u.repo.ListFallback(ctx, req.Placement, req.Limit)
		if err != nil {
			return nil, err
		}
	}

	descriptors := make([]port.AdDescriptor, 0, len(picks))
	for _, c := range picks {
		descriptors = append(descriptors, port.AdDescriptor{
			ID:        c.ID,
			Title:     c.Title,
			ImageURL:  c.ImageURL,
			TargetURL: c.TargetURL,
			Placement: c.Placement,
			Fallback:  c.IsFallback,
		})
	}
	return descriptors, nil
}

// Track records an impression or click through the repository's
// conditional increment. A reached cap or unknown campaign yields
// (false, nil): tracking simply stops being accepted.
func (u *AdServer) Track(ctx context.Context, campaignID string, kind domain.TrackKind) (bool, error) {
	if campaignID == "" {
		return false, fmt.Errorf("%w: campaign id is required", port.ErrValidation)
	}
	if !kind.Valid() {
		return false, fmt.Errorf("%w: unknown track kind %q", port.ErrValidation, kind)
	}
	return u.repo.IncrementCounter(ctx, campaignID, kind)
}

// Stats returns aggregated counters for reporting.
func (u *AdServer) Stats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	return u.repo.Stats(ctx, req)
}
