package usecase

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"agora-ads/internal/core/domain"
	"agora-ads/internal/core/port"
	"agora-ads/internal/core/port/mocks"
)

func newTestAdServer(repo port.CampaignRepository, now time.Time) *AdServer {
	return &AdServer{
		repo: repo,
		now:  func() time.Time { return now },
		rnd:  func() *rand.Rand { return rand.New(rand.NewSource(1)) },
	}
}

func servable(id string, placement domain.Placement, weight int64) domain.Campaign {
	return domain.Campaign{
		ID:        id,
		Title:     id,
		Placement: placement,
		Status:    domain.StatusActive,
		IsActive:  true,
		Weight:    weight,
	}
}

func TestQueryReturnsEligibleCampaigns(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	now := time.Now()

	repo.EXPECT().
		ListEligible(mock.Anything, domain.PlacementHomeTop, now).
		Return([]domain.Campaign{
			servable("c1", domain.PlacementHomeTop, 1),
			servable("c2", domain.PlacementHomeTop, 1),
		}, nil)

	svc := newTestAdServer(repo, now)
	ads, err := svc.Query(context.Background(), port.QueryReq{
		Placement: domain.PlacementHomeTop,
		Limit:     2,
		Strategy:  port.StrategyAll,
	})
	if err != nil {
		t.Fatalf("Query error: %v", err)
	}
	if len(ads) != 2 {
		t.Fatalf("expected 2 ads, got %d", len(ads))
	}
}

func TestQueryExcludesStaleWindow(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	now := time.Now()

	// the store read may be stale; a campaign whose window closed one
	// second ago must still be filtered out of the snapshot
	expired := servable("expired", domain.PlacementHomeTop, 1)
	endAt := now.Add(-time.Second)
	expired.EndAt = &endAt

	repo.EXPECT().
		ListEligible(mock.Anything, domain.PlacementHomeTop, now).
		Return([]domain.Campaign{expired}, nil)

	svc := newTestAdServer(repo, now)
	ads, err := svc.Query(context.Background(), port.QueryReq{
		Placement: domain.PlacementHomeTop,
		Limit:     1,
		Strategy:  port.StrategyAll,
	})
	if err != nil {
		t.Fatalf("Query error: %v", err)
	}
	if len(ads) != 0 {
		t.Fatalf("expired campaign must not be served, got %v", ads)
	}
}

func TestQuerySegmentationWildcard(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	now := time.Now()

	wildcard := servable("wildcard", domain.PlacementCommunityFeed, 1)
	scoped := servable("scoped", domain.PlacementCommunityFeed, 1)
	scoped.Segmentation = domain.Segmentation{Communities: []string{"other-community"}}

	repo.EXPECT().
		ListEligible(mock.Anything, domain.PlacementCommunityFeed, now).
		Return([]domain.Campaign{wildcard, scoped}, nil)

	svc := newTestAdServer(repo, now)
	ads, err := svc.Query(context.Background(), port.QueryReq{
		Placement: domain.PlacementCommunityFeed,
		Segment:   domain.SegmentQuery{CommunityID: "community-42"},
		Limit:     5,
		Strategy:  port.StrategyAll,
	})
	if err != nil {
		t.Fatalf("Query error: %v", err)
	}
	if len(ads) != 1 || ads[0].ID != "wildcard" {
		t.Fatalf("expected only the wildcard campaign, got %v", ads)
	}
}

func TestQueryFallbackGating(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	now := time.Now()

	fallback := servable("house", domain.PlacementHomeTop, 0)
	fallback.IsFallback = true

	// empty primary set with one fallback campaign: serve the fallback
	repo.EXPECT().
		ListEligible(mock.Anything, domain.PlacementHomeTop, now).
		Return(nil, nil).Once()
	repo.EXPECT().
		ListFallback(mock.Anything, domain.PlacementHomeTop, 1).
		Return([]domain.Campaign{fallback}, nil).Once()

	svc := newTestAdServer(repo, now)
	ads, err := svc.Query(context.Background(), port.QueryReq{
		Placement:       domain.PlacementHomeTop,
		Limit:           1,
		IncludeFallback: true,
	})
	if err != nil {
		t.Fatalf("Query error: %v", err)
	}
	if len(ads) != 1 || ads[0].ID != "house" || !ads[0].Fallback {
		t.Fatalf("expected the fallback campaign, got %v", ads)
	}

	// non-empty primary set: fallback never mixes in
	repo.EXPECT().
		ListEligible(mock.Anything, domain.PlacementHomeTop, now).
		Return([]domain.Campaign{servable("paid", domain.PlacementHomeTop, 1)}, nil).Once()

	ads, err = svc.Query(context.Background(), port.QueryReq{
		Placement:       domain.PlacementHomeTop,
		Limit:           5,
		IncludeFallback: true,
	})
	if err != nil {
		t.Fatalf("Query error: %v", err)
	}
	if len(ads) != 1 || ads[0].ID != "paid" {
		t.Fatalf("expected only the paid campaign, got %v", ads)
	}
}

// TestQueryZeroWeightPoolDoesNotFallBack: a non-empty eligible pool
// whose weights are all zero produces no weighted picks, but fallback
// must not replace it. Fallback substitutes only for an empty set.
func TestQueryZeroWeightPoolDoesNotFallBack(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	now := time.Now()

	repo.EXPECT().
		ListEligible(mock.Anything, domain.PlacementHomeTop, now).
		Return([]domain.Campaign{servable("zero", domain.PlacementHomeTop, 0)}, nil)

	svc := newTestAdServer(repo, now)
	ads, err := svc.Query(context.Background(), port.QueryReq{
		Placement:       domain.PlacementHomeTop,
		Limit:           1,
		IncludeFallback: true,
	})
	if err != nil {
		t.Fatalf("Query error: %v", err)
	}
	if len(ads) != 0 {
		t.Fatalf("expected empty result, got %v", ads)
	}
	repo.AssertNotCalled(t, "ListFallback", mock.Anything, mock.Anything, mock.Anything)
}

func TestQueryEmptyWithoutFallbackIsNotAnError(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	now := time.Now()

	repo.EXPECT().
		ListEligible(mock.Anything, domain.PlacementHomeTop, now).
		Return(nil, nil)

	svc := newTestAdServer(repo, now)
	ads, err := svc.Query(context.Background(), port.QueryReq{
		Placement: domain.PlacementHomeTop,
		Limit:     3,
	})
	if err != nil {
		t.Fatalf("Query error: %v", err)
	}
	if len(ads) != 0 {
		t.Fatalf("expected empty result, got %v", ads)
	}
}

func TestQueryRejectsUnknownInput(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	svc := newTestAdServer(repo, time.Now())

	_, err := svc.Query(context.Background(), port.QueryReq{Placement: "billboard"})
	if !errors.Is(err, port.ErrValidation) {
		t.Fatalf("expected validation error for placement, got %v", err)
	}

	_, err = svc.Query(context.Background(), port.QueryReq{
		Placement: domain.PlacementHomeTop,
		Strategy:  "round_robin",
	})
	if !errors.Is(err, port.ErrValidation) {
		t.Fatalf("expected validation error for strategy, got %v", err)
	}
}

// TestTrackCapSafety issues more concurrent impression tracks than the
// cap allows against a mock performing the store's conditional
// increment. Exactly cap-many increments must succeed.
func TestTrackCapSafety(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)

	const (
		capLimit int64 = 5
		attempts       = 20
	)
	var (
		mu          sync.Mutex
		impressions int64
	)

	repo.EXPECT().
		IncrementCounter(mock.Anything, "c1", domain.KindImpression).
		RunAndReturn(func(ctx context.Context, id string, kind domain.TrackKind) (bool, error) {
			mu.Lock()
			defer mu.Unlock()
			if impressions >= capLimit {
				return false, nil
			}
			impressions++
			return true, nil
		})

	svc := newTestAdServer(repo, time.Now())

	var (
		wg       sync.WaitGroup
		countMu  sync.Mutex
		accepted int
		refused  int
	)
	wg.Add(attempts)
	for i := 0; i < attempts; i++ {
		go func() {
			defer wg.Done()
			ok, err := svc.Track(context.Background(), "c1", domain.KindImpression)
			if err != nil {
				t.Errorf("Track error: %v", err)
				return
			}
			countMu.Lock()
			defer countMu.Unlock()
			if ok {
				accepted++
			} else {
				refused++
			}
		}()
	}
	wg.Wait()

	if accepted != int(capLimit) || refused != attempts-int(capLimit) {
		t.Fatalf("expected %d accepted and %d refused, got %d/%d",
			capLimit, attempts-int(capLimit), accepted, refused)
	}
	if impressions != capLimit {
		t.Fatalf("final impressions %d, want %d", impressions, capLimit)
	}
}

func TestTrackValidation(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	svc := newTestAdServer(repo, time.Now())

	if _, err := svc.Track(context.Background(), "", domain.KindClick); !errors.Is(err, port.ErrValidation) {
		t.Fatalf("expected validation error for empty id, got %v", err)
	}
	if _, err := svc.Track(context.Background(), "c1", "view"); !errors.Is(err, port.ErrValidation) {
		t.Fatalf("expected validation error for unknown kind, got %v", err)
	}
}
