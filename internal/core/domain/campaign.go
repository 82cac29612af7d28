package domain

import "time"

// Status is the lifecycle state of a campaign. Transitions between
// statuses are governed by the tables in transition.go.
type Status string

const (
	StatusSubmitted       Status = "submitted"
	StatusUnderReview     Status = "under_review"
	StatusApproved        Status = "approved"
	StatusAwaitingPayment Status = "awaiting_payment"
	StatusActive          Status = "active"
	StatusRejected        Status = "rejected"
	StatusArchived        Status = "archived"
)

// Terminal reports whether no further lifecycle transition may leave the
// status. Active campaigns can still be archived and are not terminal.
func (s Status) Terminal() bool {
	return s == StatusRejected || s == StatusArchived
}

// Placement identifies a serving slot. The set is closed; campaigns with
// an unknown placement are rejected at submission.
type Placement string

const (
	PlacementHomeTop       Placement = "home_top"
	PlacementHomeBottom    Placement = "home_bottom"
	PlacementSidebarRight1 Placement = "sidebar_right_1"
	PlacementSidebarRight2 Placement = "sidebar_right_2"
	PlacementCommunityFeed Placement = "community_feed"
)

// Placements lists every known serving slot.
var Placements = []Placement{
	PlacementHomeTop,
	PlacementHomeBottom,
	PlacementSidebarRight1,
	PlacementSidebarRight2,
	PlacementCommunityFeed,
}

// Valid reports whether p names a known serving slot.
func (p Placement) Valid() bool {
	for _, known := range Placements {
		if p == known {
			return true
		}
	}
	return false
}

// Segmentation restricts who a campaign targets. An empty set for a
// dimension means the campaign matches any value in that dimension.
type Segmentation struct {
	Communities []string `json:"communities,omitempty"`
	Categories  []string `json:"categories,omitempty"`
	Businesses  []string `json:"businesses,omitempty"`
}

// SegmentQuery carries the segmentation identifiers supplied with an ad
// request. Empty fields mean the caller did not scope that dimension.
type SegmentQuery struct {
	CommunityID string
	CategoryID  string
	BusinessID  string
}

// Matches applies the wildcard semantics: a dimension constrains the
// result only when the caller supplied an identifier for it, and an
// empty campaign-side set accepts any identifier.
func (s Segmentation) Matches(q SegmentQuery) bool {
	return dimensionMatches(s.Communities, q.CommunityID) &&
		dimensionMatches(s.Categories, q.CategoryID) &&
		dimensionMatches(s.Businesses, q.BusinessID)
}

func dimensionMatches(set []string, id string) bool {
	if id == "" || len(set) == 0 {
		return true
	}
	for _, v := range set {
		if v == id {
			return true
		}
	}
	return false
}

// Campaign represents a paid advertising unit. Prices are stored in
// integer minor units. Counters are maintained exclusively by the
// conditional-increment repository operation, never written directly.
type Campaign struct {
	ID         string
	Title      string
	ImageURL   string
	TargetURL  string
	Placement  Placement
	Status     Status
	IsActive   bool
	IsFallback bool
	Weight     int64
	PriceMinor int64 // 0 means no price assigned yet

	StartAt *time.Time
	EndAt   *time.Time

	MaxImpressions *int64
	MaxClicks      *int64
	Impressions    int64
	Clicks         int64

	Segmentation   Segmentation
	RejectedReason string

	CreatedBy  string
	ApprovedBy string
	ApprovedAt *time.Time
	RejectedBy string
	RejectedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EligibleAt reports whether the campaign may be served at the given
// instant: active status and flag, inside the serving window, and below
// both caps. Placement, fallback and segmentation checks are the
// caller's concern.
func (c *Campaign) EligibleAt(now time.Time) bool {
	if c.Status != StatusActive || !c.IsActive {
		return false
	}
	if c.StartAt != nil && now.Before(*c.StartAt) {
		return false
	}
	if c.EndAt != nil && now.After(*c.EndAt) {
		return false
	}
	if c.MaxImpressions != nil && c.Impressions >= *c.MaxImpressions {
		return false
	}
	if c.MaxClicks != nil && c.Clicks >= *c.MaxClicks {
		return false
	}
	return true
}

// ClampedWeight returns the selection weight with negative values
// clamped to zero.
func (c *Campaign) ClampedWeight() int64 {
	if c.Weight < 0 {
		return 0
	}
	return c.Weight
}

// WindowDays returns the length of the serving window in whole days,
// rounded up, defaulting to 30 when either bound is missing. It feeds
// the pricing policy at approval time.
func (c *Campaign) WindowDays() int {
	if c.StartAt == nil || c.EndAt == nil {
		return 30
	}
	d := c.EndAt.Sub(*c.StartAt)
	days := int((d + 24*time.Hour - 1) / (24 * time.Hour))
	if days < 1 {
		return 1
	}
	return days
}
