package pricing

import (
	"agora-ads/internal/config/configs"
	"agora-ads/internal/core/domain"
)

// Table is a deterministic pricing policy: each placement carries a
// monthly rate in minor units, prorated by the serving window length
// and rounded up. The table is injected from configuration; there is no
// global price state.
type Table struct {
	rates map[domain.Placement]int64
}

// NewTable builds the policy from the configured per-placement rates.
func NewTable(cfg configs.Pricing) *Table {
	return &Table{rates: map[domain.Placement]int64{
		domain.PlacementHomeTop:       cfg.HomeTop,
		domain.PlacementHomeBottom:    cfg.HomeBottom,
		domain.PlacementSidebarRight1: cfg.SidebarRight1,
		domain.PlacementSidebarRight2: cfg.SidebarRight2,
		domain.PlacementCommunityFeed: cfg.CommunityFeed,
	}}
}

// Price returns ceil(rate * windowDays / 30) for the placement. Windows
// shorter than a day are billed as one day.
func (t *Table) Price(placement domain.Placement, windowDays int) int64 {
	rate := t.rates[placement]
	if windowDays < 1 {
		windowDays = 1
	}
	return (rate*int64(windowDays) + 29) / 30
}
