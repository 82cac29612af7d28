package port

import "agora-ads/internal/core/domain"

// PricingPolicy computes the default campaign price in minor units. It
// is injected into the lifecycle usecase and consulted only when a
// campaign reaches approval without a price.
type PricingPolicy interface {
	Price(placement domain.Placement, windowDays int) int64
}
