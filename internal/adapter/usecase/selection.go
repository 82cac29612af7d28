package usecase

import (
	"math/rand"

	"agora-ads/internal/core/domain"
)

// pickAll returns up to n campaigns in their natural order. The
// repository delivers the pool newest first, so no re-sort is needed.
func pickAll(pool []domain.Campaign, n int) []domain.Campaign {
	if n > len(pool) {
		n = len(pool)
	}
	return pool[:n]
}

// pickRandom returns up to n campaigns from a uniformly random
// permutation of the pool.
func pickRandom(pool []domain.Campaign, n int, r *rand.Rand) []domain.Campaign {
	if n > len(pool) {
		n = len(pool)
	}
	picks := make([]domain.Campaign, 0, n)
	for _, i := range r.Perm(len(pool))[:n] {
		picks = append(picks, pool[i])
	}
	return picks
}

// pickWeighted draws up to n campaigns without replacement with
// probability proportional to their clamped weight. When the remaining
// pool's total weight drops to zero no further picks are made, so a
// pool of all-zero weights yields nothing.
func pickWeighted(pool []domain.Campaign, n int, r *rand.Rand) []domain.Campaign {
	remaining := make([]domain.Campaign, len(pool))
	copy(remaining, pool)

	picks := make([]domain.Campaign, 0, min(n, len(pool)))
	for len(picks) < n && len(remaining) > 0 {
		var total int64
		for i := range remaining {
			total += remaining[i].ClampedWeight()
		}
		if total <= 0 {
			break
		}
		draw := r.Int63n(total)
		idx := 0
		for i := range remaining {
			draw -= remaining[i].ClampedWeight()
			if draw < 0 {
				idx = i
				break
			}
		}
		picks = append(picks, remaining[idx])
		remaining = append(remaining[:idx], remaining[idx+1:]...)
	}
	return picks
}
