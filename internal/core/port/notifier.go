package port

import (
	"context"

	"agora-ads/internal/core/domain"
)

// Notifier dispatches a message to the owner of a freshly activated
// campaign. Calls are best-effort: the reconciler logs failures and
// never rolls back an activation because of them.
type Notifier interface {
	NotifyActivation(ctx context.Context, c *domain.Campaign) error
}
