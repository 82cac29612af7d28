package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"agora-ads/internal/core/domain"
	"agora-ads/internal/core/port"
)

// Reconciler implements port.PaymentReconciler. Activation is two
// atomic writes: the event id insert records the delivery and the
// status-guarded update performs the transition. The guard, not the
// recorded key, absorbs duplicates, so a redelivery after a transient
// activation failure still converges on the active status.
type Reconciler struct {
	repo     port.CampaignRepository
	notifier port.Notifier
	logger   *slog.Logger

	now func() time.Time
}

// NewReconciler creates the payment reconciliation usecase.
func NewReconciler(repo port.CampaignRepository, notifier port.Notifier, logger *slog.Logger) *Reconciler {
	return &Reconciler{repo: repo, notifier: notifier, logger: logger, now: time.Now}
}

// HandleEvent processes one payment-confirmation event. Malformed or
// unconfirmed events return ErrExternalEvent without touching any
// campaign; duplicates converge on the status guard. The activation
// notification is best-effort and never rolls back the transition.
func (r *Reconciler) HandleEvent(ctx context.Context, ev domain.PaymentEvent) error {
	switch {
	case ev.EventID == "":
		return fmt.Errorf("%w: missing event id", port.ErrExternalEvent)
	case ev.CampaignID == "":
		return fmt.Errorf("%w: missing campaign id", port.ErrExternalEvent)
	case !ev.Confirmed:
		return fmt.Errorf("%w: payment not confirmed", port.ErrExternalEvent)
	case ev.ValidityMonths < 1:
		return fmt.Errorf("%w: invalid validity of %d months", port.ErrExternalEvent, ev.ValidityMonths)
	}

	fresh, err := r.repo.RecordPaymentEvent(ctx, ev.EventID, ev.CampaignID)
	if err != nil {
		return err
	}
	if !fresh {
		// A replayed id must still re-drive the conditional activation:
		// the previous delivery may have recorded the key and then
		// failed before the campaign row changed.
		r.logger.Debug("payment event replayed",
			slog.String("event_id", ev.EventID),
			slog.String("campaign_id", ev.CampaignID))
	}

	c, activated, err := r.repo.Activate(ctx, ev.CampaignID, r.now().UTC(), ev.ValidityMonths)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return fmt.Errorf("%w: unknown campaign %s", port.ErrExternalEvent, ev.CampaignID)
		}
		return err
	}
	if !activated {
		r.logger.Info("payment event for settled campaign absorbed",
			slog.String("event_id", ev.EventID),
			slog.String("campaign_id", ev.CampaignID),
			slog.String("status", string(c.Status)))
		return nil
	}

	if err = r.notifier.NotifyActivation(ctx, c); err != nil {
		r.logger.Warn("activation notification failed",
			slog.String("campaign_id", c.ID),
			slog.Any("error", err))
	}
	return nil
}
