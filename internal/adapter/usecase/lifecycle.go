package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"agora-ads/internal/core/domain"
	"agora-ads/internal/core/port"
)

// Lifecycle implements port.CampaignLifecycle. It validates input and
// actor permissions up front, then delegates the actual transition to
// the repository's compare-and-set update so an illegal move can never
// commit, even when two admins race.
type Lifecycle struct {
	repo    port.CampaignRepository
	pricing port.PricingPolicy

	now func() time.Time
}

// NewLifecycle creates the lifecycle usecase. The pricing policy is
// consulted only when a campaign reaches approval without a price.
func NewLifecycle(repo port.CampaignRepository, pricing port.PricingPolicy) *Lifecycle {
	return &Lifecycle{repo: repo, pricing: pricing, now: time.Now}
}

// Submit creates a campaign in the submitted status on behalf of the
// actor.
func (u *Lifecycle) Submit(ctx context.Context, actor domain.Actor, req port.SubmitReq) (*domain.Campaign, error) {
	if actor.ID == "" {
		return nil, fmt.Errorf("%w: anonymous submission", port.ErrPermission)
	}
	if err := validateSubmit(req); err != nil {
		return nil, err
	}
	now := u.now().UTC()
	c := &domain.Campaign{
		ID:             uuid.NewString(),
		Title:          req.Title,
		ImageURL:       req.ImageURL,
		TargetURL:      req.TargetURL,
		Placement:      req.Placement,
		Status:         domain.StatusSubmitted,
		IsFallback:     req.IsFallback,
		Weight:         req.Weight,
		PriceMinor:     req.PriceMinor,
		StartAt:        req.StartAt,
		EndAt:          req.EndAt,
		MaxImpressions: req.MaxImpressions,
		MaxClicks:      req.MaxClicks,
		Segmentation:   req.Segmentation,
		CreatedBy:      actor.ID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := u.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func validateSubmit(req port.SubmitReq) error {
	if req.Title == "" {
		return fmt.Errorf("%w: title is required", port.ErrValidation)
	}
	if req.TargetURL == "" {
		return fmt.Errorf("%w: target url is required", port.ErrValidation)
	}
	if !req.Placement.Valid() {
		return fmt.Errorf("%w: unknown placement %q", port.ErrValidation, req.Placement)
	}
	if req.StartAt != nil && req.EndAt != nil && req.StartAt.After(*req.EndAt) {
		return fmt.Errorf("%w: start_at after end_at", port.ErrValidation)
	}
	if req.MaxImpressions != nil && *req.MaxImpressions < 0 {
		return fmt.Errorf("%w: negative max_impressions", port.ErrValidation)
	}
	if req.MaxClicks != nil && *req.MaxClicks < 0 {
		return fmt.Errorf("%w: negative max_clicks", port.ErrValidation)
	}
	if req.PriceMinor < 0 {
		return fmt.Errorf("%w: negative price", port.ErrValidation)
	}
	return nil
}

// Review marks a submitted campaign as under review. Admin only.
func (u *Lifecycle) Review(ctx context.Context, actor domain.Actor, id string) (*domain.Campaign, error) {
	if !actor.Admin() {
		return nil, fmt.Errorf("%w: review requires admin", port.ErrPermission)
	}
	return u.repo.UpdateStatus(ctx, id, domain.ReviewFrom, port.StatusChange{
		To: domain.StatusUnderReview,
	})
}

// Approve moves a campaign to approved, recording the approver and
// assigning the policy price when the submitter supplied none. Admin
// only.
func (u *Lifecycle) Approve(ctx context.Context, actor domain.Actor, id string) (*domain.Campaign, error) {
	if !actor.Admin() {
		return nil, fmt.Errorf("%w: approval requires admin", port.ErrPermission)
	}
	c, err := u.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, port.ErrNotFound
	}
	change := port.StatusChange{To: domain.StatusApproved}
	if c.PriceMinor == 0 {
		price := u.pricing.Price(c.Placement, c.WindowDays())
		change.PriceMinor = &price
	}
	now := u.now().UTC()
	change.ApprovedBy = &actor.ID
	change.ApprovedAt = &now
	return u.repo.UpdateStatus(ctx, id, domain.ApproveFrom, change)
}

// Reject is the admin side-exit available from any non-terminal status.
// It requires a reason and is the only transition that force-clears the
// serving flag.
func (u *Lifecycle) Reject(ctx context.Context, actor domain.Actor, id, reason string) (*domain.Campaign, error) {
	if !actor.Admin() {
		return nil, fmt.Errorf("%w: rejection requires admin", port.ErrPermission)
	}
	if reason == "" {
		return nil, fmt.Errorf("%w: rejection reason is required", port.ErrValidation)
	}
	now := u.now().UTC()
	inactive := false
	return u.repo.UpdateStatus(ctx, id, domain.RejectFrom, port.StatusChange{
		To:             domain.StatusRejected,
		IsActive:       &inactive,
		RejectedBy:     &actor.ID,
		RejectedAt:     &now,
		RejectedReason: &reason,
	})
}

// Checkout moves an approved campaign to awaiting_payment. The owner or
// an admin may initiate it; re-entry from awaiting_payment is allowed so
// an abandoned checkout can be restarted.
func (u *Lifecycle) Checkout(ctx context.Context, actor domain.Actor, id string) (*domain.Campaign, error) {
	c, err := u.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, port.ErrNotFound
	}
	if !actor.Admin() && !actor.Owns(c) {
		return nil, fmt.Errorf("%w: checkout requires owner or admin", port.ErrPermission)
	}
	return u.repo.UpdateStatus(ctx, id, domain.CheckoutFrom, port.StatusChange{
		To: domain.StatusAwaitingPayment,
	})
}

// Archive retires a campaign from any non-terminal status. Admin only.
func (u *Lifecycle) Archive(ctx context.Context, actor domain.Actor, id string) (*domain.Campaign, error) {
	if !actor.Admin() {
		return nil, fmt.Errorf("%w: archival requires admin", port.ErrPermission)
	}
	inactive := false
	return u.repo.UpdateStatus(ctx, id, domain.ArchiveFrom, port.StatusChange{
		To:       domain.StatusArchived,
		IsActive: &inactive,
	})
}
