package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"agora-ads/internal/core/domain"
	"agora-ads/internal/core/port"
)

// CampaignRepository implements port.CampaignRepository using pgxpool.
// All conditional writes are single UPDATE statements whose WHERE clause
// carries the compare predicate, so concurrent callers race on the row
// inside the database rather than in application code.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

const campaignColumns = `id, title, image_url, target_url, placement, status,
	is_active, is_fallback, weight, price_minor, start_at, end_at,
	max_impressions, max_clicks, impressions, clicks, segmentation,
	rejected_reason, created_by, approved_by, approved_at, rejected_by,
	rejected_at, created_at, updated_at`

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var (
		c       domain.Campaign
		segJSON []byte
	)
	err := row.Scan(
		&c.ID,
		&c.Title,
		&c.ImageURL,
		&c.TargetURL,
		&c.Placement,
		&c.Status,
		&c.IsActive,
		&c.IsFallback,
		&c.Weight,
		&c.PriceMinor,
		&c.StartAt,
		&c.EndAt,
		&c.MaxImpressions,
		&c.MaxClicks,
		&c.Impressions,
		&c.Clicks,
		&segJSON,
		&c.RejectedReason,
		&c.CreatedBy,
		&c.ApprovedBy,
		&c.ApprovedAt,
		&c.RejectedBy,
		&c.RejectedAt,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(segJSON) > 0 {
		if err = json.Unmarshal(segJSON, &c.Segmentation); err != nil {
			return nil, fmt.Errorf("decode segmentation: %w", err)
		}
	}
	return &c, nil
}

// Create stores a new campaign row.
func (r *CampaignRepository) Create(ctx context.Context, c *domain.Campaign) error {
	segJSON, err := json.Marshal(c.Segmentation)
	if err != nil {
		return fmt.Errorf("encode segmentation: %w", err)
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO campaigns
		(id, title, image_url, target_url, placement, status, is_active,
		 is_fallback, weight, price_minor, start_at, end_at,
		 max_impressions, max_clicks, segmentation, created_by,
		 created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$17)`,
		c.ID, c.Title, c.ImageURL, c.TargetURL, c.Placement, c.Status,
		c.IsActive, c.IsFallback, c.Weight, c.PriceMinor, c.StartAt, c.EndAt,
		c.MaxImpressions, c.MaxClicks, segJSON, c.CreatedBy, c.CreatedAt)
	return err
}

// Get returns a campaign by id, or (nil, nil) when absent.
func (r *CampaignRepository) Get(ctx context.Context, id string) (*domain.Campaign, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)
	c, err := scanCampaign(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// ListEligible returns servable non-fallback campaigns for the
// placement, newest first. The window, cap and status checks run in
// SQL; the usecase re-applies them on the snapshot together with
// segmentation.
func (r *CampaignRepository) ListEligible(ctx context.Context, placement domain.Placement, now time.Time) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+`
		FROM campaigns
		WHERE placement = $1
		  AND status = 'active' AND is_active AND NOT is_fallback
		  AND (start_at IS NULL OR start_at <= $2)
		  AND (end_at IS NULL OR end_at >= $2)
		  AND (max_impressions IS NULL OR impressions < max_impressions)
		  AND (max_clicks IS NULL OR clicks < max_clicks)
		ORDER BY created_at DESC`, placement, now)
	if err != nil {
		return nil, err
	}
	return collectCampaigns(rows)
}

// ListFallback returns active fallback campaigns for the placement,
// newest first. Caps and segmentation do not gate fallback serving.
func (r *CampaignRepository) ListFallback(ctx context.Context, placement domain.Placement, limit int) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+`
		FROM campaigns
		WHERE placement = $1 AND is_fallback AND is_active
		ORDER BY created_at DESC
		LIMIT $2`, placement, limit)
	if err != nil {
		return nil, err
	}
	return collectCampaigns(rows)
}

func collectCampaigns(rows pgx.Rows) ([]domain.Campaign, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		c, err := scanCampaign(row)
		if err != nil {
			return domain.Campaign{}, err
		}
		return *c, nil
	})
}

// UpdateStatus applies change iff the current status is one of from.
// The status compare and every field update travel in one statement;
// when no row matches, a follow-up read distinguishes a missing
// campaign from a transition conflict.
func (r *CampaignRepository) UpdateStatus(ctx context.Context, id string, from []domain.Status, change port.StatusChange) (*domain.Campaign, error) {
	fromStrs := make([]string, len(from))
	for i, s := range from {
		fromStrs[i] = string(s)
	}
	row := r.pool.QueryRow(ctx, `UPDATE campaigns SET
		status = $3,
		is_active = COALESCE($4, is_active),
		price_minor = COALESCE($5, price_minor),
		approved_by = COALESCE($6, approved_by),
		approved_at = COALESCE($7, approved_at),
		rejected_by = COALESCE($8, rejected_by),
		rejected_at = COALESCE($9, rejected_at),
		rejected_reason = COALESCE($10, rejected_reason),
		updated_at = now()
		WHERE id = $1 AND status = ANY($2)
		RETURNING `+campaignColumns,
		id, fromStrs, change.To, change.IsActive, change.PriceMinor,
		change.ApprovedBy, change.ApprovedAt, change.RejectedBy,
		change.RejectedAt, change.RejectedReason)
	c, err := scanCampaign(row)
	if errors.Is(err, pgx.ErrNoRows) {
		existing, getErr := r.Get(ctx, id)
		if getErr != nil {
			return nil, getErr
		}
		if existing == nil {
			return nil, port.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %s cannot move to %s", port.ErrConflict, existing.Status, change.To)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// IncrementCounter bumps the counter for kind iff the campaign exists
// and the matching cap leaves room. The cap check and the increment are
// one statement, so two concurrent callers can never jointly overshoot.
func (r *CampaignRepository) IncrementCounter(ctx context.Context, id string, kind domain.TrackKind) (bool, error) {
	var query string
	switch kind {
	case domain.KindImpression:
		query = `UPDATE campaigns
			SET impressions = impressions + 1, updated_at = now()
			WHERE id = $1 AND (max_impressions IS NULL OR impressions < max_impressions)`
	case domain.KindClick:
		query = `UPDATE campaigns
			SET clicks = clicks + 1, updated_at = now()
			WHERE id = $1 AND (max_clicks IS NULL OR clicks < max_clicks)`
	default:
		return false, fmt.Errorf("%w: unknown track kind %q", port.ErrValidation, kind)
	}
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// Activate drives the campaign to active unless it already is, or sits
// in a terminal status. The status guard lives in the WHERE clause, so
// replays racing the first activation converge without a
// read-then-write window.
func (r *CampaignRepository) Activate(ctx context.Context, id string, now time.Time, months int) (*domain.Campaign, bool, error) {
	row := r.pool.QueryRow(ctx, `UPDATE campaigns SET
		status = 'active',
		is_active = true,
		start_at = COALESCE(start_at, $2),
		end_at = COALESCE(start_at, $2) + make_interval(months => $3),
		updated_at = now()
		WHERE id = $1 AND status NOT IN ('active', 'rejected', 'archived')
		RETURNING `+campaignColumns,
		id, now, months)
	c, err := scanCampaign(row)
	if errors.Is(err, pgx.ErrNoRows) {
		existing, getErr := r.Get(ctx, id)
		if getErr != nil {
			return nil, false, getErr
		}
		if existing == nil {
			return nil, false, port.ErrNotFound
		}
		return existing, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return c, true, nil
}

// RecordPaymentEvent inserts the event id, reporting whether it was new.
func (r *CampaignRepository) RecordPaymentEvent(ctx context.Context, eventID, campaignID string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `INSERT INTO payment_events (event_id, campaign_id)
		VALUES ($1, $2) ON CONFLICT (event_id) DO NOTHING`, eventID, campaignID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// Stats aggregates the serving counters.
func (r *CampaignRepository) Stats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	query := `SELECT COALESCE(sum(impressions), 0), COALESCE(sum(clicks), 0) FROM campaigns`
	args := []any{}
	if req.CampaignID != nil {
		query += ` WHERE id = $1`
		args = append(args, *req.CampaignID)
	}
	var resp port.StatsResp
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&resp.Impressions, &resp.Clicks); err != nil {
		return nil, err
	}
	return &resp, nil
}
