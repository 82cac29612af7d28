package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo campaigns: one active paid campaign and one
// fallback per placement, plus a handful of campaigns stuck at earlier
// lifecycle stages for exercising the admin flows.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	placements := []string{
		"home_top", "home_bottom", "sidebar_right_1", "sidebar_right_2", "community_feed",
	}

	start := time.Now().AddDate(0, 0, -1)
	end := time.Now().AddDate(0, 1, 0)

	for i, placement := range placements {
		segmentation, _ := json.Marshal(map[string][]string{
			"communities": {"community-1", "community-2"},
		})
		_, err := db.Exec(ctx, `INSERT INTO campaigns
    (id, title, image_url, target_url, placement, status, is_active, is_fallback,
     weight, price_minor, start_at, end_at, max_impressions, segmentation, created_by)
VALUES ($1,$2,$3,$4,$5,'active',true,false,$6,$7,$8,$9,$10,$11,'seed-advertiser')
ON CONFLICT DO NOTHING`,
			uuid.NewString(),
			fmt.Sprintf("Demo campaign %d", i+1),
			fmt.Sprintf("https://example.com/creative/%d.png", i+1),
			fmt.Sprintf("https://example.com/landing/%d", i+1),
			placement,
			int64(i+1),      // weight
			int64(50000),    // price_minor
			start, end,
			int64(100000),   // max_impressions
			segmentation,
		)
		if err != nil {
			return err
		}

		// house fallback shown when no paid campaign is eligible
		_, err = db.Exec(ctx, `INSERT INTO campaigns
    (id, title, image_url, target_url, placement, status, is_active, is_fallback,
     weight, segmentation, created_by)
VALUES ($1,$2,$3,$4,$5,'active',true,true,0,'{}','seed-house')
ON CONFLICT DO NOTHING`,
			uuid.NewString(),
			fmt.Sprintf("House ad %d", i+1),
			fmt.Sprintf("https://example.com/house/%d.png", i+1),
			"https://example.com/advertise",
			placement,
		)
		if err != nil {
			return err
		}
	}

	// campaigns at earlier stages for the admin console
	for _, status := range []string{"submitted", "under_review", "approved", "awaiting_payment"} {
		_, err := db.Exec(ctx, `INSERT INTO campaigns
    (id, title, image_url, target_url, placement, status, weight, segmentation, created_by)
VALUES ($1,$2,$3,$4,'home_top',$5,1,'{}','seed-advertiser')
ON CONFLICT DO NOTHING`,
			uuid.NewString(),
			fmt.Sprintf("Pending campaign (%s)", status),
			"https://example.com/creative/pending.png",
			"https://example.com/landing/pending",
			status,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
