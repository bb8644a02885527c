package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/threesixtycreation/mockup-funnel/internal/entity"
)

type PageViewRepository struct {
	DB *sql.DB
}

func NewPageViewRepository(db *sql.DB) *PageViewRepository {
	return &PageViewRepository{DB: db}
}

// Insert records one impression. No dedup: reloads count again.
func (r *PageViewRepository) Insert(ctx context.Context, view *entity.PageView) error {
	query := `
		INSERT INTO page_views (visitor_id, page, utm_source, utm_medium, utm_campaign, referrer, user_agent)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := r.DB.QueryRowContext(ctx, query,
		view.VisitorID,
		view.Page,
		nullString(view.UTMSource),
		nullString(view.UTMMedium),
		nullString(view.UTMCampaign),
		nullString(view.Referrer),
		nullString(view.UserAgent),
	).Scan(&view.ID, &view.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert page view: %w", err)
	}
	return nil
}

func (r *PageViewRepository) FindCreatedSince(ctx context.Context, since time.Time) ([]entity.PageView, error) {
	query := `
		SELECT id, visitor_id, page, utm_source, utm_medium, utm_campaign, referrer, user_agent, created_at
		FROM page_views
		WHERE created_at >= $1
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("query page views: %w", err)
	}
	defer rows.Close()

	var views []entity.PageView
	for rows.Next() {
		var v entity.PageView
		var source, medium, campaign, referrer, userAgent sql.NullString
		if err := rows.Scan(&v.ID, &v.VisitorID, &v.Page, &source, &medium, &campaign, &referrer, &userAgent, &v.CreatedAt); err != nil {
			return nil, err
		}
		v.UTMSource = source.String
		v.UTMMedium = medium.String
		v.UTMCampaign = campaign.String
		v.Referrer = referrer.String
		v.UserAgent = userAgent.String
		views = append(views, v)
	}
	return views, rows.Err()
}
