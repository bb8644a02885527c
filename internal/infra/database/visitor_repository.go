package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/threesixtycreation/mockup-funnel/internal/entity"
)

type LiveVisitorRepository struct {
	DB *sql.DB
}

func NewLiveVisitorRepository(db *sql.DB) *LiveVisitorRepository {
	return &LiveVisitorRepository{DB: db}
}

// Upsert converges concurrent heartbeats for one visitor to a single row,
// last write wins on page and last_seen.
func (r *LiveVisitorRepository) Upsert(ctx context.Context, v *entity.LiveVisitor) error {
	query := `
		INSERT INTO live_visitors (visitor_id, page, utm_source, ip_address, city, region, country, lat, lon, last_seen)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		ON CONFLICT (visitor_id)
		DO UPDATE SET
			page = EXCLUDED.page,
			utm_source = EXCLUDED.utm_source,
			ip_address = EXCLUDED.ip_address,
			city = COALESCE(EXCLUDED.city, live_visitors.city),
			region = COALESCE(EXCLUDED.region, live_visitors.region),
			country = COALESCE(EXCLUDED.country, live_visitors.country),
			lat = COALESCE(EXCLUDED.lat, live_visitors.lat),
			lon = COALESCE(EXCLUDED.lon, live_visitors.lon),
			last_seen = NOW()
		RETURNING last_seen
	`

	err := r.DB.QueryRowContext(ctx, query,
		v.VisitorID,
		v.Page,
		nullString(v.UTMSource),
		v.IPAddress,
		nullString(v.City),
		nullString(v.Region),
		nullString(v.Country),
		v.Lat,
		v.Lon,
	).Scan(&v.LastSeen)
	if err != nil {
		return fmt.Errorf("upsert live visitor: %w", err)
	}
	return nil
}

func (r *LiveVisitorRepository) FindSeenSince(ctx context.Context, since time.Time) ([]entity.LiveVisitor, error) {
	query := `
		SELECT visitor_id, page, utm_source, ip_address, city, region, country, lat, lon, last_seen
		FROM live_visitors
		WHERE last_seen >= $1
		ORDER BY last_seen DESC
	`

	rows, err := r.DB.QueryContext(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("query live visitors: %w", err)
	}
	defer rows.Close()

	var visitors []entity.LiveVisitor
	for rows.Next() {
		var v entity.LiveVisitor
		var source, city, region, country sql.NullString
		if err := rows.Scan(&v.VisitorID, &v.Page, &source, &v.IPAddress, &city, &region, &country, &v.Lat, &v.Lon, &v.LastSeen); err != nil {
			return nil, err
		}
		v.UTMSource = source.String
		v.City = city.String
		v.Region = region.String
		v.Country = country.String
		visitors = append(visitors, v)
	}
	return visitors, rows.Err()
}

func (r *LiveVisitorRepository) PurgeSeenBefore(ctx context.Context, cutoff time.Time) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM live_visitors WHERE last_seen < $1`, cutoff)
	if err != nil {
		return fmt.Errorf("purge live visitors: %w", err)
	}
	return nil
}
