package entity

import (
	"context"
	"time"
)

// PageView is a single landing-page impression. Insert-only, no dedup: the
// same visitor reloading the page records another row.
type PageView struct {
	ID          int64     `json:"id"`
	VisitorID   string    `json:"visitor_id"`
	Page        string    `json:"page"`
	UTMSource   string    `json:"utm_source,omitempty"`
	UTMMedium   string    `json:"utm_medium,omitempty"`
	UTMCampaign string    `json:"utm_campaign,omitempty"`
	Referrer    string    `json:"referrer,omitempty"`
	UserAgent   string    `json:"user_agent,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// LiveVisitor is the rolling presence row for one anonymous visitor, keyed by
// visitor id. Heartbeats upsert it last-write-wins; stale rows are purged as a
// side effect of the live query.
type LiveVisitor struct {
	VisitorID string    `json:"visitor_id"`
	Page      string    `json:"page"`
	UTMSource string    `json:"utm_source,omitempty"`
	IPAddress string    `json:"ip_address"`
	City      string    `json:"city,omitempty"`
	Region    string    `json:"region,omitempty"`
	Country   string    `json:"country,omitempty"`
	Lat       *float64  `json:"lat,omitempty"`
	Lon       *float64  `json:"lon,omitempty"`
	LastSeen  time.Time `json:"last_seen"`
}

type PageViewRepository interface {
	Insert(ctx context.Context, view *PageView) error
	FindCreatedSince(ctx context.Context, since time.Time) ([]PageView, error)
}

type LiveVisitorRepository interface {
	Upsert(ctx context.Context, visitor *LiveVisitor) error
	FindSeenSince(ctx context.Context, since time.Time) ([]LiveVisitor, error)
	PurgeSeenBefore(ctx context.Context, cutoff time.Time) error
}
