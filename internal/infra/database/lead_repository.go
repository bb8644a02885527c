package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/threesixtycreation/mockup-funnel/internal/entity"
)

const leadColumns = `
	id, first_name, business_name, location, email, phone, extras, trade,
	logo_url, status, utm_source, utm_medium, utm_campaign,
	mockup_url, mockup_urls, mockup_sent_at, viewed_at,
	interested, interested_at, created_at, updated_at
`

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO submissions (
			id, first_name, business_name, location, email, phone, extras, trade,
			logo_url, status, utm_source, utm_medium, utm_campaign, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err := r.DB.ExecContext(ctx, query,
		lead.ID,
		lead.FirstName,
		lead.BusinessName,
		lead.Location,
		lead.Email,
		nullString(lead.Phone),
		nullString(lead.Extras),
		lead.Trade,
		nullString(lead.LogoURL),
		lead.Status,
		nullString(lead.UTMSource),
		nullString(lead.UTMMedium),
		nullString(lead.UTMCampaign),
		lead.CreatedAt,
		lead.UpdatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			return fmt.Errorf("insert submission: %s: %w", pqErr.Code.Name(), err)
		}
		return fmt.Errorf("insert submission: %w", err)
	}

	return nil
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM submissions WHERE id = $1`

	lead, err := scanLead(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrLeadNotFound
		}
		return nil, err
	}
	return lead, nil
}

func (r *LeadRepository) FindAll(ctx context.Context) ([]entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM submissions ORDER BY created_at DESC`
	return r.queryLeads(ctx, query)
}

func (r *LeadRepository) FindCreatedSince(ctx context.Context, since time.Time) ([]entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM submissions WHERE created_at >= $1 ORDER BY created_at DESC`
	return r.queryLeads(ctx, query, since)
}

// UpdateStatus overwrites the status field, any value from the enum to any
// other. The caller validates membership.
func (r *LeadRepository) UpdateStatus(ctx context.Context, id, status string) (*entity.Lead, error) {
	query := `
		UPDATE submissions SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + leadColumns

	lead, err := scanLead(r.DB.QueryRowContext(ctx, query, id, status))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrLeadNotFound
		}
		return nil, fmt.Errorf("update status: %w", err)
	}
	return lead, nil
}

// SetMockups replaces the active mockup set. The first URL also lands in the
// legacy singular column.
func (r *LeadRepository) SetMockups(ctx context.Context, id string, urls []string, sentAt time.Time) (*entity.Lead, error) {
	if len(urls) == 0 {
		return nil, errors.New("no mockup urls given")
	}

	query := `
		UPDATE submissions SET
			mockup_url = $2,
			mockup_urls = $3,
			status = $4,
			mockup_sent_at = $5,
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + leadColumns

	lead, err := scanLead(r.DB.QueryRowContext(ctx, query,
		id, urls[0], pq.Array(urls), entity.StatusMockupSent, sentAt))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrLeadNotFound
		}
		return nil, fmt.Errorf("set mockups: %w", err)
	}
	return lead, nil
}

// MarkViewed stamps viewed_at on the first view only. COALESCE keeps the
// original timestamp when two views race.
func (r *LeadRepository) MarkViewed(ctx context.Context, id string) (*entity.Lead, error) {
	query := `
		UPDATE submissions SET
			viewed_at = COALESCE(viewed_at, NOW()),
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + leadColumns

	lead, err := scanLead(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrLeadNotFound
		}
		return nil, fmt.Errorf("mark viewed: %w", err)
	}
	return lead, nil
}

func (r *LeadRepository) SetInterest(ctx context.Context, id string, interested bool, status string) error {
	query := `
		UPDATE submissions SET
			interested = $2,
			interested_at = NOW(),
			status = $3,
			updated_at = NOW()
		WHERE id = $1
	`

	res, err := r.DB.ExecContext(ctx, query, id, interested, status)
	if err != nil {
		return fmt.Errorf("set interest: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entity.ErrLeadNotFound
	}
	return nil
}

func (r *LeadRepository) queryLeads(ctx context.Context, query string, args ...any) ([]entity.Lead, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query submissions: %w", err)
	}
	defer rows.Close()

	var leads []entity.Lead
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, *lead)
	}
	return leads, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLead(row rowScanner) (*entity.Lead, error) {
	var lead entity.Lead
	var phone, extras, logoURL, utmSource, utmMedium, utmCampaign, mockupURL sql.NullString
	var mockupURLs pq.StringArray

	err := row.Scan(
		&lead.ID,
		&lead.FirstName,
		&lead.BusinessName,
		&lead.Location,
		&lead.Email,
		&phone,
		&extras,
		&lead.Trade,
		&logoURL,
		&lead.Status,
		&utmSource,
		&utmMedium,
		&utmCampaign,
		&mockupURL,
		&mockupURLs,
		&lead.MockupSentAt,
		&lead.ViewedAt,
		&lead.Interested,
		&lead.InterestedAt,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	lead.Phone = phone.String
	lead.Extras = extras.String
	lead.LogoURL = logoURL.String
	lead.UTMSource = utmSource.String
	lead.UTMMedium = utmMedium.String
	lead.UTMCampaign = utmCampaign.String
	lead.MockupURL = mockupURL.String
	lead.MockupURLs = mockupURLs

	return &lead, nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
