package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrLeadNotFound = errors.New("lead not found")

// Lead statuses. Flat enumeration: staff may move a lead from any status to
// any other, there is no enforced transition graph.
const (
	StatusNew        = "new"
	StatusInProgress = "in_progress"
	StatusMockupSent = "mockup_sent"
	StatusFollowedUp = "followed_up"
	StatusConverted  = "converted"
	StatusClosed     = "closed"
)

var leadStatuses = map[string]bool{
	StatusNew:        true,
	StatusInProgress: true,
	StatusMockupSent: true,
	StatusFollowedUp: true,
	StatusConverted:  true,
	StatusClosed:     true,
}

func IsValidStatus(status string) bool {
	return leadStatuses[status]
}

type Lead struct {
	ID           string `json:"id"`
	FirstName    string `json:"first_name"`
	BusinessName string `json:"business_name"`
	Location     string `json:"location"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	Extras       string `json:"extras,omitempty"`
	Trade        string `json:"trade"`

	LogoURL string `json:"logo_url,omitempty"`

	Status string `json:"status"`

	UTMSource   string `json:"utm_source,omitempty"`
	UTMMedium   string `json:"utm_medium,omitempty"`
	UTMCampaign string `json:"utm_campaign,omitempty"`

	// MockupURL keeps the first mockup for older dashboard clients,
	// MockupURLs carries the full ordered set.
	MockupURL  string   `json:"mockup_url,omitempty"`
	MockupURLs []string `json:"mockup_urls,omitempty"`

	MockupSentAt *time.Time `json:"mockup_sent_at,omitempty"`
	ViewedAt     *time.Time `json:"viewed_at,omitempty"`
	Interested   *bool      `json:"interested,omitempty"`
	InterestedAt *time.Time `json:"interested_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Factory
func NewLead(firstName, businessName, location, email string) (*Lead, error) {
	lead := &Lead{
		ID:           uuid.New().String(),
		FirstName:    firstName,
		BusinessName: businessName,
		Location:     location,
		Email:        email,
		Trade:        DefaultTradeSlug,
		Status:       StatusNew,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := lead.Validate(); err != nil {
		return nil, err
	}

	return lead, nil
}

func (l *Lead) Validate() error {
	if l.FirstName == "" {
		return errors.New("first name is required")
	}
	if l.BusinessName == "" {
		return errors.New("business name is required")
	}
	if l.Location == "" {
		return errors.New("location is required")
	}
	if l.Email == "" {
		return errors.New("email is required")
	}
	return nil
}

// HasMockup reports whether a mockup set has been delivered. A lead saved
// before the plural column existed may only carry MockupURL.
func (l *Lead) HasMockup() bool {
	return len(l.MockupURLs) > 0 || l.MockupURL != ""
}

// AllMockups returns the ordered mockup list, falling back to the legacy
// singular field for old rows.
func (l *Lead) AllMockups() []string {
	if len(l.MockupURLs) > 0 {
		return l.MockupURLs
	}
	if l.MockupURL != "" {
		return []string{l.MockupURL}
	}
	return nil
}

type LeadRepository interface {
	Create(ctx context.Context, lead *Lead) error
	FindByID(ctx context.Context, id string) (*Lead, error)
	FindAll(ctx context.Context) ([]Lead, error)
	FindCreatedSince(ctx context.Context, since time.Time) ([]Lead, error)
	UpdateStatus(ctx context.Context, id, status string) (*Lead, error)
	SetMockups(ctx context.Context, id string, urls []string, sentAt time.Time) (*Lead, error)
	MarkViewed(ctx context.Context, id string) (*Lead, error)
	SetInterest(ctx context.Context, id string, interested bool, status string) error
}
