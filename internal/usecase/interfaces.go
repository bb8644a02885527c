package usecase

import (
	"context"
	"io"

	"github.com/threesixtycreation/mockup-funnel/internal/entity"
	"github.com/threesixtycreation/mockup-funnel/internal/infra/integration/geoip"
	"github.com/threesixtycreation/mockup-funnel/internal/infra/integration/places"
)

// ObjectStore stores uploaded assets and hands back public URLs.
type ObjectStore interface {
	Upload(ctx context.Context, bucket, name, contentType string, data io.Reader) (string, error)
}

// Mailer sends the transactional notifications. Every send is best-effort:
// callers log failures and move on.
type Mailer interface {
	SendAdminAlert(lead *entity.Lead) error
	SendCustomerConfirmation(lead *entity.Lead) error
	SendMockupReady(lead *entity.Lead) error
	SendInterestResponse(lead *entity.Lead, interested bool) error
}

type PlaceFinder interface {
	FindPlace(ctx context.Context, query string) (*places.Place, error)
}

type GeoLocator interface {
	Lookup(ctx context.Context, ip string) (*geoip.Location, error)
}
