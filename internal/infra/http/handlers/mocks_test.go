package handlers_test

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/threesixtycreation/mockup-funnel/internal/entity"
	"github.com/threesixtycreation/mockup-funnel/internal/infra/integration/geoip"
	"github.com/threesixtycreation/mockup-funnel/internal/infra/integration/places"
)

type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) FindAll(ctx context.Context) ([]entity.Lead, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) FindCreatedSince(ctx context.Context, since time.Time) ([]entity.Lead, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) UpdateStatus(ctx context.Context, id, status string) (*entity.Lead, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) SetMockups(ctx context.Context, id string, urls []string, sentAt time.Time) (*entity.Lead, error) {
	args := m.Called(ctx, id, urls, sentAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) MarkViewed(ctx context.Context, id string) (*entity.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) SetInterest(ctx context.Context, id string, interested bool, status string) error {
	args := m.Called(ctx, id, interested, status)
	return args.Error(0)
}

type MockObjectStore struct {
	mock.Mock
}

func (m *MockObjectStore) Upload(ctx context.Context, bucket, name, contentType string, data io.Reader) (string, error) {
	args := m.Called(ctx, bucket, name, contentType, data)
	return args.String(0), args.Error(1)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendAdminAlert(lead *entity.Lead) error {
	args := m.Called(lead)
	return args.Error(0)
}

func (m *MockMailer) SendCustomerConfirmation(lead *entity.Lead) error {
	args := m.Called(lead)
	return args.Error(0)
}

func (m *MockMailer) SendMockupReady(lead *entity.Lead) error {
	args := m.Called(lead)
	return args.Error(0)
}

func (m *MockMailer) SendInterestResponse(lead *entity.Lead, interested bool) error {
	args := m.Called(lead, interested)
	return args.Error(0)
}

type MockPageViewRepository struct {
	mock.Mock
}

func (m *MockPageViewRepository) Insert(ctx context.Context, view *entity.PageView) error {
	args := m.Called(ctx, view)
	return args.Error(0)
}

func (m *MockPageViewRepository) FindCreatedSince(ctx context.Context, since time.Time) ([]entity.PageView, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.PageView), args.Error(1)
}

type MockLiveVisitorRepository struct {
	mock.Mock
}

func (m *MockLiveVisitorRepository) Upsert(ctx context.Context, v *entity.LiveVisitor) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockLiveVisitorRepository) FindSeenSince(ctx context.Context, since time.Time) ([]entity.LiveVisitor, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.LiveVisitor), args.Error(1)
}

func (m *MockLiveVisitorRepository) PurgeSeenBefore(ctx context.Context, cutoff time.Time) error {
	args := m.Called(ctx, cutoff)
	return args.Error(0)
}

type MockGeoLocator struct {
	mock.Mock
}

func (m *MockGeoLocator) Lookup(ctx context.Context, ip string) (*geoip.Location, error) {
	args := m.Called(ctx, ip)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*geoip.Location), args.Error(1)
}

type MockPlaceFinder struct {
	mock.Mock
}

func (m *MockPlaceFinder) FindPlace(ctx context.Context, query string) (*places.Place, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*places.Place), args.Error(1)
}
