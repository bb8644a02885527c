package geoip_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/threesixtycreation/mockup-funnel/internal/infra/integration/geoip"
)

func TestLookup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/json/203.0.113.7", r.URL.Path)
		w.Write([]byte(`{
			"status": "success",
			"city": "Bristol",
			"regionName": "England",
			"country": "United Kingdom",
			"lat": 51.4545,
			"lon": -2.5879
		}`))
	}))
	defer server.Close()

	client := geoip.NewClientWithBaseURL(server.URL)
	loc, err := client.Lookup(context.Background(), "203.0.113.7")

	assert.NoError(t, err)
	assert.NotNil(t, loc)
	assert.Equal(t, "Bristol", loc.City)
	assert.Equal(t, "England", loc.Region)
	assert.Equal(t, "United Kingdom", loc.Country)
	assert.Equal(t, 51.4545, loc.Lat)
	assert.Equal(t, -2.5879, loc.Lon)
}

func TestLookupSkipsLocalAddresses(t *testing.T) {
	client := geoip.NewClientWithBaseURL("http://127.0.0.1:0")

	for _, ip := range []string{"", "unknown", "::1", "127.0.0.1"} {
		loc, err := client.Lookup(context.Background(), ip)
		assert.NoError(t, err)
		assert.Nil(t, loc)
	}
}

func TestLookupUpstreamFailureStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"fail","message":"private range"}`))
	}))
	defer server.Close()

	client := geoip.NewClientWithBaseURL(server.URL)
	loc, err := client.Lookup(context.Background(), "10.0.0.1")

	assert.NoError(t, err)
	assert.Nil(t, loc)
}

func TestLookupHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := geoip.NewClientWithBaseURL(server.URL)
	loc, err := client.Lookup(context.Background(), "203.0.113.7")

	assert.Error(t, err)
	assert.Nil(t, loc)
}
