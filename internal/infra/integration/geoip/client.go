package geoip

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultBaseURL = "http://ip-api.com"

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient() *Client {
	return &Client{
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func NewClientWithBaseURL(baseURL string) *Client {
	c := NewClient()
	c.baseURL = baseURL
	return c
}

// Lookup resolves an IP to an approximate location. Loopback and unknown
// addresses, and lookups the upstream cannot place, return nil without error:
// geolocation is best-effort.
func (c *Client) Lookup(ctx context.Context, ip string) (*Location, error) {
	if ip == "" || ip == "unknown" || ip == "::1" || ip == "127.0.0.1" {
		return nil, nil
	}

	endpoint := fmt.Sprintf("%s/json/%s?fields=status,city,regionName,country,lat,lon", c.baseURL, ip)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geo lookup request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geo lookup status %d", resp.StatusCode)
	}

	var response lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("decode geo response: %w", err)
	}

	if response.Status != "success" {
		return nil, nil
	}

	return &Location{
		City:    response.City,
		Region:  response.RegionName,
		Country: response.Country,
		Lat:     response.Lat,
		Lon:     response.Lon,
	}, nil
}
