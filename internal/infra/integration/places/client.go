package places

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://maps.googleapis.com/maps/api/place"

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// NewClientWithBaseURL is used by tests to point at a stub server.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = baseURL
	return c
}

// FindPlace runs a find-place-from-text query and returns the best candidate,
// or nil when the listing cannot be found.
func (c *Client) FindPlace(ctx context.Context, query string) (*Place, error) {
	endpoint := fmt.Sprintf(
		"%s/findplacefromtext/json?input=%s&inputtype=textquery&fields=%s&key=%s",
		c.baseURL,
		url.QueryEscape(query),
		url.QueryEscape("name,formatted_address,place_id,rating,user_ratings_total,business_status"),
		c.apiKey,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("places api status %d", resp.StatusCode)
	}

	var response findPlaceResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("decode places response: %w", err)
	}

	if response.Status != "OK" || len(response.Candidates) == 0 {
		if response.Status != "OK" && response.Status != "ZERO_RESULTS" {
			log.Printf("places api returned %s: %s", response.Status, response.ErrorMessage)
		}
		return nil, nil
	}

	best := response.Candidates[0]
	return &Place{
		Name:           best.Name,
		Address:        best.FormattedAddress,
		Rating:         best.Rating,
		ReviewCount:    best.UserRatingsTotal,
		PlaceID:        best.PlaceID,
		BusinessStatus: best.BusinessStatus,
	}, nil
}
