// Package geoip resolves an approximate latitude/longitude/city from the
// host's network egress point using the ipapi.co JSON endpoint.
package geoip

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// DefaultEndpoint is the IP geolocation lookup URL.
const DefaultEndpoint = "https://ipapi.co/json/"

const lookupTimeout = 5 * time.Second

// Location is a resolved egress point.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	City      string  `json:"city"`
}

// Client performs IP geolocation lookups.
type Client struct {
	httpClient *http.Client
	endpoint   string
}

// NewClient creates a geolocation client. A nil httpClient gets a client
// with the default 5-second timeout; an empty endpoint uses DefaultEndpoint.
func NewClient(httpClient *http.Client, endpoint string) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: lookupTimeout}
	}
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{httpClient: httpClient, endpoint: endpoint}
}

// Locate resolves the host's approximate location. Any transport, status
// or decode failure is returned as-is; there is no retry at this layer.
func (c *Client) Locate(ctx context.Context) (*Location, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geoip lookup: unexpected status %s", resp.Status)
	}
	var loc Location
	if err := json.NewDecoder(resp.Body).Decode(&loc); err != nil {
		return nil, fmt.Errorf("geoip lookup: %w", err)
	}
	return &loc, nil
}
