package timetable

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// DefaultBaseURL is the AlAdhan API root.
const DefaultBaseURL = "https://api.aladhan.com"

// DefaultMethod is AlAdhan calculation method 3 (Muslim World League).
const DefaultMethod = 3

const fetchTimeout = 5 * time.Second

// Client fetches daily timings from the AlAdhan API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	method     int
}

// NewClient creates an AlAdhan client. A nil httpClient gets a client with
// the default 5-second timeout, an empty baseURL uses DefaultBaseURL and a
// method of 0 uses DefaultMethod.
func NewClient(httpClient *http.Client, baseURL string, method int) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: fetchTimeout}
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if method == 0 {
		method = DefaultMethod
	}
	return &Client{httpClient: httpClient, baseURL: baseURL, method: method}
}

// Timings fetches the timetable for the given coordinates at the given
// instant (the API is keyed by unix timestamp). The returned document must
// contain all five prayers, otherwise ErrIncompleteTimings is returned.
func (c *Client) Timings(ctx context.Context, lat, lon float64, at time.Time) (*Document, error) {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("method", strconv.Itoa(c.method))
	endpoint := fmt.Sprintf("%s/v1/timings/%d?%s", c.baseURL, at.Unix(), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("aladhan fetch: unexpected status %s", resp.Status)
	}

	var payload struct {
		Code   int      `json:"code"`
		Status string   `json:"status"`
		Data   Document `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("aladhan fetch: %w", err)
	}
	for _, name := range PrayerNames {
		if _, ok := payload.Data.Timings[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrIncompleteTimings, name)
		}
	}
	return &payload.Data, nil
}
