// Package geocode resolves free-text queries to coordinates through the
// geocoding API.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/swapnilsborase/blooddonor-service/config"
	"github.com/swapnilsborase/blooddonor-service/internal/domain/entity"
	"github.com/swapnilsborase/blooddonor-service/internal/domain/fault"
)

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(cfg config.GeocodeConfig) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type geocodeResponse struct {
	Results []struct {
		Geometry struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"geometry"`
	} `json:"results"`
}

// Lookup returns the first match for the query, or nil when the service
// found nothing. Nil with a nil error is the "no match" result.
func (c *Client) Lookup(ctx context.Context, query string) (*entity.Coordinate, error) {
	endpoint := fmt.Sprintf("%s/geocode/v1/json?q=%s&key=%s",
		c.baseURL, url.QueryEscape(query), url.QueryEscape(c.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &fault.LookupError{Source: "geocode", Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &fault.LookupError{Source: "geocode", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &fault.LookupError{
			Source: "geocode",
			Err:    fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	var payload geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &fault.LookupError{Source: "geocode", Err: err}
	}

	if len(payload.Results) == 0 {
		return nil, nil
	}
	return &entity.Coordinate{
		Latitude:  payload.Results[0].Geometry.Lat,
		Longitude: payload.Results[0].Geometry.Lng,
	}, nil
}
