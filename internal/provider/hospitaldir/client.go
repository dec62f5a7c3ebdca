// Package hospitaldir queries the hospital directory API by postal code.
package hospitaldir

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/swapnilsborase/blooddonor-service/config"
	"github.com/swapnilsborase/blooddonor-service/internal/domain/entity"
	"github.com/swapnilsborase/blooddonor-service/internal/domain/fault"
)

type Client struct {
	baseURL    string
	apiHost    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(cfg config.HospitalDirConfig) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		apiHost:    cfg.APIHost,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ByPincode returns the hospitals registered under the postal code. A payload
// that is valid JSON but not a non-empty array yields an empty list with a
// nil error; transport failures, non-2xx statuses, and undecodable bodies are
// lookup faults.
func (c *Client) ByPincode(ctx context.Context, pincode string) ([]entity.HospitalRecord, error) {
	url := fmt.Sprintf("%s/hospitals/pin/%s", c.baseURL, pincode)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &fault.LookupError{Source: "directory", Err: err}
	}
	req.Header.Set("X-RapidAPI-Host", c.apiHost)
	req.Header.Set("X-RapidAPI-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &fault.LookupError{Source: "directory", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &fault.LookupError{
			Source: "directory",
			Err:    fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &fault.LookupError{Source: "directory", Err: err}
	}

	var hospitals []entity.HospitalRecord
	if err := json.Unmarshal(body, &hospitals); err != nil {
		// A non-array payload is the directory's "no match" shape, not a
		// failure; only undecodable JSON counts as one.
		if json.Valid(body) {
			return []entity.HospitalRecord{}, nil
		}
		return nil, &fault.LookupError{Source: "directory", Err: err}
	}
	if hospitals == nil {
		hospitals = []entity.HospitalRecord{}
	}
	return hospitals, nil
}
