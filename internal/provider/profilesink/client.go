// Package profilesink posts completed registrations to the remote profile
// collection endpoint. The call is fire-and-forget from the caller's point of
// view: failures are reported but never block the local flow.
package profilesink

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/swapnilsborase/blooddonor-service/config"
	"github.com/swapnilsborase/blooddonor-service/internal/domain/entity"
	"github.com/swapnilsborase/blooddonor-service/internal/domain/fault"
)

type Client struct {
	url        string
	httpClient *http.Client
}

func NewClient(cfg config.ProfileSinkConfig) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		url:        cfg.URL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) Push(ctx context.Context, record *entity.RegistrationRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return &fault.LookupError{Source: "sink", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return &fault.LookupError{Source: "sink", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &fault.LookupError{Source: "sink", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &fault.LookupError{
			Source: "sink",
			Err:    fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}
	return nil
}
