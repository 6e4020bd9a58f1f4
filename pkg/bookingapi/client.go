// Package bookingapi is an HTTP binding of the booking-backend contract for
// deployments where service lookup, availability, and appointment creation
// live behind a remote REST API instead of the in-process mock.
package bookingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	contractx "github.com/jacobsplumbing/frontdesk/agent/contract"
)

const maxResponseSizeBytes = 2 << 20

type Config struct {
	URL     string        `envconfig:"URL" split_words:"true"`
	Token   string        `envconfig:"TOKEN" split_words:"true"`
	Timeout time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"10s"`
}

// Option customizes Client.
type Option func(*Client)

func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// Client talks to the remote booking API. It implements contract.Booking.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

var _ contractx.Booking = (*Client)(nil)

func New(cfg Config, opts ...Option) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.URL), "/")
	if baseURL == "" {
		return nil, errors.New("booking api url is required")
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid booking api url: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	client := &Client{
		baseURL: baseURL,
		token:   strings.TrimSpace(cfg.Token),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}
	return client, nil
}

func (c *Client) CheckService(ctx context.Context, serviceName string) (contractx.ServiceCheck, error) {
	var out contractx.ServiceCheck
	err := c.post(ctx, "/v1/services/check", map[string]any{
		"service_name": serviceName,
	}, &out)
	return out, err
}

func (c *Client) GetAvailability(ctx context.Context, serviceID, dateRange, timePreference string) (contractx.Availability, error) {
	var out contractx.Availability
	err := c.post(ctx, "/v1/availability", map[string]any{
		"service_id":      serviceID,
		"date_range":      dateRange,
		"time_preference": timePreference,
	}, &out)
	return out, err
}

func (c *Client) CreateAppointment(ctx context.Context, customer contractx.Customer, serviceID, slotID, contact string) (contractx.Appointment, error) {
	var out contractx.Appointment
	err := c.post(ctx, "/v1/appointments", map[string]any{
		"customer":   customer,
		"service_id": serviceID,
		"slot_id":    slotID,
		"contact":    contact,
	}, &out)
	return out, err
}

func (c *Client) CreateWaitlistEntry(ctx context.Context, customer contractx.Customer, serviceID, preferredWindow string) (contractx.WaitlistEntry, error) {
	var out contractx.WaitlistEntry
	err := c.post(ctx, "/v1/waitlist", map[string]any{
		"customer":         customer,
		"service_id":       serviceID,
		"preferred_window": preferredWindow,
	}, &out)
	return out, err
}

func (c *Client) post(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: marshal request for %s: %v", contractx.ErrBackend, path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: build request for %s: %v", contractx.ErrBackend, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", contractx.ErrBackend, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSizeBytes))
	if err != nil {
		return fmt.Errorf("%w: read response for %s: %v", contractx.ErrBackend, path, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: %s: http status=%d body=%s", contractx.ErrBackend, path, resp.StatusCode, string(raw))
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: decode response for %s: %v", contractx.ErrBackend, path, err)
	}
	return nil
}
