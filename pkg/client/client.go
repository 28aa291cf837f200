package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"sync"

	"github.com/feischl/pumppanel/pkg/domain"
)

//go:generate moq -out mocks/credential_store.go -pkg mocks -skip-ensure -fmt goimports . CredentialStore

// Doer abstracts the HTTP transport. Production uses a plain http.Client,
// development mode substitutes canned responses, tests substitute fakes.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// CredentialStore persists the API key between sessions
type CredentialStore interface {
	Credential(ctx context.Context) (string, error)
	SetCredential(ctx context.Context, key string) error
}

// Client is the authenticated request layer for the heat-pump controller
// backend. It attaches the API key to outbound requests and classifies
// failures so callers can tell an invalid credential from everything else.
// It performs no retries and enforces no timeout of its own.
type Client struct {
	baseURL string
	http    Doer
	creds   CredentialStore

	mu     sync.RWMutex
	apiKey string
}

// Config holds client construction parameters
type Config struct {
	BaseURL     string
	FallbackKey string // used when no key is persisted, usually from the environment
	DevMode     bool   // serve canned responses instead of calling the backend
	Transport   Doer   // optional transport override, selected by DevMode when nil
}

// New creates a client with the credential sourced from the store, falling
// back to cfg.FallbackKey
func New(ctx context.Context, cfg Config, creds CredentialStore) *Client {
	transport := cfg.Transport
	if transport == nil {
		if cfg.DevMode {
			transport = NewDevTransport()
		} else {
			transport = &http.Client{} // timeouts are left to the transport defaults
		}
	}

	key, err := creds.Credential(ctx)
	if err != nil {
		log.Printf("[WARN] failed to read persisted api key: %v", err)
	}
	if key == "" {
		key = cfg.FallbackKey
	}

	return &Client{
		baseURL: cfg.BaseURL,
		http:    transport,
		creds:   creds,
		apiKey:  key,
	}
}

// Credential returns the held API key, empty when absent
func (c *Client) Credential() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.apiKey
}

// SetCredential replaces the held API key and persists it. Persistence
// failures are logged and swallowed, the in-memory key is replaced regardless.
func (c *Client) SetCredential(ctx context.Context, key string) {
	c.mu.Lock()
	c.apiKey = key
	c.mu.Unlock()

	if err := c.creds.SetCredential(ctx, key); err != nil {
		log.Printf("[WARN] failed to persist api key: %v", err)
	}
}

// GetStatus fetches the device, automation and current price snapshot
func (c *Client) GetStatus(ctx context.Context) (*domain.Status, error) {
	var status domain.Status
	if err := c.request(ctx, http.MethodGet, "/api/status", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// Override submits a manual override action with an optional value
func (c *Client) Override(ctx context.Context, action string, value *float64) error {
	body := struct {
		Action string   `json:"action"`
		Value  *float64 `json:"value,omitempty"`
	}{Action: action, Value: value}
	return c.request(ctx, http.MethodPost, "/api/override", body, nil)
}

// GetSettings reads the settings held by the backend
func (c *Client) GetSettings(ctx context.Context) (*domain.ControlSettings, error) {
	var settings domain.ControlSettings
	if err := c.request(ctx, http.MethodGet, "/api/settings", nil, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// PutSettings replaces the settings held by the backend
func (c *Client) PutSettings(ctx context.Context, settings domain.ControlSettings) error {
	return c.request(ctx, http.MethodPost, "/api/settings", settings, nil)
}

// GetPrices fetches historical prices for a zone over the lookback window
func (c *Client) GetPrices(ctx context.Context, zone string, hours int) ([]domain.PricePoint, error) {
	query := url.Values{}
	query.Set("zone", zone)
	query.Set("hours", fmt.Sprintf("%d", hours))

	var prices []domain.PricePoint
	if err := c.request(ctx, http.MethodGet, "/api/prices?"+query.Encode(), nil, &prices); err != nil {
		return nil, err
	}
	return prices, nil
}

// CollectPrices triggers price collection for a zone on the backend
func (c *Client) CollectPrices(ctx context.Context, zone string) error {
	body := struct {
		Zone string `json:"zone"`
	}{Zone: zone}
	return c.request(ctx, http.MethodPost, "/api/prices", body, nil)
}

// request issues a single call and classifies the outcome: 401 maps to
// ErrUnauthorized, any other non-2xx to RequestFailedError with the decoded
// message or HTTP status as fallback, an undecodable 2xx body to DecodeError.
func (c *Client) request(ctx context.Context, method, path string, body, result any) error {
	var reader io.Reader = http.NoBody
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if key := c.Credential(); key != "" {
		req.Header.Set("X-API-Key", key)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("call %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		msg := resp.Status
		if data, readErr := io.ReadAll(resp.Body); readErr == nil {
			var errBody struct {
				Message string `json:"message"`
			}
			if json.Unmarshal(data, &errBody) == nil && errBody.Message != "" {
				msg = errBody.Message
			}
		}
		return &RequestFailedError{StatusCode: resp.StatusCode, Message: msg}
	}

	if result == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return &DecodeError{Err: err}
	}
	return nil
}
