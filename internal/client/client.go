// Package client provides a typed HTTP client for the office booking
// API. It carries no state beyond its configuration: callers own the
// returned records, and every operation is a single request/response
// exchange authenticated with the static API key header.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// APIKeyHeader is the header every request is authenticated with.
const APIKeyHeader = "X-API-KEY"

// Config is the injected client configuration. Nothing in this package
// reads globals; deployments and tests supply their own Config.
type Config struct {
	// APIBaseURL is the scheme://host[:port] of the booking API.
	APIBaseURL string
	// APIKey is sent in the X-API-KEY header on every request.
	APIKey string
	// AssetBaseURL is prepended to relative thumbnail/photo paths.
	AssetBaseURL string
}

// Client is a typed HTTP client for the office booking API.
type Client struct {
	config     Config
	httpClient *http.Client
}

// New creates a Client using the default HTTP client.
func New(config Config) *Client {
	return NewWithHTTPClient(config, http.DefaultClient)
}

// NewWithHTTPClient creates a Client with a caller-supplied HTTP client,
// typically to point tests at an httptest.Server or to set timeouts.
func NewWithHTTPClient(config Config, httpClient *http.Client) *Client {
	return &Client{config: config, httpClient: httpClient}
}

// Lookup retrieves a booking by transaction number and phone number.
func (c *Client) Lookup(ctx context.Context, form LookupForm) (*BookingDetails, error) {
	resp, err := c.do(ctx, http.MethodPost, "/api/check-booking", form)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var details BookingDetails
	if err := c.decode(resp, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

// Update sends the full edited record to the update endpoint and
// returns the server's canonical copy, including any derived fields it
// recomputed.
func (c *Client) Update(ctx context.Context, details BookingDetails) (*BookingDetails, error) {
	path := "/api/update-booking/" + details.ID
	resp, err := c.do(ctx, http.MethodPatch, path, details)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var updated BookingDetails
	if err := c.decode(resp, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Cancel deletes the booking with the given identifier.
func (c *Client) Cancel(ctx context.Context, id string) error {
	resp, err := c.do(ctx, http.MethodDelete, "/api/cancel-booking/"+id, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.statusError(resp)
	}
	return nil
}

// ResolveAsset resolves a relative asset path against the asset base
// URL. Absolute URLs pass through untouched.
func (c *Client) ResolveAsset(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	base := c.config.AssetBaseURL
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + strings.TrimPrefix(path, "/")
}

// do performs one request. A failed round trip (no response at all)
// becomes a TransportError with the conventional network failure message.
func (c *Client) do(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.config.APIBaseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set(APIKeyHeader, c.config.APIKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Message: networkErrorMessage, Err: err}
	}
	return resp, nil
}

// decode unwraps the {data: ...} envelope into v, converting non-2xx
// responses into transport errors first.
func (c *Client) decode(resp *http.Response, v interface{}) error {
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.statusError(resp)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("failed to decode response envelope: %w", err)
	}
	if err := json.Unmarshal(env.Data, v); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}
	return nil
}

// statusError builds a TransportError from a non-2xx response,
// preferring the server's message when it sends one.
func (c *Client) statusError(resp *http.Response) error {
	message := fmt.Sprintf("Request failed with status code %d", resp.StatusCode)

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err == nil && len(raw) > 0 {
		var body errorBody
		if json.Unmarshal(raw, &body) == nil && body.Message != "" {
			message = body.Message
		}
	}
	return &TransportError{StatusCode: resp.StatusCode, Message: message}
}
