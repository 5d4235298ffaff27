// Package client provides a Go client for the planforge HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/felixgeelhaar/planforge/internal/plan"
	"github.com/felixgeelhaar/planforge/internal/wizard"
)

// Client calls a running planforge server.
//
// Usage:
//
//	c := client.New("http://localhost:8787")
//	p, err := c.GeneratePlan(ctx, answers)
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures the client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a client for the server at baseURL
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 2 * time.Minute},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Insight is one step's contextual guidance
type Insight struct {
	Insight     string   `json:"insight"`
	Suggestions []string `json:"suggestions"`
}

// StepInsights fetches the guidance shown alongside a wizard step
func (c *Client) StepInsights(ctx context.Context, answers wizard.AnswerRecord, step int) (*Insight, error) {
	body := map[string]any{
		"action": "stepInsights",
		"data":   answers,
		"step":   step,
	}

	var out Insight
	if err := c.post(ctx, "/api/assistant", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GeneratePlan generates a growth plan from a completed answer record
func (c *Client) GeneratePlan(ctx context.Context, answers wizard.AnswerRecord) (*plan.GeneratedPlan, error) {
	body := map[string]any{
		"action": "generatePlan",
		"data":   answers,
	}

	var out struct {
		Plan *plan.GeneratedPlan `json:"plan"`
	}
	if err := c.post(ctx, "/api/assistant", body, &out); err != nil {
		return nil, err
	}
	if out.Plan == nil {
		return nil, fmt.Errorf("server returned no plan")
	}
	return out.Plan, nil
}

// GetPlan retrieves a previously stored plan by ID
func (c *Client) GetPlan(ctx context.Context, id string) (*plan.GeneratedPlan, error) {
	u := c.baseURL + "/api/assistant?id=" + url.QueryEscape(id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp)
	}

	var out struct {
		Plan *plan.GeneratedPlan `json:"plan"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return out.Plan, nil
}

// Relay sends a raw prompt through the completion relay
func (c *Client) Relay(ctx context.Context, prompt string) (string, error) {
	body := map[string]string{"prompt": prompt}

	var out struct {
		Success bool   `json:"success"`
		Content string `json:"content"`
		Error   string `json:"error"`
	}
	if err := c.post(ctx, "/api/relay", body, &out); err != nil {
		return "", err
	}
	if !out.Success {
		return "", fmt.Errorf("relay failed: %s", out.Error)
	}
	return out.Content, nil
}

// Health checks the server's readiness endpoint
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health/ready", nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return statusError(resp)
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return statusError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func statusError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, payload.Error)
	}
	return fmt.Errorf("server returned %d", resp.StatusCode)
}
