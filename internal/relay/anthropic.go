// Package relay forwards a single text prompt to the Anthropic Messages API
// and returns the generated text.
package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/felixgeelhaar/planforge/internal/errors"
	"github.com/felixgeelhaar/planforge/internal/log"
	"github.com/felixgeelhaar/planforge/internal/version"
)

const (
	defaultBaseURL   = "https://api.anthropic.com/v1"
	defaultModel     = "claude-sonnet-4-20250514"
	defaultMaxTokens = 3000
	apiVersion       = "2023-06-01"

	// noResponseText is returned when the provider reply carries no text
	// segment; callers treat it as content, not as an error.
	noResponseText = "No response generated"
)

// Config configures the relay client. The API key is injected here and
// checked once at construction; absence is a configuration error, never a
// per-request one.
type Config struct {
	APIKey    string
	BaseURL   string
	Model     string
	MaxTokens int
}

// Client is the Anthropic Messages API relay
type Client struct {
	apiKey    string
	baseURL   string
	model     string
	maxTokens int
	client    *http.Client
	logger    *log.Logger
}

// Anthropic API request/response structures
type anthropicRequest struct {
	Model     string             `json:"model"`
	Messages  []anthropicMessage `json:"messages"`
	MaxTokens int                `json:"max_tokens"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	ID      string             `json:"id"`
	Type    string             `json:"type"`
	Role    string             `json:"role"`
	Content []anthropicContent `json:"content"`
	Model   string             `json:"model"`
	Error   *anthropicError    `json:"error,omitempty"`
}

type anthropicContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type anthropicError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// NewClient creates a relay client. It fails fast when no credential is
// configured.
func NewClient(cfg Config, logger *log.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.NewCredentialMissingError()
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = defaultMaxTokens
	}
	if logger == nil {
		logger = log.DefaultLogger()
	}

	return &Client{
		apiKey:    cfg.APIKey,
		baseURL:   cfg.BaseURL,
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		// No explicit timeout: the transport default applies, and the
		// wizard blocks on generation anyway.
		client: &http.Client{},
		logger: logger,
	}, nil
}

// Complete sends exactly one request with the prompt as the sole user
// message and returns the first text segment of the reply.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	reqBody, err := json.Marshal(anthropicRequest{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		Messages: []anthropicMessage{
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeRelayRequest, "marshal completion request", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/messages", bytes.NewReader(reqBody))
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeRelayRequest, "create completion request", err)
	}

	c.setHeaders(httpReq)

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeRelayRequest, "send completion request", err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeRelayRequest, "read completion response", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		// Full diagnostic detail stays server-side; callers get status only.
		c.logger.Error("completion request failed",
			"status", httpResp.StatusCode,
			"body", string(respBody),
		)
		return "", errors.NewRelayAPIError(httpResp.StatusCode, string(respBody))
	}

	var anthResp anthropicResponse
	if err := json.Unmarshal(respBody, &anthResp); err != nil {
		return "", errors.Wrap(errors.ErrCodeRelayRequest, "unmarshal completion response", err)
	}
	if anthResp.Error != nil {
		c.logger.Error("completion request returned error payload",
			"type", anthResp.Error.Type,
			"message", anthResp.Error.Message,
		)
		return "", errors.New(errors.ErrCodeRelayAPI, fmt.Sprintf("provider error: %s", anthResp.Error.Type))
	}

	for _, block := range anthResp.Content {
		if block.Type == "text" && block.Text != "" {
			return block.Text, nil
		}
	}
	return noResponseText, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", apiVersion)
	req.Header.Set("User-Agent", version.UserAgent())
}

// Model returns the fixed model identifier this client sends
func (c *Client) Model() string {
	return c.model
}

// Healthy probes the API with a minimal request
func (c *Client) Healthy(ctx context.Context) error {
	reqBody, err := json.Marshal(anthropicRequest{
		Model:     c.model,
		MaxTokens: 1,
		Messages: []anthropicMessage{
			{Role: "user", Content: "ping"},
		},
	})
	if err != nil {
		return errors.Wrap(errors.ErrCodeRelayRequest, "marshal health check", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/messages", bytes.NewReader(reqBody))
	if err != nil {
		return errors.Wrap(errors.ErrCodeRelayRequest, "create health check request", err)
	}

	c.setHeaders(httpReq)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return errors.Wrap(errors.ErrCodeRelayRequest, "health check failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return errors.NewRelayAPIError(resp.StatusCode, string(body))
	}
	return nil
}
