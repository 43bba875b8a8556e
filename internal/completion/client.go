// Package completion talks to an OpenAI-compatible chat-completions
// endpoint. Every failure mode is returned as a typed error so the
// caller can branch to the fallback path instead of surfacing it.
package completion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/solacebot/solace/internal/session"
)

// Defaults match the upstream API the original deployment targeted.
const (
	DefaultBaseURL     = "https://api.openai.com"
	DefaultModel       = "gpt-3.5-turbo"
	DefaultMaxTokens   = 150
	DefaultTemperature = 0.7
)

// ErrNoCredential is returned before any network call when the client
// has no API key configured.
var ErrNoCredential = errors.New("completion: no API key configured")

// ErrMalformedReply is returned when a 200 response carries no usable
// completion choice.
var ErrMalformedReply = errors.New("completion: malformed reply")

// UpstreamError reports a non-200 response from the completions API.
// Body is captured for diagnostics only and never shown to end users.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("completion: upstream status %d: %s", e.Status, e.Body)
}

// Client issues single, non-streaming completion calls.
type Client struct {
	apiKey      string
	baseURL     string
	model       string
	temperature float64
	maxTokens   int
	httpClient  *http.Client
}

// Opts holds Client parameters. Zero values take package defaults; an
// empty APIKey is allowed and puts the client in degraded mode where
// Complete returns ErrNoCredential.
type Opts struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	MaxTokens   int
	HTTPClient  *http.Client
}

// New creates a Client.
func New(opts Opts) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	if opts.Temperature == 0 {
		opts.Temperature = DefaultTemperature
	}
	if opts.MaxTokens == 0 {
		opts.MaxTokens = DefaultMaxTokens
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		apiKey:      opts.APIKey,
		baseURL:     strings.TrimSuffix(opts.BaseURL, "/"),
		model:       opts.Model,
		temperature: opts.Temperature,
		maxTokens:   opts.MaxTokens,
		httpClient:  opts.HTTPClient,
	}
}

// Configured reports whether a credential is present.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

type chatRequest struct {
	Model       string         `json:"model"`
	Messages    []session.Turn `json:"messages"`
	MaxTokens   int            `json:"max_tokens"`
	Temperature float64        `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends the turn list and returns the first choice's content.
// No retries, no streaming; the transport timeout is the only deadline
// beyond ctx.
func (c *Client) Complete(ctx context.Context, turns []session.Turn) (string, error) {
	if c.apiKey == "" {
		return "", ErrNoCredential
	}

	payload, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    turns,
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("completion: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("completion: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion: send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", &UpstreamError{Status: resp.StatusCode, Body: string(body)}
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedReply, err)
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", ErrMalformedReply
	}
	return parsed.Choices[0].Message.Content, nil
}
