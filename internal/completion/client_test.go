package completion

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/solacebot/solace/internal/session"
)

func turns() []session.Turn {
	return []session.Turn{
		{Role: session.RoleSystem, Content: session.SystemPrompt},
		{Role: session.RoleUser, Content: "hello"},
	}
}

func TestComplete_NoCredential(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request issued despite missing credential")
	}))
	defer srv.Close()

	c := New(Opts{BaseURL: srv.URL})
	_, err := c.Complete(context.Background(), turns())
	if !errors.Is(err, ErrNoCredential) {
		t.Errorf("err = %v, want ErrNoCredential", err)
	}
}

func TestComplete_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}

		var req struct {
			Model       string         `json:"model"`
			Messages    []session.Turn `json:"messages"`
			MaxTokens   int            `json:"max_tokens"`
			Temperature float64        `json:"temperature"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Model != DefaultModel {
			t.Errorf("model = %q, want %q", req.Model, DefaultModel)
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != session.RoleSystem {
			t.Errorf("messages = %+v", req.Messages)
		}
		if req.MaxTokens != DefaultMaxTokens {
			t.Errorf("max_tokens = %d, want %d", req.MaxTokens, DefaultMaxTokens)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"I'm here for you."}}]}`))
	}))
	defer srv.Close()

	c := New(Opts{APIKey: "test-key", BaseURL: srv.URL})
	got, err := c.Complete(context.Background(), turns())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "I'm here for you." {
		t.Errorf("reply = %q", got)
	}
}

func TestComplete_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"type":"rate_limit_exceeded"}}`))
	}))
	defer srv.Close()

	c := New(Opts{APIKey: "test-key", BaseURL: srv.URL})
	_, err := c.Complete(context.Background(), turns())

	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("err = %v, want *UpstreamError", err)
	}
	if upstream.Status != http.StatusTooManyRequests {
		t.Errorf("Status = %d, want 429", upstream.Status)
	}
	if upstream.Body == "" {
		t.Error("Body not captured")
	}
}

func TestComplete_MalformedReply(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "not json at all"},
		{"no choices", `{"choices":[]}`},
		{"empty content", `{"choices":[{"message":{"role":"assistant","content":""}}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := New(Opts{APIKey: "test-key", BaseURL: srv.URL})
			_, err := c.Complete(context.Background(), turns())
			if !errors.Is(err, ErrMalformedReply) {
				t.Errorf("err = %v, want ErrMalformedReply", err)
			}
		})
	}
}

func TestComplete_TransportError(t *testing.T) {
	c := New(Opts{APIKey: "test-key", BaseURL: "http://127.0.0.1:1"})
	_, err := c.Complete(context.Background(), turns())
	if err == nil {
		t.Fatal("expected transport error")
	}
	if errors.Is(err, ErrNoCredential) || errors.Is(err, ErrMalformedReply) {
		t.Errorf("transport error mapped to wrong sentinel: %v", err)
	}
}

func TestNew_Defaults(t *testing.T) {
	c := New(Opts{})
	if c.baseURL != DefaultBaseURL {
		t.Errorf("baseURL = %q", c.baseURL)
	}
	if c.model != DefaultModel {
		t.Errorf("model = %q", c.model)
	}
	if c.maxTokens != DefaultMaxTokens {
		t.Errorf("maxTokens = %d", c.maxTokens)
	}
	if c.temperature != DefaultTemperature {
		t.Errorf("temperature = %v", c.temperature)
	}
	if c.Configured() {
		t.Error("Configured() = true with no key")
	}
}

func TestNew_TrimsTrailingSlash(t *testing.T) {
	c := New(Opts{BaseURL: "https://example.com/"})
	if c.baseURL != "https://example.com" {
		t.Errorf("baseURL = %q", c.baseURL)
	}
}
