package gateway_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"customer-care-assistant/internal/gateway"
	"customer-care-assistant/pkg/groq"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, args ...any)  {}

// Mock groq client for testing
type mockGroq struct {
	calls int
	text  string
	err   error
}

func (m *mockGroq) ChatCompletion(ctx context.Context, req *groq.Request) (*groq.Response, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return &groq.Response{
		Choices: []groq.Choice{{Message: groq.Message{Role: groq.RoleAssistant, Content: m.text}}},
	}, nil
}

func (m *mockGroq) Model() string { return "mock-model" }

func TestDisabledGateway(t *testing.T) {
	c := gateway.New(&mockLogger{}, gateway.Config{})

	if c.Enabled() {
		t.Errorf("expected gateway disabled without credentials")
	}

	got := c.Complete(context.Background(), "any prompt", 0)
	if got != gateway.DisabledMessage {
		t.Errorf("expected disabled sentinel, got %q", got)
	}
	if !gateway.IsError(got) {
		t.Errorf("disabled sentinel must be recognized as error text")
	}
}

func TestCompleteSuccess(t *testing.T) {
	llm := &mockGroq{text: "completion text"}
	c := gateway.NewWithClient(&mockLogger{}, llm, 8)

	got := c.Complete(context.Background(), "prompt", 0.7)
	if got != "completion text" {
		t.Errorf("unexpected completion: %q", got)
	}
	if gateway.IsError(got) {
		t.Errorf("success text misreported as error")
	}
}

func TestCompleteFailureSentinel(t *testing.T) {
	llm := &mockGroq{err: errors.New("connection refused")}
	c := gateway.NewWithClient(&mockLogger{}, llm, 8)

	got := c.Complete(context.Background(), "prompt", 0)
	if !gateway.IsError(got) {
		t.Fatalf("expected sentinel error text, got %q", got)
	}
	if !strings.Contains(got, "connection refused") {
		t.Errorf("sentinel should carry the cause, got %q", got)
	}
}

func TestCompletionCache(t *testing.T) {
	t.Run("Deterministic Calls Cached", func(t *testing.T) {
		llm := &mockGroq{text: "cached"}
		c := gateway.NewWithClient(&mockLogger{}, llm, 8)

		c.Complete(context.Background(), "same prompt", 0)
		c.Complete(context.Background(), "same prompt", 0)

		if llm.calls != 1 {
			t.Errorf("expected 1 upstream call for repeated deterministic prompt, got %d", llm.calls)
		}
	})

	t.Run("Generative Calls Bypass Cache", func(t *testing.T) {
		llm := &mockGroq{text: "fresh"}
		c := gateway.NewWithClient(&mockLogger{}, llm, 8)

		c.Complete(context.Background(), "same prompt", 0.7)
		c.Complete(context.Background(), "same prompt", 0.7)

		if llm.calls != 2 {
			t.Errorf("expected 2 upstream calls at non-zero temperature, got %d", llm.calls)
		}
	})

	t.Run("Sentinel Not Cached", func(t *testing.T) {
		llm := &mockGroq{err: errors.New("boom")}
		c := gateway.NewWithClient(&mockLogger{}, llm, 8)

		c.Complete(context.Background(), "p", 0)
		llm.err = nil
		llm.text = "recovered"

		got := c.Complete(context.Background(), "p", 0)
		if got != "recovered" {
			t.Errorf("error text must not be served from cache, got %q", got)
		}
	})
}
