package gateway

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"customer-care-assistant/pkg/groq"
	pkgLog "customer-care-assistant/pkg/log"
)

const (
	// ErrorPrefix marks sentinel error text returned in place of a completion.
	ErrorPrefix = "ERROR:"

	// DisabledMessage is returned for every call when the gateway has no
	// credentials or endpoint configured.
	DisabledMessage = "ERROR: model gateway not available."

	defaultCacheSize = 256
)

// Client is the long-lived handle to the completion endpoint. It is created
// once at process start and shared read-only by all orchestrators.
type Client struct {
	l     pkgLog.Logger
	llm   groq.IGroq
	cache *lru.Cache[string, string]
}

// Config for the gateway client.
type Config struct {
	APIKey    string
	BaseURL   string
	Model     string
	Timeout   time.Duration
	CacheSize int
}

// New creates the gateway client. A missing API key or base URL yields a
// disabled client whose calls all return DisabledMessage; startup never
// fails on account of the remote model.
func New(l pkgLog.Logger, cfg Config) *Client {
	size := cfg.CacheSize
	if size <= 0 {
		size = defaultCacheSize
	}
	cache, err := lru.New[string, string](size)
	if err != nil {
		cache = nil
	}

	c := &Client{l: l, cache: cache}

	if cfg.APIKey == "" || cfg.BaseURL == "" {
		l.Warn(context.Background(), "groq credentials or endpoint missing, model gateway disabled")
		return c
	}

	httpClient := &http.Client{Timeout: cfg.Timeout}
	if cfg.Timeout <= 0 {
		httpClient = nil
	}

	llm, err := groq.New(groq.Config{
		APIKey:     cfg.APIKey,
		BaseURL:    cfg.BaseURL,
		Model:      cfg.Model,
		HTTPClient: httpClient,
	})
	if err != nil {
		l.Errorf(context.Background(), "failed to create groq client, model gateway disabled: %v", err)
		return c
	}

	c.llm = llm
	return c
}

// NewWithClient wires an explicit completion client. Used by tests and the
// analyzer binary.
func NewWithClient(l pkgLog.Logger, llm groq.IGroq, cacheSize int) *Client {
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}
	cache, err := lru.New[string, string](cacheSize)
	if err != nil {
		cache = nil
	}
	return &Client{l: l, llm: llm, cache: cache}
}

// Enabled reports whether the gateway has a usable completion client.
func (c *Client) Enabled() bool {
	return c.llm != nil
}

// Complete issues one completion request. Deterministic calls (temperature
// zero) are served from an in-process LRU when the same prompt repeats.
func (c *Client) Complete(ctx context.Context, prompt string, temperature float64) string {
	if c.llm == nil {
		return DisabledMessage
	}

	cacheable := temperature == 0 && c.cache != nil
	key := cacheKey(prompt, temperature)
	if cacheable {
		if text, ok := c.cache.Get(key); ok {
			return text
		}
	}

	resp, err := c.llm.ChatCompletion(ctx, &groq.Request{
		Messages:    []groq.Message{{Role: groq.RoleUser, Content: prompt}},
		Temperature: temperature,
	})
	if err != nil {
		c.l.Errorf(ctx, "completion call failed for prompt %q: %v", truncate(prompt, 100), err)
		return fmt.Sprintf("%s failed to get response from model. %v", ErrorPrefix, err)
	}

	text := resp.Text()
	if cacheable {
		c.cache.Add(key, text)
	}
	return text
}

// IsError reports whether text is gateway sentinel error text.
func IsError(text string) bool {
	return strings.HasPrefix(strings.TrimSpace(text), ErrorPrefix)
}

func cacheKey(prompt string, temperature float64) string {
	return fmt.Sprintf("%.2f|%s", temperature, prompt)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
