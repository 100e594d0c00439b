package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"dsa-coach/api/internal/logger"
)

var (
	// ErrNotConfigured means the engine was never initialized with
	// credentials. Such calls fail immediately and consume no retry budget.
	ErrNotConfigured = errors.New("generation engine not configured")

	// ErrExhausted wraps the last attempt error once the retry budget is spent.
	ErrExhausted = errors.New("generation attempts exhausted")

	errEmptyResponse = errors.New("empty response")
)

const connectionProbe = "Hello, this is a test. Please respond with 'Test successful.'"

// Client issues enriched generation requests with retry and backoff. It is
// reentrant: every call builds its own request and the only blocking behavior
// is the inter-attempt delay, which suspends the calling goroutine only.
type Client struct {
	eng Engine
	log *logger.Logger

	maxRetries int
	retryDelay time.Duration

	sleep func(time.Duration)
}

type Option func(*Client)

func WithMaxRetries(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxRetries = n
		}
	}
}

func WithRetryDelay(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.retryDelay = d
		}
	}
}

func NewClient(eng Engine, log *logger.Logger, opts ...Option) *Client {
	c := &Client{
		eng:        eng,
		log:        log.With("component", "llm_client"),
		maxRetries: 3,
		retryDelay: time.Second,
		sleep:      time.Sleep,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Generate enriches instruction with ctx bundle c and drives the engine until
// it produces non-empty text or the retry budget runs out. The delay before
// attempt n+1 is retryDelay*n. The returned text is the exact trimmed payload.
func (c *Client) Generate(ctx context.Context, instruction string, pc *Context) (string, error) {
	if c.eng == nil || !c.eng.Ready() {
		return "", ErrNotConfigured
	}

	prompt := EnrichPrompt(instruction, pc)

	var lastErr error
	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		text, err := c.eng.GenerateText(ctx, prompt)
		if err == nil {
			text = strings.TrimSpace(text)
			if text != "" {
				c.log.Info("generation succeeded",
					"engine", c.eng.Name(), "model", c.eng.GetModel(), "attempt", attempt)
				return text, nil
			}
			err = errEmptyResponse
		}
		lastErr = err
		c.log.Warn("generation attempt failed",
			"engine", c.eng.Name(), "attempt", attempt, "max_retries", c.maxRetries, "error", err.Error())

		if attempt < c.maxRetries {
			c.sleep(time.Duration(attempt) * c.retryDelay)
		}
	}

	c.log.Error("all generation attempts failed", "engine", c.eng.Name(), "attempts", c.maxRetries)
	return "", fmt.Errorf("%w after %d attempts: %w", ErrExhausted, c.maxRetries, lastErr)
}

// CheckConnection probes the engine once and reports boolean health. It never
// returns an error: an unconfigured or failing engine is simply unhealthy.
func (c *Client) CheckConnection(ctx context.Context) bool {
	if c.eng == nil || !c.eng.Ready() {
		return false
	}
	text, err := c.eng.GenerateText(ctx, connectionProbe)
	if err != nil {
		c.log.Warn("connection check failed", "engine", c.eng.Name(), "error", err.Error())
		return false
	}
	return strings.Contains(strings.ToLower(text), "test successful")
}

// ModelInfo is a diagnostic snapshot of the client's configuration.
type ModelInfo struct {
	Engine     string        `json:"engine"`
	Model      string        `json:"model"`
	Configured bool          `json:"configured"`
	MaxRetries int           `json:"max_retries"`
	RetryDelay time.Duration `json:"retry_delay"`
}

func (c *Client) ModelInfo() ModelInfo {
	info := ModelInfo{MaxRetries: c.maxRetries, RetryDelay: c.retryDelay}
	if c.eng != nil {
		info.Engine = c.eng.Name()
		info.Model = c.eng.GetModel()
		info.Configured = c.eng.Ready()
	}
	return info
}
