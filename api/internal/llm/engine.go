package llm

import (
	"context"
	"errors"
	"strings"
)

// Engine is one concrete text-generation capability. Engines are stateless
// request issuers; resilience (retries, backoff, escalation) lives in Client.
type Engine interface {
	Name() string
	GetModel() string
	// Ready reports whether the engine has credentials to issue calls.
	Ready() bool
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type Engines struct {
	Gemini Engine
	OpenAI Engine
}

func (e *Engines) GetEngine(llmName string) (Engine, error) {
	switch strings.ToLower(strings.TrimSpace(llmName)) {
	case "", "gemini":
		return e.Gemini, nil
	case "gpt", "openai":
		return e.OpenAI, nil
	default:
		return nil, errors.New("unknown llm name; use 'gemini' or 'openai'")
	}
}
