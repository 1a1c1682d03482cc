package llm

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// NewBackend creates a bare Provider for the named backend.
func NewBackend(ctx context.Context, name string, cfg Config) (Provider, error) {
	var p Provider
	var err error

	switch name {
	case "anthropic":
		p, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		p, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		p, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown backend: %q", name)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s backend: %w", name, err)
	}
	return p, nil
}

// NewFailoverFromConfig builds the configured primary/fallback pair, each
// wrapped with request logging, behind a single Failover provider.
func NewFailoverFromConfig(ctx context.Context, cfg Config, log *zap.Logger) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}

	primary, err := NewBackend(ctx, cfg.Primary, cfg)
	if err != nil {
		return nil, err
	}
	fallback, err := NewBackend(ctx, cfg.Fallback, cfg)
	if err != nil {
		return nil, err
	}

	return NewFailover(
		WithLogging(primary, log.Named("primary")),
		WithLogging(fallback, log.Named("fallback")),
		log,
	), nil
}
