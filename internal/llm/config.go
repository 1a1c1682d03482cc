package llm

import (
	"fmt"
	"os"
)

// Config binds backends to the two failover roles and holds per-backend
// credentials. Credentials are read from the environment once at client
// construction; providers are built once and reused.
type Config struct {
	// Primary selects the backend for the primary role.
	// Values: "anthropic", "openai", "gemini", "mock"
	Primary string

	// Fallback selects the backend for the fallback role.
	// Must be set: the pipeline always runs as a two-provider pair.
	Fallback string

	Anthropic AnthropicConfig
	OpenAI    OpenAIConfig
	Gemini    GeminiConfig
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-sonnet"
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string // Optional. Override for OpenAI-compatible APIs.
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-flash"
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Primary:  "anthropic",
		Fallback: "openai",
		Anthropic: AnthropicConfig{
			Model: "claude-sonnet",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("CASELAB_PRIMARY_PROVIDER"); p != "" {
		cfg.Primary = p
	}
	if p := os.Getenv("CASELAB_FALLBACK_PROVIDER"); p != "" {
		cfg.Fallback = p
	}

	if k := os.Getenv("CASELAB_ANTHROPIC_API_KEY"); k != "" {
		cfg.Anthropic.APIKey = k
	}
	if m := os.Getenv("CASELAB_ANTHROPIC_MODEL"); m != "" {
		cfg.Anthropic.Model = m
	}

	if k := os.Getenv("CASELAB_OPENAI_API_KEY"); k != "" {
		cfg.OpenAI.APIKey = k
	}
	if m := os.Getenv("CASELAB_OPENAI_MODEL"); m != "" {
		cfg.OpenAI.Model = m
	}
	if u := os.Getenv("CASELAB_OPENAI_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
	}

	if k := os.Getenv("CASELAB_GEMINI_API_KEY"); k != "" {
		cfg.Gemini.APIKey = k
	}
	if m := os.Getenv("CASELAB_GEMINI_MODEL"); m != "" {
		cfg.Gemini.Model = m
	}

	return cfg
}

// DiscoverConfig probes standard API key env vars (Anthropic → OpenAI →
// Gemini) and binds the first two backends with keys to the primary and
// fallback roles. Returns (Config{}, false) when fewer than two keys are
// found, since the pipeline requires a complete pair.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	var found []string
	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Anthropic.APIKey = k
		found = append(found, "anthropic")
	}
	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.OpenAI.APIKey = k
		found = append(found, "openai")
	}
	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		cfg.Gemini.APIKey = k
		found = append(found, "gemini")
	}

	if len(found) < 2 {
		return Config{}, false
	}
	cfg.Primary = found[0]
	cfg.Fallback = found[1]
	return cfg, true
}

// Validate checks that both roles name a known backend with its API key set,
// and that the pair is not a single backend talking to itself.
func (c Config) Validate() error {
	if err := c.validateRole("primary", c.Primary); err != nil {
		return err
	}
	if err := c.validateRole("fallback", c.Fallback); err != nil {
		return err
	}
	if c.Primary == c.Fallback && c.Primary != "mock" {
		return fmt.Errorf("primary and fallback must be distinct backends, both are %q", c.Primary)
	}
	return nil
}

func (c Config) validateRole(role, backend string) error {
	switch backend {
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("CASELAB_ANTHROPIC_API_KEY is required for the %s role", role)
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("CASELAB_OPENAI_API_KEY is required for the %s role", role)
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("CASELAB_GEMINI_API_KEY is required for the %s role", role)
		}
	case "mock":
		// No API key needed.
	case "":
		return fmt.Errorf("no backend configured for the %s role", role)
	default:
		return fmt.Errorf("unknown backend for the %s role: %q", role, backend)
	}
	return nil
}
