package llm

import "context"

// Provider is the uniform abstraction over a text-completion backend.
// Consumers send a system prompt plus conversation messages and receive the
// model's raw text. The pipeline deliberately treats that text as opaque:
// structured extraction happens downstream, because models wrap JSON in
// prose or code fences no matter how firmly the prompt forbids it.
type Provider interface {
	// Complete sends the request and returns the model's response.
	// When Request.Schema is set, the provider uses its native structured
	// output mechanism and validates the returned JSON against the schema.
	// When nil, Response.Text is whatever the model produced.
	Complete(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Source labels identify which role in the failover pair produced a
// response. They are threaded into evaluation metadata for observability
// and must reflect the provider that actually answered.
const (
	SourcePrimary  = "primary-model"
	SourceFallback = "fallback-model"
)

// Request describes what to send to the model.
type Request struct {
	// System is the system prompt. Sets the model's role and constraints.
	System string

	// Messages is the conversation history. For single-turn generation
	// (the common case in this pipeline), this contains one user message.
	Messages []Message

	// Schema is an optional JSON Schema the response must conform to.
	// The content pipeline leaves this nil and relies on the extraction
	// cascade instead, since the failover pair spans providers with
	// uneven structured-output support.
	Schema *Schema

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	// Generation tasks run warm; evaluation runs at 0 for determinism.
	Temperature float64
}

// Message represents a single message in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema defines a JSON structure expected from the model.
type Schema struct {
	// Name identifies this schema (used as tool name for Anthropic,
	// schema name for OpenAI). Kebab-case, e.g. "probe-ping".
	Name string

	// Description is a human-readable description of what this schema
	// represents. Sent to the model to guide generation.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the model's output.
type Response struct {
	// Text is the raw generated output, untouched.
	Text string

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// Source is the failover role that answered: SourcePrimary or
	// SourceFallback. Empty when the response came from a bare provider
	// rather than a Failover pair.
	Source string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens"
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
