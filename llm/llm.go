package llm

import (
	"context"
)

// Role values used in conversation messages.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Defaults applied by providers when the corresponding Request fields are
// zero.
const (
	DefaultMaxTokens     = 1024
	DefaultMaxIterations = 10
)

// Message is one turn of a conversation passed to a provider.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Tool declaratively exposes a callable capability to the model.
// Parameters is a JSON Schema object (minimal subset expected).
type Tool struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters,omitempty"`
}

// Request captures the normalized input handed to a provider.
type Request struct {
	Messages []Message `json:"messages"`
	System   string    `json:"system,omitempty"`
	Tools    []Tool    `json:"tools,omitempty"`

	// MaxTokens bounds the completion size. Zero means DefaultMaxTokens.
	MaxTokens int `json:"max_tokens,omitempty"`

	// JSONMode asks the provider to return a valid JSON document as
	// content.
	JSONMode bool `json:"json_mode,omitempty"`

	// MaxIterations bounds the tool-use loop in CompleteWithTools. Zero
	// means DefaultMaxIterations.
	MaxIterations int `json:"max_iterations,omitempty"`
}

// Response is the completed provider output.
type Response struct {
	ID           string         `json:"id"`
	Content      string         `json:"content"`
	Model        string         `json:"model"`
	InputTokens  int            `json:"input_tokens"`
	OutputTokens int            `json:"output_tokens"`
	StopReason   string         `json:"stop_reason"` // "end_turn", "max_tokens", "tool_use"
	Raw          map[string]any `json:"raw,omitempty"`
}

// Info contains metadata about a provider implementation.
type Info struct {
	Name          string `json:"name"`
	Provider      string `json:"provider"` // "anthropic", "openai", "mock", etc.
	SupportsTools bool   `json:"supports_tools"`
}

// ToolExecutor runs a named tool with its arguments and returns the
// observation handed back to the model.
type ToolExecutor func(ctx context.Context, name string, args map[string]any) (string, error)

// Provider is the minimal interface agents use to drive generation.
type Provider interface {
	// Complete generates a single completion for the request.
	Complete(ctx context.Context, req Request) (*Response, error)

	// CompleteWithTools runs the provider's tool-use loop, calling exec for
	// each tool invocation until the model stops or the iteration bound is
	// reached.
	CompleteWithTools(ctx context.Context, req Request, exec ToolExecutor) (*Response, error)

	// Info returns information about the provider implementation.
	Info() Info
}
