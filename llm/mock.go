package llm

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/hupe1980/agentkit/logging"
)

// MockProviderOptions configures construction of a MockProvider.
type MockProviderOptions struct {
	// Model is the model name reported in responses.
	Model string

	// DefaultResponse, when set, is returned verbatim for every
	// completion instead of the contextual replies.
	DefaultResponse string
}

// MockProvider is a deterministic in-memory Provider for tests, examples
// and pipelines that must run without API access. Replies are derived from
// keywords in the last user message, so agent flows can execute end to end
// offline.
type MockProvider struct {
	model           string
	defaultResponse string
	logger          *logging.Logger

	mu        sync.Mutex
	callCount int
}

// NewMockProvider constructs a MockProvider reporting "mock-model" unless
// configured otherwise.
func NewMockProvider(optFns ...func(o *MockProviderOptions)) *MockProvider {
	opts := MockProviderOptions{Model: "mock-model"}
	for _, fn := range optFns {
		fn(&opts)
	}

	return &MockProvider{
		model:           opts.Model,
		defaultResponse: opts.DefaultResponse,
		logger:          logging.GetLogger(logging.FrameworkNamespace + ".llm"),
	}
}

// Complete implements Provider with a deterministic completion.
func (m *MockProvider) Complete(ctx context.Context, req Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	n := m.nextCall()

	var content string
	switch {
	case m.defaultResponse != "":
		content = m.defaultResponse
	case req.JSONMode:
		content = `{"status": "success", "mock": true, "message": "Mock response"}`
	default:
		content = m.contextualResponse(lastUserMessage(req.Messages), req.System, n)
	}

	m.logger.Debug("Mock completion #%d for model %s", n, m.model)

	return &Response{
		ID:           uuid.NewString(),
		Content:      content,
		Model:        m.model,
		InputTokens:  estimateTokens(req.Messages),
		OutputTokens: len(content) / 4,
		StopReason:   "end_turn",
		Raw:          map[string]any{"mock": true, "call_count": n},
	}, nil
}

// CompleteWithTools implements Provider. The mock acknowledges the
// available tools without invoking the executor, so flows exercising the
// tool loop stay fully offline.
func (m *MockProvider) CompleteWithTools(ctx context.Context, req Request, _ ToolExecutor) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	n := m.nextCall()

	names := make([]string, 0, len(req.Tools))
	for _, t := range req.Tools {
		names = append(names, t.Name)
	}

	last := lastUserMessage(req.Messages)
	if len(last) > 100 {
		last = last[:100]
	}
	content := fmt.Sprintf("[Mock] Processed with tools: %v. Context: %s...", names, last)

	m.logger.Debug("Mock tool completion #%d with %d tools", n, len(names))

	return &Response{
		ID:           uuid.NewString(),
		Content:      content,
		Model:        m.model,
		InputTokens:  estimateTokens(req.Messages),
		OutputTokens: len(content) / 4,
		StopReason:   "end_turn",
		Raw:          map[string]any{"mock": true, "tools_available": names},
	}, nil
}

// Info implements Provider.
func (m *MockProvider) Info() Info {
	return Info{Name: m.model, Provider: "mock", SupportsTools: true}
}

// CallCount returns the number of completions served since construction or
// the last Reset.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// Reset clears the call counter.
func (m *MockProvider) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount = 0
}

func (m *MockProvider) nextCall() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount++
	return m.callCount
}

// contextualResponse derives a canned reply from keywords in the combined
// user message and system prompt.
func (m *MockProvider) contextualResponse(userMessage, system string, call int) string {
	combined := strings.ToLower(userMessage + system)

	switch {
	case strings.Contains(combined, "search"):
		return "[Mock] Search results: Found 3 relevant sources. 1) Example article, 2) Research paper, 3) Documentation."
	case strings.Contains(combined, "summar"):
		return "[Mock] Summary: Key points extracted from the content. Main findings and conclusions included."
	case strings.Contains(combined, "parse"), strings.Contains(combined, "extract"):
		return "[Mock] Parsed: topic='example', keywords=['mock', 'test']"
	case strings.Contains(combined, "evaluat"), strings.Contains(combined, "quality"):
		return "[Mock] Evaluation: Score 85/100. Quality: Good. Status: Approved."
	case strings.Contains(combined, "write"), strings.Contains(combined, "report"):
		return "[Mock] Report generated with introduction, findings, and conclusion sections."
	default:
		return fmt.Sprintf("[Mock] Processed request (call #%d). This is a mock response for testing without API calls.", call)
	}
}

// lastUserMessage returns the content of the most recent user turn.
func lastUserMessage(messages []Message) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == RoleUser {
			return messages[i].Content
		}
	}
	return ""
}

// estimateTokens applies the rough four-characters-per-token heuristic to
// the conversation.
func estimateTokens(messages []Message) int {
	total := 0
	for _, m := range messages {
		total += len(m.Role) + len(m.Content)
	}
	return total / 4
}
