// Package llm defines the provider abstraction AgentKit components use to
// drive language model generation.
//
// The Provider interface normalizes completions and tool-use loops across
// vendors. This package ships MockProvider, a deterministic in-memory
// implementation for:
//
//   - Running examples without API keys
//   - Testing agent execution flow
//   - Development and debugging
//   - CI/CD pipelines
//
// Usage:
//
//	provider := llm.NewMockProvider()
//	resp, err := provider.Complete(ctx, llm.Request{
//		Messages: []llm.Message{{Role: llm.RoleUser, Content: "Hello"}},
//	})
//
// Provider implementations log through the "agentkit.llm" logger, so their
// verbosity follows logging.SetFrameworkLogLevel.
package llm
