// Package providers groups the concrete LLM provider adapters.
//
// It is organized into sub-packages:
//   - [github.com/pcurrier/imitator/pkg/providers/openai] — OpenAI Chat Completions adapter
//   - [github.com/pcurrier/imitator/pkg/providers/anthropic] — Anthropic Messages adapter
//
// Shared plumbing (auth, HTTP helpers, usage tracking) lives in
// [github.com/pcurrier/imitator/pkg/modeladapter]; each adapter embeds
// modeladapter.ModelAdapter and implements Complete for its wire format.
package providers
