package engine_test

import (
	"context"
	"testing"

	"github.com/pcurrier/imitator/pkg/engine"
	"github.com/pcurrier/imitator/pkg/modeladapter"
	"github.com/pcurrier/imitator/pkg/providers/anthropic"
	"github.com/pcurrier/imitator/pkg/providers/openai"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCompleter_OpenAI(t *testing.T) {
	c, err := engine.BuildCompleter(engine.ProviderConfig{
		Kind:   "openai",
		APIKey: "sk-test",
		Model:  "gpt-4o-mini",
	})
	require.NoError(t, err)

	a, ok := c.(*openai.Adapter)
	require.True(t, ok)
	assert.Equal(t, "https://api.openai.com", a.BaseURL)
	assert.Equal(t, "gpt-4o-mini", a.Name)
}

func TestBuildCompleter_Anthropic(t *testing.T) {
	c, err := engine.BuildCompleter(engine.ProviderConfig{
		Kind:    "anthropic",
		BaseURL: "https://proxy.example.com",
		APIKey:  "sk-test",
		Model:   "claude-sonnet",
	})
	require.NoError(t, err)

	a, ok := c.(*anthropic.Adapter)
	require.True(t, ok)
	assert.Equal(t, "https://proxy.example.com", a.BaseURL)
}

func TestBuildCompleter_AppliesTuning(t *testing.T) {
	c, err := engine.BuildCompleter(engine.ProviderConfig{
		Kind:        "openai",
		Model:       "gpt-4o-mini",
		Temperature: 1.2,
		MaxTokens:   64,
	})
	require.NoError(t, err)

	a, ok := c.(*openai.Adapter)
	require.True(t, ok)
	assert.Equal(t, 1.2, a.Temperature)
	assert.Equal(t, 64, a.MaxTokens)
}

func TestBuildCompleter_UnknownKind(t *testing.T) {
	_, err := engine.BuildCompleter(engine.ProviderConfig{Kind: "telegraph"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown provider kind "telegraph"`)
}

type stubCompleter struct{}

func (stubCompleter) Complete(_ context.Context, _ string) (string, error) {
	return "stubbed", nil
}

func TestRegisterProvider(t *testing.T) {
	engine.RegisterProvider("stub", func(_ engine.ProviderConfig) (modeladapter.Completer, error) {
		return stubCompleter{}, nil
	})

	c, err := engine.BuildCompleter(engine.ProviderConfig{Kind: "stub"})
	require.NoError(t, err)

	reply, err := c.Complete(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "stubbed", reply)
}
