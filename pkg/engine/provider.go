package engine

import (
	"fmt"
	"sync"

	"github.com/pcurrier/imitator/pkg/modeladapter"
	"github.com/pcurrier/imitator/pkg/providers/anthropic"
	"github.com/pcurrier/imitator/pkg/providers/openai"
)

// ProviderFactory creates a Completer from a ProviderConfig.
type ProviderFactory func(cfg ProviderConfig) (modeladapter.Completer, error)

var (
	factoryMu   sync.RWMutex
	factories   = map[string]ProviderFactory{}
	defaultsReg sync.Once
)

func ensureDefaults() {
	defaultsReg.Do(func() {
		factories["anthropic"] = newAnthropic
		factories["openai"] = newOpenAI
	})
}

// RegisterProvider registers a custom provider factory under the given kind.
// It can be called before BuildCompleter to extend the set of providers.
func RegisterProvider(kind string, factory ProviderFactory) {
	ensureDefaults()

	factoryMu.Lock()
	defer factoryMu.Unlock()

	factories[kind] = factory
}

// getFactory returns the factory for the given kind.
func getFactory(kind string) (ProviderFactory, bool) {
	ensureDefaults()

	factoryMu.RLock()
	defer factoryMu.RUnlock()

	f, ok := factories[kind]
	return f, ok
}

func newAnthropic(cfg ProviderConfig) (modeladapter.Completer, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.anthropic.com"
	}

	a := anthropic.New(baseURL, cfg.APIKey, cfg.Model)
	applyTuning(&a.ModelAdapter, cfg)

	return a, nil
}

func newOpenAI(cfg ProviderConfig) (modeladapter.Completer, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.openai.com"
	}

	a := openai.New(baseURL, cfg.APIKey, cfg.Model)
	applyTuning(&a.ModelAdapter, cfg)

	return a, nil
}

func applyTuning(a *modeladapter.ModelAdapter, cfg ProviderConfig) {
	if cfg.Temperature != 0 {
		a.Temperature = cfg.Temperature
	}
	if cfg.MaxTokens != 0 {
		a.MaxTokens = cfg.MaxTokens
	}
}

// BuildCompleter creates a Completer from a ProviderConfig using the
// registered factory for its Kind.
func BuildCompleter(cfg ProviderConfig) (modeladapter.Completer, error) {
	factory, ok := getFactory(cfg.Kind)
	if !ok {
		return nil, fmt.Errorf("engine: unknown provider kind %q", cfg.Kind)
	}

	return factory(cfg)
}
