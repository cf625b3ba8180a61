package main

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/pcurrier/imitator/pkg/engine"
	"github.com/pcurrier/imitator/pkg/imitator"
)

// completionTimeout caps how long a single reply generation may take.
const completionTimeout = 2 * time.Minute

// loadDotEnv loads environment variables from path. If the file does not exist
// it is silently ignored so that .env files remain optional.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// buildImitator assembles an Imitator from the config and transcript. The
// name flag overrides the configured name when non-empty. When the provider
// has an API key a completer is built and wrapped with recovery, a timeout,
// and (if logWriter is non-nil) slog logging; without a key the imitator
// stays in prompt-only mode.
func buildImitator(cfg engine.Config, tr engine.Transcript, name string, logWriter io.Writer) (*imitator.Imitator, error) {
	if name == "" {
		name = cfg.Name
	}

	im := imitator.New().
		WithName(name).
		AddStyleContext(tr.Style...)

	if tr.Target != nil {
		im.SetConversationContext(tr.Target)
	}

	if cfg.Provider.APIKey == "" {
		return im, nil
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	completer, err := engine.BuildCompleter(cfg.Provider)
	if err != nil {
		return nil, err
	}

	var c imitator.Completer = completer
	c = imitator.Timeout(completionTimeout)(c)
	c = imitator.Recovery()(c)
	if logWriter != nil {
		log := slog.New(slog.NewTextHandler(logWriter, nil))
		c = imitator.Logger(log)(c)
	}

	return im.WithCompleter(c), nil
}
