package imitator

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// CompleterFunc adapts a plain function to the Completer interface.
type CompleterFunc func(ctx context.Context, prompt string) (string, error)

// Complete calls the underlying function.
func (f CompleterFunc) Complete(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// Middleware wraps a Completer, returning a new Completer with added behaviour.
type Middleware func(next Completer) Completer

// --- Timeout middleware ---

// Timeout returns a Middleware that wraps the completion's context with a deadline.
func Timeout(d time.Duration) Middleware {
	return func(next Completer) Completer {
		return CompleterFunc(func(ctx context.Context, prompt string) (string, error) {
			ctx, cancel := context.WithTimeout(ctx, d)
			defer cancel()

			return next.Complete(ctx, prompt)
		})
	}
}

// --- Recovery middleware ---

// Recovery returns a Middleware that catches panics and converts them to errors.
func Recovery() Middleware {
	return func(next Completer) Completer {
		return CompleterFunc(func(ctx context.Context, prompt string) (reply string, err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("completer panicked: %v", r)
				}
			}()

			return next.Complete(ctx, prompt)
		})
	}
}

// --- Logger middleware ---

// Logger returns a Middleware that logs completion start, duration, and error.
func Logger(log *slog.Logger) Middleware {
	return func(next Completer) Completer {
		return CompleterFunc(func(ctx context.Context, prompt string) (string, error) {
			log.InfoContext(ctx, "completion started", "prompt_bytes", len(prompt))

			start := time.Now()

			reply, err := next.Complete(ctx, prompt)

			duration := time.Since(start)

			if err != nil {
				log.ErrorContext(ctx, "completion finished with error",
					"duration", duration,
					"error", err,
				)
			} else {
				log.InfoContext(ctx, "completion finished",
					"duration", duration,
					"reply_bytes", len(reply),
				)
			}

			return reply, err
		})
	}
}
