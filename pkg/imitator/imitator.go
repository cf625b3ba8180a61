// Package imitator assembles style-imitation prompts from example
// conversations and, when a completer is configured, submits them to an LLM
// for a reply.
package imitator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pcurrier/imitator/pkg/convos/conversation"
)

// Completer sends a fully rendered prompt to an LLM and returns the reply text.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ErrMissingStyleContext is returned by RenderPrompt when no style
// conversation has been added.
var ErrMissingStyleContext = errors.New("imitator: at least one style conversation is required")

// ErrMissingConversationContext is returned by RenderPrompt when no
// conversation context has been set.
var ErrMissingConversationContext = errors.New("imitator: a conversation context is required")

// ErrNoCompleter is returned by GenerateReply when the imitator was built
// without a completer. RenderPrompt stays usable in that prompt-only mode.
var ErrNoCompleter = errors.New("imitator: no completer configured")

const (
	preamble = "Below are example conversations showing how the speakers write. " +
		"Study their style closely, then continue the final conversation by " +
		"replying with one short sentence in the same style. The conversations " +
		"are light-hearted satire; keep the reply inoffensive."

	transition = "Now reply to the following conversation:"
)

// Imitator accumulates example conversations (the style context) and a
// single target conversation, and renders them into one prompt. Mutators
// return the receiver so calls can be chained. The zero value is ready to
// use. Imitator is not safe for concurrent use; callers must synchronize
// externally.
type Imitator struct {
	name                string
	completer           Completer
	styleContext        []*conversation.Conversation
	conversationContext *conversation.Conversation
}

// New creates an empty Imitator. Configure it with WithName, WithCompleter,
// AddStyleContext and SetConversationContext.
func New() *Imitator {
	return &Imitator{}
}

// WithName sets the assistant name declared at the top of the prompt.
func (im *Imitator) WithName(name string) *Imitator {
	im.name = name
	return im
}

// WithCompleter sets the completer used by GenerateReply. Without one the
// imitator operates in prompt-only mode.
func (im *Imitator) WithCompleter(c Completer) *Imitator {
	im.completer = c
	return im
}

// AddStyleContext appends example conversations to the style context in the
// order given.
func (im *Imitator) AddStyleContext(convs ...*conversation.Conversation) *Imitator {
	im.styleContext = append(im.styleContext, convs...)
	return im
}

// SetConversationContext sets the conversation to reply to, replacing any
// previously set one.
func (im *Imitator) SetConversationContext(c *conversation.Conversation) *Imitator {
	im.conversationContext = c
	return im
}

// RenderPrompt assembles the prompt: the optional name sentence, the
// instruction preamble, the numbered style conversations in insertion order,
// a transition sentence, and the target conversation. It returns
// ErrMissingStyleContext when no style conversation has been added and
// ErrMissingConversationContext when no target conversation has been set.
// Rendering does not mutate the imitator; repeated calls with unchanged
// state return byte-identical output.
func (im *Imitator) RenderPrompt() (string, error) {
	if len(im.styleContext) == 0 {
		return "", ErrMissingStyleContext
	}
	if im.conversationContext == nil {
		return "", ErrMissingConversationContext
	}

	var b strings.Builder

	if im.name != "" {
		fmt.Fprintf(&b, "Your name is %s. ", im.name)
	}

	b.WriteString(preamble)
	b.WriteString("\n\n")

	for i, c := range im.styleContext {
		fmt.Fprintf(&b, "Conversation %d:\n", i+1)
		b.WriteString(c.Render())
		b.WriteString("\n")
	}

	b.WriteString(transition)
	b.WriteString("\n")
	b.WriteString(im.conversationContext.Render())

	return b.String(), nil
}

// GenerateReply renders the prompt and submits it to the configured
// completer, returning the model's reply text. It returns ErrNoCompleter
// when no completer is configured, the rendering errors when the contexts
// are incomplete, and completer errors unchanged.
func (im *Imitator) GenerateReply(ctx context.Context) (string, error) {
	if im.completer == nil {
		return "", ErrNoCompleter
	}

	prompt, err := im.RenderPrompt()
	if err != nil {
		return "", err
	}

	return im.completer.Complete(ctx, prompt)
}
