// Package conversation provides an append-only conversation container.
package conversation

import (
	"strings"

	"github.com/pcurrier/imitator/pkg/convos/message"
)

// Conversation is an ordered, append-only sequence of messages. Messages are
// rendered in insertion order; nothing is reordered, deduplicated, or
// validated. The zero value is ready to use. Conversation is not safe for
// concurrent use; callers must synchronize externally.
type Conversation struct {
	messages []message.Message
}

// New creates a Conversation pre-populated with the given messages.
func New(msgs ...message.Message) *Conversation {
	return &Conversation{messages: msgs}
}

// Append adds one utterance and returns the conversation, so calls can be
// chained when building a transcript inline.
func (c *Conversation) Append(speakerID int, text string) *Conversation {
	c.messages = append(c.messages, message.New(speakerID, text))
	return c
}

// Len returns the number of messages in the conversation.
func (c *Conversation) Len() int {
	return len(c.messages)
}

// At returns the message at the given index.
// It panics if the index is out of range.
func (c *Conversation) At(index int) message.Message {
	return c.messages[index]
}

// Last returns the most recent message and true, or a zero Message and false
// if the conversation is empty.
func (c *Conversation) Last() (message.Message, bool) {
	if len(c.messages) == 0 {
		return message.Message{}, false
	}
	return c.messages[len(c.messages)-1], true
}

// Messages returns a copy of all messages in the conversation.
func (c *Conversation) Messages() []message.Message {
	cp := make([]message.Message, len(c.messages))
	copy(cp, c.messages)
	return cp
}

// Each iterates over messages, calling fn for each one. If fn returns false,
// iteration stops early.
func (c *Conversation) Each(fn func(int, message.Message) bool) {
	for i, m := range c.messages {
		if !fn(i, m) {
			return
		}
	}
}

// BySpeaker returns all messages from the given speaker.
func (c *Conversation) BySpeaker(speakerID int) []message.Message {
	var out []message.Message
	for _, m := range c.messages {
		if m.SpeakerID == speakerID {
			out = append(out, m)
		}
	}
	return out
}

// Render returns the transcript as one newline-terminated line per message,
// in insertion order. It does not mutate the conversation; repeated calls
// return identical text.
func (c *Conversation) Render() string {
	var b strings.Builder
	for _, m := range c.messages {
		b.WriteString(m.Line())
	}
	return b.String()
}
