// Package message defines the Message type used in imitation conversations.
package message

import "fmt"

// Message represents a single utterance within a conversation.
// It is a value type that copies cheaply; once created it is never mutated.
type Message struct {
	SpeakerID int
	Text      string
}

// New creates a message spoken by the given speaker.
func New(speakerID int, text string) Message {
	return Message{SpeakerID: speakerID, Text: text}
}

// Label returns the display label for the message's speaker. The same
// speaker id always maps to the same label, and distinct ids map to
// distinct labels.
func (m Message) Label() string {
	return fmt.Sprintf("Person %d", m.SpeakerID)
}

// Line renders the message as a single newline-terminated transcript line.
func (m Message) Line() string {
	return fmt.Sprintf("%s: %s\n", m.Label(), m.Text)
}
