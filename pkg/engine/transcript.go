package engine

import (
	"fmt"
	"os"

	"github.com/pcurrier/imitator/pkg/convos/conversation"

	"gopkg.in/yaml.v3"
)

// Transcript holds the conversations loaded from a transcript file: the
// style examples and the target conversation the model should reply to.
type Transcript struct {
	Style  []*conversation.Conversation
	Target *conversation.Conversation
}

type transcriptFile struct {
	Style  [][]transcriptMessage `yaml:"style"`
	Target []transcriptMessage   `yaml:"target"`
}

type transcriptMessage struct {
	Speaker int    `yaml:"speaker"`
	Text    string `yaml:"text"`
}

// LoadTranscript reads a YAML transcript file. The file declares style
// conversations as a list of message lists and the target conversation as a
// single message list:
//
//	style:
//	  - - speaker: 0
//	      text: "omg heyyyyyyy!"
//	    - speaker: 1
//	      text: "woahhhh heyyyy!! whats up????"
//	target:
//	  - speaker: 0
//	    text: "omg youre sooooo cool!"
//
// A missing target section leaves Target nil; presence checks are left to
// the imitator's own rendering validation.
func LoadTranscript(path string) (Transcript, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided configuration, not user input
	if err != nil {
		return Transcript{}, fmt.Errorf("engine: load transcript: %w", err)
	}

	var file transcriptFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Transcript{}, fmt.Errorf("engine: parse transcript: %w", err)
	}

	var tr Transcript

	for _, msgs := range file.Style {
		c := conversation.New()
		for _, m := range msgs {
			c.Append(m.Speaker, m.Text)
		}
		tr.Style = append(tr.Style, c)
	}

	if len(file.Target) > 0 {
		c := conversation.New()
		for _, m := range file.Target {
			c.Append(m.Speaker, m.Text)
		}
		tr.Target = c
	}

	return tr, nil
}
