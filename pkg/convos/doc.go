// Package convos provides the conversation data model for style imitation.
//
// It is organized into sub-packages:
//   - [github.com/pcurrier/imitator/pkg/convos/message] — single utterances tagged with an opaque speaker id
//   - [github.com/pcurrier/imitator/pkg/convos/conversation] — append-only ordered conversation container
//
// No prompt or API code is included — convos is a foundation layer the
// prompt builder and provider adapters build on.
package convos
