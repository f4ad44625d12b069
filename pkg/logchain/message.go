// message.go defines the message kinds and the canonical message type.

package logchain

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// Kind is the fixed classification of a log message.
type Kind string

const (
	// KindWarning indicates a non-fatal issue. Rendering writes "warning".
	KindWarning Kind = "warning"

	// KindError indicates a recoverable error. Rendering writes "Error".
	KindError Kind = "error"

	// KindFatalError indicates an unrecoverable error.
	// Rendering never succeeds; it returns a FatalFailure.
	KindFatalError Kind = "fatal_error"

	// KindUnknownMessage indicates a message that could not be classified.
	// Rendering never succeeds; it returns an UnknownFailure.
	KindUnknownMessage Kind = "unknown_message"
)

// renderedText holds the fixed literal each renderable kind produces.
// FatalError and UnknownMessage have no entry: rendering them fails.
var renderedText = map[Kind]string{
	KindWarning: "warning",
	KindError:   "Error",
}

// Renderable reports whether rendering a message of kind k can succeed.
func (k Kind) Renderable() bool {
	_, ok := renderedText[k]
	return ok
}

// Message is the canonical log message representation.
// The Kind is set at construction and never changes; MessageID and
// Timestamp are stamped by the chain before the message is rendered.
type Message struct {
	// MessageID is a unique identifier for this message (UUID).
	MessageID string

	// Timestamp is when the message was dispatched.
	Timestamp time.Time

	// Kind is the fixed classification of the message.
	Kind Kind
}

// Render produces the message's textual form and writes it through sink.
//
// For KindWarning and KindError, Render performs exactly one Write of the
// kind's fixed literal on sink and returns that literal. For
// KindFatalError and KindUnknownMessage, Render never writes and returns
// a FatalFailure or UnknownFailure respectively. The sink is borrowed for
// the duration of the call; it is not retained.
func (m Message) Render(ctx context.Context, sink Sink) (string, error) {
	switch m.Kind {
	case KindFatalError:
		return "", &FatalFailure{}
	case KindUnknownMessage:
		return "", &UnknownFailure{}
	}

	text, ok := renderedText[m.Kind]
	if !ok {
		return "", errors.Errorf("logchain: no rendering for kind %q", m.Kind)
	}
	if sink == nil {
		return "", errors.Errorf("logchain: kind %q requires a sink", m.Kind)
	}
	if err := sink.Write(ctx, text); err != nil {
		return "", err
	}
	return text, nil
}
