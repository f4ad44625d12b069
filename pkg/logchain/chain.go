// chain.go provides the Chain dispatcher and its handler configuration.

package logchain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Handler is one step of a chain: a kind filter bound to the sink the
// rendered text is written through. The sink may be nil for kinds whose
// rendering never writes (KindFatalError, KindUnknownMessage).
type Handler struct {
	Filter Kind
	Sink   Sink
}

// ChainOption configures a Chain.
type ChainOption func(*chainConfig)

type chainConfig struct {
	handlers []Handler
	now      func() time.Time
}

// WithHandler appends a handler to the chain. Handlers are tried in the
// order they are added; the first whose filter matches the message's
// kind consumes it. Order and membership are fixed once the chain is
// constructed.
func WithHandler(filter Kind, sink Sink) ChainOption {
	return func(c *chainConfig) {
		c.handlers = append(c.handlers, Handler{Filter: filter, Sink: sink})
	}
}

// WithClock overrides the timestamp source. Intended for tests.
func WithClock(now func() time.Time) ChainOption {
	return func(c *chainConfig) {
		if now != nil {
			c.now = now
		}
	}
}

// Outcome reports how a dispatched message was consumed.
type Outcome struct {
	// Message is the dispatched message with MessageID and Timestamp
	// stamped.
	Message Message

	// Text is the rendered form written through the handler's sink.
	Text string

	// Handler is the index of the chain entry that consumed the message.
	Handler int
}

// Chain dispatches messages through an ordered list of kind-filtered
// handlers.
type Chain struct {
	handlers []Handler
	now      func() time.Time
}

// NewChain creates a Chain from the given options.
func NewChain(opts ...ChainOption) *Chain {
	cfg := &chainConfig{
		now: time.Now,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Chain{
		handlers: cfg.handlers,
		now:      cfg.now,
	}
}

// Dispatch passes msg through the chain until a handler consumes it.
//
// The message is stamped with a MessageID and Timestamp if it does not
// already carry them. Handlers are tried in construction order; the
// first whose filter matches the message's kind renders it through that
// handler's sink and dispatch stops there, even if a later handler would
// also match. Rendering failures (Fatal, Unknown, sink write errors)
// propagate unmodified. If no filter matches, Dispatch returns an
// UnhandledFailure recording the message's kind.
func (c *Chain) Dispatch(ctx context.Context, msg Message) (Outcome, error) {
	if msg.MessageID == "" {
		msg.MessageID = uuid.NewString()
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = c.now()
	}

	for i, h := range c.handlers {
		if h.Filter != msg.Kind {
			continue
		}
		text, err := msg.Render(ctx, h.Sink)
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{Message: msg, Text: text, Handler: i}, nil
	}

	return Outcome{}, &UnhandledFailure{Kind: msg.Kind}
}

// Flush flushes every distinct sink bound to the chain, collecting any
// errors.
func (c *Chain) Flush(ctx context.Context) error {
	var errs []error
	for _, sink := range c.distinctSinks() {
		if err := sink.Flush(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close closes every distinct sink bound to the chain, collecting any
// errors. A sink bound to several handlers is closed once.
func (c *Chain) Close() error {
	var errs []error
	for _, sink := range c.distinctSinks() {
		if err := sink.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// distinctSinks returns the chain's non-nil sinks, deduplicated, in
// first-bound order.
func (c *Chain) distinctSinks() []Sink {
	var sinks []Sink
	seen := make(map[Sink]bool, len(c.handlers))
	for _, h := range c.handlers {
		if h.Sink == nil || seen[h.Sink] {
			continue
		}
		seen[h.Sink] = true
		sinks = append(sinks, h.Sink)
	}
	return sinks
}
