// Package console provides a sink that writes rendered messages to a
// console stream, one per line. Useful as the default destination for
// interactive runs.
package console

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/logchain/logchain/pkg/logchain"
)

// Option configures the console sink.
type Option func(*config)

type config struct {
	out io.Writer
}

// WithWriter redirects output to w instead of standard output.
// The writer is borrowed: the sink never closes it.
func WithWriter(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.out = w
		}
	}
}

// consoleSink writes newline-terminated text to a borrowed stream.
type consoleSink struct {
	out io.Writer
}

// NewSink creates a sink that writes to standard output by default.
func NewSink(opts ...Option) logchain.Sink {
	cfg := &config{
		out: os.Stdout,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return &consoleSink{
		out: cfg.out,
	}
}

// Write outputs text followed by a newline on the bound stream.
func (s *consoleSink) Write(ctx context.Context, text string) error {
	_, err := fmt.Fprintln(s.out, text)
	return err
}

// Flush is a no-op for the console sink.
func (s *consoleSink) Flush(ctx context.Context) error {
	return nil
}

// Close is a no-op; the stream is owned by the caller.
func (s *consoleSink) Close() error {
	return nil
}
