// Package noop provides a no-operation sink that discards all lines.
// Useful for testing and for silencing a handler without rebuilding the
// chain around it.
package noop

import (
	"context"

	"github.com/logchain/logchain/pkg/logchain"
)

// noopSink discards all lines.
type noopSink struct{}

// NewSink creates a sink that discards all lines.
// All methods return nil and perform no operations.
func NewSink() logchain.Sink {
	return &noopSink{}
}

// Write discards the line and returns nil.
func (s *noopSink) Write(ctx context.Context, text string) error {
	return nil
}

// Flush is a no-op and returns nil.
func (s *noopSink) Flush(ctx context.Context) error {
	return nil
}

// Close is a no-op and returns nil.
func (s *noopSink) Close() error {
	return nil
}
