// sink.go defines the Sink interface for rendered message destinations.

package logchain

import "context"

// Sink is the destination for rendered message text.
// The library dispatches from a single goroutine; implementations are not
// required to be safe for concurrent use.
type Sink interface {
	// Write appends text followed by a line terminator to the
	// destination. The call blocks until the line has been handed to
	// the destination; for file-backed sinks the append is visible, in
	// call order, before Write returns.
	Write(ctx context.Context, text string) error

	// Flush ensures any buffered lines are persisted.
	// For unbuffered sinks, this may be a no-op.
	Flush(ctx context.Context) error

	// Close releases resources held by the sink.
	// After Close is called, Write and Flush should return errors.
	Close() error
}
