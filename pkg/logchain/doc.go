// Package logchain provides a small chain-of-responsibility dispatcher for
// classified log messages, with pluggable output sinks.
//
// A message carries a fixed kind (warning, error, fatal error, unknown).
// A chain is an ordered list of kind-filtered handlers, each bound to a
// sink; dispatching a message walks the chain in order and the first
// handler whose filter matches renders the message through its sink.
//
// # Core Components
//
// The library is organized around these concepts:
//
//   - Message: a classified log event with a fixed Kind and a stamped ID
//   - Chain: the dispatcher owning an ordered list of (kind, sink) handlers
//   - Sink: destination for rendered text (console, file, multi, noop)
//   - Failures: typed errors for fatal, unknown, and unhandled outcomes
//
// # Quick Start
//
//	chain := logchain.NewChain(
//	    logchain.WithHandler(logchain.KindWarning, console.NewSink()),
//	    logchain.WithHandler(logchain.KindError, fileSink),
//	    logchain.WithHandler(logchain.KindFatalError, nil),
//	    logchain.WithHandler(logchain.KindUnknownMessage, nil),
//	)
//	defer chain.Close()
//
//	outcome, err := chain.Dispatch(ctx, logchain.Message{Kind: logchain.KindWarning})
//
// # Design Principles
//
//   - Filter mismatch is not an error: only exhausting the chain is
//   - Failures are values: Dispatch returns typed errors, never panics
//   - Sinks are bound to handlers at assembly, not stored inside messages
//   - Single-threaded: Dispatch is synchronous and blocks until written
package logchain
