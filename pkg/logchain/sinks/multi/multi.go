// Package multi provides a sink that fans out to multiple sinks.
// All sinks receive all lines; errors are aggregated.
package multi

import (
	"context"
	"errors"

	"github.com/logchain/logchain/pkg/logchain"
)

// multiSink fans out to multiple sinks.
type multiSink struct {
	sinks []logchain.Sink
}

// NewSink creates a sink that writes to every given sink.
// All sinks receive all lines. Errors are aggregated via errors.Join.
func NewSink(sinks ...logchain.Sink) logchain.Sink {
	return &multiSink{
		sinks: sinks,
	}
}

// Write sends the line to all sinks, collecting any errors.
// All sinks are written even if some return errors.
func (s *multiSink) Write(ctx context.Context, text string) error {
	var errs []error
	for _, sink := range s.sinks {
		if err := sink.Write(ctx, text); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Flush calls Flush on all sinks, collecting any errors.
func (s *multiSink) Flush(ctx context.Context) error {
	var errs []error
	for _, sink := range s.sinks {
		if err := sink.Flush(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close calls Close on all sinks, collecting any errors.
func (s *multiSink) Close() error {
	var errs []error
	for _, sink := range s.sinks {
		if err := sink.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
