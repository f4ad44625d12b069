// Package file provides a sink that appends rendered messages to a file,
// one per line. The file is opened once in append mode and held until
// the sink is closed; every write is visible in the file, in call order,
// before Write returns.
package file

import (
	"context"
	"os"
	"sync"

	"github.com/pkg/errors"

	"github.com/logchain/logchain/pkg/logchain"
)

// Option configures the file sink.
type Option func(*config)

type config struct {
	sync bool
	mode os.FileMode
}

// WithSync forces an fsync after every write, trading throughput for
// durability across process crashes.
func WithSync() Option {
	return func(c *config) {
		c.sync = true
	}
}

// WithFileMode sets the permission bits used when the file is created
// (default 0644).
func WithFileMode(mode os.FileMode) Option {
	return func(c *config) {
		if mode != 0 {
			c.mode = mode
		}
	}
}

// fileSink appends newline-terminated text to an owned file handle.
type fileSink struct {
	file   *os.File
	sync   bool
	mu     sync.Mutex
	closed bool
}

// NewSink opens path in append mode, creating it if absent, and returns
// a sink that appends to it. Prior content is never truncated.
func NewSink(path string, opts ...Option) (logchain.Sink, error) {
	cfg := &config{
		mode: 0644,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, cfg.mode)
	if err != nil {
		return nil, errors.Wrapf(err, "open log file %s", path)
	}
	return &fileSink{
		file: f,
		sync: cfg.sync,
	}, nil
}

// Write appends text and a newline to the file. The append is complete
// when Write returns; with WithSync it is also fsynced.
func (s *fileSink) Write(ctx context.Context, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return errors.New("file sink is closed")
	}
	if _, err := s.file.WriteString(text + "\n"); err != nil {
		return errors.Wrapf(err, "append to %s", s.file.Name())
	}
	if s.sync {
		if err := s.file.Sync(); err != nil {
			return errors.Wrapf(err, "sync %s", s.file.Name())
		}
	}
	return nil
}

// Flush fsyncs the file.
func (s *fileSink) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return errors.New("file sink is closed")
	}
	return errors.Wrapf(s.file.Sync(), "sync %s", s.file.Name())
}

// Close closes the underlying file. Subsequent writes fail.
func (s *fileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.file.Close()
}
