// run.go executes the reference dispatch scenario.

package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/logchain/logchain/internal/config"
	"github.com/logchain/logchain/pkg/logchain"
	"github.com/logchain/logchain/pkg/logchain/sinks/console"
	"github.com/logchain/logchain/pkg/logchain/sinks/file"
)

// runScenario builds the reference chain and drives the three reference
// messages through it. Dispatch failures are printed to stdout and the
// run continues; only infrastructure errors (config, file sink setup)
// are returned.
func runScenario(ctx context.Context, cfg *config.Config, stdout io.Writer) error {
	logger := newLogger(cfg.Verbose)

	consoleSink := console.NewSink(console.WithWriter(stdout))

	var fileOpts []file.Option
	if cfg.Sync {
		fileOpts = append(fileOpts, file.WithSync())
	}
	fileSink, err := file.NewSink(cfg.FilePath, fileOpts...)
	if err != nil {
		return err
	}

	// Outermost filter first: a FatalError message is checked against
	// Warning and Error before reaching its own handler.
	chain := logchain.NewChain(
		logchain.WithHandler(logchain.KindWarning, consoleSink),
		logchain.WithHandler(logchain.KindError, fileSink),
		logchain.WithHandler(logchain.KindFatalError, nil),
		logchain.WithHandler(logchain.KindUnknownMessage, nil),
	)
	defer func() {
		if err := chain.Close(); err != nil {
			logger.Error("closing sinks", "error", err)
		}
	}()

	kinds := []logchain.Kind{
		logchain.KindWarning,
		logchain.KindError,
		logchain.KindUnknownMessage,
	}
	for _, kind := range kinds {
		outcome, err := chain.Dispatch(ctx, logchain.Message{Kind: kind})
		if err != nil {
			// Top-level catch: report the failure and keep going.
			fmt.Fprintln(stdout, err.Error())
			continue
		}
		logger.Debug("message handled",
			"kind", kind,
			"id", outcome.Message.MessageID,
			"handler", outcome.Handler,
			"text", outcome.Text,
		)
	}

	return chain.Flush(ctx)
}

// newLogger builds the driver's diagnostic logger. Diagnostics go to
// stderr so they never mix with the console sink's output.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
