// Package xcmd holds small process-level helpers: context-aware sleeping for
// paced API clients and signal-aware blocking for long-running commands.
package xcmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// Sleep blocks for d or until ctx is done, whichever comes first. A zero or
// negative duration returns immediately. Used to pace paginated API calls
// and to honor rate-limit windows without ignoring cancellation.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// WaitInterrupted blocks until ctx is done or one of the signals arrives
// (SIGINT and SIGTERM when none are given) and reports which happened.
func WaitInterrupted(ctx context.Context, signals ...os.Signal) error {
	if len(signals) == 0 {
		signals = []os.Signal{syscall.SIGINT, syscall.SIGTERM}
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, signals...)
	defer signal.Stop(sigChan)

	select {
	case sig := <-sigChan:
		return errors.New(sig.String())
	case <-ctx.Done():
		return ctx.Err()
	}
}
