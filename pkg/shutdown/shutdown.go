package shutdown

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// ErrSignal is the cancellation cause when a signal ends the session.
var ErrSignal = errors.New("interrupted by signal")

// WithSignals cancels the returned context on the first of sigs
// (SIGINT and SIGTERM when none are given). context.Cause reports which one.
func WithSignals(parent context.Context, sigs ...os.Signal) (context.Context, context.CancelFunc) {
	if len(sigs) == 0 {
		sigs = []os.Signal{syscall.SIGINT, syscall.SIGTERM}
	}

	ctx, cancelCause := context.WithCancelCause(parent)
	cancel := func() { cancelCause(context.Canceled) }

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, sigs...)

	go func() {
		defer signal.Stop(ch)
		select {
		case <-ctx.Done():
			return
		case sig := <-ch:
			cancelCause(fmt.Errorf("%w: %s", ErrSignal, sig))
		}
	}()

	return ctx, cancel
}
