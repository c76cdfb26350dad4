package simulation

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Repeater runs an action periodically on its own goroutine until it is
// stopped, its context is cancelled, the action fails, or it reaches its
// run limit. The first run happens one interval after Every returns.
type Repeater struct {
	cancel context.CancelFunc
	done   chan struct{}
	runs   atomic.Int64
	mu     sync.Mutex
	err    error
}

// Every starts fn every interval. A limit > 0 stops the repeater after that
// many successful runs; limit <= 0 runs until stopped. fn receives a context
// that is cancelled on Stop. An error from fn ends the repeater and is
// reported by Err.
func Every(ctx context.Context, interval time.Duration, limit int, fn func(context.Context) error) *Repeater {
	ctx, cancel := context.WithCancel(ctx)
	r := &Repeater{cancel: cancel, done: make(chan struct{})}
	go r.loop(ctx, interval, int64(limit), fn)
	return r
}

func (r *Repeater) loop(ctx context.Context, interval time.Duration, limit int64, fn func(context.Context) error) {
	defer close(r.done)
	defer r.cancel()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		// a Stop racing with the ticker wins
		if ctx.Err() != nil {
			return
		}
		if err := fn(ctx); err != nil {
			r.mu.Lock()
			r.err = err
			r.mu.Unlock()
			return
		}
		if n := r.runs.Add(1); limit > 0 && n >= limit {
			return
		}
	}
}

// Stop asks the repeater to end. It does not wait; use Done or Wait.
// Safe to call more than once and from inside the action.
func (r *Repeater) Stop() { r.cancel() }

// Done is closed once the goroutine has exited.
func (r *Repeater) Done() <-chan struct{} { return r.done }

// Wait blocks until the goroutine has exited and returns Err.
func (r *Repeater) Wait() error {
	<-r.done
	return r.Err()
}

// Runs counts the successful runs so far.
func (r *Repeater) Runs() int { return int(r.runs.Load()) }

// Err is the error that ended the repeater, if any. Cancellation is not an error.
func (r *Repeater) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}
