package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/anqasa/smarttaxi/internal/pkg/logger"
)

// TickFunc is one execution of a scheduled periodic operation
type TickFunc func(ctx context.Context)

// Loop is a cancellable fixed-interval task. On Start it ticks once
// immediately, then once per interval until Stop. Ticks of one loop are
// serialized: a slow tick delays the next one, it never overlaps it.
type Loop struct {
	name     string
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewLoop creates a loop with the given name and tick interval
func NewLoop(name string, interval time.Duration) *Loop {
	return &Loop{
		name:     name,
		interval: interval,
	}
}

// Start begins ticking. Starting a running loop is a no-op.
func (l *Loop) Start(fn TickFunc) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	l.cancel = cancel
	prev := l.done
	done := make(chan struct{})
	l.done = done

	logger.Debug("Starting loop",
		logger.String("loop", l.name),
		logger.Duration("interval", l.interval))

	go func() {
		// A restart must not tick while the previous run's in-flight
		// tick is still draining
		if prev != nil {
			<-prev
		}
		l.run(ctx, fn, done)
	}()
}

func (l *Loop) run(ctx context.Context, fn TickFunc, done chan struct{}) {
	defer close(done)

	// Immediate first tick, unless Stop already raced the drain wait
	if ctx.Err() != nil {
		return
	}
	fn(ctx)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// The ticker can fire while cancellation is pending
			if ctx.Err() != nil {
				return
			}
			fn(ctx)
		}
	}
}

// Stop cancels the loop: no further tick will run and the context passed to
// an in-flight tick is cancelled. Idempotent.
func (l *Loop) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cancel == nil {
		return
	}

	logger.Debug("Stopping loop", logger.String("loop", l.name))

	// l.done stays set: a subsequent Start waits on it so a restart never
	// overlaps the previous run
	l.cancel()
	l.cancel = nil
}

// Running reports whether the loop is currently started
func (l *Loop) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cancel != nil
}
