package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoop_ImmediateFirstTick(t *testing.T) {
	loop := NewLoop("test", time.Hour)
	defer loop.Stop()

	ticked := make(chan struct{}, 1)
	loop.Start(func(ctx context.Context) {
		ticked <- struct{}{}
	})

	select {
	case <-ticked:
	case <-time.After(time.Second):
		t.Fatal("expected an immediate first tick")
	}
}

func TestLoop_PeriodicTicks(t *testing.T) {
	loop := NewLoop("test", 10*time.Millisecond)
	defer loop.Stop()

	var count int32
	loop.Start(func(ctx context.Context) {
		atomic.AddInt32(&count, 1)
	})

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&count) >= 3
	}, time.Second, 5*time.Millisecond)
}

func TestLoop_StopPreventsFurtherTicks(t *testing.T) {
	loop := NewLoop("test", 10*time.Millisecond)

	var count int32
	loop.Start(func(ctx context.Context) {
		atomic.AddInt32(&count, 1)
	})

	// Let at least the immediate tick run, then stop
	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&count) >= 1
	}, time.Second, time.Millisecond)
	loop.Stop()

	settled := atomic.LoadInt32(&count)
	time.Sleep(50 * time.Millisecond)
	assert.LessOrEqual(t, atomic.LoadInt32(&count), settled+1,
		"no tick may run after Stop beyond one already in flight")
	assert.False(t, loop.Running())
}

func TestLoop_StopCancelsTickContext(t *testing.T) {
	loop := NewLoop("test", time.Hour)

	cancelled := make(chan struct{})
	started := make(chan struct{})
	loop.Start(func(ctx context.Context) {
		close(started)
		<-ctx.Done()
		close(cancelled)
	})

	<-started
	loop.Stop()

	select {
	case <-cancelled:
	case <-time.After(time.Second):
		t.Fatal("in-flight tick context was not cancelled by Stop")
	}
}

func TestLoop_StartWhileRunningIsNoop(t *testing.T) {
	loop := NewLoop("test", time.Hour)
	defer loop.Stop()

	var first, second int32
	loop.Start(func(ctx context.Context) { atomic.AddInt32(&first, 1) })
	loop.Start(func(ctx context.Context) { atomic.AddInt32(&second, 1) })

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&first) == 1
	}, time.Second, time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&second))
}

func TestLoop_StopIsIdempotent(t *testing.T) {
	loop := NewLoop("test", time.Hour)
	loop.Start(func(ctx context.Context) {})

	loop.Stop()
	loop.Stop()
	assert.False(t, loop.Running())
}

func TestLoop_RestartDoesNotOverlapInFlightTick(t *testing.T) {
	loop := NewLoop("test", time.Hour)
	defer loop.Stop()

	// A slow tick that ignores cancellation, as a stalled network call would
	var inFlight, maxInFlight, startedTicks int32
	tick := func(ctx context.Context) {
		n := atomic.AddInt32(&inFlight, 1)
		for {
			max := atomic.LoadInt32(&maxInFlight)
			if n <= max || atomic.CompareAndSwapInt32(&maxInFlight, max, n) {
				break
			}
		}
		atomic.AddInt32(&startedTicks, 1)
		time.Sleep(100 * time.Millisecond)
		atomic.AddInt32(&inFlight, -1)
	}

	loop.Start(tick)
	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&startedTicks) >= 1
	}, time.Second, time.Millisecond)

	loop.Stop()
	loop.Start(tick)

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&startedTicks) >= 2
	}, time.Second, time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&maxInFlight),
		"a restart's first tick must wait for the previous run to drain")
}

func TestLoop_RestartAfterStop(t *testing.T) {
	loop := NewLoop("test", time.Hour)

	var count int32
	loop.Start(func(ctx context.Context) { atomic.AddInt32(&count, 1) })
	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&count) == 1
	}, time.Second, time.Millisecond)

	loop.Stop()

	loop.Start(func(ctx context.Context) { atomic.AddInt32(&count, 1) })
	defer loop.Stop()
	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&count) == 2
	}, time.Second, time.Millisecond)
}
