package sched

import (
	"errors"
	"runtime"
	"time"

	"github.com/mirceanis/noble-ciphers/ciphers/check"
)

// ErrNilBody is returned when a loop is started without a body function.
var ErrNilBody = errors.New("sched: nil loop body")

// DefaultYieldInterval is a wall-clock budget that keeps an interactive host
// responsive while wasting little time on scheduling overhead. Pass it to
// Loop or RunYielding unless the host has a known better value.
const DefaultYieldInterval = 5 * time.Millisecond

// Loop invokes body(i) for every i in [0, n), in order, exactly once each.
// After each invocation it checks the wall clock: once the time since the
// last checkpoint reaches every, it calls yield and resets the checkpoint.
// A clock that moved backward also yields immediately, so a step never
// extends the budget. With every <= 0 the loop yields after each iteration.
//
// A nil yield falls back to runtime.Gosched, which is the right choice when
// the loop runs outside a Scheduler. Inside a task, pass the task's yield
// function so other queued tasks get the thread.
//
// The first error returned by body stops the loop immediately and is
// returned unwrapped; remaining iterations are abandoned. Loop itself adds
// no deadline and does not watch any context: a caller that needs to stop
// early must check its own flag inside body and return an error.
func Loop(yield func(), n int, every time.Duration, body func(i int) error) error {
	return loopAt(yield, n, every, body, time.Now)
}

// RunYielding runs a cooperative loop outside any scheduler, periodically
// handing the processor to other goroutines.
func RunYielding(n int, every time.Duration, body func(i int) error) error {
	return Loop(runtime.Gosched, n, every, body)
}

// loopAt is Loop with an injectable clock.
func loopAt(yield func(), n int, every time.Duration, body func(i int) error, clock func() time.Time) error {
	if err := check.Number("iterations", n); err != nil {
		return err
	}

	if body == nil {
		return ErrNilBody
	}

	if yield == nil {
		yield = runtime.Gosched
	}

	checkpoint := clock()

	for i := 0; i < n; i++ {
		if err := body(i); err != nil {
			return err
		}

		elapsed := clock().Sub(checkpoint)
		if elapsed >= every || elapsed < 0 {
			yield()

			checkpoint = clock()
		}
	}

	return nil
}
