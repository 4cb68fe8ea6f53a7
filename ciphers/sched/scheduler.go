package sched

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/mirceanis/noble-ciphers/ciphers/log"
)

var (
	// ErrNilTask is returned when a nil task function is submitted.
	ErrNilTask = errors.New("sched: nil task")
	// ErrRunning is returned when Run or Serve is called on a scheduler
	// that is already running.
	ErrRunning = errors.New("sched: scheduler already running")
	// ErrTaskPanicked is recorded on a task's handle when its function
	// panics; the panic value is included in the wrapped message.
	ErrTaskPanicked = errors.New("sched: task panicked")
	// ErrNotStarted is recorded on handles of tasks that were skipped
	// because the scheduler's context ended before they ran.
	ErrNotStarted = errors.New("sched: task not started")
)

// taskFinishedEvent is the span event recorded when a task completes.
const taskFinishedEvent = "sched.task.finished"

// TaskFunc is a unit of cooperative work. It runs on the scheduler's single
// logical thread; calling yield parks the task at the back of the run queue
// and hands control to the next runnable task. The context is the one given
// to Run or Serve, so a task that wants to stop early on cancellation can
// observe it between chunks of work.
type TaskFunc func(ctx context.Context, yield func()) error

// Handle tracks one submitted task.
type Handle struct {
	id   string
	name string
	fn   TaskFunc

	resume  chan struct{}
	done    chan struct{}
	started bool
	yields  int
	err     error
}

// ID returns the unique identifier assigned at submission.
func (h *Handle) ID() string {
	return h.id
}

// Name returns the label given to Submit.
func (h *Handle) Name() string {
	return h.name
}

// Done returns a channel closed when the task has finished.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Err returns the task's result once it has finished, and nil while it is
// still pending or running.
func (h *Handle) Err() error {
	select {
	case <-h.done:
		return h.err
	default:
		return nil
	}
}

// Wait blocks until the task finishes and returns its error, or until ctx
// is done.
func (h *Handle) Wait(ctx context.Context) error {
	select {
	case <-h.done:
		return h.err
	case <-ctx.Done():
		return fmt.Errorf("sched: wait: %w", ctx.Err())
	}
}

// taskEvent is the message a running task sends back to the scheduler loop:
// either "parked at a yield point" or "finished".
type taskEvent struct {
	task     *Handle
	finished bool
}

// Scheduler executes tasks cooperatively, one at a time, in submission
// order. It never runs two tasks concurrently: a task keeps the logical
// thread until it yields or returns.
type Scheduler struct {
	logger log.Logger

	mu      sync.Mutex
	pending []*Handle
	running bool

	wake chan struct{}
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithLogger adds a log.Logger for task lifecycle events.
func WithLogger(logger log.Logger) Option {
	return func(s *Scheduler) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewScheduler creates an idle scheduler. Call Run to drain submitted tasks
// or Serve to keep accepting tasks until the context ends.
func NewScheduler(opts ...Option) *Scheduler {
	s := &Scheduler{
		logger: log.NewNop(),
		wake:   make(chan struct{}, 1),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	return s
}

// Submit queues a task for execution and returns its handle. Submission is
// safe from any goroutine, including from inside a running task.
func (s *Scheduler) Submit(name string, fn TaskFunc) (*Handle, error) {
	if fn == nil {
		return nil, ErrNilTask
	}

	h := &Handle{
		id:     uuid.New().String(),
		name:   name,
		fn:     fn,
		resume: make(chan struct{}),
		done:   make(chan struct{}),
	}

	s.mu.Lock()
	s.pending = append(s.pending, h)
	s.mu.Unlock()

	// Nudge a Serve loop that may be idle.
	select {
	case s.wake <- struct{}{}:
	default:
	}

	s.logger.Log(context.Background(), log.LevelDebug, "task submitted",
		log.String("task", h.name), log.String("task_id", h.id))

	return h, nil
}

// Run executes queued tasks until the queue is empty, then returns. Tasks
// submitted while Run is active are picked up in the same pass. When ctx
// ends early, tasks that already started are resumed until they return
// (yields become immediate), unstarted tasks are completed with
// ErrNotStarted, and Run reports the context error.
//
// Task errors do not stop the scheduler and are reported per task through
// the task's handle.
func (s *Scheduler) Run(ctx context.Context) error {
	return s.loop(ctx, false)
}

// Serve executes tasks like Run but idles instead of returning when the
// queue empties, until ctx ends. Use it as the execution host behind
// long-lived asynchronous facades such as Async.
func (s *Scheduler) Serve(ctx context.Context) error {
	return s.loop(ctx, true)
}

func (s *Scheduler) loop(ctx context.Context, serve bool) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()

		return ErrRunning
	}

	s.running = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	events := make(chan taskEvent)

	var queue []*Handle

	for {
		queue = append(queue, s.takePending()...)

		if len(queue) == 0 {
			if !serve {
				if err := ctx.Err(); err != nil {
					return fmt.Errorf("sched: run interrupted: %w", err)
				}

				return nil
			}

			select {
			case <-ctx.Done():
				return fmt.Errorf("sched: serve interrupted: %w", ctx.Err())
			case <-s.wake:
				continue
			}
		}

		task := queue[0]
		queue = queue[1:]

		if ctx.Err() != nil && !task.started {
			s.skip(ctx, task)

			continue
		}

		s.dispatch(ctx, task, events)

		event := <-events
		switch {
		case event.finished:
			s.observeFinished(ctx, event.task)
		case ctx.Err() != nil:
			// Draining: the task must finish, so resume it straight away
			// instead of requeueing.
			for !event.finished {
				event.task.resume <- struct{}{}
				event = <-events
			}

			s.observeFinished(ctx, event.task)
		default:
			queue = append(queue, event.task)
		}
	}
}

func (s *Scheduler) takePending() []*Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending := s.pending
	s.pending = nil

	return pending
}

// dispatch hands the logical thread to the task: first schedule starts its
// goroutine, later ones unpark it at its yield point. The caller must wait
// for the task's next event before dispatching anything else.
func (s *Scheduler) dispatch(ctx context.Context, task *Handle, events chan taskEvent) {
	if task.started {
		task.resume <- struct{}{}

		return
	}

	task.started = true

	s.logger.Log(ctx, log.LevelDebug, "task started",
		log.String("task", task.name), log.String("task_id", task.id))

	go runTask(ctx, task, events)
}

func runTask(ctx context.Context, task *Handle, events chan taskEvent) {
	defer func() {
		if recovered := recover(); recovered != nil {
			task.err = fmt.Errorf("%w: %v", ErrTaskPanicked, recovered)
		}

		close(task.done)
		events <- taskEvent{task: task, finished: true}
	}()

	yield := func() {
		task.yields++
		events <- taskEvent{task: task}
		<-task.resume
	}

	task.err = task.fn(ctx, yield)
}

func (s *Scheduler) skip(ctx context.Context, task *Handle) {
	task.err = fmt.Errorf("%w: %w", ErrNotStarted, ctx.Err())
	close(task.done)

	s.logger.Log(ctx, log.LevelWarn, "task skipped",
		log.String("task", task.name), log.String("task_id", task.id), log.Err(ctx.Err()))
}

func (s *Scheduler) observeFinished(ctx context.Context, task *Handle) {
	if task.err != nil {
		s.logger.Log(ctx, log.LevelError, "task failed",
			log.String("task", task.name), log.String("task_id", task.id), log.Err(task.err))
	} else {
		s.logger.Log(ctx, log.LevelDebug, "task finished",
			log.String("task", task.name), log.String("task_id", task.id), log.Int("yields", task.yields))
	}

	recordTaskFinished(ctx, task)
}

func recordTaskFinished(ctx context.Context, task *Handle) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	span.AddEvent(taskFinishedEvent, trace.WithAttributes(
		attribute.String("task.name", task.name),
		attribute.String("task.id", task.id),
		attribute.Int("task.yields", task.yields),
		attribute.Bool("task.failed", task.err != nil),
	))

	if task.err != nil {
		span.RecordError(task.err)
	}
}
