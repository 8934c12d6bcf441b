package exec

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/eapache/queue"
	"github.com/google/uuid"
	"github.com/ib-77/arop/pkg/arop"
)

const minBackoff = time.Nanosecond

// Executor drives deferred computations cooperatively on the goroutine that
// calls Run or Drain. It owns a FIFO of spawned fire-and-forget computations
// and services them between polls of the primary one.
//
// Spawn may be called from any goroutine, including from computations being
// serviced. Run and Drain must not be called concurrently with each other.
type Executor struct {
	id         uuid.UUID
	logger     *slog.Logger
	maxBackoff time.Duration

	mu    sync.Mutex
	tasks *queue.Queue // arop.Pollable items
	wake  chan struct{}
}

func New(opts ...Option) *Executor {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Executor{
		id:         uuid.New(),
		logger:     cfg.logger,
		maxBackoff: cfg.maxBackoff,
		tasks:      queue.New(),
		wake:       make(chan struct{}, 1),
	}
}

func (e *Executor) Id() uuid.UUID {
	return e.id
}

// Spawn queues a computation to be driven to completion in the background
// of Run or Drain. Its outcome is not reported anywhere; observe it through
// its own side effects, or keep polling the deferred yourself.
func (e *Executor) Spawn(p arop.Pollable) error {
	if p == nil {
		return ErrNilComputation
	}

	e.mu.Lock()
	e.tasks.Add(p)
	pending := e.tasks.Length()
	e.mu.Unlock()

	e.logger.Debug("computation spawned",
		slog.String("executor_id", e.id.String()),
		slog.String("kind", p.Kind()),
		slog.Int("pending", pending))

	select {
	case e.wake <- struct{}{}:
	default:
	}
	return nil
}

// Pending returns the number of spawned computations not yet resolved.
func (e *Executor) Pending() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.tasks.Length()
}

// service polls every queued computation once, requeueing the still pending
// ones, and reports how many resolved this round. Steps run outside the
// lock, so serviced computations are free to Spawn more work.
func (e *Executor) service() int {
	e.mu.Lock()
	n := e.tasks.Length()
	batch := make([]arop.Pollable, 0, n)
	for i := 0; i < n; i++ {
		batch = append(batch, e.tasks.Remove().(arop.Pollable))
	}
	e.mu.Unlock()

	resolved := 0
	var pending []arop.Pollable
	for _, p := range batch {
		if p.Step() {
			resolved++
			e.logger.Debug("computation resolved",
				slog.String("executor_id", e.id.String()),
				slog.String("kind", p.Kind()))
		} else {
			pending = append(pending, p)
		}
	}

	if len(pending) > 0 {
		e.mu.Lock()
		for _, p := range pending {
			e.tasks.Add(p)
		}
		e.mu.Unlock()
	}
	return resolved
}

// Run drives primary to completion on the calling goroutine, servicing
// spawned computations between polls. It returns the primary's outcome even
// if spawned work is still pending (use Drain to flush it), or a
// cancellation carrying ctx.Err() when ctx ends first.
func Run[T any](ctx context.Context, e *Executor, primary *arop.Deferred[T]) arop.Result[T] {
	if primary == nil {
		return arop.Fail[T](ErrNilComputation)
	}

	logger := e.logger.With(
		slog.String("executor_id", e.id.String()),
		slog.String("kind", primary.Kind()))
	logger.Debug("run started")

	backoff := minBackoff
	timer := time.NewTimer(backoff)
	defer timer.Stop()

	for {
		if err := ctx.Err(); err != nil {
			logger.Debug("run cancelled", slog.String("cause", err.Error()))
			return arop.Cancel[T](err)
		}

		res, done := primary.Poll()
		resolved := e.service()

		if done {
			logger.Debug("run finished",
				slog.Bool("success", res.IsSuccess()),
				slog.Int("pending", e.Pending()))
			return res
		}

		if resolved > 0 {
			backoff = minBackoff
			continue
		}

		select {
		case <-ctx.Done():
			logger.Debug("run cancelled", slog.String("cause", ctx.Err().Error()))
			return arop.Cancel[T](ctx.Err())
		case <-e.wake:
			backoff = minBackoff
		case <-timer.C:
			if backoff < e.maxBackoff {
				backoff *= 2
				if backoff > e.maxBackoff {
					backoff = e.maxBackoff
				}
			}
		}
		timer.Reset(backoff)
	}
}

// Drain services spawned computations until none remain, or until ctx ends,
// in which case it returns ctx.Err().
func (e *Executor) Drain(ctx context.Context) error {
	backoff := minBackoff
	timer := time.NewTimer(backoff)
	defer timer.Stop()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if e.Pending() == 0 {
			return nil
		}

		if e.service() > 0 {
			backoff = minBackoff
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-e.wake:
			backoff = minBackoff
		case <-timer.C:
			if backoff < e.maxBackoff {
				backoff *= 2
				if backoff > e.maxBackoff {
					backoff = e.maxBackoff
				}
			}
		}
		timer.Reset(backoff)
	}
}
