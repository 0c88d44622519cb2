package outbox

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"construction_console/internal/config"
	"construction_console/internal/usecase/interfaces"
)

var (
	ErrQueueFull   = errors.New("outbox: queue is full")
	ErrQueueClosed = errors.New("outbox: queue is closed")
)

type QueueConfig struct {
	MaxAttempts int
	BaseBackoff time.Duration
	MaxBackoff  time.Duration
	Buffer      int
}

func QueueConfigFrom(cfg *config.Config) QueueConfig {
	return QueueConfig{
		MaxAttempts: cfg.OutboxMaxAttempts,
		BaseBackoff: cfg.OutboxBaseBackoff,
		MaxBackoff:  cfg.OutboxMaxBackoff,
		Buffer:      cfg.OutboxBuffer,
	}
}

// Queue is an in-process FIFO write journal served by a single worker, so writes reach the
// store in the order they were dispatched. A failing write is retried with exponential
// backoff and blocks the writes queued behind it until it succeeds or gives up.
type Queue struct {
	store   interfaces.IRemoteStore
	tracker *Tracker
	cfg     QueueConfig
	log     *logrus.Entry

	mu     sync.RWMutex
	ops    chan interfaces.WriteOp
	closed bool
	done   chan struct{}
	cancel context.CancelFunc

	// wait sleeps for d or until ctx ends; it reports whether the full delay elapsed.
	wait func(ctx context.Context, d time.Duration) bool
}

var _ interfaces.IWriteDispatcher = (*Queue)(nil)

func NewQueue(store interfaces.IRemoteStore, tracker *Tracker, cfg QueueConfig) *Queue {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}
	if cfg.Buffer <= 0 {
		cfg.Buffer = 1024
	}
	if tracker == nil {
		tracker = NewTracker()
	}
	return &Queue{
		store:   store,
		tracker: tracker,
		cfg:     cfg,
		log:     config.Module("outbox"),
		ops:     make(chan interfaces.WriteOp, cfg.Buffer),
		done:    make(chan struct{}),
		wait:    sleepContext,
	}
}

func (q *Queue) Tracker() *Tracker {
	return q.tracker
}

// Start launches the worker. It stops when ctx ends or after Close drains the queue.
func (q *Queue) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	q.cancel = cancel
	go func() {
		defer close(q.done)
		for {
			select {
			case <-ctx.Done():
				q.abandon(ctx.Err())
				return
			case op, ok := <-q.ops:
				if !ok {
					return
				}
				q.process(ctx, op)
			}
		}
	}()
}

// Dispatch queues op without waiting for the store.
func (q *Queue) Dispatch(_ context.Context, op interfaces.WriteOp) error {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		return ErrQueueClosed
	}
	q.tracker.Pending(op)
	select {
	case q.ops <- op:
		return nil
	default:
		q.tracker.Failed(op.Path, 0, ErrQueueFull)
		return ErrQueueFull
	}
}

// Close stops accepting writes and waits for the queued ones to finish. When ctx ends first,
// the remaining writes are abandoned and marked failed.
func (q *Queue) Close(ctx context.Context) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return nil
	}
	q.closed = true
	close(q.ops)
	q.mu.Unlock()

	if q.cancel == nil {
		return nil
	}
	select {
	case <-q.done:
		q.cancel()
		return nil
	case <-ctx.Done():
		q.cancel()
		<-q.done
		return ctx.Err()
	}
}

func (q *Queue) process(ctx context.Context, op interfaces.WriteOp) {
	for attempt := 1; ; attempt++ {
		err := Apply(ctx, q.store, op)
		if err == nil {
			q.tracker.Synced(op.Path, attempt)
			return
		}

		fields := logrus.Fields{"path": op.Path, "kind": op.Kind, "attempt": attempt}
		if attempt >= q.cfg.MaxAttempts {
			q.tracker.Failed(op.Path, attempt, err)
			q.log.WithFields(fields).WithError(err).Error("write failed after max attempts")
			return
		}
		q.tracker.Attempt(op.Path, attempt, err)

		delay := Backoff(attempt, q.cfg.BaseBackoff, q.cfg.MaxBackoff)
		q.log.WithFields(fields).WithError(err).Warnf("write failed, retrying in %s", delay)
		if !q.wait(ctx, delay) {
			q.tracker.Failed(op.Path, attempt, ctx.Err())
			return
		}
	}
}

func (q *Queue) abandon(err error) {
	for {
		select {
		case op, ok := <-q.ops:
			if !ok {
				return
			}
			q.tracker.Failed(op.Path, 0, err)
		default:
			return
		}
	}
}

func sleepContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
