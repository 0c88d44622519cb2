package outbox

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/sirupsen/logrus"

	"construction_console/internal/config"
	"construction_console/internal/usecase/interfaces"
)

const (
	// QueueWrites is the asynq queue that carries store writes.
	QueueWrites = "writes"
	// TaskTypeStoreWrite is the task type of a queued store write.
	TaskTypeStoreWrite = "store:write"
)

// TaskEnqueuer is implemented by *asynq.Client.
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// NewStoreWriteTask wraps op in an asynq task.
func NewStoreWriteTask(op interfaces.WriteOp) (*asynq.Task, error) {
	data, err := json.Marshal(op)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskTypeStoreWrite, data), nil
}

// AsynqDispatcher journals writes in Redis so they survive a restart of the service.
type AsynqDispatcher struct {
	client      TaskEnqueuer
	tracker     *Tracker
	maxAttempts int
}

var _ interfaces.IWriteDispatcher = (*AsynqDispatcher)(nil)

func NewAsynqDispatcher(client TaskEnqueuer, tracker *Tracker, maxAttempts int) *AsynqDispatcher {
	if maxAttempts <= 0 {
		maxAttempts = 1
	}
	if tracker == nil {
		tracker = NewTracker()
	}
	return &AsynqDispatcher{client: client, tracker: tracker, maxAttempts: maxAttempts}
}

func (d *AsynqDispatcher) Dispatch(ctx context.Context, op interfaces.WriteOp) error {
	task, err := NewStoreWriteTask(op)
	if err != nil {
		return err
	}
	d.tracker.Pending(op)
	if _, err := d.client.EnqueueContext(ctx, task, asynq.Queue(QueueWrites), asynq.MaxRetry(d.maxAttempts-1)); err != nil {
		d.tracker.Failed(op.Path, 0, err)
		return fmt.Errorf("outbox: enqueue %s: %w", op.Path, err)
	}
	return nil
}

// NewWriteTaskHandler applies queued writes to store and reports their outcome to tracker.
func NewWriteTaskHandler(store interfaces.IRemoteStore, tracker *Tracker) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var op interfaces.WriteOp
		if err := json.Unmarshal(t.Payload(), &op); err != nil {
			return fmt.Errorf("outbox: decode write: %v: %w", err, asynq.SkipRetry)
		}

		retried, _ := asynq.GetRetryCount(ctx)
		maxRetry, _ := asynq.GetMaxRetry(ctx)
		attempt := retried + 1

		if err := Apply(ctx, store, op); err != nil {
			if retried >= maxRetry {
				tracker.Failed(op.Path, attempt, err)
			} else {
				tracker.Attempt(op.Path, attempt, err)
			}
			return err
		}
		tracker.Synced(op.Path, attempt)
		return nil
	}
}

// Worker serves the write queue. Concurrency is one so writes keep their enqueue order
// unless a retry reorders them.
type Worker struct {
	server *asynq.Server
	mux    *asynq.ServeMux
	log    *logrus.Entry
}

type WorkerConfig struct {
	RedisOpts   asynq.RedisConnOpt
	Store       interfaces.IRemoteStore
	Tracker     *Tracker
	BaseBackoff time.Duration
	MaxBackoff  time.Duration
}

func NewWorker(cfg WorkerConfig) *Worker {
	log := config.Module("outbox.asynq")
	srv := asynq.NewServer(cfg.RedisOpts, asynq.Config{
		Concurrency: 1,
		Queues: map[string]int{
			QueueWrites: 1,
		},
		RetryDelayFunc: func(n int, _ error, _ *asynq.Task) time.Duration {
			return Backoff(n+1, cfg.BaseBackoff, cfg.MaxBackoff)
		},
		ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
			retried, _ := asynq.GetRetryCount(ctx)
			maxRetry, _ := asynq.GetMaxRetry(ctx)
			log.WithFields(logrus.Fields{
				"type":    task.Type(),
				"retried": retried,
				"max":     maxRetry,
			}).WithError(err).Warn("store write task failed")
		}),
		Logger: log,
	})
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskTypeStoreWrite, NewWriteTaskHandler(cfg.Store, cfg.Tracker))
	return &Worker{server: srv, mux: mux, log: log}
}

// Run processes writes until ctx ends.
func (w *Worker) Run(ctx context.Context) error {
	if w == nil {
		return errors.New("outbox: worker not configured")
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- w.server.Run(w.mux)
	}()
	select {
	case <-ctx.Done():
		w.server.Shutdown()
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}
