package outbox

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"construction_console/internal/adapter/persistence/store"
	"construction_console/internal/usecase/interfaces"
	mock_interfaces "construction_console/internal/usecase/interfaces/mocks"
)

type fakeEnqueuer struct {
	tasks []*asynq.Task
	opts  [][]asynq.Option
	err   error
}

func (f *fakeEnqueuer) EnqueueContext(_ context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.tasks = append(f.tasks, task)
	f.opts = append(f.opts, opts)
	return &asynq.TaskInfo{ID: "task-1", Queue: QueueWrites}, nil
}

func TestAsynqDispatcher_Dispatch(t *testing.T) {
	enq := &fakeEnqueuer{}
	tracker := NewTracker()
	d := NewAsynqDispatcher(enq, tracker, 10)

	op := interfaces.WriteOp{Kind: interfaces.WriteSet, Path: "users/t/estimates/e1", Value: json.RawMessage(`{"id":"e1"}`)}
	require.NoError(t, d.Dispatch(context.Background(), op))

	require.Len(t, enq.tasks, 1)
	assert.Equal(t, TaskTypeStoreWrite, enq.tasks[0].Type())
	var decoded interfaces.WriteOp
	require.NoError(t, json.Unmarshal(enq.tasks[0].Payload(), &decoded))
	assert.Equal(t, op.Path, decoded.Path)
	assert.JSONEq(t, `{"id":"e1"}`, string(decoded.Value))
	assert.Len(t, enq.opts[0], 2)

	st, _ := tracker.Get(op.Path)
	assert.Equal(t, StatePending, st.State)
}

func TestAsynqDispatcher_EnqueueFailure(t *testing.T) {
	enq := &fakeEnqueuer{err: errors.New("redis down")}
	tracker := NewTracker()
	d := NewAsynqDispatcher(enq, tracker, 3)

	err := d.Dispatch(context.Background(), interfaces.WriteOp{Kind: interfaces.WriteDelete, Path: "users/t/items/a"})
	assert.Error(t, err)
	st, _ := tracker.Get("users/t/items/a")
	assert.Equal(t, StateFailed, st.State)
}

func TestWriteTaskHandler(t *testing.T) {
	t.Run("applies write", func(t *testing.T) {
		s := store.NewMemoryStore()
		tracker := NewTracker()
		op := interfaces.WriteOp{Kind: interfaces.WriteSet, Path: "users/t/items/a", Value: json.RawMessage(`{"id":"a"}`)}
		tracker.Pending(op)
		task, err := NewStoreWriteTask(op)
		require.NoError(t, err)

		require.NoError(t, NewWriteTaskHandler(s, tracker)(context.Background(), task))

		got, err := s.Get(context.Background(), "users/t/items/a")
		require.NoError(t, err)
		assert.JSONEq(t, `{"id":"a"}`, string(got))
		st, _ := tracker.Get(op.Path)
		assert.Equal(t, StateSynced, st.State)
	})

	t.Run("malformed payload skips retry", func(t *testing.T) {
		err := NewWriteTaskHandler(store.NewMemoryStore(), NewTracker())(context.Background(), asynq.NewTask(TaskTypeStoreWrite, []byte("{")))
		assert.ErrorIs(t, err, asynq.SkipRetry)
	})

	t.Run("store failure is returned for retry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		s := mock_interfaces.NewMockIRemoteStore(ctrl)
		s.EXPECT().Delete(gomock.Any(), "users/t/items/a").Return(errors.New("unavailable"))

		tracker := NewTracker()
		op := interfaces.WriteOp{Kind: interfaces.WriteDelete, Path: "users/t/items/a"}
		tracker.Pending(op)
		task, err := NewStoreWriteTask(op)
		require.NoError(t, err)

		err = NewWriteTaskHandler(s, tracker)(context.Background(), task)
		assert.Error(t, err)

		// Without retry metadata the task counts as its own last attempt.
		st, _ := tracker.Get(op.Path)
		assert.Equal(t, StateFailed, st.State)
		assert.Equal(t, "unavailable", st.LastError)
	})
}
