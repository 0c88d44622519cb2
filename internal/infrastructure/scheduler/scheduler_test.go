package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ctxKey struct{}

func TestScheduler_RunsJobs(t *testing.T) {
	s := New(time.UTC)
	var runs atomic.Int32
	var sawCtx atomic.Bool

	require.NoError(t, s.Add("tick", "@every 1s", func(ctx context.Context) error {
		if ctx.Value(ctxKey{}) == "console" {
			sawCtx.Store(true)
		}
		runs.Add(1)
		return nil
	}))

	s.Start(context.WithValue(context.Background(), ctxKey{}, "console"))
	require.Eventually(t, func() bool { return runs.Load() >= 1 }, 3*time.Second, 50*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))
	assert.True(t, sawCtx.Load())
}

func TestScheduler_InvalidSpec(t *testing.T) {
	s := New(nil)
	err := s.Add("broken", "every minute", func(context.Context) error { return nil })
	assert.ErrorContains(t, err, "schedule broken")
}

func TestScheduler_RunNowSurvivesErrors(t *testing.T) {
	s := New(time.UTC)
	calls := 0
	s.RunNow("once", func(context.Context) error {
		calls++
		return errors.New("notifier down")
	})
	assert.Equal(t, 1, calls)
}

func TestFields(t *testing.T) {
	got := fields([]interface{}{"entry", 3, "next", "soon", "dangling"})
	assert.Equal(t, logrus.Fields{"entry": 3, "next": "soon"}, got)
}
