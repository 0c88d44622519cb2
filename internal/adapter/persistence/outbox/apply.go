package outbox

import (
	"context"
	"fmt"
	"time"

	"construction_console/internal/usecase/interfaces"
)

// Apply performs op against the store.
func Apply(ctx context.Context, store interfaces.IRemoteStore, op interfaces.WriteOp) error {
	switch op.Kind {
	case interfaces.WriteSet:
		return store.Write(ctx, op.Path, op.Value)
	case interfaces.WritePatch:
		return store.Patch(ctx, op.Path, op.Value)
	case interfaces.WriteDelete:
		return store.Delete(ctx, op.Path)
	default:
		return fmt.Errorf("outbox: unknown write kind %q", op.Kind)
	}
}

// Backoff returns base*2^(attempt-1), capped at max.
func Backoff(attempt int, base, max time.Duration) time.Duration {
	if base <= 0 {
		return 0
	}
	d := base
	for i := 1; i < attempt; i++ {
		d *= 2
		if max > 0 && d >= max {
			return max
		}
	}
	if max > 0 && d > max {
		return max
	}
	return d
}
