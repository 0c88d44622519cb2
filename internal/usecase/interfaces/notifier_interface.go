package interfaces

import "context"

// INotifier delivers a reminder to the operator.
type INotifier interface {
	Notify(ctx context.Context, title, body string) error
}
