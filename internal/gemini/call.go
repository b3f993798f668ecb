package gemini

import (
	"context"
	"time"
)

// callWithDeadline races fn against the capability deadline. When the
// deadline fires first the caller gets a timeout failure and the late
// upstream completion is discarded; the buffered channel keeps the goroutine
// from leaking while it settles.
func callWithDeadline[T any](ctx context.Context, d time.Duration, fn func(context.Context) (T, error)) (T, error) {
	var zero T

	ctx, cancel := context.WithTimeout(ctx, d)
	defer cancel()

	type settled struct {
		val T
		err error
	}
	done := make(chan settled, 1)

	go func() {
		v, err := fn(ctx)
		done <- settled{val: v, err: err}
	}()

	select {
	case <-ctx.Done():
		return zero, classify(ctx.Err())
	case s := <-done:
		if s.err != nil {
			return zero, classify(s.err)
		}
		return s.val, nil
	}
}
