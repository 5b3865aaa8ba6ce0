// Package future provides the deferred-result primitive the container
// observes: an already-initiated asynchronous operation that settles exactly
// once with either a value or an error. The container never starts the
// underlying work itself; callers hand it a settled-or-settling Future.
package future

import (
	"context"
	"sync"
)

type Future[T any] struct {
	done chan struct{}
	once sync.Once

	value T
	err   error
}

// New returns an unsettled future. The caller settles it through Complete or
// Fail; only the first settlement takes effect.
func New[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// Go launches fn in its own goroutine and returns the future it settles.
func Go[T any](fn func() (T, error)) *Future[T] {
	fut := New[T]()
	go func() {
		fut.settle(fn())
	}()
	return fut
}

// Resolved returns a future already settled with value.
func Resolved[T any](value T) *Future[T] {
	fut := New[T]()
	fut.Complete(value)
	return fut
}

// Rejected returns a future already settled with err.
func Rejected[T any](err error) *Future[T] {
	fut := New[T]()
	fut.Fail(err)
	return fut
}

func (f *Future[T]) Complete(value T) {
	f.settle(value, nil)
}

func (f *Future[T]) Fail(err error) {
	var zero T
	f.settle(zero, err)
}

func (f *Future[T]) settle(value T, err error) {
	f.once.Do(func() {
		f.value = value
		f.err = err
		close(f.done)
	})
}

// Done is closed once the future has settled.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

func (f *Future[T]) Settled() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Await blocks until the future settles or ctx is cancelled. Cancellation
// abandons the wait, not the operation: the future still settles on its own
// and its result remains observable.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Result returns the settlement outcome. It must only be called after Done is
// closed.
func (f *Future[T]) Result() (T, error) {
	return f.value, f.err
}
