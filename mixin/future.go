package mixin

import (
	"context"
	"fmt"
)

// Future is the one-shot result of an asynchronous member.
type Future struct {
	done  chan struct{}
	value any
	err   error
}

// Async runs fn on a new goroutine and returns its future. A panic in fn
// resolves the future with an error.
func Async(fn func() (any, error)) *Future {
	f := &Future{done: make(chan struct{})}

	go func() {
		defer close(f.done)
		defer func() {
			if r := recover(); r != nil {
				f.value, f.err = nil, fmt.Errorf("async member panicked: %v", r)
			}
		}()

		f.value, f.err = fn()
	}()

	return f
}

// Resolved returns an already completed future.
func Resolved(value any, err error) *Future {
	f := &Future{done: make(chan struct{}), value: value, err: err}
	close(f.done)

	return f
}

// Done is closed once the future completes.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the future completes.
func (f *Future) Wait() (any, error) {
	<-f.done
	return f.value, f.err
}

// WaitContext blocks until the future completes or ctx is done. Giving up
// does not stop the running steps.
func (f *Future) WaitContext(ctx context.Context) (any, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Await flattens a member result: a *Future is waited for, repeatedly if it
// resolves to another future; any other value passes through.
func Await(value any, err error) (any, error) {
	for err == nil {
		f, ok := value.(*Future)
		if !ok {
			break
		}

		if f == nil {
			return nil, nil
		}

		value, err = f.Wait()
	}

	if err != nil {
		return nil, err
	}

	return value, nil
}
