package client

import (
	"context"
	"errors"
	"sync"
)

// ErrUnsubscribed is returned by Next after Unsubscribe.
var ErrUnsubscribed = errors.New("stream unsubscribed")

// Result carries one delivery of a live query: a value or an error,
// never both.
type Result[T any] struct {
	Value T
	Err   error
}

// Stream is a live query handle. The initial result is delivered
// first; later results arrive whenever a mutation invalidates the
// underlying query. Delivery keeps only the latest result: a slow
// consumer sees the freshest value, not every intermediate one.
type Stream[T any] struct {
	mu          sync.Mutex
	ch          chan Result[T]
	done        chan struct{}
	unsubscribe func()
	closed      bool
}

func newStream[T any]() *Stream[T] {
	return &Stream[T]{
		ch:   make(chan Result[T], 1),
		done: make(chan struct{}),
	}
}

// push delivers a result, replacing any undelivered previous one.
func (s *Stream[T]) push(result Result[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	select {
	case <-s.ch:
	default:
	}
	s.ch <- result
}

// C exposes the delivery channel for select loops.
func (s *Stream[T]) C() <-chan Result[T] {
	return s.ch
}

// Next blocks for the next result.
func (s *Stream[T]) Next(ctx context.Context) (T, error) {
	var zero T
	select {
	case result := <-s.ch:
		return result.Value, result.Err
	case <-s.done:
		return zero, ErrUnsubscribed
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// Unsubscribe stops further delivery and detaches the stream from
// invalidation. It does not cancel in-flight server work.
func (s *Stream[T]) Unsubscribe() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	close(s.done)
	unsubscribe := s.unsubscribe
	s.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}
