package datastructs

import "errors"

// Queue is a bounded FIFO backed by a channel, safe for concurrent use.
type Queue[T any] struct {
	data chan T
}

func NewQueue[T any](size int) *Queue[T] {
	return &Queue[T]{data: make(chan T, size)}
}

// Enqueue appends value, failing when the queue is full.
func (q *Queue[T]) Enqueue(value T) error {
	select {
	case q.data <- value:
		return nil
	default:
		return errors.New("queue is full")
	}
}

// Dequeue removes the oldest value, failing when the queue is empty.
func (q *Queue[T]) Dequeue() (T, error) {
	var res T
	select {
	case res = <-q.data:
		return res, nil
	default:
		return res, errors.New("empty queue")
	}
}

// DequeueWait removes the oldest value, blocking until one is available.
func (q *Queue[T]) DequeueWait() T {
	return <-q.data
}
