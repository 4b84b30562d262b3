package memds

import (
	"slices"

	"github.com/inoxlang/trackedseq/internal/trackedseq"
)

// thread unsafe array queue, each mutation bumps the revision of the queue.
type ArrayQueue[T any] struct {
	elements trackedseq.Sequence[T]
}

func NewArrayQueue[T any]() *ArrayQueue[T] {
	return &ArrayQueue[T]{}
}

// Enqueue adds a value to the end of the queue.
func (q *ArrayQueue[T]) Enqueue(value T) {
	q.elements.Push(value)
}

// EnqueueAll adds zero or more values to the end of the queue.
func (q *ArrayQueue[T]) EnqueueAll(values ...T) {
	q.elements.ExtendFromSlice(values)
}

// Dequeue removes first element of the queue and returns it, or the zero value if queue is empty.
// Second return parameter is true, unless the queue was empty and there was nothing to dequeue.
func (q *ArrayQueue[T]) Dequeue() (value T, ok bool) {
	if q.elements.IsEmpty() {
		return
	}
	return q.elements.Remove(0), true
}

// DequeueAll removes all the elements of the queue and returns them.
// The first element of the queue is the first element in the returned slice.
func (q *ArrayQueue[T]) DequeueAll() []T {
	if q.elements.IsEmpty() {
		return nil
	}
	return q.elements.IntoInner()
}

// Peek returns first element of the queue without removing it, or the zero value if queue is empty.
// Second return parameter is true, unless the queue was empty and there was nothing to peek.
func (q *ArrayQueue[T]) Peek() (value T, ok bool) {
	return q.elements.First()
}

// Empty returns true if queue does not contain any elements.
func (q *ArrayQueue[T]) Empty() bool {
	return q.elements.IsEmpty()
}

// Size returns the number of elements within the queue.
func (q *ArrayQueue[T]) Size() int {
	return q.elements.Len()
}

// Clear removes all elements from the queue.
func (q *ArrayQueue[T]) Clear() {
	q.elements.Clear()
}

// RemoveIf removes all elements for which cond returns true, the order of the other elements
// is preserved.
func (q *ArrayQueue[T]) RemoveIf(cond func(v T) bool) {
	q.elements.Retain(func(e T) bool {
		return !cond(e)
	})
}

// Values returns all elements in the queue (FIFO order).
func (q *ArrayQueue[T]) Values() []T {
	if q.elements.IsEmpty() {
		return nil
	}
	return slices.Clone(q.elements.ReadView())
}

// Revision returns the number of mutating calls made on the queue.
func (q *ArrayQueue[T]) Revision() uint64 {
	return q.elements.Revision()
}

// Changed reports whether the queue was mutated since the last call to Changed.
func (q *ArrayQueue[T]) Changed() bool {
	return q.elements.Changed()
}

// thread unsafe array queue iterator
type ArrayQueueIterator[T any] struct {
	index    int
	elements []T
}

func (q *ArrayQueue[T]) Iterator() *ArrayQueueIterator[T] {
	return &ArrayQueueIterator[T]{
		index:    -1,
		elements: q.Values(),
	}
}

func (it *ArrayQueueIterator[T]) Next() bool {
	if it.index >= len(it.elements)-1 {
		return false
	}
	it.index++
	return true
}

func (it *ArrayQueueIterator[T]) Value() T {
	return it.elements[it.index]
}

func (it *ArrayQueueIterator[T]) Index() int {
	return it.index
}
