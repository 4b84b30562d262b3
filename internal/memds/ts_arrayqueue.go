package memds

import (
	"sync"
)

// Thread safe array queue
type TSArrayQueue[T any] struct {
	queue ArrayQueue[T]
	lock  sync.RWMutex

	autoRemoveCondition func(v T) bool
	hasHadElements      bool
}

func NewTSArrayQueue[T any]() *TSArrayQueue[T] {
	return &TSArrayQueue[T]{}
}

func NewTSArrayQueueWithConfig[T any](config TSArrayQueueConfig[T]) *TSArrayQueue[T] {
	q := &TSArrayQueue[T]{}
	q.autoRemoveCondition = config.AutoRemoveCondition

	return q
}

type TSArrayQueueConfig[T any] struct {
	AutoRemoveCondition func(v T) bool
}

// Enqueue adds a value to the end of the queue
func (q *TSArrayQueue[T]) Enqueue(value T) {
	q.lock.Lock()
	defer q.lock.Unlock()

	q.queue.Enqueue(value)
	q.hasHadElements = true
}

// EnqueueAll adds zero or more values to the end of the queue
func (q *TSArrayQueue[T]) EnqueueAll(values ...T) {
	q.lock.Lock()
	defer q.lock.Unlock()

	q.queue.EnqueueAll(values...)
	if len(values) > 0 {
		q.hasHadElements = true
	}
}

// Dequeue removes first element of the queue and returns it, or the zero value if queue is empty.
// Second return parameter is true, unless the queue was empty and there was nothing to dequeue.
func (q *TSArrayQueue[T]) Dequeue() (value T, ok bool) {
	q.lock.Lock()
	defer q.lock.Unlock()

	return q.queue.Dequeue()
}

// DequeueAll removes all the elements of the queue and returns them.
// The first element of the queue is the first element in the returned slice.
func (q *TSArrayQueue[T]) DequeueAll() []T {
	q.lock.Lock()
	defer q.lock.Unlock()

	return q.queue.DequeueAll()
}

// Peek returns first element of the queue without removing it, or the zero value if queue is empty.
// Second return parameter is true, unless the queue was empty and there was nothing to peek.
func (q *TSArrayQueue[T]) Peek() (value T, ok bool) {
	q.lock.RLock()
	defer q.lock.RUnlock()

	return q.queue.Peek()
}

// IsEmpty returns true if queue does not contain any elements.
func (q *TSArrayQueue[T]) IsEmpty() bool {
	q.lock.RLock()
	defer q.lock.RUnlock()

	return q.queue.Empty()
}

// HasNeverHadElements returns true if no element was ever added to the queue.
func (q *TSArrayQueue[T]) HasNeverHadElements() bool {
	q.lock.RLock()
	defer q.lock.RUnlock()

	return !q.hasHadElements
}

// Size returns the number of elements within the queue.
func (q *TSArrayQueue[T]) Size() int {
	q.lock.RLock()
	defer q.lock.RUnlock()

	return q.queue.Size()
}

// Clear removes all elements from the queue.
func (q *TSArrayQueue[T]) Clear() {
	q.lock.Lock()
	defer q.lock.Unlock()

	q.queue.Clear()
}

// AutoRemove removes all elements that validate the autoremove condition.
// If there is not autoremove condition the function does nothing.
func (q *TSArrayQueue[T]) AutoRemove() {
	if q.autoRemoveCondition == nil {
		return
	}

	q.lock.Lock()
	defer q.lock.Unlock()

	q.queue.RemoveIf(q.autoRemoveCondition)
}

// Values returns all elements in the queue (FIFO order).
func (q *TSArrayQueue[T]) Values() []T {
	q.lock.RLock()
	defer q.lock.RUnlock()

	return q.queue.Values()
}

// Revision returns the number of mutating calls made on the queue, it does not lock the queue.
func (q *TSArrayQueue[T]) Revision() uint64 {
	return q.queue.Revision()
}

func (q *TSArrayQueue[T]) Iterator() *ArrayQueueIterator[T] {
	q.lock.RLock()
	defer q.lock.RUnlock()

	return q.queue.Iterator()
}
