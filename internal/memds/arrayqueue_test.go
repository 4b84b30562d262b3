package memds

import (
	"sync"
	"testing"

	"github.com/inoxlang/trackedseq/internal/revision"
	"github.com/stretchr/testify/assert"
)

var (
	_ revision.Source = (*ArrayQueue[int])(nil)
	_ revision.Source = (*TSArrayQueue[int])(nil)
)

func TestArrayQueue(t *testing.T) {
	t.Parallel()

	q := NewArrayQueue[int]()
	assert.Zero(t, q.Size())
	assert.True(t, q.Empty())
	assert.Empty(t, q.Values())
	assert.Zero(t, q.Revision())

	q.Enqueue(3)
	assert.NotZero(t, q.Size())
	assert.False(t, q.Empty())
	assert.Equal(t, []int{3}, q.Values())
	assert.EqualValues(t, 1, q.Revision())

	elem, ok := q.Peek()
	if !assert.True(t, ok) {
		return
	}
	assert.Equal(t, 3, elem)
	assert.EqualValues(t, 1, q.Revision())

	elem, ok = q.Dequeue()
	if !assert.True(t, ok) {
		return
	}
	assert.Equal(t, 3, elem)
	assert.Zero(t, q.Size())
	assert.True(t, q.Empty())
	assert.Empty(t, q.Values())
	assert.EqualValues(t, 2, q.Revision())

	_, ok = q.Dequeue()
	assert.False(t, ok)
	assert.EqualValues(t, 2, q.Revision())
}

func TestArrayQueueDequeueAll(t *testing.T) {
	t.Parallel()

	q := NewArrayQueue[int]()
	assert.Nil(t, q.DequeueAll())

	q.EnqueueAll(1, 2, 3)
	assert.Equal(t, []int{1, 2, 3}, q.DequeueAll())
	assert.True(t, q.Empty())

	q.Enqueue(4)
	assert.Equal(t, []int{4}, q.Values())
}

func TestArrayQueueClear(t *testing.T) {
	t.Parallel()

	q := NewArrayQueue[int]()
	q.EnqueueAll(1, 2)
	assert.True(t, q.Changed())

	q.Clear()
	assert.True(t, q.Empty())
	assert.True(t, q.Changed())
	assert.False(t, q.Changed())
}

func TestArrayQueueRemoveIf(t *testing.T) {
	t.Parallel()

	q := NewArrayQueue[int]()
	q.EnqueueAll(1, 2, 3, 4)
	q.RemoveIf(func(v int) bool { return v%2 == 0 })

	assert.Equal(t, []int{1, 3}, q.Values())
}

func TestArrayQueueIterator(t *testing.T) {
	t.Parallel()

	t.Run("empty", func(t *testing.T) {
		q := NewArrayQueue[int]()
		it := q.Iterator()

		assert.False(t, it.Next())
		assert.False(t, it.Next())
	})
	t.Run("single element", func(t *testing.T) {
		q := NewArrayQueue[int]()
		q.Enqueue(1)
		it := q.Iterator()

		assert.True(t, it.Next())
		assert.Equal(t, 1, it.Value())
		assert.Equal(t, 0, it.Index())
		assert.False(t, it.Next())
	})

	t.Run("two elements", func(t *testing.T) {
		q := NewArrayQueue[int]()
		q.Enqueue(1)
		q.Enqueue(2)
		it := q.Iterator()

		assert.True(t, it.Next())
		assert.Equal(t, 1, it.Value())
		assert.Equal(t, 0, it.Index())

		assert.True(t, it.Next())
		assert.Equal(t, 2, it.Value())
		assert.Equal(t, 1, it.Index())

		assert.False(t, it.Next())
	})

	t.Run("mutations after creation are not visible", func(t *testing.T) {
		q := NewArrayQueue[int]()
		q.Enqueue(1)
		it := q.Iterator()
		q.Enqueue(2)

		assert.True(t, it.Next())
		assert.False(t, it.Next())
	})
}

func TestTSArrayQueue(t *testing.T) {
	t.Parallel()

	t.Run("base case", func(t *testing.T) {
		q := NewTSArrayQueue[int]()
		assert.True(t, q.HasNeverHadElements())
		assert.True(t, q.IsEmpty())

		q.EnqueueAll()
		assert.True(t, q.HasNeverHadElements())

		q.Enqueue(1)
		q.EnqueueAll(2, 3)
		assert.False(t, q.HasNeverHadElements())
		assert.Equal(t, 3, q.Size())

		elem, ok := q.Peek()
		assert.True(t, ok)
		assert.Equal(t, 1, elem)

		elem, ok = q.Dequeue()
		assert.True(t, ok)
		assert.Equal(t, 1, elem)

		assert.Equal(t, []int{2, 3}, q.DequeueAll())
		assert.True(t, q.IsEmpty())
		assert.False(t, q.HasNeverHadElements())
	})

	t.Run("auto remove", func(t *testing.T) {
		q := NewTSArrayQueueWithConfig(TSArrayQueueConfig[int]{
			AutoRemoveCondition: func(v int) bool {
				return v < 0
			},
		})

		q.EnqueueAll(-1, 1, -2, 2)
		q.AutoRemove()

		assert.Equal(t, []int{1, 2}, q.Values())
	})

	t.Run("auto remove without condition", func(t *testing.T) {
		q := NewTSArrayQueue[int]()
		q.EnqueueAll(-1, 1)

		rev := q.Revision()
		q.AutoRemove()

		assert.Equal(t, []int{-1, 1}, q.Values())
		assert.Equal(t, rev, q.Revision())
	})

	t.Run("concurrent enqueues", func(t *testing.T) {
		const goroutines = 10
		const enqueuesPerGoroutine = 100

		q := NewTSArrayQueue[int]()

		var wg sync.WaitGroup
		wg.Add(goroutines)
		for i := 0; i < goroutines; i++ {
			go func() {
				defer wg.Done()
				for j := 0; j < enqueuesPerGoroutine; j++ {
					q.Enqueue(j)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, goroutines*enqueuesPerGoroutine, q.Size())
		assert.EqualValues(t, goroutines*enqueuesPerGoroutine, q.Revision())
	})
}
