package trackedseq

import (
	"iter"
	"slices"
	"unsafe"
)

// Read-only operations, none of them bumps the revision.

// Len returns the number of elements.
func (s *Sequence[T]) Len() int {
	return len(s.inner)
}

// IsEmpty returns true if the sequence does not contain any elements.
func (s *Sequence[T]) IsEmpty() bool {
	return len(s.inner) == 0
}

// At returns the element at index i, it panics if i is out of range.
func (s *Sequence[T]) At(i int) T {
	return s.inner[i]
}

// Get returns the element at index i, ok is false if i is out of range.
func (s *Sequence[T]) Get(i int) (value T, ok bool) {
	if i < 0 || i >= len(s.inner) {
		return
	}
	return s.inner[i], true
}

// First returns the first element, ok is false if the sequence is empty.
func (s *Sequence[T]) First() (value T, ok bool) {
	return s.Get(0)
}

// Last returns the last element, ok is false if the sequence is empty.
func (s *Sequence[T]) Last() (value T, ok bool) {
	return s.Get(len(s.inner) - 1)
}

// Data returns a pointer to the first element of the underlying array, the caller should not
// write through it.
func (s *Sequence[T]) Data() *T {
	return unsafe.SliceData(s.inner)
}

// All returns an iterator over the indexes and elements, in order.
func (s *Sequence[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, e := range s.inner {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements, in order.
func (s *Sequence[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, e := range s.inner {
			if !yield(e) {
				return
			}
		}
	}
}

// Backward returns an iterator over the indexes and elements, from the last element to the
// first one.
func (s *Sequence[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		elements := s.inner
		for i := len(elements) - 1; i >= 0; i-- {
			if !yield(i, elements[i]) {
				return
			}
		}
	}
}

// IndexFunc returns the index of the first element satisfying pred, or -1.
func (s *Sequence[T]) IndexFunc(pred func(e T) bool) int {
	return slices.IndexFunc(s.inner, pred)
}

// Index returns the index of the first occurrence of v, or -1.
func Index[T comparable](s *Sequence[T], v T) int {
	return slices.Index(s.inner, v)
}

// Contains reports whether v is present in the sequence.
func Contains[T comparable](s *Sequence[T], v T) bool {
	return slices.Contains(s.inner, v)
}
