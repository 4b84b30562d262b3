package trackedseq

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"unsafe"

	"golang.org/x/exp/constraints"
)

var (
	ErrSelfAppend = errors.New("cannot append a sequence to itself")
)

// Every method in this file calls MutableView exactly once.

// Push appends an element.
func (s *Sequence[T]) Push(value T) {
	inner := s.MutableView()
	*inner = append(*inner, value)
}

// Pop removes the last element and returns it, ok is false if the sequence is empty.
// The revision is bumped even if the sequence is empty.
func (s *Sequence[T]) Pop() (value T, ok bool) {
	inner := s.MutableView()
	n := len(*inner)
	if n == 0 {
		return
	}

	value = (*inner)[n-1]
	clear((*inner)[n-1:])
	*inner = (*inner)[:n-1]
	return value, true
}

// Insert inserts value at index i, shifting the elements after it to the right.
// It panics if i is not in [0, length].
func (s *Sequence[T]) Insert(i int, value T) {
	inner := s.MutableView()
	if i < 0 || i > len(*inner) {
		panic(fmt.Errorf("%w: index %d, length %d", ErrInsertionIndexOutOfRange, i, len(*inner)))
	}
	*inner = slices.Insert(*inner, i, value)
}

// Remove removes and returns the element at index i, shifting the elements after it to the
// left. Order is preserved, the operation is O(length - i).
func (s *Sequence[T]) Remove(i int) T {
	inner := s.MutableView()
	checkIndex(i, len(*inner))

	value := (*inner)[i]
	*inner = slices.Delete(*inner, i, i+1)
	return value
}

// SwapRemove removes and returns the element at index i, the last element takes its place.
// Order is not preserved, the operation is O(1).
func (s *Sequence[T]) SwapRemove(i int) T {
	inner := s.MutableView()
	checkIndex(i, len(*inner))

	elements := *inner
	last := len(elements) - 1

	value := elements[i]
	elements[i] = elements[last]
	clear(elements[last:])
	*inner = elements[:last]
	return value
}

// Truncate keeps the first n elements and drops the rest, it has no effect on the capacity
// and does nothing (but bumping the revision) if n >= length.
func (s *Sequence[T]) Truncate(n int) {
	inner := s.MutableView()
	if n < 0 {
		panic(fmt.Errorf("%w: cannot truncate to a negative length (%d)", ErrIndexOutOfRange, n))
	}
	if n >= len(*inner) {
		return
	}
	clear((*inner)[n:])
	*inner = (*inner)[:n]
}

// Clear removes all elements, it has no effect on the capacity.
func (s *Sequence[T]) Clear() {
	inner := s.MutableView()
	clear(*inner)
	*inner = (*inner)[:0]
}

// Retain only keeps the elements for which keep returns true, preserving their order.
// keep is called exactly once per element, in order. If keep panics the element being visited
// and the following ones are kept.
func (s *Sequence[T]) Retain(keep func(e T) bool) {
	inner := s.MutableView()
	elements := *inner

	compact(inner, 0, func(i, _ int) bool {
		return keep(elements[i])
	})
}

// RetainMut is the same as Retain but keep can modify the elements.
func (s *Sequence[T]) RetainMut(keep func(e *T) bool) {
	inner := s.MutableView()
	elements := *inner

	compact(inner, 0, func(i, _ int) bool {
		return keep(&elements[i])
	})
}

// DedupFunc removes consecutive elements that belong to the same bucket, only the first element
// of each run is kept. same is passed the candidate element first and the last kept element
// second; it may modify both. If same panics no element is lost or duplicated.
func (s *Sequence[T]) DedupFunc(same func(a, b *T) bool) {
	inner := s.MutableView()
	elements := *inner
	if len(elements) < 2 {
		return
	}

	compact(inner, 1, func(i, kept int) bool {
		return !same(&elements[i], &elements[kept-1])
	})
}

// compact moves the elements in [from, len) for which keep returns true right after the kept
// ones and truncates the slice. If keep panics the unvisited elements (the current one
// included) are moved after the kept ones before the panic propagates.
func compact[T any](inner *[]T, from int, keep func(i, kept int) bool) {
	elements := *inner
	kept := from
	i := from

	defer func() {
		if i < len(elements) {
			kept += copy(elements[kept:], elements[i:])
		}
		clear(elements[kept:])
		*inner = elements[:kept]
	}()

	for ; i < len(elements); i++ {
		if !keep(i, kept) {
			continue
		}
		if kept != i {
			elements[kept] = elements[i]
		}
		kept++
	}
}

// Dedup removes consecutive equal elements.
func Dedup[T comparable](s *Sequence[T]) {
	s.DedupFunc(func(a, b *T) bool {
		return *a == *b
	})
}

// DedupByKey removes consecutive elements that resolve to the same key.
func DedupByKey[T any, K comparable](s *Sequence[T], key func(e *T) K) {
	s.DedupFunc(func(a, b *T) bool {
		return key(a) == key(b)
	})
}

// Resize changes the length to newLen: extra elements are dropped, missing ones are copies of
// value.
func (s *Sequence[T]) Resize(newLen int, value T) {
	s.resizeWith(newLen, func() T { return value })
}

// ResizeWith is the same as Resize but missing elements are produced by calling generate, once
// per element, in order.
func (s *Sequence[T]) ResizeWith(newLen int, generate func() T) {
	s.resizeWith(newLen, generate)
}

func (s *Sequence[T]) resizeWith(newLen int, generate func() T) {
	inner := s.MutableView()
	if newLen < 0 {
		panic(fmt.Errorf("%w: cannot resize to a negative length (%d)", ErrIndexOutOfRange, newLen))
	}

	length := len(*inner)
	if newLen <= length {
		clear((*inner)[newLen:])
		*inner = (*inner)[:newLen]
		return
	}

	*inner = slices.Grow(*inner, newLen-length)
	for i := length; i < newLen; i++ {
		*inner = append(*inner, generate())
	}
}

// Append moves all the elements of other to the end of s, leaving other empty (its capacity is
// kept). The revisions of both sequences are bumped once, even if other is empty.
func (s *Sequence[T]) Append(other *Sequence[T]) {
	if other == s {
		panic(ErrSelfAppend)
	}

	dst := s.MutableView()
	src := other.MutableView()

	*dst = append(*dst, *src...)
	clear(*src)
	*src = (*src)[:0]
}

// Extend appends the values yielded by seq. If seq iterates over s itself, the elements
// present when the iteration started are appended.
func (s *Sequence[T]) Extend(seq iter.Seq[T]) {
	inner := s.MutableView()
	for v := range seq {
		*inner = append(*inner, v)
	}
}

// ExtendFromSlice appends a copy of elements.
func (s *Sequence[T]) ExtendFromSlice(elements []T) {
	inner := s.MutableView()
	*inner = append(*inner, elements...)
}

// ExtendFromWithin appends a copy of the elements in [start, end).
func (s *Sequence[T]) ExtendFromWithin(start, end int) {
	inner := s.MutableView()
	checkRange(start, end, len(*inner))

	*inner = append(*inner, (*inner)[start:end]...)
}

// Splice replaces the elements in [start, end) with replacement and returns the removed
// elements.
func (s *Sequence[T]) Splice(start, end int, replacement ...T) (removed []T) {
	inner := s.MutableView()
	checkRange(start, end, len(*inner))

	removed = slices.Clone((*inner)[start:end])
	*inner = slices.Replace(*inner, start, end, replacement...)
	return removed
}

// Drain removes the elements in [start, end) and returns an iterator over them. The elements
// are removed when Drain is called, whether or not the iterator is consumed.
func (s *Sequence[T]) Drain(start, end int) iter.Seq[T] {
	inner := s.MutableView()
	checkRange(start, end, len(*inner))

	removed := slices.Clone((*inner)[start:end])
	*inner = slices.Delete(*inner, start, end)
	return slices.Values(removed)
}

// Set sets the element at index i.
func (s *Sequence[T]) Set(i int, value T) {
	inner := s.MutableView()
	(*inner)[i] = value
}

// Ptr returns a pointer to the element at index i. Writes through the pointer after the next
// call to a method of the sequence are not tracked.
func (s *Sequence[T]) Ptr(i int) *T {
	inner := s.MutableView()
	return &(*inner)[i]
}

// AsMutSlice returns the underlying slice for in-place modification. Writes made after the next
// call to a method of the sequence are not tracked.
func (s *Sequence[T]) AsMutSlice() []T {
	return *s.MutableView()
}

// MutData returns a pointer to the first element of the underlying array, see AsMutSlice.
func (s *Sequence[T]) MutData() *T {
	return unsafe.SliceData(*s.MutableView())
}

// AllMut returns an iterator over pointers to the elements. The revision is bumped when AllMut
// is called, not during the iteration.
func (s *Sequence[T]) AllMut() iter.Seq2[int, *T] {
	elements := *s.MutableView()

	return func(yield func(int, *T) bool) {
		for i := range elements {
			if !yield(i, &elements[i]) {
				return
			}
		}
	}
}

// Swap swaps the elements at indexes i and j.
func (s *Sequence[T]) Swap(i, j int) {
	inner := s.MutableView()
	(*inner)[i], (*inner)[j] = (*inner)[j], (*inner)[i]
}

// Reverse reverses the order of the elements.
func (s *Sequence[T]) Reverse() {
	slices.Reverse(*s.MutableView())
}

// SortFunc sorts the elements with cmp, see slices.SortFunc.
func (s *Sequence[T]) SortFunc(cmp func(a, b T) int) {
	slices.SortFunc(*s.MutableView(), cmp)
}

// Sort sorts the elements in ascending order.
func Sort[T constraints.Ordered](s *Sequence[T]) {
	slices.Sort(*s.MutableView())
}
