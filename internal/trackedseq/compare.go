package trackedseq

import (
	"fmt"
	"hash/maphash"
	"slices"

	"golang.org/x/exp/constraints"
)

// Comparison, hashing and formatting only depend on the elements, revisions are ignored.

// Equal reports whether a and b have the same length and equal elements.
func Equal[T comparable](a, b *Sequence[T]) bool {
	return slices.Equal(a.inner, b.inner)
}

// EqualFunc is the same as Equal but uses eq to compare elements.
func (s *Sequence[T]) EqualFunc(other *Sequence[T], eq func(a, b T) bool) bool {
	return slices.EqualFunc(s.inner, other.inner, eq)
}

// Compare compares the elements of a and b lexicographically, see slices.Compare.
func Compare[T constraints.Ordered](a, b *Sequence[T]) int {
	return slices.Compare(a.inner, b.inner)
}

// CompareFunc is the same as Compare but uses cmp to compare elements.
func (s *Sequence[T]) CompareFunc(other *Sequence[T], cmp func(a, b T) int) int {
	return slices.CompareFunc(s.inner, other.inner, cmp)
}

// Hash returns a hash of the length and elements of s. Two equal sequences have the same hash
// for a given seed.
func Hash[T comparable](s *Sequence[T], seed maphash.Seed) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)

	maphash.WriteComparable(&h, len(s.inner))
	for _, e := range s.inner {
		maphash.WriteComparable(&h, e)
	}
	return h.Sum64()
}

// HashFunc writes the length of s to h and then calls write for each element.
func (s *Sequence[T]) HashFunc(h *maphash.Hash, write func(h *maphash.Hash, e T)) {
	maphash.WriteComparable(h, len(s.inner))
	for _, e := range s.inner {
		write(h, e)
	}
}

// String formats the elements like a slice: [a b c].
func (s *Sequence[T]) String() string {
	return fmt.Sprint(s.inner)
}

// Format implements fmt.Formatter, the elements are formatted like a slice with the same verb
// and flags.
func (s *Sequence[T]) Format(f fmt.State, verb rune) {
	fmt.Fprintf(f, fmt.FormatString(f, verb), s.inner)
}
