package trackedseq

import (
	"fmt"
	"math"

	"github.com/inoxlang/trackedseq/internal/utils"
)

const (
	MIN_NON_ZERO_CAPACITY = 4
)

// maxCapacity returns the greatest capacity a []T can be asked for.
func maxCapacity[T any]() int {
	size := utils.GetByteSize[T]()
	if size == 0 {
		return math.MaxInt
	}
	return int(uintptr(math.MaxInt) / size)
}

// Cap returns the capacity of the underlying slice.
func (s *Sequence[T]) Cap() int {
	return cap(s.inner)
}

// Reserve makes room for at least additional more elements, the buffer may grow more than
// requested to amortize future insertions. It panics with a *ReserveError if the capacity
// cannot be reserved. Like every method going through MutableView, Reserve bumps the revision
// even if the capacity is already sufficient.
func (s *Sequence[T]) Reserve(additional int) {
	if err := s.TryReserve(additional); err != nil {
		panic(err)
	}
}

// ReserveExact is the same as Reserve but does not over-allocate.
func (s *Sequence[T]) ReserveExact(additional int) {
	if err := s.TryReserveExact(additional); err != nil {
		panic(err)
	}
}

// TryReserve is the fallible version of Reserve.
func (s *Sequence[T]) TryReserve(additional int) error {
	return s.reserve(additional, false)
}

// TryReserveExact is the fallible version of ReserveExact.
func (s *Sequence[T]) TryReserveExact(additional int) error {
	return s.reserve(additional, true)
}

func (s *Sequence[T]) reserve(additional int, exact bool) (finalErr error) {
	if additional < 0 {
		panic(fmt.Errorf("additional capacity should be positive or zero, got %d", additional))
	}

	inner := s.MutableView()
	length := len(*inner)
	capacity := cap(*inner)

	if capacity-length >= additional {
		return nil
	}

	maxCap := maxCapacity[T]()
	if additional > maxCap-length {
		return &ReserveError{Kind: CapacityOverflow, Len: length, Requested: additional}
	}

	newCap := length + additional
	if !exact {
		if capacity <= maxCap/2 && 2*capacity > newCap {
			newCap = 2 * capacity
		}
		if newCap < MIN_NON_ZERO_CAPACITY && maxCap >= MIN_NON_ZERO_CAPACITY {
			newCap = MIN_NON_ZERO_CAPACITY
		}
	}

	defer func() {
		if v := recover(); v != nil {
			finalErr = &ReserveError{
				Kind:      AllocationFailure,
				Len:       length,
				Requested: additional,
				Cause:     utils.ConvertPanicValueToError(v),
			}
		}
	}()

	grown := make([]T, length, newCap)
	copy(grown, *inner)
	*inner = grown
	return nil
}

// ShrinkToFit reduces the capacity to the length, reallocating if necessary.
func (s *Sequence[T]) ShrinkToFit() {
	s.ShrinkTo(0)
}

// ShrinkTo reduces the capacity to max(length, minCapacity). It does nothing if the capacity
// is already lower.
func (s *Sequence[T]) ShrinkTo(minCapacity int) {
	inner := s.MutableView()

	target := max(len(*inner), minCapacity)
	if cap(*inner) <= target {
		return
	}

	shrunk := make([]T, len(*inner), target)
	copy(shrunk, *inner)
	*inner = shrunk
}

// SpareCapacity returns the (possibly empty) slice of the elements between the length and
// the capacity. Values written to it become part of the sequence after a call to
// Unchecked().SetLen.
func (s *Sequence[T]) SpareCapacity() []T {
	inner := s.MutableView()
	return (*inner)[len(*inner):cap(*inner)]
}
