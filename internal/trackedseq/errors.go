package trackedseq

import (
	"errors"
	"fmt"
)

var (
	ErrIndexOutOfRange          = errors.New("index out of range")
	ErrInsertionIndexOutOfRange = errors.New("insertion index out of range")
	ErrInvalidRange             = errors.New("invalid range")
	ErrInvalidRawParts          = errors.New("invalid raw parts: length should be in [0, capacity] and a nil pointer requires a zero capacity")

	ErrCapacityOverflow = errors.New("capacity overflow")
	ErrAllocationFailed = errors.New("memory allocation failed")

	ErrSizeMismatch = errors.New("size mismatch")
	ErrNotAnArray   = errors.New("type argument is not an array of the element type")
)

type ReserveErrorKind int

const (
	// the requested capacity exceeds the maximum capacity for the element type.
	CapacityOverflow ReserveErrorKind = iota + 1
	// the runtime refused to allocate the requested capacity.
	AllocationFailure
)

func (k ReserveErrorKind) String() string {
	switch k {
	case CapacityOverflow:
		return "capacity overflow"
	case AllocationFailure:
		return "allocation failure"
	default:
		return "unknown"
	}
}

// ReserveError is returned by TryReserve and TryReserveExact.
type ReserveError struct {
	Kind      ReserveErrorKind
	Len       int // length at the time of the call
	Requested int // additional capacity requested
	Cause     error
}

func (e *ReserveError) Error() string {
	msg := fmt.Sprintf("failed to reserve %d additional elements (length %d): %s", e.Requested, e.Len, e.Kind)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *ReserveError) Unwrap() error {
	switch e.Kind {
	case CapacityOverflow:
		return ErrCapacityOverflow
	case AllocationFailure:
		return ErrAllocationFailed
	}
	return e.Cause
}

// SizeMismatchError is returned by IntoArray when the length of the sequence is not the
// length of the requested array. Seq is the original sequence, left untouched.
type SizeMismatchError[T any] struct {
	Want int
	Got  int
	Seq  *Sequence[T]
}

func (e *SizeMismatchError[T]) Error() string {
	return fmt.Sprintf("%s: cannot convert a sequence of length %d to an array of length %d", ErrSizeMismatch, e.Got, e.Want)
}

func (e *SizeMismatchError[T]) Unwrap() error {
	return ErrSizeMismatch
}

func checkIndex(i, length int) {
	if i < 0 || i >= length {
		panic(fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, length))
	}
}

func checkRange(start, end, length int) {
	if start < 0 || start > end || end > length {
		panic(fmt.Errorf("%w: [%d, %d) with length %d", ErrInvalidRange, start, end, length))
	}
}
