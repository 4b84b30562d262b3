package trackedseq

import (
	"iter"
	"slices"
	"unsafe"

	"github.com/inoxlang/trackedseq/internal/revision"
)

var (
	_ = []revision.Source{(*Sequence[int])(nil)}
)

// Sequence is a growable ordered container that counts its mutations, see the package
// documentation. The zero value is an empty sequence at revision 0.
// A Sequence must not be copied after first use.
type Sequence[T any] struct {
	revision revision.Counter
	checked  uint64

	inner []T

	//if true inner aliases a buffer the sequence does not own, it is cloned by the
	//first call to MutableView.
	shared bool
}

func wrap[T any](inner []T) *Sequence[T] {
	return &Sequence[T]{inner: inner}
}

// New returns an empty sequence.
func New[T any]() *Sequence[T] {
	return &Sequence[T]{}
}

// WithCapacity returns an empty sequence able to hold capacity elements without reallocating.
func WithCapacity[T any](capacity int) *Sequence[T] {
	return wrap(make([]T, 0, capacity))
}

// Of returns a sequence containing a copy of elements, it is typically used with literals
// or with arrays: Of(array[:]...).
func Of[T any](elements ...T) *Sequence[T] {
	return FromSlice(elements)
}

// FromSlice returns a sequence containing a copy of elements.
func FromSlice[T any](elements []T) *Sequence[T] {
	return wrap(slices.Clone(elements))
}

// Wrap returns a sequence that takes ownership of buffer, the caller should not use buffer
// anymore.
func Wrap[T any](buffer []T) *Sequence[T] {
	return wrap(buffer)
}

// FromShared returns a sequence reading from buffer until the first mutation, at which
// point the elements are copied into a buffer owned by the sequence (copy-on-write).
// The sequence never writes to buffer.
func FromShared[T any](buffer []T) *Sequence[T] {
	return &Sequence[T]{inner: buffer, shared: true}
}

// FromRawParts returns a sequence built from a pointer to the first element of an
// allocation of capacity elements, of which the first length ones are initialized.
// The caller asserts the validity of the three parts and gives up ownership of the memory.
func FromRawParts[T any](ptr *T, length, capacity int) *Sequence[T] {
	if ptr == nil {
		if length != 0 || capacity != 0 {
			panic(ErrInvalidRawParts)
		}
		return New[T]()
	}
	if length < 0 || length > capacity {
		panic(ErrInvalidRawParts)
	}
	return wrap(unsafe.Slice(ptr, capacity)[:length])
}

// FromString returns a byte sequence containing a copy of the bytes of s.
func FromString(s string) *Sequence[byte] {
	return wrap([]byte(s))
}

// Collect returns a sequence containing the values yielded by seq.
func Collect[T any](seq iter.Seq[T]) *Sequence[T] {
	return wrap(slices.Collect(seq))
}

// Bump increments the revision. It is called by every mutating method, callers only need it
// after using Unchecked. Bump can be called concurrently with other calls to Bump and
// Revision.
func (s *Sequence[T]) Bump() {
	s.revision.Bump()
}

// Revision returns the number of mutating calls made on the sequence since its creation.
func (s *Sequence[T]) Revision() uint64 {
	return s.revision.Load()
}

// Changed reports whether the revision moved since the previous call to Changed (or since the
// creation of the sequence). Changed requires exclusive access to the sequence, use a
// revision.Observer to poll from several places.
func (s *Sequence[T]) Changed() bool {
	rev := s.revision.Load()
	changed := rev != s.checked
	s.checked = rev
	return changed
}

// MutableView bumps the revision and returns a pointer to the underlying slice. It is the
// gateway used by all mutating methods; the returned pointer should not be retained after the
// next call to a method of the sequence.
func (s *Sequence[T]) MutableView() *[]T {
	s.revision.Bump()

	if s.shared {
		owned := make([]T, len(s.inner), cap(s.inner))
		copy(owned, s.inner)
		s.inner = owned
		s.shared = false
	}
	return &s.inner
}

// ReadView returns the underlying slice, the caller should not modify it.
func (s *Sequence[T]) ReadView() []T {
	return s.inner
}

// AsSlice is an alias of ReadView.
func (s *Sequence[T]) AsSlice() []T {
	return s.inner
}

// Clone returns a sequence containing a copy of the elements, at revision 0.
func (s *Sequence[T]) Clone() *Sequence[T] {
	return FromSlice(s.inner)
}

// Unchecked returns the low-level, untracked view of the sequence.
func (s *Sequence[T]) Unchecked() Unchecked[T] {
	return Unchecked[T]{seq: s}
}

// Unchecked gives access to operations that modify the sequence WITHOUT bumping its
// revision. Using them breaks the guarantee that every mutation is reported unless the caller
// calls Bump on the sequence afterwards.
type Unchecked[T any] struct {
	seq *Sequence[T]
}

// SetLen sets the length of the sequence without touching the elements and without bumping
// the revision. Elements between the old and the new length are whatever the buffer contains
// (typically values written through SpareCapacity, or zero values). SetLen panics if newLen
// is negative or greater than the capacity.
func (u Unchecked[T]) SetLen(newLen int) {
	if newLen < 0 || newLen > cap(u.seq.inner) {
		panic(ErrIndexOutOfRange)
	}
	u.seq.inner = u.seq.inner[:newLen]
}
