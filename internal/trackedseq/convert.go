package trackedseq

import (
	"reflect"
)

// Conversions consume the sequence: on success it is left empty and its revision is bumped.

// IntoInner returns the underlying slice (with its spare capacity) and empties the sequence.
func (s *Sequence[T]) IntoInner() []T {
	inner := s.MutableView()
	elements := *inner
	*inner = nil
	return elements
}

// IntoBoxed returns the elements in a slice whose capacity is its length and empties the
// sequence.
func (s *Sequence[T]) IntoBoxed() []T {
	inner := s.MutableView()
	elements := *inner
	*inner = nil

	if cap(elements) == len(elements) {
		return elements
	}
	boxed := make([]T, len(elements))
	copy(boxed, elements)
	return boxed
}

// IntoArray moves the elements of s into an array of type A, A should be an array type whose
// element type is T, for example:
//
//	array, err := IntoArray[[3]int](seq)
//
// If the length of s is not the length of A a *SizeMismatchError[T] is returned, its Seq
// field is s, neither the elements nor the revision of s have been modified.
func IntoArray[A any, T any](s *Sequence[T]) (A, error) {
	var array A

	arrayType := reflect.TypeOf(array)
	if arrayType == nil || arrayType.Kind() != reflect.Array || arrayType.Elem() != reflect.TypeFor[T]() {
		return array, ErrNotAnArray
	}

	if arrayType.Len() != len(s.inner) {
		return array, &SizeMismatchError[T]{
			Want: arrayType.Len(),
			Got:  len(s.inner),
			Seq:  s,
		}
	}

	reflect.Copy(reflect.ValueOf(&array).Elem(), reflect.ValueOf(s.inner))

	inner := s.MutableView()
	clear(*inner)
	*inner = nil
	return array, nil
}
