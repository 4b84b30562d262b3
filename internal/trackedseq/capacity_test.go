package trackedseq

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReserve(t *testing.T) {
	t.Parallel()

	t.Run("sufficient capacity still bumps", func(t *testing.T) {
		s := WithCapacity[int](10)
		s.Reserve(5)

		assert.Equal(t, 10, s.Cap())
		assert.EqualValues(t, 1, s.Revision())
		assert.True(t, s.Changed())
	})

	t.Run("from empty", func(t *testing.T) {
		s := New[int]()
		s.Reserve(1)
		assert.Equal(t, MIN_NON_ZERO_CAPACITY, s.Cap())
	})

	t.Run("amortized growth", func(t *testing.T) {
		s := Wrap(make([]int, 8))
		s.Reserve(1)

		assert.Equal(t, 16, s.Cap())
		assert.Equal(t, 8, s.Len())
	})

	t.Run("exact", func(t *testing.T) {
		s := Wrap(make([]int, 8))
		s.ReserveExact(1)
		assert.Equal(t, 9, s.Cap())

		s = New[int]()
		s.ReserveExact(1)
		assert.Equal(t, 1, s.Cap())
	})

	t.Run("elements are preserved", func(t *testing.T) {
		s := Wrap([]int{1, 2, 3})
		s.Reserve(100)

		assert.GreaterOrEqual(t, s.Cap(), 103)
		assert.Equal(t, []int{1, 2, 3}, elementsOf(s))
	})

	t.Run("negative additional capacity", func(t *testing.T) {
		s := New[int]()
		assert.Panics(t, func() {
			s.Reserve(-1)
		})
	})

	t.Run("capacity overflow", func(t *testing.T) {
		s := Of[int64](1)

		err := s.TryReserve(math.MaxInt)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrCapacityOverflow)

		var reserveErr *ReserveError
		require.True(t, errors.As(err, &reserveErr))
		assert.Equal(t, CapacityOverflow, reserveErr.Kind)
		assert.Equal(t, 1, reserveErr.Len)
		assert.Equal(t, math.MaxInt, reserveErr.Requested)

		assert.Equal(t, []int64{1}, elementsOf(s))
		assert.EqualValues(t, 1, s.Revision())

		assert.Panics(t, func() {
			s.Reserve(math.MaxInt)
		})
		assert.EqualValues(t, 2, s.Revision())
	})

	t.Run("allocation failure", func(t *testing.T) {
		if strconv.IntSize != 64 {
			t.Skip("the requested capacity is only accepted by 64-bit platforms")
		}

		s := Of[byte](1)

		err := s.TryReserveExact(1 << 50)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrAllocationFailed)

		var reserveErr *ReserveError
		require.True(t, errors.As(err, &reserveErr))
		assert.Equal(t, AllocationFailure, reserveErr.Kind)
		assert.NotNil(t, reserveErr.Cause)

		assert.Equal(t, []byte{1}, elementsOf(s))
		assert.Equal(t, 1, s.Len())
	})

	t.Run("zero-sized elements never overflow", func(t *testing.T) {
		s := New[struct{}]()
		assert.NoError(t, s.TryReserveExact(10))
		assert.Equal(t, 10, s.Cap())
	})
}

func TestShrink(t *testing.T) {
	t.Parallel()

	t.Run("ShrinkToFit", func(t *testing.T) {
		s := WithCapacity[int](10)
		s.ExtendFromSlice([]int{1, 2})

		s.ShrinkToFit()
		assert.Equal(t, 2, s.Cap())
		assert.Equal(t, []int{1, 2}, elementsOf(s))
		assert.EqualValues(t, 2, s.Revision())
	})

	t.Run("ShrinkTo", func(t *testing.T) {
		s := WithCapacity[int](10)
		s.ExtendFromSlice([]int{1, 2})

		s.ShrinkTo(5)
		assert.Equal(t, 5, s.Cap())

		s.ShrinkTo(1)
		assert.Equal(t, 2, s.Cap())

		s.ShrinkTo(20)
		assert.Equal(t, 2, s.Cap())
		assert.Equal(t, []int{1, 2}, elementsOf(s))
		assert.EqualValues(t, 4, s.Revision())
	})
}

func TestReserveErrorMessage(t *testing.T) {
	err := &ReserveError{Kind: CapacityOverflow, Len: 1, Requested: 2}
	assert.Equal(t, "failed to reserve 2 additional elements (length 1): capacity overflow", err.Error())
	assert.Equal(t, "unknown", ReserveErrorKind(0).String())
}
