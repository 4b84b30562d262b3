package trackedseq

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntoArray(t *testing.T) {
	t.Parallel()

	t.Run("matching length", func(t *testing.T) {
		s := Of(1, 2, 3)

		array, err := IntoArray[[3]int](s)
		require.NoError(t, err)
		assert.Equal(t, [3]int{1, 2, 3}, array)

		assert.True(t, s.IsEmpty())
		assert.EqualValues(t, 1, s.Revision())
	})

	t.Run("empty array", func(t *testing.T) {
		array, err := IntoArray[[0]string](New[string]())
		require.NoError(t, err)
		assert.Len(t, array, 0)
	})

	t.Run("length mismatch", func(t *testing.T) {
		s := Of(1, 2)

		_, err := IntoArray[[3]int](s)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSizeMismatch)

		var mismatch *SizeMismatchError[int]
		require.True(t, errors.As(err, &mismatch))
		assert.Equal(t, 3, mismatch.Want)
		assert.Equal(t, 2, mismatch.Got)
		assert.Same(t, s, mismatch.Seq)

		//the sequence is untouched and usable
		assert.Equal(t, []int{1, 2}, elementsOf(s))
		assert.EqualValues(t, 0, s.Revision())
		assert.False(t, s.Changed())

		s.Push(3)
		array, err := IntoArray[[3]int](mismatch.Seq)
		require.NoError(t, err)
		assert.Equal(t, [3]int{1, 2, 3}, array)
	})

	t.Run("not an array of the element type", func(t *testing.T) {
		s := Of(1, 2)

		_, err := IntoArray[[]int](s)
		assert.ErrorIs(t, err, ErrNotAnArray)

		_, err = IntoArray[[2]int64](s)
		assert.ErrorIs(t, err, ErrNotAnArray)

		_, err = IntoArray[any](s)
		assert.ErrorIs(t, err, ErrNotAnArray)

		assert.Equal(t, 2, s.Len())
		assert.EqualValues(t, 0, s.Revision())
	})
}

func TestIntoInner(t *testing.T) {
	t.Parallel()

	t.Run("keeps the capacity", func(t *testing.T) {
		s := WithCapacity[int](10)
		s.Push(1)

		inner := s.IntoInner()
		assert.Equal(t, []int{1}, inner)
		assert.Equal(t, 10, cap(inner))

		assert.True(t, s.IsEmpty())
		assert.EqualValues(t, 2, s.Revision())
	})

	t.Run("shared buffer", func(t *testing.T) {
		buffer := []int{1, 2}
		s := FromShared(buffer)

		inner := s.IntoInner()
		inner[0] = 100
		assert.Equal(t, []int{1, 2}, buffer)
	})
}

func TestIntoBoxed(t *testing.T) {
	t.Parallel()

	s := WithCapacity[int](10)
	s.ExtendFromSlice([]int{1, 2})

	boxed := s.IntoBoxed()
	assert.Equal(t, []int{1, 2}, boxed)
	assert.Equal(t, 2, cap(boxed))
	assert.True(t, s.IsEmpty())

	s = Wrap([]int{1})
	assert.Equal(t, []int{1}, s.IntoBoxed())
}
