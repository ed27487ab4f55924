package set_test

import (
	"errors"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/denismitr/intset/set"
	"github.com/denismitr/intset/utils"
)

func newSet(t *testing.T, items ...int) *set.IntSet {
	t.Helper()

	s, err := set.NewIntSet()
	require.NoError(t, err)
	_, err = s.AddSlice(items)
	require.NoError(t, err)
	return s
}

func TestOrderedSet_Add(t *testing.T) {
	t.Run("end to end scenario", func(t *testing.T) {
		s := newSet(t)

		for _, step := range []struct {
			item int
			want set.Outcome
		}{
			{5, set.Added},
			{3, set.Added},
			{5, set.AlreadyPresent},
			{7, set.Added},
		} {
			outcome, err := s.Add(step.item)
			require.NoError(t, err)
			assert.Equal(t, step.want, outcome, "add %d", step.item)
		}

		assert.Equal(t, "{3,5,7}", set.Render(s))

		outcome, err := s.Remove(5)
		require.NoError(t, err)
		assert.Equal(t, set.Removed, outcome)
		assert.Equal(t, "{3,7}", set.Render(s))

		outcome, err = s.Remove(5)
		require.NoError(t, err)
		assert.Equal(t, set.NotPresent, outcome)
		assert.Equal(t, 2, s.Len())
	})

	t.Run("second add of the same item leaves size unchanged", func(t *testing.T) {
		s := newSet(t, 10, 20)

		outcome, err := s.Add(15)
		require.NoError(t, err)
		assert.Equal(t, set.Added, outcome)
		assert.Equal(t, 3, s.Len())

		outcome, err = s.Add(15)
		require.NoError(t, err)
		assert.Equal(t, set.AlreadyPresent, outcome)
		assert.Equal(t, 3, s.Len())
	})

	t.Run("random adds always render ascending and unique", func(t *testing.T) {
		rnd := rand.New(rand.NewSource(42))
		s := newSet(t)
		seen := make(map[int]struct{})

		for i := 0; i < 2_000; i++ {
			v := rnd.Intn(500) - 250
			outcome, err := s.Add(v)
			require.NoError(t, err)

			if _, ok := seen[v]; ok {
				assert.Equal(t, set.AlreadyPresent, outcome)
			} else {
				assert.Equal(t, set.Added, outcome)
				seen[v] = struct{}{}
			}
		}

		want := make([]int, 0, len(seen))
		for v := range seen {
			want = append(want, v)
		}
		sort.Ints(want)

		items := s.Items()
		assert.Equal(t, want, items)
		assert.Equal(t, len(want), s.Len())
		for i := 1; i < len(items); i++ {
			assert.Less(t, items[i-1], items[i])
		}
	})

	t.Run("allocation error is propagated and size is kept", func(t *testing.T) {
		s, err := set.NewIntSet(set.WithCapacity(2))
		require.NoError(t, err)
		_, err = s.AddSlice([]int{1, 3})
		require.NoError(t, err)

		outcome, err := s.Add(2)
		assert.Equal(t, set.None, outcome)
		assert.True(t, errors.Is(err, set.ErrAllocation))
		assert.Equal(t, 2, s.Len())
		assert.Equal(t, "{1,3}", s.String())

		// already present items do not need storage
		outcome, err = s.Add(3)
		require.NoError(t, err)
		assert.Equal(t, set.AlreadyPresent, outcome)

		_, err = s.Remove(1)
		require.NoError(t, err)
		outcome, err = s.Add(2)
		require.NoError(t, err)
		assert.Equal(t, set.Added, outcome)
		assert.Equal(t, "{2,3}", s.String())
	})
}

func TestOrderedSet_Remove(t *testing.T) {
	t.Run("remove from the beginning middle and end", func(t *testing.T) {
		s := newSet(t, 4, 1, 3, 2, 5)

		for _, item := range []int{1, 3, 5} {
			outcome, err := s.Remove(item)
			require.NoError(t, err)
			assert.Equal(t, set.Removed, outcome)
			assert.False(t, s.Contains(item))
		}

		assert.Equal(t, []int{2, 4}, s.Items())
		assert.Equal(t, 2, s.Len())
	})

	t.Run("remove from empty set", func(t *testing.T) {
		s := newSet(t)

		outcome, err := s.Remove(1)
		require.NoError(t, err)
		assert.Equal(t, set.NotPresent, outcome)
		assert.True(t, s.IsEmpty())
	})

	t.Run("add then remove restores the rendered form", func(t *testing.T) {
		s := newSet(t, -3, 0, 8)
		before := set.Render(s)

		for _, item := range []int{-10, -1, 4, 100} {
			outcome, err := s.Add(item)
			require.NoError(t, err)
			assert.Equal(t, set.Added, outcome)

			outcome, err = s.Remove(item)
			require.NoError(t, err)
			assert.Equal(t, set.Removed, outcome)

			assert.Equal(t, before, set.Render(s))
		}
	})
}

func TestOrderedSet_Contains(t *testing.T) {
	s := newSet(t, 2, 4, 6)

	assert.True(t, s.Contains(2))
	assert.True(t, s.Contains(6))
	assert.False(t, s.Contains(1))
	assert.False(t, s.Contains(5))
	assert.False(t, s.Contains(7))
	assert.Equal(t, []int{2, 4, 6}, s.Items())
}

func TestOrderedSet_Traversal(t *testing.T) {
	t.Run("items in both directions", func(t *testing.T) {
		s := newSet(t, 3, 1, 2)

		assert.Equal(t, []int{1, 2, 3}, s.ItemsIn(utils.AscOrder))
		assert.Equal(t, []int{3, 2, 1}, s.ItemsIn(utils.DescOrder))
	})

	t.Run("min and max", func(t *testing.T) {
		s := newSet(t, 9, -4, 7)

		lo, ok := s.Min()
		assert.True(t, ok)
		assert.Equal(t, -4, lo)

		hi, ok := s.Max()
		assert.True(t, ok)
		assert.Equal(t, 9, hi)

		_, ok = newSet(t).Min()
		assert.False(t, ok)
	})
}

func TestOrderedSet_Clear(t *testing.T) {
	s := newSet(t, 1, 2, 3)

	s.Clear()
	assert.True(t, s.IsEmpty())
	assert.Equal(t, "{}", s.String())

	outcome, err := s.Add(2)
	require.NoError(t, err)
	assert.Equal(t, set.Added, outcome)
	assert.Equal(t, "{2}", s.String())
}

func TestOrderedSet_CloneAndEqual(t *testing.T) {
	s := newSet(t, 5, 1, 3)

	clone, err := s.Clone()
	require.NoError(t, err)
	assert.True(t, s.Equal(clone))
	assert.Equal(t, "{1,3,5}", clone.String())

	_, err = clone.Add(4)
	require.NoError(t, err)
	assert.False(t, s.Equal(clone))
	assert.Equal(t, "{1,3,5}", s.String())

	assert.True(t, newSet(t).Equal(newSet(t)))
	assert.False(t, newSet(t, 1, 2).Equal(newSet(t, 1, 3)))
}

func TestOrderedSet_Destroy(t *testing.T) {
	s := newSet(t, 1, 2)

	require.NoError(t, s.Destroy())
	assert.True(t, s.Destroyed())
	assert.True(t, errors.Is(s.Destroy(), set.ErrInvalidArgument))

	_, err := s.Add(1)
	assert.True(t, errors.Is(err, set.ErrInvalidArgument))
	_, err = s.Remove(1)
	assert.True(t, errors.Is(err, set.ErrInvalidArgument))
	assert.False(t, s.Contains(1))
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, "{}", set.Render(s))

	var nilSet *set.IntSet
	assert.True(t, errors.Is(nilSet.Destroy(), set.ErrInvalidArgument))
	assert.Equal(t, "{}", set.Render(nilSet))
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "NUMBER_ADDED", set.Added.String())
	assert.Equal(t, "NUMBER_ALREADY_IN_SET", set.AlreadyPresent.String())
	assert.Equal(t, "NUMBER_REMOVED", set.Removed.String())
	assert.Equal(t, "NUMBER_NOT_IN_SET", set.NotPresent.String())
}

func TestOrderedSet_OtherIntegerTypes(t *testing.T) {
	s, err := set.New[uint8]()
	require.NoError(t, err)

	for _, v := range []uint8{255, 0, 128} {
		_, err := s.Add(v)
		require.NoError(t, err)
	}

	assert.Equal(t, "{0,128,255}", set.Render(s))

	s64, err := set.New[int64]()
	require.NoError(t, err)
	_, err = s64.AddSlice([]int64{-1 << 62, 1 << 62})
	require.NoError(t, err)
	assert.Equal(t, "{-4611686018427387904,4611686018427387904}", s64.String())
}
