package set_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/denismitr/intset/set"
)

func TestRender(t *testing.T) {
	t.Run("empty set", func(t *testing.T) {
		assert.Equal(t, "{}", set.Render(newSet(t)))
	})

	t.Run("single item", func(t *testing.T) {
		assert.Equal(t, "{-7}", set.Render(newSet(t, -7)))
	})

	t.Run("items are ascending with no trailing separator", func(t *testing.T) {
		s := newSet(t, 30, -2, 11, 0)
		assert.Equal(t, "{-2,0,11,30}", set.Render(s))
		assert.Equal(t, "{-2,0,11,30}", s.String())
	})

	t.Run("rendering does not change the set", func(t *testing.T) {
		s := newSet(t, 1, 2)
		_ = set.Render(s)

		outcome, err := s.Add(3)
		assert.NoError(t, err)
		assert.Equal(t, set.Added, outcome)
		assert.Equal(t, "{1,2,3}", set.Render(s))
	})
}
