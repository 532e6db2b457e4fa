package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func pages(items []Item) []int {
	var out []int
	for _, it := range items {
		if it.Ellipsis {
			out = append(out, -1)
		} else {
			out = append(out, it.Page)
		}
	}
	return out
}

func TestWindow(t *testing.T) {
	t.Run("middle page anchors both ends with ellipses", func(t *testing.T) {
		items := Window(5, 10, 1)
		assert.Equal(t, []int{1, -1, 4, 5, 6, -1, 10}, pages(items))
	})

	t.Run("first page has no leading ellipsis", func(t *testing.T) {
		items := Window(1, 10, 1)
		assert.Equal(t, []int{1, 2, -1, 10}, pages(items))
	})

	t.Run("last page has no trailing ellipsis", func(t *testing.T) {
		items := Window(10, 10, 1)
		assert.Equal(t, []int{1, -1, 9, 10}, pages(items))
	})

	t.Run("window adjacent to anchors omits ellipses", func(t *testing.T) {
		items := Window(3, 5, 1)
		assert.Equal(t, []int{1, 2, 3, 4, 5}, pages(items))
	})

	t.Run("wider window", func(t *testing.T) {
		items := Window(5, 10, 3)
		assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, -1, 10}, pages(items))
	})

	t.Run("single page", func(t *testing.T) {
		items := Window(1, 1, 1)
		assert.Equal(t, []int{1}, pages(items))
	})

	t.Run("no pages yields nil", func(t *testing.T) {
		assert.Nil(t, Window(1, 0, 1))
	})

	t.Run("two pages are both anchors", func(t *testing.T) {
		items := Window(1, 2, 1)
		assert.Equal(t, []int{1, 2}, pages(items))
	})
}

func TestStateClamp(t *testing.T) {
	t.Run("page beyond total clamps to total", func(t *testing.T) {
		s := State{CurrentPage: 12, TotalPages: 10}
		s.Clamp()
		assert.Equal(t, 10, s.CurrentPage)
	})

	t.Run("page below one clamps to one", func(t *testing.T) {
		s := State{CurrentPage: 0, TotalPages: 10}
		s.Clamp()
		assert.Equal(t, 1, s.CurrentPage)
	})

	t.Run("zero total pages still allows page one", func(t *testing.T) {
		s := State{CurrentPage: 4, TotalPages: 0}
		s.Clamp()
		assert.Equal(t, 1, s.CurrentPage)
		assert.Equal(t, 0, s.TotalPages)
	})

	t.Run("negative total pages is normalized", func(t *testing.T) {
		s := State{CurrentPage: 1, TotalPages: -3}
		s.Clamp()
		assert.Equal(t, 0, s.TotalPages)
		assert.Equal(t, 1, s.CurrentPage)
	})
}

func TestStateNavigation(t *testing.T) {
	assert.False(t, State{CurrentPage: 1, TotalPages: 3}.HasPrev())
	assert.True(t, State{CurrentPage: 2, TotalPages: 3}.HasPrev())
	assert.True(t, State{CurrentPage: 2, TotalPages: 3}.HasNext())
	assert.False(t, State{CurrentPage: 3, TotalPages: 3}.HasNext())
	assert.False(t, State{CurrentPage: 1, TotalPages: 0}.HasNext())
}
