package containerkitcontract

import (
	"slices"

	"go.llib.dev/containerkit"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"
)

// List validates the ordered List capability:
// PushBack grows the container, iteration yields the pushed values
// in push order, and Clear empties it.
func List[T any](mk Make[containerkit.List[T]], opts ...Option[T]) Contract {
	s := testcase.NewSpec(nil)
	c := toConfig(opts)

	s.Test("smoke", func(t *testcase.T) {
		var (
			list     = mk(t)
			expected = random.Slice(t.Random.IntBetween(3, 7), func() T {
				return c.makeElem(t)
			})
		)
		assert.Equal(t, 0, list.Len())
		assert.True(t, list.IsEmpty(), "a fresh container should be empty")

		var expLen int
		for _, v := range expected {
			assert.Equal(t, expLen, list.Len())
			list.PushBack(v)
			expLen++
		}

		assert.Equal(t, len(expected), list.Len())
		assert.False(t, list.IsEmpty())
	})

	s.Test("ordered", func(t *testcase.T) {
		var (
			list     = mk(t)
			expected = random.Slice(t.Random.IntBetween(3, 7), func() T {
				return c.makeElem(t)
			}, random.UniqueValues)
		)
		for _, v := range expected {
			list.PushBack(v)
		}
		assert.Equal(t, expected, slices.Collect(list.Iter()))

		if slicer, ok := list.(containerkit.Slicer[T]); ok {
			assert.Equal(t, expected, slicer.ToSlice())
		}
	})

	s.Test("iteration can stop early", func(t *testcase.T) {
		list := mk(t)
		t.Random.Repeat(3, 7, func() {
			list.PushBack(c.makeElem(t))
		})

		var n int
		for range list.Iter() {
			n++
			break
		}

		assert.Equal(t, 1, n)
	})

	s.Test("clear", func(t *testcase.T) {
		list := mk(t)
		t.Random.Repeat(3, 7, func() {
			list.PushBack(c.makeElem(t))
		})
		assert.NotEmpty(t, list.Len())

		list.Clear()

		assert.Equal(t, 0, list.Len())
		assert.True(t, list.IsEmpty())
		assert.Empty(t, slices.Collect(list.Iter()))
	})

	return s.AsSuite("List")
}
