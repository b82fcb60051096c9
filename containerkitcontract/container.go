package containerkitcontract

import (
	"go.llib.dev/containerkit"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
	"go.llib.dev/testcase/random"
)

// LIFO validates the Container capability with last-in-first-out
// discipline: values pop in the reverse of their push order.
func LIFO[T any](mk Make[containerkit.Container[T]], opts ...Option[T]) Contract {
	s := testcase.NewSpec(nil)
	c := toConfig(opts)

	container(s, c, mk)

	s.Test("values pop in the reverse of their push order", func(t *testcase.T) {
		var (
			sub    = mk(t)
			values = random.Slice(t.Random.IntBetween(3, 7), func() T {
				return c.makeElem(t)
			}, random.UniqueValues)
		)
		for _, v := range values {
			sub.Push(v)
		}
		for i := len(values) - 1; 0 <= i; i-- {
			got, err := sub.Pop()
			assert.NoError(t, err)
			assert.Equal(t, values[i], got)
		}
		assert.True(t, sub.IsEmpty())
	})

	return s.AsSuite("LIFO Container")
}

// FIFO validates the Container capability with first-in-first-out
// discipline: values pop in their push order.
func FIFO[T any](mk Make[containerkit.Container[T]], opts ...Option[T]) Contract {
	s := testcase.NewSpec(nil)
	c := toConfig(opts)

	container(s, c, mk)

	s.Test("values pop in their push order", func(t *testcase.T) {
		var (
			sub    = mk(t)
			values = random.Slice(t.Random.IntBetween(3, 7), func() T {
				return c.makeElem(t)
			}, random.UniqueValues)
		)
		for _, v := range values {
			sub.Push(v)
		}
		for _, exp := range values {
			got, err := sub.Pop()
			assert.NoError(t, err)
			assert.Equal(t, exp, got)
		}
		assert.True(t, sub.IsEmpty())
	})

	return s.AsSuite("FIFO Container")
}

// container holds the discipline agnostic Container expectations.
func container[T any](s *testcase.Spec, c Config[T], mk Make[containerkit.Container[T]]) {
	sub := let.Var(s, func(t *testcase.T) containerkit.Container[T] {
		return mk(t)
	})

	s.Describe("#Push", func(s *testcase.Spec) {
		value := let.Var(s, func(t *testcase.T) T {
			return c.makeElem(t)
		})
		act := let.Act0(func(t *testcase.T) {
			sub.Get(t).Push(value.Get(t))
		})

		s.Then("the container's length grows by one", func(t *testcase.T) {
			before := sub.Get(t).Len()

			act(t)

			assert.Equal(t, before+1, sub.Get(t).Len())
		})

		s.Then("the container is no longer empty", func(t *testcase.T) {
			act(t)

			assert.False(t, sub.Get(t).IsEmpty())
		})

		s.Then("the pushed value is reachable by draining the container", func(t *testcase.T) {
			act(t)

			var drained []T
			for !sub.Get(t).IsEmpty() {
				got, err := sub.Get(t).Pop()
				assert.NoError(t, err)
				drained = append(drained, got)
			}
			assert.Contains(t, drained, value.Get(t))
		})
	})

	s.Describe("#Pop", func(s *testcase.Spec) {
		act := let.Act2(func(t *testcase.T) (T, error) {
			return sub.Get(t).Pop()
		})

		s.When("container is empty", func(s *testcase.Spec) {
			s.Then("it fails with the empty container error", func(t *testcase.T) {
				_, err := act(t)
				assert.ErrorIs(t, err, containerkit.ErrEmptyContainer)
			})

			s.Then("it leaves the container empty", func(t *testcase.T) {
				_, _ = act(t)

				assert.True(t, sub.Get(t).IsEmpty())
				assert.Equal(t, 0, sub.Get(t).Len())
			})
		})

		s.When("container has values", func(s *testcase.Spec) {
			s.Before(func(t *testcase.T) {
				t.Random.Repeat(1, 7, func() {
					sub.Get(t).Push(c.makeElem(t))
				})
			})

			s.Then("the length shrinks by one", func(t *testcase.T) {
				before := sub.Get(t).Len()

				_, err := act(t)
				assert.NoError(t, err)

				assert.Equal(t, before-1, sub.Get(t).Len())
			})

			s.Then("it returns what Peek promised", func(t *testcase.T) {
				exp, err := sub.Get(t).Peek()
				assert.NoError(t, err)

				got, err := act(t)
				assert.NoError(t, err)
				assert.Equal(t, exp, got)
			})
		})
	})

	s.Describe("#Peek", func(s *testcase.Spec) {
		act := let.Act2(func(t *testcase.T) (T, error) {
			return sub.Get(t).Peek()
		})

		s.When("container is empty", func(s *testcase.Spec) {
			s.Then("it fails with the empty container error", func(t *testcase.T) {
				_, err := act(t)
				assert.ErrorIs(t, err, containerkit.ErrEmptyContainer)
			})
		})

		s.When("container has values", func(s *testcase.Spec) {
			s.Before(func(t *testcase.T) {
				t.Random.Repeat(1, 7, func() {
					sub.Get(t).Push(c.makeElem(t))
				})
			})

			s.Then("it does not remove the element", func(t *testcase.T) {
				before := sub.Get(t).Len()

				_, err := act(t)
				assert.NoError(t, err)

				assert.Equal(t, before, sub.Get(t).Len())
			})

			s.Then("repeated peeks return the same element", func(t *testcase.T) {
				first, err := act(t)
				assert.NoError(t, err)

				second, err := act(t)
				assert.NoError(t, err)

				assert.Equal(t, first, second)
			})
		})
	})
}
