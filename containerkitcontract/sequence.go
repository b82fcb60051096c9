package containerkitcontract

import (
	"slices"
	"testing"

	"go.llib.dev/containerkit"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
	"go.llib.dev/testcase/random"
)

// Sequence validates the index based random access capability
// on top of the List contract: Get, Set, Insert and Remove respect
// ordering, touch only the addressed index, and report out of range
// indexes with containerkit.ErrIndexOutOfBounds.
func Sequence[T any](mk Make[containerkit.Sequence[T]], opts ...Option[T]) Contract {
	s := testcase.NewSpec(nil)
	c := toConfig(opts)

	List(func(tb testing.TB) containerkit.List[T] {
		return mk(tb)
	}, c).Spec(s)

	seq := let.Var(s, func(t *testcase.T) containerkit.Sequence[T] {
		return mk(t)
	})

	values := let.Var(s, func(t *testcase.T) []T {
		return random.Slice(t.Random.IntBetween(3, 7), func() T {
			return c.makeElem(t)
		}, random.UniqueValues)
	})

	whenContainsValues := func(s *testcase.Spec, blk func(s *testcase.Spec)) {
		s.When("sequence contains values", func(s *testcase.Spec) {
			seq.Let(s, func(t *testcase.T) containerkit.Sequence[T] {
				sub := seq.Super(t)
				for _, v := range values.Get(t) {
					sub.PushBack(v)
				}
				return sub
			})

			blk(s)
		})
	}

	s.Describe("#Get", func(s *testcase.Spec) {
		var (
			index = let.Var[int](s, nil)
		)
		act := let.Act2(func(t *testcase.T) (T, error) {
			return seq.Get(t).Get(index.Get(t))
		})

		s.When("sequence is empty", func(s *testcase.Spec) {
			s.Before(func(t *testcase.T) {
				assert.Equal(t, 0, seq.Get(t).Len(), "the made sequence should start out empty, check the contract setup")
			})

			s.And("index is out of bound", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return t.Random.IntBetween(0, 42)
				})

				s.Then("it fails with the out of bounds error", func(t *testcase.T) {
					_, err := act(t)
					assert.ErrorIs(t, err, containerkit.ErrIndexOutOfBounds)
				})
			})
		})

		whenContainsValues(s, func(s *testcase.Spec) {
			s.And("index points to an existing value", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return t.Random.IntN(len(values.Get(t)))
				})

				s.Then("the expected value is returned", func(t *testcase.T) {
					got, err := act(t)
					assert.NoError(t, err)
					assert.Equal(t, values.Get(t)[index.Get(t)], got)
				})
			})

			s.And("index is out of bound", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return len(values.Get(t)) + t.Random.IntBetween(0, 42)
				})

				s.Then("it fails with the out of bounds error", func(t *testcase.T) {
					_, err := act(t)
					assert.ErrorIs(t, err, containerkit.ErrIndexOutOfBounds)
				})
			})

			s.And("index is negative", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return -t.Random.IntBetween(1, 42)
				})

				s.Then("it fails with the out of bounds error", func(t *testcase.T) {
					_, err := act(t)
					assert.ErrorIs(t, err, containerkit.ErrIndexOutOfBounds)
				})
			})
		})
	})

	s.Describe("#Set", func(s *testcase.Spec) {
		var (
			index = let.Var[int](s, nil)
			value = let.Var(s, func(t *testcase.T) T {
				return c.makeElem(t)
			})
		)
		act := let.Act(func(t *testcase.T) error {
			return seq.Get(t).Set(index.Get(t), value.Get(t))
		})

		s.When("sequence is empty", func(s *testcase.Spec) {
			index.Let(s, func(t *testcase.T) int {
				return t.Random.IntBetween(0, 42)
			})

			s.Then("it fails with the out of bounds error", func(t *testcase.T) {
				assert.ErrorIs(t, act(t), containerkit.ErrIndexOutOfBounds)
			})
		})

		whenContainsValues(s, func(s *testcase.Spec) {
			s.And("index points to an existing value", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return t.Random.IntN(len(values.Get(t)))
				})

				s.Then("the new value is set for the given index", func(t *testcase.T) {
					assert.NoError(t, act(t))

					got, err := seq.Get(t).Get(index.Get(t))
					assert.NoError(t, err)
					assert.Equal(t, value.Get(t), got)
				})

				s.Then("the total length remains the same", func(t *testcase.T) {
					befLen := seq.Get(t).Len()
					assert.NoError(t, act(t))
					assert.Equal(t, befLen, seq.Get(t).Len())
				})

				s.Then("apart from the changed value, everything else remains the original one", func(t *testcase.T) {
					assert.NoError(t, act(t))

					for i := 0; i < seq.Get(t).Len(); i++ {
						got, err := seq.Get(t).Get(i)
						assert.NoError(t, err)
						if i == index.Get(t) {
							assert.Equal(t, value.Get(t), got)
						} else {
							assert.Equal(t, values.Get(t)[i], got)
						}
					}
				})
			})

			s.And("index is out of bound", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return len(values.Get(t)) + t.Random.IntBetween(0, 42)
				})

				s.Then("it fails with the out of bounds error", func(t *testcase.T) {
					assert.ErrorIs(t, act(t), containerkit.ErrIndexOutOfBounds)
				})

				s.Then("the contents are left untouched", func(t *testcase.T) {
					_ = act(t)

					assert.Equal(t, values.Get(t), slices.Collect(seq.Get(t).Iter()))
				})
			})
		})
	})

	s.Describe("#Insert", func(s *testcase.Spec) {
		var (
			index = let.Var[int](s, nil)
			value = let.Var(s, func(t *testcase.T) T {
				return c.makeElem(t)
			})
		)
		act := let.Act(func(t *testcase.T) error {
			return seq.Get(t).Insert(index.Get(t), value.Get(t))
		})

		s.When("sequence is empty", func(s *testcase.Spec) {
			s.And("index is out of bound", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return t.Random.IntBetween(1, 42)
				})

				s.Then("it fails with the out of bounds error", func(t *testcase.T) {
					assert.ErrorIs(t, act(t), containerkit.ErrIndexOutOfBounds)
				})
			})

			s.And("index is zero", func(s *testcase.Spec) {
				index.LetValue(s, 0)

				s.Then("it inserts the value as the sole element", func(t *testcase.T) {
					assert.NoError(t, act(t))
					assert.Equal(t, 1, seq.Get(t).Len())

					got, err := seq.Get(t).Get(0)
					assert.NoError(t, err)
					assert.Equal(t, value.Get(t), got)
				})
			})
		})

		whenContainsValues(s, func(s *testcase.Spec) {
			s.And("index points to an existing value", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return t.Random.IntN(len(values.Get(t)))
				})

				s.Then("the total length grows by one", func(t *testcase.T) {
					assert.NoError(t, act(t))
					assert.Equal(t, len(values.Get(t))+1, seq.Get(t).Len())
				})

				s.Then("the value is readable back from the given index", func(t *testcase.T) {
					assert.NoError(t, act(t))

					got, err := seq.Get(t).Get(index.Get(t))
					assert.NoError(t, err)
					assert.Equal(t, value.Get(t), got)
				})

				s.Then("values before the index are not affected", func(t *testcase.T) {
					assert.NoError(t, act(t))

					for i := 0; i < index.Get(t); i++ {
						got, err := seq.Get(t).Get(i)
						assert.NoError(t, err)
						assert.Equal(t, values.Get(t)[i], got)
					}
				})

				s.Then("values from the index slide one position higher in their original order", func(t *testcase.T) {
					assert.NoError(t, act(t))

					for i, exp := range values.Get(t)[index.Get(t):] {
						got, err := seq.Get(t).Get(index.Get(t) + 1 + i)
						assert.NoError(t, err)
						assert.Equal(t, exp, got)
					}
				})
			})

			s.And("index equals the length", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return len(values.Get(t))
				})

				s.Then("it appends", func(t *testcase.T) {
					assert.NoError(t, act(t))

					got, err := seq.Get(t).Get(seq.Get(t).Len() - 1)
					assert.NoError(t, err)
					assert.Equal(t, value.Get(t), got)
				})
			})

			s.And("index is out of bound", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return len(values.Get(t)) + t.Random.IntBetween(1, 42)
				})

				s.Then("it fails with the out of bounds error", func(t *testcase.T) {
					assert.ErrorIs(t, act(t), containerkit.ErrIndexOutOfBounds)
				})

				s.Then("the contents are left untouched", func(t *testcase.T) {
					_ = act(t)

					assert.Equal(t, values.Get(t), slices.Collect(seq.Get(t).Iter()))
				})
			})
		})
	})

	s.Describe("#Remove", func(s *testcase.Spec) {
		var (
			index = let.Var[int](s, nil)
		)
		act := let.Act(func(t *testcase.T) error {
			return seq.Get(t).Remove(index.Get(t))
		})

		s.When("sequence is empty", func(s *testcase.Spec) {
			index.Let(s, func(t *testcase.T) int {
				return t.Random.IntBetween(0, 42)
			})

			s.Then("it fails with the out of bounds error", func(t *testcase.T) {
				assert.ErrorIs(t, act(t), containerkit.ErrIndexOutOfBounds)
			})
		})

		whenContainsValues(s, func(s *testcase.Spec) {
			s.And("index points to an existing value", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return t.Random.IntN(len(values.Get(t)))
				})

				s.Then("the total length shrinks by one", func(t *testcase.T) {
					assert.NoError(t, act(t))
					assert.Equal(t, len(values.Get(t))-1, seq.Get(t).Len())
				})

				s.Then("only the addressed value is gone, the rest keeps its order", func(t *testcase.T) {
					assert.NoError(t, act(t))

					exp := slices.Concat(values.Get(t)[:index.Get(t)], values.Get(t)[index.Get(t)+1:])
					assert.Equal(t, exp, slices.Collect(seq.Get(t).Iter()))
				})
			})

			s.And("index is out of bound", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return len(values.Get(t)) + t.Random.IntBetween(0, 42)
				})

				s.Then("it fails with the out of bounds error", func(t *testcase.T) {
					assert.ErrorIs(t, act(t), containerkit.ErrIndexOutOfBounds)
				})

				s.Then("the contents are left untouched", func(t *testcase.T) {
					_ = act(t)

					assert.Equal(t, values.Get(t), slices.Collect(seq.Get(t).Iter()))
				})
			})
		})
	})

	s.Test("Remove is the exact inverse of Insert", func(t *testcase.T) {
		var (
			sub      = mk(t)
			expected = random.Slice(t.Random.IntBetween(3, 7), func() T {
				return c.makeElem(t)
			}, random.UniqueValues)
		)
		for _, v := range expected {
			sub.PushBack(v)
		}

		index := t.Random.IntN(len(expected) + 1)
		assert.NoError(t, sub.Insert(index, c.makeElem(t)))
		assert.NoError(t, sub.Remove(index))

		assert.Equal(t, expected, slices.Collect(sub.Iter()))
	})

	return s.AsSuite("Sequence")
}
