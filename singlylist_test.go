package containerkit_test

import (
	"testing"

	"go.llib.dev/containerkit"
	"go.llib.dev/containerkit/compare"
	"go.llib.dev/containerkit/containerkitcontract"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
	"go.llib.dev/testcase/random"
)

func TestSinglyList(t *testing.T) {
	s := testcase.NewSpec(t)

	list := let.Var(s, func(t *testcase.T) *containerkit.SinglyList[int] {
		return containerkit.NewSinglyList[int]()
	})

	s.Test("smoke", func(t *testcase.T) {
		var list containerkit.SinglyList[int]

		list.PushBack(1)
		list.PushBack(2)
		list.PushBack(3)
		assert.Equal(t, []int{1, 2, 3}, list.ToSlice())

		assert.NoError(t, list.Insert(1, 99))
		assert.Equal(t, []int{1, 99, 2, 3}, list.ToSlice())

		assert.NoError(t, list.Remove(0))
		assert.Equal(t, []int{99, 2, 3}, list.ToSlice())

		list.Reverse()
		assert.Equal(t, []int{3, 2, 99}, list.ToSlice())
	})

	s.Test("PushFront prepends, PushBack appends", func(t *testcase.T) {
		sub := list.Get(t)

		sub.PushBack(2)
		sub.PushFront(1)
		sub.PushBack(3)

		assert.Equal(t, []int{1, 2, 3}, sub.ToSlice())
	})

	s.Describe("#PopFront", func(s *testcase.Spec) {
		act := let.Act2(func(t *testcase.T) (int, error) {
			return list.Get(t).PopFront()
		})

		s.When("list is empty", func(s *testcase.Spec) {
			s.Then("it fails with the empty container error", func(t *testcase.T) {
				_, err := act(t)
				assert.ErrorIs(t, err, containerkit.ErrEmptyContainer)
			})
		})

		s.When("list has values", func(s *testcase.Spec) {
			values := let.Var(s, func(t *testcase.T) []int {
				return random.Slice(t.Random.IntBetween(2, 7), t.Random.Int)
			})

			s.Before(func(t *testcase.T) {
				for _, v := range values.Get(t) {
					list.Get(t).PushBack(v)
				}
			})

			s.Then("it returns the first value and drops it from the list", func(t *testcase.T) {
				got, err := act(t)
				assert.NoError(t, err)
				assert.Equal(t, values.Get(t)[0], got)
				assert.Equal(t, values.Get(t)[1:], list.Get(t).ToSlice())
			})
		})

		s.Test("popping the only element leaves a list that accepts appends again", func(t *testcase.T) {
			sub := list.Get(t)
			sub.PushBack(42)

			_, err := sub.PopFront()
			assert.NoError(t, err)
			assert.True(t, sub.IsEmpty())

			sub.PushBack(7)
			back, err := sub.Back()
			assert.NoError(t, err)
			assert.Equal(t, 7, back)
		})
	})

	s.Describe("#PopBack", func(s *testcase.Spec) {
		act := let.Act2(func(t *testcase.T) (int, error) {
			return list.Get(t).PopBack()
		})

		s.When("list is empty", func(s *testcase.Spec) {
			s.Then("it fails with the empty container error", func(t *testcase.T) {
				_, err := act(t)
				assert.ErrorIs(t, err, containerkit.ErrEmptyContainer)
			})
		})

		s.When("list has values", func(s *testcase.Spec) {
			values := let.Var(s, func(t *testcase.T) []int {
				return random.Slice(t.Random.IntBetween(2, 7), t.Random.Int)
			})

			s.Before(func(t *testcase.T) {
				for _, v := range values.Get(t) {
					list.Get(t).PushBack(v)
				}
			})

			s.Then("it returns the last value and drops it from the list", func(t *testcase.T) {
				got, err := act(t)
				assert.NoError(t, err)
				assert.Equal(t, values.Get(t)[len(values.Get(t))-1], got)
				assert.Equal(t, values.Get(t)[:len(values.Get(t))-1], list.Get(t).ToSlice())
			})

			s.Then("popping everything drains the list front intact", func(t *testcase.T) {
				for i := len(values.Get(t)) - 1; 0 <= i; i-- {
					got, err := act(t)
					assert.NoError(t, err)
					assert.Equal(t, values.Get(t)[i], got)
				}
				assert.True(t, list.Get(t).IsEmpty())
			})
		})
	})

	s.Test("removing the last index moves the back to its predecessor", func(t *testcase.T) {
		sub := list.Get(t)
		sub.PushBack(1)
		sub.PushBack(2)
		sub.PushBack(3)

		assert.NoError(t, sub.Remove(sub.Len()-1))

		back, err := sub.Back()
		assert.NoError(t, err)
		assert.Equal(t, 2, back)

		sub.PushBack(4)
		assert.Equal(t, []int{1, 2, 4}, sub.ToSlice())
	})

	s.Describe("#Reverse", func(s *testcase.Spec) {
		act := let.Act0(func(t *testcase.T) {
			list.Get(t).Reverse()
		})

		s.Then("an empty list stays empty", func(t *testcase.T) {
			act(t)

			assert.True(t, list.Get(t).IsEmpty())
		})

		s.When("list has values", func(s *testcase.Spec) {
			values := let.Var(s, func(t *testcase.T) []int {
				return random.Slice(t.Random.IntBetween(2, 10), t.Random.Int)
			})

			s.Before(func(t *testcase.T) {
				for _, v := range values.Get(t) {
					list.Get(t).PushBack(v)
				}
			})

			s.Then("the order is reversed in place", func(t *testcase.T) {
				act(t)

				expected := make([]int, 0, len(values.Get(t)))
				for i := len(values.Get(t)) - 1; 0 <= i; i-- {
					expected = append(expected, values.Get(t)[i])
				}
				assert.Equal(t, expected, list.Get(t).ToSlice())
			})

			s.Then("the front and the back trade places", func(t *testcase.T) {
				act(t)

				front, err := list.Get(t).Front()
				assert.NoError(t, err)
				assert.Equal(t, values.Get(t)[len(values.Get(t))-1], front)

				back, err := list.Get(t).Back()
				assert.NoError(t, err)
				assert.Equal(t, values.Get(t)[0], back)
			})

			s.Then("reversing twice restores the original order", func(t *testcase.T) {
				act(t)
				act(t)

				assert.Equal(t, values.Get(t), list.Get(t).ToSlice())
			})

			s.Then("the back keeps accepting appends after a reverse", func(t *testcase.T) {
				act(t)

				v := t.Random.Int()
				list.Get(t).PushBack(v)

				back, err := list.Get(t).Back()
				assert.NoError(t, err)
				assert.Equal(t, v, back)
			})
		})
	})

	s.Describe("#Find", func(s *testcase.Spec) {
		values := let.Var(s, func(t *testcase.T) []int {
			return random.Slice(t.Random.IntBetween(3, 7), t.Random.Int, random.UniqueValues)
		})

		s.Before(func(t *testcase.T) {
			for _, v := range values.Get(t) {
				list.Get(t).PushBack(v)
			}
		})

		s.Then("a present value is found at its index", func(t *testcase.T) {
			index := t.Random.IntN(len(values.Get(t)))

			assert.Equal(t, index, list.Get(t).Find(values.Get(t)[index], compare.Numbers[int]))
			assert.True(t, list.Get(t).Contains(values.Get(t)[index], compare.Numbers[int]))
		})

		s.Then("an absent value yields the not found sentinel", func(t *testcase.T) {
			absent := random.Unique(t.Random.Int, values.Get(t)...)

			assert.Equal(t, -1, list.Get(t).Find(absent, compare.Numbers[int]))
			assert.False(t, list.Get(t).Contains(absent, compare.Numbers[int]))
		})
	})

	s.Describe("#Copy", func(s *testcase.Spec) {
		s.Then("mutating the copy leaves the original untouched", func(t *testcase.T) {
			var (
				sub    = list.Get(t)
				values = random.Slice(t.Random.IntBetween(3, 7), t.Random.Int)
			)
			for _, v := range values {
				sub.PushBack(v)
			}

			dup := sub.Copy()
			assert.Equal(t, sub.ToSlice(), dup.ToSlice())

			assert.NoError(t, dup.Set(0, values[0]+1))
			dup.PushBack(t.Random.Int())

			assert.Equal(t, values, sub.ToSlice())
		})
	})

	s.Describe("#Swap", func(s *testcase.Spec) {
		s.Then("the contents of the two lists are exchanged", func(t *testcase.T) {
			var (
				a       = containerkit.NewSinglyList[int]()
				b       = containerkit.NewSinglyList[int]()
				aValues = random.Slice(3, t.Random.Int)
				bValues = random.Slice(7, t.Random.Int)
			)
			for _, v := range aValues {
				a.PushBack(v)
			}
			for _, v := range bValues {
				b.PushBack(v)
			}

			assert.NoError(t, a.Swap(b))

			assert.Equal(t, bValues, a.ToSlice())
			assert.Equal(t, aValues, b.ToSlice())
		})

		s.Then("a nil list is invalid input", func(t *testcase.T) {
			assert.ErrorIs(t, list.Get(t).Swap(nil), containerkit.ErrInvalidInput)
		})
	})

	t.Run("implements Sequence", containerkitcontract.Sequence(func(tb testing.TB) containerkit.Sequence[int] {
		return containerkit.NewSinglyList[int]()
	}, containerkitcontract.Config[int]{
		MakeElem: func(tb testing.TB) int {
			return testcase.ToT(&tb).Random.Int()
		},
	}).Test)
}

func TestSinglyIterator(t *testing.T) {
	s := testcase.NewSpec(t)

	values := let.Var(s, func(t *testcase.T) []int {
		return random.Slice(t.Random.IntBetween(3, 7), t.Random.Int, random.UniqueValues)
	})

	list := let.Var(s, func(t *testcase.T) *containerkit.SinglyList[int] {
		l := containerkit.NewSinglyList[int]()
		for _, v := range values.Get(t) {
			l.PushBack(v)
		}
		return l
	})

	s.Test("the cursor walks the list front to back", func(t *testcase.T) {
		var got []int
		for it := list.Get(t).Iterator(); it.HasNext(); {
			assert.True(t, it.Next())
			got = append(got, it.Value())
		}
		assert.Equal(t, values.Get(t), got)
	})

	s.Test("Next reports exhaustion instead of yielding further", func(t *testcase.T) {
		it := list.Get(t).Iterator()
		for it.HasNext() {
			it.Next()
		}
		assert.False(t, it.Next())
	})

	s.Test("an empty list yields an exhausted cursor", func(t *testcase.T) {
		it := containerkit.NewSinglyList[int]().Iterator()

		assert.False(t, it.HasNext())
		assert.False(t, it.Next())
	})

	s.Describe("#Remove", func(s *testcase.Spec) {
		s.Then("removing without a yielded element is invalid input", func(t *testcase.T) {
			it := list.Get(t).Iterator()

			assert.ErrorIs(t, it.Remove(), containerkit.ErrInvalidInput)
		})

		s.Then("it deletes the element the last Next yielded", func(t *testcase.T) {
			it := list.Get(t).Iterator()
			assert.True(t, it.Next())
			removed := it.Value()

			assert.NoError(t, it.Remove())

			assert.Equal(t, values.Get(t)[1:], list.Get(t).ToSlice())
			assert.False(t, list.Get(t).Contains(removed, compare.Numbers[int]))
		})

		s.Then("the cursor continues with the removed element's successor", func(t *testcase.T) {
			it := list.Get(t).Iterator()
			assert.True(t, it.Next())
			assert.NoError(t, it.Remove())

			assert.True(t, it.Next())
			assert.Equal(t, values.Get(t)[1], it.Value())
		})

		s.Then("removing twice after a single yield is invalid input", func(t *testcase.T) {
			it := list.Get(t).Iterator()
			assert.True(t, it.Next())

			assert.NoError(t, it.Remove())
			assert.ErrorIs(t, it.Remove(), containerkit.ErrInvalidInput)
		})

		s.Then("a yield and remove loop drains the whole list", func(t *testcase.T) {
			var got []int
			for it := list.Get(t).Iterator(); it.HasNext(); {
				assert.True(t, it.Next())
				got = append(got, it.Value())
				assert.NoError(t, it.Remove())
			}

			assert.Equal(t, values.Get(t), got)
			assert.True(t, list.Get(t).IsEmpty())
		})

		s.Then("removing mid walk keeps the remaining order intact", func(t *testcase.T) {
			it := list.Get(t).Iterator()
			assert.True(t, it.Next())
			assert.True(t, it.Next())

			assert.NoError(t, it.Remove())

			expected := append([]int{values.Get(t)[0]}, values.Get(t)[2:]...)
			assert.Equal(t, expected, list.Get(t).ToSlice())
		})
	})
}
