package containerkit

import "iter"

// ArrayStack is a LIFO adapter over Vector: pushes append to the back
// of the backing buffer and pops take from it. Every operation is a
// 1:1 forward to the vector.
type ArrayStack[T any] struct {
	vec Vector[T]
}

var _ Container[any] = (*ArrayStack[any])(nil)

// NewArrayStack returns an empty stack backed by a Vector
// with DefaultCapacity slots preallocated.
func NewArrayStack[T any]() *ArrayStack[T] {
	return &ArrayStack[T]{vec: *NewVector[T]()}
}

// NewArrayStackWithCapacity returns an empty stack backed by a Vector
// with exactly the given number of slots preallocated.
func NewArrayStackWithCapacity[T any](capacity int) (*ArrayStack[T], error) {
	vec, err := NewVectorWithCapacity[T](capacity)
	if err != nil {
		return nil, err
	}
	return &ArrayStack[T]{vec: *vec}, nil
}

// Push places an element on top of the stack. Amortised O(1).
func (s *ArrayStack[T]) Push(val T) { s.vec.PushBack(val) }

// Pop removes and returns the top element.
func (s *ArrayStack[T]) Pop() (T, error) { return s.vec.PopBack() }

// Peek returns the top element without removing it.
func (s *ArrayStack[T]) Peek() (T, error) { return s.vec.Back() }

func (s *ArrayStack[T]) Len() int      { return s.vec.Len() }
func (s *ArrayStack[T]) IsEmpty() bool { return s.vec.IsEmpty() }

// Capacity returns the backing vector's allocated slot count.
func (s *ArrayStack[T]) Capacity() int { return s.vec.Capacity() }

// Reserve grows the backing vector's capacity to exactly n slots.
func (s *ArrayStack[T]) Reserve(n int) error { return s.vec.Reserve(n) }

// ShrinkToFit trims the backing vector's capacity to its size.
func (s *ArrayStack[T]) ShrinkToFit() { s.vec.ShrinkToFit() }

// Clear removes every element, keeping the backing capacity.
func (s *ArrayStack[T]) Clear() { s.vec.Clear() }

// Iter iterates the stack in storage order,
// from the bottom element to the top.
func (s *ArrayStack[T]) Iter() iter.Seq[T] { return s.vec.Iter() }

// ToSlice returns a copied snapshot in storage order, bottom first.
func (s *ArrayStack[T]) ToSlice() []T { return s.vec.ToSlice() }

// Copy returns a deep copy of the stack.
func (s *ArrayStack[T]) Copy() *ArrayStack[T] {
	return &ArrayStack[T]{vec: *s.vec.Copy()}
}

// ListStack is a LIFO adapter over SinglyList: the head of the list is
// the top of the stack, so push, pop and peek are all O(1) with no
// resizing pauses. Every operation is a 1:1 forward to the list.
type ListStack[T any] struct {
	list SinglyList[T]
}

var _ Container[any] = (*ListStack[any])(nil)

// NewListStack returns an empty stack backed by a SinglyList.
func NewListStack[T any]() *ListStack[T] {
	return &ListStack[T]{}
}

// Push places an element on top of the stack. O(1).
func (s *ListStack[T]) Push(val T) { s.list.PushFront(val) }

// Pop removes and returns the top element. O(1).
func (s *ListStack[T]) Pop() (T, error) { return s.list.PopFront() }

// Peek returns the top element without removing it. O(1).
func (s *ListStack[T]) Peek() (T, error) { return s.list.Front() }

func (s *ListStack[T]) Len() int      { return s.list.Len() }
func (s *ListStack[T]) IsEmpty() bool { return s.list.IsEmpty() }

// Clear removes every element.
func (s *ListStack[T]) Clear() { s.list.Clear() }

// Iter iterates the stack in storage order,
// from the top element to the bottom.
func (s *ListStack[T]) Iter() iter.Seq[T] { return s.list.Iter() }

// ToSlice returns a copied snapshot in storage order, top first.
func (s *ListStack[T]) ToSlice() []T { return s.list.ToSlice() }

// Copy returns a deep copy of the stack.
func (s *ListStack[T]) Copy() *ListStack[T] {
	return &ListStack[T]{list: *s.list.Copy()}
}
