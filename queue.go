package containerkit

import "iter"

// ArrayQueue is a FIFO adapter over Vector: enqueues append to the
// back of the backing buffer, dequeues take from its front. Every
// operation is a 1:1 forward to the vector, which makes Pop O(n),
// since removing index 0 shifts the remaining elements left.
// Use ListQueue when constant time dequeue matters more than cache locality.
type ArrayQueue[T any] struct {
	vec Vector[T]
}

var _ Container[any] = (*ArrayQueue[any])(nil)

// NewArrayQueue returns an empty queue backed by a Vector
// with DefaultCapacity slots preallocated.
func NewArrayQueue[T any]() *ArrayQueue[T] {
	return &ArrayQueue[T]{vec: *NewVector[T]()}
}

// NewArrayQueueWithCapacity returns an empty queue backed by a Vector
// with exactly the given number of slots preallocated.
func NewArrayQueueWithCapacity[T any](capacity int) (*ArrayQueue[T], error) {
	vec, err := NewVectorWithCapacity[T](capacity)
	if err != nil {
		return nil, err
	}
	return &ArrayQueue[T]{vec: *vec}, nil
}

// Push places an element at the back of the queue. Amortised O(1).
func (q *ArrayQueue[T]) Push(val T) { q.vec.PushBack(val) }

// Pop removes and returns the front element. O(n), see the type doc.
func (q *ArrayQueue[T]) Pop() (T, error) {
	val, err := q.vec.Front()
	if err != nil {
		return val, err
	}
	if err := q.vec.Remove(0); err != nil {
		return val, err
	}
	return val, nil
}

// Peek returns the front element without removing it.
func (q *ArrayQueue[T]) Peek() (T, error) { return q.vec.Front() }

// Enqueue places an element at the back of the queue.
func (q *ArrayQueue[T]) Enqueue(val T) { q.Push(val) }

// Dequeue removes and returns the front element.
func (q *ArrayQueue[T]) Dequeue() (T, error) { return q.Pop() }

func (q *ArrayQueue[T]) Len() int      { return q.vec.Len() }
func (q *ArrayQueue[T]) IsEmpty() bool { return q.vec.IsEmpty() }

// Capacity returns the backing vector's allocated slot count.
func (q *ArrayQueue[T]) Capacity() int { return q.vec.Capacity() }

// Reserve grows the backing vector's capacity to exactly n slots.
func (q *ArrayQueue[T]) Reserve(n int) error { return q.vec.Reserve(n) }

// ShrinkToFit trims the backing vector's capacity to its size.
func (q *ArrayQueue[T]) ShrinkToFit() { q.vec.ShrinkToFit() }

// Clear removes every element, keeping the backing capacity.
func (q *ArrayQueue[T]) Clear() { q.vec.Clear() }

// Iter iterates the queue from front to back.
func (q *ArrayQueue[T]) Iter() iter.Seq[T] { return q.vec.Iter() }

// ToSlice returns a copied snapshot from front to back.
func (q *ArrayQueue[T]) ToSlice() []T { return q.vec.ToSlice() }

// Copy returns a deep copy of the queue.
func (q *ArrayQueue[T]) Copy() *ArrayQueue[T] {
	return &ArrayQueue[T]{vec: *q.vec.Copy()}
}

// ListQueue is a FIFO adapter over SinglyList: enqueues append through
// the tail pointer, dequeues pop the head, so both are O(1). Every
// operation is a 1:1 forward to the list.
type ListQueue[T any] struct {
	list SinglyList[T]
}

var _ Container[any] = (*ListQueue[any])(nil)

// NewListQueue returns an empty queue backed by a SinglyList.
func NewListQueue[T any]() *ListQueue[T] {
	return &ListQueue[T]{}
}

// Push places an element at the back of the queue. O(1).
func (q *ListQueue[T]) Push(val T) { q.list.PushBack(val) }

// Pop removes and returns the front element. O(1).
func (q *ListQueue[T]) Pop() (T, error) { return q.list.PopFront() }

// Peek returns the front element without removing it. O(1).
func (q *ListQueue[T]) Peek() (T, error) { return q.list.Front() }

// Enqueue places an element at the back of the queue.
func (q *ListQueue[T]) Enqueue(val T) { q.Push(val) }

// Dequeue removes and returns the front element.
func (q *ListQueue[T]) Dequeue() (T, error) { return q.Pop() }

func (q *ListQueue[T]) Len() int      { return q.list.Len() }
func (q *ListQueue[T]) IsEmpty() bool { return q.list.IsEmpty() }

// Clear removes every element.
func (q *ListQueue[T]) Clear() { q.list.Clear() }

// Iter iterates the queue from front to back.
func (q *ListQueue[T]) Iter() iter.Seq[T] { return q.list.Iter() }

// ToSlice returns a copied snapshot from front to back.
func (q *ListQueue[T]) ToSlice() []T { return q.list.ToSlice() }

// Copy returns a deep copy of the queue.
func (q *ListQueue[T]) Copy() *ListQueue[T] {
	return &ListQueue[T]{list: *q.list.Copy()}
}
