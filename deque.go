package containerkit

import "iter"

// Deque is a double ended adapter over DoublyList: both ends support
// O(1) push and pop, and the indexed operations inherit the list's
// nearest end traversal. Every operation is a 1:1 forward to the list.
type Deque[T any] struct {
	list DoublyList[T]
}

var _ Sequence[any] = (*Deque[any])(nil)

// NewDeque returns an empty deque backed by a DoublyList.
func NewDeque[T any]() *Deque[T] {
	return &Deque[T]{}
}

// PushFront places an element at the front. O(1).
func (d *Deque[T]) PushFront(val T) { d.list.PushFront(val) }

// PushBack places an element at the back. O(1).
func (d *Deque[T]) PushBack(val T) { d.list.PushBack(val) }

// PopFront removes and returns the front element. O(1).
func (d *Deque[T]) PopFront() (T, error) { return d.list.PopFront() }

// PopBack removes and returns the back element. O(1).
func (d *Deque[T]) PopBack() (T, error) { return d.list.PopBack() }

// Front returns the front element without removing it.
func (d *Deque[T]) Front() (T, error) { return d.list.Front() }

// Back returns the back element without removing it.
func (d *Deque[T]) Back() (T, error) { return d.list.Back() }

// Get returns a copy of the element at the given index.
func (d *Deque[T]) Get(index int) (T, error) { return d.list.Get(index) }

// Set overwrites the element at the given index.
func (d *Deque[T]) Set(index int, val T) error { return d.list.Set(index, val) }

// Insert places an element at the given index.
// Index == Len() is a valid append.
func (d *Deque[T]) Insert(index int, val T) error { return d.list.Insert(index, val) }

// Remove deletes the element at the given index.
func (d *Deque[T]) Remove(index int) error { return d.list.Remove(index) }

// Update gives blk scoped access to the element stored at the given index.
func (d *Deque[T]) Update(index int, blk func(*T)) error { return d.list.Update(index, blk) }

// Reverse turns the deque around in place.
func (d *Deque[T]) Reverse() { d.list.Reverse() }

func (d *Deque[T]) Len() int      { return d.list.Len() }
func (d *Deque[T]) IsEmpty() bool { return d.list.IsEmpty() }

// Clear removes every element.
func (d *Deque[T]) Clear() { d.list.Clear() }

// Iter iterates the deque from front to back.
func (d *Deque[T]) Iter() iter.Seq[T] { return d.list.Iter() }

// ToSlice returns a copied snapshot from front to back.
func (d *Deque[T]) ToSlice() []T { return d.list.ToSlice() }

// Copy returns a deep copy of the deque.
func (d *Deque[T]) Copy() *Deque[T] {
	return &Deque[T]{list: *d.list.Copy()}
}
