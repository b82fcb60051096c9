package containerkit

import (
	"iter"

	"go.llib.dev/containerkit/compare"
)

// DefaultCapacity is the slot count a Vector starts with
// when no explicit capacity was requested.
const DefaultCapacity = 16

// Vector is a contiguous growable sequence.
//
// Indexed access is O(1), pushing to the back is amortised O(1),
// and inserting or removing anywhere else shifts the elements after
// the index by one slot. Capacity is managed exactly: growth multiplies
// it by 1.5, Reserve and ShrinkToFit reallocate to the requested amount,
// and nothing else changes it. The zero value is an empty vector
// with capacity 0 whose first growth lands on DefaultCapacity.
type Vector[T any] struct {
	buf  []T // len(buf) is the capacity
	size int
}

var _ Sequence[any] = (*Vector[any])(nil)

// NewVector returns an empty vector with DefaultCapacity slots preallocated.
func NewVector[T any]() *Vector[T] {
	return &Vector[T]{buf: make([]T, DefaultCapacity)}
}

// NewVectorWithCapacity returns an empty vector
// with exactly the given number of slots preallocated.
func NewVectorWithCapacity[T any](capacity int) (*Vector[T], error) {
	if capacity < 0 {
		return nil, ErrInvalidInput
	}
	return &Vector[T]{buf: make([]T, capacity)}, nil
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int { return v.size }

// IsEmpty reports whether the vector holds no elements.
func (v *Vector[T]) IsEmpty() bool { return v.size == 0 }

// Capacity returns the number of allocated slots.
func (v *Vector[T]) Capacity() int { return len(v.buf) }

// PushBack appends an element to the end of the vector,
// growing the buffer when it is full. Amortised O(1).
func (v *Vector[T]) PushBack(val T) {
	if v.size == len(v.buf) {
		v.grow()
	}
	v.buf[v.size] = val
	v.size++
}

// PopBack removes and returns the last element.
// The capacity is left unchanged.
func (v *Vector[T]) PopBack() (T, error) {
	var zero T
	if v.size == 0 {
		return zero, ErrEmptyContainer
	}
	v.size--
	val := v.buf[v.size]
	v.buf[v.size] = zero
	return val, nil
}

// Insert places an element at the given index and shifts everything
// from that index onwards one slot to the right.
// Index == Len() is a valid append.
func (v *Vector[T]) Insert(index int, val T) error {
	if index < 0 || index > v.size {
		return ErrIndexOutOfBounds
	}
	if v.size == len(v.buf) {
		v.grow()
	}
	copy(v.buf[index+1:v.size+1], v.buf[index:v.size])
	v.buf[index] = val
	v.size++
	return nil
}

// Remove deletes the element at the given index and shifts everything
// after it one slot to the left. Removing the last index degenerates
// to PopBack.
func (v *Vector[T]) Remove(index int) error {
	if index < 0 || index >= v.size {
		return ErrIndexOutOfBounds
	}
	if index == v.size-1 {
		_, err := v.PopBack()
		return err
	}
	copy(v.buf[index:v.size-1], v.buf[index+1:v.size])
	v.size--
	var zero T
	v.buf[v.size] = zero
	return nil
}

// Get returns a copy of the element at the given index.
func (v *Vector[T]) Get(index int) (T, error) {
	var zero T
	if index < 0 || index >= v.size {
		return zero, ErrIndexOutOfBounds
	}
	return v.buf[index], nil
}

// Set overwrites the element at the given index.
func (v *Vector[T]) Set(index int, val T) error {
	if index < 0 || index >= v.size {
		return ErrIndexOutOfBounds
	}
	v.buf[index] = val
	return nil
}

// Update gives blk scoped access to the element stored at the given index.
// The pointer is valid only for the duration of the call;
// retaining it past any mutating operation is a contract violation,
// since growth reallocates the buffer.
func (v *Vector[T]) Update(index int, blk func(*T)) error {
	if blk == nil {
		return ErrInvalidInput
	}
	if index < 0 || index >= v.size {
		return ErrIndexOutOfBounds
	}
	blk(&v.buf[index])
	return nil
}

// Front returns a copy of the first element.
func (v *Vector[T]) Front() (T, error) {
	var zero T
	if v.size == 0 {
		return zero, ErrEmptyContainer
	}
	return v.buf[0], nil
}

// Back returns a copy of the last element.
func (v *Vector[T]) Back() (T, error) {
	var zero T
	if v.size == 0 {
		return zero, ErrEmptyContainer
	}
	return v.buf[v.size-1], nil
}

// Find returns the index of the first element that compares equal
// to val, or -1 when there is no such element. A nil cmp finds nothing.
func (v *Vector[T]) Find(val T, cmp compare.Func[T]) int {
	if cmp == nil {
		return -1
	}
	for i := 0; i < v.size; i++ {
		if compare.IsEqual(cmp(v.buf[i], val)) {
			return i
		}
	}
	return -1
}

// Contains reports whether the vector holds an element
// that compares equal to val.
func (v *Vector[T]) Contains(val T, cmp compare.Func[T]) bool {
	return v.Find(val, cmp) != -1
}

// Reserve grows the capacity to exactly n slots.
// It is a no-op when the capacity is already at least n.
func (v *Vector[T]) Reserve(n int) error {
	if n < 0 {
		return ErrInvalidInput
	}
	if n <= len(v.buf) {
		return nil
	}
	v.realloc(n)
	return nil
}

// ShrinkToFit reallocates the buffer to exactly Len() slots.
// An empty vector releases its buffer and reports capacity 0.
func (v *Vector[T]) ShrinkToFit() {
	if v.size == 0 {
		v.buf = nil
		return
	}
	if v.size == len(v.buf) {
		return
	}
	v.realloc(v.size)
}

// Clear removes every element. The capacity is left unchanged.
func (v *Vector[T]) Clear() {
	var zero T
	for i := 0; i < v.size; i++ {
		v.buf[i] = zero
	}
	v.size = 0
}

// Copy returns a deep copy with the same elements and the same capacity.
func (v *Vector[T]) Copy() *Vector[T] {
	dup := &Vector[T]{buf: make([]T, len(v.buf)), size: v.size}
	copy(dup.buf, v.buf[:v.size])
	return dup
}

// Swap exchanges the contents of the two vectors in O(1)
// without copying any element.
func (v *Vector[T]) Swap(oth *Vector[T]) error {
	if oth == nil {
		return ErrInvalidInput
	}
	v.buf, oth.buf = oth.buf, v.buf
	v.size, oth.size = oth.size, v.size
	return nil
}

// Iter iterates over the live elements in index order.
// The vector must not be mutated during the iteration.
func (v *Vector[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.buf[i]) {
				return
			}
		}
	}
}

// ToSlice returns a copied snapshot of the live elements.
func (v *Vector[T]) ToSlice() []T {
	return append([]T(nil), v.buf[:v.size]...)
}

func (v *Vector[T]) grow() {
	newCapacity := len(v.buf) * 3 / 2
	if newCapacity < DefaultCapacity {
		newCapacity = DefaultCapacity
	}
	if newCapacity <= len(v.buf) {
		newCapacity = len(v.buf) + 1
	}
	v.realloc(newCapacity)
}

func (v *Vector[T]) realloc(capacity int) {
	buf := make([]T, capacity)
	copy(buf, v.buf[:v.size])
	v.buf = buf
}
