package containerkit

import (
	"iter"

	"go.llib.dev/containerkit/compare"
)

// SinglyList is a forward linked list with head and tail tracking.
//
// Pushing to either end and popping the front are O(1);
// popping the back and any index based operation walk the chain
// from the head. The zero value is an empty, ready to use list.
type SinglyList[T any] struct {
	head *singlyNode[T]
	tail *singlyNode[T]
	size int
}

type singlyNode[T any] struct {
	data T
	next *singlyNode[T]
}

var _ Sequence[any] = (*SinglyList[any])(nil)

// NewSinglyList returns an empty list.
func NewSinglyList[T any]() *SinglyList[T] {
	return &SinglyList[T]{}
}

// Len returns the number of elements in the list.
func (l *SinglyList[T]) Len() int { return l.size }

// IsEmpty reports whether the list holds no elements.
func (l *SinglyList[T]) IsEmpty() bool { return l.size == 0 }

// PushFront prepends an element in O(1).
func (l *SinglyList[T]) PushFront(val T) {
	node := &singlyNode[T]{data: val, next: l.head}
	l.head = node
	if l.tail == nil {
		l.tail = node
	}
	l.size++
}

// PushBack appends an element in O(1) through the tail pointer.
func (l *SinglyList[T]) PushBack(val T) {
	node := &singlyNode[T]{data: val}
	if l.tail == nil {
		l.head = node
		l.tail = node
	} else {
		l.tail.next = node
		l.tail = node
	}
	l.size++
}

// PopFront removes and returns the first element in O(1).
func (l *SinglyList[T]) PopFront() (T, error) {
	var zero T
	if l.head == nil {
		return zero, ErrEmptyContainer
	}
	node := l.head
	l.head = node.next
	if l.head == nil {
		l.tail = nil
	}
	l.size--
	node.next = nil
	return node.data, nil
}

// PopBack removes and returns the last element.
// O(n): without back links the node before the tail
// must be found by walking from the head.
func (l *SinglyList[T]) PopBack() (T, error) {
	var zero T
	if l.head == nil {
		return zero, ErrEmptyContainer
	}
	if l.head == l.tail {
		return l.PopFront()
	}
	walk := l.head
	for walk.next != l.tail {
		walk = walk.next
	}
	val := l.tail.data
	walk.next = nil
	l.tail = walk
	l.size--
	return val, nil
}

// Insert places an element at the given index.
// Index 0 and index == Len() take the O(1) push paths;
// anything else walks to the predecessor node first.
func (l *SinglyList[T]) Insert(index int, val T) error {
	if index < 0 || index > l.size {
		return ErrIndexOutOfBounds
	}
	switch index {
	case 0:
		l.PushFront(val)
	case l.size:
		l.PushBack(val)
	default:
		prev := l.nodeAt(index - 1)
		prev.next = &singlyNode[T]{data: val, next: prev.next}
		l.size++
	}
	return nil
}

// Remove deletes the element at the given index.
// Index 0 degenerates to PopFront.
func (l *SinglyList[T]) Remove(index int) error {
	if index < 0 || index >= l.size {
		return ErrIndexOutOfBounds
	}
	if index == 0 {
		_, err := l.PopFront()
		return err
	}
	prev := l.nodeAt(index - 1)
	node := prev.next
	prev.next = node.next
	if node == l.tail {
		l.tail = prev
	}
	node.next = nil
	l.size--
	return nil
}

// Get returns a copy of the element at the given index. O(n).
func (l *SinglyList[T]) Get(index int) (T, error) {
	var zero T
	if index < 0 || index >= l.size {
		return zero, ErrIndexOutOfBounds
	}
	return l.nodeAt(index).data, nil
}

// Set overwrites the element at the given index. O(n).
func (l *SinglyList[T]) Set(index int, val T) error {
	if index < 0 || index >= l.size {
		return ErrIndexOutOfBounds
	}
	l.nodeAt(index).data = val
	return nil
}

// Update gives blk scoped access to the element stored at the given index.
// The pointer is valid only for the duration of the call.
func (l *SinglyList[T]) Update(index int, blk func(*T)) error {
	if blk == nil {
		return ErrInvalidInput
	}
	if index < 0 || index >= l.size {
		return ErrIndexOutOfBounds
	}
	blk(&l.nodeAt(index).data)
	return nil
}

// Front returns a copy of the first element in O(1).
func (l *SinglyList[T]) Front() (T, error) {
	var zero T
	if l.head == nil {
		return zero, ErrEmptyContainer
	}
	return l.head.data, nil
}

// Back returns a copy of the last element in O(1) through the tail pointer.
func (l *SinglyList[T]) Back() (T, error) {
	var zero T
	if l.tail == nil {
		return zero, ErrEmptyContainer
	}
	return l.tail.data, nil
}

// Find returns the index of the first element that compares equal
// to val, or -1 when there is no such element. A nil cmp finds nothing.
func (l *SinglyList[T]) Find(val T, cmp compare.Func[T]) int {
	if cmp == nil {
		return -1
	}
	index := 0
	for walk := l.head; walk != nil; walk = walk.next {
		if compare.IsEqual(cmp(walk.data, val)) {
			return index
		}
		index++
	}
	return -1
}

// Contains reports whether the list holds an element
// that compares equal to val.
func (l *SinglyList[T]) Contains(val T, cmp compare.Func[T]) bool {
	return l.Find(val, cmp) != -1
}

// Reverse turns the list around in place in a single pass,
// rewriting every link and swapping head with tail.
func (l *SinglyList[T]) Reverse() {
	var prev *singlyNode[T]
	walk := l.head
	l.tail = l.head
	for walk != nil {
		next := walk.next
		walk.next = prev
		prev = walk
		walk = next
	}
	l.head = prev
}

// Clear drops every element. The garbage collector reclaims the nodes.
func (l *SinglyList[T]) Clear() {
	l.head = nil
	l.tail = nil
	l.size = 0
}

// Copy returns a deep copy with the same element sequence.
func (l *SinglyList[T]) Copy() *SinglyList[T] {
	dup := NewSinglyList[T]()
	for walk := l.head; walk != nil; walk = walk.next {
		dup.PushBack(walk.data)
	}
	return dup
}

// Swap exchanges the contents of the two lists in O(1)
// without copying any element.
func (l *SinglyList[T]) Swap(oth *SinglyList[T]) error {
	if oth == nil {
		return ErrInvalidInput
	}
	l.head, oth.head = oth.head, l.head
	l.tail, oth.tail = oth.tail, l.tail
	l.size, oth.size = oth.size, l.size
	return nil
}

// Iter iterates over the elements from head to tail.
// The list must not be mutated during the iteration.
func (l *SinglyList[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for walk := l.head; walk != nil; walk = walk.next {
			if !yield(walk.data) {
				return
			}
		}
	}
}

// ToSlice returns a copied snapshot of the elements from head to tail.
func (l *SinglyList[T]) ToSlice() []T {
	var vs []T
	for walk := l.head; walk != nil; walk = walk.next {
		vs = append(vs, walk.data)
	}
	return vs
}

// nodeAt walks to the node at the given index.
// The index must be valid.
func (l *SinglyList[T]) nodeAt(index int) *singlyNode[T] {
	walk := l.head
	for i := 0; i < index; i++ {
		walk = walk.next
	}
	return walk
}

// Iterator returns a forward cursor standing on the first element.
//
// The cursor is single pass: mutating the list through anything other
// than the cursor's own Remove invalidates it.
func (l *SinglyList[T]) Iterator() *SinglyIterator[T] {
	return &SinglyIterator[T]{list: l, current: l.head}
}

// SinglyIterator is a forward cursor over a SinglyList.
type SinglyIterator[T any] struct {
	list     *SinglyList[T]
	current  *singlyNode[T]
	position int
	value    T
	yielded  bool
}

// HasNext reports whether Next would yield an element.
func (it *SinglyIterator[T]) HasNext() bool { return it.current != nil }

// Next yields the element the cursor stands on and steps forward.
// It returns false when the cursor is exhausted.
func (it *SinglyIterator[T]) Next() bool {
	if it.current == nil {
		return false
	}
	it.value = it.current.data
	it.current = it.current.next
	it.position++
	it.yielded = true
	return true
}

// Value returns the element most recently yielded by Next.
func (it *SinglyIterator[T]) Value() T { return it.value }

// Remove deletes the element most recently yielded by Next.
// It fails with ErrInvalidInput unless an element was yielded since the
// cursor was created or since the previous removal.
//
// O(n): a forward only chain keeps no predecessor link, so the removal
// delegates to the list's index based Remove, which re-walks from the
// head. This cost is part of the contract; use DoublyList when cursor
// removal has to be O(1).
func (it *SinglyIterator[T]) Remove() error {
	if !it.yielded || it.position == 0 {
		return ErrInvalidInput
	}
	if err := it.list.Remove(it.position - 1); err != nil {
		return err
	}
	it.position--
	it.yielded = false
	return nil
}
