package containerkit

import (
	"iter"

	"go.llib.dev/containerkit/compare"
)

// Node is an opaque handle to an element stored in a DoublyList.
//
// Handles enable O(1) positional splicing (InsertBefore, InsertAfter,
// RemoveNode) without exposing raw links. A handle stays valid until
// the element it names is removed; passing a node that belongs to a
// different list is a contract violation with undefined behaviour.
type Node[T any] struct {
	data T
	prev *Node[T]
	next *Node[T]
}

// Value returns a copy of the element the handle names.
func (n *Node[T]) Value() T { return n.data }

// SetValue overwrites the element the handle names.
func (n *Node[T]) SetValue(val T) { n.data = val }

// Next returns the handle of the successor element, or nil at the tail.
func (n *Node[T]) Next() *Node[T] { return n.next }

// Prev returns the handle of the predecessor element, or nil at the head.
func (n *Node[T]) Prev() *Node[T] { return n.prev }

// DoublyList is a linked list with both forward and backward links.
//
// Both ends support O(1) push and pop. Index based operations walk
// from whichever end is closer to the target index, halving the
// worst case traversal of the singly list without changing any
// observable result. The zero value is an empty, ready to use list.
type DoublyList[T any] struct {
	head *Node[T]
	tail *Node[T]
	size int
}

var _ Sequence[any] = (*DoublyList[any])(nil)

// NewDoublyList returns an empty list.
func NewDoublyList[T any]() *DoublyList[T] {
	return &DoublyList[T]{}
}

// Len returns the number of elements in the list.
func (l *DoublyList[T]) Len() int { return l.size }

// IsEmpty reports whether the list holds no elements.
func (l *DoublyList[T]) IsEmpty() bool { return l.size == 0 }

// PushFront prepends an element in O(1).
func (l *DoublyList[T]) PushFront(val T) {
	node := &Node[T]{data: val, next: l.head}
	if l.head != nil {
		l.head.prev = node
	} else {
		l.tail = node
	}
	l.head = node
	l.size++
}

// PushBack appends an element in O(1).
func (l *DoublyList[T]) PushBack(val T) {
	node := &Node[T]{data: val, prev: l.tail}
	if l.tail != nil {
		l.tail.next = node
	} else {
		l.head = node
	}
	l.tail = node
	l.size++
}

// PopFront removes and returns the first element in O(1).
func (l *DoublyList[T]) PopFront() (T, error) {
	var zero T
	if l.head == nil {
		return zero, ErrEmptyContainer
	}
	return l.unlink(l.head), nil
}

// PopBack removes and returns the last element in O(1)
// through the tail's back link.
func (l *DoublyList[T]) PopBack() (T, error) {
	var zero T
	if l.tail == nil {
		return zero, ErrEmptyContainer
	}
	return l.unlink(l.tail), nil
}

// Insert places an element at the given index.
// Index 0 and index == Len() take the O(1) push paths; anything else
// walks to the index from the nearest end and splices in front of it.
func (l *DoublyList[T]) Insert(index int, val T) error {
	if index < 0 || index > l.size {
		return ErrIndexOutOfBounds
	}
	switch index {
	case 0:
		l.PushFront(val)
	case l.size:
		l.PushBack(val)
	default:
		l.insertBefore(l.nodeAt(index), val)
	}
	return nil
}

// Remove deletes the element at the given index,
// walking to it from the nearest end.
func (l *DoublyList[T]) Remove(index int) error {
	if index < 0 || index >= l.size {
		return ErrIndexOutOfBounds
	}
	l.unlink(l.nodeAt(index))
	return nil
}

// Get returns a copy of the element at the given index.
// O(n/2) worst case thanks to the nearest end walk.
func (l *DoublyList[T]) Get(index int) (T, error) {
	var zero T
	if index < 0 || index >= l.size {
		return zero, ErrIndexOutOfBounds
	}
	return l.nodeAt(index).data, nil
}

// Set overwrites the element at the given index.
func (l *DoublyList[T]) Set(index int, val T) error {
	if index < 0 || index >= l.size {
		return ErrIndexOutOfBounds
	}
	l.nodeAt(index).data = val
	return nil
}

// Update gives blk scoped access to the element stored at the given index.
// The pointer is valid only for the duration of the call.
func (l *DoublyList[T]) Update(index int, blk func(*T)) error {
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
func (l *DoublyList[T]) Front() (T, error) {
	var zero T
	if l.head == nil {
		return zero, ErrEmptyContainer
	}
	return l.head.data, nil
}

// Back returns a copy of the last element in O(1).
func (l *DoublyList[T]) Back() (T, error) {
	var zero T
	if l.tail == nil {
		return zero, ErrEmptyContainer
	}
	return l.tail.data, nil
}

// FrontNode returns the handle of the first element, or nil on an empty list.
func (l *DoublyList[T]) FrontNode() *Node[T] { return l.head }

// BackNode returns the handle of the last element, or nil on an empty list.
func (l *DoublyList[T]) BackNode() *Node[T] { return l.tail }

// NodeAt returns the handle of the element at the given index,
// or nil when the index is out of range.
func (l *DoublyList[T]) NodeAt(index int) *Node[T] {
	if index < 0 || index >= l.size {
		return nil
	}
	return l.nodeAt(index)
}

// InsertBefore splices a new element in front of the given node in O(1)
// and returns its handle.
func (l *DoublyList[T]) InsertBefore(node *Node[T], val T) (*Node[T], error) {
	if node == nil {
		return nil, ErrInvalidInput
	}
	return l.insertBefore(node, val), nil
}

// InsertAfter splices a new element behind the given node in O(1)
// and returns its handle.
func (l *DoublyList[T]) InsertAfter(node *Node[T], val T) (*Node[T], error) {
	if node == nil {
		return nil, ErrInvalidInput
	}
	return l.insertAfter(node, val), nil
}

// RemoveNode unlinks the element the handle names in O(1)
// and returns its value. The handle is dead afterwards.
func (l *DoublyList[T]) RemoveNode(node *Node[T]) (T, error) {
	var zero T
	if node == nil {
		return zero, ErrInvalidInput
	}
	return l.unlink(node), nil
}

// Find returns the index of the first element that compares equal
// to val, or -1 when there is no such element. A nil cmp finds nothing.
func (l *DoublyList[T]) Find(val T, cmp compare.Func[T]) int {
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
func (l *DoublyList[T]) Contains(val T, cmp compare.Func[T]) bool {
	return l.Find(val, cmp) != -1
}

// Reverse turns the list around in place by flipping every node's
// links and swapping head with tail.
func (l *DoublyList[T]) Reverse() {
	for walk := l.head; walk != nil; walk = walk.prev {
		walk.prev, walk.next = walk.next, walk.prev
	}
	l.head, l.tail = l.tail, l.head
}

// Clear drops every element. The garbage collector reclaims the nodes.
func (l *DoublyList[T]) Clear() {
	l.head = nil
	l.tail = nil
	l.size = 0
}

// Copy returns a deep copy with the same element sequence.
func (l *DoublyList[T]) Copy() *DoublyList[T] {
	dup := NewDoublyList[T]()
	for walk := l.head; walk != nil; walk = walk.next {
		dup.PushBack(walk.data)
	}
	return dup
}

// Swap exchanges the contents of the two lists in O(1)
// without copying any element.
func (l *DoublyList[T]) Swap(oth *DoublyList[T]) error {
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
func (l *DoublyList[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for walk := l.head; walk != nil; walk = walk.next {
			if !yield(walk.data) {
				return
			}
		}
	}
}

// ToSlice returns a copied snapshot of the elements from head to tail.
func (l *DoublyList[T]) ToSlice() []T {
	var vs []T
	for walk := l.head; walk != nil; walk = walk.next {
		vs = append(vs, walk.data)
	}
	return vs
}

// nodeAt walks to the node at the given index from the nearest end.
// The index must be valid.
func (l *DoublyList[T]) nodeAt(index int) *Node[T] {
	if index < l.size/2 {
		walk := l.head
		for i := 0; i < index; i++ {
			walk = walk.next
		}
		return walk
	}
	walk := l.tail
	for i := l.size - 1; i > index; i-- {
		walk = walk.prev
	}
	return walk
}

func (l *DoublyList[T]) insertBefore(at *Node[T], val T) *Node[T] {
	node := &Node[T]{data: val, prev: at.prev, next: at}
	if at.prev != nil {
		at.prev.next = node
	} else {
		l.head = node
	}
	at.prev = node
	l.size++
	return node
}

func (l *DoublyList[T]) insertAfter(at *Node[T], val T) *Node[T] {
	node := &Node[T]{data: val, prev: at, next: at.next}
	if at.next != nil {
		at.next.prev = node
	} else {
		l.tail = node
	}
	at.next = node
	l.size++
	return node
}

func (l *DoublyList[T]) unlink(node *Node[T]) T {
	if node.prev != nil {
		node.prev.next = node.next
	} else {
		l.head = node.next
	}
	if node.next != nil {
		node.next.prev = node.prev
	} else {
		l.tail = node.prev
	}
	node.prev = nil
	node.next = nil
	l.size--
	return node.data
}

// Iterator returns a bidirectional cursor standing on the first element.
//
// The cursor is single pass: mutating the list through anything other
// than the cursor's own Remove invalidates it.
func (l *DoublyList[T]) Iterator() *DoublyIterator[T] {
	return &DoublyIterator[T]{list: l, current: l.head}
}

// ReverseIterator returns a bidirectional cursor standing on the last
// element, for walking the list tail to head with Prev.
func (l *DoublyList[T]) ReverseIterator() *DoublyIterator[T] {
	return &DoublyIterator[T]{list: l, current: l.tail, position: l.size - 1}
}

// DoublyIterator is a bidirectional cursor over a DoublyList.
//
// Next and Prev both yield the element the cursor stands on; they only
// differ in which direction the cursor moves afterwards. Once the
// cursor stands on a node, the same position is reachable in both
// directions, so HasNext and HasPrev agree until it runs off an end.
type DoublyIterator[T any] struct {
	list        *DoublyList[T]
	current     *Node[T]
	position    int
	value       T
	lastYielded *Node[T]
	forward     bool
}

// HasNext reports whether Next would yield an element.
func (it *DoublyIterator[T]) HasNext() bool { return it.current != nil }

// HasPrev reports whether Prev would yield an element.
func (it *DoublyIterator[T]) HasPrev() bool { return it.current != nil }

// Next yields the element the cursor stands on and steps towards the tail.
// It returns false when the cursor ran off an end.
func (it *DoublyIterator[T]) Next() bool {
	if it.current == nil {
		return false
	}
	it.value = it.current.data
	it.lastYielded = it.current
	it.forward = true
	it.current = it.current.next
	it.position++
	return true
}

// Prev yields the element the cursor stands on and steps towards the head.
// It returns false when the cursor ran off an end.
func (it *DoublyIterator[T]) Prev() bool {
	if it.current == nil {
		return false
	}
	it.value = it.current.data
	it.lastYielded = it.current
	it.forward = false
	it.current = it.current.prev
	it.position--
	return true
}

// Value returns the element most recently yielded by Next or Prev.
func (it *DoublyIterator[T]) Value() T { return it.value }

// Remove deletes the element most recently yielded by Next or Prev
// in O(1), splicing through the node's own links without re-walking
// the list. When iterating forward, the cursor afterwards yields the
// removed element's former successor.
//
// It fails with ErrInvalidInput unless an element was yielded since
// the cursor was created or since the previous removal.
func (it *DoublyIterator[T]) Remove() error {
	if it.lastYielded == nil {
		return ErrInvalidInput
	}
	it.list.unlink(it.lastYielded)
	it.lastYielded = nil
	if it.forward {
		it.position--
	}
	return nil
}
