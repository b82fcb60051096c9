// Package containerkit provides generic in-memory containers:
// a dynamic array (Vector), singly and doubly linked lists,
// and stack/queue/deque adapters built on top of them.
//
// All containers store elements by value, own their backing memory
// exclusively, and report failures as error values from the package's
// error taxonomy. None of them is safe for concurrent use;
// synchronisation is the caller's responsibility.
package containerkit

import "iter"

// Sizer is implemented by every container in this package.
type Sizer interface {
	Len() int
	IsEmpty() bool
}

type Iterable[T any] interface {
	Iter() iter.Seq[T]
}

type Slicer[T any] interface {
	ToSlice() []T
}

// List is the minimal ordered collection capability.
type List[T any] interface {
	PushBack(v T)
	Clear()
	Iterable[T]
	Sizer
}

// Sequence is an ordered collection with index based random access.
// Vector, SinglyList and DoublyList all satisfy it with their own
// complexity profiles.
type Sequence[T any] interface {
	List[T]
	Get(index int) (T, error)
	Set(index int, v T) error
	Insert(index int, v T) error
	Remove(index int) error
}

// Container is the shared capability of the stack and queue adapters:
// push, pop and peek against a single end discipline.
// Callers pick a concrete variant at construction
// or write code generically against this interface.
type Container[T any] interface {
	Push(v T)
	Pop() (T, error)
	Peek() (T, error)
	Sizer
}
