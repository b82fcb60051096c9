// Package compare defines the three-way comparison contract
// the containerkit search operations are built on.
package compare

import (
	"bytes"
	"strings"

	"golang.org/x/exp/constraints"
)

// Func is a three-way comparator.
//
// It returns:
//   - -1 if a  < b;
//   -  0 if a == b;
//   - +1 if a  > b.
type Func[T any] func(a, b T) int

// Interface defines how comparison can be implemented on a type itself.
//
// Example usage:
//
//	type MyNumber int
//
//	func (m MyNumber) Compare(other MyNumber) int {
//		if m < other {
//			return -1
//		}
//		if other < m {
//			return +1
//		}
//		return 0
//	}
type Interface[T any] interface {
	// Compare returns:
	//   -1 if receiver is less than the argument,
	//    0 if they're equal, and
	//   +1 if receiver is greater.
	//
	// Implementors must ensure consistent ordering semantics.
	Compare(T) int
}

// ByInterface adapts a type's own Compare method into a Func.
func ByInterface[T Interface[T]]() Func[T] {
	return func(a, b T) int { return a.Compare(b) }
}

// IsEqual reports whether two values are equal based on their comparison result.
func IsEqual(cmp int) bool {
	return cmp == 0
}

// IsLess reports whether the receiver is less than another value.
func IsLess(cmp int) bool {
	return cmp < 0
}

// IsLessOrEqual reports whether the receiver is less than or equal to another value.
func IsLessOrEqual(cmp int) bool {
	return cmp <= 0
}

// IsGreater reports whether the receiver is greater than another value.
func IsGreater(cmp int) bool {
	return 0 < cmp
}

// IsGreaterOrEqual reports whether the receiver is greater than or equal to another value.
func IsGreaterOrEqual(cmp int) bool {
	return 0 <= cmp
}

// Number is the constraint Numbers accepts.
type Number interface {
	constraints.Integer | constraints.Float
}

func Numbers[T Number](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func Strings[S ~string](a, b S) int {
	return strings.Compare(string(a), string(b))
}

// Bytes compares two byte slices lexicographically.
func Bytes(a, b []byte) int {
	return bytes.Compare(a, b)
}
