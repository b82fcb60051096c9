package containerkit

// Error is an implementation of the error interface
// that allows declaring the package's error values with the `const` keyword.
//
//	const ErrEmptyContainer containerkit.Error = "container is empty"
//
// Const errors are comparable, so callers can match them with errors.Is.
type Error string

// Error implements the error interface.
func (err Error) Error() string { return string(err) }

const (
	// ErrInvalidInput is returned when an operation receives an argument
	// it cannot work with, such as a nil node handle, a nil callback,
	// a negative capacity, or an iterator removal without a pending yield.
	ErrInvalidInput Error = "invalid input parameters"
	// ErrMemoryAllocation is part of the status taxonomy for API parity.
	// The Go runtime aborts on allocation failure instead of reporting it,
	// so no operation in this package ever returns it.
	ErrMemoryAllocation Error = "memory allocation failed"
	// ErrIndexOutOfBounds is returned when an index falls outside the
	// container's valid range. Insert treats index == Len() as a valid append.
	ErrIndexOutOfBounds Error = "index out of bounds"
	// ErrEmptyContainer is returned by pop and peek style operations
	// when the container holds no elements.
	ErrEmptyContainer Error = "container is empty"
	// ErrNotFound is reserved for search APIs that report absence as an error.
	// Find returns the -1 sentinel instead, so nothing returns it today.
	ErrNotFound Error = "element not found"
	// ErrFullContainer is reserved for bounded containers.
	// Every container in this package grows on demand, so nothing returns it.
	ErrFullContainer Error = "container is full"
)
