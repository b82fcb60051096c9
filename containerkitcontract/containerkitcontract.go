package containerkitcontract

import (
	"testing"

	"go.llib.dev/testcase"
)

// Make func meant to create a new instance of the testing subject.
type Make[Subject any] = func(tb testing.TB) Subject

// Contract represents the expected behavior of a capability interface.
//
// Expectations a consumer has towards a container capability are defined
// once here, and every implementation can be verified against them,
// including implementations living outside this module.
type Contract interface {
	testcase.Suite
	// Test asserts the expected behavioral requirements on an implementation.
	Test(*testing.T)
	// Benchmark measures the aspects the contract considers performance relevant.
	Benchmark(*testing.B)
}

// Option configures the contracts of this package.
type Option[T any] interface {
	// Configure will configure an option.
	Configure(*Config[T])
}

// Config holds the shared configuration of the contracts.
type Config[T any] struct {
	// MakeElem creates a random element value for the container under test.
	//
	// Every contract of this package needs one; there is no default.
	MakeElem func(tb testing.TB) T
}

var _ Option[any] = Config[any]{}

func (c Config[T]) Configure(o *Config[T]) {
	if c.MakeElem != nil {
		o.MakeElem = c.MakeElem
	}
}

func (c Config[T]) makeElem(tb testing.TB) T {
	if c.MakeElem == nil {
		panic("containerkitcontract: Config.MakeElem is required")
	}
	return c.MakeElem(tb)
}

func toConfig[T any](opts []Option[T]) Config[T] {
	var c Config[T]
	for _, opt := range opts {
		opt.Configure(&c)
	}
	return c
}
