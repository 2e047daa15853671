package rail

import (
	"errors"
	"fmt"
)

// Fault sentinels. Programmer misuse of the algebra is not modeled as a
// Fail outcome; it panics with an error wrapping one of these, so tests
// and recovery sites can classify the fault with errors.Is.
var (
	// ErrInvalidState marks a raw accessor used against the wrong state,
	// such as reading the error of a success.
	ErrInvalidState = errors.New("rail: invalid state access")

	// ErrNilArgument marks a nil delegate or nil required value handed to
	// a combinator. Raised before any evaluation begins.
	ErrNilArgument = errors.New("rail: nil argument")

	// ErrNilResult marks a delegate that ran to completion but produced a
	// nil value where the contract forbids one.
	ErrNilResult = errors.New("rail: nil result")
)

// GuardFunc panics with ErrNilArgument when the delegate fn is nil.
func GuardFunc(name string, fn any) {
	if IsNil(fn) {
		panic(fmt.Errorf("%w: %s", ErrNilArgument, name))
	}
}

// GuardValue panics with ErrNilArgument when the required value v is nil.
func GuardValue(name string, v any) {
	if IsNil(v) {
		panic(fmt.Errorf("%w: %s", ErrNilArgument, name))
	}
}

// GuardResult panics with ErrNilResult when a delegate-produced value is nil.
func GuardResult(name string, v any) {
	if IsNil(v) {
		panic(fmt.Errorf("%w: %s", ErrNilResult, name))
	}
}

// GuardState panics with ErrInvalidState unless ok holds.
func GuardState(ok bool, access string) {
	if !ok {
		panic(fmt.Errorf("%w: %s", ErrInvalidState, access))
	}
}
