package maybe

import (
	"fmt"
	"reflect"

	"github.com/ib-77/rail/pkg/rail"
)

type Maybe[T any] struct {
	value    T
	err      *rail.Error
	hasValue bool
	isNone   bool
}

// Some wraps a present value. A nil value is a fault; use Wrap when nil
// should read as absence.
func Some[T any](value T) Maybe[T] {
	rail.GuardValue("value", value)
	return Maybe[T]{value: value, hasValue: true}
}

func None[T any]() Maybe[T] {
	return Maybe[T]{isNone: true}
}

func Fail[T any](err *rail.Error) Maybe[T] {
	if err == nil {
		err = rail.DefaultError()
	}
	return Maybe[T]{err: err}
}

// Wrap converts a possibly-nil value: nil becomes None, anything else
// Some. It never faults.
func Wrap[T any](value T) Maybe[T] {
	if rail.IsNil(value) {
		return None[T]()
	}
	return Maybe[T]{value: value, hasValue: true}
}

// FromPtr converts a pointer: nil becomes None, otherwise the pointee
// is wrapped. It never faults.
func FromPtr[T any](p *T) Maybe[T] {
	if p == nil {
		return None[T]()
	}
	return Wrap(*p)
}

func (m Maybe[T]) IsSome() bool {
	return m.hasValue
}

func (m Maybe[T]) IsNone() bool {
	return m.isNone
}

func (m Maybe[T]) IsFail() bool {
	return !m.hasValue && !m.isNone
}

// Value returns the present value and faults with ErrInvalidState on
// None and Fail.
func (m Maybe[T]) Value() T {
	rail.GuardState(m.hasValue, "Value called on a none or fail maybe")
	return m.value
}

// Err returns the carried error and faults with ErrInvalidState on Some
// and None.
func (m Maybe[T]) Err() *rail.Error {
	rail.GuardState(m.IsFail(), "Err called on a some or none maybe")
	return m.errOrDefault()
}

func (m Maybe[T]) TryGetValue() (T, bool) {
	if m.hasValue {
		return m.value, true
	}
	var zero T
	return zero, false
}

func (m Maybe[T]) TryGetErr() (*rail.Error, bool) {
	if m.IsFail() {
		return m.errOrDefault(), true
	}
	return nil, false
}

// Filter keeps a Some whose value satisfies pred and demotes the rest
// to None; None and Fail pass through without invoking pred.
func (m Maybe[T]) Filter(pred func(v T) bool) Maybe[T] {
	rail.GuardFunc("pred", pred)

	if m.hasValue && !pred(m.value) {
		return None[T]()
	}
	return m
}

// ToNoneIf demotes a Some whose value satisfies pred to None; the
// inverse of Filter.
func (m Maybe[T]) ToNoneIf(pred func(v T) bool) Maybe[T] {
	rail.GuardFunc("pred", pred)

	if m.hasValue && pred(m.value) {
		return None[T]()
	}
	return m
}

// ToFailIfNone converts None to a failure carrying the shared none
// error; Some and Fail pass through.
func (m Maybe[T]) ToFailIfNone() Maybe[T] {
	if m.isNone {
		return Fail[T](rail.NoneError())
	}
	return m
}

// ToFailIfNoneBy converts None to a failure carrying the factory's
// error; a nil factory result falls back to the default error.
func (m Maybe[T]) ToFailIfNoneBy(factory func() *rail.Error) Maybe[T] {
	rail.GuardFunc("factory", factory)

	if m.isNone {
		return Fail[T](factory())
	}
	return m
}

// Or substitutes fallback for None and Fail; a Some passes through. The
// fallback is validated up front regardless of state.
func (m Maybe[T]) Or(fallback T) Maybe[T] {
	rail.GuardValue("fallback", fallback)

	if m.hasValue {
		return m
	}
	return Maybe[T]{value: fallback, hasValue: true}
}

// OrElse is the lazy Or: fallback runs only for None and Fail and must
// produce a non-nil value.
func (m Maybe[T]) OrElse(fallback func() T) Maybe[T] {
	rail.GuardFunc("fallback", fallback)

	if m.hasValue {
		return m
	}
	v := fallback()
	rail.GuardResult("fallback value", v)
	return Maybe[T]{value: v, hasValue: true}
}

func (m Maybe[T]) Tee(onSome func(v T)) Maybe[T] {
	rail.GuardFunc("onSome", onSome)

	if m.hasValue {
		onSome(m.value)
	}
	return m
}

func (m Maybe[T]) TeeFail(onFail func(err *rail.Error)) Maybe[T] {
	rail.GuardFunc("onFail", onFail)

	if m.IsFail() {
		onFail(m.errOrDefault())
	}
	return m
}

func (m Maybe[T]) TeeNone(onNone func()) Maybe[T] {
	rail.GuardFunc("onNone", onNone)

	if m.isNone {
		onNone()
	}
	return m
}

// Ensure runs whichever side effect matches the state; nil branches are
// skipped. The maybe is returned unchanged.
func (m Maybe[T]) Ensure(onSome func(v T), onFail func(err *rail.Error), onNone func()) Maybe[T] {
	switch {
	case m.hasValue:
		if onSome != nil {
			onSome(m.value)
		}
	case m.isNone:
		if onNone != nil {
			onNone()
		}
	default:
		if onFail != nil {
			onFail(m.errOrDefault())
		}
	}
	return m
}

// Map transforms the present value; None and Fail pass through without
// invoking transform. A nil transformed value is a fault.
func Map[In, Out any](m Maybe[In], transform func(v In) Out) Maybe[Out] {
	rail.GuardFunc("transform", transform)

	switch {
	case m.hasValue:
		out := transform(m.value)
		rail.GuardResult("transformed value", out)
		return Maybe[Out]{value: out, hasValue: true}
	case m.isNone:
		return None[Out]()
	default:
		return failFrom[In, Out](m)
	}
}

// Switch chains a transform producing a Maybe of its own and adopts its
// state directly; None and Fail pass through without invoking it.
func Switch[In, Out any](m Maybe[In], transform func(v In) Maybe[Out]) Maybe[Out] {
	rail.GuardFunc("transform", transform)

	switch {
	case m.hasValue:
		return transform(m.value)
	case m.isNone:
		return None[Out]()
	default:
		return failFrom[In, Out](m)
	}
}

// Match reduces the maybe to a value of type R via the handler matching
// the state.
func Match[In, R any](m Maybe[In], onSome func(v In) R, onFail func(err *rail.Error) R, onNone func() R) R {
	rail.GuardFunc("onSome", onSome)
	rail.GuardFunc("onFail", onFail)
	rail.GuardFunc("onNone", onNone)

	switch {
	case m.hasValue:
		return onSome(m.value)
	case m.isNone:
		return onNone()
	default:
		return onFail(m.errOrDefault())
	}
}

// Flatten unwraps one nesting level, adopting the inner state.
func Flatten[T any](m Maybe[Maybe[T]]) Maybe[T] {
	switch {
	case m.hasValue:
		return m.value
	case m.isNone:
		return None[T]()
	default:
		return failFrom[Maybe[T], T](m)
	}
}

func (m Maybe[T]) Equal(other Maybe[T]) bool {
	switch {
	case m.hasValue != other.hasValue || m.isNone != other.isNone:
		return false
	case m.hasValue:
		return reflect.DeepEqual(m.value, other.value)
	case m.isNone:
		return true
	default:
		return m.errOrDefault().Equal(other.errOrDefault())
	}
}

func (m Maybe[T]) String() string {
	switch {
	case m.hasValue:
		return fmt.Sprintf("Some(%v)", m.value)
	case m.isNone:
		return "None"
	default:
		return fmt.Sprintf("Fail(%s)", m.errOrDefault().String())
	}
}

func (m Maybe[T]) errOrDefault() *rail.Error {
	if m.err != nil {
		return m.err
	}
	return rail.DefaultError()
}

// failFrom carries a failure across value types, preserving the error
// instance (and the zero value's lazy default).
func failFrom[In, Out any](m Maybe[In]) Maybe[Out] {
	return Maybe[Out]{err: m.err}
}
