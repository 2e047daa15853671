package result

import (
	"fmt"
	"reflect"

	"github.com/ib-77/rail/pkg/rail"
	"github.com/ib-77/rail/pkg/rail/outcome"
)

type Result[T any] struct {
	value     T
	err       *rail.Error
	isSuccess bool
}

// Success wraps a present value. A nil value is a fault; use Wrap when
// nil should read as a missing-value failure.
func Success[T any](value T) Result[T] {
	rail.GuardValue("value", value)
	return Result[T]{value: value, isSuccess: true}
}

func Fail[T any](err *rail.Error) Result[T] {
	if err == nil {
		err = rail.DefaultError()
	}
	return Result[T]{err: err}
}

// Wrap converts a possibly-nil value: nil becomes a failure carrying
// the shared no-value error. It never faults.
func Wrap[T any](value T) Result[T] {
	if rail.IsNil(value) {
		return Fail[T](rail.NoValueError())
	}
	return Result[T]{value: value, isSuccess: true}
}

// FromPtr converts a pointer: nil becomes a failure carrying the shared
// no-value error, otherwise the pointee is wrapped. It never faults.
func FromPtr[T any](p *T) Result[T] {
	if p == nil {
		return Fail[T](rail.NoValueError())
	}
	return Wrap(*p)
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFail() bool {
	return !r.isSuccess
}

// Value returns the success value and faults with ErrInvalidState on a
// failure.
func (r Result[T]) Value() T {
	rail.GuardState(r.isSuccess, "Value called on a fail result")
	return r.value
}

// Err returns the carried error and faults with ErrInvalidState on a
// success.
func (r Result[T]) Err() *rail.Error {
	rail.GuardState(r.IsFail(), "Err called on a success result")
	return r.errOrDefault()
}

func (r Result[T]) TryGetValue() (T, bool) {
	if r.isSuccess {
		return r.value, true
	}
	var zero T
	return zero, false
}

func (r Result[T]) TryGetErr() (*rail.Error, bool) {
	if r.IsFail() {
		return r.errOrDefault(), true
	}
	return nil, false
}

// Or substitutes fallback for a failure; a success passes through. The
// fallback is validated up front regardless of state.
func (r Result[T]) Or(fallback T) Result[T] {
	rail.GuardValue("fallback", fallback)

	if r.isSuccess {
		return r
	}
	return Result[T]{value: fallback, isSuccess: true}
}

// OrElse is the lazy Or: fallback runs only for a failure and must
// produce a non-nil value.
func (r Result[T]) OrElse(fallback func() T) Result[T] {
	rail.GuardFunc("fallback", fallback)

	if r.isSuccess {
		return r
	}
	v := fallback()
	rail.GuardResult("fallback value", v)
	return Result[T]{value: v, isSuccess: true}
}

func (r Result[T]) Tee(onSuccess func(v T)) Result[T] {
	rail.GuardFunc("onSuccess", onSuccess)

	if r.isSuccess {
		onSuccess(r.value)
	}
	return r
}

func (r Result[T]) TeeFail(onFail func(err *rail.Error)) Result[T] {
	rail.GuardFunc("onFail", onFail)

	if r.IsFail() {
		onFail(r.errOrDefault())
	}
	return r
}

// Ensure runs whichever side effect matches the state; nil branches are
// skipped. The result is returned unchanged.
func (r Result[T]) Ensure(onSuccess func(v T), onFail func(err *rail.Error)) Result[T] {
	if r.isSuccess {
		if onSuccess != nil {
			onSuccess(r.value)
		}
	} else if onFail != nil {
		onFail(r.errOrDefault())
	}
	return r
}

// AndAlso runs a value-less check against the success value and drops
// to the failure track when the check fails; a failed receiver
// short-circuits without invoking it.
func (r Result[T]) AndAlso(next func(v T) outcome.Outcome) Result[T] {
	rail.GuardFunc("next", next)

	if !r.isSuccess {
		return r
	}
	if o := next(r.value); o.IsFail() {
		return Fail[T](o.Err())
	}
	return r
}

// AndAlsoWith is AndAlso with a projection applied to whichever error
// ends the chain, the receiver's or the one produced by next.
func (r Result[T]) AndAlsoWith(next func(v T) outcome.Outcome, remap func(err *rail.Error) *rail.Error) Result[T] {
	rail.GuardFunc("next", next)
	rail.GuardFunc("remap", remap)

	if !r.isSuccess {
		return Fail[T](remap(r.errOrDefault()))
	}
	if o := next(r.value); o.IsFail() {
		return Fail[T](remap(o.Err()))
	}
	return r
}

// Map transforms the success value; a failure passes through without
// invoking transform. A nil transformed value is a fault.
func Map[In, Out any](r Result[In], transform func(v In) Out) Result[Out] {
	rail.GuardFunc("transform", transform)

	if !r.isSuccess {
		return failFrom[In, Out](r)
	}
	out := transform(r.value)
	rail.GuardResult("transformed value", out)
	return Result[Out]{value: out, isSuccess: true}
}

// Switch chains a transform producing a Result of its own and adopts
// its state directly; a failure passes through without invoking it.
func Switch[In, Out any](r Result[In], transform func(v In) Result[Out]) Result[Out] {
	rail.GuardFunc("transform", transform)

	if !r.isSuccess {
		return failFrom[In, Out](r)
	}
	return transform(r.value)
}

// Try chains a conventional (value, error) call: a non-nil error drops
// to the failure track via rail.Normalize, otherwise the value is
// adopted and must be non-nil.
func Try[In, Out any](r Result[In], attempt func(v In) (Out, error)) Result[Out] {
	rail.GuardFunc("attempt", attempt)

	if !r.isSuccess {
		return failFrom[In, Out](r)
	}
	out, err := attempt(r.value)
	if err != nil {
		return Fail[Out](rail.Normalize(err))
	}
	rail.GuardResult("attempted value", out)
	return Result[Out]{value: out, isSuccess: true}
}

// Match reduces the result to a value of type R via the handler
// matching the state.
func Match[In, R any](r Result[In], onSuccess func(v In) R, onFail func(err *rail.Error) R) R {
	rail.GuardFunc("onSuccess", onSuccess)
	rail.GuardFunc("onFail", onFail)

	if r.isSuccess {
		return onSuccess(r.value)
	}
	return onFail(r.errOrDefault())
}

// Flatten unwraps one nesting level, adopting the inner state.
func Flatten[T any](r Result[Result[T]]) Result[T] {
	if r.isSuccess {
		return r.value
	}
	return failFrom[Result[T], T](r)
}

func (r Result[T]) Equal(other Result[T]) bool {
	if r.isSuccess != other.isSuccess {
		return false
	}
	if r.isSuccess {
		return reflect.DeepEqual(r.value, other.value)
	}
	return r.errOrDefault().Equal(other.errOrDefault())
}

func (r Result[T]) String() string {
	if r.isSuccess {
		return fmt.Sprintf("Success(%v)", r.value)
	}
	return fmt.Sprintf("Fail(%s)", r.errOrDefault().String())
}

func (r Result[T]) errOrDefault() *rail.Error {
	if r.err != nil {
		return r.err
	}
	return rail.DefaultError()
}

// failFrom carries a failure across value types, preserving the error
// instance (and the zero value's lazy default).
func failFrom[In, Out any](r Result[In]) Result[Out] {
	return Result[Out]{err: r.err}
}
