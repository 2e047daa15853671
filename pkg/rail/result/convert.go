package result

import (
	"github.com/ib-77/rail/pkg/rail"
	"github.com/ib-77/rail/pkg/rail/maybe"
	"github.com/ib-77/rail/pkg/rail/outcome"
)

// Truncate discards the value, keeping only the success/fail split. A
// failure keeps the same error instance.
func (r Result[T]) Truncate() outcome.Outcome {
	if r.isSuccess {
		return outcome.Success()
	}
	return outcome.Fail(r.errOrDefault())
}

// ToMaybe widens the result into the optional type: Success becomes
// Some, Fail stays Fail with the same error instance. Nothing maps to
// None; a result has no notion of legitimate absence.
func (r Result[T]) ToMaybe() maybe.Maybe[T] {
	if r.isSuccess {
		return maybe.Some(r.value)
	}
	return maybe.Fail[T](r.errOrDefault())
}

// FromMaybe narrows a maybe into the result type: Some becomes
// Success, Fail stays Fail with the same error instance, and None
// becomes a failure carrying the shared no-value error.
func FromMaybe[T any](m maybe.Maybe[T]) Result[T] {
	if v, ok := m.TryGetValue(); ok {
		return Result[T]{value: v, isSuccess: true}
	}
	if err, ok := m.TryGetErr(); ok {
		return Fail[T](err)
	}
	return Fail[T](rail.NoValueError())
}

// Turnout chains a maybe onto the valued track: a Some feeds transform
// and its result is adopted, a Fail crosses over with the same error
// instance, and a None becomes a failure carrying the shared none
// error. The transform never runs on None or Fail.
func Turnout[In, Out any](m maybe.Maybe[In], transform func(v In) Result[Out]) Result[Out] {
	rail.GuardFunc("transform", transform)

	if v, ok := m.TryGetValue(); ok {
		return transform(v)
	}
	if err, ok := m.TryGetErr(); ok {
		return Fail[Out](err)
	}
	return Fail[Out](rail.NoneError())
}

// Branch chains a result onto the optional track: a Success feeds
// transform and its maybe is adopted, None included; a Fail crosses
// over with the same error instance. The transform never runs on Fail.
func Branch[In, Out any](r Result[In], transform func(v In) maybe.Maybe[Out]) maybe.Maybe[Out] {
	rail.GuardFunc("transform", transform)

	if !r.isSuccess {
		return maybe.Fail[Out](r.errOrDefault())
	}
	return transform(r.value)
}
