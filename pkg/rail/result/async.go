package result

import (
	"context"
	"fmt"

	"github.com/ib-77/rail/pkg/rail"
	"github.com/ib-77/rail/pkg/rail/maybe"
	"github.com/ib-77/rail/pkg/rail/outcome"
)

// Channel forms mirror the synchronous operations one to one. Delegates
// are validated and the branch is chosen on the caller's goroutine from
// the already resolved state; only the delegate itself runs behind the
// returned channel, which always delivers exactly one value and is then
// closed. The context is handed through to the delegate untouched;
// cancellation is the delegate's business, never the combinator's.

func emit[T any](v T) <-chan T {
	ch := make(chan T, 1)
	ch <- v
	close(ch)
	return ch
}

func lift[T any](produce func() T) <-chan T {
	ch := make(chan T, 1)
	go func() {
		defer close(ch)
		ch <- produce()
	}()
	return ch
}

func Mapping[In, Out any](ctx context.Context, r Result[In],
	transform func(ctx context.Context, v In) Out) <-chan Result[Out] {

	rail.GuardFunc("transform", transform)

	if !r.isSuccess {
		return emit(failFrom[In, Out](r))
	}
	return lift(func() Result[Out] {
		out := transform(ctx, r.value)
		rail.GuardResult("transformed value", out)
		return Result[Out]{value: out, isSuccess: true}
	})
}

func Switching[In, Out any](ctx context.Context, r Result[In],
	transform func(ctx context.Context, v In) Result[Out]) <-chan Result[Out] {

	rail.GuardFunc("transform", transform)

	if !r.isSuccess {
		return emit(failFrom[In, Out](r))
	}
	return lift(func() Result[Out] { return transform(ctx, r.value) })
}

func Trying[In, Out any](ctx context.Context, r Result[In],
	attempt func(ctx context.Context, v In) (Out, error)) <-chan Result[Out] {

	rail.GuardFunc("attempt", attempt)

	if !r.isSuccess {
		return emit(failFrom[In, Out](r))
	}
	return lift(func() Result[Out] {
		out, err := attempt(ctx, r.value)
		if err != nil {
			return Fail[Out](rail.Normalize(err))
		}
		rail.GuardResult("attempted value", out)
		return Result[Out]{value: out, isSuccess: true}
	})
}

// Recovering is the channel form of OrElse: the fallback runs for a
// failure and must produce a non-nil value.
func Recovering[T any](ctx context.Context, r Result[T],
	fallback func(ctx context.Context) T) <-chan Result[T] {

	rail.GuardFunc("fallback", fallback)

	if r.isSuccess {
		return emit(r)
	}
	return lift(func() Result[T] {
		v := fallback(ctx)
		rail.GuardResult("fallback value", v)
		return Result[T]{value: v, isSuccess: true}
	})
}

func Teeing[T any](ctx context.Context, r Result[T],
	onSuccess func(ctx context.Context, v T)) <-chan Result[T] {

	rail.GuardFunc("onSuccess", onSuccess)

	if !r.isSuccess {
		return emit(r)
	}
	return lift(func() Result[T] {
		onSuccess(ctx, r.value)
		return r
	})
}

func TeeingFail[T any](ctx context.Context, r Result[T],
	onFail func(ctx context.Context, err *rail.Error)) <-chan Result[T] {

	rail.GuardFunc("onFail", onFail)

	if r.isSuccess {
		return emit(r)
	}
	return lift(func() Result[T] {
		onFail(ctx, r.errOrDefault())
		return r
	})
}

func Ensuring[T any](ctx context.Context, r Result[T],
	onSuccess func(ctx context.Context, v T),
	onFail func(ctx context.Context, err *rail.Error)) <-chan Result[T] {

	if r.isSuccess {
		if onSuccess == nil {
			return emit(r)
		}
		return lift(func() Result[T] {
			onSuccess(ctx, r.value)
			return r
		})
	}
	if onFail == nil {
		return emit(r)
	}
	return lift(func() Result[T] {
		onFail(ctx, r.errOrDefault())
		return r
	})
}

func Matching[In, R any](ctx context.Context, r Result[In],
	onSuccess func(ctx context.Context, v In) R,
	onFail func(ctx context.Context, err *rail.Error) R) <-chan R {

	rail.GuardFunc("onSuccess", onSuccess)
	rail.GuardFunc("onFail", onFail)

	if r.isSuccess {
		return lift(func() R { return onSuccess(ctx, r.value) })
	}
	return lift(func() R { return onFail(ctx, r.errOrDefault()) })
}

// Joining runs value-less checks against the success value left to
// right and stops at the first failure; a failed receiver emits
// unchanged without running any stage.
func Joining[T any](ctx context.Context, r Result[T],
	stages ...func(ctx context.Context, v T) outcome.Outcome) <-chan Result[T] {

	for i, stage := range stages {
		if stage == nil {
			panic(fmt.Errorf("%w: stages[%d]", rail.ErrNilArgument, i))
		}
	}

	if !r.isSuccess {
		return emit(r)
	}
	return lift(func() Result[T] {
		for _, stage := range stages {
			if o := stage(ctx, r.value); o.IsFail() {
				return Fail[T](o.Err())
			}
		}
		return r
	})
}

func Turnouting[In, Out any](ctx context.Context, m maybe.Maybe[In],
	transform func(ctx context.Context, v In) Result[Out]) <-chan Result[Out] {

	rail.GuardFunc("transform", transform)

	if v, ok := m.TryGetValue(); ok {
		return lift(func() Result[Out] { return transform(ctx, v) })
	}
	if err, ok := m.TryGetErr(); ok {
		return emit(Fail[Out](err))
	}
	return emit(Fail[Out](rail.NoneError()))
}

func Branching[In, Out any](ctx context.Context, r Result[In],
	transform func(ctx context.Context, v In) maybe.Maybe[Out]) <-chan maybe.Maybe[Out] {

	rail.GuardFunc("transform", transform)

	if !r.isSuccess {
		return emit(maybe.Fail[Out](r.errOrDefault()))
	}
	return lift(func() maybe.Maybe[Out] { return transform(ctx, r.value) })
}

// TryForEaching awaits each element's outcome before the next element
// is visited; traversal is strictly sequential and stops at the first
// failure. A visit channel closed without a value reads as the zero
// outcome, a failure with the default error.
func TryForEaching[T any](ctx context.Context, items []T,
	visit func(ctx context.Context, item T) <-chan outcome.Outcome) <-chan Result[[]T] {

	rail.GuardFunc("visit", visit)

	return lift(func() Result[[]T] {
		for _, item := range items {
			if o := <-visit(ctx, item); o.IsFail() {
				return Fail[[]T](o.Err())
			}
		}
		return Result[[]T]{value: items, isSuccess: true}
	})
}

// TryForEachingIdx is TryForEaching with the zero-based element index
// handed to the visitor.
func TryForEachingIdx[T any](ctx context.Context, items []T,
	visit func(ctx context.Context, i int, item T) <-chan outcome.Outcome) <-chan Result[[]T] {

	rail.GuardFunc("visit", visit)

	return lift(func() Result[[]T] {
		for i, item := range items {
			if o := <-visit(ctx, i, item); o.IsFail() {
				return Fail[[]T](o.Err())
			}
		}
		return Result[[]T]{value: items, isSuccess: true}
	})
}
