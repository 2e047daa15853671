package maybe

import (
	"context"

	"github.com/ib-77/rail/pkg/rail"
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

func Mapping[In, Out any](ctx context.Context, m Maybe[In],
	transform func(ctx context.Context, v In) Out) <-chan Maybe[Out] {

	rail.GuardFunc("transform", transform)

	switch {
	case m.hasValue:
		return lift(func() Maybe[Out] {
			out := transform(ctx, m.value)
			rail.GuardResult("transformed value", out)
			return Maybe[Out]{value: out, hasValue: true}
		})
	case m.isNone:
		return emit(None[Out]())
	default:
		return emit(failFrom[In, Out](m))
	}
}

func Switching[In, Out any](ctx context.Context, m Maybe[In],
	transform func(ctx context.Context, v In) Maybe[Out]) <-chan Maybe[Out] {

	rail.GuardFunc("transform", transform)

	switch {
	case m.hasValue:
		return lift(func() Maybe[Out] { return transform(ctx, m.value) })
	case m.isNone:
		return emit(None[Out]())
	default:
		return emit(failFrom[In, Out](m))
	}
}

func Filtering[T any](ctx context.Context, m Maybe[T],
	pred func(ctx context.Context, v T) bool) <-chan Maybe[T] {

	rail.GuardFunc("pred", pred)

	if !m.hasValue {
		return emit(m)
	}
	return lift(func() Maybe[T] {
		if pred(ctx, m.value) {
			return m
		}
		return None[T]()
	})
}

// Recovering is the channel form of OrElse: the fallback runs for None
// and Fail and must produce a non-nil value.
func Recovering[T any](ctx context.Context, m Maybe[T],
	fallback func(ctx context.Context) T) <-chan Maybe[T] {

	rail.GuardFunc("fallback", fallback)

	if m.hasValue {
		return emit(m)
	}
	return lift(func() Maybe[T] {
		v := fallback(ctx)
		rail.GuardResult("fallback value", v)
		return Maybe[T]{value: v, hasValue: true}
	})
}

func Teeing[T any](ctx context.Context, m Maybe[T],
	onSome func(ctx context.Context, v T)) <-chan Maybe[T] {

	rail.GuardFunc("onSome", onSome)

	if !m.hasValue {
		return emit(m)
	}
	return lift(func() Maybe[T] {
		onSome(ctx, m.value)
		return m
	})
}

func TeeingFail[T any](ctx context.Context, m Maybe[T],
	onFail func(ctx context.Context, err *rail.Error)) <-chan Maybe[T] {

	rail.GuardFunc("onFail", onFail)

	if !m.IsFail() {
		return emit(m)
	}
	return lift(func() Maybe[T] {
		onFail(ctx, m.errOrDefault())
		return m
	})
}

func TeeingNone[T any](ctx context.Context, m Maybe[T],
	onNone func(ctx context.Context)) <-chan Maybe[T] {

	rail.GuardFunc("onNone", onNone)

	if !m.isNone {
		return emit(m)
	}
	return lift(func() Maybe[T] {
		onNone(ctx)
		return m
	})
}

func Ensuring[T any](ctx context.Context, m Maybe[T],
	onSome func(ctx context.Context, v T),
	onFail func(ctx context.Context, err *rail.Error),
	onNone func(ctx context.Context)) <-chan Maybe[T] {

	switch {
	case m.hasValue:
		if onSome == nil {
			return emit(m)
		}
		return lift(func() Maybe[T] {
			onSome(ctx, m.value)
			return m
		})
	case m.isNone:
		if onNone == nil {
			return emit(m)
		}
		return lift(func() Maybe[T] {
			onNone(ctx)
			return m
		})
	default:
		if onFail == nil {
			return emit(m)
		}
		return lift(func() Maybe[T] {
			onFail(ctx, m.errOrDefault())
			return m
		})
	}
}

func Matching[In, R any](ctx context.Context, m Maybe[In],
	onSome func(ctx context.Context, v In) R,
	onFail func(ctx context.Context, err *rail.Error) R,
	onNone func(ctx context.Context) R) <-chan R {

	rail.GuardFunc("onSome", onSome)
	rail.GuardFunc("onFail", onFail)
	rail.GuardFunc("onNone", onNone)

	switch {
	case m.hasValue:
		return lift(func() R { return onSome(ctx, m.value) })
	case m.isNone:
		return lift(func() R { return onNone(ctx) })
	default:
		return lift(func() R { return onFail(ctx, m.errOrDefault()) })
	}
}
