package outcome

import (
	"context"
	"fmt"

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

func Teeing(ctx context.Context, o Outcome, onSuccess func(ctx context.Context)) <-chan Outcome {
	rail.GuardFunc("onSuccess", onSuccess)

	if o.IsFail() {
		return emit(o)
	}
	return lift(func() Outcome {
		onSuccess(ctx)
		return o
	})
}

func TeeingFail(ctx context.Context, o Outcome, onFail func(ctx context.Context, err *rail.Error)) <-chan Outcome {
	rail.GuardFunc("onFail", onFail)

	if o.isSuccess {
		return emit(o)
	}
	return lift(func() Outcome {
		onFail(ctx, o.errOrDefault())
		return o
	})
}

func Ensuring(ctx context.Context, o Outcome,
	onSuccess func(ctx context.Context),
	onFail func(ctx context.Context, err *rail.Error)) <-chan Outcome {

	if o.isSuccess {
		if onSuccess == nil {
			return emit(o)
		}
		return lift(func() Outcome {
			onSuccess(ctx)
			return o
		})
	}
	if onFail == nil {
		return emit(o)
	}
	return lift(func() Outcome {
		onFail(ctx, o.errOrDefault())
		return o
	})
}

func Joining(ctx context.Context, stages ...func(ctx context.Context) Outcome) <-chan Outcome {
	for i, stage := range stages {
		if stage == nil {
			panic(fmt.Errorf("%w: stages[%d]", rail.ErrNilArgument, i))
		}
	}

	return lift(func() Outcome {
		out := Success()
		for _, stage := range stages {
			out = stage(ctx)
			if out.IsFail() {
				return out
			}
		}
		return out
	})
}

func Matching[R any](ctx context.Context, o Outcome,
	onSuccess func(ctx context.Context) R,
	onFail func(ctx context.Context, err *rail.Error) R) <-chan R {

	rail.GuardFunc("onSuccess", onSuccess)
	rail.GuardFunc("onFail", onFail)

	if o.isSuccess {
		return lift(func() R { return onSuccess(ctx) })
	}
	return lift(func() R { return onFail(ctx, o.errOrDefault()) })
}
