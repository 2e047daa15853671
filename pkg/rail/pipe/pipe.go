package pipe

import "context"

// ToChan lifts a single value into a channel that honors ctx.
func ToChan[T any](ctx context.Context, value T) <-chan T {
	return ToChanMany(ctx, []T{value})
}

// ToChanMany feeds the items into a channel in order, stopping early
// once ctx is done.
func ToChanMany[T any](ctx context.Context, items []T) <-chan T {
	out := make(chan T)

	go func() {
		defer close(out)

		if ctx.Err() != nil {
			return
		}

		for _, v := range items {
			if ctx.Err() != nil {
				return
			}

			select {
			case out <- v:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// FromChanMany collects every value until the channel closes or ctx is
// done, preserving arrival order.
func FromChanMany[T any](ctx context.Context, in <-chan T) []T {
	res := make([]T, 0)

	if ctx.Err() != nil {
		return res
	}

	for {
		select {
		case v, ok := <-in:
			if !ok {
				return res
			}
			res = append(res, v)
		case <-ctx.Done():
			return res
		}
	}
}

// FromChanFirstOrDefault returns the first value, or fallback when the
// channel closes empty or ctx is done first.
func FromChanFirstOrDefault[T any](ctx context.Context, in <-chan T, fallback T) T {
	if ctx.Err() != nil {
		return fallback
	}

	select {
	case v, ok := <-in:
		if !ok {
			return fallback
		}
		return v
	case <-ctx.Done():
		return fallback
	}
}

// Through pumps every input through a one-shot stage, awaiting each
// stage's single value before the next input is read; order is
// preserved and stage invocations never overlap. The pump stops once
// ctx is done or either channel closes.
func Through[In, Out any](ctx context.Context, in <-chan In,
	stage func(ctx context.Context, v In) <-chan Out) <-chan Out {

	out := make(chan Out)

	go func() {
		defer close(out)

		if ctx.Err() != nil {
			return
		}

		for {
			select {
			case <-ctx.Done():
				return
			case v, ok := <-in:
				if !ok {
					return
				}

				res, running := <-stage(ctx, v)
				if !running {
					return
				}

				select {
				case out <- res:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}
