package result

import (
	"context"
	"strconv"
	"testing"

	"github.com/ib-77/rail/pkg/rail"
	"github.com/ib-77/rail/pkg/rail/maybe"
	"github.com/ib-77/rail/pkg/rail/outcome"
)

func receiveOne[T any](t *testing.T, ch <-chan T) T {
	t.Helper()
	v, ok := <-ch
	if !ok {
		t.Fatalf("expected one value before close, channel was closed")
	}
	if _, again := <-ch; again {
		t.Fatalf("expected the channel to close after one value")
	}
	return v
}

func TestMappingAsync(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	r := receiveOne(t, Mapping(ctx, Success(21), func(ctx context.Context, v int) int { return v * 2 }))
	if r.Value() != 42 {
		t.Fatalf("expected 42, got %d", r.Value())
	}

	e := rail.NewError("broken")
	invoked := false
	f := receiveOne(t, Mapping(ctx, Fail[int](e), func(ctx context.Context, v int) string {
		invoked = true
		return "x"
	}))
	if invoked || f.Err() != e {
		t.Fatalf("expected the failure to pass through without invoking the transform")
	}
}

func TestMapping_NilFaultsSynchronously(t *testing.T) {
	t.Parallel()

	expectFault(t, rail.ErrNilArgument, func() {
		Mapping[int, int](context.Background(), Success(1), nil)
	})
}

func TestSwitchingAsync(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	r := receiveOne(t, Switching(ctx, Success(2), func(ctx context.Context, v int) Result[string] {
		return Success(strconv.Itoa(v))
	}))
	if r.Value() != "2" {
		t.Fatalf("expected Success(\"2\"), got %v", r)
	}
}

func TestTryingAsync(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	r := receiveOne(t, Trying(ctx, Success("21"), func(ctx context.Context, s string) (int, error) {
		return strconv.Atoi(s)
	}))
	if r.Value() != 21 {
		t.Fatalf("expected 21, got %v", r)
	}

	f := receiveOne(t, Trying(ctx, Success("nope"), func(ctx context.Context, s string) (int, error) {
		return strconv.Atoi(s)
	}))
	if !f.IsFail() {
		t.Fatalf("expected the attempt's error on the failure track")
	}
}

func TestRecoveringAsync(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	invoked := false
	r := receiveOne(t, Recovering(ctx, Success(1), func(ctx context.Context) int {
		invoked = true
		return 9
	}))
	if invoked || r.Value() != 1 {
		t.Fatalf("expected success to keep its value without invoking the fallback")
	}

	if receiveOne(t, Recovering(ctx, Fail[int](nil), func(ctx context.Context) int { return 9 })).Value() != 9 {
		t.Fatalf("expected failure to take the fallback")
	}
}

func TestTeeingForms(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	seen := 0
	receiveOne(t, Teeing(ctx, Success(5), func(ctx context.Context, v int) { seen = v }))
	if seen != 5 {
		t.Fatalf("expected the side effect to see 5, got %d", seen)
	}

	e := rail.NewError("broken")
	var seenErr *rail.Error
	receiveOne(t, TeeingFail(ctx, Fail[int](e), func(ctx context.Context, err *rail.Error) { seenErr = err }))
	if seenErr != e {
		t.Fatalf("expected the carried error instance")
	}

	var branch string
	receiveOne(t, Ensuring(ctx, Fail[int](nil),
		func(ctx context.Context, v int) { branch = "success" },
		func(ctx context.Context, err *rail.Error) { branch = "fail" }))
	if branch != "fail" {
		t.Fatalf("expected the fail branch, got %q", branch)
	}
}

func TestMatchingAsync(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	got := receiveOne(t, Matching(ctx, Success(3),
		func(ctx context.Context, v int) string { return "ok:" + strconv.Itoa(v) },
		func(ctx context.Context, err *rail.Error) string { return "fail:" + err.Message() }))
	if got != "ok:3" {
		t.Fatalf("expected 'ok:3', got %q", got)
	}

	got = receiveOne(t, Matching(ctx, Fail[int](rail.NewError("x")),
		func(ctx context.Context, v int) string { return "ok" },
		func(ctx context.Context, err *rail.Error) string { return "fail:" + err.Message() }))
	if got != "fail:x" {
		t.Fatalf("expected 'fail:x', got %q", got)
	}
}

func TestJoiningAsync(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	var order []int
	stage := func(i int, o outcome.Outcome) func(ctx context.Context, v string) outcome.Outcome {
		return func(ctx context.Context, v string) outcome.Outcome {
			order = append(order, i)
			return o
		}
	}

	e := rail.NewError("second")
	r := receiveOne(t, Joining(ctx, Success("v"),
		stage(1, outcome.Success()),
		stage(2, outcome.Fail(e)),
		stage(3, outcome.Success()),
	))

	if !r.IsFail() || r.Err() != e {
		t.Fatalf("expected the second stage's failure, got %v", r)
	}
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("expected stages [1 2] to run, got %v", order)
	}

	skipped := false
	f := receiveOne(t, Joining(ctx, Fail[string](e),
		func(ctx context.Context, v string) outcome.Outcome {
			skipped = true
			return outcome.Success()
		}))
	if skipped || f.Err() != e {
		t.Fatalf("expected a failed receiver to skip every stage")
	}
}

func TestTurnouting(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	r := receiveOne(t, Turnouting(ctx, maybe.Some("21"), func(ctx context.Context, s string) Result[int] {
		v, err := strconv.Atoi(s)
		if err != nil {
			return Fail[int](rail.FromErr(err, ""))
		}
		return Success(v)
	}))
	if r.Value() != 21 {
		t.Fatalf("expected Success(21), got %v", r)
	}

	invoked := false
	f := receiveOne(t, Turnouting(ctx, maybe.None[string](), func(ctx context.Context, s string) Result[int] {
		invoked = true
		return Success(1)
	}))
	if invoked || f.Err() != rail.NoneError() {
		t.Fatalf("expected the shared none error without invoking the transform, got %v", f)
	}
}

func TestBranching(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	m := receiveOne(t, Branching(ctx, Success(2), func(ctx context.Context, v int) maybe.Maybe[int] {
		if v%2 == 0 {
			return maybe.Some(v)
		}
		return maybe.None[int]()
	}))
	if !m.IsSome() || m.Value() != 2 {
		t.Fatalf("expected Some(2), got %v", m)
	}

	e := rail.NewError("broken")
	f := receiveOne(t, Branching(ctx, Fail[int](e), func(ctx context.Context, v int) maybe.Maybe[int] {
		t.Error("transform ran on fail")
		return maybe.None[int]()
	}))
	if !f.IsFail() || f.Err() != e {
		t.Fatalf("expected the same error instance across the branch, got %v", f)
	}
}

func TestTryForEaching_SequentialShortCircuit(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	items := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	var visited []int
	r := receiveOne(t, TryForEaching(ctx, items, func(ctx context.Context, v int) <-chan outcome.Outcome {
		ch := make(chan outcome.Outcome, 1)
		go func() {
			defer close(ch)
			visited = append(visited, v) // safe: strictly sequential awaits
			if v < 5 {
				ch <- outcome.Success()
			} else {
				ch <- outcome.Fail(nil)
			}
		}()
		return ch
	}))

	if !r.IsFail() {
		t.Fatalf("expected failure")
	}
	if len(visited) != 5 {
		t.Fatalf("expected exactly 5 visits, got %d: %v", len(visited), visited)
	}
	for i, v := range []int{1, 2, 3, 4, 5} {
		if visited[i] != v {
			t.Fatalf("expected visits [1 2 3 4 5], got %v", visited)
		}
	}
}

func TestTryForEaching_AllSuccessKeepsTheOriginalSlice(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	items := []int{1, 2, 3}

	r := receiveOne(t, TryForEachingIdx(ctx, items, func(ctx context.Context, i int, v int) <-chan outcome.Outcome {
		ch := make(chan outcome.Outcome, 1)
		ch <- outcome.Success()
		close(ch)
		return ch
	}))

	if !r.IsSuccess() {
		t.Fatalf("expected success, got %v", r)
	}
	got := r.Value()
	if &got[0] != &items[0] {
		t.Fatalf("expected the original backing array, got a copy")
	}
}

func TestTryForEaching_ClosedChannelReadsAsDefaultFailure(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	r := receiveOne(t, TryForEaching(ctx, []int{1}, func(ctx context.Context, v int) <-chan outcome.Outcome {
		ch := make(chan outcome.Outcome)
		close(ch)
		return ch
	}))

	if !r.IsFail() || r.Err() != rail.DefaultError() {
		t.Fatalf("expected the default failure for a closed visit channel, got %v", r)
	}
}
