package rail

import "testing"

func TestGuardFunc(t *testing.T) {
	t.Parallel()

	expectFault(t, ErrNilArgument, func() {
		GuardFunc("onSuccess", nil)
	})

	var fn func() int
	expectFault(t, ErrNilArgument, func() {
		GuardFunc("onSuccess", fn)
	})

	GuardFunc("onSuccess", func() {}) // non-nil passes
}

func TestGuardValue(t *testing.T) {
	t.Parallel()

	expectFault(t, ErrNilArgument, func() {
		GuardValue("fallback", nil)
	})

	var p *int
	expectFault(t, ErrNilArgument, func() {
		GuardValue("fallback", p)
	})

	GuardValue("fallback", 0)
	GuardValue("fallback", "")
}

func TestGuardResult(t *testing.T) {
	t.Parallel()

	expectFault(t, ErrNilResult, func() {
		GuardResult("mapped value", nil)
	})

	GuardResult("mapped value", 1)
}

func TestGuardState(t *testing.T) {
	t.Parallel()

	expectFault(t, ErrInvalidState, func() {
		GuardState(false, "Err called on a success")
	})

	GuardState(true, "ok")
}

func TestIsNil(t *testing.T) {
	t.Parallel()

	var p *int
	var m map[string]int
	var s []int
	var fn func()
	var ch chan int

	for i, v := range []any{nil, p, m, s, fn, ch} {
		if !IsNil(v) {
			t.Fatalf("case %d: expected nil, got non-nil", i)
		}
	}

	for i, v := range []any{0, "", false, struct{}{}, &struct{}{}, []int{}, map[string]int{}} {
		if IsNil(v) {
			t.Fatalf("case %d: expected non-nil, got nil", i)
		}
	}
}

func TestSharedErrorsAreStable(t *testing.T) {
	t.Parallel()

	if DefaultError() != DefaultError() {
		t.Fatalf("expected the same default error instance on every call")
	}
	if NoValueError() != NoValueError() {
		t.Fatalf("expected the same no-value error instance on every call")
	}
	if NoneError() != NoneError() {
		t.Fatalf("expected the same none error instance on every call")
	}

	if DefaultError() == NoValueError() || DefaultError() == NoneError() || NoValueError() == NoneError() {
		t.Fatalf("expected three distinct shared errors")
	}

	if DefaultError().Message() != "An error occurred." {
		t.Fatalf("unexpected default message %q", DefaultError().Message())
	}
	if NoValueError().Message() != "No value was provided." {
		t.Fatalf("unexpected no-value message %q", NoValueError().Message())
	}
	if NoneError().Message() != "No value was present." {
		t.Fatalf("unexpected none message %q", NoneError().Message())
	}
}
