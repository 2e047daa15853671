package outcome

import (
	"fmt"

	"github.com/ib-77/rail/pkg/rail"
)

type Outcome struct {
	err       *rail.Error
	isSuccess bool
}

func Success() Outcome {
	return Outcome{isSuccess: true}
}

func Fail(err *rail.Error) Outcome {
	if err == nil {
		err = rail.DefaultError()
	}
	return Outcome{err: err}
}

// Of bridges a plain Go error: nil becomes Success, a *rail.Error is
// carried unchanged, anything else is converted via rail.Normalize.
func Of(err error) Outcome {
	if e := rail.Normalize(err); e != nil {
		return Fail(e)
	}
	return Success()
}

func (o Outcome) IsSuccess() bool {
	return o.isSuccess
}

func (o Outcome) IsFail() bool {
	return !o.isSuccess
}

// Err returns the carried error and faults with ErrInvalidState when
// called on a success.
func (o Outcome) Err() *rail.Error {
	rail.GuardState(o.IsFail(), "Err called on a success outcome")
	return o.errOrDefault()
}

func (o Outcome) TryGetErr() (*rail.Error, bool) {
	if o.IsFail() {
		return o.errOrDefault(), true
	}
	return nil, false
}

func (o Outcome) Tee(onSuccess func()) Outcome {
	rail.GuardFunc("onSuccess", onSuccess)

	if o.isSuccess {
		onSuccess()
	}
	return o
}

func (o Outcome) TeeFail(onFail func(err *rail.Error)) Outcome {
	rail.GuardFunc("onFail", onFail)

	if o.IsFail() {
		onFail(o.errOrDefault())
	}
	return o
}

// Ensure runs whichever side effect matches the state; nil branches are
// skipped. The outcome is returned unchanged.
func (o Outcome) Ensure(onSuccess func(), onFail func(err *rail.Error)) Outcome {
	if o.isSuccess {
		if onSuccess != nil {
			onSuccess()
		}
	} else if onFail != nil {
		onFail(o.errOrDefault())
	}
	return o
}

// AndAlso evaluates next only when the receiver is a success and adopts
// its state; a failed receiver short-circuits unchanged.
func (o Outcome) AndAlso(next func() Outcome) Outcome {
	rail.GuardFunc("next", next)

	if o.IsFail() {
		return o
	}
	return next()
}

// AndAlsoWith is AndAlso with a projection applied to whichever error
// ends the chain, the receiver's or the one produced by next.
func (o Outcome) AndAlsoWith(next func() Outcome, remap func(err *rail.Error) *rail.Error) Outcome {
	rail.GuardFunc("next", next)
	rail.GuardFunc("remap", remap)

	if o.IsFail() {
		return Fail(remap(o.errOrDefault()))
	}
	n := next()
	if n.IsFail() {
		return Fail(remap(n.errOrDefault()))
	}
	return n
}

// Join evaluates stages left to right and stops at the first failure;
// stages after it are never invoked. No stages yields Success.
func Join(stages ...func() Outcome) Outcome {
	for i, stage := range stages {
		if stage == nil {
			panic(fmt.Errorf("%w: stages[%d]", rail.ErrNilArgument, i))
		}
	}

	out := Success()
	for _, stage := range stages {
		out = stage()
		if out.IsFail() {
			return out
		}
	}
	return out
}

// Match reduces the outcome to a value of type R via the handler
// matching the state.
func Match[R any](o Outcome, onSuccess func() R, onFail func(err *rail.Error) R) R {
	rail.GuardFunc("onSuccess", onSuccess)
	rail.GuardFunc("onFail", onFail)

	if o.isSuccess {
		return onSuccess()
	}
	return onFail(o.errOrDefault())
}

func (o Outcome) Equal(other Outcome) bool {
	if o.isSuccess != other.isSuccess {
		return false
	}
	if o.isSuccess {
		return true
	}
	return o.errOrDefault().Equal(other.errOrDefault())
}

func (o Outcome) String() string {
	if o.isSuccess {
		return "Success"
	}
	return fmt.Sprintf("Fail(%s)", o.errOrDefault().String())
}

func (o Outcome) errOrDefault() *rail.Error {
	if o.err != nil {
		return o.err
	}
	return rail.DefaultError()
}
