// Package rail contains the shared kernel of the outcome algebra: the
// immutable Error record, the process-wide standard errors, the fault
// sentinels raised on programmer misuse, and small helpers used by the
// outcome, maybe and result packages.
//
// Key pieces:
// - Error/NewError/FromErr: immutable failure descriptions with an inner cause chain
// - DefaultError/NoValueError/NoneError: lazily built, referentially stable singletons
// - ErrInvalidState/ErrNilArgument/ErrNilResult: sentinels carried by fault panics
// - GuardFunc/GuardValue/GuardResult/GuardState: fault helpers used by every combinator
// - IsNil: nil detection across pointer-like kinds
package rail
