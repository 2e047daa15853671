package rail

import "sync"

const (
	defaultMessage = "An error occurred."
	defaultTitle   = "Error"
)

var (
	defaultError = sync.OnceValue(func() *Error { return NewError(defaultMessage) })
	noValueError = sync.OnceValue(func() *Error { return NewError("No value was provided.") })
	noneError    = sync.OnceValue(func() *Error { return NewError("No value was present.") })
)

// DefaultError returns the process-wide error substituted wherever a
// failure carries no explicit error. The same instance is returned on
// every call.
func DefaultError() *Error {
	return defaultError()
}

// NoValueError returns the standard error for a missing value, used by
// the nullable-to-result conversions. The same instance is returned on
// every call.
func NoValueError() *Error {
	return noValueError()
}

// NoneError returns the standard error substituted when an absent
// optional is forced into a failure. The same instance is returned on
// every call.
func NoneError() *Error {
	return noneError()
}
