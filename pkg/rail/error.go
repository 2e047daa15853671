package rail

import (
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/google/uuid"
)

// Error is an immutable description of a failure. It carries a message,
// an optional stack trace, an optional numeric code, an optional
// identifier, a title and an optional inner cause. Instances travel
// through the outcome types by pointer, so propagation keeps the same
// instance rather than copying it.
type Error struct {
	message    string
	stackTrace string
	code       int
	identifier string
	title      string
	inner      *Error
}

// ErrorOption configures an Error under construction.
type ErrorOption func(*Error)

// NewError builds an Error from a message and options. An empty message
// reads back as the default message.
func NewError(message string, opts ...ErrorOption) *Error {
	e := &Error{message: message}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

// WithCode sets the numeric error code (zero means unset).
func WithCode(code int) ErrorOption {
	return func(e *Error) { e.code = code }
}

// WithIdentifier sets the correlation identifier.
func WithIdentifier(id string) ErrorOption {
	return func(e *Error) { e.identifier = id }
}

// WithGeneratedIdentifier stamps a fresh uuid as the identifier.
func WithGeneratedIdentifier() ErrorOption {
	return func(e *Error) { e.identifier = uuid.NewString() }
}

// WithTitle sets the title tag (empty reads back as "Error").
func WithTitle(title string) ErrorOption {
	return func(e *Error) { e.title = title }
}

// WithInner attaches the causing Error. Chains are singly linked; the
// caller must not introduce cycles.
func WithInner(inner *Error) ErrorOption {
	return func(e *Error) { e.inner = inner }
}

// WithStackTrace sets a caller-supplied stack trace verbatim.
func WithStackTrace(stackTrace string) ErrorOption {
	return func(e *Error) { e.stackTrace = stackTrace }
}

// stackTracer is satisfied by errors that expose a textual stack trace.
type stackTracer interface {
	StackTrace() string
}

// FromErr converts a plain Go error into an Error. The message becomes
// "<message>\n<type>: <err text>" when message is non-empty, else
// "<type>: <err text>". A stack trace exposed by the source error is
// copied verbatim; remaining fields pass through opts. A nil err is a
// fault.
func FromErr(err error, message string, opts ...ErrorOption) *Error {
	GuardValue("err", err)

	msg := fmt.Sprintf("%T: %s", err, err.Error())
	if message != "" {
		msg = message + "\n" + msg
	}

	e := &Error{message: msg}
	if st, ok := err.(stackTracer); ok {
		e.stackTrace = st.StackTrace()
	}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

// Normalize coerces a plain Go error into an Error. Nil stays nil, an
// *Error passes through unchanged, anything else goes through FromErr.
func Normalize(err error) *Error {
	if IsNil(err) {
		return nil
	}
	if e, ok := err.(*Error); ok {
		return e
	}
	return FromErr(err, "")
}

// Message returns the message, substituting the default message when unset.
func (e *Error) Message() string {
	if e == nil || e.message == "" {
		return defaultMessage
	}
	return e.message
}

// StackTrace returns the stack trace, empty when none was captured.
func (e *Error) StackTrace() string {
	if e == nil {
		return ""
	}
	return e.stackTrace
}

// Code returns the numeric code, zero when unset.
func (e *Error) Code() int {
	if e == nil {
		return 0
	}
	return e.code
}

// Identifier returns the correlation identifier, empty when unset.
func (e *Error) Identifier() string {
	if e == nil {
		return ""
	}
	return e.identifier
}

// Title returns the title tag, "Error" when unset.
func (e *Error) Title() string {
	if e == nil || e.title == "" {
		return defaultTitle
	}
	return e.title
}

// Inner returns the causing Error, nil when this is the root cause.
func (e *Error) Inner() *Error {
	if e == nil {
		return nil
	}
	return e.inner
}

// Error implements the error interface with the message alone; use
// String for the rendered cause chain.
func (e *Error) Error() string {
	return e.Message()
}

// String renders the message followed by the messages of the cause chain.
func (e *Error) String() string {
	if e == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(e.Message())
	for cause := e.inner; cause != nil; cause = cause.inner {
		b.WriteString(": ")
		b.WriteString(cause.Message())
	}
	return b.String()
}

// Unwrap exposes the inner cause to errors.Is and errors.As.
func (e *Error) Unwrap() error {
	if e == nil || e.inner == nil {
		return nil
	}
	return e.inner
}

// Equal reports structural equality over all fields, recursing through
// the inner chain. Unset messages and titles compare as their defaults.
func (e *Error) Equal(other *Error) bool {
	if e == other {
		return true
	}
	if e == nil || other == nil {
		return false
	}
	if e.Message() != other.Message() ||
		e.stackTrace != other.stackTrace ||
		e.code != other.code ||
		e.identifier != other.identifier ||
		e.Title() != other.Title() {
		return false
	}
	return e.inner.Equal(other.inner)
}

// Hash folds all fields, inner chain included, into an FNV-1a sum.
// Errors that are Equal hash identically.
func (e *Error) Hash() uint64 {
	if e == nil {
		return 0
	}
	h := fnv.New64a()
	for _, s := range []string{e.Message(), e.stackTrace, e.identifier, e.Title()} {
		h.Write([]byte(s))
		h.Write([]byte{0})
	}
	var code [8]byte
	for i := 0; i < 8; i++ {
		code[i] = byte(e.code >> (8 * i))
	}
	h.Write(code[:])

	sum := h.Sum64()
	if e.inner != nil {
		sum = sum*31 + e.inner.Hash()
	}
	return sum
}
