package classifier

import "fmt"

// ErrorKind discriminates classification failures for callers and for the
// HTTP boundary's status mapping.
type ErrorKind string

const (
	// KindInvalidInput marks an empty or too-short snippet. Never retried.
	KindInvalidInput ErrorKind = "InvalidInput"

	// KindClassificationFailed marks a model-call or internal failure. The
	// original cause is preserved as the wrapped error.
	KindClassificationFailed ErrorKind = "ClassificationFailed"
)

// Error is the result-type replacement for exception flow control: every
// failure carries an explicit kind plus the underlying cause.
type Error struct {
	Kind  ErrorKind
	msg   string
	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.cause)
	}
	return e.msg
}

func (e *Error) Unwrap() error { return e.cause }

func invalidInput(msg string) *Error {
	return &Error{Kind: KindInvalidInput, msg: msg}
}

func classificationFailed(msg string, cause error) *Error {
	return &Error{Kind: KindClassificationFailed, msg: msg, cause: cause}
}
