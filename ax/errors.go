package ax

import (
	"errors"
	"fmt"
)

// Code is a native AXError status code as returned by the accessibility API.
type Code int32

// AXError status codes from HIServices/AXError.h.
const (
	CodeSuccess                           Code = 0
	CodeFailure                           Code = -25200
	CodeIllegalArgument                   Code = -25201
	CodeInvalidUIElement                  Code = -25202
	CodeInvalidUIElementObserver          Code = -25203
	CodeCannotComplete                    Code = -25204
	CodeAttributeUnsupported              Code = -25205
	CodeActionUnsupported                 Code = -25206
	CodeNotificationUnsupported           Code = -25207
	CodeNotImplemented                    Code = -25208
	CodeNotificationAlreadyRegistered     Code = -25209
	CodeNotificationNotRegistered         Code = -25210
	CodeAPIDisabled                       Code = -25211
	CodeNoValue                           Code = -25212
	CodeParameterizedAttributeUnsupported Code = -25213
	CodeNotEnoughPrecision                Code = -25214
)

// Kind classifies an accessibility failure.
type Kind int

const (
	KindUnknown Kind = iota
	KindFailure
	KindIllegalArgument
	KindInvalidElement
	KindCannotComplete
	KindUnsupported
	KindNotImplemented
	KindAPIDisabled
	KindNoValue
)

var kindNames = map[Kind]string{
	KindUnknown:         "unknown",
	KindFailure:         "failure",
	KindIllegalArgument: "illegal argument",
	KindInvalidElement:  "invalid element",
	KindCannotComplete:  "cannot complete",
	KindUnsupported:     "unsupported",
	KindNotImplemented:  "not implemented",
	KindAPIDisabled:     "api disabled",
	KindNoValue:         "no value",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// codeKinds is matched exactly; codes missing here map to KindUnknown.
var codeKinds = map[Code]Kind{
	CodeFailure:                           KindFailure,
	CodeIllegalArgument:                   KindIllegalArgument,
	CodeInvalidUIElement:                  KindInvalidElement,
	CodeCannotComplete:                    KindCannotComplete,
	CodeAttributeUnsupported:              KindUnsupported,
	CodeActionUnsupported:                 KindUnsupported,
	CodeParameterizedAttributeUnsupported: KindUnsupported,
	CodeNotImplemented:                    KindNotImplemented,
	CodeAPIDisabled:                       KindAPIDisabled,
	CodeNoValue:                           KindNoValue,
}

// Error is a failure reported by the accessibility API. Use errors.As to catch
// any accessibility failure and errors.Is against the Err* sentinels to catch
// one kind.
type Error struct {
	Kind    Kind
	Code    Code // zero when the error did not originate from a native call
	Message string
}

func (e *Error) Error() string {
	if e.Code != CodeSuccess {
		return fmt.Sprintf("ax: %s (AX error %d)", e.Message, int32(e.Code))
	}
	return fmt.Sprintf("ax: %s", e.Message)
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is. They carry no code.
var (
	ErrUnknown         = &Error{Kind: KindUnknown, Message: "unknown error"}
	ErrFailure         = &Error{Kind: KindFailure, Message: "failure"}
	ErrIllegalArgument = &Error{Kind: KindIllegalArgument, Message: "illegal argument"}
	ErrInvalidElement  = &Error{Kind: KindInvalidElement, Message: "invalid UI element"}
	ErrCannotComplete  = &Error{Kind: KindCannotComplete, Message: "cannot complete"}
	ErrUnsupported     = &Error{Kind: KindUnsupported, Message: "unsupported"}
	ErrNotImplemented  = &Error{Kind: KindNotImplemented, Message: "not implemented"}
	ErrAPIDisabled     = &Error{Kind: KindAPIDisabled, Message: "accessibility API disabled"}
	ErrNoValue         = &Error{Kind: KindNoValue, Message: "no value"}
)

// Lookup failures. These are not accessibility errors: they mean the target
// does not exist, not that a native call failed.
var (
	ErrAttributeNotFound = errors.New("attribute not found")
	ErrAppNotFound       = errors.New("application not found")
)

// ErrorFromCode converts a native status code into an *Error, or nil for
// CodeSuccess.
func ErrorFromCode(code Code, message string) error {
	if code == CodeSuccess {
		return nil
	}
	kind, ok := codeKinds[code]
	if !ok {
		kind = KindUnknown
	}
	return &Error{Kind: kind, Code: code, Message: message}
}

// KindOf returns the kind of an accessibility error anywhere in err's chain.
func KindOf(err error) (Kind, bool) {
	var axErr *Error
	if errors.As(err, &axErr) {
		return axErr.Kind, true
	}
	return KindUnknown, false
}

func newError(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
