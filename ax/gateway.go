package ax

import "time"

// Gateway is the boundary to the native accessibility primitives. Each method
// issues one blocking call to the accessibility server, turns a non-zero status
// into an *Error via ErrorFromCode and otherwise returns the payload untouched.
// Conversion happens in Element, never here.
//
// Implementations must not retry. They need not be safe for concurrent use.
type Gateway interface {
	// AttributeNames lists the attributes ref supports right now. An element
	// with no attributes yields an empty slice, not an error.
	AttributeNames(ref Ref) ([]string, error)

	// ActionNames lists the actions ref supports right now.
	ActionNames(ref Ref) ([]string, error)

	// AttributeValue reads one attribute. An attribute that exists but holds
	// nothing fails with ErrNoValue.
	AttributeValue(ref Ref, name string) (Raw, error)

	// IsAttributeSettable reports whether name can be written in ref's
	// current state.
	IsAttributeSettable(ref Ref, name string) (bool, error)

	// SetAttributeValue writes one attribute.
	SetAttributeValue(ref Ref, name string, value Raw) error

	// PerformAction invokes a named action.
	PerformAction(ref Ref, name string) error

	// ElementAtPosition returns the deepest element under the screen point.
	ElementAtPosition(ref Ref, x, y float64) (Ref, error)

	// PID returns the process that owns ref.
	PID(ref Ref) (int, error)

	// SetMessagingTimeout bounds how long calls against ref block. Setting it
	// on the system-wide element changes the process-wide default. Zero
	// restores the system default.
	SetMessagingTimeout(ref Ref, timeout time.Duration) error

	// Equal is the native equality test. Neither argument is nil.
	Equal(a, b Ref) bool

	// ApplicationRef returns the root element of a process.
	ApplicationRef(pid int) Ref

	// SystemWideRef returns the desktop-wide pseudo-element.
	SystemWideRef() Ref
}
