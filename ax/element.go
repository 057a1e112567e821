package ax

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

// className is what String reports as the element's type.
const className = "ax.Element"

// staticMembers are listed by Members next to the live attribute and action
// names.
var staticMembers = []string{"Ref", "PID", "BundleID"}

// Element is a proxy for one native accessibility element. It caches nothing:
// every call asks the accessibility server which attributes and actions are
// legal right now.
//
// An Element is not safe for concurrent use. The zero value is a null element;
// it compares equal to other null elements and fails every other operation.
type Element struct {
	ref  Ref
	sys  *System
	conv *Converter
}

// ActionFunc invokes one action on the element it was resolved from.
type ActionFunc func() error

// Ref returns the native handle, for collaborators such as notification
// observers.
func (e *Element) Ref() Ref {
	if e == nil {
		return nil
	}
	return e.ref
}

// IsNull reports whether e wraps no native element.
func (e *Element) IsNull() bool {
	return e == nil || e.ref == nil
}

func (e *Element) check() error {
	if e.IsNull() {
		return newError(KindUnsupported, "operation not supported on null element references")
	}
	if e.sys == nil {
		return newError(KindUnsupported, "element is not bound to a gateway")
	}
	return nil
}

// AttributeNames returns the attributes the element supports right now.
func (e *Element) AttributeNames() ([]string, error) {
	if err := e.check(); err != nil {
		return nil, err
	}
	names, err := e.sys.gw.AttributeNames(e.ref)
	if err != nil {
		return nil, err
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

// ActionNames returns the actions the element supports right now.
func (e *Element) ActionNames() ([]string, error) {
	if err := e.check(); err != nil {
		return nil, err
	}
	names, err := e.sys.gw.ActionNames(e.ref)
	if err != nil {
		return nil, err
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

func (e *Element) hasAttribute(name string) (bool, error) {
	names, err := e.AttributeNames()
	if err != nil {
		return false, err
	}
	return slices.Contains(names, name), nil
}

func (e *Element) hasAction(name string) (bool, error) {
	names, err := e.ActionNames()
	if err != nil {
		return false, err
	}
	return slices.Contains(names, name), nil
}

// Get reads and converts an attribute. A name the element does not currently
// support fails with ErrAttributeNotFound. AXChildren with no value reads as
// an empty List; no value on any other attribute fails with ErrNoValue.
func (e *Element) Get(name string) (Value, error) {
	ok, err := e.hasAttribute(name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%s has no attribute %q: %w", className, name, ErrAttributeNotFound)
	}
	return e.read(name)
}

func (e *Element) read(name string) (Value, error) {
	raw, err := e.sys.gw.AttributeValue(e.ref, name)
	if err != nil {
		if name == AttrChildren && errors.Is(err, ErrNoValue) {
			return List{}, nil
		}
		return nil, err
	}
	return e.conv.Convert(raw), nil
}

// Resolve looks name up among attributes, then actions. It returns the
// attribute's Value or an ActionFunc that performs the action.
func (e *Element) Resolve(name string) (any, error) {
	if ok, err := e.hasAttribute(name); err != nil {
		return nil, err
	} else if ok {
		return e.read(name)
	}
	if ok, err := e.hasAction(name); err != nil {
		return nil, err
	} else if ok {
		return ActionFunc(func() error {
			return e.sys.gw.PerformAction(e.ref, name)
		}), nil
	}
	return nil, fmt.Errorf("%s has no attribute %q: %w", className, name, ErrAttributeNotFound)
}

// IsSettable reports whether the attribute can be written right now.
func (e *Element) IsSettable(name string) (bool, error) {
	if err := e.check(); err != nil {
		return false, err
	}
	return e.sys.gw.IsAttributeSettable(e.ref, name)
}

// Set writes an attribute. Attributes that are not settable fail with
// ErrUnsupported and host values that cannot be boxed fail with
// ErrIllegalArgument.
//
// If the native side rejects the write with illegal-argument, the write is
// dropped without error. Some applications reject values that look legal for
// the attribute; callers that need to know should read the value back.
func (e *Element) Set(name string, value any) error {
	ok, err := e.hasAttribute(name)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s has no attribute %q: %w", className, name, ErrAttributeNotFound)
	}

	settable, err := e.sys.gw.IsAttributeSettable(e.ref, name)
	if err != nil {
		return err
	}
	if !settable {
		return newError(KindUnsupported, "attribute %s is not settable", name)
	}

	raw, err := e.conv.ToRaw(value)
	if err != nil {
		return err
	}

	if err := e.sys.gw.SetAttributeValue(e.ref, name, raw); err != nil {
		if errors.Is(err, ErrIllegalArgument) {
			e.sys.log.Debug("attribute write rejected", "attribute", name, "err", err)
			return nil
		}
		return err
	}
	return nil
}

// Perform invokes an action the element currently supports.
func (e *Element) Perform(name string) error {
	ok, err := e.hasAction(name)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s has no action %q: %w", className, name, ErrAttributeNotFound)
	}
	return e.sys.gw.PerformAction(e.ref, name)
}

// Members lists everything that can be looked up on the element right now:
// its attributes, its actions and the accessors every element has.
func (e *Element) Members() ([]string, error) {
	attrs, err := e.AttributeNames()
	if err != nil {
		return nil, err
	}
	actions, err := e.ActionNames()
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(attrs)+len(actions)+len(staticMembers))
	out = append(out, attrs...)
	out = append(out, actions...)
	out = append(out, staticMembers...)
	return out, nil
}

// Elements reads an attribute and keeps only the elements in it. A single
// element value yields a one-element slice.
func (e *Element) Elements(name string) ([]*Element, error) {
	v, err := e.Get(name)
	if err != nil {
		return nil, err
	}
	switch t := v.(type) {
	case *Element:
		return []*Element{t}, nil
	case List:
		out := make([]*Element, 0, len(t))
		for _, item := range t {
			if el, ok := item.(*Element); ok {
				out = append(out, el)
			}
		}
		return out, nil
	}
	return []*Element{}, nil
}

// Equal reports whether both elements refer to the same native element. Null
// elements are equal only to other null elements.
func (e *Element) Equal(other *Element) bool {
	if e.IsNull() || other.IsNull() {
		return e.IsNull() && other.IsNull()
	}
	sys := e.sys
	if sys == nil {
		sys = other.sys
	}
	if sys == nil {
		return false
	}
	return sys.gw.Equal(e.ref, other.ref)
}

// String describes the element by role and the first non-empty of title,
// value and role description. Attributes the element lacks read as empty.
func (e *Element) String() string {
	role := e.describe(AttrRole)
	if role == "" {
		role = "<No role!>"
	}
	var title string
	for _, name := range []string{AttrTitle, AttrValue, AttrRoleDescription} {
		if title = e.describe(name); title != "" {
			break
		}
	}
	return fmt.Sprintf("<%s %s %s>", className, role, title)
}

func (e *Element) describe(name string) string {
	if e.check() != nil {
		return ""
	}
	v, err := e.Get(name)
	if err != nil {
		return ""
	}
	if _, ok := v.(*Element); ok {
		// avoid recursing through AXTitleUIElement-style values
		return ""
	}
	return text(v)
}

// ElementAtPosition returns the deepest element under a screen point. It is
// usually called on the system-wide element.
func (e *Element) ElementAtPosition(x, y float64) (*Element, error) {
	if err := e.check(); err != nil {
		return nil, err
	}
	ref, err := e.sys.gw.ElementAtPosition(e.ref, x, y)
	if err != nil {
		return nil, err
	}
	return e.sys.Wrap(ref), nil
}

// SetTimeout sets how long calls against this element wait for the
// application to respond. Zero restores the process-wide default.
func (e *Element) SetTimeout(d time.Duration) error {
	if err := e.check(); err != nil {
		return err
	}
	return e.sys.gw.SetMessagingTimeout(e.ref, d)
}

// PID returns the process that owns the element.
func (e *Element) PID() (int, error) {
	if err := e.check(); err != nil {
		return 0, err
	}
	return e.sys.gw.PID(e.ref)
}

// BundleID returns the bundle identifier of the owning application.
func (e *Element) BundleID() (string, error) {
	app, err := e.application()
	if err != nil {
		return "", err
	}
	return app.BundleID, nil
}

// Activate brings the owning application forward.
func (e *Element) Activate() error {
	pid, err := e.PID()
	if err != nil {
		return err
	}
	dir, err := e.sys.directory()
	if err != nil {
		return err
	}
	return dir.Activate(pid)
}

func (e *Element) application() (Application, error) {
	pid, err := e.PID()
	if err != nil {
		return Application{}, err
	}
	dir, err := e.sys.directory()
	if err != nil {
		return Application{}, err
	}
	return dir.Application(pid)
}
