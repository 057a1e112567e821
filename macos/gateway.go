//go:build darwin && cgo

package macos

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework ApplicationServices -framework CoreFoundation
#include <ApplicationServices/ApplicationServices.h>
#include <stdlib.h>

static CFStringRef axk_string(const char *s) {
    return CFStringCreateWithCString(kCFAllocatorDefault, s, kCFStringEncodingUTF8);
}

// axk_utf8 returns a malloc'd UTF-8 copy of s. The caller frees it.
static char *axk_utf8(CFStringRef s) {
    CFIndex len = CFStringGetLength(s);
    CFIndex max = CFStringGetMaximumSizeForEncoding(len, kCFStringEncodingUTF8) + 1;
    char *buf = malloc(max);
    if (buf == NULL) {
        return NULL;
    }
    if (!CFStringGetCString(s, buf, max, kCFStringEncodingUTF8)) {
        buf[0] = 0;
    }
    return buf;
}

static CFTypeRef axk_array_at(CFArrayRef a, CFIndex i) {
    return CFArrayGetValueAtIndex(a, i);
}

static CFMutableArrayRef axk_array_new(CFIndex capacity) {
    return CFArrayCreateMutable(kCFAllocatorDefault, capacity, &kCFTypeArrayCallBacks);
}

static void axk_array_append(CFMutableArrayRef a, CFTypeRef v) {
    CFArrayAppendValue(a, v);
}

static CFTypeRef axk_bool(int v) {
    return CFRetain(v ? kCFBooleanTrue : kCFBooleanFalse);
}

static CFTypeRef axk_number_double(double v) {
    return CFNumberCreate(kCFAllocatorDefault, kCFNumberDoubleType, &v);
}

static CFTypeRef axk_number_int(long long v) {
    return CFNumberCreate(kCFAllocatorDefault, kCFNumberLongLongType, &v);
}

static double axk_number_as_double(CFNumberRef n) {
    double v = 0;
    CFNumberGetValue(n, kCFNumberDoubleType, &v);
    return v;
}

static long long axk_number_as_int(CFNumberRef n) {
    long long v = 0;
    CFNumberGetValue(n, kCFNumberLongLongType, &v);
    return v;
}

static CFTypeRef axk_point(double x, double y) {
    CGPoint p = CGPointMake(x, y);
    return AXValueCreate(kAXValueCGPointType, &p);
}

static CFTypeRef axk_size(double w, double h) {
    CGSize s = CGSizeMake(w, h);
    return AXValueCreate(kAXValueCGSizeType, &s);
}

static CFTypeRef axk_rect(double x, double y, double w, double h) {
    CGRect r = CGRectMake(x, y, w, h);
    return AXValueCreate(kAXValueCGRectType, &r);
}

static CFTypeRef axk_range(long loc, long len) {
    CFRange r = CFRangeMake(loc, len);
    return AXValueCreate(kAXValueCFRangeType, &r);
}

static int axk_value_point(AXValueRef v, double *x, double *y) {
    CGPoint p;
    if (!AXValueGetValue(v, kAXValueCGPointType, &p)) {
        return -1;
    }
    *x = p.x;
    *y = p.y;
    return 0;
}

static int axk_value_size(AXValueRef v, double *w, double *h) {
    CGSize s;
    if (!AXValueGetValue(v, kAXValueCGSizeType, &s)) {
        return -1;
    }
    *w = s.width;
    *h = s.height;
    return 0;
}

static int axk_value_rect(AXValueRef v, double *x, double *y, double *w, double *h) {
    CGRect r;
    if (!AXValueGetValue(v, kAXValueCGRectType, &r)) {
        return -1;
    }
    *x = r.origin.x;
    *y = r.origin.y;
    *w = r.size.width;
    *h = r.size.height;
    return 0;
}

static int axk_value_range(AXValueRef v, long *loc, long *len) {
    CFRange r;
    if (!AXValueGetValue(v, kAXValueCFRangeType, &r)) {
        return -1;
    }
    *loc = r.location;
    *len = r.length;
    return 0;
}

static int axk_value_error(AXValueRef v, int *code) {
    AXError e;
    if (!AXValueGetValue(v, kAXValueAXErrorType, &e)) {
        return -1;
    }
    *code = e;
    return 0;
}
*/
import "C"
import (
	"encoding/binary"
	"fmt"
	"runtime"
	"sync"
	"time"
	"unsafe"

	"github.com/mj1618/axkit/ax"
)

// handle owns one retain count on a CoreFoundation object and gives it back
// when the Go value is collected. Element refs handed to ax are *handle.
type handle struct {
	ref C.CFTypeRef
}

// adopt takes ownership of a reference obtained from a Create or Copy call.
func adopt(ref C.CFTypeRef) *handle {
	if ref == 0 {
		return nil
	}
	h := &handle{ref: ref}
	runtime.SetFinalizer(h, (*handle).release)
	return h
}

// retain takes an extra reference on an object owned by someone else.
func retain(ref C.CFTypeRef) *handle {
	if ref == 0 {
		return nil
	}
	C.CFRetain(ref)
	return adopt(ref)
}

func (h *handle) release() {
	release(h.ref)
}

func release(ref C.CFTypeRef) {
	C.CFRelease(ref)
}

// Gateway is the ax.Gateway backed by the AXUIElement API. It holds no
// per-element state and may be shared.
type Gateway struct {
	systemWideOnce sync.Once
	systemWide     *handle
}

var _ ax.Gateway = (*Gateway)(nil)

// NewGateway returns the native gateway.
func NewGateway() *Gateway {
	return &Gateway{}
}

func element(ref ax.Ref) (*handle, error) {
	h, ok := ref.(*handle)
	if !ok || h == nil {
		return nil, ax.ErrorFromCode(ax.CodeIllegalArgument, fmt.Sprintf("not a native element reference: %T", ref))
	}
	return h, nil
}

func (h *handle) element() C.AXUIElementRef {
	return C.AXUIElementRef(h.ref)
}

func cfString(s string) C.CFStringRef {
	cs := C.CString(s)
	defer C.free(unsafe.Pointer(cs))
	return C.axk_string(cs)
}

func goString(s C.CFStringRef) string {
	p := C.axk_utf8(s)
	if p == nil {
		return ""
	}
	defer C.free(unsafe.Pointer(p))
	return C.GoString(p)
}

func stringArray(arr C.CFArrayRef) []string {
	n := int(C.CFArrayGetCount(arr))
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		v := C.axk_array_at(arr, C.CFIndex(i))
		if C.CFGetTypeID(v) != C.CFStringGetTypeID() {
			continue
		}
		out = append(out, goString(C.CFStringRef(v)))
	}
	return out
}

func (g *Gateway) AttributeNames(ref ax.Ref) ([]string, error) {
	h, err := element(ref)
	if err != nil {
		return nil, err
	}
	var names C.CFArrayRef
	code := C.AXUIElementCopyAttributeNames(h.element(), &names)
	runtime.KeepAlive(h)
	if err := ax.ErrorFromCode(ax.Code(code), "copy attribute names"); err != nil {
		return nil, err
	}
	if names == 0 {
		return []string{}, nil
	}
	defer C.CFRelease(C.CFTypeRef(names))
	return stringArray(names), nil
}

func (g *Gateway) ActionNames(ref ax.Ref) ([]string, error) {
	h, err := element(ref)
	if err != nil {
		return nil, err
	}
	var names C.CFArrayRef
	code := C.AXUIElementCopyActionNames(h.element(), &names)
	runtime.KeepAlive(h)
	if err := ax.ErrorFromCode(ax.Code(code), "copy action names"); err != nil {
		return nil, err
	}
	if names == 0 {
		return []string{}, nil
	}
	defer C.CFRelease(C.CFTypeRef(names))
	return stringArray(names), nil
}

func (g *Gateway) AttributeValue(ref ax.Ref, name string) (ax.Raw, error) {
	h, err := element(ref)
	if err != nil {
		return nil, err
	}
	attr := cfString(name)
	defer C.CFRelease(C.CFTypeRef(attr))

	var value C.CFTypeRef
	code := C.AXUIElementCopyAttributeValue(h.element(), attr, &value)
	runtime.KeepAlive(h)
	if err := ax.ErrorFromCode(ax.Code(code), "copy attribute value "+name); err != nil {
		return nil, err
	}
	if value == 0 {
		return nil, ax.ErrorFromCode(ax.CodeNoValue, "copy attribute value "+name)
	}
	defer C.CFRelease(value)
	return decode(value), nil
}

func (g *Gateway) IsAttributeSettable(ref ax.Ref, name string) (bool, error) {
	h, err := element(ref)
	if err != nil {
		return false, err
	}
	attr := cfString(name)
	defer C.CFRelease(C.CFTypeRef(attr))

	var settable C.Boolean
	code := C.AXUIElementIsAttributeSettable(h.element(), attr, &settable)
	runtime.KeepAlive(h)
	if err := ax.ErrorFromCode(ax.Code(code), "is attribute settable "+name); err != nil {
		return false, err
	}
	return settable != 0, nil
}

func (g *Gateway) SetAttributeValue(ref ax.Ref, name string, value ax.Raw) error {
	h, err := element(ref)
	if err != nil {
		return err
	}
	v, err := encode(value)
	if err != nil {
		return err
	}
	defer C.CFRelease(v)
	attr := cfString(name)
	defer C.CFRelease(C.CFTypeRef(attr))

	code := C.AXUIElementSetAttributeValue(h.element(), attr, v)
	runtime.KeepAlive(h)
	return ax.ErrorFromCode(ax.Code(code), "set attribute value "+name)
}

func (g *Gateway) PerformAction(ref ax.Ref, name string) error {
	h, err := element(ref)
	if err != nil {
		return err
	}
	action := cfString(name)
	defer C.CFRelease(C.CFTypeRef(action))

	code := C.AXUIElementPerformAction(h.element(), action)
	runtime.KeepAlive(h)
	return ax.ErrorFromCode(ax.Code(code), "perform action "+name)
}

func (g *Gateway) ElementAtPosition(ref ax.Ref, x, y float64) (ax.Ref, error) {
	h, err := element(ref)
	if err != nil {
		return nil, err
	}
	var out C.AXUIElementRef
	code := C.AXUIElementCopyElementAtPosition(h.element(), C.float(x), C.float(y), &out)
	runtime.KeepAlive(h)
	if err := ax.ErrorFromCode(ax.Code(code), fmt.Sprintf("copy element at position (%g, %g)", x, y)); err != nil {
		return nil, err
	}
	if out == 0 {
		return nil, ax.ErrorFromCode(ax.CodeNoValue, "copy element at position")
	}
	return adopt(C.CFTypeRef(out)), nil
}

func (g *Gateway) PID(ref ax.Ref) (int, error) {
	h, err := element(ref)
	if err != nil {
		return 0, err
	}
	var pid C.pid_t
	code := C.AXUIElementGetPid(h.element(), &pid)
	runtime.KeepAlive(h)
	if err := ax.ErrorFromCode(ax.Code(code), "get pid"); err != nil {
		return 0, err
	}
	return int(pid), nil
}

// SetMessagingTimeout passes the timeout in seconds. Zero restores the
// global default.
func (g *Gateway) SetMessagingTimeout(ref ax.Ref, timeout time.Duration) error {
	h, err := element(ref)
	if err != nil {
		return err
	}
	if timeout < 0 {
		return ax.ErrorFromCode(ax.CodeIllegalArgument, "negative messaging timeout")
	}
	code := C.AXUIElementSetMessagingTimeout(h.element(), C.float(timeout.Seconds()))
	runtime.KeepAlive(h)
	return ax.ErrorFromCode(ax.Code(code), "set messaging timeout")
}

func (g *Gateway) Equal(a, b ax.Ref) bool {
	ha, okA := a.(*handle)
	hb, okB := b.(*handle)
	if !okA || !okB || ha == nil || hb == nil {
		return false
	}
	eq := C.CFEqual(ha.ref, hb.ref) != 0
	runtime.KeepAlive(ha)
	runtime.KeepAlive(hb)
	return eq
}

func (g *Gateway) ApplicationRef(pid int) ax.Ref {
	return adopt(C.CFTypeRef(C.AXUIElementCreateApplication(C.pid_t(pid))))
}

func (g *Gateway) SystemWideRef() ax.Ref {
	g.systemWideOnce.Do(func() {
		g.systemWide = adopt(C.CFTypeRef(C.AXUIElementCreateSystemWide()))
	})
	return g.systemWide
}

// decode turns a CoreFoundation value into its raw form. Nested elements and
// unrecognized objects are retained so they outlive v.
func decode(v C.CFTypeRef) ax.Raw {
	if v == 0 {
		return nil
	}
	switch id := C.CFGetTypeID(v); id {
	case C.CFStringGetTypeID():
		return ax.RawString(goString(C.CFStringRef(v)))
	case C.CFBooleanGetTypeID():
		return ax.RawBoolean(C.CFBooleanGetValue(C.CFBooleanRef(v)) != 0)
	case C.CFNumberGetTypeID():
		n := C.CFNumberRef(v)
		t := ax.NumberType(C.CFNumberGetType(n))
		if t.IsFloat() {
			return ax.NewRawNumber(t, float64(C.axk_number_as_double(n)))
		}
		return ax.NewRawInt(t, int64(C.axk_number_as_int(n)))
	case C.CFArrayGetTypeID():
		arr := C.CFArrayRef(v)
		n := int(C.CFArrayGetCount(arr))
		out := make(ax.RawArray, n)
		for i := 0; i < n; i++ {
			out[i] = decode(C.axk_array_at(arr, C.CFIndex(i)))
		}
		return out
	case C.AXUIElementGetTypeID():
		return ax.RawElement{Ref: retain(v)}
	case C.AXValueGetTypeID():
		return decodeStruct(C.AXValueRef(v))
	default:
		desc := C.CFCopyTypeIDDescription(id)
		defer C.CFRelease(C.CFTypeRef(desc))
		return ax.RawUnknown{TypeID: uint64(id), Description: goString(desc), Handle: retain(v)}
	}
}

func decodeStruct(v C.AXValueRef) ax.Raw {
	typ := ax.StructType(C.AXValueGetType(v))
	switch typ {
	case ax.StructPoint:
		var x, y C.double
		if C.axk_value_point(v, &x, &y) == 0 {
			return ax.NewRawPoint(float64(x), float64(y))
		}
	case ax.StructSize:
		var w, h C.double
		if C.axk_value_size(v, &w, &h) == 0 {
			return ax.NewRawSize(float64(w), float64(h))
		}
	case ax.StructRect:
		var x, y, w, h C.double
		if C.axk_value_rect(v, &x, &y, &w, &h) == 0 {
			return ax.NewRawRect(float64(x), float64(y), float64(w), float64(h))
		}
	case ax.StructRange:
		var loc, length C.long
		if C.axk_value_range(v, &loc, &length) == 0 {
			return ax.NewRawRange(int64(loc), int64(length))
		}
	case ax.StructAXError:
		var code C.int
		if C.axk_value_error(v, &code) == 0 {
			return ax.RawStruct{Type: typ, Data: binary.NativeEndian.AppendUint32(nil, uint32(int32(code)))}
		}
	}
	return ax.RawStruct{Type: typ}
}

// encode builds a CoreFoundation value the caller owns.
func encode(raw ax.Raw) (C.CFTypeRef, error) {
	switch r := raw.(type) {
	case ax.RawString:
		return C.CFTypeRef(cfString(string(r))), nil
	case ax.RawBoolean:
		b := 0
		if r {
			b = 1
		}
		return C.axk_bool(C.int(b)), nil
	case ax.RawNumber:
		if r.Type.IsFloat() {
			return C.axk_number_double(C.double(r.Float)), nil
		}
		return C.axk_number_int(C.longlong(r.Int)), nil
	case ax.RawStruct:
		return encodeStruct(r)
	case ax.RawArray:
		arr := C.axk_array_new(C.CFIndex(len(r)))
		for i, item := range r {
			v, err := encode(item)
			if err != nil {
				C.CFRelease(C.CFTypeRef(arr))
				return 0, fmt.Errorf("item %d: %w", i, err)
			}
			C.axk_array_append(arr, v)
			C.CFRelease(v)
		}
		return C.CFTypeRef(arr), nil
	case ax.RawElement:
		h, err := element(r.Ref)
		if err != nil {
			return 0, err
		}
		C.CFRetain(h.ref)
		runtime.KeepAlive(h)
		return h.ref, nil
	case ax.RawUnknown:
		if h, ok := r.Handle.(*handle); ok && h != nil {
			C.CFRetain(h.ref)
			runtime.KeepAlive(h)
			return h.ref, nil
		}
	}
	return 0, ax.ErrorFromCode(ax.CodeIllegalArgument, fmt.Sprintf("cannot encode %T as a native value", raw))
}

func encodeStruct(r ax.RawStruct) (C.CFTypeRef, error) {
	switch v := ax.NewConverter(nil).Convert(r).(type) {
	case ax.Point:
		return C.axk_point(C.double(v.X), C.double(v.Y)), nil
	case ax.Size:
		return C.axk_size(C.double(v.Width), C.double(v.Height)), nil
	case ax.Rect:
		return C.axk_rect(C.double(v.Origin.X), C.double(v.Origin.Y), C.double(v.Size.Width), C.double(v.Size.Height)), nil
	case ax.Range:
		return C.axk_range(C.long(v.Location), C.long(v.Length)), nil
	}
	return 0, ax.ErrorFromCode(ax.CodeIllegalArgument, fmt.Sprintf("cannot encode struct type %d", r.Type))
}
