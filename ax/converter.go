package ax

import (
	"fmt"
	"math"
	"reflect"
)

// Converter maps native values to Values and back. It is stateless apart from
// the wrap function used to turn element references into *Element, so child
// elements share the behaviour of the element that produced them.
type Converter struct {
	wrap func(Ref) *Element
}

// NewConverter returns a Converter that wraps element references with wrap.
// A nil wrap leaves element references as Opaque.
func NewConverter(wrap func(Ref) *Element) *Converter {
	return &Converter{wrap: wrap}
}

// Convert normalizes a raw native value. It never fails: types it does not
// recognize come back as Opaque.
func (c *Converter) Convert(raw Raw) Value {
	switch r := raw.(type) {
	case nil:
		return nil
	case RawString:
		return String(r)
	case RawBoolean:
		return Bool(r)
	case RawNumber:
		if r.Type.IsFloat() {
			return Float(r.Float)
		}
		return Int(r.Int)
	case RawArray:
		out := make(List, len(r))
		for i, item := range r {
			out[i] = c.Convert(item)
		}
		return out
	case RawStruct:
		return convertStruct(r)
	case RawElement:
		if c.wrap == nil {
			return Opaque{Raw: r}
		}
		return c.wrap(r.Ref)
	default:
		return Opaque{Raw: raw}
	}
}

func convertStruct(r RawStruct) Value {
	size, ok := structSizes[r.Type]
	if !ok || len(r.Data) < size {
		return Opaque{Raw: r}
	}
	switch r.Type {
	case StructPoint:
		f := unpackFloats(r.Data, 2)
		return Point{X: f[0], Y: f[1]}
	case StructSize:
		f := unpackFloats(r.Data, 2)
		return Size{Width: f[0], Height: f[1]}
	case StructRect:
		f := unpackFloats(r.Data, 4)
		return Rect{Origin: Point{X: f[0], Y: f[1]}, Size: Size{Width: f[2], Height: f[3]}}
	case StructRange:
		n := unpackInts(r.Data, 2)
		return Range{Location: n[0], Length: n[1]}
	}
	return Opaque{Raw: r}
}

// ToRaw boxes a host value for writing. It accepts every Value variant and
// plain Go strings, booleans, integers, floats and slices of those. Anything
// else fails with ErrIllegalArgument.
func (c *Converter) ToRaw(v any) (Raw, error) {
	switch t := v.(type) {
	case nil:
		return nil, newError(KindIllegalArgument, "cannot write a nil value")
	case Raw:
		return t, nil
	case String:
		return RawString(t), nil
	case string:
		return RawString(t), nil
	case Bool:
		return RawBoolean(t), nil
	case bool:
		return RawBoolean(t), nil
	case Int:
		return NewRawInt(NumberSInt64, int64(t)), nil
	case Float:
		return NewRawNumber(NumberFloat64, float64(t)), nil
	case float32:
		return NewRawNumber(NumberFloat32, float64(t)), nil
	case float64:
		return NewRawNumber(NumberFloat64, t), nil
	case Point:
		return NewRawPoint(t.X, t.Y), nil
	case Size:
		return NewRawSize(t.Width, t.Height), nil
	case Rect:
		return NewRawRect(t.Origin.X, t.Origin.Y, t.Size.Width, t.Size.Height), nil
	case Range:
		return NewRawRange(t.Location, t.Length), nil
	case *Element:
		if t == nil || t.ref == nil {
			return nil, newError(KindIllegalArgument, "cannot write a null element reference")
		}
		return RawElement{Ref: t.ref}, nil
	case Opaque:
		return t.Raw, nil
	case List:
		out := make(RawArray, len(t))
		for i, item := range t {
			r, err := c.ToRaw(item)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			out[i] = r
		}
		return out, nil
	}
	return c.reflectToRaw(v)
}

// reflectToRaw handles the remaining Go integer kinds and arbitrary slices.
func (c *Converter) reflectToRaw(v any) (Raw, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return NewRawInt(NumberSInt64, rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return nil, newError(KindIllegalArgument, "integer %d overflows a native number", u)
		}
		return NewRawInt(NumberSInt64, int64(u)), nil
	case reflect.Slice, reflect.Array:
		out := make(RawArray, rv.Len())
		for i := range out {
			r, err := c.ToRaw(rv.Index(i).Interface())
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			out[i] = r
		}
		return out, nil
	}
	return nil, newError(KindIllegalArgument, "unsupported value type %T", v)
}
