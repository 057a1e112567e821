package ax

import "fmt"

// Value is a converted accessibility value. The set of implementations is
// closed: String, Bool, Int, Float, List, Point, Size, Range, Rect, *Element
// and Opaque.
type Value interface {
	isValue()
}

// String is decoded text.
type String string

// Bool is a boolean.
type Bool bool

// Int is a number whose native box declared an integer type.
type Int int64

// Float is a number whose native box declared a floating point type.
type Float float64

// List is an ordered sequence; element references inside it are wrapped.
type List []Value

// Point is a CGPoint.
type Point struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

// Size is a CGSize.
type Size struct {
	Width  float64 `yaml:"width"  json:"width"`
	Height float64 `yaml:"height" json:"height"`
}

// Range is a CFRange.
type Range struct {
	Location int64 `yaml:"location" json:"location"`
	Length   int64 `yaml:"length"   json:"length"`
}

// Rect is a CGRect.
type Rect struct {
	Origin Point `yaml:"origin" json:"origin"`
	Size   Size  `yaml:"size"   json:"size"`
}

// Opaque carries a native value of a type the converter does not know.
type Opaque struct {
	Raw Raw
}

func (String) isValue()   {}
func (Bool) isValue()     {}
func (Int) isValue()      {}
func (Float) isValue()    {}
func (List) isValue()     {}
func (Point) isValue()    {}
func (Size) isValue()     {}
func (Range) isValue()    {}
func (Rect) isValue()     {}
func (Opaque) isValue()   {}
func (*Element) isValue() {}

func (o Opaque) String() string {
	switch r := o.Raw.(type) {
	case RawUnknown:
		if r.Description != "" {
			return fmt.Sprintf("<opaque %s>", r.Description)
		}
		return fmt.Sprintf("<opaque type %d>", r.TypeID)
	case RawStruct:
		return fmt.Sprintf("<opaque AXValue type %d>", int(r.Type))
	default:
		return fmt.Sprintf("<opaque %T>", o.Raw)
	}
}

// Plain converts v to ordinary Go values suitable for YAML or JSON encoding.
// Elements render as their description.
func Plain(v Value) any {
	switch t := v.(type) {
	case nil:
		return nil
	case String:
		return string(t)
	case Bool:
		return bool(t)
	case Int:
		return int64(t)
	case Float:
		return float64(t)
	case List:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = Plain(item)
		}
		return out
	case Point, Size, Range, Rect:
		return t
	case *Element:
		return t.String()
	case Opaque:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

// text returns the value as display text, or "" when it has none.
func text(v Value) string {
	switch t := v.(type) {
	case nil:
		return ""
	case String:
		return string(t)
	case *Element:
		return t.String()
	default:
		return fmt.Sprint(Plain(v))
	}
}
