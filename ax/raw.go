package ax

import (
	"encoding/binary"
	"math"
)

// Ref is an opaque handle to one native accessibility element. Gateways decide
// its concrete type; a nil Ref is the null reference.
type Ref any

// Raw is an accessibility value exactly as a Gateway returned it, before
// conversion. The concrete types mirror the native CoreFoundation boxes.
type Raw interface {
	isRaw()
}

// RawString is a CFString.
type RawString string

// RawBoolean is a CFBoolean.
type RawBoolean bool

// RawArray is a CFArray of arbitrary boxes.
type RawArray []Raw

// RawElement is an AXUIElementRef found inside a value.
type RawElement struct {
	Ref Ref
}

// RawUnknown is any native type the gateway could not box. Handle keeps the
// native object alive for callers that know what to do with it.
type RawUnknown struct {
	TypeID      uint64
	Description string
	Handle      any
}

func (RawString) isRaw()  {}
func (RawBoolean) isRaw() {}
func (RawArray) isRaw()   {}
func (RawNumber) isRaw()  {}
func (RawStruct) isRaw()  {}
func (RawElement) isRaw() {}
func (RawUnknown) isRaw() {}

// NumberType is the declared storage type of a CFNumber.
type NumberType int

// CFNumberType values.
const (
	NumberSInt8     NumberType = 1
	NumberSInt16    NumberType = 2
	NumberSInt32    NumberType = 3
	NumberSInt64    NumberType = 4
	NumberFloat32   NumberType = 5
	NumberFloat64   NumberType = 6
	NumberChar      NumberType = 7
	NumberShort     NumberType = 8
	NumberInt       NumberType = 9
	NumberLong      NumberType = 10
	NumberLongLong  NumberType = 11
	NumberFloat     NumberType = 12
	NumberDouble    NumberType = 13
	NumberCFIndex   NumberType = 14
	NumberNSInteger NumberType = 15
	NumberCGFloat   NumberType = 16
)

// IsFloat reports whether numbers of this type store a floating point value.
func (t NumberType) IsFloat() bool {
	switch t {
	case NumberFloat32, NumberFloat64, NumberFloat, NumberDouble, NumberCGFloat:
		return true
	}
	return false
}

// RawNumber is a CFNumber. Only the field matching Type.IsFloat is meaningful.
type RawNumber struct {
	Type  NumberType
	Int   int64
	Float float64
}

// NewRawNumber boxes v the way CFNumberCreate does: integer types truncate
// toward zero and wrap to their width, float types keep the value.
func NewRawNumber(t NumberType, v float64) RawNumber {
	if t.IsFloat() {
		if t == NumberFloat32 || t == NumberFloat {
			v = float64(float32(v))
		}
		return RawNumber{Type: t, Float: v}
	}
	return RawNumber{Type: t, Int: narrowInt(t, int64(v))}
}

// NewRawInt boxes an integer without going through float64.
func NewRawInt(t NumberType, v int64) RawNumber {
	if t.IsFloat() {
		return NewRawNumber(t, float64(v))
	}
	return RawNumber{Type: t, Int: narrowInt(t, v)}
}

func narrowInt(t NumberType, v int64) int64 {
	switch t {
	case NumberSInt8, NumberChar:
		return int64(int8(v))
	case NumberSInt16, NumberShort:
		return int64(int16(v))
	case NumberSInt32, NumberInt:
		return int64(int32(v))
	}
	return v
}

// StructType is the AXValueType discriminator embedded in an AXValueRef.
type StructType int

// AXValueType values.
const (
	StructIllegal StructType = 0
	StructPoint   StructType = 1
	StructSize    StructType = 2
	StructRect    StructType = 3
	StructRange   StructType = 4
	StructAXError StructType = 5
)

// RawStruct is an AXValueRef: a discriminator plus the packed native struct
// (CGPoint, CGSize, CGRect, CFRange) in host byte order.
type RawStruct struct {
	Type StructType
	Data []byte
}

// structSizes are the packed sizes on 64-bit macOS: CGFloat and CFIndex are
// both 8 bytes.
var structSizes = map[StructType]int{
	StructPoint:   16,
	StructSize:    16,
	StructRect:    32,
	StructRange:   16,
	StructAXError: 4,
}

// NewRawPoint packs a CGPoint.
func NewRawPoint(x, y float64) RawStruct {
	return RawStruct{Type: StructPoint, Data: packFloats(x, y)}
}

// NewRawSize packs a CGSize.
func NewRawSize(width, height float64) RawStruct {
	return RawStruct{Type: StructSize, Data: packFloats(width, height)}
}

// NewRawRect packs a CGRect.
func NewRawRect(x, y, width, height float64) RawStruct {
	return RawStruct{Type: StructRect, Data: packFloats(x, y, width, height)}
}

// NewRawRange packs a CFRange.
func NewRawRange(location, length int64) RawStruct {
	data := make([]byte, 16)
	binary.NativeEndian.PutUint64(data[0:], uint64(location))
	binary.NativeEndian.PutUint64(data[8:], uint64(length))
	return RawStruct{Type: StructRange, Data: data}
}

func packFloats(vs ...float64) []byte {
	data := make([]byte, 8*len(vs))
	for i, v := range vs {
		binary.NativeEndian.PutUint64(data[8*i:], math.Float64bits(v))
	}
	return data
}

func unpackFloats(data []byte, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Float64frombits(binary.NativeEndian.Uint64(data[8*i:]))
	}
	return out
}

func unpackInts(data []byte, n int) []int64 {
	out := make([]int64, n)
	for i := range out {
		out[i] = int64(binary.NativeEndian.Uint64(data[8*i:]))
	}
	return out
}
