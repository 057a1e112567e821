package model

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mj1618/axkit/ax"
)

// ValueKinds lists the kinds accepted by ParseValue.
var ValueKinds = []string{"string", "bool", "int", "float", "point", "size", "range", "rect"}

// ParseValue converts command-line text into a value for Element.Set.
// Struct kinds take comma-separated numbers: "x,y", "w,h", "location,length"
// and "x,y,w,h". An empty kind means string.
func ParseValue(kind, text string) (ax.Value, error) {
	switch strings.ToLower(kind) {
	case "", "string", "str":
		return ax.String(text), nil
	case "bool", "boolean":
		b, err := strconv.ParseBool(strings.TrimSpace(text))
		if err != nil {
			return nil, fmt.Errorf("invalid bool %q", text)
		}
		return ax.Bool(b), nil
	case "int", "integer":
		n, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid int %q", text)
		}
		return ax.Int(n), nil
	case "float", "number":
		f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid float %q", text)
		}
		return ax.Float(f), nil
	case "point":
		v, err := parseFloats(text, 2, "x,y")
		if err != nil {
			return nil, err
		}
		return ax.Point{X: v[0], Y: v[1]}, nil
	case "size":
		v, err := parseFloats(text, 2, "width,height")
		if err != nil {
			return nil, err
		}
		return ax.Size{Width: v[0], Height: v[1]}, nil
	case "rect":
		v, err := parseFloats(text, 4, "x,y,width,height")
		if err != nil {
			return nil, err
		}
		return ax.Rect{Origin: ax.Point{X: v[0], Y: v[1]}, Size: ax.Size{Width: v[2], Height: v[3]}}, nil
	case "range":
		v, err := parseFloats(text, 2, "location,length")
		if err != nil {
			return nil, err
		}
		if v[0] != float64(int64(v[0])) || v[1] != float64(int64(v[1])) {
			return nil, fmt.Errorf("invalid range %q: location and length must be integers", text)
		}
		return ax.Range{Location: int64(v[0]), Length: int64(v[1])}, nil
	}
	return nil, fmt.Errorf("unknown value type %q (use %s)", kind, strings.Join(ValueKinds, ", "))
}

func parseFloats(text string, n int, format string) ([]float64, error) {
	parts := strings.Split(text, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("invalid value %q: expected %s", text, format)
	}
	out := make([]float64, n)
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: expected %s", text, format)
		}
		out[i] = f
	}
	return out, nil
}
