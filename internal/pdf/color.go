package pdf

import (
	"strconv"
	"strings"

	"github.com/docmason/mcp-pdf-editor/internal/pdf/engine"
)

// colorKind discriminates the accepted color shapes.
type colorKind int

const (
	colorAbsent colorKind = iota
	colorHex
	colorRGB
)

// ColorSpec is a color value as supplied by a caller: a hex string, a
// fractional RGB triple, or absent. Resolution is total; malformed input
// degrades to opaque white.
type ColorSpec struct {
	kind colorKind
	hex  string
	rgb  [3]float64
}

// NoColor returns the absent color value.
func NoColor() ColorSpec {
	return ColorSpec{}
}

// HexColor returns a color from a 6-hex-digit string, optionally prefixed
// with '#'.
func HexColor(s string) ColorSpec {
	return ColorSpec{kind: colorHex, hex: s}
}

// RGBColor returns a color from already-normalized fractional channels.
func RGBColor(r, g, b float64) ColorSpec {
	return ColorSpec{kind: colorRGB, rgb: [3]float64{r, g, b}}
}

// Absent reports whether no color value was supplied.
func (c ColorSpec) Absent() bool {
	return c.kind == colorAbsent
}

// Resolve normalizes the color into fractional RGB channels in [0, 1].
// Absent or malformed input yields opaque white.
func (c ColorSpec) Resolve() engine.Color {
	switch c.kind {
	case colorHex:
		return hexToRGB(c.hex)
	case colorRGB:
		return engine.Color{R: c.rgb[0], G: c.rgb[1], B: c.rgb[2]}
	default:
		return engine.White
	}
}

// ResolveOr is Resolve with a different default for the absent case.
func (c ColorSpec) ResolveOr(def engine.Color) engine.Color {
	if c.Absent() {
		return def
	}
	return c.Resolve()
}

func hexToRGB(s string) engine.Color {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return engine.White
	}

	var ch [3]float64
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return engine.White
		}
		ch[i] = float64(v) / 255
	}
	return engine.Color{R: ch[0], G: ch[1], B: ch[2]}
}

// ParseColorValue converts a decoded JSON value into a ColorSpec. Strings
// become hex colors, numeric arrays of at least three elements become RGB
// triples, anything else is treated as absent.
func ParseColorValue(v any) ColorSpec {
	switch val := v.(type) {
	case nil:
		return NoColor()
	case string:
		return HexColor(val)
	case []any:
		if len(val) < 3 {
			return NoColor()
		}
		var ch [3]float64
		for i := 0; i < 3; i++ {
			f, ok := val[i].(float64)
			if !ok {
				return NoColor()
			}
			ch[i] = f
		}
		return RGBColor(ch[0], ch[1], ch[2])
	case []float64:
		if len(val) < 3 {
			return NoColor()
		}
		return RGBColor(val[0], val[1], val[2])
	default:
		return NoColor()
	}
}
