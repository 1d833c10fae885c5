package annotate

import (
	"fmt"
	"image/color"
	"math"
)

// RGBA represents a straight (non-premultiplied) color.
// Each component is in the range [0, 1].
//
// RGBA marshals to and from "#RRGGBBAA" hex text, so it can be used
// directly in TOML tool configuration.
type RGBA struct {
	R, G, B, A float64
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// RGBA2 creates a color from RGBA components.
func RGBA2(r, g, b, a float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: a}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with an optional '#'.
func Hex(hex string) (RGBA, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var digits [8]uint32
	for i := 0; i < len(s) && i < len(digits); i++ {
		v, ok := hexDigit(s[i])
		if !ok {
			return RGBA{}, fmt.Errorf("annotate: invalid color %q", hex)
		}
		digits[i] = v
	}

	var r, g, b, a uint32
	a = 255
	switch len(s) {
	case 3:
		r, g, b = digits[0]*17, digits[1]*17, digits[2]*17
	case 4:
		r, g, b, a = digits[0]*17, digits[1]*17, digits[2]*17, digits[3]*17
	case 6:
		r, g, b = digits[0]<<4|digits[1], digits[2]<<4|digits[3], digits[4]<<4|digits[5]
	case 8:
		r, g, b = digits[0]<<4|digits[1], digits[2]<<4|digits[3], digits[4]<<4|digits[5]
		a = digits[6]<<4 | digits[7]
	default:
		return RGBA{}, fmt.Errorf("annotate: invalid color %q", hex)
	}

	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, nil
}

func hexDigit(c byte) (uint32, bool) {
	switch {
	case '0' <= c && c <= '9':
		return uint32(c - '0'), true
	case 'a' <= c && c <= 'f':
		return uint32(c - 'a' + 10), true
	case 'A' <= c && c <= 'F':
		return uint32(c - 'A' + 10), true
	}
	return 0, false
}

// NRGBA converts the color to 8-bit straight alpha.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: to8(c.R),
		G: to8(c.G),
		B: to8(c.B),
		A: to8(c.A),
	}
}

// Premultiplied converts the color to 8-bit premultiplied alpha.
func (c RGBA) Premultiplied() color.RGBA {
	return color.RGBAModel.Convert(c.NRGBA()).(color.RGBA)
}

// WithAlpha returns the color with its alpha replaced.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = a
	return c
}

// IsOpaque reports whether the color has full alpha.
func (c RGBA) IsOpaque() bool {
	return c.A >= 1
}

// String returns the "#RRGGBBAA" form.
func (c RGBA) String() string {
	n := c.NRGBA()
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

// MarshalText implements encoding.TextMarshaler.
func (c RGBA) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *RGBA) UnmarshalText(text []byte) error {
	parsed, err := Hex(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func to8(x float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, x)) * 255))
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Yellow      = RGB(1, 1, 0)
	Transparent = RGBA2(0, 0, 0, 0)
)
