package color

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidColorFormat reports hex input that is not a 3- or 6-digit colour.
var ErrInvalidColorFormat = errors.New("color: invalid color format")

// RGB holds 8-bit sRGB channels.
type RGB struct {
	R uint8 `json:"r" yaml:"r"`
	G uint8 `json:"g" yaml:"g"`
	B uint8 `json:"b" yaml:"b"`
}

// HSL holds hue in degrees [0,360) and saturation/lightness in percent [0,100].
type HSL struct {
	H float64 `json:"h" yaml:"h"`
	S float64 `json:"s" yaml:"s"`
	L float64 `json:"l" yaml:"l"`
}

// Hex renders the colour as canonical uppercase #RRGGBB.
func (c RGB) Hex() string {
	return RGBToHex(c)
}

// NormalizeHex validates hex input and returns it in canonical #RRGGBB form.
// Three-digit shorthand is expanded.
func NormalizeHex(hex string) (string, error) {
	rgb, err := HexToRGB(hex)
	if err != nil {
		return "", err
	}
	return RGBToHex(rgb), nil
}

// IsValidHex reports whether hex parses as a 3- or 6-digit colour.
func IsValidHex(hex string) bool {
	_, err := HexToRGB(hex)
	return err == nil
}

// HexToRGB parses "#RGB", "RGB", "#RRGGBB" or "RRGGBB".
func HexToRGB(hex string) (RGB, error) {
	raw := strings.TrimSpace(hex)
	digits := strings.TrimPrefix(raw, "#")
	switch len(digits) {
	case 3:
		var b strings.Builder
		b.Grow(6)
		for _, r := range digits {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		digits = b.String()
	case 6:
	default:
		return RGB{}, fmt.Errorf("%w %q", ErrInvalidColorFormat, hex)
	}

	value, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w %q", ErrInvalidColorFormat, hex)
	}
	return RGB{
		R: uint8(value >> 16),
		G: uint8(value >> 8),
		B: uint8(value),
	}, nil
}

// RGBToHex renders an RGB triple as uppercase #RRGGBB.
func RGBToHex(c RGB) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// RGBToHSL converts sRGB to HSL. Achromatic colours report hue and
// saturation of zero.
func RGBToHSL(c RGB) HSL {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	l := (maxC + minC) / 2

	if maxC == minC {
		return HSL{H: 0, S: 0, L: l * 100}
	}

	d := maxC - minC
	var s float64
	if l > 0.5 {
		s = d / (2 - maxC - minC)
	} else {
		s = d / (maxC + minC)
	}

	var h float64
	switch maxC {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h *= 60

	return HSL{H: normalizeHue(h), S: s * 100, L: l * 100}
}

// HSLToRGB converts HSL back to sRGB, rounding each channel to the nearest
// integer and clamping to [0,255]. Out-of-range saturation and lightness are
// clamped to [0,100] first.
func HSLToRGB(c HSL) RGB {
	h := normalizeHue(c.H) / 360
	s := clamp(c.S, 0, 100) / 100
	l := clamp(c.L, 0, 100) / 100

	if s == 0 {
		v := toChannel(l)
		return RGB{R: v, G: v, B: v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return RGB{
		R: toChannel(hueToChannel(p, q, h+1.0/3)),
		G: toChannel(hueToChannel(p, q, h)),
		B: toChannel(hueToChannel(p, q, h-1.0/3)),
	}
}

// HexToHSL is a convenience wrapper over HexToRGB and RGBToHSL.
func HexToHSL(hex string) (HSL, error) {
	rgb, err := HexToRGB(hex)
	if err != nil {
		return HSL{}, err
	}
	return RGBToHSL(rgb), nil
}

// HSLToHex is a convenience wrapper over HSLToRGB and RGBToHex.
func HSLToHex(c HSL) string {
	return RGBToHex(HSLToRGB(c))
}

func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

func toChannel(v float64) uint8 {
	return uint8(clamp(math.Round(v*255), 0, 255))
}

func normalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
