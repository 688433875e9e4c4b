// Package colour implements the colour analysis engine: colour space
// conversion, perceptual distance, named-colour lookup, k-means palette
// extraction and sample grid resolution.
package colour

import (
	"encoding/hex"
	"fmt"
	"math"
	"strings"
)

// RGB represents a colour in 8-bit RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Lab represents a colour in CIE Lab space. L is in [0, 100],
// A and B are roughly in [-128, 127].
type Lab struct {
	L float64 `json:"l"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// ParseHex parses a 6-digit hex colour string with or without a leading '#'.
// All six characters must be hex digits; anything else is rejected.
func ParseHex(s string) (RGB, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("invalid hex colour %q: want 6 hex digits", s)
	}
	b, err := hex.DecodeString(h)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex colour %q: %w", s, err)
	}
	return RGB{R: b[0], G: b[1], B: b[2]}, nil
}

// RGBToLab converts an 8-bit RGB colour to CIE Lab under a D65 white point.
// The conversion is sRGB gamma decode, linear RGB to XYZ, XYZ to Lab.
func RGBToLab(rgb RGB) Lab {
	r := srgbToLinear(float64(rgb.R) / 255.0)
	g := srgbToLinear(float64(rgb.G) / 255.0)
	b := srgbToLinear(float64(rgb.B) / 255.0)

	// XYZ under D65, normalised to the reference white.
	x := (r*0.4124564 + g*0.3575761 + b*0.1804375) / 0.95047
	y := (r*0.2126729 + g*0.7151522 + b*0.0721750) / 1.00000
	z := (r*0.0193339 + g*0.1191920 + b*0.9503041) / 1.08883

	fx := labCurve(x)
	fy := labCurve(y)
	fz := labCurve(z)

	return Lab{
		L: 116.0*fy - 16.0,
		A: 500.0 * (fx - fy),
		B: 200.0 * (fy - fz),
	}
}

// srgbToLinear applies sRGB gamma decoding to a normalised channel.
func srgbToLinear(v float64) float64 {
	if v > 0.04045 {
		return math.Pow((v+0.055)/1.055, 2.4)
	}
	return v / 12.92
}

// labCurve applies the piecewise cube-root curve used by the XYZ to Lab
// transform.
func labCurve(t float64) float64 {
	if t > 0.008856 {
		return math.Cbrt(t)
	}
	return 7.787*t + 16.0/116.0
}

// DeltaE computes a simplified ΔE2000 perceptual distance between two Lab
// colours. Lightness, chroma and residual hue differences are weighted so
// that high-chroma colours tolerate more raw a/b difference; the mean chroma
// of the two colours drives the weighting, which keeps the metric symmetric.
// The same metric is used for palette deduplication and for nearest-name
// lookup so the two stay consistent.
func DeltaE(lab1, lab2 Lab) float64 {
	c1 := math.Hypot(lab1.A, lab1.B)
	c2 := math.Hypot(lab2.A, lab2.B)
	cm := (c1 + c2) / 2.0

	dl := lab1.L - lab2.L
	dc := c1 - c2
	da := lab1.A - lab2.A
	db := lab1.B - lab2.B

	// Residual hue difference once the chroma difference is removed.
	dh := 0.0
	if hsq := da*da + db*db - dc*dc; hsq > 0 {
		dh = math.Sqrt(hsq)
	}

	sc := 1.0 + 0.045*cm
	sh := 1.0 + 0.015*cm

	return math.Sqrt(dl*dl + (dc/sc)*(dc/sc) + (dh/sh)*(dh/sh))
}
