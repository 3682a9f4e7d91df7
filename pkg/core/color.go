package core

// Color is a linear RGBA colour. Channels may exceed 1 for light intensities.
type Color struct {
	R, G, B, A float64
}

// RGB creates an opaque colour
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA creates a colour with explicit alpha
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGBABytes creates a colour from 0-255 channel values
func RGBABytes(r, g, b, a uint8) Color {
	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

// Blend returns the component-wise product of two colours
func (c Color) Blend(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B, c.A * other.A}
}

// Add sums the RGB channels; alpha is kept from c
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B, c.A}
}

// Multiply scales the RGB channels; alpha is kept
func (c Color) Multiply(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar, c.A}
}

// Clamp returns a colour with RGB channels clamped to [min, max]
func (c Color) Clamp(min, max float64) Color {
	clampValue := func(val float64) float64 {
		if val < min {
			return min
		}
		if val > max {
			return max
		}
		return val
	}
	return Color{clampValue(c.R), clampValue(c.G), clampValue(c.B), c.A}
}
