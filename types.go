package triangle

// Color is an RGBA color with float components in the 0.0-1.0 range,
// the form OpenGL expects for glClearColor.
type Color struct {
	R float32 `yaml:"r" toml:"r"`
	G float32 `yaml:"g" toml:"g"`
	B float32 `yaml:"b" toml:"b"`
	A float32 `yaml:"a" toml:"a"`
}

// ColorDarkBlue is the default clear color.
var ColorDarkBlue = Color{0, 0, 0.4, 0}

// RGBAf creates a color from float components, clamping each to 0.0-1.0.
func RGBAf(r, g, b, a float32) Color {
	return Color{
		R: clampf(r, 0, 1),
		G: clampf(g, 0, 1),
		B: clampf(b, 0, 1),
		A: clampf(a, 0, 1),
	}
}

// Clamped returns the color with every component clamped to 0.0-1.0.
func (c Color) Clamped() Color {
	return RGBAf(c.R, c.G, c.B, c.A)
}

// VideoMode is the resolution of a display.
type VideoMode struct {
	Width, Height int
}

// clampf clamps a float32 value to a range.
func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
