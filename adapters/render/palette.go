package render

import (
	"image/color"
	"math"
)

// Color is an opaque RGB color.
type Color struct {
	R, G, B uint8
}

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}.RGBA()
}

// missingColor is the neutral gray drawn for NaN cells.
var missingColor = Color{0xB0, 0xB0, 0xB0}

// DefaultPalette is the fallback for unknown palette names.
const DefaultPalette = "YlGnBu"

// paletteOrder is the palette set offered to the user, in menu order.
var paletteOrder = []string{
	"YlGnBu", "Viridis", "Plasma", "Inferno", "Magma", "RdBu_r", "Rocket", "Mako",
}

// Palette color stops, low to high. Cell colors interpolate linearly
// between adjacent stops.
var palettes = map[string][]Color{
	"YlGnBu":  {{0xFF, 0xFF, 0xD9}, {0xC7, 0xE9, 0xB4}, {0x41, 0xB6, 0xC4}, {0x22, 0x5E, 0xA8}, {0x08, 0x1D, 0x58}},
	"Viridis": {{0x44, 0x01, 0x54}, {0x3B, 0x52, 0x8B}, {0x21, 0x91, 0x8C}, {0x5E, 0xC9, 0x62}, {0xFD, 0xE7, 0x25}},
	"Plasma":  {{0x0D, 0x08, 0x87}, {0x7E, 0x03, 0xA8}, {0xCC, 0x47, 0x78}, {0xF8, 0x94, 0x41}, {0xF0, 0xF9, 0x21}},
	"Inferno": {{0x00, 0x00, 0x04}, {0x57, 0x10, 0x6E}, {0xBC, 0x37, 0x54}, {0xF9, 0x8C, 0x0A}, {0xFC, 0xFF, 0xA4}},
	"Magma":   {{0x00, 0x00, 0x04}, {0x51, 0x12, 0x7C}, {0xB7, 0x37, 0x79}, {0xFC, 0x89, 0x61}, {0xFC, 0xFD, 0xBF}},
	"RdBu_r":  {{0x05, 0x30, 0x61}, {0x43, 0x93, 0xC3}, {0xF7, 0xF7, 0xF7}, {0xD6, 0x60, 0x4D}, {0x67, 0x00, 0x1F}},
	"Rocket":  {{0x03, 0x05, 0x1A}, {0x61, 0x1F, 0x53}, {0xC0, 0x3A, 0x76}, {0xF2, 0x85, 0x5D}, {0xFA, 0xEB, 0xDD}},
	"Mako":    {{0x0B, 0x04, 0x05}, {0x35, 0x26, 0x4C}, {0x3E, 0x6C, 0x93}, {0x43, 0xBB, 0xAD}, {0xDE, 0xF5, 0xE5}},
}

// PaletteNames returns the supported palette names in menu order.
func PaletteNames() []string {
	out := make([]string, len(paletteOrder))
	copy(out, paletteOrder)
	return out
}

// paletteStops resolves a palette name, falling back to DefaultPalette.
func paletteStops(name string) []Color {
	if stops, ok := palettes[name]; ok {
		return stops
	}
	return palettes[DefaultPalette]
}

// colorAt interpolates a color for a normalized value t in [0,1].
// NaN maps to missingColor.
func colorAt(stops []Color, t float64) Color {
	if math.IsNaN(t) {
		return missingColor
	}
	if t <= 0 {
		return stops[0]
	}
	if t >= 1 {
		return stops[len(stops)-1]
	}

	pos := t * float64(len(stops)-1)
	i := int(pos)
	frac := pos - float64(i)
	a, b := stops[i], stops[i+1]
	return Color{
		R: lerpByte(a.R, b.R, frac),
		G: lerpByte(a.G, b.G, frac),
		B: lerpByte(a.B, b.B, frac),
	}
}

func lerpByte(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

// hex renders a color as #RRGGBB for SVG attributes.
func (c Color) hex() string {
	const digits = "0123456789ABCDEF"
	return string([]byte{
		'#',
		digits[c.R>>4], digits[c.R&0xF],
		digits[c.G>>4], digits[c.G&0xF],
		digits[c.B>>4], digits[c.B&0xF],
	})
}
