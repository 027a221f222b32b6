package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors. Tile colors follow the classic 2048 palette as closely
// as a 256-color terminal allows.
const (
	ColorDefault Color = iota
	ColorGray
	ColorWhite
	ColorBrightWhite
	ColorYellow
	ColorBrightYellow
	ColorOrange
	ColorRed
	ColorBrightRed
	ColorMagenta
	ColorCyan
	ColorGreen
)

// tileColors maps tile values to colors. Larger tiles reuse the last entry.
var tileColors = []struct {
	value int
	color Color
}{
	{2, ColorWhite},
	{4, ColorBrightWhite},
	{8, ColorYellow},
	{16, ColorOrange},
	{32, ColorRed},
	{64, ColorBrightRed},
	{128, ColorBrightYellow},
	{256, ColorBrightYellow},
	{512, ColorGreen},
	{1024, ColorCyan},
	{2048, ColorMagenta},
}

// TileColor returns the display color for a tile value.
func TileColor(value int) Color {
	if value <= 0 {
		return ColorDefault
	}
	c := ColorGray
	for _, tc := range tileColors {
		if value < tc.value {
			break
		}
		c = tc.color
	}
	return c
}
