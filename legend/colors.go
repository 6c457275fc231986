package legend

// default palette used when a series carries no explicit color
var defaultPalette = []string{
	"rgba(54, 162, 235, 1)",  // blue
	"rgba(255, 99, 132, 1)",  // red
	"rgba(75, 192, 192, 1)",  // teal
	"rgba(255, 206, 86, 1)",  // yellow
	"rgba(153, 102, 255, 1)", // purple
	"rgba(255, 159, 64, 1)",  // orange
	"rgba(46, 204, 113, 1)",  // green
	"rgba(231, 76, 60, 1)",   // dark red
	"rgba(52, 152, 219, 1)",  // medium blue
	"rgba(241, 196, 15, 1)",  // gold
	"rgba(155, 89, 182, 1)",  // violet
	"rgba(26, 188, 156, 1)",  // turquoise
}

// PickColor returns the user-supplied color at index if one is set,
// otherwise a color from the default palette.
func PickColor(userColors []string, index int) string {
	if index < len(userColors) && userColors[index] != "" {
		return userColors[index]
	}
	return defaultPalette[index%len(defaultPalette)]
}

// seriesColor resolves a series' display color, falling back to the palette
// by column index.
func seriesColor(s SeriesInfo, index int) string {
	if s.Color != "" {
		return s.Color
	}
	return PickColor(nil, index)
}
