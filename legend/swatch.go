package legend

import (
	"math"
	"strconv"
	"strings"
)

// Swatch renders a dash pattern as an inline HTML fragment. budgetEm is the
// width available for the whole swatch, measured in the same units as one
// rendered "em" of the surrounding text. Patterns wide enough to repeat at
// least twice within the budget are tiled at true proportions; anything
// narrower is scaled down to a single repetition, with the leading segment
// echoed at the end so the swatch still reads as a repeating dash.
//
// Pattern entries are trusted: behavior for negative or non-numeric input is
// undefined.
func Swatch(pattern []float64, color string, budgetEm float64) string {
	if len(pattern) <= 1 {
		return `<div style="display: inline-block; position: relative; bottom: .5ex; padding-left: 1em; height: 1px; border-bottom: 2px solid ` +
			color + `;"></div>`
	}

	// One full repetition plus the leading segment counted again: the pixel
	// length a single pass needs to close its visual loop.
	var cycle float64
	for i := 0; i <= len(pattern); i++ {
		cycle += pattern[i%len(pattern)]
	}

	loops := math.Floor(budgetEm / (cycle - pattern[0]))
	normalized := make([]float64, len(pattern))
	span := len(pattern)
	if math.IsNaN(loops) || math.IsInf(loops, 0) || loops <= 1 {
		// Squeeze: one scaled repetition, first segment repeated at the end.
		loops = 1
		for i, v := range pattern {
			normalized[i] = v / cycle
		}
		span = len(pattern) + 1
	} else {
		for i, v := range pattern {
			normalized[i] = v / budgetEm
		}
	}

	var b strings.Builder
	for j := 0; j < int(loops); j++ {
		for i := 0; i < span; i += 2 {
			drawn := normalized[i%len(normalized)]
			// The synthetic closing segment carries no trailing gap.
			var gap float64
			if i < len(normalized) {
				gap = normalized[(i+1)%len(normalized)]
			}
			b.WriteString(`<div style="display: inline-block; position: relative; bottom: .5ex; padding-left: `)
			b.WriteString(formatEm(drawn))
			b.WriteString(`em; height: 1px; border-bottom: 2px solid `)
			b.WriteString(color)
			b.WriteString(`; margin-right: `)
			b.WriteString(formatEm(gap))
			b.WriteString(`em;"></div>`)
		}
	}
	return b.String()
}

func formatEm(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
