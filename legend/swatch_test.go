package legend

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countBlocks(html string) int {
	return strings.Count(html, "<div")
}

var emRe = regexp.MustCompile(`(padding-left|margin-right): ([0-9.]+(?:e-?[0-9]+)?)em`)

// sumEm adds up every padding-left and margin-right value in the fragment.
func sumEm(t *testing.T, html string) float64 {
	t.Helper()
	var total float64
	for _, m := range emRe.FindAllStringSubmatch(html, -1) {
		v, err := strconv.ParseFloat(m[2], 64)
		require.NoError(t, err)
		total += v
	}
	return total
}

func TestSwatch_SolidLine(t *testing.T) {
	tests := []struct {
		name    string
		pattern []float64
	}{
		{"nil pattern", nil},
		{"empty pattern", []float64{}},
		{"single element", []float64{5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html := Swatch(tt.pattern, "#00f", 4)
			assert.Equal(t, 1, countBlocks(html), "solid line must be a single swatch element")
			assert.Contains(t, html, "padding-left: 1em")
			assert.Contains(t, html, "2px solid #00f")

			// budget must not influence a solid swatch
			assert.Equal(t, html, Swatch(tt.pattern, "#00f", 1))
			assert.Equal(t, html, Swatch(tt.pattern, "#00f", 100))
		})
	}
}

func TestSwatch_TilesWhenPatternFitsTwice(t *testing.T) {
	// cycle = 2+2+2 = 6, denominator 4, floor(10/4) = 2 repetitions
	html := Swatch([]float64{2, 2}, "#0a0", 10)
	assert.Equal(t, 2, countBlocks(html))
	assert.Contains(t, html, "padding-left: 0.2em")
	assert.Contains(t, html, "margin-right: 0.2em")
	// tiling never repeats the closing segment, so no zero trailing gap
	assert.NotContains(t, html, "margin-right: 0em")
}

func TestSwatch_TilingProportion(t *testing.T) {
	pattern := []float64{3, 1}
	budget := 20.0
	// denominator = 3+1+3-3 = 4, so 5 repetitions
	html := Swatch(pattern, "#000", budget)
	require.Equal(t, 5, countBlocks(html))

	want := 5 * (3 + 1) / budget
	assert.InDelta(t, want, sumEm(t, html), 1e-9)
}

func TestSwatch_SqueezeEndToEnd(t *testing.T) {
	// The worked example: [8,4] at budget 1 forces the squeeze branch,
	// scaling by the 20px cycle and echoing the leading segment.
	got := Swatch([]float64{8, 4}, "#f00", 1)

	block := func(drawn, gap string) string {
		return `<div style="display: inline-block; position: relative; bottom: .5ex; padding-left: ` +
			drawn + `em; height: 1px; border-bottom: 2px solid #f00; margin-right: ` + gap + `em;"></div>`
	}
	want := block("0.4", "0.2") + block("0.4", "0")
	assert.Equal(t, want, got)
}

func TestSwatch_SqueezeClosesLoop(t *testing.T) {
	html := Swatch([]float64{6, 2, 2, 2}, "#333", 1)
	// 4-element pattern squeezed once: two real pairs plus the echoed
	// leading segment.
	assert.Equal(t, 3, countBlocks(html))
	assert.True(t, strings.HasSuffix(html, `margin-right: 0em;"></div>`),
		"closing segment must have no trailing gap")
}

func TestSwatch_LoopCountGuards(t *testing.T) {
	tests := []struct {
		name    string
		pattern []float64
		budget  float64
	}{
		{"zero budget", []float64{8, 4}, 0},
		{"negative budget", []float64{8, 4}, -3},
		{"infinite budget", []float64{8, 4}, math.Inf(1)},
		{"nan budget", []float64{8, 4}, math.NaN()},
		{"zero-length gap element", []float64{10, 0}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html := Swatch(tt.pattern, "#f00", tt.budget)
			// every guard lands in the squeeze branch: one repetition plus
			// the echoed leading segment
			assert.Equal(t, len(tt.pattern)/2+1, countBlocks(html))
		})
	}
}
