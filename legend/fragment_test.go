package legend

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHost(opts map[string]any) *StaticHost {
	if opts == nil {
		opts = map[string]any{}
	}
	return &StaticHost{
		Opts: opts,
		SeriesList: []SeriesInfo{
			{Name: "CPU", Color: "#ff0000", Visible: true},
			{Name: "Memory", Color: "#0000ff", StrokePattern: []float64{8, 4}, Visible: true},
			{Name: "Swap", Color: "#00ff00", Visible: false},
		},
		Area:   Rect{X: 40, Y: 10, W: 400, H: 200},
		Width:  480,
		Height: 240,
	}
}

func selection(points ...Point) *SelectEvent {
	return &SelectEvent{X: 1500, Points: points, Row: 3}
}

func TestGenerateHTML_UnselectedLegend(t *testing.T) {
	host := testHost(nil)
	html := GenerateHTML(host, nil, 10)

	assert.Contains(t, html, "CPU")
	assert.Contains(t, html, "Memory")
	assert.NotContains(t, html, "Swap", "hidden series must not appear")
	assert.Contains(t, html, "font-weight: bold; color: #ff0000")
	// the dashed series carries a multi-segment swatch
	assert.Contains(t, html, "margin-right:")
	assert.NotContains(t, html, "<br/>")
}

func TestGenerateHTML_UnselectedRespectsMode(t *testing.T) {
	for _, mode := range []string{ModeFollow, ModeNever} {
		host := testHost(map[string]any{OptMode: mode})
		assert.Empty(t, GenerateHTML(host, nil, 10), "mode %q", mode)
	}
}

func TestGenerateHTML_SeparateLines(t *testing.T) {
	host := testHost(map[string]any{OptSeparateLines: true})
	assert.Contains(t, GenerateHTML(host, nil, 10), "<br/>")

	sel := selection(
		Point{Name: "CPU", YVal: 1, CanvasY: 50},
		Point{Name: "Memory", YVal: 2, CanvasY: 60},
	)
	assert.Contains(t, GenerateHTML(host, sel, 10), "<br/>")
}

func TestGenerateHTML_Selected(t *testing.T) {
	host := testHost(nil)
	host.Highlight = "Memory"
	sel := selection(
		Point{Name: "CPU", YVal: 42.5, CanvasY: 50},
		Point{Name: "Memory", YVal: 17, CanvasY: 80},
	)
	html := GenerateHTML(host, sel, 10)

	assert.Contains(t, html, "1500:")
	assert.Contains(t, html, ">CPU</span></b>:&#160;42.5")
	assert.Contains(t, html, ">Memory</span></b>:&#160;17")
	assert.Contains(t, html, `<span class="highlight"> <b><span style='color: #0000ff;'>Memory`)
	assert.NotContains(t, html, "Swap")
}

func TestGenerateHTML_SeriesWithoutPointSkipped(t *testing.T) {
	host := testHost(nil)
	sel := selection(Point{Name: "CPU", YVal: 1, CanvasY: 50})
	html := GenerateHTML(host, sel, 10)

	assert.Contains(t, html, "CPU")
	assert.NotContains(t, html, "Memory")
}

func TestGenerateHTML_OffCanvasPointSkipped(t *testing.T) {
	host := testHost(nil)
	sel := selection(
		Point{Name: "CPU", YVal: 1, CanvasY: math.NaN()},
		Point{Name: "Memory", YVal: 2, CanvasY: 60},
	)
	html := GenerateHTML(host, sel, 10)

	assert.NotContains(t, html, "CPU</span>")
	assert.Contains(t, html, "Memory")
}

func TestGenerateHTML_ZeroSuppression(t *testing.T) {
	sel := func() *SelectEvent {
		return selection(
			Point{Name: "CPU", YVal: 0, CanvasY: 50},
			Point{Name: "Memory", YVal: 5, CanvasY: 60},
		)
	}

	suppressed := testHost(map[string]any{OptShowZeroValues: false})
	html := GenerateHTML(suppressed, sel(), 10)
	assert.NotContains(t, html, "CPU</span>")
	assert.Contains(t, html, "Memory")

	// default keeps zero values
	html = GenerateHTML(testHost(nil), sel(), 10)
	assert.Contains(t, html, ">CPU</span></b>:&#160;0")
}

func TestGenerateHTML_EscapesNamesAndFormatterOutput(t *testing.T) {
	host := testHost(nil)
	host.SeriesList = []SeriesInfo{
		{Name: `<b>"R&D"</b>`, Color: "#123456", Visible: true},
	}
	host.Formatters = map[string]ValueFormatter{
		"x": func(v float64, _ string, _, _ int) string { return `<time value="x&y">` },
		"y": func(v float64, _ string, _, _ int) string { return fmt.Sprintf("%g <units>", v) },
	}
	sel := selection(Point{Name: `<b>"R&D"</b>`, YVal: 9, CanvasY: 10})
	html := GenerateHTML(host, sel, 10)

	assert.NotContains(t, html, `<b>"R&D"</b>`)
	assert.Contains(t, html, "&lt;b&gt;&quot;R&amp;D&quot;&lt;/b&gt;")
	assert.Contains(t, html, "&lt;time value=&quot;x&amp;y&quot;&gt;")
	assert.Contains(t, html, "9 &lt;units&gt;")
}

func TestGenerateHTML_FormatterReceivesColumnIndexes(t *testing.T) {
	host := testHost(nil)
	var cols []int
	var rows []int
	host.Formatters = map[string]ValueFormatter{
		"x": func(_ float64, _ string, row, col int) string {
			rows = append(rows, row)
			cols = append(cols, col)
			return "x"
		},
		"y": func(_ float64, _ string, row, col int) string {
			rows = append(rows, row)
			cols = append(cols, col)
			return "y"
		},
	}
	sel := selection(
		Point{Name: "CPU", YVal: 1, CanvasY: 1},
		Point{Name: "Memory", YVal: 2, CanvasY: 2},
	)
	GenerateHTML(host, sel, 10)

	assert.Equal(t, []int{0, 1, 2}, cols, "x is column 0, series follow in order")
	assert.Equal(t, []int{3, 3, 3}, rows)
}

func TestGenerateHTML_UserFormatter(t *testing.T) {
	var got Data
	host := testHost(map[string]any{
		OptFormatter: Formatter(func(d Data) string {
			got = d
			return "custom"
		}),
	})
	sel := selection(Point{Name: "Memory", YVal: 7, CanvasY: 5})

	assert.Equal(t, "custom", GenerateHTML(host, sel, 10))

	require.NotNil(t, got.X)
	assert.Equal(t, 1500.0, *got.X)
	assert.Equal(t, "1500", got.XHTML)
	require.Len(t, got.Series, 3)

	memory := got.Series[1]
	assert.Equal(t, "Memory", memory.Label)
	require.NotNil(t, memory.Y)
	assert.Equal(t, 7.0, *memory.Y)
	assert.Equal(t, "7", memory.YHTML)
	assert.NotEmpty(t, memory.DashHTML)

	assert.Nil(t, got.Series[0].Y, "series without a point has no value")
	assert.False(t, got.Series[2].IsVisible)

	// formatter output is trusted even for the unselected legend
	assert.Equal(t, "custom", GenerateHTML(host, nil, 10))
	assert.Nil(t, got.X)
}

func TestGenerateHTML_PaletteFallback(t *testing.T) {
	host := testHost(nil)
	host.SeriesList = []SeriesInfo{{Name: "A", Visible: true}}
	html := GenerateHTML(host, nil, 10)
	assert.Contains(t, html, defaultPalette[0])
}
