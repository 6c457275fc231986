// Package legend renders hover tooltips and legends for interactive charts:
// an overlay that tracks the chart's selection events and an HTML fragment
// generator with proportionally-correct dash pattern swatches.
package legend

// Rect is a chart's plotted area in pixels, relative to the chart's
// top-left corner.
type Rect struct {
	X, Y int
	W, H int
}

// SeriesInfo describes one plotted series as the host sees it.
type SeriesInfo struct {
	Name string
	// Color is a CSS color string. Empty means "pick from the default
	// palette by series index".
	Color string
	// StrokePattern is the alternating on/off dash lengths in pixels.
	// Nil or single-element patterns render as a solid line.
	StrokePattern []float64
	Visible       bool
	// Axis names the value axis the series is plotted against ("y" or
	// "y2"). Empty means "y".
	Axis string
}

// Point is one highlighted data point delivered with a select event.
// X and Y are normalized plot-area coordinates in [0,1]; YVal is the raw
// data value; CanvasY is the pixel position of the point, used only to
// drop points that did not land on the canvas.
type Point struct {
	Name    string
	X, Y    float64
	YVal    float64
	CanvasY float64
}

// SelectEvent carries the current selection: the selected x value, the
// points highlighted at that x, and the data row they came from.
type SelectEvent struct {
	X      float64
	Points []Point
	Row    int
}

// DeselectEvent signals that the selection was cleared.
type DeselectEvent struct{}

// PredrawEvent fires before the host redraws the chart.
type PredrawEvent struct{}

// ValueFormatter turns a raw axis value into display text for one series.
// row is the data row of the selection (-1 when nothing is selected) and
// col is the series' column index, with column 0 reserved for the x axis.
type ValueFormatter func(value float64, series string, row, col int) string

// Host is the capability surface a chart exposes to its overlay. It replaces
// direct reads of chart internals: options, per-axis formatters, series
// metadata and plot geometry all arrive through this interface.
type Host interface {
	// Option returns a chart-wide option value, reporting whether it is set.
	Option(name string) (any, bool)
	// OptionForAxis returns an option scoped to one axis ("x", "y", "y2").
	OptionForAxis(name, axis string) (any, bool)
	// ValueFormatter returns the formatter for an axis, or nil for the
	// default numeric formatting.
	ValueFormatter(axis string) ValueFormatter
	// Series lists all series in column order.
	Series() []SeriesInfo
	// HighlightSeries names the series under the cursor, or "".
	HighlightSeries() string
	// PlotArea is the rectangle data is drawn into.
	PlotArea() Rect
	// Size is the overall chart size in pixels.
	Size() (width, height int)
}

// StaticHost is a Host assembled from plain data. Embedders that do not run
// a full chart engine (tests, server-side rendering) fill it in directly.
type StaticHost struct {
	Opts       map[string]any
	AxisOpts   map[string]map[string]any
	SeriesList []SeriesInfo
	Highlight  string
	Area       Rect
	Width      int
	Height     int
	Formatters map[string]ValueFormatter
}

func (h *StaticHost) Option(name string) (any, bool) {
	v, ok := h.Opts[name]
	return v, ok
}

func (h *StaticHost) OptionForAxis(name, axis string) (any, bool) {
	if m, ok := h.AxisOpts[axis]; ok {
		if v, ok := m[name]; ok {
			return v, true
		}
	}
	return nil, false
}

func (h *StaticHost) ValueFormatter(axis string) ValueFormatter {
	return h.Formatters[axis]
}

func (h *StaticHost) Series() []SeriesInfo { return h.SeriesList }

func (h *StaticHost) HighlightSeries() string { return h.Highlight }

func (h *StaticHost) PlotArea() Rect { return h.Area }

func (h *StaticHost) Size() (int, int) { return h.Width, h.Height }
