package legend

import (
	"math"
	"strconv"
	"strings"
)

// Data is the structured form of one legend rendering, handed to a
// user-supplied Formatter in place of the built-in markup.
type Data struct {
	// X is the selected x value, nil when nothing is selected.
	X *float64
	// XHTML is the formatted, escaped x value.
	XHTML  string
	Series []SeriesData
}

// SeriesData is one series' slot in Data.
type SeriesData struct {
	Label         string
	LabelHTML     string
	Color         string
	DashHTML      string
	IsVisible     bool
	IsHighlighted bool
	// Y is the series' value at the selection, nil when the series has no
	// point there (or nothing is selected). YHTML is its formatted,
	// escaped form.
	Y     *float64
	YHTML string
}

// Formatter replaces the built-in legend markup. Its return value is
// inserted verbatim, so the formatter is responsible for escaping anything
// it does not build from the pre-escaped fields of Data.
type Formatter func(Data) string

// GenerateHTML builds the legend markup for the host's series set. sel
// carries the current selection; pass nil for the unselected legend, which
// renders one swatch-plus-name line per visible series when the display mode
// is ModeAlways and an empty string otherwise.
func GenerateHTML(host Host, sel *SelectEvent, budgetEm float64) string {
	data := buildData(host, sel, budgetEm)
	if f := optFormatter(host); f != nil {
		return f(data)
	}
	sepLines := optBool(host, OptSeparateLines, false)
	if sel == nil {
		if optString(host, OptMode, ModeAlways) != ModeAlways {
			return ""
		}
		return renderUnselected(data, sepLines)
	}
	return renderSelected(data, sepLines)
}

func buildData(host Host, sel *SelectEvent, budgetEm float64) Data {
	series := host.Series()
	highlight := host.HighlightSeries()
	showZeros := optBool(host, OptShowZeroValues, true)

	var data Data
	data.Series = make([]SeriesData, 0, len(series))

	if sel != nil {
		x := sel.X
		data.X = &x
		xf := host.ValueFormatter("x")
		if xf == nil {
			xf = formatValue
		}
		data.XHTML = escapeHTML(xf(sel.X, "x", sel.Row, 0))
	}

	row := -1
	if sel != nil {
		row = sel.Row
	}

	for i, s := range series {
		color := seriesColor(s, i)
		entry := SeriesData{
			Label:         s.Name,
			LabelHTML:     escapeHTML(s.Name),
			Color:         color,
			DashHTML:      Swatch(s.StrokePattern, color, budgetEm),
			IsVisible:     s.Visible,
			IsHighlighted: s.Name == highlight,
		}
		if sel != nil {
			if pt, ok := pointFor(sel.Points, s.Name); ok && isOK(pt.CanvasY) {
				if pt.YVal != 0 || showZeros {
					y := pt.YVal
					entry.Y = &y
					yf := host.ValueFormatter(valueAxis(s))
					if yf == nil {
						yf = formatValue
					}
					entry.YHTML = escapeHTML(yf(pt.YVal, s.Name, row, i+1))
				}
			}
		}
		data.Series = append(data.Series, entry)
	}
	return data
}

func renderUnselected(data Data, sepLines bool) string {
	var b strings.Builder
	for _, s := range data.Series {
		if !s.IsVisible {
			continue
		}
		if b.Len() > 0 {
			if sepLines {
				b.WriteString("<br/>")
			} else {
				b.WriteString(" ")
			}
		}
		b.WriteString("<span style='font-weight: bold; color: " + s.Color + ";'>")
		b.WriteString(s.DashHTML)
		b.WriteString(" ")
		b.WriteString(s.LabelHTML)
		b.WriteString("</span>")
	}
	return b.String()
}

func renderSelected(data Data, sepLines bool) string {
	var b strings.Builder
	b.WriteString(data.XHTML)
	b.WriteString(":")
	for _, s := range data.Series {
		if !s.IsVisible || s.Y == nil {
			continue
		}
		if sepLines {
			b.WriteString("<br/>")
		}
		if s.IsHighlighted {
			b.WriteString("<span class=\"highlight\">")
		} else {
			b.WriteString("<span>")
		}
		b.WriteString(" <b><span style='color: " + s.Color + ";'>")
		b.WriteString(s.LabelHTML)
		b.WriteString("</span></b>:&#160;")
		b.WriteString(s.YHTML)
		b.WriteString("</span>")
	}
	return b.String()
}

func pointFor(points []Point, series string) (Point, bool) {
	for _, p := range points {
		if p.Name == series {
			return p, true
		}
	}
	return Point{}, false
}

func valueAxis(s SeriesInfo) string {
	if s.Axis == "" {
		return "y"
	}
	return s.Axis
}

func isOK(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func formatValue(v float64, _ string, _, _ int) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	`"`, "&quot;",
	"<", "&lt;",
	">", "&gt;",
)

func escapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}
