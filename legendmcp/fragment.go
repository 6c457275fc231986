package main

import (
	"fmt"

	"github.com/mark3labs/mcp-go/server"

	"hoverlegend/legend"
)

type FragmentSeries struct {
	Name          string    `json:"name" jsonschema:"description=Series name shown in the legend,required"`
	Color         string    `json:"color,omitempty" jsonschema:"description=CSS color for the series. If not provided, uses the default color palette"`
	StrokePattern []float64 `json:"strokePattern,omitempty" jsonschema:"description=Alternating dash/gap lengths in pixels. Omit for a solid line"`
	Hidden        bool      `json:"hidden,omitempty" jsonschema:"description=Exclude this series from the legend"`
}

type FragmentPoint struct {
	Name string  `json:"name" jsonschema:"description=Series name this point belongs to,required"`
	YVal float64 `json:"yval" jsonschema:"description=Raw data value at the selection"`
}

type FragmentSelection struct {
	X      float64         `json:"x" jsonschema:"description=Selected x value"`
	Row    int             `json:"row,omitempty" jsonschema:"description=Data row index of the selection"`
	Points []FragmentPoint `json:"points" jsonschema:"description=Highlighted points at the selected x,minItems=1"`
}

type FragmentArgs struct {
	Series         []FragmentSeries   `json:"series" jsonschema:"description=Series to include in the legend,minItems=1"`
	Selection      *FragmentSelection `json:"selection,omitempty" jsonschema:"description=Current selection. Omit to render the idle legend"`
	Highlight      string             `json:"highlight,omitempty" jsonschema:"description=Name of the series to visually distinguish"`
	ShowZeroValues *bool              `json:"showZeroValues,omitempty" jsonschema:"description=Keep legend lines for zero values. Defaults to true"`
	SeparateLines  bool               `json:"separateLines,omitempty" jsonschema:"description=Put every legend entry on its own line"`
	BudgetEm       float64            `json:"budgetEm,omitempty" jsonschema:"description=Width available per dash swatch, in em. Defaults to 1"`
}

func generateFragmentHTML(args FragmentArgs) map[string]any {
	opts := map[string]any{}
	if args.ShowZeroValues != nil {
		opts[legend.OptShowZeroValues] = *args.ShowZeroValues
	}
	if args.SeparateLines {
		opts[legend.OptSeparateLines] = true
	}

	series := make([]legend.SeriesInfo, len(args.Series))
	for i, s := range args.Series {
		series[i] = legend.SeriesInfo{
			Name:          s.Name,
			Color:         s.Color,
			StrokePattern: s.StrokePattern,
			Visible:       !s.Hidden,
		}
	}

	host := &legend.StaticHost{
		Opts:       opts,
		SeriesList: series,
		Highlight:  args.Highlight,
	}

	var sel *legend.SelectEvent
	if args.Selection != nil {
		points := make([]legend.Point, len(args.Selection.Points))
		for i, p := range args.Selection.Points {
			points[i] = legend.Point{Name: p.Name, YVal: p.YVal}
		}
		sel = &legend.SelectEvent{X: args.Selection.X, Points: points, Row: args.Selection.Row}
	}

	budget := args.BudgetEm
	if budget == 0 {
		budget = 1
	}

	return map[string]any{
		"html": legend.GenerateHTML(host, sel, budget),
	}
}

func validateFragmentArgs(args FragmentArgs) error {
	if len(args.Series) == 0 {
		return fmt.Errorf("series must contain at least one item")
	}
	known := map[string]bool{}
	for _, s := range args.Series {
		if s.Name == "" {
			return fmt.Errorf("series name must not be empty")
		}
		known[s.Name] = true
	}
	if args.Selection != nil {
		for _, p := range args.Selection.Points {
			if !known[p.Name] {
				return fmt.Errorf("point references unknown series %q", p.Name)
			}
		}
	}
	return nil
}

func registerFragmentTool(srv *server.MCPServer) {
	registerRenderTool(srv, renderToolConfig{
		name: "legend-html-generator",
		description: `Generates the HTML fragment for a chart legend or hover tooltip.
		              Without a selection it lists every visible series with a dash swatch;
		              with a selection it shows the formatted x value and one entry per
		              highlighted point. All names and values are HTML-escaped.`,
	},
		generateFragmentHTML,
		validateFragmentArgs,
	)
}
