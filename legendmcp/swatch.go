package main

import (
	"fmt"

	"github.com/mark3labs/mcp-go/server"

	"hoverlegend/legend"
)

type SwatchArgs struct {
	Pattern  []float64 `json:"pattern,omitempty" jsonschema:"description=Alternating dash/gap lengths in pixels (e.g. [8,4] = 8px on, 4px off). Empty or single-element renders a solid line"`
	Color    string    `json:"color" jsonschema:"description=CSS color for the line (e.g. '#ff0000', 'rgba(54, 162, 235, 1)'),required"`
	BudgetEm float64   `json:"budgetEm,omitempty" jsonschema:"description=Width available for the swatch, measured in em. Defaults to 1"`
}

func generateSwatchHTML(args SwatchArgs) map[string]any {
	budget := args.BudgetEm
	if budget == 0 {
		budget = 1
	}
	return map[string]any{
		"html": legend.Swatch(args.Pattern, args.Color, budget),
	}
}

func validateSwatchArgs(args SwatchArgs) error {
	if args.Color == "" {
		return fmt.Errorf("color must not be empty")
	}
	if args.BudgetEm < 0 {
		return fmt.Errorf("budgetEm must be positive")
	}
	for _, v := range args.Pattern {
		if v < 0 {
			return fmt.Errorf("pattern entries must be >= 0")
		}
	}
	return nil
}

func registerSwatchTool(srv *server.MCPServer) {
	registerRenderTool(srv, renderToolConfig{
		name: "legend-swatch-generator",
		description: `Generates an inline HTML swatch for a dashed or solid line style.
		              The swatch tiles the dash pattern across the available width when it fits
		              at least twice, and scales a single repetition down to fit otherwise.
		              Use this to build chart legends that preview each series' stroke style.`,
	},
		generateSwatchHTML,
		validateSwatchArgs,
	)
}
