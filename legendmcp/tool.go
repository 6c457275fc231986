package main

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type renderToolConfig struct {
	name        string
	description string
}

func registerRenderTool[T any](
	srv *server.MCPServer,
	cfg renderToolConfig,
	generator func(T) map[string]any,
	validator func(T) error,
) {
	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args T
		if err := req.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("bind arguments: %v", err)), nil
		}

		// validate if validator provided
		if validator != nil {
			if err := validator(args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
		}

		return mcp.NewToolResultJSON(generator(args))
	}

	tool := mcp.NewTool(
		cfg.name,
		mcp.WithDescription(cfg.description),
		mcp.WithInputSchema[T](),
	)

	srv.AddTool(tool, handler)
}
