package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"
)

// New builds the MCP server with every legend rendering tool registered.
func New() *server.MCPServer {
	srv := server.NewMCPServer("legend-renderer", "1.0.0")

	registerSwatchTool(srv)
	registerFragmentTool(srv)

	return srv
}

func main() {
	_, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := server.ServeStdio(New()); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}
