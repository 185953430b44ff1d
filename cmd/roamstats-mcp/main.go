package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "roamstats/internal/adapters/mcp"
	"roamstats/internal/bootstrap"
	"roamstats/internal/config"
	"roamstats/internal/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "roamstats-mcp: %v\n", err)
		os.Exit(1)
	}
	// stdout carries the protocol
	if err := bootstrap.ConfigureLogging(cfg, "stderr"); err != nil {
		fmt.Fprintf(os.Stderr, "roamstats-mcp: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	client, err := bootstrap.NewClient(cfg)
	if err != nil {
		log.Error(map[string]any{"error": err.Error()}, "roamstats-mcp")
		os.Exit(1)
	}

	mcpServer := server.NewMCPServer(
		"roamstats-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterStatsTools(mcpServer, cfg.Graph, bootstrap.LoaderFactory(cfg, client))

	log.Info(map[string]any{"graph": cfg.Graph}, "serving stats tools on stdio")
	if err := server.ServeStdio(mcpServer); err != nil {
		log.Error(map[string]any{"error": err.Error()}, "roamstats-mcp stopped")
		os.Exit(1)
	}
}
