package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"roamstats/internal/application"
	"roamstats/internal/application/commands"
	"roamstats/internal/application/stats"
	"roamstats/internal/domain"
)

// LoaderFactory returns a fresh loader for one tool call, so concurrent
// calls never reset each other's results.
type LoaderFactory func() *stats.Loader

// RegisterStatsTools adds the read-only statistics tools to the MCP server.
func RegisterStatsTools(s *server.MCPServer, graph string, newLoader LoaderFactory) {
	s.AddTool(catalogTool(), catalogHandler())
	s.AddTool(allTool(), allHandler(graph, newLoader))
	s.AddTool(metricTool(), metricHandler(newLoader))
	s.AddTool(tagTool(), tagHandler(newLoader))
}

// --- stats_catalog ---

func catalogTool() mcp.Tool {
	return mcp.NewTool("stats_catalog",
		mcp.WithDescription("List the metric ids and tag names that can be counted."),
	)
}

func catalogHandler() server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var sb strings.Builder
		sb.WriteString("Metrics:\n")
		for _, id := range domain.Metrics {
			fmt.Fprintf(&sb, "  %s  %s\n", id, id.Label())
		}
		sb.WriteString("Tags:\n")
		for _, tag := range domain.Tags {
			fmt.Fprintf(&sb, "  %s\n", tag)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- stats_all ---

func allTool() mcp.Tool {
	return mcp.NewTool("stats_all",
		mcp.WithDescription("Count pages, blocks, words, characters, tag references and links in the graph."),
	)
}

func allHandler(graph string, newLoader LoaderFactory) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		res, err := commands.NewCollectStatsCommand(newLoader()).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(application.FormatReport(graph, res)), nil
	}
}

// --- stats_metric ---

func metricTool() mcp.Tool {
	return mcp.NewTool("stats_metric",
		mcp.WithDescription("Count a single metric. Use stats_catalog for the list of ids."),
		mcp.WithString("id",
			mcp.Description("Metric id (e.g. pages, codeBlocks, externalLinks)"),
			mcp.Required(),
		),
	)
}

func metricHandler(newLoader LoaderFactory) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := application.ParseMetric(req.GetString("id", ""))
		if err != nil {
			return toolError(err)
		}
		return collectOne(ctx, newLoader, domain.MetricKey(id), id.Label())
	}
}

// --- stats_tag ---

func tagTool() mcp.Tool {
	return mcp.NewTool("stats_tag",
		mcp.WithDescription("Count the blocks referencing one of the tracked tag pages."),
		mcp.WithString("tag",
			mcp.Description("Tag name (TODO, DONE, query, embed, table, kanban, video, roam/js)"),
			mcp.Required(),
		),
	)
}

func tagHandler(newLoader LoaderFactory) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		tag, err := application.ParseTag(req.GetString("tag", ""))
		if err != nil {
			return toolError(err)
		}
		return collectOne(ctx, newLoader, domain.TagKey(tag), string(tag))
	}
}

// --- helpers ---

func collectOne(ctx context.Context, newLoader LoaderFactory, k domain.Key, label string) (*mcp.CallToolResult, error) {
	res, err := commands.NewCollectStatsCommand(newLoader(), k).Execute(ctx)
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(fmt.Sprintf("%s: %s", label, application.FormatValue(res.Get(k)))), nil
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
