package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"iris/internal/application"
	"iris/internal/application/commands"
	"iris/internal/domain"
	"iris/internal/ports"
)

// RegisterTools adds the distance tools to the MCP server.
// history may be nil, in which case the history tool reports it is disabled.
func RegisterTools(s *server.MCPServer, engine *application.Engine, history ports.HistoryRepository, logger zerolog.Logger) {
	s.AddTool(bodiesTool(), bodiesHandler())
	s.AddTool(computeTool(), computeHandler(engine, history, logger))
	s.AddTool(historyTool(), historyHandler(history))
}

// --- bodies ---

func bodiesTool() mcp.Tool {
	return mcp.NewTool("bodies",
		mcp.WithDescription("List the planets distances can be computed for, ordered by distance from the Sun."),
	)
}

func bodiesHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		bodies, err := commands.NewListBodiesCommand().Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		names := make([]string, len(bodies))
		for i, b := range bodies {
			names[i] = b.String()
		}
		return mcp.NewToolResultText(strings.Join(names, "\n")), nil
	}
}

// --- compute ---

func computeTool() mcp.Tool {
	return mcp.NewTool("compute",
		mcp.WithDescription("Compute the Earth distance of a planet at the final time and its average radial velocity between the two times."),
		mcp.WithString("body",
			mcp.Description("Planet name, case-insensitive (e.g. Mars)"),
			mcp.Required(),
		),
		mcp.WithString("start",
			mcp.Description("Initial time, UTC, formatted YYYY-MM-DD HH:MM:SS"),
			mcp.Required(),
		),
		mcp.WithString("end",
			mcp.Description("Final time, UTC, formatted YYYY-MM-DD HH:MM:SS"),
			mcp.Required(),
		),
	)
}

func computeHandler(engine *application.Engine, history ports.HistoryRepository, logger zerolog.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewComputeCommand(engine, history,
			req.GetString("body", ""),
			req.GetString("start", ""),
			req.GetString("end", ""),
		).WithLogger(logger)

		report, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if report.OnEarth {
			return mcp.NewToolResultText(application.EarthMessage), nil
		}
		return mcp.NewToolResultText(application.FormatResult(report.Result)), nil
	}
}

// --- history ---

func historyTool() mcp.Tool {
	return mcp.NewTool("history",
		mcp.WithDescription("Show recent calculations, newest first."),
		mcp.WithNumber("limit",
			mcp.Description(fmt.Sprintf("Maximum number of calculations (default %d)", commands.DefaultHistoryLimit)),
		),
	)
}

func historyHandler(history ports.HistoryRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		limit := req.GetInt("limit", commands.DefaultHistoryLimit)

		calcs, err := commands.NewListHistoryCommand(history, limit).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(calcs) == 0 {
			return mcp.NewToolResultText("No calculations yet."), nil
		}

		var sb strings.Builder
		for _, c := range calcs {
			sb.WriteString(formatCalculation(c))
			sb.WriteByte('\n')
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(application.DescribeError(err)), nil
}

func formatCalculation(c domain.Calculation) string {
	return fmt.Sprintf("%s  %s -> %s  %s km  %s km/s",
		c.Body,
		domain.FormatTimestamp(c.Start),
		domain.FormatTimestamp(c.End),
		application.FormatNumber(c.Result.DistanceKm),
		application.FormatNumber(c.Result.VelocityKmS),
	)
}
