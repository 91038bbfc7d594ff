package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/mood/pkg/catalog"
	catalogrunner "tableflip.dev/mood/pkg/runner/catalog"
	"tableflip.dev/mood/pkg/timeutil"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerLogMoodTool(srv, svc)
	registerListEntriesTool(srv, svc)
	registerGetEntryTool(srv, svc)
	registerDeleteEntryTool(srv, svc)
	registerClearEntriesTool(srv, svc)
	registerListCatalogTool(srv)
	registerMoodSummaryTool(srv, svc)
}

func registerLogMoodTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"log_mood",
		mcp.WithDescription("Record how the user feels right now, optionally tagged with activities."),
		mcp.WithString("mood",
			mcp.Required(),
			mcp.Description("Mood id."),
			mcp.Enum(catalog.MoodIDs()...),
		),
		mcp.WithArray("activities",
			mcp.Description("Activity ids or labels such as work, music or coffee."),
			mcp.Items(map[string]any{"type": "string"}),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Mood       string   `json:"mood"`
			Activities []string `json:"activities"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		dto, err := svc.LogMood(ctx, args.Mood, args.Activities)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerListEntriesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_entries",
		mcp.WithDescription("List mood entries, newest first."),
		mcp.WithString("window",
			mcp.Description("Optional look-back window such as 1d, 1w or all."),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of entries to return."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		window, err := timeutil.ParseWindow(request.GetString("window", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		limit := request.GetInt("limit", 0)

		entries, err := svc.ListEntries(ctx, window, limit)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"window":  timeutil.FormatWindow(window),
			"count":   len(entries),
			"entries": entries,
		})
	})
}

func registerGetEntryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_entry",
		mcp.WithDescription("Fetch a single mood entry by id."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Entry identifier."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.EntryByID(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerDeleteEntryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"delete_entry",
		mcp.WithDescription("Delete one mood entry."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Entry identifier to delete."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, deleted, err := svc.DeleteEntry(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if !deleted {
			return toJSONResult(map[string]any{"deleted": nil, "message": "nothing deleted, no entry with id " + id})
		}
		return toJSONResult(map[string]any{"deleted": dto})
	})
}

func registerClearEntriesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"clear_entries",
		mcp.WithDescription("Delete every mood entry. Ask the user first and pass confirm=true."),
		mcp.WithBoolean("confirm",
			mcp.Required(),
			mcp.Description("Must be true; the user agreed to lose every entry."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		confirm, err := request.RequireBool("confirm")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		n, err := svc.ClearEntries(ctx, confirm)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{"cleared": n})
	})
}

func registerListCatalogTool(srv *server.MCPServer) {
	tool := mcp.NewTool(
		"list_catalog",
		mcp.WithDescription("List the moods and activities that can be logged."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return toJSONResult(catalogrunner.Listing())
	})
}

func registerMoodSummaryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"mood_summary",
		mcp.WithDescription("Count moods and activities over a window."),
		mcp.WithString("window",
			mcp.Description("Look-back window such as 1d, 1w or all. Defaults to 1w."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		window, err := timeutil.ParseWindow(request.GetString("window", "1w"))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		summary, err := svc.Summary(window)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(summary)
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
