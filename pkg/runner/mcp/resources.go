package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	catalogrunner "tableflip.dev/mood/pkg/runner/catalog"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerEntriesResource(srv, svc)
	registerCatalogResource(srv)
	registerEntryTemplate(srv, svc)
}

func registerEntriesResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"mood://entries",
		"Mood Entries",
		mcp.WithResourceDescription("Every logged mood entry, newest first."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		entries, err := svc.ListEntries(ctx, 0, 0)
		if err != nil {
			return nil, err
		}
		payload := map[string]any{
			"count":   len(entries),
			"entries": entries,
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func registerCatalogResource(srv *server.MCPServer) {
	resource := mcp.NewResource(
		"mood://catalog",
		"Mood Catalog",
		mcp.WithResourceDescription("Moods and activities that can be logged."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return encodeResourceJSON(request.Params.URI, catalogrunner.Listing())
	})
}

func registerEntryTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"mood://entries/{id}",
		"Mood Entry",
		mcp.WithTemplateDescription("A single mood entry."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		id := templateArg(request.Params.Arguments["id"])
		if id == "" {
			return nil, fmt.Errorf("entry id is required")
		}
		dto, err := svc.EntryByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, map[string]any{"entry": dto})
	})
}

// templateArg unwraps a URI template variable, which the server may hand
// over as a string or a single-element slice.
func templateArg(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case []string:
		if len(v) > 0 {
			return v[0]
		}
	}
	return ""
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
