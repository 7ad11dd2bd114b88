package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"counter/internal/counter"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewServer creates an MCP server with tools for counter views
func NewServer(svc *counter.Service) *server.MCPServer {
	s := server.NewMCPServer(
		"Counter",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	s.AddTool(
		mcp.NewTool("create_view",
			mcp.WithDescription("Create a fresh counter view. The counter starts at 0. Returns the view ID used by the other tools."),
		),
		handleCreateView(svc),
	)

	s.AddTool(
		mcp.NewTool("click",
			mcp.WithDescription("Click the counter button of a view once. The count goes up by exactly one."),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description("The view ID returned by create_view"),
			),
		),
		handleClick(svc),
	)

	s.AddTool(
		mcp.NewTool("get_view",
			mcp.WithDescription("Read the current count and button label of a view."),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description("The view ID returned by create_view"),
			),
		),
		handleGetView(svc),
	)

	s.AddTool(
		mcp.NewTool("close_view",
			mcp.WithDescription("Tear a view down. Its count is discarded."),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description("The view ID returned by create_view"),
			),
		),
		handleCloseView(svc),
	)

	return s
}

func handleCreateView(svc *counter.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		st, err := svc.Create(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to create view: %v", err)), nil
		}
		return stateResult(st), nil
	}
}

func handleClick(svc *counter.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := req.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError("id is required"), nil
		}

		st, err := svc.Increment(ctx, id)
		if err != nil {
			return viewError("click", err), nil
		}
		return stateResult(st), nil
	}
}

func handleGetView(svc *counter.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := req.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError("id is required"), nil
		}

		st, err := svc.Get(ctx, id)
		if err != nil {
			return viewError("get view", err), nil
		}
		return stateResult(st), nil
	}
}

func handleCloseView(svc *counter.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := req.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError("id is required"), nil
		}

		if err := svc.Close(ctx, id); err != nil {
			return viewError("close view", err), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("view %s closed", id)), nil
	}
}

// Helper functions

func stateResult(st counter.State) *mcp.CallToolResult {
	data, _ := json.MarshalIndent(st, "", "  ")
	return mcp.NewToolResultText(string(data))
}

func viewError(action string, err error) *mcp.CallToolResult {
	if errors.Is(err, counter.ErrViewNotFound) {
		return mcp.NewToolResultError("view not found")
	}
	return mcp.NewToolResultError(fmt.Sprintf("failed to %s: %v", action, err))
}
