// Package mcpserver provides an MCP (Model Context Protocol) server that
// exposes Makefile targets to LLM clients via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/tiwaz/internal/apperr"
	"github.com/starford/tiwaz/internal/makefile"
)

// Loader returns the current Makefile targets.
type Loader func() ([]makefile.Target, error)

// Runner dispatches a named target.
type Runner func(ctx context.Context, name string) error

// Server wraps the MCP server with the target tools.
type Server struct {
	mcp  *server.MCPServer
	load Loader
	run  Runner
}

// New creates a new MCP server with the target tools registered.
func New(load Loader, run Runner) *Server {
	s := &Server{load: load, run: run}

	s.mcp = server.NewMCPServer(
		"Tiwaz",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	s.mcp.AddTool(mcp.NewTool("list_targets",
		mcp.WithDescription("List the targets of the nearest Makefile with their descriptions."),
	), s.listTargets)

	s.mcp.AddTool(mcp.NewTool("run_target",
		mcp.WithDescription("Run a named Makefile target in the configured terminal surface."),
		mcp.WithString("target", mcp.Required(), mcp.Description("Name of the target to run")),
	), s.runTarget)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

func (s *Server) listTargets(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	targets, err := s.load()
	if err != nil {
		if errors.Is(err, apperr.ErrNoTargets) {
			return mcp.NewToolResultText("no targets found"), nil
		}
		return mcp.NewToolResultError(err.Error()), nil
	}

	type row struct {
		Name        string `json:"name"`
		Description string `json:"description,omitempty"`
	}
	rows := make([]row, len(targets))
	for i, t := range targets {
		rows[i] = row{Name: t.Name, Description: t.Description}
	}
	out, _ := json.MarshalIndent(rows, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) runTarget(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("target")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := s.run(ctx, name); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("dispatched: make %s", name)), nil
}
