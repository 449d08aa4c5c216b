package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/kolapsis/taskhero/internal/tracker"
)

// Deps holds shared dependencies injected into MCP handlers.
type Deps struct {
	Tracker *tracker.Tracker
	Version string
}

// NewServer creates and configures the MCP server with all tools registered.
func NewServer(deps *Deps) *server.MCPServer {
	s := server.NewMCPServer(
		"TaskHero",
		deps.Version,
		server.WithToolCapabilities(true),
		server.WithLogging(),
	)

	registerTools(s, deps)

	return s
}
