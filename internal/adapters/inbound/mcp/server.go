package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewAppatchMCPServer creates an MCP server exposing the patcher for the
// Selaco tree rooted at projectPath.
func NewAppatchMCPServer(projectPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"appatch",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, projectPath)
	registerResources(s, projectPath)

	return s
}
