package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewCasePilotMCPServer creates a new MCP server with every validation gate
// registered as a tool. The repoPath is the case-studies repo root used for
// configuration and history.
func NewCasePilotMCPServer(repoPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"casepilot",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, repoPath)
	registerResources(s, repoPath)

	return s
}
