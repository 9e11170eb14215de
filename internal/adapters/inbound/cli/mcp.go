package cli

import (
	mcpadapter "github.com/casestudypilot/casepilot/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the CasePilot MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var repoPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start CasePilot MCP server (stdio)",
		Long:  "Start the CasePilot MCP server using stdio transport. This lets AI assistants run the validation gates and read the repo history.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if repoPath == "" {
				repoPath = "."
			}
			s := mcpadapter.NewCasePilotMCPServer(repoPath)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&repoPath, "repo", "", "Case-studies repo root (defaults to current working directory)")

	return cmd
}
