package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/casestudypilot/casepilot/internal/adapters/outbound/history"
	"github.com/casestudypilot/casepilot/internal/domain"
)

// registerResources registers the read-only repo resources on the given
// server.
func registerResources(s *server.MCPServer, repoPath string) {
	// 1. casepilot://config - effective repo configuration
	s.AddResource(
		mcplib.NewResource(
			"casepilot://config",
			"Configuration",
			mcplib.WithResourceDescription("Effective validation configuration for the repo"),
			mcplib.WithMIMEType("application/json"),
		),
		handleConfigResource(repoPath),
	)

	// 2. casepilot://history - recorded validation runs
	s.AddResource(
		mcplib.NewResource(
			"casepilot://history",
			"Validation History",
			mcplib.WithResourceDescription("Recorded validation runs for the repo"),
			mcplib.WithMIMEType("application/json"),
		),
		handleHistoryResource(repoPath),
	)

	// 3. casepilot://tables/companies - known company lookup table
	s.AddResource(
		mcplib.NewResource(
			"casepilot://tables/companies",
			"Known Companies",
			mcplib.WithResourceDescription("Company names searched for during consistency checks"),
			mcplib.WithMIMEType("application/json"),
		),
		handleTableResource("casepilot://tables/companies", repoPath, func(cfg domain.Config) []string {
			return cfg.KnownCompanyList()
		}),
	)

	// 4. casepilot://tables/projects - CNCF project lookup table
	s.AddResource(
		mcplib.NewResource(
			"casepilot://tables/projects",
			"CNCF Projects",
			mcplib.WithResourceDescription("CNCF project names counted during quality scoring"),
			mcplib.WithMIMEType("application/json"),
		),
		handleTableResource("casepilot://tables/projects", repoPath, func(domain.Config) []string {
			return domain.CNCFProjects
		}),
	)
}

func handleConfigResource(repoPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		cfg := loadRepoConfig(repoPath)

		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling config: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "casepilot://config",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

func handleHistoryResource(repoPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		entries, err := history.New().Load(repoPath)
		if err != nil {
			return nil, fmt.Errorf("loading history: %w", err)
		}
		if entries == nil {
			entries = []domain.RunEntry{}
		}

		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling history: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "casepilot://history",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

func handleTableResource(uri, repoPath string, pick func(domain.Config) []string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		cfg := loadRepoConfig(repoPath)

		data, err := json.MarshalIndent(pick(cfg), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling table: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      uri,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
