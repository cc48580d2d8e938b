package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"vaultsearch/internal/application/commands"
)

// RegisterWriteTools adds the tools that change the selected vault.
func RegisterWriteTools(s *server.MCPServer, deps Deps) {
	s.AddTool(selectVaultTool(), selectVaultHandler(deps))
}

// --- select_vault ---

func selectVaultTool() mcp.Tool {
	return mcp.NewTool("select_vault",
		mcp.WithDescription("Index a directory as the vault to search. Replaces the previously selected vault."),
		mcp.WithString("path",
			mcp.Description("Absolute path of the vault directory"),
			mcp.Required(),
		),
	)
}

func selectVaultHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := req.GetString("path", "")

		cmd := commands.NewSelectVaultCommand(deps.Guard, deps.Crawler, deps.Store, path)
		result, err := cmd.Execute(ctx)
		if err != nil {
			deps.log().Warn().Err(err).Str("path", path).Msg("vault selection rejected")
			return toolError(err)
		}

		deps.log().LogVaultIndexed(result.Vault, result.Count, result.Stats.ReadFailures, result.Stats.Duration)
		return mcp.NewToolResultText(fmt.Sprintf("Indexed %d notes from %s", result.Count, result.Vault)), nil
	}
}
