package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"vaultsearch/internal/adapters/treeview"
	"vaultsearch/internal/application/commands"
	"vaultsearch/internal/domain"
)

// RegisterReadTools adds all read-only vault tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, deps Deps) {
	s.AddTool(searchTool(), searchHandler(deps))
	s.AddTool(readNoteTool(), readNoteHandler(deps))
	s.AddTool(listDirectoryTool(), listDirectoryHandler(deps))
	s.AddTool(vaultInfoTool(), vaultInfoHandler(deps))
	s.AddTool(treeTool(), treeHandler(deps))
}

// --- search ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search",
		mcp.WithDescription("Search the selected vault. Matches notes whose title or content contains the query, ignoring case. Returns note ids, paths and obsidian:// links."),
		mcp.WithString("query",
			mcp.Description("Text to look for"),
			mcp.Required(),
		),
	)
}

func searchHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")
		if strings.TrimSpace(query) == "" {
			return toolError(fmt.Errorf("query is required"))
		}

		results, err := commands.NewSearchCommand(deps.Store, deps.Links, query).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if len(results) == 0 {
			return mcp.NewToolResultText("No results found."), nil
		}

		var sb strings.Builder
		for _, r := range results {
			fmt.Fprintf(&sb, "%d  %s  %s  %s\n", r.ID, r.Title, r.RelPath, r.URI)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- read_note ---

func readNoteTool() mcp.Tool {
	return mcp.NewTool("read_note",
		mcp.WithDescription("Read the indexed content of a note by the id returned from search."),
		mcp.WithString("id",
			mcp.Description("Note id (e.g. 12)"),
			mcp.Required(),
		),
	)
}

func readNoteHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		doc, err := commands.NewOpenDocumentCommand(deps.Store, rawID(req)).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "# %s\n", doc.Title)
		fmt.Fprintf(&sb, "path: %s\n\n", doc.RelPath)
		sb.WriteString(doc.Content)
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// rawID accepts the id as a string or a JSON number
func rawID(req mcp.CallToolRequest) string {
	v, ok := req.GetArguments()["id"]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// --- list_directory ---

func listDirectoryTool() mcp.Tool {
	return mcp.NewTool("list_directory",
		mcp.WithDescription("List a directory below the browse root to find a vault. Directories are marked with a trailing slash."),
		mcp.WithString("path",
			mcp.Description("Absolute directory path. Omit to list the browse root."),
		),
	)
}

func listDirectoryHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewListDirectoryCommand(deps.Guard, deps.Lister, req.GetString("path", ""))
		listing, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "%s\n", listing.Path)
		if len(listing.Dirs) == 0 && len(listing.Files) == 0 {
			sb.WriteString("(empty)\n")
		}
		for _, line := range formatEntries(listing.Dirs, formatDir) {
			fmt.Fprintf(&sb, "  %s\n", line)
		}
		for _, line := range formatEntries(listing.Files, formatFile) {
			fmt.Fprintf(&sb, "  %s\n", line)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- vault_info ---

func vaultInfoTool() mcp.Tool {
	return mcp.NewTool("vault_info",
		mcp.WithDescription("Show the selected vault and how many notes it holds."),
	)
}

func vaultInfoHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		info, err := commands.NewVaultInfoCommand(deps.Store).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("vault: %s\nnotes: %d\nunreadable: %d\n",
			info.Vault, info.Count, info.Stats.ReadFailures)), nil
	}
}

// --- tree ---

func treeTool() mcp.Tool {
	return mcp.NewTool("tree",
		mcp.WithDescription("Display the notes of the selected vault as a tree."),
	)
}

func treeHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if _, err := commands.NewVaultInfoCommand(deps.Store).Execute(ctx); err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(treeview.FromIndex(deps.Store.Current()).Render()), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntries[T any](entries []T, format func(T) string) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, format(e))
	}
	return out
}

func formatDir(d domain.DirEntry) string {
	return d.Name + "/"
}

func formatFile(f domain.DirEntry) string {
	return f.Name
}
