package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "vaultsearch/internal/adapters/mcp"
	"vaultsearch/internal/application/commands"
	"vaultsearch/internal/bootstrap"
	"vaultsearch/internal/config"
)

func main() {
	vaultFlag := flag.String("vault", "", "vault to index on startup")
	flag.Parse()

	// stdout carries the protocol, so logs go to stderr
	app := bootstrap.New(config.Load(config.NewViper()), os.Stderr)

	if *vaultFlag != "" {
		res, err := commands.NewSelectVaultCommand(app.Guard, app.Crawler, app.Store, *vaultFlag).Execute(context.Background())
		if err != nil {
			log.Fatalf("vaultsearch-mcp: %v", err)
		}
		app.Log.LogVaultIndexed(res.Vault, res.Count, res.Stats.ReadFailures, res.Stats.Duration)
	}

	mcpServer := server.NewMCPServer(
		"vaultsearch-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	deps := mcpadapter.Deps{
		Guard:   app.Guard,
		Lister:  app.Lister,
		Crawler: app.Crawler,
		Store:   app.Store,
		Links:   app.Links,
		Log:     app.Log,
	}
	mcpadapter.RegisterReadTools(mcpServer, deps)
	mcpadapter.RegisterWriteTools(mcpServer, deps)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("vaultsearch-mcp: %v", err)
	}
}
