// Package mcp exposes annotation validation and aggregation as MCP tools.
package mcp

import (
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `Tools for working with AMRFinderPlus annotation tables.

- validate_annotations: check one TSV file against the canonical header.
- list_annotation_files: discover annotation files under a directory and
  their owning sample/MAG/feature ids.
- aggregate_annotations: merge every file under a directory into one
  sample-keyed metadata table.

Directories may be flat (one file per feature) or nested (one subdirectory
per sample or MAG); the layout is detected automatically.`

// Config contains server configuration.
type Config struct {
	Logger *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "amrannot",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	registerSchemaResource(server)

	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server)

	return server
}
