package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ganot/amrannot/internal/mcp"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run an MCP server exposing annotation tools over stdio",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, _, err := setup()
	if err != nil {
		return err
	}

	// Logs go to stderr to keep stdout clean for JSON-RPC.
	logWriter := io.Writer(os.Stderr)
	if logPath := os.Getenv("AMRANNOT_LOG_PATH"); logPath != "" {
		fileWriter, file, err := newLogFileWriter(logPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "log file error: %v\n", err)
		} else {
			defer file.Close()
			logWriter = fileWriter
		}
	}
	logger := slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	server := mcp.NewServer(mcp.Config{Logger: logger})
	logger.Info("starting stdio transport")

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-stop
		logger.Info("shutting down")
		cancel()
	}()

	// Run blocks until stdin closes or the context is canceled.
	if err := server.Run(ctx, &sdkmcp.StdioTransport{}); err != nil {
		logger.Error("stdio server error", "error", err)
		return err
	}
	return nil
}
