package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mharwood/telepengo/internal/streamserver"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a WebSocket endpoint that decodes streamed frames",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	srv := streamserver.New(cfg.ServerAddr)
	slog.Info("listening", "addr", cfg.ServerAddr)
	return srv.ListenAndServe()
}
