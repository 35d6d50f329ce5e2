// Package cmd implements the telepenscan CLI.
package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mharwood/telepengo/internal/config"
)

var (
	cfgLoader *config.Loader
	cfg       config.Config
	cfgFile   string
)

var rootCmd = &cobra.Command{
	Use:   "telepenscan",
	Short: "Decode Telepen Numeric barcodes",
	Long: `telepenscan decodes Telepen Numeric one-dimensional barcodes from raster
images, either from files or from a streamed WebSocket connection.

Examples:
  telepenscan scan label.png
  telepenscan serve --addr :8080`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute runs the root command. It is called once from main.main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./telepenscan.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("try-harder", false, "try-harder setting; recorded in config and logged by scan, decoding does not change")
	rootCmd.PersistentFlags().String("addr", "", "streamserver bind address")

	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("try_harder", rootCmd.PersistentFlags().Lookup("try-harder"))
	_ = viper.BindPFlag("server_addr", rootCmd.PersistentFlags().Lookup("addr"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}

	cfgLoader = config.NewLoader()
	loaded, err := cfgLoader.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	cfg = loaded

	level := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
