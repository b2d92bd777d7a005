package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/makerhub/makerhub/internal/config"
	"github.com/makerhub/makerhub/internal/mcpbridge"
)

var flagRefresh string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the tool catalog over MCP stdio",
	Long: `Serve the compiled tool catalog as an MCP stdio server, so MCP-speaking
agent runtimes can list and call the device tools.

Examples:
  # Serve both devices
  makerhub serve --config makerhub.json

  # Recompile the catalog every five minutes
  makerhub serve --config makerhub.json --refresh "@every 5m"`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagRefresh, "refresh", "", "cron spec for periodic catalog refresh (standard or @every syntax)")
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := validateFlags(); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg, err = config.MergeOverrides(cfg, config.Overrides{Refresh: flagRefresh})
	if err != nil {
		return err
	}

	h, err := buildHub(cfg)
	if err != nil {
		return err
	}

	// Stdout carries the MCP protocol; logs go to stderr.
	level := slog.LevelInfo
	if flagQuiet {
		level = slog.LevelError
	}
	if flagVerbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	opts := []mcpbridge.Option{mcpbridge.WithLogger(logger)}
	if cfg.Serve.Refresh != "" {
		opts = append(opts, mcpbridge.WithRefresh(cfg.Serve.Refresh))
	}

	srv, err := mcpbridge.New("makerhub", appVersion, h, opts...)
	if err != nil {
		return err
	}
	return srv.Serve()
}
