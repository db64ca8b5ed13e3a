// Package cli implements the tourcrew maintenance commands.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/tourcrew-backend/internal/app"
	"github.com/heartmarshall/tourcrew-backend/internal/config"
)

// Root returns the tourcrew command tree.
func Root() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "tourcrew",
		Short:         "tourcrew backend maintenance",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "",
		"config file (default $CONFIG_PATH, then ./config.yaml)")

	root.AddCommand(migrateCmd(&configPath))
	root.AddCommand(cleanupTokensCmd(&configPath))
	root.AddCommand(versionCmd())

	return root
}

// session is what a command gets after loading config and opening the store.
type session struct {
	cfg     *config.Config
	backend *app.Backend
	log     *slog.Logger
}

// withBackend loads configuration, opens the configured store, runs fn and
// closes the store.
func withBackend(cmd *cobra.Command, configPath string, fn func(ctx context.Context, s session) error) error {
	if configPath == "" {
		configPath = os.Getenv("CONFIG_PATH")
	}
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logger := app.NewLogger(cfg.Log)
	backend, err := app.OpenBackend(ctx, cfg.Store, logger)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer backend.Close()

	return fn(ctx, session{cfg: cfg, backend: backend, log: logger})
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), app.BuildVersion())
		},
	}
}
