package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"
)

var (
	appliedColor = color.New(color.FgGreen)
	pendingColor = color.New(color.FgYellow)
)

func migrateCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the store schema",
		Long: `Apply or inspect schema migrations for the configured store.

The SQLite store is migrated automatically when the server opens it;
PostgreSQL deployments run "tourcrew migrate up" before starting the server.`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withBackend(cmd, *configPath, func(ctx context.Context, s session) error {
				provider, err := s.backend.Migrator()
				if err != nil {
					return err
				}
				results, err := provider.Up(ctx)
				printResults(cmd.OutOrStdout(), results)
				if err != nil {
					return fmt.Errorf("migrate up: %w", err)
				}
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show applied and pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withBackend(cmd, *configPath, func(ctx context.Context, s session) error {
				provider, err := s.backend.Migrator()
				if err != nil {
					return err
				}
				statuses, err := provider.Status(ctx)
				if err != nil {
					return fmt.Errorf("migrate status: %w", err)
				}
				printStatus(cmd.OutOrStdout(), s.backend.Driver, statuses)
				return nil
			})
		},
	})

	return cmd
}

func printResults(w io.Writer, results []*goose.MigrationResult) {
	if len(results) == 0 {
		fmt.Fprintln(w, "schema is up to date")
		return
	}
	for _, r := range results {
		if r.Error != nil {
			fmt.Fprintf(w, "%s %s: %v\n", pendingColor.Sprint("FAILED"), r.Source.Path, r.Error)
			continue
		}
		fmt.Fprintf(w, "%s %s (%s)\n", appliedColor.Sprint("OK"), r.Source.Path, r.Duration.Round(time.Millisecond))
	}
}

func printStatus(w io.Writer, driver string, statuses []*goose.MigrationStatus) {
	fmt.Fprintf(w, "store: %s\n\n", driver)
	for _, s := range statuses {
		switch s.State {
		case goose.StateApplied:
			fmt.Fprintf(w, "  %-8s %s  %s\n", appliedColor.Sprint("applied"), s.Source.Path,
				s.AppliedAt.UTC().Format(time.DateTime))
		default:
			fmt.Fprintf(w, "  %-8s %s\n", pendingColor.Sprint("pending"), s.Source.Path)
		}
	}
}
