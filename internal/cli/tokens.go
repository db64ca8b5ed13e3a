package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/tourcrew-backend/internal/app"
	"github.com/heartmarshall/tourcrew-backend/internal/auth"
)

func cleanupTokensCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "cleanup-tokens",
		Short: "Delete expired and revoked refresh tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withBackend(cmd, *configPath, func(ctx context.Context, s session) error {
				svc := app.NewAuthService(s.cfg, s.backend, auth.NewSessions(s.log), s.log)
				n, err := svc.CleanupExpiredTokens(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted %d expired or revoked refresh tokens\n", n)
				return nil
			})
		},
	}
}
