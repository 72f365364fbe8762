package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newMigrateCmd(load func(ctx context.Context) (*App, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the tables or schema of the configured store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := load(ctx)
			if err != nil {
				return err
			}
			if err := a.Stores.Migrate(ctx); err != nil {
				return fmt.Errorf("failed to migrate: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Store is up to date")
			return nil
		},
	}
}
