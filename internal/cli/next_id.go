package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// next-id consumes an id. It exists to check that the counter store works.
func newNextIDCmd(load func(ctx context.Context) (*App, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "next-id <counter>",
		Short: "Issue the next id of a counter (consumes it)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := load(ctx)
			if err != nil {
				return err
			}
			id, err := a.Stores.Issuer.NextID(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to issue id: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}
}
