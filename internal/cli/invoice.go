package cli

import (
	"context"
	"fmt"
	"strconv"

	"workshop_xpto/internal/domain/invoice"

	"github.com/spf13/cobra"
)

func newInvoiceCmd(load func(ctx context.Context) (*App, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "invoice <service_id>",
		Short: "Print the invoice of a work order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			serviceID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid service id %q", args[0])
			}
			ctx := cmd.Context()
			a, err := load(ctx)
			if err != nil {
				return err
			}
			inv, err := a.Invoices.GetInvoice(ctx, serviceID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			w := inv.WorkOrder
			fmt.Fprintf(out, "Work order #%d  %s  (%s)\n", w.ServiceID, w.Vehicle.Name, w.Customer.Name)
			fmt.Fprintln(out, "------------------------------------------------------------")
			for _, row := range inv.Breakdown.Rows {
				fmt.Fprintf(out, "%-44s %15s\n", truncate(row.Description, 44), row.Display())
			}
			fmt.Fprintln(out, "------------------------------------------------------------")
			fmt.Fprintf(out, "%-44s %15s\n", "Subtotal", invoice.Format(inv.Breakdown.Subtotal))
			fmt.Fprintf(out, "%-44s %15s\n", "Total ("+inv.Currency+")", invoice.Format(inv.Breakdown.Total))
			fmt.Fprintf(out, "Payment: %s\n", inv.Breakdown.PaymentStatus)
			if inv.Prefilled {
				fmt.Fprintln(out, "Not billed yet: labor is pre-filled from the catalog.")
			}
			return nil
		},
	}
}

// truncate shortens s to maxLen runes, cutting on a rune boundary.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
