package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// NewUnfreezeCommand creates the unfreeze command.
func NewUnfreezeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "unfreeze <item-id>",
		Short: "Clear the frozen flag of an item after an operator review",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			return withRuntime(ctx, rootOpts, func(rt *Runtime) error {
				item, err := rt.Engine.Catalog.UnfreezeItem(ctx, args[0])
				if err != nil {
					return err
				}
				return render(cmd, rootOpts.Format, item, func() error {
					_, err := fmt.Fprintf(cmd.OutOrStdout(), "Item %s unfrozen (%d/%d committed).\n",
						item.ID, item.QuantityCommitted, item.QuantityTotal)
					return err
				})
			})
		},
	}
}
