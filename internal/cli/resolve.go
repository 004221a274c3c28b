package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// NewResolveWinnersCommand creates the resolve-winners command.
func NewResolveWinnersCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve-winners <auction-id>",
		Short: "Record winners for every competitive item of a closed bidding phase",
		Long: `Record the winner of each competitive item once bidding has closed.
Items already resolved keep their winner, so the command can be rerun after
a partial failure.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			return withRuntime(ctx, rootOpts, func(rt *Runtime) error {
				report, err := rt.Engine.Winners.ResolveWinners(ctx, args[0])
				if report != nil {
					if rerr := render(cmd, rootOpts.Format, report, func() error {
						return FormatResolution(cmd.OutOrStdout(), report)
					}); rerr != nil {
						return rerr
					}
				}
				if err != nil {
					return err
				}
				if len(report.Failed) > 0 {
					return fmt.Errorf("resolution failed for %d item(s)", len(report.Failed))
				}
				return nil
			})
		},
	}
}
