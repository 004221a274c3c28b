package cli

import (
	"context"
	"errors"

	"github.com/oryweaver/auction/internal/domain"
	"github.com/spf13/cobra"
)

type StatementOptions struct {
	*RootOptions
	User  string
	Donor string
}

// NewStatementCommand creates the statement command.
func NewStatementCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &StatementOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "statement",
		Short: "Print a bidder's commitments or a donor's sales",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if (opts.User == "") == (opts.Donor == "") {
				return errors.New("exactly one of --user or --donor is required")
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			return withRuntime(ctx, opts.RootOptions, func(rt *Runtime) error {
				var (
					st    *domain.Statement
					title string
					err   error
				)
				if opts.User != "" {
					title = "Commitments of"
					st, err = rt.Engine.Ledger.Commitments(ctx, opts.User)
				} else {
					title = "Sales of"
					st, err = rt.Engine.Ledger.Sales(ctx, opts.Donor)
				}
				if err != nil {
					return err
				}

				return render(cmd, opts.Format, st, func() error {
					return FormatStatement(cmd.OutOrStdout(), title, st)
				})
			})
		},
	}

	cmd.Flags().StringVar(&opts.User, "user", "", "bidder id")
	cmd.Flags().StringVar(&opts.Donor, "donor", "", "donor id")

	return cmd
}
