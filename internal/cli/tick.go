package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/oryweaver/auction/internal/domain"
	"github.com/spf13/cobra"
)

type TickOptions struct {
	*RootOptions
	DryRun bool
	At     string
}

// NewTickCommand creates the tick command.
func NewTickCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TickOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "tick [auction-id]",
		Short: "Advance auctions to the phase their schedule prescribes",
		Long: `Advance one auction, or every auction that has not settled, to the phase
its boundaries prescribe. Overdue auctions walk through each skipped phase.

Examples:
  auctionctl tick
  auctionctl tick 6f1c... --dry-run
  auctionctl tick --at 2026-05-02T18:00:00Z`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTick(cmd, opts, args)
		},
	}

	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "show planned changes without applying them")
	cmd.Flags().StringVar(&opts.At, "at", "", "evaluate at this RFC3339 instant instead of now")

	return cmd
}

func runTick(cmd *cobra.Command, opts *TickOptions, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	return withRuntime(ctx, opts.RootOptions, func(rt *Runtime) error {
		now := rt.Clock.Now()
		if opts.At != "" {
			at, err := time.Parse(time.RFC3339, opts.At)
			if err != nil {
				return fmt.Errorf("invalid --at: %w", err)
			}
			now = at.UTC()
		}

		var auctions []*domain.Auction
		if len(args) == 1 {
			a, err := rt.Engine.Catalog.GetAuction(ctx, args[0])
			if err != nil {
				return err
			}
			auctions = []*domain.Auction{a}
		} else {
			list, err := rt.Engine.Catalog.ListActive(ctx)
			if err != nil {
				return err
			}
			auctions = list
		}

		var (
			changes []domain.PhaseChange
			tickErr error
		)
		if opts.DryRun {
			for _, a := range auctions {
				changes = append(changes, plannedChanges(a, now)...)
			}
		} else if len(args) == 1 {
			changes, tickErr = rt.Engine.Lifecycle.Advance(ctx, args[0], now)
		} else {
			changes, tickErr = rt.Engine.Lifecycle.TickAll(ctx, now)
		}

		if changes == nil {
			changes = []domain.PhaseChange{}
		}
		if err := render(cmd, opts.Format, changes, func() error {
			return FormatPhaseChanges(cmd.OutOrStdout(), changes)
		}); err != nil {
			return err
		}
		return tickErr
	})
}

// plannedChanges lists the steps Advance would take, without the reoffer
// preconditions it checks on the way.
func plannedChanges(a *domain.Auction, now time.Time) []domain.PhaseChange {
	var out []domain.PhaseChange
	target := a.Boundaries.PhaseAt(now)
	for cur := a.Phase; cur.Before(target); {
		next, ok := cur.Next()
		if !ok {
			break
		}
		out = append(out, domain.PhaseChange{AuctionID: a.ID, From: cur, To: next, At: now})
		cur = next
	}
	return out
}

func render(cmd *cobra.Command, format string, v any, text func() error) error {
	if format == "json" {
		return writeJSON(cmd.OutOrStdout(), v)
	}
	return text()
}
