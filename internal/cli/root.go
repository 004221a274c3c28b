// Package cli implements auctionctl, the operator command line for the
// auction engine.
package cli

import (
	"fmt"
	"slices"

	"github.com/oryweaver/auction/internal/config"
	"github.com/spf13/cobra"
)

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// RootOptions holds global flags and the collaborators shared by all commands.
type RootOptions struct {
	Format string

	Load func() *config.Config
	Open Opener
}

// NewRootCommand creates the root command. A nil open uses DefaultOpener.
func NewRootCommand(open Opener) *cobra.Command {
	if open == nil {
		open = DefaultOpener
	}
	return newRootCommand(&RootOptions{Load: config.MustLoad, Open: open})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auctionctl",
		Short: "Operator tool for the seasonal auction engine",
		Long: `Operator tool for the seasonal auction engine.

Configuration is read from the same environment and config file as the
server (DB_HOST, STORE_DRIVER, NATS_URL, ...).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewTickCommand(opts))
	cmd.AddCommand(NewResolveWinnersCommand(opts))
	cmd.AddCommand(NewStatementCommand(opts))
	cmd.AddCommand(NewUnfreezeCommand(opts))
	cmd.AddCommand(NewMigrateCommand(opts))

	return cmd
}
