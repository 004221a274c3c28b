package cli

import (
	"fmt"

	"github.com/oryweaver/auction/internal/app"
	"github.com/spf13/cobra"
	"github.com/wb-go/wbf/logger"
)

// NewMigrateCommand creates the migrate command.
func NewMigrateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := rootOpts.Load()
			if cfg.Store.InMemory() {
				return fmt.Errorf("store driver %q has no schema", cfg.Store.Driver)
			}

			log, err := logger.InitLogger(
				cfg.Logger.LogEngine(),
				"AuctionCtl",
				cfg.Gin.Mode,
				logger.WithLevel(cfg.Logger.LogLevel()),
			)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}

			if err = app.Migrate(cfg.Postgres.DSN(), log); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied.")
			return err
		},
	}
}
