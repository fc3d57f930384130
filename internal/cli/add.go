package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/cashmeredev/berrysnip/internal/config"
	"github.com/cashmeredev/berrysnip/internal/tui"
)

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add",
		Short: "Add a snippet interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			logger := fileLogger(cfg)

			svc, closeDB, err := openService(cfg, logger)
			if err != nil {
				return err
			}
			defer closeDB()

			app := tui.NewApp(svc, newCopier(cfg), logger)
			return app.RunAdd(context.Background())
		},
	}
}
