package cli

import (
	"github.com/spf13/cobra"

	"github.com/cashmeredev/berrysnip/internal/config"
	"github.com/cashmeredev/berrysnip/internal/tui"
)

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Start the terminal UI",
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
			return app.Run()
		},
	}
}
