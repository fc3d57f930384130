package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cashmeredev/berrysnip/internal/config"
	"github.com/cashmeredev/berrysnip/internal/server"
)

func newWebCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "web",
		Short: "Start the web server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWeb()
		},
	}
}

func runWeb() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := stdoutLogger()

	srv, err := server.New(cfg, logger)
	if err != nil {
		return fmt.Errorf("setting up server: %w", err)
	}

	fmt.Printf("BerrySnip running on http://localhost:%d\n", cfg.Port)
	return srv.Start()
}
