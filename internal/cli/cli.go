// Package cli wires the berrysnip subcommands. The bare command starts the
// web server, matching the habit of just typing `berrysnip` to get the UI.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/cashmeredev/berrysnip/internal/clipboard"
	"github.com/cashmeredev/berrysnip/internal/config"
	"github.com/cashmeredev/berrysnip/internal/repository/sqlite"
	"github.com/cashmeredev/berrysnip/internal/service"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "berrysnip",
		Short: "Personal code snippet manager",
		Long: "BerrySnip keeps code snippets in a local SQLite database and serves\n" +
			"them through a web UI, a terminal UI, and quick CLI commands.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWeb()
		},
	}

	root.AddCommand(
		newWebCmd(),
		newTUICmd(),
		newAddCmd(),
		newListCmd(),
	)

	return root
}

// Execute runs the command line. Failures are reported on stdout so they
// land in the same stream as normal output on small-screen terminals.
func Execute() int {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Printf("Error: %v\n", err)
		return 1
	}
	return 0
}

// stdoutLogger is for modes that own no screen: the web server and plain
// listings log straight to the terminal.
func stdoutLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

// fileLogger is for full-screen and form modes, where terminal writes would
// tear the display. Falls back to a discard-style stderr logger if the log
// file cannot be opened.
func fileLogger(cfg config.Config) *slog.Logger {
	f, err := os.OpenFile(cfg.LogPath(), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
	return slog.New(slog.NewTextHandler(f, nil))
}

// openService opens the store described by cfg and returns the service plus
// a close func for the underlying database.
func openService(cfg config.Config, logger *slog.Logger) (*service.SnippetService, func() error, error) {
	db, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening snippet store: %w", err)
	}
	return service.NewSnippetService(db, logger), db.Close, nil
}

func newCopier(cfg config.Config) *clipboard.Copier {
	return clipboard.New(cfg.ClipboardHelper)
}
