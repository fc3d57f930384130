package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cashmeredev/berrysnip/internal/config"
)

func newListCmd() *cobra.Command {
	var search, tag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List snippets on stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			svc, closeDB, err := openService(cfg, stdoutLogger())
			if err != nil {
				return err
			}
			defer closeDB()

			snippets, err := svc.List(context.Background(), search, tag)
			if err != nil {
				return err
			}

			if len(snippets) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No snippets found.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tLANGUAGE\tUPDATED")
			for _, s := range snippets {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
					s.ID, s.Title, s.Language,
					s.UpdatedAt.Local().Format("2006-01-02 15:04"))
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "filter by search term")
	cmd.Flags().StringVarP(&tag, "tag", "t", "", "filter by tag")

	return cmd
}
