package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdidvp/growthcheck/internal/adapters/outbound/tui"
	"github.com/abdidvp/growthcheck/internal/domain"
)

func newHistoryCmd(opts *rootOptions) *cobra.Command {
	var (
		jsonOutput bool
		clearAll   bool
		limit      int
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show past evaluations, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp()
			if err != nil {
				return err
			}
			defer a.close()

			if clearAll {
				if err := a.evaluate.ClearHistory(a.dataDir); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "History cleared")
				return nil
			}

			entries, err := a.evaluate.History(a.dataDir)
			if err != nil {
				return err
			}
			if limit > 0 && len(entries) > limit {
				entries = entries[:limit]
			}

			if jsonOutput {
				if entries == nil {
					entries = []domain.HistoryEntry{}
				}
				return renderJSON(cmd, entries)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output history as JSON")
	cmd.Flags().BoolVar(&clearAll, "clear", false, "Delete all stored evaluations")
	cmd.Flags().IntVar(&limit, "limit", 0, "Show at most this many entries")

	return cmd
}
