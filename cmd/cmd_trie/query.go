package cmd_trie

import (
	"github.com/spf13/cobra"
)

func newQueryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "query <text>...",
		Short: "Print the values of all seeded keys that prefix each text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmdContext(cmd)
			cfg := configFrom(ctx)
			t := newTrie(cfg, logger(ctx, "query"))

			v := newView(cmd.OutOrStdout(), cfg)
			for _, q := range args {
				if q == "" {
					v.Values(q, nil)
					continue
				}
				v.Values(q, t.Prefixes(symbols(q)))
			}
			return nil
		},
	}
}
