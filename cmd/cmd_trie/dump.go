package cmd_trie

import (
	"strings"

	"github.com/spf13/cobra"
)

func newDumpCmd() *cobra.Command {
	var stats bool

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the node layout of the seeded trie",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmdContext(cmd)
			cfg := configFrom(ctx)
			t := newTrie(cfg, logger(ctx, "dump"))

			v := newView(cmd.OutOrStdout(), cfg)
			var sb strings.Builder
			t.DumpFunc(&sb, runeString)
			v.Plain(sb.String())

			if stats {
				s := t.Stats()
				v.Info("nodes=%d terminals=%d branches=%d symbols=%d depth=%d",
					s.Nodes, s.Terminals, s.Branches, s.Symbols, s.MaxDepth)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&stats, "stats", false, "print node statistics after the dump")
	return cmd
}
