package cmd_trie

import (
	"strconv"
	"strings"

	"github.com/rskv-p/ptrie/pkg/x_tree"
	"github.com/spf13/cobra"
)

// demoKeys are the sample keys. Index 4 repeats index 1 and index 7 is a
// prefix of index 0 and 2.
var demoKeys = []string{
	"これは日本語です。",
	"今日からがんばる。",
	"これは英語です。",
	"今日は雨です。",
	"今日からがんばる。",
	"ABCD.",
	"今日からがんばる。つもりです。",
	"これは",
}

// demoBuffer is the text searched for stored prefixes.
const demoBuffer = "今日からがんばる。つもりです。うそです。"

// demoInvalid marks a missing value in the sentinel facade.
const demoInvalid = -1

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the sample insert/lookup/prefix scenario",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmdContext(cmd)
			cfg := configFrom(ctx)
			l := logger(ctx, "demo")

			v := newView(cmd.OutOrStdout(), cfg)
			st := x_tree.NewSentinel[rune, int](demoInvalid, x_tree.WithLogger(l))
			runDemo(v, st)

			l.Info().Int("size", st.Trie().Size()).Msg("demo done")
			return nil
		},
	}
}

// runDemo inserts the even-indexed keys, looks up all of them and queries
// demoBuffer before and after removing and re-adding key 1.
func runDemo(v *view, st *x_tree.Sentinel[rune, int]) {
	for i, k := range demoKeys {
		if i%2 != 0 {
			continue
		}
		st.AddKey(symbols(k), i)
	}

	v.Title("dump")
	var sb strings.Builder
	st.Trie().DumpFunc(&sb, runeString)
	v.Plain(sb.String())

	v.Title("lookup")
	for i, k := range demoKeys {
		label := strconv.Itoa(i)
		if r := st.GetValue(symbols(k)); r != st.InvalidValue() {
			v.Hit(label, r, demoKeys[r])
		} else {
			v.Miss(label, k)
		}
	}

	buf := symbols(demoBuffer)
	matches := func() {
		for _, r := range st.GetValues(buf) {
			v.Match(r, demoKeys[r])
		}
	}

	v.Title("prefixes")
	matches()

	v.Title("prefixes after remove 1")
	st.RemoveKey(symbols(demoKeys[1]))
	matches()

	v.Title("prefixes after add 1")
	st.AddKey(symbols(demoKeys[1]), 1)
	matches()
}
