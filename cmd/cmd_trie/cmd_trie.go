// Package cmd_trie holds the ptrie subcommands. Every command works on a
// Trie[rune, int] so keys are split into Unicode code points.
package cmd_trie

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rskv-p/ptrie/config"
	"github.com/rskv-p/ptrie/pkg/x_log"
	"github.com/rskv-p/ptrie/pkg/x_tree"
	"github.com/spf13/cobra"
)

// Commands returns fresh instances of all trie subcommands.
func Commands() []*cobra.Command {
	return []*cobra.Command{
		newDemoCmd(),
		newShellCmd(),
		newQueryCmd(),
		newDumpCmd(),
	}
}

//
// ---------- Context ----------

type cfgKey struct{}

// WithConfig stores cfg in ctx for the subcommands.
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, cfgKey{}, cfg)
}

// configFrom returns the config stored in ctx or the defaults.
func configFrom(ctx context.Context) *config.Config {
	if ctx != nil {
		if cfg, ok := ctx.Value(cfgKey{}).(*config.Config); ok && cfg != nil {
			return cfg
		}
	}
	return config.Default()
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

//
// ---------- Trie helpers ----------

// newTrie builds a trie logging to l and preloaded with the config seeds.
func newTrie(cfg *config.Config, l zerolog.Logger) *x_tree.Trie[rune, int] {
	t := x_tree.New[rune, int](x_tree.WithLogger(l))
	for _, s := range cfg.Seeds {
		t.Insert(symbols(s.Key), s.Value)
	}
	return t
}

// logger returns the command logger with a command field.
func logger(ctx context.Context, name string) zerolog.Logger {
	return x_log.From(ctx).With().Str("command", name).Logger()
}

func symbols(s string) []rune {
	return []rune(s)
}

func runeString(r rune) string {
	return string(r)
}
