package cmd

import (
	"fmt"
	"os"

	"github.com/rskv-p/ptrie/cmd/cmd_trie"
	"github.com/rskv-p/ptrie/config"
	"github.com/rskv-p/ptrie/pkg/x_log"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the ptrie command tree.
func NewRootCmd() *cobra.Command {
	var (
		cfgPath  string
		logLevel string
	)

	root := &cobra.Command{
		Use:           "ptrie",
		Short:         "Patricia trie playground",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadWithFallback(cfgPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			lc, err := logConfig(cfg)
			if err != nil {
				return fmt.Errorf("load log config: %w", err)
			}
			x_log.InitWithConfig(lc, "ptrie")
			l := x_log.New("cmd")
			l.Debug().Str("config", cfgPath).Int("seeds", len(cfg.Seeds)).Msg("config loaded")

			ctx := x_log.WithLogger(cmd.Context(), &l)
			cmd.SetContext(cmd_trie.WithConfig(ctx, cfg))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a JSON config file")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "override the configured log level")
	root.AddCommand(cmd_trie.Commands()...)
	return root
}

// logConfig overlays the CLI settings on the logger config file, which
// still controls rotation.
func logConfig(cfg *config.Config) (*x_log.Config, error) {
	lc, err := x_log.LoadConfig("")
	if err != nil {
		return nil, err
	}
	lc.Level = cfg.LogLevel
	lc.Style = cfg.LogStyle
	lc.NoColor = cfg.NoColor
	lc.ToConsole = true
	lc.ToFile = cfg.LogFile != ""
	if lc.ToFile {
		lc.LogFile = cfg.LogFile
	}
	return lc, nil
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
