package cmd_trie

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/google/shlex"
	"github.com/nats-io/nuid"
	"github.com/rs/zerolog"
	"github.com/rskv-p/ptrie/constant"
	"github.com/rskv-p/ptrie/pkg/x_tree"
	"github.com/rskv-p/ptrie/recover"
	"github.com/spf13/cobra"
)

func newShellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Edit and query a trie interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmdContext(cmd)
			cfg := configFrom(ctx)

			s := newSession(logger(ctx, "shell"), newView(cmd.OutOrStdout(), cfg))
			for _, seed := range cfg.Seeds {
				s.trie.Insert(symbols(seed.Key), seed.Value)
			}
			return s.Run(ctx, cmd.InOrStdin(), cfg.Prompt)
		},
	}
}

//
// ---------- Session ----------

// Session is one interactive shell bound to its own trie.
type Session struct {
	id   string
	trie *x_tree.Trie[rune, int]
	view *view
	log  zerolog.Logger
}

type handler func(s *Session, args []string) error

type shellCommand struct {
	args  int // expected argument count
	usage string
	help  string
	run   handler
}

var shellCommands map[string]shellCommand

func init() {
	shellCommands = map[string]shellCommand{
		"add":     {2, "add <key> <int>", "insert or replace a key", (*Session).add},
		"get":     {1, "get <key>", "exact lookup", (*Session).get},
		"rm":      {1, "rm <key>", "remove a key", (*Session).rm},
		"has":     {1, "has <key>", "report whether a key is stored", (*Session).has},
		"prefix":  {1, "prefix <text>", "values of stored keys prefixing text", (*Session).prefix},
		"dump":    {0, "dump", "print the node layout", (*Session).dump},
		"size":    {0, "size", "number of stored keys", (*Session).size},
		"compact": {0, "compact", "merge nodes left behind by rm", (*Session).compact},
		"stats":   {0, "stats", "node statistics", (*Session).stats},
		"keys":    {0, "keys", "list keys in order", (*Session).keys},
		"help":    {0, "help", "show this list", (*Session).help},
	}
}

// newSession creates a session with an empty trie.
func newSession(l zerolog.Logger, v *view) *Session {
	id := nuid.Next()
	l = l.With().Str("session", id).Logger()
	return &Session{
		id:   id,
		trie: x_tree.New[rune, int](x_tree.WithLogger(l)),
		view: v,
		log:  l,
	}
}

// ID returns the session id.
func (s *Session) ID() string { return s.id }

// Run reads commands from r until EOF or quit. Command errors are printed
// and do not end the session.
func (s *Session) Run(ctx context.Context, r io.Reader, prompt string) error {
	s.log.Info().Msg("session started")
	defer func() {
		s.log.Info().Int("size", s.trie.Size()).Msg("session closed")
	}()

	sc := bufio.NewScanner(r)
	for {
		s.view.Plain(prompt)
		if !sc.Scan() {
			s.view.Plain("\n")
			return sc.Err()
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		quit, err := s.Exec(ctx, sc.Text())
		if err != nil {
			s.log.Debug().Err(err).Msg("command failed")
			s.view.Error(err)
		}
		if quit {
			return nil
		}
	}
}

// Exec runs a single command line. It reports whether the line asked to
// end the session.
func (s *Session) Exec(ctx context.Context, line string) (bool, error) {
	argv, err := shlex.Split(line)
	if err != nil {
		return false, fmt.Errorf("parse line: %w", err)
	}
	if len(argv) == 0 {
		return false, nil
	}

	name, args := argv[0], argv[1:]
	switch name {
	case "quit", "exit":
		return true, nil
	}

	c, ok := shellCommands[name]
	if !ok {
		return false, fmt.Errorf("%w: %s", constant.ErrUnknownCommand, name)
	}
	if len(args) != c.args {
		return false, fmt.Errorf("%s: %w, usage: %s", name, constant.ErrBadArgs, c.usage)
	}

	run := recover.WrapRecover("shell."+name, func(context.Context) error {
		return c.run(s, args)
	})
	return false, run(ctx)
}

//
// ---------- Commands ----------

func (s *Session) add(args []string) error {
	val, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("add: %w", constant.ErrBadValue)
	}
	if old, ok := s.trie.Insert(symbols(args[0]), val); ok {
		s.view.Info("updated %q (was %d)", args[0], old)
		return nil
	}
	s.view.Info("added %q", args[0])
	return nil
}

func (s *Session) get(args []string) error {
	if val, ok := s.trie.Get(symbols(args[0])); ok {
		s.view.Values(args[0], []int{val})
		return nil
	}
	s.view.Values(args[0], nil)
	return nil
}

func (s *Session) rm(args []string) error {
	if val, ok := s.trie.Remove(symbols(args[0])); ok {
		s.view.Info("removed %q (was %d)", args[0], val)
		return nil
	}
	s.view.Info("%q not found", args[0])
	return nil
}

func (s *Session) has(args []string) error {
	s.view.Info("%t", s.trie.Contains(symbols(args[0])))
	return nil
}

func (s *Session) prefix(args []string) error {
	s.view.Values(args[0], s.trie.Prefixes(symbols(args[0])))
	return nil
}

func (s *Session) dump([]string) error {
	var sb strings.Builder
	s.trie.DumpFunc(&sb, runeString)
	s.view.Plain(sb.String())
	return nil
}

func (s *Session) size([]string) error {
	s.view.Info("%d", s.trie.Size())
	return nil
}

func (s *Session) compact([]string) error {
	s.view.Info("compacted %d nodes", s.trie.Compact())
	return nil
}

func (s *Session) stats([]string) error {
	st := s.trie.Stats()
	s.view.Info("nodes=%d terminals=%d branches=%d symbols=%d depth=%d",
		st.Nodes, st.Terminals, st.Branches, st.Symbols, st.MaxDepth)
	return nil
}

func (s *Session) keys([]string) error {
	s.trie.IterOrdered(func(key []rune, val int) bool {
		s.view.Values(string(key), []int{val})
		return true
	})
	return nil
}

func (s *Session) help([]string) error {
	for _, name := range slices.Sorted(maps.Keys(shellCommands)) {
		c := shellCommands[name]
		s.view.Plain(fmt.Sprintf("  %-16s %s\n", c.usage, c.help))
	}
	s.view.Plain(fmt.Sprintf("  %-16s %s\n", "quit", "end the session"))
	return nil
}
