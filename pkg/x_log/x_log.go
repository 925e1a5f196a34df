// Package x_log provides zerolog setup with styled console output and
// rotated file output.
package x_log

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

//
// ---------- Config ----------

// Config describes log level, outputs and file rotation.
type Config struct {
	Level      string // trace, debug, info, warn, error
	LogFile    string // path used when ToFile is set
	ToConsole  bool   // styled output on stderr
	ToFile     bool   // JSON lines to LogFile
	NoColor    bool   // plain console output
	Style      string // "dark" or "light"
	MaxSize    int    // MB before rotation
	MaxBackups int    // rotated files kept
	MaxAge     int    // days
	Compress   bool   // gzip rotated files
}

//
// ---------- Init ----------

// Init configures the global logger from LoadConfig("").
func Init() {
	cfg, err := LoadConfig("")
	if err != nil {
		d := defaultConfig
		cfg = &d
	}
	InitWithConfig(cfg, "")
}

// InitWithConfig configures the global logger. module, if set, is attached
// to every entry.
func InitWithConfig(cfg *Config, module string) {
	zerolog.SetGlobalLevel(ParseLevel(cfg.Level))

	ctx := zerolog.New(buildWriter(cfg)).With().Timestamp()
	if module != "" {
		ctx = ctx.Str("module", module)
	}
	log.Logger = ctx.Logger()
}

// ParseLevel maps a level name to zerolog, falling back to info.
func ParseLevel(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil || s == "" {
		return zerolog.InfoLevel
	}
	return lvl
}

// buildWriter combines console and file outputs.
func buildWriter(cfg *Config) io.Writer {
	var writers []io.Writer

	if cfg.ToConsole {
		styles := DefaultStylesByName(cfg.Style)
		styles.Out = os.Stderr
		styles.NoColor = cfg.NoColor || !isatty.IsTerminal(os.Stderr.Fd())
		writers = append(writers, ConsoleWriterWithStyles(styles))
	}

	if cfg.ToFile && cfg.LogFile != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		})
	}

	switch len(writers) {
	case 0:
		return os.Stderr
	case 1:
		return writers[0]
	}
	return zerolog.MultiLevelWriter(writers...)
}

//
// ---------- Scoped loggers ----------

// New returns a child of the global logger tagged with module.
func New(module string) zerolog.Logger {
	return log.Logger.With().Str("module", module).Logger()
}

// WithLogger stores l in ctx.
func WithLogger(ctx context.Context, l *zerolog.Logger) context.Context {
	return l.WithContext(ctx)
}

// From returns the logger stored in ctx or the global logger.
func From(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l != nil && l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &log.Logger
}

//
// ---------- Shortcuts ----------

func Debug() *zerolog.Event { return log.Logger.Debug() }
func Info() *zerolog.Event  { return log.Logger.Info() }
func Warn() *zerolog.Event  { return log.Logger.Warn() }
func Error() *zerolog.Event { return log.Logger.Error() }
