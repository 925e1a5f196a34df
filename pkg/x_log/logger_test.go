package x_log

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInit tests if the Init function initializes the logger with default config.
func TestInit(t *testing.T) {
	t.Setenv("XLOG_CONFIG", filepath.Join(t.TempDir(), "missing.json"))
	Init()
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

// TestInitWithConfig tests if InitWithConfig correctly sets up the logger.
func TestInitWithConfig(t *testing.T) {
	InitWithConfig(&Config{Level: "debug"}, "testModule")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	InitWithConfig(&Config{Level: "error"}, "testModule")
	assert.Equal(t, zerolog.ErrorLevel, zerolog.GlobalLevel())
}

// TestParseLevel maps names and falls back to info.
func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" warn ":  zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"":        zerolog.InfoLevel,
		"verbose": zerolog.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

// TestNew tests if the New function creates a scoped logger.
func TestNew(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	var buf bytes.Buffer
	logger := New("testModule").Output(&buf)

	logger.Info().Msg("Testing logger")

	assert.Contains(t, buf.String(), `"module":"testModule"`)
}

// TestFileLogging tests if the file logging works correctly.
func TestFileLogging(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")
	InitWithConfig(&Config{
		ToFile:     true,
		LogFile:    path,
		Level:      "info",
		MaxSize:    1,
		MaxBackups: 1,
		MaxAge:     1,
	}, "testModule")

	Info().Msg("Test file logging")
	Debug().Msg("filtered out")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Test file logging")
	assert.Contains(t, string(content), `"module":"testModule"`)
	assert.NotContains(t, string(content), "filtered out")
}

// TestContextLogger tests logging with context integration.
func TestContextLogger(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	var buf bytes.Buffer
	logger := zerolog.New(&buf).With().Str("module", "testModule").Logger()

	ctx := WithLogger(context.Background(), &logger)
	From(ctx).Info().Msg("Message from context logger")

	assert.Contains(t, buf.String(), "Message from context logger")
	assert.Contains(t, buf.String(), `"module":"testModule"`)

	// without a logger in ctx the global one is returned
	assert.Same(t, &log.Logger, From(context.Background()))
}

// TestConsoleLogging tests console output at every level.
func TestConsoleLogging(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	var buf bytes.Buffer
	logger := zerolog.New(ConsoleWriterWithStyles(&Styles{Out: &buf, NoColor: true}))

	logger.Debug().Msg("Debug message")
	logger.Info().Msg("Info message")
	logger.Warn().Msg("Warn message")
	logger.Error().Msg("Error message")

	out := buf.String()
	assert.Contains(t, out, "Debug message")
	assert.Contains(t, out, "Info message")
	assert.Contains(t, out, "Warn message")
	assert.Contains(t, out, "Error message")
	assert.Contains(t, out, "WAR")
}

// TestWithFields tests structured logging with custom fields.
func TestWithFields(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	var buf bytes.Buffer
	styles := DefaultStylesDark()
	styles.Out = &buf
	styles.NoColor = true
	logger := zerolog.New(ConsoleWriterWithStyles(styles))

	logger.Info().Str("key", "gopher").Int("size", 3).Msg("insert")

	assert.Contains(t, buf.String(), "key=gopher")
	assert.Contains(t, buf.String(), "size=3")
	assert.Contains(t, buf.String(), "INF")
	assert.Contains(t, buf.String(), "insert")
}
