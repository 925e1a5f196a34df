package recover_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rskv-p/ptrie/constant"
	"github.com/rskv-p/ptrie/pkg/x_log"
	recoverpkg "github.com/rskv-p/ptrie/recover"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var panicHookTriggered bool
var panicCapturedLabel string
var panicCapturedValue any

func TestMain(m *testing.M) {
	nop := zerolog.Nop()
	recoverpkg.SetLogger(&nop)
	recoverpkg.OnPanic = func(label string, r any) {
		panicHookTriggered = true
		panicCapturedLabel = label
		panicCapturedValue = r
	}
	m.Run()
}

func TestRecoverExplicit(t *testing.T) {
	panicHookTriggered = false
	recoverpkg.RecoverExplicit("manual", "value")

	assert.True(t, panicHookTriggered)
	assert.Equal(t, "manual", panicCapturedLabel)
	assert.Equal(t, "value", panicCapturedValue)

	// nil is not a panic
	panicHookTriggered = false
	recoverpkg.RecoverExplicit("manual", nil)
	assert.False(t, panicHookTriggered)
}

func TestSafe(t *testing.T) {
	panicHookTriggered = false
	recoverpkg.Safe("my-safe", func() {
		panic("in safe")
	})
	assert.True(t, panicHookTriggered)
	assert.Equal(t, "my-safe", panicCapturedLabel)
	assert.Equal(t, "in safe", panicCapturedValue)
}

func TestSafe_NoPanic(t *testing.T) {
	panicHookTriggered = false
	ran := false
	recoverpkg.Safe("quiet", func() { ran = true })
	assert.True(t, ran)
	assert.False(t, panicHookTriggered)
}

func TestWrapRecover_NoPanic(t *testing.T) {
	fn := recoverpkg.WrapRecover("fn", func(ctx context.Context) error {
		return nil
	})
	assert.NoError(t, fn(context.Background()))
}

func TestWrapRecover_PassesError(t *testing.T) {
	want := errors.New("plain")
	fn := recoverpkg.WrapRecover("fn", func(ctx context.Context) error {
		return want
	})
	assert.Same(t, want, fn(context.Background()))
}

func TestWrapRecover_WithPanic(t *testing.T) {
	fn := recoverpkg.WrapRecover("fnX", func(ctx context.Context) error {
		panic("ctx-panic")
	})
	err := fn(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "panic recovered in fnX")
	assert.Contains(t, err.Error(), "ctx-panic")
}

func TestWrapRecover_PanicError(t *testing.T) {
	fn := recoverpkg.WrapRecover("add", func(ctx context.Context) error {
		panic(constant.ErrEmptyKey)
	})
	err := fn(context.Background())
	assert.ErrorIs(t, err, constant.ErrEmptyKey)
}

func captureLogs(t *testing.T, level zerolog.Level) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	l := zerolog.New(&buf).Level(level)
	recoverpkg.SetLogger(&l)
	t.Cleanup(func() {
		nop := zerolog.Nop()
		recoverpkg.SetLogger(&nop)
	})
	return &buf
}

func TestRecover_Logs(t *testing.T) {
	buf := captureLogs(t, zerolog.DebugLevel)

	recoverpkg.Safe("logged", func() { panic("boom") })

	assert.Contains(t, buf.String(), `"label":"logged"`)
	assert.Contains(t, buf.String(), "panic: boom")
	assert.Contains(t, buf.String(), `"stack"`)
}

// Error panics keep the stack trace at debug level.
func TestRecover_ErrorStackAtDebug(t *testing.T) {
	buf := captureLogs(t, zerolog.InfoLevel)

	recoverpkg.Safe("add", func() { panic(constant.ErrEmptyKey) })

	assert.Contains(t, buf.String(), `"level":"error"`)
	assert.Contains(t, buf.String(), constant.ErrEmptyKey.Error())
	assert.NotContains(t, buf.String(), `"stack"`)

	buf = captureLogs(t, zerolog.DebugLevel)
	recoverpkg.Safe("add", func() { panic(constant.ErrEmptyKey) })
	assert.Contains(t, buf.String(), `"stack"`)
}

// Without a custom logger, panics follow the logger configured at runtime.
func TestRecover_UsesConfiguredLogger(t *testing.T) {
	recoverpkg.SetLogger(nil)
	prev, prevLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prev
		zerolog.SetGlobalLevel(prevLevel)
		nop := zerolog.Nop()
		recoverpkg.SetLogger(&nop)
	})

	path := filepath.Join(t.TempDir(), "ptrie.log")
	x_log.InitWithConfig(&x_log.Config{
		Level:      "info",
		ToFile:     true,
		LogFile:    path,
		MaxSize:    1,
		MaxBackups: 1,
		MaxAge:     1,
	}, "ptrie")

	fn := recoverpkg.WrapRecover("shell.add", func(ctx context.Context) error {
		panic(errors.New("boom"))
	})
	assert.Error(t, fn(context.Background()))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "panic: boom")
	assert.Contains(t, string(content), `"module":"recover"`)
}
