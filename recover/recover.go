// file: ptrie/recover/recover.go
package recover

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/rs/zerolog"
	"github.com/rskv-p/ptrie/pkg/x_log"
)

const (
	tagLabel = "label"
	tagStack = "stack"
)

// ----------------------------------------------------
// Global panic hook (optional)
// ----------------------------------------------------

var OnPanic func(label string, recovered any)
var custom *zerolog.Logger

// SetLogger allows injecting a custom logger instance (e.g. for testing).
// nil restores the global logger.
func SetLogger(l *zerolog.Logger) {
	custom = l
}

// logger resolves the global logger on every call so that settings applied
// by x_log.InitWithConfig after package init are honored.
func logger() *zerolog.Logger {
	if custom != nil {
		return custom
	}
	l := x_log.New("recover")
	return &l
}

// ----------------------------------------------------
// Panic recovery functions
// ----------------------------------------------------

// RecoverExplicit logs a known recovered panic with its label.
func RecoverExplicit(label string, recovered any) {
	if recovered == nil {
		return
	}

	log := logger()
	stack := string(debug.Stack())

	// error values are precondition failures, their stack is debug only
	if _, ok := recovered.(error); ok {
		log.Error().Str(tagLabel, label).Msgf("panic: %v", recovered)
		log.Debug().Str(tagLabel, label).Str(tagStack, stack).Msg("panic stack")
	} else {
		log.Error().Str(tagLabel, label).Str(tagStack, stack).Msgf("panic: %v", recovered)
	}

	if OnPanic != nil {
		OnPanic(label, recovered)
	}
}

// Safe runs the given function safely, recovering and logging any panic with label.
func Safe(label string, fn func()) {
	defer func() {
		RecoverExplicit(label, recover())
	}()
	fn()
}

// ----------------------------------------------------
// Universal wrapper
// ----------------------------------------------------

// RecoverableFunc is a context-aware function that may panic.
type RecoverableFunc func(ctx context.Context) error

// WrapRecover wraps a context-aware function with panic protection.
// A panic is logged and returned as an error; error values are wrapped so
// errors.Is still matches them.
func WrapRecover(label string, f RecoverableFunc) RecoverableFunc {
	return func(ctx context.Context) (err error) {
		defer func() {
			if r := recover(); r != nil {
				RecoverExplicit(label, r)
				if e, ok := r.(error); ok {
					err = fmt.Errorf("panic recovered in %s: %w", label, e)
					return
				}
				err = fmt.Errorf("panic recovered in %s: %v", label, r)
			}
		}()
		return f(ctx)
	}
}
