// file: ptrie/config/env.go
package config

import (
	"os"
	"strconv"
	"strings"
)

// Env reads settings from variables named Prefix+key. Unset and empty
// variables yield the fallback.
type Env struct {
	Prefix string
}

func (e Env) lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(e.Prefix + key)
	return v, ok && v != ""
}

// Str returns the variable or fallback.
func (e Env) Str(key, fallback string) string {
	if v, ok := e.lookup(key); ok {
		return v
	}
	return fallback
}

// Int returns the variable parsed as int, fallback if unset or malformed.
func (e Env) Int(key string, fallback int) int {
	if v, ok := e.lookup(key); ok {
		if i, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return i
		}
	}
	return fallback
}

// Bool accepts yes/no and on/off on top of strconv.ParseBool.
func (e Env) Bool(key string, fallback bool) bool {
	v, ok := e.lookup(key)
	if !ok {
		return fallback
	}
	v = strings.ToLower(strings.TrimSpace(v))
	switch v {
	case "yes", "on":
		return true
	case "no", "off":
		return false
	}
	if b, err := strconv.ParseBool(v); err == nil {
		return b
	}
	return fallback
}

// GetEnvStr returns string env var or fallback.
func GetEnvStr(key string, fallback string) string { return Env{}.Str(key, fallback) }

// GetEnvInt returns int env var or fallback.
func GetEnvInt(key string, fallback int) int { return Env{}.Int(key, fallback) }

// GetEnvBool returns bool env var or fallback.
func GetEnvBool(key string, fallback bool) bool { return Env{}.Bool(key, fallback) }
