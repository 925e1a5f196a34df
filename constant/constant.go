// file: ptrie/constant/constant.go
package constant

import "errors"

// ----------------------------------------------------
// Precondition violations (raised with panic)
// ----------------------------------------------------

var (
	ErrEmptyKey     = errors.New("key must hold at least one symbol")
	ErrInvalidValue = errors.New("value equals the reserved invalid value")
)

// ----------------------------------------------------
// CLI errors
// ----------------------------------------------------

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadArgs        = errors.New("wrong number of arguments")
	ErrBadValue       = errors.New("value must be an integer")
)

// ----------------------------------------------------
// Config paths & keys
// ----------------------------------------------------

const (
	DefaultConfigFile = "ptrie.json"
	EnvConfigPath     = "PTRIE_CONFIG"
	EnvPrefix         = "PTRIE_"
	DefaultPrompt     = "ptrie> "
)
