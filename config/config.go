// file: ptrie/config/config.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/rskv-p/ptrie/constant"
)

// Config holds CLI settings and the keys preloaded into every trie.
type Config struct {
	LogLevel string `json:"log_level"`
	LogStyle string `json:"log_style"`
	LogFile  string `json:"log_file"`
	NoColor  bool   `json:"no_color"`
	Prompt   string `json:"prompt"`
	Seeds    []Seed `json:"seeds"`
}

// Seed is one key/value pair loaded before a command runs.
type Seed struct {
	Key   string `json:"key" mapstructure:"key"`
	Value int    `json:"value" mapstructure:"value"`
}

// Default returns a default config.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		LogStyle: "dark",
		Prompt:   constant.DefaultPrompt,
	}
}

// Load loads config from file. Fields absent from the file keep their
// defaults. ${VAR} references are expanded from the environment.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	data = replaceEnvVars(data)

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse config json: %w", err)
	}

	cfg := Default()
	parseConfigFields(cfg, raw)

	if v, ok := raw["seeds"].([]any); ok {
		for _, s := range v {
			seed, err := decodeSeed(s)
			if err != nil {
				return nil, fmt.Errorf("decode seed: %w", err)
			}
			cfg.Seeds = append(cfg.Seeds, seed)
		}
	}
	return cfg, nil
}

// decodeSeed decodes one raw seed. JSON numbers arrive as float64 and must
// be integral to fill an int field.
func decodeSeed(raw any) (Seed, error) {
	var seed Seed
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: integralHook,
		Result:     &seed,
	})
	if err != nil {
		return seed, err
	}
	if err := dec.Decode(raw); err != nil {
		return seed, err
	}
	return seed, nil
}

func integralHook(from, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.Int || from.Kind() != reflect.Float64 {
		return data, nil
	}
	f := data.(float64)
	if math.Trunc(f) != f || math.IsInf(f, 0) {
		return nil, fmt.Errorf("%w: %v", constant.ErrBadValue, f)
	}
	return int(f), nil
}

// parseConfigFields copies the scalar settings present in raw.
func parseConfigFields(cfg *Config, raw map[string]any) {
	if v, ok := raw["log_level"].(string); ok {
		cfg.LogLevel = v
	}
	if v, ok := raw["log_style"].(string); ok {
		cfg.LogStyle = v
	}
	if v, ok := raw["log_file"].(string); ok {
		cfg.LogFile = v
	}
	if v, ok := raw["no_color"].(bool); ok {
		cfg.NoColor = v
	}
	if v, ok := raw["prompt"].(string); ok {
		cfg.Prompt = v
	}
}

// LoadFromEnv loads config from environment using prefix.
func LoadFromEnv(prefix string) *Config {
	cfg := Default()
	env := Env{Prefix: prefix}

	cfg.LogLevel = env.Str("LOG_LEVEL", cfg.LogLevel)
	cfg.LogStyle = env.Str("LOG_STYLE", cfg.LogStyle)
	cfg.LogFile = env.Str("LOG_FILE", cfg.LogFile)
	cfg.NoColor = env.Bool("NO_COLOR", cfg.NoColor)
	cfg.Prompt = env.Str("PROMPT", cfg.Prompt)

	return cfg
}

// LoadWithFallback loads from path, PTRIE_CONFIG, ./ptrie.json or env vars,
// in that order. Only an explicit path turns a missing file into an error.
func LoadWithFallback(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}
	for _, p := range []string{os.Getenv(constant.EnvConfigPath), constant.DefaultConfigFile} {
		if p == "" {
			continue
		}
		cfg, err := Load(p)
		if err == nil {
			return cfg, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}
	return LoadFromEnv(constant.EnvPrefix), nil
}

// Validate checks config for required values.
func (cfg *Config) Validate() error {
	var problems []string
	if cfg.LogLevel == "" {
		problems = append(problems, "log_level")
	}
	for i, s := range cfg.Seeds {
		if s.Key == "" {
			problems = append(problems, fmt.Sprintf("seeds[%d].key", i))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, ", "))
	}
	return nil
}

func (cfg *Config) String() string {
	data, _ := json.MarshalIndent(cfg, "", "  ")
	return string(data)
}

func (cfg *Config) Dump(w io.Writer) {
	data, _ := json.MarshalIndent(cfg, "", "  ")
	_, _ = w.Write(data)
}

// replaceEnvVars replaces ${ENV_VAR} in JSON with values from os.Getenv
func replaceEnvVars(data []byte) []byte {
	s := os.Expand(string(data), func(key string) string {
		return os.Getenv(key)
	})
	return []byte(s)
}
