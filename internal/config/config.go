// Package config loads gqlgrammar.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"gqlgrammar/internal/diag"
	"gqlgrammar/internal/parser"
)

// FileName is the name looked up by Find.
const FileName = "gqlgrammar.toml"

var (
	OutputFormats = []string{"pretty", "json", "tree", "msgpack"}
	ColorModes    = []string{"auto", "on", "off"}
	TextPolicies  = []string{"borrowed", "owned"}
)

type Parse struct {
	Production string `toml:"production"`
	Text       string `toml:"text"`
	MaxDepth   int    `toml:"max_depth"`
}

type Output struct {
	Format         string `toml:"format"`
	Color          string `toml:"color"`
	MaxDiagnostics int    `toml:"max_diagnostics"`
}

// Config mirrors gqlgrammar.toml. Path is empty for the built-in defaults.
type Config struct {
	Path   string `toml:"-"`
	Parse  Parse  `toml:"parse"`
	Output Output `toml:"output"`
}

// Default returns the configuration used when no file is found.
func Default() Config {
	return Config{
		Parse: Parse{
			Production: parser.ProdValue.String(),
			Text:       "borrowed",
			MaxDepth:   parser.DefaultMaxDepth,
		},
		Output: Output{
			Format:         "pretty",
			Color:          "auto",
			MaxDiagnostics: 100,
		},
	}
}

// Error is an invalid configuration value.
type Error struct {
	Path string
	Key  string
	Msg  string
}

func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(diag.ConfigInvalid.ID())
	sb.WriteString(": ")
	if e.Path != "" {
		sb.WriteString(e.Path)
		sb.WriteString(": ")
	}
	if e.Key != "" {
		sb.WriteString(e.Key)
		sb.WriteString(": ")
	}
	sb.WriteString(e.Msg)
	return sb.String()
}

// Find walks up from startDir to locate gqlgrammar.toml.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load decodes path on top of Default and validates the result. Unknown
// keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	cfg.Path = path
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Config{}, &Error{Path: path, Msg: "unknown keys: " + strings.Join(keys, ", ")}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Discover loads the nearest gqlgrammar.toml above startDir, or returns
// Default when there is none.
func Discover(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks every enumerated value and limit.
func (c Config) Validate() error {
	invalid := func(key, msg string) error {
		return &Error{Path: c.Path, Key: key, Msg: msg}
	}
	if _, ok := parser.ParseProduction(c.Parse.Production); !ok {
		return invalid("parse.production", fmt.Sprintf("unknown production %q (expected: %s)",
			c.Parse.Production, strings.Join(parser.Productions(), "|")))
	}
	if err := oneOf(c.Parse.Text, TextPolicies); err != nil {
		return invalid("parse.text", err.Error())
	}
	if c.Parse.MaxDepth < 1 {
		return invalid("parse.max_depth", fmt.Sprintf("must be positive, got %d", c.Parse.MaxDepth))
	}
	if err := oneOf(c.Output.Format, OutputFormats); err != nil {
		return invalid("output.format", err.Error())
	}
	if err := oneOf(c.Output.Color, ColorModes); err != nil {
		return invalid("output.color", err.Error())
	}
	if c.Output.MaxDiagnostics < 0 {
		return invalid("output.max_diagnostics", fmt.Sprintf("must not be negative, got %d", c.Output.MaxDiagnostics))
	}
	return nil
}

func oneOf(v string, allowed []string) error {
	if slices.Contains(allowed, v) {
		return nil
	}
	return fmt.Errorf("invalid value %q (expected: %s)", v, strings.Join(allowed, "|"))
}
