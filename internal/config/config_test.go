package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[parse]
production = "type"
text = "owned"

[output]
format = "tree"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Parse.Production != "type" || cfg.Parse.Text != "owned" || cfg.Output.Format != "tree" {
		t.Fatalf("cfg = %+v", cfg)
	}
	def := Default()
	if cfg.Parse.MaxDepth != def.Parse.MaxDepth || cfg.Output.Color != def.Output.Color {
		t.Fatalf("unset keys lost their defaults: %+v", cfg)
	}
	if cfg.Path != path {
		t.Fatalf("path = %q", cfg.Path)
	}
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"unknown key", "[parse]\nproductions = \"value\"\n", "unknown keys: parse.productions"},
		{"bad production", "[parse]\nproduction = \"document\"\n", "parse.production"},
		{"bad text", "[parse]\ntext = \"shared\"\n", "parse.text"},
		{"bad depth", "[parse]\nmax_depth = 0\n", "parse.max_depth"},
		{"bad format", "[output]\nformat = \"yaml\"\n", "output.format"},
		{"bad color", "[output]\ncolor = \"always\"\n", "output.color"},
		{"negative max", "[output]\nmax_diagnostics = -1\n", "output.max_diagnostics"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.content)
			_, err := Load(path)
			var cfgErr *Error
			if !errors.As(err, &cfgErr) {
				t.Fatalf("err = %v, want *Error", err)
			}
			if !strings.Contains(err.Error(), tt.want) || !strings.HasPrefix(err.Error(), "CFG5001: ") {
				t.Fatalf("err = %q, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadSyntaxError(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[parse\n")
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "failed to parse TOML") {
		t.Fatalf("err = %v", err)
	}
}

func TestDiscoverWalksUp(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "[output]\nformat = \"json\"\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	cfg, err := Discover(nested)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Output.Format != "json" {
		t.Fatalf("format = %q", cfg.Output.Format)
	}
}

func TestFindMissing(t *testing.T) {
	// t.TempDir lives under the system temp dir, which has no gqlgrammar.toml
	// in any sane environment.
	_, ok, err := Find(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Skip("a gqlgrammar.toml exists above the temp dir")
	}
}
