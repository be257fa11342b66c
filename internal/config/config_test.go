package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "[format]\nindent_width = 4\n\n[files]\nexclude = [\"_corral\", \"_repos\"]\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Format.IndentWidth != 4 || cfg.Format.InlineLimit != 50 {
		t.Fatalf("unexpected format table: %+v", cfg.Format)
	}
	if len(cfg.Files.Exclude) != 2 || cfg.Files.Exclude[1] != "_repos" {
		t.Fatalf("unexpected excludes: %v", cfg.Files.Exclude)
	}
	if opts := cfg.Options(); opts.IndentWidth != 4 || opts.InlineLimit != 50 {
		t.Fatalf("unexpected options: %+v", opts)
	}
	if cfg.Path != path {
		t.Fatalf("path not recorded: %q", cfg.Path)
	}
}

func TestLoadErrors(t *testing.T) {
	cases := map[string]string{
		"[format]\nindent_width = 0\n":  "indent_width must be positive",
		"[format]\ninline_limit = -1\n": "inline_limit must be positive",
		"[format]\ntabs = true\n":       "unknown key",
		"[format\n":                     "failed to parse TOML",
	}
	for body, want := range cases {
		path := writeConfig(t, t.TempDir(), body)
		_, err := Load(path)
		if err == nil || !strings.Contains(err.Error(), want) || !strings.Contains(err.Error(), path) {
			t.Fatalf("%q: want error containing %q, got %v", body, want, err)
		}
	}
}

func TestResolveWalksUp(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "[format]\ninline_limit = 80\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	cfg, err := Resolve("", nested)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Format.InlineLimit != 80 || cfg.Path == "" {
		t.Fatalf("config above start dir not found: %+v", cfg)
	}

	explicit := writeConfig(t, t.TempDir(), "[format]\nindent_width = 3\n")
	cfg, err = Resolve(explicit, nested)
	if err != nil || cfg.Format.IndentWidth != 3 {
		t.Fatalf("explicit config ignored: %+v, %v", cfg, err)
	}
}
