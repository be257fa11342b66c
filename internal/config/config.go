// Package config loads ponyfmt.toml project settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"ponyfmt/internal/format"
)

// FileName is the configuration file looked up from the working directory upwards.
const FileName = "ponyfmt.toml"

// Config is the decoded ponyfmt.toml.
type Config struct {
	Format FormatConfig `toml:"format"`
	Files  FilesConfig  `toml:"files"`

	// Path is the file the config came from; empty for defaults.
	Path string `toml:"-"`
}

// FormatConfig holds the [format] table.
type FormatConfig struct {
	IndentWidth int `toml:"indent_width"`
	InlineLimit int `toml:"inline_limit"`
}

// FilesConfig holds the [files] table.
type FilesConfig struct {
	Exclude []string `toml:"exclude"`
}

// Default returns the settings used without a config file.
func Default() Config {
	return Config{
		Format: FormatConfig{
			IndentWidth: format.DefaultIndentWidth,
			InlineLimit: format.DefaultInlineLimit,
		},
	}
}

// Options converts the [format] table into formatter options.
func (c Config) Options() format.Options {
	return format.Options{IndentWidth: c.Format.IndentWidth, InlineLimit: c.Format.InlineLimit}.WithDefaults()
}

// Find walks up from startDir looking for ponyfmt.toml.
func Find(startDir string) (string, bool, error) {
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

// Load decodes path over the defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	if meta.IsDefined("format", "indent_width") && cfg.Format.IndentWidth <= 0 {
		return Config{}, fmt.Errorf("%s: [format].indent_width must be positive", path)
	}
	if meta.IsDefined("format", "inline_limit") && cfg.Format.InlineLimit <= 0 {
		return Config{}, fmt.Errorf("%s: [format].inline_limit must be positive", path)
	}
	cfg.Path = path
	return cfg, nil
}

// Resolve loads explicit when set, otherwise the nearest ponyfmt.toml above startDir,
// otherwise the defaults.
func Resolve(explicit, startDir string) (Config, error) {
	if explicit != "" {
		return Load(explicit)
	}
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}
