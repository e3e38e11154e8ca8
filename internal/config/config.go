// Package config loads the command-line defaults for number layout and
// approximation from a TOML or YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/govalues/xnum"
	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"
)

// DefaultMaxDen is the approximation bound used when none is configured.
const DefaultMaxDen = 1_000_000

var (
	errUnknownFormat = errors.New("unknown config format")
	errMaxDen        = errors.New("max_den must be positive")
)

// Config holds the settings shared by all commands.
type Config struct {
	Layout LayoutConfig `toml:"layout" yaml:"layout"`
	Approx ApproxConfig `toml:"approx" yaml:"approx"`
}

// LayoutConfig mirrors [xnum.LayoutFlags].
// HyphenMinus is a pointer so that an absent key can fall back to
// terminal detection.
type LayoutConfig struct {
	PlusSign    bool  `toml:"plus_sign" yaml:"plus_sign"`
	SignedZero  bool  `toml:"signed_zero" yaml:"signed_zero"`
	SignedInf   bool  `toml:"signed_inf" yaml:"signed_inf"`
	DenomOne    bool  `toml:"denom_one" yaml:"denom_one"`
	HyphenMinus *bool `toml:"hyphen_minus" yaml:"hyphen_minus"`
}

// ApproxConfig holds the defaults of the approx command.
type ApproxConfig struct {
	MaxDen int64 `toml:"max_den" yaml:"max_den"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{Approx: ApproxConfig{MaxDen: DefaultMaxDen}}
}

// Load reads the configuration from path.
// The format is chosen by the file extension: ".toml", ".yaml" or ".yml".
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg, err := Decode(filepath.Ext(path), bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("loading %v: %w", path, err)
	}
	return cfg, nil
}

// Decode parses a configuration in the format named by ext and applies
// defaults to the keys it leaves unset.
func Decode(ext string, r io.Reader) (*Config, error) {
	cfg := &Config{}
	switch strings.ToLower(ext) {
	case ".toml":
		if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	case ".yaml", ".yml":
		// An empty document decodes to io.EOF.
		if err := yaml.NewDecoder(r).Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("extension %q: %w", ext, errUnknownFormat)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Approx.MaxDen == 0 {
		c.Approx.MaxDen = DefaultMaxDen
	}
}

// Validate checks the values that cannot be fixed by defaults.
func (c *Config) Validate() error {
	if c.Approx.MaxDen <= 0 {
		return fmt.Errorf("approx: %v: %w", c.Approx.MaxDen, errMaxDen)
	}
	return nil
}

// Flags converts the layout settings to [xnum.LayoutFlags].
// If hyphen_minus is not set, the ASCII hyphen is used unless out is a
// terminal.
func (c *Config) Flags(out *os.File) xnum.LayoutFlags {
	var f xnum.LayoutFlags
	if c.Layout.PlusSign {
		f |= xnum.PlusSign
	}
	if c.Layout.SignedZero {
		f |= xnum.SignedZero
	}
	if c.Layout.SignedInf {
		f |= xnum.SignedInf
	}
	if c.Layout.DenomOne {
		f |= xnum.DenomOne
	}
	hyphen := !IsTerminal(out)
	if c.Layout.HyphenMinus != nil {
		hyphen = *c.Layout.HyphenMinus
	}
	if hyphen {
		f |= xnum.HyphenMinus
	}
	return f
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
