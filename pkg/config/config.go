package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/arthur-debert/assetunion/pkg/errors"
)

// MissingPolicy decides how an unreadable source file is treated.
type MissingPolicy string

const (
	// MissingFail makes a missing source mark the bundle stale and abort the rebuild.
	MissingFail MissingPolicy = "fail"
	// MissingSkip ignores a missing source in both the staleness check and the rebuild.
	MissingSkip MissingPolicy = "skip"
)

// Valid reports whether p is a known policy.
func (p MissingPolicy) Valid() bool {
	return p == MissingFail || p == MissingSkip
}

// FileMode is an os.FileMode that reads and writes as an octal string ("0644").
type FileMode os.FileMode

// MarshalText implements encoding.TextMarshaler
func (m FileMode) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("%04o", uint32(m))), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (m *FileMode) UnmarshalText(text []byte) error {
	v, err := strconv.ParseUint(string(text), 8, 32)
	if err != nil {
		return fmt.Errorf("invalid file mode %q: %w", string(text), err)
	}
	*m = FileMode(v)
	return nil
}

// Perm returns the mode as an os.FileMode.
func (m FileMode) Perm() os.FileMode {
	return os.FileMode(m).Perm()
}

// BundleConfig describes one output artifact.
type BundleConfig struct {
	Files     []string `koanf:"files" toml:"files" yaml:"files"`
	Output    string   `koanf:"output" toml:"output" yaml:"output"`
	Transform string   `koanf:"transform" toml:"transform,omitempty" yaml:"transform,omitempty"`
	// SourceDir overrides the top-level source_dir for this bundle.
	SourceDir string `koanf:"source_dir" toml:"source_dir,omitempty" yaml:"source_dir,omitempty"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	File bool `koanf:"file" toml:"file" yaml:"file"`
}

// Config is the resolved configuration. Treat it as read-only once loaded.
type Config struct {
	SourceDir      string                  `koanf:"source_dir" toml:"source_dir" yaml:"source_dir"`
	MissingSources MissingPolicy           `koanf:"missing_sources" toml:"missing_sources" yaml:"missing_sources"`
	FileMode       FileMode                `koanf:"file_mode" toml:"file_mode" yaml:"file_mode"`
	Logging        LoggingConfig           `koanf:"logging" toml:"logging" yaml:"logging"`
	Bundles        map[string]BundleConfig `koanf:"bundles" toml:"bundles,omitempty" yaml:"bundles,omitempty"`

	// ConfigFile is the project file the config was read from, if any.
	ConfigFile string `koanf:"-" toml:"-" yaml:"-"`
}

// Validate checks values that cannot be fixed up later.
func (c *Config) Validate() error {
	if !c.MissingSources.Valid() {
		return errors.Newf(errors.ErrConfigValid, "missing_sources must be %q or %q, got %q",
			MissingFail, MissingSkip, c.MissingSources)
	}
	for _, name := range c.BundleNames() {
		b := c.Bundles[name]
		if len(b.Files) == 0 {
			return errors.Newf(errors.ErrConfigValid, "bundle %q has no files", name).
				WithDetail("bundle", name)
		}
		if b.Output == "" {
			return errors.Newf(errors.ErrConfigValid, "bundle %q has no output", name).
				WithDetail("bundle", name)
		}
	}
	return nil
}

// BundleNames returns the configured bundle names in sorted order.
func (c *Config) BundleNames() []string {
	names := make([]string, 0, len(c.Bundles))
	for name := range c.Bundles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Bundle looks up a bundle by name.
func (c *Config) Bundle(name string) (BundleConfig, error) {
	b, ok := c.Bundles[name]
	if !ok {
		return BundleConfig{}, errors.Newf(errors.ErrBundleNotFound, "bundle %q is not configured", name).
			WithDetail("bundle", name)
	}
	return b, nil
}

// ForBundle returns a copy of c whose SourceDir is the one b should use.
func (c *Config) ForBundle(b BundleConfig) *Config {
	cp := *c
	if b.SourceDir != "" {
		cp.SourceDir = b.SourceDir
	}
	return &cp
}

// resolvePaths makes relative paths absolute against base.
func (c *Config) resolvePaths(base string) {
	c.SourceDir = resolve(base, c.SourceDir)
	for name, b := range c.Bundles {
		b.Output = resolve(base, b.Output)
		b.SourceDir = resolve(base, b.SourceDir)
		c.Bundles[name] = b
	}
}

func resolve(base, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}
