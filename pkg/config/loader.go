package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/assetunion/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix prefixes every environment variable read as config
	EnvPrefix = "ASSETUNION_"

	appDirName     = "assetunion"
	userConfigName = "config.toml"
)

// ProjectFileNames are probed in order when no explicit path is given.
var ProjectFileNames = []string{"assetunion.toml", ".assetunion.toml", "assetunion.yaml", "assetunion.yml"}

// LoadOptions selects where configuration is read from.
type LoadOptions struct {
	// Path is an explicit project file. It must exist when set.
	Path string
	// Dir is searched for a project file when Path is empty. Defaults to ".".
	Dir string
	// Overrides are applied last, keyed like the config file ("source_dir").
	Overrides map[string]interface{}
	// SkipUserConfig ignores the file under the XDG config directory.
	SkipUserConfig bool
}

// Load builds a Config from all layers and validates it.
func Load(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config
	if !opts.SkipUserConfig {
		userPath := UserConfigPath()
		if _, err := os.Stat(userPath); err == nil {
			if err := k.Load(file.Provider(userPath), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load user config from %s", userPath).
					WithDetail("path", userPath)
			}
		}
	}

	// 3. Project config
	projectPath, err := findProjectFile(opts)
	if err != nil {
		return nil, err
	}
	if projectPath != "" {
		if err := k.Load(file.Provider(projectPath), parserFor(projectPath)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load project config from %s", projectPath).
				WithDetail("path", projectPath)
		}
	}

	// 4. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 5. Overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.TextUnmarshallerHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if projectPath != "" {
		abs, err := filepath.Abs(projectPath)
		if err == nil {
			projectPath = abs
		}
		cfg.ConfigFile = projectPath
		cfg.resolvePaths(filepath.Dir(projectPath))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

var (
	defaultOnce sync.Once
	defaultCfg  *Config
	defaultErr  error
)

// Default returns the process-wide configuration, loaded from the working
// directory on first use. Later calls return the same value.
func Default() (*Config, error) {
	defaultOnce.Do(func() {
		defaultCfg, defaultErr = Load(LoadOptions{})
	})
	return defaultCfg, defaultErr
}

// UserConfigPath returns the per-user config file location. It respects
// XDG_CONFIG_HOME if set.
func UserConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = xdg.ConfigHome
	}
	return filepath.Join(configHome, appDirName, userConfigName)
}

func findProjectFile(opts LoadOptions) (string, error) {
	if opts.Path != "" {
		if _, err := os.Stat(opts.Path); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not found", opts.Path).
				WithDetail("path", opts.Path)
		}
		return opts.Path, nil
	}

	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	for _, name := range ProjectFileNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", nil
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

// envKey maps ASSETUNION_LOGGING__FILE to logging.file.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}
