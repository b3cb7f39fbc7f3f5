package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/pdarules/pkg/errors"
	"github.com/arthur-debert/pdarules/pkg/logging"
	"github.com/arthur-debert/pdarules/pkg/rules"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix marks environment variables read as settings
	EnvPrefix = "PDARULES_"
	// FileName is the user config file name
	FileName = "config.toml"
)

var outputFormats = []string{"auto", "term", "terminal", "text", "plain", "json"}

// UserConfigPath returns where the user config file is looked up when no
// explicit path is given
func UserConfigPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		base = xdg.ConfigHome
	}
	return filepath.Join(base, logging.AppDirName, FileName)
}

// Load builds the configuration. An explicit path must exist; the default
// user file is optional.
func Load(path string) (*Config, error) {
	k, err := newKoanf(path)
	if err != nil {
		return nil, err
	}
	return unmarshal(k)
}

// LoadWith layers overrides (dotted keys) on top of Load. The CLI uses it
// for flags that shadow settings.
func LoadWith(path string, overrides map[string]interface{}) (*Config, error) {
	k, err := newKoanf(path)
	if err != nil {
		return nil, err
	}
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}
	return unmarshal(k)
}

func newKoanf(path string) (*koanf.Koanf, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User file
	explicit := path != ""
	if !explicit {
		path = UserConfigPath()
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded user config")
	} else if explicit {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not found", path).
			WithDetail("path", path)
	}

	// 3. Env vars: the first '_' after the prefix separates section and key
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	return k, nil
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	if _, ok := rules.ParseLevel(cfg.Builder.ModeLevel); !ok {
		return errors.Newf(errors.ErrConfigParse, "unknown builder.mode_level %q", cfg.Builder.ModeLevel).
			WithDetail("key", "builder.mode_level")
	}
	format := strings.ToLower(cfg.Output.Format)
	valid := false
	for _, f := range outputFormats {
		if format == f {
			valid = true
			break
		}
	}
	if !valid {
		return errors.Newf(errors.ErrConfigParse, "unknown output.format %q", cfg.Output.Format).
			WithDetail("key", "output.format")
	}
	for i, s := range cfg.Clipboard.Strategies {
		cfg.Clipboard.Strategies[i] = strings.TrimSpace(s)
	}
	return nil
}

// ModeLevel returns the parsed builder.mode_level
func (c *Config) ModeLevel() rules.Level {
	level, _ := rules.ParseLevel(c.Builder.ModeLevel)
	return level
}
