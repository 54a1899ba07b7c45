// Package config loads the readlinks runtime configuration from
// layered sources: embedded defaults, the user's config file, and
// READLINKS_* environment variables, in that order of precedence.
package config

import (
	_ "embed"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/readlinks/pkg/errors"
	"github.com/arthur-debert/readlinks/pkg/logging"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// envPrefix is the namespace for environment overrides, e.g.
// READLINKS_OUTPUT_FORMAT=json.
const envPrefix = "READLINKS_"

// Config holds the resolved runtime configuration.
type Config struct {
	Output  OutputConfig  `koanf:"output" toml:"output"`
	Resolve ResolveConfig `koanf:"resolve" toml:"resolve"`
}

// OutputConfig controls how hops are rendered.
type OutputConfig struct {
	Format string `koanf:"format" toml:"format"`
	Tree   bool   `koanf:"tree" toml:"tree"`
}

// ResolveConfig controls the resolution itself.
type ResolveConfig struct {
	Expand  bool `koanf:"expand" toml:"expand"`
	MaxHops int  `koanf:"max_hops" toml:"max_hops"`
}

// rawBytesProvider implements a koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// Load builds the configuration from all layers.
func Load() (*Config, error) {
	k, err := defaultsKoanf()
	if err != nil {
		return nil, err
	}

	logger := logging.GetLogger("config")

	path := UserConfigPath()
	if _, statErr := os.Stat(path); statErr == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load %s", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded user config")
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKeyToConfigKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal config")
	}

	return &cfg, nil
}

// UserConfigPath returns the location of the user config file.
func UserConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "readlinks", "config.toml")
}

// defaultsKoanf loads only the embedded defaults layer.
func defaultsKoanf() (*koanf.Koanf, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load embedded defaults")
	}
	return k, nil
}

// envKeyToConfigKey maps READLINKS_OUTPUT_FORMAT to output.format.
// Only the first underscore becomes a separator, so keys like
// resolve.max_hops survive.
func envKeyToConfigKey(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
	return strings.Replace(key, "_", ".", 1)
}
