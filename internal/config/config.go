// Package config loads the apint tool's TOML settings.
package config

import (
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

const (
	// EnvVar names a config file to use when --config is not given.
	EnvVar = "APINT_CONFIG"

	// DefaultFile is read from the working directory if it exists.
	DefaultFile = "apint.toml"

	DefaultIterations = 200
)

var (
	ErrUnknownKeys = errors.New("config: unknown keys")
	ErrInvalid     = errors.New("config: invalid value")
)

const (
	ColorAuto = "auto"
	ColorOn   = "on"
	ColorOff  = "off"
)

var (
	colorModes = []string{ColorAuto, ColorOn, ColorOff}
	formats    = []string{"json", "cbor", "msgpack", "text"}
)

type Config struct {
	Color    string `toml:"color"`
	LogLevel string `toml:"log_level"`
	Check    Check  `toml:"check"`
	Encode   Encode `toml:"encode"`

	// Path is the file the config was read from, or empty for the built-in
	// defaults.
	Path string `toml:"-"`
}

type Check struct {
	// Seed for the randomized checks; 0 means the current time.
	Seed       int64 `toml:"seed"`
	Iterations int   `toml:"iterations"`
}

type Encode struct {
	Format string `toml:"format"`
}

func Default() Config {
	return Config{
		Color:    ColorAuto,
		LogLevel: zerolog.WarnLevel.String(),
		Check:    Check{Iterations: DefaultIterations},
		Encode:   Encode{Format: "json"},
	}
}

// Load finds and reads the config file. explicit is the value of the
// --config flag. If it is empty, $APINT_CONFIG is tried, then DefaultFile in
// the working directory. A file named by the flag or the environment must
// exist; DefaultFile is optional.
func Load(explicit string) (Config, error) {
	if explicit != "" {
		return LoadFile(explicit)
	}
	if env := strings.TrimSpace(os.Getenv(EnvVar)); env != "" {
		return LoadFile(env)
	}
	if _, err := os.Stat(DefaultFile); err == nil {
		return LoadFile(DefaultFile)
	} else if !errors.Is(err, os.ErrNotExist) {
		return Config{}, errors.Wrapf(err, "config: stat %q", DefaultFile)
	}
	return Default(), nil
}

// LoadFile reads path over the defaults. Keys absent from the file keep their
// default values.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config: %s: failed to parse TOML", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, errors.Wrapf(ErrUnknownKeys, "%s: %s", path, strings.Join(keys, ", "))
	}
	cfg.Path = path
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrapf(err, "%s", path)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if !contains(colorModes, c.Color) {
		return errors.Wrapf(ErrInvalid, "color %q not one of %s", c.Color, strings.Join(colorModes, ", "))
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.Check.Iterations < 1 {
		return errors.Wrapf(ErrInvalid, "check.iterations %d < 1", c.Check.Iterations)
	}
	if !contains(formats, c.Encode.Format) {
		return errors.Wrapf(ErrInvalid, "encode.format %q not one of %s", c.Encode.Format, strings.Join(formats, ", "))
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil || c.LogLevel == "" {
		return zerolog.NoLevel, errors.Wrapf(ErrInvalid, "log_level %q", c.LogLevel)
	}
	return lvl, nil
}

// Formats lists the accepted encode.format values.
func Formats() []string {
	return append([]string(nil), formats...)
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
