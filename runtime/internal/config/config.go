// Package config loads blinefmt's TOML configuration.
package config

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// EnvVar names a config file used when --config is not given.
const EnvVar = "BLINEFMT_CONFIG"

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "text" or "json"
}

type Config struct {
	Strict  bool      `toml:"strict"`  // reject leftover arguments
	Escapes bool      `toml:"escapes"` // interpret backslash escapes in the format
	Output  string    `toml:"output"`  // "stdout" or "stderr"
	Log     LogConfig `toml:"log"`
}

func Default() Config {
	return Config{
		Escapes: true,
		Output:  "stdout",
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Load decodes the file at path over the defaults. Unknown keys are an
// error so typos do not pass silently.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, errors.Wrapf(err, `failed to load config "%s"`, path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, errors.Errorf(`config "%s": unknown keys: %s`, path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, `config "%s"`, path)
	}
	return cfg, nil
}

// Resolve picks the config file: flagPath first, then $BLINEFMT_CONFIG.
// With neither set it returns the defaults and an empty path.
func Resolve(flagPath string) (Config, string, error) {
	path := flagPath
	if path == "" {
		path = os.Getenv(EnvVar)
	}
	if path == "" {
		return Default(), "", nil
	}
	cfg, err := Load(path)
	return cfg, path, err
}

func (c Config) Validate() error {
	switch c.Output {
	case "stdout", "stderr":
	default:
		return errors.Errorf(`output must be "stdout" or "stderr", got %q`, c.Output)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return errors.Errorf(`log.format must be "text" or "json", got %q`, c.Log.Format)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrap(err, "log.level")
	}
	return nil
}
