package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blinefmt.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.False(t, cfg.Strict)
	assert.True(t, cfg.Escapes)
	assert.Equal(t, "stdout", cfg.Output)
	assert.Equal(t, LogConfig{Level: "warn", Format: "text"}, cfg.Log)
	assert.NoError(t, cfg.Validate())
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
strict = true
output = "stderr"

[log]
level = "debug"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Strict)
	assert.True(t, cfg.Escapes)
	assert.Equal(t, "stderr", cfg.Output)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoadErrors(t *testing.T) {
	cases := map[string]string{
		"unknown key":    "strcit = true\n",
		"bad output":     "output = \"printer\"\n",
		"bad log format": "[log]\nformat = \"xml\"\n",
		"bad log level":  "[log]\nlevel = \"loud\"\n",
		"syntax":         "strict = = true\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := writeConfig(t, body)
			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), path)
		})
	}
}

func TestUnknownKeyNamed(t *testing.T) {
	_, err := Load(writeConfig(t, "[log]\ncolour = true\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown keys: log.colour")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestResolve(t *testing.T) {
	t.Setenv(EnvVar, "")
	cfg, path, err := Resolve("")
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, Default(), cfg)

	envPath := writeConfig(t, "strict = true\n")
	t.Setenv(EnvVar, envPath)
	cfg, path, err = Resolve("")
	require.NoError(t, err)
	assert.Equal(t, envPath, path)
	assert.True(t, cfg.Strict)

	flagPath := writeConfig(t, "escapes = false\n")
	cfg, path, err = Resolve(flagPath)
	require.NoError(t, err)
	assert.Equal(t, flagPath, path)
	assert.False(t, cfg.Strict)
	assert.False(t, cfg.Escapes)
}
