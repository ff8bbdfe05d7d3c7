package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "info", cfg.General.LogLevel)
	assert.Equal(t, "text", cfg.General.LogFormat)
	assert.Equal(t, PolicyBroad, cfg.Strip.Policy)
	assert.Equal(t, " ", cfg.Hex.Separator)
	assert.Equal(t, 16, cfg.Hex.LineWidth)
	assert.Equal(t, 2, cfg.Bytes.Scale)
	assert.False(t, cfg.Bytes.SI)
	assert.False(t, cfg.Lines.KeepTrailing)
	assert.Equal(t, 4096, cfg.Match.MaxInputRunes)
	assert.True(t, cfg.Anchor.Deduplicate)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "textkit.toml", `
[general]
log_level = "DEBUG"
log_format = "json"

[strip]
keep = ":-"
policy = "strict"

[hex]
separator = ":"
line_width = 8

[bytes]
si = true

[anchor]
deduplicate = false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.General.LogLevel)
	assert.Equal(t, "json", cfg.General.LogFormat)
	assert.Equal(t, ":-", cfg.Strip.Keep)
	assert.Equal(t, PolicyStrict, cfg.Strip.Policy)
	assert.Equal(t, ":", cfg.Hex.Separator)
	assert.Equal(t, 8, cfg.Hex.LineWidth)
	assert.True(t, cfg.Bytes.SI)
	assert.Equal(t, 2, cfg.Bytes.Scale, "unset keys keep defaults")
	assert.Equal(t, 4096, cfg.Match.MaxInputRunes)
	assert.False(t, cfg.Anchor.Deduplicate)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "textkit.yml", `
lines:
  keep_trailing: true
match:
  max_input_runes: 100
strip:
  policy: ""
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Lines.KeepTrailing)
	assert.Equal(t, 100, cfg.Match.MaxInputRunes)
	assert.Equal(t, PolicyBroad, cfg.Strip.Policy, "empty policy falls back to broad")
	assert.True(t, cfg.Anchor.Deduplicate)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		path string
		code mdwerror.Code
	}{
		{"missing file", filepath.Join(dir, "nope.toml"), mdwerror.CodeMissingConfig},
		{"unknown extension", writeFile(t, dir, "textkit.ini", "x=1"), mdwerror.CodeInvalidFormat},
		{"broken toml", writeFile(t, dir, "broken.toml", "[general\nlog_level="), mdwerror.CodeConfigError},
		{"broken yaml", writeFile(t, dir, "broken.yaml", "general: [unclosed"), mdwerror.CodeConfigError},
		{"bad policy", writeFile(t, dir, "policy.toml", "[strip]\npolicy = \"loose\""), mdwerror.CodeInvalidConfig},
		{"negative width", writeFile(t, dir, "width.toml", "[hex]\nline_width = -1"), mdwerror.CodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(tt.path)
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Equal(t, tt.code, mdwerror.GetCode(err))
		})
	}
}

func TestLoad_ExpandsEnvInPath(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "textkit.toml", "[hex]\nline_width = 4")
	t.Setenv("TEXTKIT_TEST_DIR", dir)

	cfg, err := Load("$TEXTKIT_TEST_DIR/textkit.toml")
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Hex.LineWidth)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"zero limit", func(c *Config) { c.Match.MaxInputRunes = 0 }, true},
		{"bad level", func(c *Config) { c.General.LogLevel = "loud" }, false},
		{"bad format", func(c *Config) { c.General.LogFormat = "xml" }, false},
		{"bad policy", func(c *Config) { c.Strip.Policy = "none" }, false},
		{"negative scale", func(c *Config) { c.Bytes.Scale = -2 }, false},
		{"negative limit", func(c *Config) { c.Match.MaxInputRunes = -1 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidConfig))
		})
	}
}

func TestLoadFromEnv(t *testing.T) {
	path := writeFile(t, t.TempDir(), "custom.toml", "[bytes]\nscale = 3")
	t.Setenv(EnvVar, path)

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Bytes.Scale)
}

func TestLoadOrDefault(t *testing.T) {
	t.Run("explicit path", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "a.yaml", "bytes:\n  scale: 5\n")
		cfg, err := LoadOrDefault(path)
		require.NoError(t, err)
		assert.Equal(t, 5, cfg.Bytes.Scale)
	})

	t.Run("explicit missing path fails", func(t *testing.T) {
		_, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.toml"))
		require.Error(t, err)
		assert.True(t, mdwerror.HasCode(err, mdwerror.CodeMissingConfig))
	})

	t.Run("nothing found falls back", func(t *testing.T) {
		dir := t.TempDir()
		wd, err := os.Getwd()
		require.NoError(t, err)
		require.NoError(t, os.Chdir(dir))
		t.Cleanup(func() { _ = os.Chdir(wd) })
		t.Setenv(EnvVar, "")
		t.Setenv("HOME", dir)

		cfg, err := LoadOrDefault("")
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"a.toml", "toml"},
		{"a.TOML", "toml"},
		{"a.yaml", "yaml"},
		{"a.yml", "yaml"},
		{"a.json", ""},
		{"noext", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, detectFormat(tt.path), tt.path)
	}
}
