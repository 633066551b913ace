package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hellenic-development/figma-tokens/pkg/serializer"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadProjectConfig(t *testing.T) {
	path := writeConfig(t, `
file_url: https://www.figma.com/design/ABC123/Design-System
out_dir: build/tokens
formats: [css, scss]
outputs:
  css: theme.css
interval: 30s
style_prefix: "Tokens/"
`)

	cfg, err := loadProjectConfig(path, true)
	require.NoError(t, err)

	assert.Equal(t, "https://www.figma.com/design/ABC123/Design-System", cfg.FileURL)
	assert.Equal(t, "build/tokens", cfg.OutDir)
	assert.Equal(t, []string{"css", "scss"}, cfg.Formats)
	assert.Equal(t, "theme.css", cfg.Outputs["css"])
	assert.Equal(t, "30s", cfg.Interval)
	assert.Equal(t, "Tokens/", cfg.StylePrefix)
}

func TestLoadProjectConfigMissingDefault(t *testing.T) {
	cfg, err := loadProjectConfig(filepath.Join(t.TempDir(), "absent.yaml"), false)
	require.NoError(t, err, "a missing default config is not an error")
	assert.Equal(t, &ProjectConfig{}, cfg)
}

func TestLoadProjectConfigMissingExplicit(t *testing.T) {
	_, err := loadProjectConfig(filepath.Join(t.TempDir(), "absent.yaml"), true)
	assert.Error(t, err, "an explicitly passed config path must exist")
}

func TestLoadProjectConfigInvalidYAML(t *testing.T) {
	path := writeConfig(t, "formats: [css\n")
	_, err := loadProjectConfig(path, true)
	assert.Error(t, err)
}

func TestResolveFormats(t *testing.T) {
	cfg := &ProjectConfig{Formats: []string{"json"}}

	t.Run("flag wins over config", func(t *testing.T) {
		got, err := resolveFormats("css,scss", cfg)
		require.NoError(t, err)
		assert.Equal(t, []serializer.Format{serializer.FormatCSS, serializer.FormatSCSS}, got)
	})

	t.Run("config used when flag empty", func(t *testing.T) {
		got, err := resolveFormats("", cfg)
		require.NoError(t, err)
		assert.Equal(t, []serializer.Format{serializer.FormatJSON}, got)
	})

	t.Run("all formats when neither set", func(t *testing.T) {
		got, err := resolveFormats("", &ProjectConfig{})
		require.NoError(t, err)
		assert.Equal(t, serializer.All, got)
	})

	t.Run("unknown config format rejected", func(t *testing.T) {
		_, err := resolveFormats("", &ProjectConfig{Formats: []string{"less"}})
		assert.Error(t, err)
	})
}

func TestResolveOutputNames(t *testing.T) {
	got, err := resolveOutputNames(&ProjectConfig{Outputs: map[string]string{"css": "theme.css"}})
	require.NoError(t, err)
	assert.Equal(t, map[serializer.Format]string{serializer.FormatCSS: "theme.css"}, got)

	_, err = resolveOutputNames(&ProjectConfig{Outputs: map[string]string{"stylus": "x"}})
	assert.Error(t, err)

	got, err = resolveOutputNames(&ProjectConfig{})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestResolveInterval(t *testing.T) {
	t.Run("flag wins", func(t *testing.T) {
		got, err := resolveInterval(5*time.Second, &ProjectConfig{Interval: "30s"}, time.Minute)
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, got)
	})

	t.Run("config parsed", func(t *testing.T) {
		got, err := resolveInterval(0, &ProjectConfig{Interval: "30s"}, time.Minute)
		require.NoError(t, err)
		assert.Equal(t, 30*time.Second, got)
	})

	t.Run("fallback", func(t *testing.T) {
		got, err := resolveInterval(0, &ProjectConfig{}, time.Minute)
		require.NoError(t, err)
		assert.Equal(t, time.Minute, got)
	})

	t.Run("invalid config interval", func(t *testing.T) {
		_, err := resolveInterval(0, &ProjectConfig{Interval: "soon"}, time.Minute)
		assert.Error(t, err)
	})
}

func TestResolveToken(t *testing.T) {
	t.Run("flag wins", func(t *testing.T) {
		assert.Equal(t, "from-flag", resolveToken("from-flag", &ProjectConfig{}))
	})

	t.Run("default env var", func(t *testing.T) {
		t.Setenv("FIGMA_TOKEN", "from-env")
		assert.Equal(t, "from-env", resolveToken("", &ProjectConfig{}))
	})

	t.Run("custom env var from config", func(t *testing.T) {
		t.Setenv("MY_TOKEN", "custom")
		assert.Equal(t, "custom", resolveToken("", &ProjectConfig{AccessTokenEnv: "MY_TOKEN"}))
	})
}
