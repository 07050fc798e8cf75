package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "streamdown.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestResolveConfigWithoutFile(t *testing.T) {
	cfg, err := resolveConfig("", nil, nil, false, false)
	require.NoError(t, err)

	assert.Nil(t, cfg.AllowedLinkPrefixes, "nil lists take library defaults")
	assert.Nil(t, cfg.AllowedImagePrefixes)
	assert.False(t, cfg.Strict)
	assert.False(t, cfg.DisableSanitize)
}

func TestResolveConfigFromFile(t *testing.T) {
	path := writeConfigFile(t, `
allowedLinkPrefixes:
  - https://intranet.example/
allowedImagePrefixes:
  - /
languageMap:
  golang: go
strict: true
`)

	cfg, err := resolveConfig(path, nil, nil, false, false)
	require.NoError(t, err)

	assert.Equal(t, []string{"https://intranet.example/"}, cfg.AllowedLinkPrefixes)
	assert.Equal(t, []string{"/"}, cfg.AllowedImagePrefixes)
	assert.Equal(t, map[string]string{"golang": "go"}, cfg.LanguageMap)
	assert.True(t, cfg.Strict)
}

func TestResolveConfigFlagsOverrideFile(t *testing.T) {
	path := writeConfigFile(t, `
allowedLinkPrefixes:
  - https://intranet.example/
`)

	cfg, err := resolveConfig(path, []string{"https://other.example/"}, nil, true, true)
	require.NoError(t, err)

	assert.Equal(t, []string{"https://other.example/"}, cfg.AllowedLinkPrefixes)
	assert.True(t, cfg.Strict)
	assert.True(t, cfg.DisableSanitize)
}

func TestResolveConfigMissingFile(t *testing.T) {
	_, err := resolveConfig(filepath.Join(t.TempDir(), "missing.yaml"), nil, nil, false, false)
	require.Error(t, err)
}

func TestResolveConfigInvalidYAML(t *testing.T) {
	path := writeConfigFile(t, "allowedLinkPrefixes: [unclosed")

	_, err := resolveConfig(path, nil, nil, false, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}
