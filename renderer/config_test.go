package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	cfg := Config{}.applyDefaults()

	assert.Equal(t, []string{"https://", "http://"}, cfg.AllowedLinkPrefixes)
	assert.Equal(t, []string{"https://", "http://", "/"}, cfg.AllowedImagePrefixes)
	assert.False(t, cfg.DisableSanitize)
}

func TestConfigExplicitEmptyAllowListsDisableAll(t *testing.T) {
	// An explicitly empty (non-nil) allow-list is honored: nothing is
	// allowed, everything degrades.
	cfg := Config{
		AllowedLinkPrefixes:  []string{},
		AllowedImagePrefixes: []string{},
	}

	result := mustRender(t, cfg, "[a](https://example.com) ![b](https://example.com/p.png)")

	assert.Empty(t, findNodes(result.Root, NodeLink))
	assert.Empty(t, findNodes(result.Root, NodeImage))
	assert.Len(t, result.Warnings, 2)
}

func TestConfigValidateRejectsEmptyPrefixes(t *testing.T) {
	_, err := New(Config{AllowedLinkPrefixes: []string{"https://", ""}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "allowedLinkPrefixes")

	_, err = New(Config{AllowedImagePrefixes: []string{"  "}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "allowedImagePrefixes")
}

func TestConfigValidateRejectsEmptyLanguageMapEntries(t *testing.T) {
	_, err := New(Config{LanguageMap: map[string]string{"": "go"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "languageMap")

	_, err = New(Config{LanguageMap: map[string]string{"golang": " "}})
	require.Error(t, err)
}

func TestConfigValidateRejectsNilOverride(t *testing.T) {
	_, err := New(Config{Overrides: map[NodeType]Override{NodeLink: nil}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "override")
}

func TestConfigIsCopiedAtConstruction(t *testing.T) {
	prefixes := []string{"https://"}
	r, err := New(Config{AllowedLinkPrefixes: prefixes})
	require.NoError(t, err)

	// Mutating the caller's slice after construction must not affect the
	// renderer.
	prefixes[0] = "javascript:"

	result, err := r.Render("[x](javascript:alert(1))")
	require.NoError(t, err)
	assert.Empty(t, findNodes(result.Root, NodeLink))
}
