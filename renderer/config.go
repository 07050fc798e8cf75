package renderer

import (
	"fmt"
	"strings"
)

// Config configures markdown to render-tree mapping behavior.
type Config struct {
	// AllowedLinkPrefixes lists literal prefixes a link destination must
	// start with to render as a real link. Disallowed links degrade to
	// the label text. Default: https://, http://.
	AllowedLinkPrefixes []string `json:"allowedLinkPrefixes,omitempty"`

	// AllowedImagePrefixes lists literal prefixes an image source must
	// start with to render as a real image. Disallowed images degrade to
	// an alt-text placeholder. Default: https://, http://, / (relative
	// same-origin paths are image-allowed but not link-allowed).
	AllowedImagePrefixes []string `json:"allowedImagePrefixes,omitempty"`

	// LanguageMap remaps code fence language tags after detection,
	// e.g. {"golang": "go"}.
	LanguageMap map[string]string `json:"languageMap,omitempty"`

	// Overrides replaces the default mapping for individual node kinds.
	// An override fully replaces the default policy for its kind,
	// including the link/image allow-list checks: last writer wins, no
	// merging of partial overrides.
	Overrides map[NodeType]Override `json:"-"`

	// DisableSanitize skips the repair of unterminated delimiters
	// before parsing. Sanitizing is enabled by default.
	DisableSanitize bool `json:"disableSanitize,omitempty"`

	// Strict makes Render return an error on markdown constructs the
	// mapper does not know instead of degrading them to text.
	Strict bool `json:"strict,omitempty"`
}

// DefaultLinkPrefixes are the link destinations allowed when
// AllowedLinkPrefixes is unset.
func DefaultLinkPrefixes() []string {
	return []string{"https://", "http://"}
}

// DefaultImagePrefixes are the image sources allowed when
// AllowedImagePrefixes is unset.
func DefaultImagePrefixes() []string {
	return []string{"https://", "http://", "/"}
}

func (c Config) applyDefaults() Config {
	if c.AllowedLinkPrefixes == nil {
		c.AllowedLinkPrefixes = DefaultLinkPrefixes()
	}
	if c.AllowedImagePrefixes == nil {
		c.AllowedImagePrefixes = DefaultImagePrefixes()
	}
	return c
}

func (c Config) clone() Config {
	cloned := c
	cloned.AllowedLinkPrefixes = cloneStringSlice(c.AllowedLinkPrefixes)
	cloned.AllowedImagePrefixes = cloneStringSlice(c.AllowedImagePrefixes)
	cloned.LanguageMap = cloneStringMap(c.LanguageMap)
	cloned.Overrides = cloneOverrides(c.Overrides)
	return cloned
}

// Validate checks that config values are valid. Allow-list entries are
// rejected eagerly at construction: an empty prefix would match every
// destination and silently void the allow-list.
func (c Config) Validate() error {
	for _, prefix := range c.AllowedLinkPrefixes {
		if strings.TrimSpace(prefix) == "" {
			return fmt.Errorf("allowedLinkPrefixes entries must be non-empty")
		}
	}

	for _, prefix := range c.AllowedImagePrefixes {
		if strings.TrimSpace(prefix) == "" {
			return fmt.Errorf("allowedImagePrefixes entries must be non-empty")
		}
	}

	for from, to := range c.LanguageMap {
		if strings.TrimSpace(from) == "" || strings.TrimSpace(to) == "" {
			return fmt.Errorf("languageMap keys and values must be non-empty")
		}
	}

	for kind, override := range c.Overrides {
		if override == nil {
			return fmt.Errorf("override for %q must be non-nil", kind)
		}
	}

	return nil
}

func (c Config) linkAllowed(destination string) bool {
	return hasAllowedPrefix(destination, c.AllowedLinkPrefixes)
}

func (c Config) imageAllowed(source string) bool {
	return hasAllowedPrefix(source, c.AllowedImagePrefixes)
}

func hasAllowedPrefix(destination string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(destination, prefix) {
			return true
		}
	}
	return false
}

func cloneStringSlice(src []string) []string {
	if src == nil {
		return nil
	}

	dst := make([]string, len(src))
	copy(dst, src)
	return dst
}

func cloneStringMap(src map[string]string) map[string]string {
	if src == nil {
		return nil
	}

	dst := make(map[string]string, len(src))
	for key, value := range src {
		dst[key] = value
	}

	return dst
}

func cloneOverrides(src map[NodeType]Override) map[NodeType]Override {
	if src == nil {
		return nil
	}

	dst := make(map[NodeType]Override, len(src))
	for kind, override := range src {
		dst[kind] = override
	}

	return dst
}
