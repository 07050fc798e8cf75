package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rgonek/streamdown/renderer"
)

// fileConfig is the YAML shape of --config files. Flags override the
// file: a repeated --allow-link/--allow-image replaces the file's list.
type fileConfig struct {
	AllowedLinkPrefixes  []string          `yaml:"allowedLinkPrefixes"`
	AllowedImagePrefixes []string          `yaml:"allowedImagePrefixes"`
	LanguageMap          map[string]string `yaml:"languageMap"`
	Strict               bool              `yaml:"strict"`
	DisableSanitize      bool              `yaml:"disableSanitize"`
}

func loadFileConfig(path string) (fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fileConfig{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

func resolveConfig(path string, allowLink, allowImage []string, strict, noSanitize bool) (renderer.Config, error) {
	var file fileConfig
	if path != "" {
		loaded, err := loadFileConfig(path)
		if err != nil {
			return renderer.Config{}, err
		}
		file = loaded
	}

	cfg := renderer.Config{
		AllowedLinkPrefixes:  file.AllowedLinkPrefixes,
		AllowedImagePrefixes: file.AllowedImagePrefixes,
		LanguageMap:          file.LanguageMap,
		Strict:               file.Strict,
		DisableSanitize:      file.DisableSanitize,
	}

	if len(allowLink) > 0 {
		cfg.AllowedLinkPrefixes = allowLink
	}
	if len(allowImage) > 0 {
		cfg.AllowedImagePrefixes = allowImage
	}
	if strict {
		cfg.Strict = true
	}
	if noSanitize {
		cfg.DisableSanitize = true
	}

	return cfg, nil
}
