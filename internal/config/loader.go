package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name looked up in each search directory.
const FileName = "pyramid.yaml"

// localConfigPath is the project-relative config location.
var localConfigPath = filepath.Join("configs", FileName)

// LoadPyramid loads the game configuration.
// Search order: customPath -> ~/.pyramid/configs/pyramid.yaml -> ./configs/pyramid.yaml -> embedded default
func LoadPyramid(customPath string) (PyramidConfig, error) {
	// A custom path must load or the caller hears about it
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return PyramidConfig{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := ParsePyramid(data)
		if err != nil {
			return PyramidConfig{}, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := ParsePyramid(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParsePyramid(defaultPyramidYAML)
	if err != nil {
		return DefaultPyramidConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParsePyramid decodes YAML, fills omitted fields from the defaults and
// validates the result.
func ParsePyramid(data []byte) (PyramidConfig, error) {
	var cfg PyramidConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PyramidConfig{}, err
	}
	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return PyramidConfig{}, err
	}
	return cfg, nil
}

// ResolvePath returns the file LoadPyramid would read, or "" when the
// embedded default would be used.
func ResolvePath(customPath string) string {
	if customPath != "" {
		return customPath
	}
	for _, path := range searchPaths() {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// searchPaths lists the on-disk locations in lookup order.
func searchPaths() []string {
	var paths []string
	if p := userConfigPath(FileName); p != "" {
		paths = append(paths, p)
	}
	return append(paths, localConfigPath)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pyramid", "configs", filename)
}
