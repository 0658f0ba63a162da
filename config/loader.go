package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile reads path and turns it into validated Settings.
func LoadFile(path string) (Settings, error) {
	cfg, err := FromFile(path)
	if err != nil {
		return Settings{}, err
	}
	s, err := Load(cfg)
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// FromFile decodes a settings file, choosing YAML or JSON by its extension
// (.yaml, .yml, .json). Errors wrap ErrSettingsFile and name the path.
func FromFile(path string) (Config, error) {
	ext := strings.ToLower(filepath.Ext(path))
	var decode func([]byte) (Config, error)
	switch ext {
	case ".yaml", ".yml":
		decode = FromYAML
	case ".json":
		decode = FromJSON
	default:
		return Config{}, fmt.Errorf("%w: %s: extension %q is not .yaml, .yml or .json", ErrSettingsFile, path, ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrSettingsFile, err)
	}
	cfg, err := decode(data)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s: %w", ErrSettingsFile, path, err)
	}
	return cfg, nil
}

// FromYAML decodes a YAML document whose top level is a mapping.
// An empty document yields an empty Config.
func FromYAML(data []byte) (Config, error) {
	return decodeMapping("yaml", data, yaml.Unmarshal)
}

// FromJSON decodes a JSON object.
func FromJSON(data []byte) (Config, error) {
	return decodeMapping("json", data, json.Unmarshal)
}

func decodeMapping(format string, data []byte, unmarshal func([]byte, any) error) (Config, error) {
	var m map[string]any
	if err := unmarshal(data, &m); err != nil {
		return Config{}, fmt.Errorf("decode %s: %w", format, err)
	}
	return New(m), nil
}
