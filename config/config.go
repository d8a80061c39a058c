// config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds settings for the preview tool.
// Zero values mean "unspecified" and are replaced by flags or defaults.
type Config struct {
	Resources []string `json:"resources" yaml:"resources" toml:"resources"`
	Entry     string   `json:"entry" yaml:"entry" toml:"entry"`
	Theme     string   `json:"theme" yaml:"theme" toml:"theme"`
	LogLevel  string   `json:"log_level" yaml:"log_level" toml:"log_level"`
	Prefix    string   `json:"prefix" yaml:"prefix" toml:"prefix"`
	Width     int      `json:"width" yaml:"width" toml:"width"`
	Height    int      `json:"height" yaml:"height" toml:"height"`
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &cfg)
	case ".json":
		err = json.Unmarshal(b, &cfg)
	case ".toml":
		err = toml.Unmarshal(b, &cfg)
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	cfg.resolve(filepath.Dir(path))
	return cfg, nil
}

// resolve makes relative resource paths relative to the config file.
func (c *Config) resolve(dir string) {
	for i, r := range c.Resources {
		if r == "" || filepath.IsAbs(r) || strings.HasPrefix(r, "~") {
			continue
		}
		c.Resources[i] = filepath.Join(dir, r)
	}
}

// Size returns the preview window size, defaulting to 1000x700.
func (c Config) Size() (w, h float32) {
	w, h = 1000, 700
	if c.Width > 0 {
		w = float32(c.Width)
	}
	if c.Height > 0 {
		h = float32(c.Height)
	}
	return w, h
}
