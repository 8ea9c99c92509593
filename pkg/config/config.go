package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

func LoadFromDir(dir string) (*Config, error) {
	configPath := filepath.Join(dir, "stencil.config.toml")
	return Load(configPath)
}

func (c *Config) Validate() error {
	if c.TemplatesDir == "" {
		c.TemplatesDir = "./stencil/templates"
	}

	if c.ComponentsDir == "" {
		c.ComponentsDir = "./src/components"
	}

	if c.ActionsDir == "" {
		c.ActionsDir = "./src/actions"
	}

	if c.PagesDir == "" {
		c.PagesDir = "./src/pages"
	}

	if c.Manifest == "" {
		c.Manifest = "./stencil.manifest.yaml"
	}

	if len(c.Extensions) == 0 {
		c.Extensions = []string{"html", "js", "css", "js-meta.xml"}
	}

	for _, ext := range c.Extensions {
		if ext == "" {
			return fmt.Errorf("extensions must not contain empty entries")
		}
	}

	return nil
}

// Resolve anchors every relative path in the config against root.
func (c *Config) Resolve(root string) {
	abs := func(path string) string {
		if filepath.IsAbs(path) {
			return path
		}
		return filepath.Join(root, path)
	}

	c.TemplatesDir = abs(c.TemplatesDir)
	c.ComponentsDir = abs(c.ComponentsDir)
	c.ActionsDir = abs(c.ActionsDir)
	c.PagesDir = abs(c.PagesDir)
	c.Manifest = abs(c.Manifest)
}
