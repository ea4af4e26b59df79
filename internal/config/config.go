// Package config reads the optional recap.hcl preset file: a default
// format plus named render presets the CLI can apply by name.
package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/hclsimple"
)

// Preset is one named render configuration.
type Preset struct {
	Name        string `hcl:"name,label"`
	Chain       string `hcl:"chain,optional"`
	Format      string `hcl:"format,optional"`
	Description bool   `hcl:"description,optional"`
}

// Config is the decoded preset file.
type Config struct {
	DefaultFormat string   `hcl:"default_format,optional"`
	Presets       []Preset `hcl:"preset,block"`
}

// Load decodes an HCL preset file.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := hclsimple.DecodeFile(path, nil, &cfg); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return &cfg, nil
}

// Preset returns the named preset.
func (c *Config) Preset(name string) (Preset, error) {
	for _, p := range c.Presets {
		if p.Name == name {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("no preset %q in config", name)
}
