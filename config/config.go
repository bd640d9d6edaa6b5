// Package config provides configuration loading and management for graphsite.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the complete graphsite configuration.
type Config struct {
	Site      SiteConfig        `yaml:"site"`
	Data      DataConfig        `yaml:"data"`
	Templates TemplatesConfig   `yaml:"templates"`
	Output    OutputConfig      `yaml:"output"`
	Themes    ThemesConfig      `yaml:"themes"`
	Prefixes  map[string]string `yaml:"prefixes"`
}

// SiteConfig identifies the site being generated.
type SiteConfig struct {
	// BaseURL is the base hostname and protocol of the site,
	// e.g. "https://berlin.github.io". Required.
	BaseURL string `yaml:"base_url"`
	// BasePath is the subpath of the site, e.g. "/lod-budget".
	BasePath string `yaml:"base_path"`
	// SiteURL overrides BaseURL for link generation, e.g. when serving
	// locally. Empty means BaseURL.
	SiteURL string `yaml:"site_url"`
}

// DataConfig configures the fact snapshot and resource selection.
type DataConfig struct {
	// DatasetPath is the path to the dataset document containing the
	// fact snapshot.
	DatasetPath string `yaml:"dataset_path"`
	// Selection is a CEL expression over the string variable `resource`.
	// Empty means all subjects under the site's resource prefix.
	Selection string `yaml:"selection"`
}

// TemplatesConfig configures template lookup.
type TemplatesConfig struct {
	// Path is the folder containing the templates.
	Path string `yaml:"path"`
	// Default is the template applied when no class mapping matches.
	Default string `yaml:"default"`
	// ClassMappings maps class CURIEs to template names.
	ClassMappings map[string]string `yaml:"class_mappings"`
}

// OutputConfig configures where generated files go.
type OutputConfig struct {
	// Path is the folder all generated files are written to.
	Path string `yaml:"path"`
	// Include lists files and glob patterns copied verbatim into the
	// output folder.
	Include []string `yaml:"include"`
}

// ThemesConfig configures theme installation.
type ThemesConfig struct {
	// Path is the folder themes are located in.
	Path string `yaml:"path"`
	// Names lists the themes to install, in precedence order.
	Names []string `yaml:"names"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Site: SiteConfig{
			BasePath: "/",
		},
		Data: DataConfig{
			DatasetPath: "data/dataset.yaml",
		},
		Templates: TemplatesConfig{
			Path:    "templates",
			Default: "default.html.tmpl",
		},
		Output: OutputConfig{
			Path: "output",
		},
		Themes: ThemesConfig{
			Path: "themes",
		},
	}
}

// ResourcePrefix returns BaseURL joined with BasePath, with a trailing
// slash. All resources included in the site live under this namespace.
func (c *Config) ResourcePrefix() string {
	base := c.Site.BaseURL
	path := c.Site.BasePath
	if path == "" {
		path = "/"
	}
	if base != "" && base[len(base)-1] == '/' {
		base = base[:len(base)-1]
	}
	if path[0] != '/' {
		path = "/" + path
	}
	if path[len(path)-1] != '/' {
		path += "/"
	}
	return base + path
}

// SiteURL returns the URL links should be generated against: the configured
// override if set, the base URL otherwise.
func (c *Config) SiteURL() string {
	if c.Site.SiteURL != "" {
		return c.Site.SiteURL
	}
	return c.Site.BaseURL
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Site.BaseURL == "" {
		return fmt.Errorf("site.base_url is required")
	}
	if c.Templates.Default == "" {
		return fmt.Errorf("templates.default is required")
	}
	if c.Output.Path == "" {
		return fmt.Errorf("output.path is required")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file.
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for
// non-zero values).
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Site
	if other.Site.BaseURL != "" {
		c.Site.BaseURL = other.Site.BaseURL
	}
	if other.Site.BasePath != "" {
		c.Site.BasePath = other.Site.BasePath
	}
	if other.Site.SiteURL != "" {
		c.Site.SiteURL = other.Site.SiteURL
	}

	// Data
	if other.Data.DatasetPath != "" {
		c.Data.DatasetPath = other.Data.DatasetPath
	}
	if other.Data.Selection != "" {
		c.Data.Selection = other.Data.Selection
	}

	// Templates
	if other.Templates.Path != "" {
		c.Templates.Path = other.Templates.Path
	}
	if other.Templates.Default != "" {
		c.Templates.Default = other.Templates.Default
	}
	if len(other.Templates.ClassMappings) > 0 {
		c.Templates.ClassMappings = other.Templates.ClassMappings
	}

	// Output
	if other.Output.Path != "" {
		c.Output.Path = other.Output.Path
	}
	if len(other.Output.Include) > 0 {
		c.Output.Include = other.Output.Include
	}

	// Themes
	if other.Themes.Path != "" {
		c.Themes.Path = other.Themes.Path
	}
	if len(other.Themes.Names) > 0 {
		c.Themes.Names = other.Themes.Names
	}

	// Prefixes
	if len(other.Prefixes) > 0 {
		c.Prefixes = other.Prefixes
	}
}
