// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/user/quotegen/pkg/orchestrator"
	"github.com/user/quotegen/pkg/pipeline"
	"github.com/user/quotegen/pkg/presets"
	"github.com/user/quotegen/pkg/stages/composite"
)

// Config represents the full configuration for quotegen.
type Config struct {
	// Style
	DefaultTemplate string              `yaml:"default_template"`
	DefaultBrandKit string              `yaml:"default_brand_kit"`
	FontFamily      string              `yaml:"font_family"`
	FontSize        float64             `yaml:"font_size"`
	Templates       []pipeline.Template `yaml:"templates"`
	BrandKits       []pipeline.BrandKit `yaml:"brand_kits"`

	// Sizes
	Presets []pipeline.SizePreset `yaml:"presets"`

	// Composition
	MarginPx       float64 `yaml:"margin_px"`
	ReferenceWidth float64 `yaml:"reference_width"`
	Placeholder    string  `yaml:"placeholder"`

	// Export
	Format       string `yaml:"format"`
	JPEGQuality  int    `yaml:"jpeg_quality"`
	Workers      int    `yaml:"workers"`
	PreviewRunes int    `yaml:"preview_runes"`
	OutputDir    string `yaml:"output_dir"`

	// Fonts
	Fonts   []FontConfig `yaml:"fonts"`
	FontDir string       `yaml:"font_dir"`

	// Asset library
	AssetStore AssetStoreConfig `yaml:"asset_store"`

	// Logging
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	// Debug
	Debug    bool   `yaml:"debug"`
	DebugDir string `yaml:"debug_dir"`
}

// FontConfig registers a TrueType file under a family name.
type FontConfig struct {
	Family string `yaml:"family"`
	Path   string `yaml:"path"`
}

// AssetStoreConfig selects the asset library backend.
type AssetStoreConfig struct {
	Driver string `yaml:"driver"` // "memory" or "sqlite"
	DSN    string `yaml:"dsn"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		// Style
		DefaultTemplate: "modern",
		FontFamily:      "Inter",
		FontSize:        48,

		// Sizes
		Presets: presets.Defaults(),

		// Composition
		MarginPx:       composite.DefaultOptions().MarginPx,
		ReferenceWidth: composite.DefaultOptions().ReferenceWidth,
		Placeholder:    orchestrator.DefaultPlaceholder,

		// Export
		Format:       string(pipeline.FormatPNG),
		JPEGQuality:  orchestrator.DefaultConfig().JPEGQuality,
		Workers:      orchestrator.DefaultConfig().Workers,
		PreviewRunes: orchestrator.DefaultConfig().PreviewRunes,
		OutputDir:    ".",

		// Asset library
		AssetStore: AssetStoreConfig{Driver: "memory"},

		// Logging
		LogLevel:  "info",
		LogFormat: "text",

		// Debug
		DebugDir: "./debug",
	}
}

// LoadFromFile loads configuration from a YAML file on top of Defaults.
// A presets list in the file replaces the default presets.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the configuration and returns a *pipeline.ConfigError
// for the first problem found.
func (c Config) Validate() error {
	if strings.TrimSpace(c.DefaultTemplate) == "" {
		return &pipeline.ConfigError{Field: "default_template", Reason: "missing"}
	}
	if strings.TrimSpace(c.FontFamily) == "" {
		return &pipeline.ConfigError{Field: "font_family", Reason: "missing"}
	}
	if c.FontSize <= 0 {
		return &pipeline.ConfigError{Field: "font_size", Reason: "must be positive"}
	}
	if len(c.Presets) == 0 {
		return &pipeline.ConfigError{Field: "presets", Reason: "at least one preset is required"}
	}
	if _, err := presets.New(c.Presets); err != nil {
		return err
	}
	if c.MarginPx < 0 {
		return &pipeline.ConfigError{Field: "margin_px", Reason: "must not be negative"}
	}
	if c.ReferenceWidth <= 0 {
		return &pipeline.ConfigError{Field: "reference_width", Reason: "must be positive"}
	}
	if _, err := pipeline.ParseFormat(c.Format); err != nil {
		return &pipeline.ConfigError{Field: "format", Reason: err.Error()}
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		return &pipeline.ConfigError{Field: "jpeg_quality", Reason: "must be between 1 and 100"}
	}
	if c.Workers < 0 {
		return &pipeline.ConfigError{Field: "workers", Reason: "must not be negative"}
	}
	for i, f := range c.Fonts {
		if f.Family == "" || f.Path == "" {
			return &pipeline.ConfigError{Field: fmt.Sprintf("fonts[%d]", i), Reason: "family and path are required"}
		}
	}

	switch c.AssetStore.Driver {
	case "memory":
	case "sqlite":
		if c.AssetStore.DSN == "" {
			return &pipeline.ConfigError{Field: "asset_store.dsn", Reason: "required for sqlite"}
		}
	default:
		return &pipeline.ConfigError{Field: "asset_store.driver", Reason: fmt.Sprintf("unknown driver %q", c.AssetStore.Driver)}
	}

	switch c.LogFormat {
	case "text", "json":
	default:
		return &pipeline.ConfigError{Field: "log_format", Reason: "must be text or json"}
	}

	return nil
}

// BasePatch returns the style values that apply beneath every template.
func (c Config) BasePatch() pipeline.StylePatch {
	family := c.FontFamily
	size := c.FontSize
	return pipeline.StylePatch{
		FontFamily: &family,
		FontSizePx: &size,
	}
}

// ToComposerOptions converts Config to composite.Options.
func (c Config) ToComposerOptions() composite.Options {
	return composite.Options{
		MarginPx:       c.MarginPx,
		ReferenceWidth: c.ReferenceWidth,
	}
}

// ToOrchestratorConfig converts Config to orchestrator.Config.
func (c Config) ToOrchestratorConfig() orchestrator.Config {
	return orchestrator.Config{
		Workers:      c.Workers,
		Placeholder:  c.Placeholder,
		JPEGQuality:  c.JPEGQuality,
		PreviewRunes: c.PreviewRunes,
	}
}
