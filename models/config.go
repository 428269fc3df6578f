package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SiteConfig holds site-wide build settings loaded from seogen.yaml.
// CLI flags override individual fields at the command layer.
type SiteConfig struct {
	BaseURL       string `yaml:"base_url"`
	Brand         string `yaml:"brand"`
	TitleSuffix   string `yaml:"title_suffix"`
	OutputDir     string `yaml:"output_dir"`
	CatalogPath   string `yaml:"catalog_path"`
	FamiliesPath  string `yaml:"families_path"`
	AssetManifest string `yaml:"asset_manifest,omitempty"`
	SPAIndex      string `yaml:"spa_index,omitempty"`
}

// DefaultSiteConfig returns the settings used when no config file exists.
func DefaultSiteConfig() SiteConfig {
	return SiteConfig{
		BaseURL:      "https://pulsescore.io",
		Brand:        "PulseScore",
		TitleSuffix:  " | PulseScore",
		OutputDir:    "dist",
		CatalogPath:  "data/catalog.json",
		FamiliesPath: "data/families.json",
	}
}

// LoadSiteConfig reads a YAML config file, filling unset fields from the
// defaults. A missing file is not an error; the defaults apply.
func LoadSiteConfig(path string) (SiteConfig, error) {
	cfg := DefaultSiteConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultSiteConfig().BaseURL
	}
	if cfg.TitleSuffix == "" {
		cfg.TitleSuffix = " | " + cfg.Brand
	}
	return cfg, nil
}
