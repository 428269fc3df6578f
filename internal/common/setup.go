// Package common holds shared wiring for the CLI command handlers.
package common

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/pulsescore/seogen/models"
	"github.com/pulsescore/seogen/pkg/catalog"
	"github.com/pulsescore/seogen/pkg/derive"
)

// NewLogger builds the structured logger every command uses: JSON to
// stderr so stdout stays free for progress lines and YAML output.
func NewLogger(c *cli.Context) *slog.Logger {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

// Pipeline bundles the loaded config, catalog, and deriver that every
// command starts from.
type Pipeline struct {
	Cfg     models.SiteConfig
	Catalog *catalog.Catalog
	Deriver *derive.Deriver
}

// LoadPipeline reads the site config and catalog per the CLI flags. Flag
// values override config-file values.
func LoadPipeline(c *cli.Context) (*Pipeline, error) {
	cfg, err := models.LoadSiteConfig(c.String("config"))
	if err != nil {
		return nil, err
	}
	if c.IsSet("catalog") {
		cfg.CatalogPath = c.String("catalog")
	}
	if c.IsSet("families") {
		cfg.FamiliesPath = c.String("families")
	}
	if c.IsSet("out") {
		cfg.OutputDir = c.String("out")
	}
	if c.IsSet("base-url") {
		cfg.BaseURL = c.String("base-url")
	}

	cat, err := catalog.Load(cfg.CatalogPath, cfg.FamiliesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	return &Pipeline{
		Cfg:     cfg,
		Catalog: cat,
		Deriver: derive.New(cat, cfg.TitleSuffix),
	}, nil
}
