package generate

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/pulsescore/seogen/internal/common"
	"github.com/pulsescore/seogen/pkg/assets"
	"github.com/pulsescore/seogen/pkg/db"
	"github.com/pulsescore/seogen/pkg/manifest"
	"github.com/pulsescore/seogen/pkg/prerender"
	"github.com/pulsescore/seogen/pkg/sitemap"
	"github.com/pulsescore/seogen/pkg/storage"
)

// SitemapAction emits the per-family sitemap files and the sitemap index.
func SitemapAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	pipeline, err := common.LoadPipeline(c)
	if err != nil {
		logger.Error("failed to load catalog", "error", err)
		return cli.Exit(err.Error(), 2)
	}
	if err := pipeline.Catalog.Validate(); err != nil {
		logger.Error("catalog validation failed", "error", err)
		return cli.Exit(fmt.Sprintf("catalog validation failed: %s", err), 1)
	}

	emitter := &sitemap.Emitter{
		Deriver: pipeline.Deriver,
		Store:   &storage.Storage{},
		BaseURL: pipeline.Cfg.BaseURL,
		OutDir:  pipeline.Cfg.OutputDir,
		LastMod: time.Now().UTC().Format("2006-01-02"),
	}

	count, err := emitter.Emit()
	if err != nil {
		logger.Error("sitemap generation failed", "error", err)
		return cli.Exit(err.Error(), 1)
	}

	fmt.Printf("Wrote %d sitemap entries under %s\n", count, pipeline.Cfg.OutputDir)
	return nil
}

// PrerenderAction emits one static HTML document per route plus the
// render manifest.
func PrerenderAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	pipeline, err := common.LoadPipeline(c)
	if err != nil {
		logger.Error("failed to load catalog", "error", err)
		return cli.Exit(err.Error(), 2)
	}
	if err := pipeline.Catalog.Validate(); err != nil {
		logger.Error("catalog validation failed", "error", err)
		return cli.Exit(fmt.Sprintf("catalog validation failed: %s", err), 1)
	}

	result, err := runPrerender(c, pipeline, logger)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	fmt.Printf("Prerendered %d routes, manifest at %s\n", result.Manifest.RouteCount, result.Path)
	return nil
}

// BuildAction runs the full pipeline: validate, sitemaps, prerender, then
// record the build in the history database. Strictly sequential; the
// first failure aborts the run.
func BuildAction(c *cli.Context) error {
	logger := common.NewLogger(c)
	started := time.Now()

	pipeline, err := common.LoadPipeline(c)
	if err != nil {
		logger.Error("failed to load catalog", "error", err)
		return cli.Exit(err.Error(), 2)
	}

	if err := pipeline.Catalog.Validate(); err != nil {
		logger.Error("catalog validation failed", "error", err)
		return cli.Exit(fmt.Sprintf("catalog validation failed: %s", err), 1)
	}
	fmt.Println("Catalog OK")
	for _, line := range pipeline.Catalog.Summary() {
		fmt.Println("  " + line)
	}

	store := &storage.Storage{}
	smEmitter := &sitemap.Emitter{
		Deriver: pipeline.Deriver,
		Store:   store,
		BaseURL: pipeline.Cfg.BaseURL,
		OutDir:  pipeline.Cfg.OutputDir,
		LastMod: time.Now().UTC().Format("2006-01-02"),
	}
	sitemapCount, err := smEmitter.Emit()
	if err != nil {
		logger.Error("sitemap generation failed", "error", err)
		return cli.Exit(err.Error(), 1)
	}
	fmt.Printf("Wrote %d sitemap entries\n", sitemapCount)

	result, err := runPrerender(c, pipeline, logger)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	fmt.Printf("Prerendered %d routes, manifest at %s\n", result.Manifest.RouteCount, result.Path)

	database, err := db.Open(c.String("db"))
	if err != nil {
		logger.Error("failed to open build history database", "error", err)
		return cli.Exit(err.Error(), 2)
	}
	defer database.Close()

	buildID, err := database.RecordBuild(db.BuildRecord{
		GeneratedAt:  started,
		RouteCount:   result.Manifest.RouteCount,
		SitemapCount: sitemapCount,
		CatalogSize:  len(pipeline.Catalog.Seeds),
		Duration:     time.Since(started),
		Families:     pipeline.Catalog.FamilyCounts(),
	})
	if err != nil {
		logger.Error("failed to record build", "error", err)
		return cli.Exit(err.Error(), 1)
	}

	fmt.Printf("Build %d recorded (%s)\n", buildID, time.Since(started).Round(time.Millisecond))
	return nil
}

func runPrerender(c *cli.Context, pipeline *common.Pipeline, logger *slog.Logger) (*manifest.RenderManifestResult, error) {
	assetManifest, err := resolveAssets(c, pipeline)
	if err != nil {
		logger.Error("failed to resolve asset manifest", "error", err)
		return nil, err
	}

	emitter := &prerender.Emitter{
		Renderer: &prerender.Renderer{
			Deriver: pipeline.Deriver,
			Cfg:     pipeline.Cfg,
			Assets:  assetManifest,
		},
		Store:  &storage.Storage{},
		OutDir: pipeline.Cfg.OutputDir,
	}

	result, err := emitter.Emit()
	if err != nil {
		logger.Error("prerender failed", "error", err)
		return nil, err
	}
	return result, nil
}

func resolveAssets(c *cli.Context, pipeline *common.Pipeline) (assets.Manifest, error) {
	manifestPath := pipeline.Cfg.AssetManifest
	if c.IsSet("assets") {
		manifestPath = c.String("assets")
	}
	spaIndex := pipeline.Cfg.SPAIndex
	if c.IsSet("spa-index") {
		spaIndex = c.String("spa-index")
	}
	return assets.Resolve(manifestPath, spaIndex)
}
