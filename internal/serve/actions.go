package serve

import (
	"fmt"
	"net/http"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/pulsescore/seogen/internal/common"
	"github.com/pulsescore/seogen/pkg/assets"
	"github.com/pulsescore/seogen/pkg/prerender"
	"github.com/pulsescore/seogen/pkg/renderer"
)

// ServeAction runs the runtime renderer: the same catalog-driven routes
// the prerenderer writes to disk, rendered on demand over HTTP. Unknown
// catalog routes get the noindex not-found page, never an exception.
func ServeAction(c *cli.Context) error {
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

	assetManifest, err := assets.Resolve(pipeline.Cfg.AssetManifest, pipeline.Cfg.SPAIndex)
	if err != nil {
		logger.Error("failed to resolve asset manifest", "error", err)
		return cli.Exit(err.Error(), 2)
	}

	pageRenderer := &prerender.Renderer{
		Deriver: pipeline.Deriver,
		Cfg:     pipeline.Cfg,
		Assets:  assetManifest,
	}

	ttl, err := time.ParseDuration(c.String("cache-ttl"))
	if err != nil {
		logger.Error("invalid cache-ttl duration", "error", err)
		return cli.Exit(err.Error(), 2)
	}

	handler := renderer.NewHandler(pageRenderer, ttl, logger)
	addr := c.String("addr")

	fmt.Printf("Serving %d routes on %s\n", len(pageRenderer.Routes()), addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Error("server stopped", "error", err)
		return cli.Exit(err.Error(), 1)
	}
	return nil
}
