package prerender

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pulsescore/seogen/pkg/manifest"
	"github.com/pulsescore/seogen/pkg/storage"
)

// Emitter writes one index.html per route and records what it wrote.
type Emitter struct {
	Renderer *Renderer
	Store    *storage.Storage
	OutDir   string
}

// OutputPath maps a route path to its file on disk: dist/<path>/index.html,
// with the home page at dist/index.html.
func (e *Emitter) OutputPath(routePath string) string {
	trimmed := strings.Trim(routePath, "/")
	if trimmed == "" {
		return filepath.Join(e.OutDir, "index.html")
	}
	return filepath.Join(e.OutDir, filepath.FromSlash(trimmed), "index.html")
}

// Emit renders and writes every route sequentially, one page at a time,
// then writes the render manifest. Sequential ordering keeps manifests
// deterministic and failures attributable to a specific route. The
// manifest is written last so its presence implies every route succeeded.
func (e *Emitter) Emit() (*manifest.RenderManifestResult, error) {
	routes := e.Renderer.Routes()
	for _, routePath := range routes {
		rendered, err := e.Renderer.RenderPath(routePath)
		if err != nil {
			return nil, fmt.Errorf("failed to render %s: %w", routePath, err)
		}
		if err := e.Store.SaveFile(e.OutputPath(routePath), rendered.HTML); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", routePath, err)
		}
	}

	result, err := manifest.WriteRenderManifest(routes, e.OutDir, e.Store)
	if err != nil {
		return nil, err
	}
	return result, nil
}
