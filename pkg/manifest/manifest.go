// Package manifest writes the build-verification record of what the
// prerender step emitted.
package manifest

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/pulsescore/seogen/models"
	"github.com/pulsescore/seogen/pkg/storage"
)

// FileName is the manifest's location under the output directory.
const FileName = "seo-prerender-manifest.json"

// RenderManifestResult pairs the written manifest with its path so callers
// can log where it landed.
type RenderManifestResult struct {
	Manifest models.RenderManifest
	Path     string
}

// WriteRenderManifest records every emitted route. Called only after all
// routes have been written; downstream verification treats the manifest's
// existence as proof of a complete build. The timestamp is the one place
// wall-clock time enters the pipeline, and it is outside the determinism
// contract.
func WriteRenderManifest(routes []string, outDir string, s *storage.Storage) (*RenderManifestResult, error) {
	m := models.RenderManifest{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		RouteCount:  len(routes),
		Routes:      routes,
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error marshalling render manifest: %w", err)
	}

	path := filepath.Join(outDir, FileName)
	if err := s.SaveFile(path, data); err != nil {
		return nil, fmt.Errorf("error saving render manifest: %w", err)
	}

	return &RenderManifestResult{Manifest: m, Path: path}, nil
}

// ReadRenderManifest loads a previously written manifest for verification.
func ReadRenderManifest(outDir string, s *storage.Storage) (models.RenderManifest, error) {
	data, err := s.ReadFile(filepath.Join(outDir, FileName))
	if err != nil {
		return models.RenderManifest{}, fmt.Errorf("error reading render manifest: %w", err)
	}
	var m models.RenderManifest
	if err := json.Unmarshal(data, &m); err != nil {
		return models.RenderManifest{}, fmt.Errorf("error parsing render manifest: %w", err)
	}
	return m, nil
}
