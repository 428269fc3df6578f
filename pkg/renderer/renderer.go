// Package renderer serves the catalog-driven routes over HTTP. It renders
// through the same prerender.Renderer the build uses, so a served page is
// byte-identical to its prerendered counterpart.
package renderer

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/pulsescore/seogen/pkg/prerender"
)

// pageRenderer is the slice of prerender.Renderer the handler needs.
type pageRenderer interface {
	RenderPath(path string) (prerender.RenderedRoute, error)
	RenderNotFound() (prerender.RenderedRoute, error)
}

// Handler serves SEO routes with a render cache in front.
type Handler struct {
	render pageRenderer
	cache  *Cache
	logger *slog.Logger
}

// NewHandler builds the HTTP handler. ttl bounds how long a rendered page
// is served without re-rendering; the catalog is immutable per process, so
// the TTL exists to bound memory, not staleness.
func NewHandler(render pageRenderer, ttl time.Duration, logger *slog.Logger) *Handler {
	return &Handler{
		render: render,
		cache:  NewCache(ttl),
		logger: logger,
	}
}

// ServeHTTP renders the requested route, or the noindex not-found page for
// paths outside the catalog. A miss is a first-class state, never a panic.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	path := cleanPath(r.URL.Path)
	data, status, err := h.cache.Render(path, func() ([]byte, int, error) {
		route, err := h.render.RenderPath(path)
		if err == nil {
			return route.HTML, http.StatusOK, nil
		}

		notFound, nfErr := h.render.RenderNotFound()
		if nfErr != nil {
			return nil, 0, fmt.Errorf("failed to render not-found page: %w", nfErr)
		}
		return notFound.HTML, http.StatusNotFound, nil
	})
	if err != nil {
		h.logger.Error("render failed", "path", path, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if r.Method == http.MethodGet {
		_, _ = w.Write(data)
	}
}

// cleanPath normalizes trailing slashes so /glossary/churn-rate/ and
// /glossary/churn-rate are the same route. The root path stays "/".
func cleanPath(p string) string {
	if p == "" || p == "/" {
		return "/"
	}
	return strings.TrimRight(p, "/")
}
