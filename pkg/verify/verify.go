// Package verify re-opens emitted artifacts and cross-checks them against
// a fresh derivation: the sitemap, the prerendered HTML, and the render
// manifest must all agree with the catalog. Divergence between emitters is
// a correctness bug, and this is where it surfaces.
package verify

import (
	"encoding/xml"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pulsescore/seogen/models"
	"github.com/pulsescore/seogen/pkg/derive"
	"github.com/pulsescore/seogen/pkg/manifest"
	"github.com/pulsescore/seogen/pkg/prerender"
	"github.com/pulsescore/seogen/pkg/storage"
)

// Verifier checks a finished build directory.
type Verifier struct {
	Deriver *derive.Deriver
	Store   *storage.Storage
	BaseURL string
	OutDir  string
}

// Report accumulates verification results. Problems are collected rather
// than failing fast so one run reports everything wrong with a build.
type Report struct {
	RoutesChecked   int
	SitemapsChecked int
	Problems        []string
}

// OK reports whether the build passed every check.
func (r *Report) OK() bool {
	return len(r.Problems) == 0
}

func (r *Report) addf(format string, args ...any) {
	r.Problems = append(r.Problems, fmt.Sprintf(format, args...))
}

// Run performs all checks and returns the combined report.
func (v *Verifier) Run() (*Report, error) {
	report := &Report{}
	if err := v.checkSitemaps(report); err != nil {
		return nil, err
	}
	if err := v.checkManifest(report); err != nil {
		return nil, err
	}
	if err := v.checkHTML(report); err != nil {
		return nil, err
	}
	return report, nil
}

// checkSitemaps verifies that every catalog path appears exactly once in
// its family sitemap and that per-family entry counts match the catalog.
func (v *Verifier) checkSitemaps(report *Report) error {
	for _, family := range models.AllFamilies {
		path := filepath.Join(v.OutDir, "sitemaps", string(family)+".xml")
		data, err := v.Store.ReadFile(path)
		if err != nil {
			return fmt.Errorf("missing sitemap for %s: %w", family, err)
		}

		var set models.URLSet
		if err := xml.Unmarshal(data, &set); err != nil {
			return fmt.Errorf("failed to parse sitemap %s: %w", path, err)
		}
		report.SitemapsChecked++

		seeds := v.Deriver.Catalog.FamilySeeds(family)
		if len(set.URLs) != len(seeds) {
			report.addf("sitemap %s has %d entries, catalog has %d", family, len(set.URLs), len(seeds))
		}

		seen := make(map[string]int, len(set.URLs))
		for _, entry := range set.URLs {
			seen[entry.Loc]++
		}
		for _, seed := range seeds {
			loc := v.BaseURL + v.Deriver.BuildPath(seed)
			switch seen[loc] {
			case 0:
				report.addf("sitemap %s missing %s", family, loc)
			case 1:
				// expected
			default:
				report.addf("sitemap %s lists %s %d times", family, loc, seen[loc])
			}
		}
	}
	return nil
}

// checkManifest verifies the render manifest exists, covers every route,
// and every listed route has a file on disk.
func (v *Verifier) checkManifest(report *Report) error {
	m, err := manifest.ReadRenderManifest(v.OutDir, v.Store)
	if err != nil {
		return err
	}

	if m.RouteCount != len(m.Routes) {
		report.addf("manifest routeCount %d does not match %d listed routes", m.RouteCount, len(m.Routes))
	}

	emitter := &prerender.Emitter{OutDir: v.OutDir}
	for _, route := range m.Routes {
		if !v.Store.HasFile(emitter.OutputPath(route)) {
			report.addf("manifest lists %s but no file exists", route)
		}
	}

	listed := make(map[string]struct{}, len(m.Routes))
	for _, route := range m.Routes {
		listed[route] = struct{}{}
	}
	for _, seed := range v.Deriver.Catalog.Seeds {
		path := v.Deriver.BuildPath(seed)
		if _, ok := listed[path]; !ok {
			report.addf("catalog page %s missing from manifest", path)
		}
	}
	return nil
}

// checkHTML parses every catalog page's emitted document and compares its
// title, description, and h1 to a fresh derivation.
func (v *Verifier) checkHTML(report *Report) error {
	emitter := &prerender.Emitter{OutDir: v.OutDir}
	for _, seed := range v.Deriver.Catalog.Seeds {
		routePath := v.Deriver.BuildPath(seed)
		data, err := v.Store.ReadFile(emitter.OutputPath(routePath))
		if err != nil {
			return fmt.Errorf("missing prerendered page %s: %w", routePath, err)
		}

		doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(data)))
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", routePath, err)
		}
		report.RoutesChecked++

		page := v.Deriver.Derive(seed)

		if got := doc.Find("title").First().Text(); got != page.Title {
			report.addf("%s title = %q, derived %q", routePath, got, page.Title)
		}
		if got, _ := doc.Find(`meta[name="description"]`).Attr("content"); got != page.Description {
			report.addf("%s description = %q, derived %q", routePath, got, page.Description)
		}
		if got := doc.Find("h1").First().Text(); got != page.H1 {
			report.addf("%s h1 = %q, derived %q", routePath, got, page.H1)
		}
		if got, _ := doc.Find(`link[rel="canonical"]`).Attr("href"); got != v.BaseURL+routePath {
			report.addf("%s canonical = %q, want %q", routePath, got, v.BaseURL+routePath)
		}
		if n := doc.Find(`script[type="application/ld+json"]`).Length(); n != 1 {
			report.addf("%s has %d structured-data scripts, want 1", routePath, n)
		}
	}
	return nil
}
