// Package prerender renders full HTML documents for every SEO route and,
// at build time, writes them under the output directory. The runtime
// server renders through the same Renderer, so both emitters produce
// byte-identical documents for a given route.
package prerender

import (
	"fmt"

	"github.com/pulsescore/seogen/models"
	"github.com/pulsescore/seogen/pkg/assets"
	"github.com/pulsescore/seogen/pkg/derive"
	"github.com/pulsescore/seogen/pkg/seo"
	"github.com/pulsescore/seogen/pkg/structured"
)

// relatedLimit is how many related pages a detail page links to.
const relatedLimit = 6

// Renderer turns catalog routes into complete HTML documents.
type Renderer struct {
	Deriver *derive.Deriver
	Cfg     models.SiteConfig
	Assets  assets.Manifest
}

// RenderedRoute is one finished document plus the metadata the emitters
// index it by.
type RenderedRoute struct {
	Path string
	Meta seo.Meta
	HTML []byte
}

// Routes returns every emitted path in generation order: core routes
// first, then each family's detail pages in catalog order. The render
// manifest and the sitemap walk the same order.
func (r *Renderer) Routes() []string {
	paths := r.Deriver.Catalog.CorePaths()
	for _, family := range models.AllFamilies {
		for _, seed := range r.Deriver.Catalog.FamilySeeds(family) {
			paths = append(paths, r.Deriver.BuildPath(seed))
		}
	}
	return paths
}

// RenderPath renders any known route. Unknown paths return an error; the
// runtime server maps that to its not-found state instead.
func (r *Renderer) RenderPath(path string) (RenderedRoute, error) {
	if copyBlock, ok := coreCopy[path]; ok {
		return r.renderCore(path, copyBlock)
	}
	for _, family := range models.AllFamilies {
		cfg := r.Deriver.Catalog.Families[family]
		if path == cfg.Path {
			return r.renderHub(family)
		}
	}
	if family, slug, ok := r.splitDetailPath(path); ok {
		if seed, found := r.Deriver.Catalog.Lookup(family, slug); found {
			return r.RenderDetail(seed)
		}
	}
	return RenderedRoute{}, fmt.Errorf("no route for path %s", path)
}

// RenderDetail renders one catalog page.
func (r *Renderer) RenderDetail(seed models.PageSeed) (RenderedRoute, error) {
	page := r.Deriver.Derive(seed)
	canonical := r.Cfg.BaseURL + page.Path
	meta := seo.PageMeta(page.Title, page.Description, canonical, r.Cfg.Brand)

	ld := r.detailStructuredData(page, canonical)

	related := r.Deriver.RelatedPages(seed, relatedLimit)
	body, err := renderDetailBody(r.Deriver, page, related)
	if err != nil {
		return RenderedRoute{}, err
	}

	html, err := renderDocument(meta, ld, r.Assets.Tags(), body)
	if err != nil {
		return RenderedRoute{}, err
	}
	return RenderedRoute{Path: page.Path, Meta: meta, HTML: html}, nil
}

// renderHub renders a family landing page linking to every detail page in
// that family.
func (r *Renderer) renderHub(family models.PageFamily) (RenderedRoute, error) {
	cfg := r.Deriver.Catalog.Families[family]
	canonical := r.Cfg.BaseURL + cfg.Path
	title := r.Deriver.BrandTitle(cfg.HubTitle)
	meta := seo.PageMeta(title, cfg.HubDescription, canonical, r.Cfg.Brand)

	seeds := r.Deriver.Catalog.FamilySeeds(family)
	ld := []structured.Object{
		structured.CollectionPage(cfg.HubTitle, cfg.HubDescription, canonical, len(seeds)),
		structured.BreadcrumbList([]structured.Breadcrumb{
			{Name: r.Cfg.Brand, URL: r.Cfg.BaseURL + "/"},
			{Name: cfg.Label, URL: canonical},
		}),
	}

	body, err := renderHubBody(r.Deriver, family, cfg, seeds)
	if err != nil {
		return RenderedRoute{}, err
	}

	html, err := renderDocument(meta, ld, r.Assets.Tags(), body)
	if err != nil {
		return RenderedRoute{}, err
	}
	return RenderedRoute{Path: cfg.Path, Meta: meta, HTML: html}, nil
}

// renderCore renders one of the fixed marketing routes.
func (r *Renderer) renderCore(path string, copyBlock corePage) (RenderedRoute, error) {
	canonical := r.Cfg.BaseURL + path
	title := r.Deriver.BrandTitle(copyBlock.Title)
	meta := seo.PageMeta(title, copyBlock.Description, canonical, r.Cfg.Brand)
	ld := []structured.Object{structured.WebPage(copyBlock.Title, copyBlock.Description, canonical)}

	body, err := renderCoreBody(copyBlock)
	if err != nil {
		return RenderedRoute{}, err
	}

	html, err := renderDocument(meta, ld, r.Assets.Tags(), body)
	if err != nil {
		return RenderedRoute{}, err
	}
	return RenderedRoute{Path: path, Meta: meta, HTML: html}, nil
}

// RenderNotFound renders the noindex not-found document served for
// unknown catalog routes.
func (r *Renderer) RenderNotFound() (RenderedRoute, error) {
	meta := seo.NotFoundMeta(r.Cfg.Brand)
	body, err := renderNotFoundBody()
	if err != nil {
		return RenderedRoute{}, err
	}
	html, err := renderDocument(meta, nil, r.Assets.Tags(), body)
	if err != nil {
		return RenderedRoute{}, err
	}
	return RenderedRoute{Path: "", Meta: meta, HTML: html}, nil
}

func (r *Renderer) detailStructuredData(page models.DerivedPage, canonical string) []structured.Object {
	cfg := r.Deriver.Catalog.Families[page.Seed.Family]
	trail := structured.BreadcrumbList([]structured.Breadcrumb{
		{Name: r.Cfg.Brand, URL: r.Cfg.BaseURL + "/"},
		{Name: cfg.Label, URL: r.Cfg.BaseURL + cfg.Path},
		{Name: page.Seed.Entity, URL: canonical},
	})

	switch page.Seed.Family {
	case models.FamilyGlossary:
		return []structured.Object{
			structured.DefinedTerm(page.Seed.Entity, page.Description, canonical),
			trail,
		}
	case models.FamilyComparisons:
		return []structured.Object{
			structured.WebPage(page.Title, page.Description, canonical),
			trail,
			structured.FAQPage(comparisonFAQ(page)),
		}
	default:
		return []structured.Object{
			structured.WebPage(page.Title, page.Description, canonical),
			trail,
		}
	}
}

// comparisonFAQ builds the question/answer pairs shown on comparison
// pages. Pure function of the derived page, so both emitters agree.
func comparisonFAQ(page models.DerivedPage) []structured.QA {
	return []structured.QA{
		{
			Question: fmt.Sprintf("How does PulseScore compare to %s?", page.Seed.Entity),
			Answer: fmt.Sprintf("PulseScore focuses on %s driven by %s, reviewed %s by your %s.",
				page.SuccessMetric, page.DataSource, page.Cadence, page.Owner),
		},
		{
			Question: fmt.Sprintf("What should teams evaluating %s watch out for?", page.Seed.Entity),
			Answer:   fmt.Sprintf("The most common pitfall is %s.", page.Pitfall),
		},
	}
}

func (r *Renderer) splitDetailPath(path string) (models.PageFamily, string, bool) {
	for _, family := range models.AllFamilies {
		prefix := r.Deriver.Catalog.Families[family].Path + "/"
		if len(path) > len(prefix) && path[:len(prefix)] == prefix {
			return family, path[len(prefix):], true
		}
	}
	return "", "", false
}
