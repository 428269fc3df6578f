// Package derive maps catalog seeds to every piece of human-visible page
// text. All three emitters (sitemap, prerenderer, runtime renderer) go
// through this package, so a given seed renders identically everywhere.
package derive

import (
	"strings"

	"github.com/pulsescore/seogen/models"
	"github.com/pulsescore/seogen/pkg/catalog"
)

// MaxTitleLength is the hard ceiling on a rendered <title>, brand suffix
// included.
const MaxTitleLength = 60

// Deriver produces DerivedPages from catalog seeds. It holds no mutable
// state; every method is a pure function of its inputs.
type Deriver struct {
	Catalog     *catalog.Catalog
	TitleSuffix string
}

// New returns a Deriver over the given catalog.
func New(c *catalog.Catalog, titleSuffix string) *Deriver {
	return &Deriver{Catalog: c, TitleSuffix: titleSuffix}
}

// BuildPath returns the full URL path for a seed.
func (d *Deriver) BuildPath(seed models.PageSeed) string {
	return d.Catalog.Families[seed.Family].Path + "/" + seed.Slug
}

// BuildTitle renders the family title template and appends the brand
// suffix. If the combined string would exceed MaxTitleLength, the base is
// truncated with a single ellipsis; the suffix is never cut.
func (d *Deriver) BuildTitle(seed models.PageSeed) string {
	base := substitute(d.Catalog.Families[seed.Family].TitleTemplate, seed.Entity)
	return d.BrandTitle(base)
}

// BrandTitle appends the brand suffix to base, truncating base to keep the
// whole title within MaxTitleLength. Hub and core pages share this with
// detail pages so every emitted title obeys the same length invariant.
func (d *Deriver) BrandTitle(base string) string {
	baseRunes := []rune(base)
	room := MaxTitleLength - len([]rune(d.TitleSuffix))
	if len(baseRunes) > room {
		baseRunes = baseRunes[:room-1]
		base = strings.TrimRight(string(baseRunes), " ") + "…"
	}
	return base + d.TitleSuffix
}

// BuildDescription renders the family description template.
func (d *Deriver) BuildDescription(seed models.PageSeed) string {
	return substitute(d.Catalog.Families[seed.Family].DescriptionTemplate, seed.Entity)
}

// BuildHeading renders the family h1 template.
func (d *Deriver) BuildHeading(seed models.PageSeed) string {
	return substitute(d.Catalog.Families[seed.Family].H1Template, seed.Entity)
}

// Derive computes the full DerivedPage for a seed, including the
// hash-selected supplementary copy.
func (d *Deriver) Derive(seed models.PageSeed) models.DerivedPage {
	h := DeterministicSeed(seed.Family, seed.Slug, seed.Keyword)
	return models.DerivedPage{
		Seed:          seed,
		Path:          d.BuildPath(seed),
		Title:         d.BuildTitle(seed),
		Description:   d.BuildDescription(seed),
		H1:            d.BuildHeading(seed),
		Cadence:       pick(h, saltCadence, cadenceOptions),
		Owner:         pick(h, saltOwner, ownerOptions),
		DataSource:    pick(h, saltDataSource, dataSourceOptions),
		SuccessMetric: pick(h, saltSuccessMetric, successMetricOptions),
		Pitfall:       pick(h, saltPitfall, pitfallOptions),
	}
}

func substitute(template, entity string) string {
	return strings.ReplaceAll(template, "{entity}", entity)
}
