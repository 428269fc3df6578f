// Package catalog loads the SEO page catalog and its per-family
// configuration, and gates publication behind invariant checks.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pulsescore/seogen/models"
)

// Catalog is the immutable seed data every emitter consumes: the full list
// of page seeds in file order plus the per-family configuration map.
type Catalog struct {
	Seeds    []models.PageSeed
	Families map[models.PageFamily]models.FamilyConfig

	byPath map[string]int // "family/slug" -> index into Seeds
}

// Load reads the catalog seed file and the family config file. The result
// is read-only; both build scripts and the runtime renderer share it.
func Load(catalogPath, familiesPath string) (*Catalog, error) {
	seedData, err := os.ReadFile(catalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var seeds []models.PageSeed
	if err := json.Unmarshal(seedData, &seeds); err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", catalogPath, err)
	}

	famData, err := os.ReadFile(familiesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read family config: %w", err)
	}

	var families map[models.PageFamily]models.FamilyConfig
	if err := json.Unmarshal(famData, &families); err != nil {
		return nil, fmt.Errorf("failed to parse family config %s: %w", familiesPath, err)
	}

	return New(seeds, families)
}

// New builds a Catalog from in-memory data. Family config completeness is
// checked here because nothing downstream can run without it; seed-level
// invariants are the validator's job.
func New(seeds []models.PageSeed, families map[models.PageFamily]models.FamilyConfig) (*Catalog, error) {
	for _, family := range models.AllFamilies {
		if _, ok := families[family]; !ok {
			return nil, fmt.Errorf("family config missing entry for %q", family)
		}
	}
	seenPaths := make(map[string]models.PageFamily)
	for family, cfg := range families {
		if !family.IsValid() {
			return nil, fmt.Errorf("family config has unknown family %q", family)
		}
		if prev, dup := seenPaths[cfg.Path]; dup {
			return nil, fmt.Errorf("families %q and %q share path prefix %q", prev, family, cfg.Path)
		}
		seenPaths[cfg.Path] = family
	}

	c := &Catalog{
		Seeds:    seeds,
		Families: families,
		byPath:   make(map[string]int, len(seeds)),
	}
	for i, seed := range seeds {
		key := string(seed.Family) + "/" + seed.Slug
		if _, exists := c.byPath[key]; !exists {
			c.byPath[key] = i
		}
	}
	return c, nil
}

// Lookup returns the seed for a (family, slug) pair, or false if the pair
// is not in the catalog. A miss is the renderer's not-found state, not an
// error.
func (c *Catalog) Lookup(family models.PageFamily, slug string) (models.PageSeed, bool) {
	i, ok := c.byPath[string(family)+"/"+slug]
	if !ok {
		return models.PageSeed{}, false
	}
	return c.Seeds[i], true
}

// FamilySeeds returns the seeds belonging to one family, in catalog order.
func (c *Catalog) FamilySeeds(family models.PageFamily) []models.PageSeed {
	var out []models.PageSeed
	for _, seed := range c.Seeds {
		if seed.Family == family {
			out = append(out, seed)
		}
	}
	return out
}

// FamilyCounts returns the number of seeds per family.
func (c *Catalog) FamilyCounts() map[models.PageFamily]int {
	counts := make(map[models.PageFamily]int, len(models.AllFamilies))
	for _, seed := range c.Seeds {
		counts[seed.Family]++
	}
	return counts
}

// CorePaths returns the fixed marketing routes that exist outside the
// catalog: the home page, pricing, legal pages, and each family's hub.
// These go in the core sitemap only, so per-family sitemap counts always
// equal that family's catalog count.
func (c *Catalog) CorePaths() []string {
	paths := []string{"/", "/pricing", "/legal/privacy", "/legal/terms"}
	for _, family := range models.AllFamilies {
		paths = append(paths, c.Families[family].Path)
	}
	return paths
}
