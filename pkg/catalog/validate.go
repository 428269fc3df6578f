package catalog

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pulsescore/seogen/models"
)

// MinCatalogSize is the floor for the whole catalog. Below this the site
// has too little programmatic coverage to be worth publishing.
const MinCatalogSize = 50

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Validate runs every catalog invariant in order and returns the first
// violation. Catalog correctness is a release gate: there is no warn-only
// mode, and the caller is expected to abort the pipeline on error.
func (c *Catalog) Validate() error {
	if len(c.Seeds) < MinCatalogSize {
		return fmt.Errorf("expected at least %d SEO pages, found %d", MinCatalogSize, len(c.Seeds))
	}

	for _, seed := range c.Seeds {
		if !seed.Family.IsValid() {
			return fmt.Errorf("unknown family %q on slug %q", seed.Family, seed.Slug)
		}
		if !slugPattern.MatchString(seed.Slug) {
			return fmt.Errorf("invalid slug %q in family %q: must match [a-z0-9]+(-[a-z0-9]+)*", seed.Slug, seed.Family)
		}
		if len(strings.TrimSpace(seed.Entity)) < 3 {
			return fmt.Errorf("entity too short on %s/%s: %q", seed.Family, seed.Slug, seed.Entity)
		}
		if len(strings.Fields(seed.Keyword)) < 2 {
			return fmt.Errorf("keyword %q on %s/%s must have at least 2 words", seed.Keyword, seed.Family, seed.Slug)
		}
		if !models.ValidIntent(seed.Intent) {
			return fmt.Errorf("invalid intent %q on %s/%s", seed.Intent, seed.Family, seed.Slug)
		}
	}

	seenPaths := make(map[string]struct{}, len(c.Seeds))
	for _, seed := range c.Seeds {
		path := c.Families[seed.Family].Path + "/" + seed.Slug
		if _, dup := seenPaths[path]; dup {
			return fmt.Errorf("duplicate page path %s", path)
		}
		seenPaths[path] = struct{}{}
	}

	seenKeywords := make(map[string]string, len(c.Seeds))
	for _, seed := range c.Seeds {
		key := string(seed.Family) + "\x00" + strings.ToLower(seed.Keyword)
		if other, dup := seenKeywords[key]; dup {
			return fmt.Errorf("duplicate keyword %q in family %q (slugs %q and %q)", seed.Keyword, seed.Family, other, seed.Slug)
		}
		seenKeywords[key] = seed.Slug
	}

	counts := c.FamilyCounts()
	for _, family := range models.AllFamilies {
		if counts[family] < family.MinEntries() {
			return fmt.Errorf("family %q has %d entries, expected at least %d", family, counts[family], family.MinEntries())
		}
	}

	return nil
}

// Summary returns the per-family count lines printed after a successful
// validation run.
func (c *Catalog) Summary() []string {
	counts := c.FamilyCounts()
	lines := make([]string, 0, len(models.AllFamilies)+1)
	for _, family := range models.AllFamilies {
		lines = append(lines, fmt.Sprintf("%-14s %3d pages (min %d)", family, counts[family], family.MinEntries()))
	}
	lines = append(lines, fmt.Sprintf("%-14s %3d pages total", "catalog", len(c.Seeds)))
	return lines
}
