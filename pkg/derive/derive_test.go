package derive

import (
	"strings"
	"testing"

	"github.com/pulsescore/seogen/models"
	"github.com/pulsescore/seogen/pkg/catalog"
)

const testSuffix = " | PulseScore"

func testDeriver(t *testing.T) *Deriver {
	t.Helper()
	c, err := catalog.Load("../../data/catalog.json", "../../data/families.json")
	if err != nil {
		t.Fatalf("catalog.Load() error = %v", err)
	}
	return New(c, testSuffix)
}

func TestBuildPath(t *testing.T) {
	d := testDeriver(t)
	seed, ok := d.Catalog.Lookup(models.FamilyGlossary, "churn-rate")
	if !ok {
		t.Fatal("churn-rate missing from shipped catalog")
	}

	if got := d.BuildPath(seed); got != "/glossary/churn-rate" {
		t.Errorf("BuildPath() = %q, want %q", got, "/glossary/churn-rate")
	}
}

func TestBuildTitleEndsWithBrandSuffix(t *testing.T) {
	d := testDeriver(t)
	for _, seed := range d.Catalog.Seeds {
		title := d.BuildTitle(seed)
		if !strings.HasSuffix(title, testSuffix) {
			t.Errorf("BuildTitle(%s/%s) = %q, want suffix %q", seed.Family, seed.Slug, title, testSuffix)
		}
	}
}

func TestBuildTitleLengthInvariant(t *testing.T) {
	d := testDeriver(t)
	for _, seed := range d.Catalog.Seeds {
		title := d.BuildTitle(seed)
		if n := len([]rune(title)); n > MaxTitleLength {
			t.Errorf("BuildTitle(%s/%s) length = %d, want <= %d", seed.Family, seed.Slug, n, MaxTitleLength)
		}
	}
}

func TestBrandTitleTruncatesBaseNotSuffix(t *testing.T) {
	d := testDeriver(t)
	long := strings.Repeat("Customer Health ", 8) // well past the limit

	title := d.BrandTitle(long)
	if n := len([]rune(title)); n > MaxTitleLength {
		t.Fatalf("BrandTitle() length = %d, want <= %d", n, MaxTitleLength)
	}
	if !strings.HasSuffix(title, testSuffix) {
		t.Errorf("BrandTitle() = %q, suffix was cut", title)
	}
	if !strings.Contains(title, "…") {
		t.Errorf("BrandTitle() = %q, want a single ellipsis before the suffix", title)
	}
	if strings.Count(title, "…") != 1 {
		t.Errorf("BrandTitle() = %q, want exactly one ellipsis", title)
	}
}

func TestBrandTitleLeavesShortTitlesAlone(t *testing.T) {
	d := testDeriver(t)
	if got := d.BrandTitle("Pricing"); got != "Pricing"+testSuffix {
		t.Errorf("BrandTitle() = %q, want %q", got, "Pricing"+testSuffix)
	}
}

func TestDeriveIsDeterministic(t *testing.T) {
	d := testDeriver(t)
	for _, seed := range d.Catalog.Seeds {
		first := d.Derive(seed)
		second := d.Derive(seed)
		if first != second {
			t.Fatalf("Derive(%s/%s) differs between calls:\n%+v\n%+v", seed.Family, seed.Slug, first, second)
		}
	}
}

func TestDerivePicksFromOptionLists(t *testing.T) {
	d := testDeriver(t)
	seed, _ := d.Catalog.Lookup(models.FamilyGlossary, "churn-rate")
	page := d.Derive(seed)

	if !contains(cadenceOptions, page.Cadence) {
		t.Errorf("Cadence = %q, not in the fixed option list", page.Cadence)
	}
	if !contains(ownerOptions, page.Owner) {
		t.Errorf("Owner = %q, not in the fixed option list", page.Owner)
	}
	if !contains(dataSourceOptions, page.DataSource) {
		t.Errorf("DataSource = %q, not in the fixed option list", page.DataSource)
	}
	if !contains(successMetricOptions, page.SuccessMetric) {
		t.Errorf("SuccessMetric = %q, not in the fixed option list", page.SuccessMetric)
	}
	if !contains(pitfallOptions, page.Pitfall) {
		t.Errorf("Pitfall = %q, not in the fixed option list", page.Pitfall)
	}
}

func contains(options []string, s string) bool {
	for _, o := range options {
		if o == s {
			return true
		}
	}
	return false
}
