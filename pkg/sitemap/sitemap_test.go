package sitemap

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"testing"

	"github.com/pulsescore/seogen/models"
	"github.com/pulsescore/seogen/pkg/catalog"
	"github.com/pulsescore/seogen/pkg/derive"
	"github.com/pulsescore/seogen/pkg/storage"
)

func testEmitter(t *testing.T) *Emitter {
	t.Helper()
	c, err := catalog.Load("../../data/catalog.json", "../../data/families.json")
	if err != nil {
		t.Fatalf("catalog.Load() error = %v", err)
	}
	return &Emitter{
		Deriver: derive.New(c, " | PulseScore"),
		Store:   &storage.Storage{},
		BaseURL: "https://pulsescore.io",
		OutDir:  t.TempDir(),
		LastMod: "2026-08-30",
	}
}

func readURLSet(t *testing.T, path string) models.URLSet {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	var set models.URLSet
	if err := xml.Unmarshal(data, &set); err != nil {
		t.Fatalf("parsing %s: %v", path, err)
	}
	return set
}

func TestEmitWritesOneFilePerFamily(t *testing.T) {
	e := testEmitter(t)
	total, err := e.Emit()
	if err != nil {
		t.Fatalf("Emit() error = %v", err)
	}

	counts := e.Deriver.Catalog.FamilyCounts()
	wantTotal := len(e.Deriver.Catalog.CorePaths())
	for _, family := range models.AllFamilies {
		set := readURLSet(t, filepath.Join(e.OutDir, "sitemaps", string(family)+".xml"))
		if len(set.URLs) != counts[family] {
			t.Errorf("sitemap %s has %d entries, catalog has %d", family, len(set.URLs), counts[family])
		}
		wantTotal += counts[family]
	}

	if total != wantTotal {
		t.Errorf("Emit() total = %d, want %d", total, wantTotal)
	}
}

func TestEmitCatalogPathsAppearExactlyOnce(t *testing.T) {
	e := testEmitter(t)
	if _, err := e.Emit(); err != nil {
		t.Fatalf("Emit() error = %v", err)
	}

	seen := make(map[string]int)
	for _, family := range models.AllFamilies {
		set := readURLSet(t, filepath.Join(e.OutDir, "sitemaps", string(family)+".xml"))
		for _, entry := range set.URLs {
			seen[entry.Loc]++
		}
	}

	for _, seed := range e.Deriver.Catalog.Seeds {
		loc := e.BaseURL + e.Deriver.BuildPath(seed)
		if seen[loc] != 1 {
			t.Errorf("path %s appears %d times across family sitemaps, want 1", loc, seen[loc])
		}
	}
}

func TestEmitFamilyPolicy(t *testing.T) {
	e := testEmitter(t)
	if _, err := e.Emit(); err != nil {
		t.Fatalf("Emit() error = %v", err)
	}

	tests := []struct {
		family     models.PageFamily
		changefreq string
		priority   string
	}{
		{models.FamilyTemplates, "weekly", "0.8"},
		{models.FamilyGlossary, "monthly", "0.65"},
		{models.FamilyCuration, "monthly", "0.7"},
	}
	for _, tt := range tests {
		set := readURLSet(t, filepath.Join(e.OutDir, "sitemaps", string(tt.family)+".xml"))
		for _, entry := range set.URLs {
			if entry.ChangeFreq != tt.changefreq {
				t.Errorf("%s changefreq = %q, want %q", tt.family, entry.ChangeFreq, tt.changefreq)
			}
			if entry.Priority != tt.priority {
				t.Errorf("%s priority = %q, want %q", tt.family, entry.Priority, tt.priority)
			}
		}
	}
}

func TestEmitCoreSitemapCarriesHubs(t *testing.T) {
	e := testEmitter(t)
	if _, err := e.Emit(); err != nil {
		t.Fatalf("Emit() error = %v", err)
	}

	set := readURLSet(t, filepath.Join(e.OutDir, "sitemaps", "core.xml"))
	if len(set.URLs) != len(e.Deriver.Catalog.CorePaths()) {
		t.Fatalf("core sitemap has %d entries, want %d", len(set.URLs), len(e.Deriver.Catalog.CorePaths()))
	}

	for _, entry := range set.URLs {
		if entry.ChangeFreq != "weekly" || entry.Priority != "0.9" {
			t.Errorf("core entry %s policy = %s/%s, want weekly/0.9", entry.Loc, entry.ChangeFreq, entry.Priority)
		}
	}
}

func TestEmitIndexWrittenUnderBothNames(t *testing.T) {
	e := testEmitter(t)
	if _, err := e.Emit(); err != nil {
		t.Fatalf("Emit() error = %v", err)
	}

	a, err := os.ReadFile(filepath.Join(e.OutDir, "sitemap.xml"))
	if err != nil {
		t.Fatalf("reading sitemap.xml: %v", err)
	}
	b, err := os.ReadFile(filepath.Join(e.OutDir, "sitemap-index.xml"))
	if err != nil {
		t.Fatalf("reading sitemap-index.xml: %v", err)
	}
	if string(a) != string(b) {
		t.Error("sitemap.xml and sitemap-index.xml differ; crawlers may read either")
	}

	var index models.SitemapIndex
	if err := xml.Unmarshal(a, &index); err != nil {
		t.Fatalf("parsing sitemap index: %v", err)
	}
	want := len(models.AllFamilies) + 1 // families plus core
	if len(index.Sitemaps) != want {
		t.Errorf("index references %d sitemaps, want %d", len(index.Sitemaps), want)
	}
}
