package catalog

import (
	"strings"
	"testing"

	"github.com/pulsescore/seogen/models"
)

func TestValidateAcceptsValidCatalog(t *testing.T) {
	c := mustCatalog(t, validSeeds())
	if err := c.Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}

func TestValidateRejectsSmallCatalog(t *testing.T) {
	seeds := validSeeds()[:49]
	c := mustCatalog(t, seeds)

	err := c.Validate()
	if err == nil {
		t.Fatal("Validate() accepted a 49-entry catalog")
	}
	if !strings.Contains(err.Error(), "at least 50") || !strings.Contains(err.Error(), "found 49") {
		t.Errorf("Validate() error = %q, want mention of the 50-page floor and the found count", err)
	}
}

func TestValidateRejectsDuplicatePath(t *testing.T) {
	seeds := validSeeds()
	seeds = append(seeds, models.PageSeed{
		Family:  models.FamilyTemplates,
		Slug:    "health-score",
		Entity:  "Health Score",
		Keyword: "health score duplicate one",
		Intent:  models.IntentCommercial,
	}, models.PageSeed{
		Family:  models.FamilyTemplates,
		Slug:    "health-score",
		Entity:  "Health Score",
		Keyword: "health score duplicate two",
		Intent:  models.IntentCommercial,
	})
	c := mustCatalog(t, seeds)

	err := c.Validate()
	if err == nil {
		t.Fatal("Validate() accepted a duplicate (family, slug) pair")
	}
	if !strings.Contains(err.Error(), "/templates/health-score") {
		t.Errorf("Validate() error = %q, want the duplicate path /templates/health-score named", err)
	}
}

func TestValidateRejectsDuplicateKeywordCaseInsensitive(t *testing.T) {
	seeds := validSeeds()
	seeds = append(seeds, models.PageSeed{
		Family:  models.FamilyGlossary,
		Slug:    "extra-entry",
		Entity:  "Extra Entry",
		Keyword: "GLOSSARY KEYWORD 0", // duplicates glossary-page-0 up to case
		Intent:  models.IntentInformational,
	})
	c := mustCatalog(t, seeds)

	err := c.Validate()
	if err == nil {
		t.Fatal("Validate() accepted a case-insensitive duplicate keyword")
	}
	if !strings.Contains(err.Error(), "duplicate keyword") {
		t.Errorf("Validate() error = %q, want a duplicate-keyword message", err)
	}
}

func TestValidateFieldChecks(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.PageSeed)
		wantSub string
	}{
		{"unknown family", func(s *models.PageSeed) { s.Family = "widgets" }, "unknown family"},
		{"uppercase slug", func(s *models.PageSeed) { s.Slug = "Not-Valid" }, "invalid slug"},
		{"trailing hyphen slug", func(s *models.PageSeed) { s.Slug = "bad-" }, "invalid slug"},
		{"short entity", func(s *models.PageSeed) { s.Entity = "  ab  " }, "entity too short"},
		{"one-word keyword", func(s *models.PageSeed) { s.Keyword = "churn" }, "at least 2 words"},
		{"bad intent", func(s *models.PageSeed) { s.Intent = "navigational" }, "invalid intent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seeds := validSeeds()
			tt.mutate(&seeds[0])
			c, err := New(seeds, testFamilies())
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}

			err = c.Validate()
			if err == nil {
				t.Fatalf("Validate() accepted seed with %s", tt.name)
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("Validate() error = %q, want substring %q", err, tt.wantSub)
			}
		})
	}
}

func TestValidateRejectsFamilyBelowMinimum(t *testing.T) {
	var seeds []models.PageSeed
	for _, seed := range validSeeds() {
		if seed.Family == models.FamilyComparisons && seed.Slug == "comparisons-page-0" {
			continue
		}
		seeds = append(seeds, seed)
	}
	c := mustCatalog(t, seeds)

	err := c.Validate()
	if err == nil {
		t.Fatal("Validate() accepted a family below its minimum count")
	}
	if !strings.Contains(err.Error(), "comparisons") {
		t.Errorf("Validate() error = %q, want the short family named", err)
	}
}

func TestRealCatalogValidates(t *testing.T) {
	c, err := Load("../../data/catalog.json", "../../data/families.json")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("shipped catalog failed validation: %v", err)
	}
}
