// Package models defines data structures for the SEO catalog and its
// generated artifacts.
package models

// PageFamily tags a category of programmatic SEO page. The set is closed:
// every family has exactly one FamilyConfig and its own URL prefix.
type PageFamily string

const (
	FamilyTemplates    PageFamily = "templates"
	FamilyIntegrations PageFamily = "integrations"
	FamilyPersonas     PageFamily = "personas"
	FamilyComparisons  PageFamily = "comparisons"
	FamilyGlossary     PageFamily = "glossary"
	FamilyExamples     PageFamily = "examples"
	FamilyCuration     PageFamily = "curation"
)

// AllFamilies lists every family in catalog order. Generation walks this
// slice so output ordering is stable across runs.
var AllFamilies = []PageFamily{
	FamilyTemplates,
	FamilyIntegrations,
	FamilyPersonas,
	FamilyComparisons,
	FamilyGlossary,
	FamilyExamples,
	FamilyCuration,
}

// IsValid reports whether f is one of the known families.
func (f PageFamily) IsValid() bool {
	for _, known := range AllFamilies {
		if f == known {
			return true
		}
	}
	return false
}

// MinEntries returns the minimum catalog entry count required per family.
// A catalog below these floors is rejected by the validator.
func (f PageFamily) MinEntries() int {
	switch f {
	case FamilyTemplates:
		return 20
	case FamilyIntegrations:
		return 15
	case FamilyPersonas:
		return 10
	case FamilyComparisons:
		return 5
	case FamilyGlossary:
		return 20
	case FamilyExamples:
		return 10
	case FamilyCuration:
		return 10
	default:
		return 0
	}
}

// ChangeFreq returns the sitemap change frequency for pages in this family.
func (f PageFamily) ChangeFreq() string {
	switch f {
	case FamilyGlossary, FamilyExamples, FamilyCuration:
		return "monthly"
	default:
		return "weekly"
	}
}

// Priority returns the sitemap priority for pages in this family.
func (f PageFamily) Priority() string {
	switch f {
	case FamilyGlossary, FamilyExamples:
		return "0.65"
	case FamilyCuration:
		return "0.7"
	default:
		return "0.8"
	}
}

// FamilyConfig holds the per-family presentation settings loaded from
// families.json. Template strings substitute the {entity} token.
type FamilyConfig struct {
	Path                string `json:"path"`
	Label               string `json:"label"`
	HubTitle            string `json:"hubTitle"`
	HubDescription      string `json:"hubDescription"`
	Hero                string `json:"hero"`
	TitleTemplate       string `json:"titleTemplate"`
	DescriptionTemplate string `json:"descriptionTemplate"`
	H1Template          string `json:"h1Template"`
}
