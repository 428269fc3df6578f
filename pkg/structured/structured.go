// Package structured builds the schema.org JSON-LD objects embedded in each
// generated page. Every route gets exactly one application/ld+json script
// containing one or more of these objects.
package structured

// Object is one schema.org entity. Maps marshal with sorted keys, so the
// serialized block is stable across builds.
type Object map[string]any

const context = "https://schema.org"

// WebPage describes an ordinary detail or core page.
func WebPage(name, description, url string) Object {
	return Object{
		"@context":    context,
		"@type":       "WebPage",
		"name":        name,
		"description": description,
		"url":         url,
	}
}

// CollectionPage describes a family hub that links to its detail pages.
func CollectionPage(name, description, url string, itemCount int) Object {
	return Object{
		"@context":    context,
		"@type":       "CollectionPage",
		"name":        name,
		"description": description,
		"url":         url,
		"mainEntity": Object{
			"@type":         "ItemList",
			"numberOfItems": itemCount,
		},
	}
}

// DefinedTerm describes a glossary entry.
func DefinedTerm(term, description, url string) Object {
	return Object{
		"@context":    context,
		"@type":       "DefinedTerm",
		"name":        term,
		"description": description,
		"url":         url,
		"inDefinedTermSet": Object{
			"@type": "DefinedTermSet",
			"name":  "Customer Success Glossary",
		},
	}
}

// QA is one question/answer pair for FAQPage. Order is preserved so the
// serialized block is identical across emitters.
type QA struct {
	Question string
	Answer   string
}

// FAQPage describes a question/answer block on comparison pages.
func FAQPage(questions []QA) Object {
	entities := make([]Object, len(questions))
	for i, qa := range questions {
		entities[i] = Object{
			"@type": "Question",
			"name":  qa.Question,
			"acceptedAnswer": Object{
				"@type": "Answer",
				"text":  qa.Answer,
			},
		}
	}
	return Object{
		"@context":   context,
		"@type":      "FAQPage",
		"mainEntity": entities,
	}
}

// Breadcrumb is one trail element for BreadcrumbList.
type Breadcrumb struct {
	Name string
	URL  string
}

// BreadcrumbList describes the navigation trail from the home page down to
// the current page.
func BreadcrumbList(trail []Breadcrumb) Object {
	items := make([]Object, len(trail))
	for i, crumb := range trail {
		items[i] = Object{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     crumb.Name,
			"item":     crumb.URL,
		}
	}
	return Object{
		"@context":        context,
		"@type":           "BreadcrumbList",
		"itemListElement": items,
	}
}
