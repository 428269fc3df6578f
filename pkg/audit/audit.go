// Package audit checks the content quality of emitted pages: each page
// must have extractable body copy, that copy must read as English, and the
// page's target keyword must actually appear in its visible text.
package audit

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/go-shiori/go-readability"
	"github.com/pemistahl/lingua-go"

	"github.com/pulsescore/seogen/pkg/derive"
	"github.com/pulsescore/seogen/pkg/prerender"
	"github.com/pulsescore/seogen/pkg/storage"
)

// minWordCount is the floor for a page's extractable copy. Thin pages
// hurt rankings more than no page at all.
const minWordCount = 30

// Auditor checks emitted HTML under the output directory.
type Auditor struct {
	Deriver *derive.Deriver
	Store   *storage.Storage
	BaseURL string
	OutDir  string

	detector lingua.LanguageDetector
}

// PageResult is the audit outcome for one route.
type PageResult struct {
	Path      string   `yaml:"path"`
	WordCount int      `yaml:"word_count"`
	Language  string   `yaml:"language"`
	Problems  []string `yaml:"problems,omitempty"`
}

// Report aggregates per-page results.
type Report struct {
	PagesChecked int          `yaml:"pages_checked"`
	PagesFailed  int          `yaml:"pages_failed"`
	Pages        []PageResult `yaml:"pages"`
}

// New builds an Auditor. The language detector is restricted to the
// languages the marketing copy could plausibly drift into; a smaller set
// keeps detection fast and confident.
func New(d *derive.Deriver, store *storage.Storage, baseURL, outDir string) *Auditor {
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(lingua.English, lingua.Spanish, lingua.French, lingua.German).
		Build()
	return &Auditor{
		Deriver:  d,
		Store:    store,
		BaseURL:  baseURL,
		OutDir:   outDir,
		detector: detector,
	}
}

// Run audits every catalog page and returns the report. Only pages with
// problems count as failed; the report carries all pages for inspection.
func (a *Auditor) Run() (*Report, error) {
	report := &Report{}
	emitter := &prerender.Emitter{OutDir: a.OutDir}

	for _, seed := range a.Deriver.Catalog.Seeds {
		routePath := a.Deriver.BuildPath(seed)
		data, err := a.Store.ReadFile(emitter.OutputPath(routePath))
		if err != nil {
			return nil, fmt.Errorf("missing prerendered page %s: %w", routePath, err)
		}

		result := a.auditPage(routePath, seed.Keyword, data)
		report.PagesChecked++
		if len(result.Problems) > 0 {
			report.PagesFailed++
		}
		report.Pages = append(report.Pages, result)
	}
	return report, nil
}

func (a *Auditor) auditPage(routePath, keyword string, html []byte) PageResult {
	result := PageResult{Path: routePath}

	pageURL, err := url.Parse(a.BaseURL + routePath)
	if err != nil {
		result.Problems = append(result.Problems, fmt.Sprintf("bad page URL: %v", err))
		return result
	}

	parser := readability.NewParser()
	article, err := parser.Parse(strings.NewReader(string(html)), pageURL)
	if err != nil {
		result.Problems = append(result.Problems, fmt.Sprintf("readability extraction failed: %v", err))
		return result
	}

	text := strings.TrimSpace(article.TextContent)
	words := tokenize(text)
	result.WordCount = len(words)

	if result.WordCount == 0 {
		result.Problems = append(result.Problems, "no extractable body copy")
		return result
	}
	if result.WordCount < minWordCount {
		result.Problems = append(result.Problems, fmt.Sprintf("thin content: %d words, want at least %d", result.WordCount, minWordCount))
	}

	if lang, ok := a.detector.DetectLanguageOf(text); ok {
		result.Language = lang.String()
		if lang != lingua.English {
			result.Problems = append(result.Problems, fmt.Sprintf("page declares lang=en but copy detects as %s", lang))
		}
	} else {
		result.Problems = append(result.Problems, "could not detect copy language")
	}

	if !containsKeyword(words, keyword) {
		result.Problems = append(result.Problems, fmt.Sprintf("target keyword %q not found in body copy", keyword))
	}

	return result
}

// tokenize lower-cases and splits visible text into word tokens, dropping
// punctuation-only fragments.
func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '\'')
	})
	var words []string
	for _, f := range fields {
		if f != "" {
			words = append(words, f)
		}
	}
	return words
}

// containsKeyword checks that every token of the target keyword appears
// somewhere in the page copy. Phrase order is not required; the derived
// templates weave keyword terms into different sentences.
func containsKeyword(words []string, keyword string) bool {
	have := make(map[string]struct{}, len(words))
	for _, w := range words {
		have[w] = struct{}{}
	}
	for _, token := range tokenize(keyword) {
		if _, ok := have[token]; !ok {
			return false
		}
	}
	return true
}
