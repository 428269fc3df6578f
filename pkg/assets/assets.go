// Package assets resolves the script and stylesheet URLs that prerendered
// pages need so they hydrate into the same SPA bundle.
package assets

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Manifest is the explicit contract between the SPA build and the
// prerenderer: a plain list of bundle URLs. Preferred over scraping the
// built HTML, which couples the two build steps.
type Manifest struct {
	Scripts []string `json:"scripts"`
	Styles  []string `json:"styles"`
}

// Tags renders the manifest as head/body tag strings in a stable order:
// styles first, then module scripts.
func (m Manifest) Tags() []string {
	tags := make([]string, 0, len(m.Styles)+len(m.Scripts))
	for _, href := range m.Styles {
		tags = append(tags, fmt.Sprintf(`<link rel="stylesheet" href=%q>`, href))
	}
	for _, src := range m.Scripts {
		tags = append(tags, fmt.Sprintf(`<script type="module" src=%q></script>`, src))
	}
	return tags
}

// LoadManifest reads an asset manifest JSON file.
func LoadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("failed to read asset manifest: %w", err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("failed to parse asset manifest %s: %w", path, err)
	}
	return m, nil
}

// ExtractFromHTML pulls bundle references out of a built SPA index.html.
// Fallback for builds that predate the explicit manifest; only hashed
// bundle assets are picked up, not external URLs.
func ExtractFromHTML(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("failed to read SPA index: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(data)))
	if err != nil {
		return Manifest{}, fmt.Errorf("failed to parse SPA index %s: %w", path, err)
	}

	var m Manifest
	doc.Find(`link[rel="stylesheet"]`).Each(func(i int, s *goquery.Selection) {
		if href, ok := s.Attr("href"); ok && strings.HasPrefix(href, "/") {
			m.Styles = append(m.Styles, href)
		}
	})
	doc.Find("script[src]").Each(func(i int, s *goquery.Selection) {
		if src, ok := s.Attr("src"); ok && strings.HasPrefix(src, "/") {
			m.Scripts = append(m.Scripts, src)
		}
	})

	if len(m.Scripts) == 0 {
		return m, fmt.Errorf("no bundle scripts found in %s", path)
	}
	return m, nil
}

// Resolve picks the asset source: the explicit manifest when configured,
// else extraction from the built SPA index, else no assets (useful in
// tests and dry runs).
func Resolve(manifestPath, spaIndexPath string) (Manifest, error) {
	if manifestPath != "" {
		return LoadManifest(manifestPath)
	}
	if spaIndexPath != "" {
		return ExtractFromHTML(spaIndexPath)
	}
	return Manifest{}, nil
}
