// Package sitemap materializes the catalog into per-family sitemap XML
// files plus one sitemap index.
package sitemap

import (
	"encoding/xml"
	"fmt"
	"path/filepath"

	"github.com/pulsescore/seogen/models"
	"github.com/pulsescore/seogen/pkg/derive"
	"github.com/pulsescore/seogen/pkg/storage"
)

// Core-page sitemap policy. The core file also carries the family hubs.
const (
	coreChangeFreq = "weekly"
	corePriority   = "0.9"
)

// Emitter writes sitemap artifacts under the output directory.
type Emitter struct {
	Deriver *derive.Deriver
	Store   *storage.Storage
	BaseURL string
	OutDir  string
	LastMod string // YYYY-MM-DD stamp shared by every entry in one run
}

// FamilyEntries returns the sitemap entries for one family, in catalog
// order, one entry per catalog seed.
func (e *Emitter) FamilyEntries(family models.PageFamily) []models.SitemapEntry {
	seeds := e.Deriver.Catalog.FamilySeeds(family)
	entries := make([]models.SitemapEntry, 0, len(seeds))
	for _, seed := range seeds {
		entries = append(entries, models.SitemapEntry{
			Loc:        e.BaseURL + e.Deriver.BuildPath(seed),
			LastMod:    e.LastMod,
			ChangeFreq: family.ChangeFreq(),
			Priority:   family.Priority(),
		})
	}
	return entries
}

// CoreEntries returns the entries for the fixed marketing routes and the
// family hub pages.
func (e *Emitter) CoreEntries() []models.SitemapEntry {
	paths := e.Deriver.Catalog.CorePaths()
	entries := make([]models.SitemapEntry, 0, len(paths))
	for _, path := range paths {
		entries = append(entries, models.SitemapEntry{
			Loc:        e.BaseURL + path,
			LastMod:    e.LastMod,
			ChangeFreq: coreChangeFreq,
			Priority:   corePriority,
		})
	}
	return entries
}

// Emit writes dist/sitemaps/<family>.xml for every family, a core.xml for
// the fixed routes, and the sitemap index under both dist/sitemap.xml and
// dist/sitemap-index.xml (crawlers expect either name). Any write failure
// aborts; partial output on disk is overwritten by the next run.
func (e *Emitter) Emit() (int, error) {
	total := 0

	files := []string{"core"}
	if err := e.writeURLSet(filepath.Join(e.OutDir, "sitemaps", "core.xml"), e.CoreEntries()); err != nil {
		return total, err
	}
	total += len(e.Deriver.Catalog.CorePaths())

	for _, family := range models.AllFamilies {
		entries := e.FamilyEntries(family)
		name := string(family)
		path := filepath.Join(e.OutDir, "sitemaps", name+".xml")
		if err := e.writeURLSet(path, entries); err != nil {
			return total, err
		}
		files = append(files, name)
		total += len(entries)
	}

	index := models.SitemapIndex{Xmlns: models.SitemapNamespace}
	for _, name := range files {
		index.Sitemaps = append(index.Sitemaps, models.SitemapIndexed{
			Loc:     fmt.Sprintf("%s/sitemaps/%s.xml", e.BaseURL, name),
			LastMod: e.LastMod,
		})
	}

	data, err := marshalXML(index)
	if err != nil {
		return total, err
	}
	for _, name := range []string{"sitemap.xml", "sitemap-index.xml"} {
		if err := e.Store.SaveFile(filepath.Join(e.OutDir, name), data); err != nil {
			return total, fmt.Errorf("error writing sitemap index: %w", err)
		}
	}
	return total, nil
}

func (e *Emitter) writeURLSet(path string, entries []models.SitemapEntry) error {
	set := models.URLSet{Xmlns: models.SitemapNamespace, URLs: entries}
	data, err := marshalXML(set)
	if err != nil {
		return err
	}
	if err := e.Store.SaveFile(path, data); err != nil {
		return fmt.Errorf("error writing sitemap %s: %w", path, err)
	}
	return nil
}

func marshalXML(v any) ([]byte, error) {
	body, err := xml.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error marshalling sitemap XML: %w", err)
	}
	return append([]byte(xml.Header), append(body, '\n')...), nil
}
