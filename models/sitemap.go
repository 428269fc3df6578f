package models

import "encoding/xml"

// URLSet is the root element of a per-family sitemap file.
type URLSet struct {
	XMLName xml.Name       `xml:"urlset"`
	Xmlns   string         `xml:"xmlns,attr"`
	URLs    []SitemapEntry `xml:"url"`
}

// SitemapEntry is a single <url> element.
type SitemapEntry struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// SitemapIndex is the root element of sitemap.xml / sitemap-index.xml.
type SitemapIndex struct {
	XMLName  xml.Name         `xml:"sitemapindex"`
	Xmlns    string           `xml:"xmlns,attr"`
	Sitemaps []SitemapIndexed `xml:"sitemap"`
}

// SitemapIndexed is a single <sitemap> reference inside the index.
type SitemapIndexed struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// SitemapNamespace is the sitemaps.org protocol namespace shared by the
// urlset and sitemapindex documents.
const SitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"
