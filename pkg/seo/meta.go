// Package seo holds the head-metadata model shared by the prerenderer and
// the runtime renderer.
package seo

// OpenGraph carries the og:* properties emitted for a page.
type OpenGraph struct {
	Title       string
	Description string
	Type        string
	URL         string
	SiteName    string
}

// Twitter carries the twitter:* properties emitted for a page.
type Twitter struct {
	Card        string
	Title       string
	Description string
}

// Meta is everything that goes into a page's <head> besides asset tags and
// structured data.
type Meta struct {
	Title       string
	Description string
	Canonical   string
	Robots      string
	OG          OpenGraph
	Twitter     Twitter
}

// PageMeta builds the standard indexable head metadata for a page.
func PageMeta(title, description, canonical, siteName string) Meta {
	return Meta{
		Title:       title,
		Description: description,
		Canonical:   canonical,
		Robots:      "index, follow",
		OG: OpenGraph{
			Title:       title,
			Description: description,
			Type:        "website",
			URL:         canonical,
			SiteName:    siteName,
		},
		Twitter: Twitter{
			Card:        "summary_large_image",
			Title:       title,
			Description: description,
		},
	}
}

// NotFoundMeta builds head metadata for the not-found state: crawlable but
// never indexed.
func NotFoundMeta(siteName string) Meta {
	return Meta{
		Title:       "Page not found | " + siteName,
		Description: "The page you are looking for does not exist.",
		Robots:      "noindex, nofollow",
	}
}
