package prerender

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"

	"github.com/pulsescore/seogen/models"
	"github.com/pulsescore/seogen/pkg/derive"
	"github.com/pulsescore/seogen/pkg/seo"
	"github.com/pulsescore/seogen/pkg/structured"
)

// corePage is the fixed copy for a non-catalog marketing route.
type corePage struct {
	Title       string
	Description string
	Lede        string
}

var coreCopy = map[string]corePage{
	"/": {
		Title:       "Customer Health Scores for SaaS Teams",
		Description: "PulseScore turns billing, CRM, and support signals into a single customer health score your whole team can act on.",
		Lede:        "Know which customers need attention before renewal time.",
	},
	"/pricing": {
		Title:       "Pricing",
		Description: "Simple per-seat pricing for customer health scoring. Start free, upgrade when your book of business grows.",
		Lede:        "Plans that scale with your customer base.",
	},
	"/legal/privacy": {
		Title:       "Privacy Policy",
		Description: "How PulseScore collects, uses, and protects your data.",
		Lede:        "Your data, handled carefully.",
	},
	"/legal/terms": {
		Title:       "Terms of Service",
		Description: "The terms that govern your use of PulseScore.",
		Lede:        "The fine print, in plain language.",
	},
}

var docTmpl = template.Must(template.New("document").Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Meta.Title}}</title>
<meta name="description" content="{{.Meta.Description}}">
<meta name="robots" content="{{.Meta.Robots}}">
{{if .Meta.Canonical}}<link rel="canonical" href="{{.Meta.Canonical}}">
{{end}}<meta property="og:title" content="{{.Meta.OG.Title}}">
<meta property="og:description" content="{{.Meta.OG.Description}}">
<meta property="og:type" content="{{.Meta.OG.Type}}">
{{if .Meta.OG.URL}}<meta property="og:url" content="{{.Meta.OG.URL}}">
{{end}}{{if .Meta.OG.SiteName}}<meta property="og:site_name" content="{{.Meta.OG.SiteName}}">
{{end}}<meta name="twitter:card" content="{{.Meta.Twitter.Card}}">
<meta name="twitter:title" content="{{.Meta.Twitter.Title}}">
<meta name="twitter:description" content="{{.Meta.Twitter.Description}}">
{{range .AssetTags}}{{.}}
{{end}}{{if .LD}}{{.LD}}
{{end}}</head>
<body>
<div id="root">
{{.Body}}</div>
</body>
</html>
`))

var detailBodyTmpl = template.Must(template.New("detail").Parse(`<article>
<h1>{{.H1}}</h1>
<p>{{.Description}}</p>
<p>Teams researching {{.Seed.Keyword}} use this page as a starting point for their own rollout.</p>
<section>
<h2>How teams run this</h2>
<ul>
<li>Review cadence: {{.Cadence}}</li>
<li>Typically owned by: {{.Owner}}</li>
<li>Primary data source: {{.DataSource}}</li>
<li>Success metric: {{.SuccessMetric}}</li>
</ul>
<p>Common pitfall: {{.Pitfall}}.</p>
</section>
{{if .Related}}<nav aria-label="Related pages">
<h2>Related</h2>
<ul>
{{range .Related}}<li><a href="{{.Path}}">{{.Label}}</a></li>
{{end}}</ul>
</nav>
{{end}}</article>
`))

var hubBodyTmpl = template.Must(template.New("hub").Parse(`<section>
<h1>{{.HubTitle}}</h1>
<p>{{.Hero}}</p>
<ul>
{{range .Pages}}<li><a href="{{.Path}}">{{.Label}}</a></li>
{{end}}</ul>
</section>
`))

var coreBodyTmpl = template.Must(template.New("core").Parse(`<section>
<h1>{{.Title}}</h1>
<p>{{.Lede}}</p>
<p>{{.Description}}</p>
</section>
`))

var notFoundBodyTmpl = template.Must(template.New("notfound").Parse(`<section>
<h1>Page not found</h1>
<p>The page you are looking for does not exist. It may have moved, or the address may be mistyped.</p>
<p><a href="/">Back to the home page</a></p>
</section>
`))

type relatedLink struct {
	Path  string
	Label string
}

// renderDocument assembles the full HTML document. The JSON-LD script is
// built outside the template (maps serialize with sorted keys, so the
// block is stable across builds) and injected whole; everything else goes
// through html/template escaping.
func renderDocument(meta seo.Meta, ld []structured.Object, assetTags []string, body template.HTML) ([]byte, error) {
	var ldScript template.HTML
	if len(ld) > 0 {
		var payload any = ld
		if len(ld) == 1 {
			payload = ld[0]
		}
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("error marshalling structured data: %w", err)
		}
		ldScript = template.HTML(`<script type="application/ld+json">` + string(data) + `</script>`)
	}

	tags := make([]template.HTML, len(assetTags))
	for i, tag := range assetTags {
		tags[i] = template.HTML(tag)
	}

	var buf bytes.Buffer
	err := docTmpl.Execute(&buf, struct {
		Meta      seo.Meta
		AssetTags []template.HTML
		LD        template.HTML
		Body      template.HTML
	}{meta, tags, ldScript, body})
	if err != nil {
		return nil, fmt.Errorf("error rendering document: %w", err)
	}
	return buf.Bytes(), nil
}

func renderDetailBody(d *derive.Deriver, page models.DerivedPage, related []models.PageSeed) (template.HTML, error) {
	links := make([]relatedLink, len(related))
	for i, seed := range related {
		links[i] = relatedLink{Path: d.BuildPath(seed), Label: seed.Entity}
	}

	var buf bytes.Buffer
	err := detailBodyTmpl.Execute(&buf, struct {
		models.DerivedPage
		Related []relatedLink
	}{page, links})
	if err != nil {
		return "", fmt.Errorf("error rendering detail body: %w", err)
	}
	return template.HTML(buf.String()), nil
}

func renderHubBody(d *derive.Deriver, family models.PageFamily, cfg models.FamilyConfig, seeds []models.PageSeed) (template.HTML, error) {
	links := make([]relatedLink, len(seeds))
	for i, seed := range seeds {
		links[i] = relatedLink{Path: d.BuildPath(seed), Label: seed.Entity}
	}

	var buf bytes.Buffer
	err := hubBodyTmpl.Execute(&buf, struct {
		HubTitle string
		Hero     string
		Pages    []relatedLink
	}{cfg.HubTitle, cfg.Hero, links})
	if err != nil {
		return "", fmt.Errorf("error rendering hub body for %s: %w", family, err)
	}
	return template.HTML(buf.String()), nil
}

func renderCoreBody(copyBlock corePage) (template.HTML, error) {
	var buf bytes.Buffer
	if err := coreBodyTmpl.Execute(&buf, copyBlock); err != nil {
		return "", fmt.Errorf("error rendering core body: %w", err)
	}
	return template.HTML(buf.String()), nil
}

func renderNotFoundBody() (template.HTML, error) {
	var buf bytes.Buffer
	if err := notFoundBodyTmpl.Execute(&buf, nil); err != nil {
		return "", fmt.Errorf("error rendering not-found body: %w", err)
	}
	return template.HTML(buf.String()), nil
}
