package assets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestTagsOrderStylesBeforeScripts(t *testing.T) {
	m := Manifest{
		Scripts: []string{"/assets/index-abc123.js"},
		Styles:  []string{"/assets/index-def456.css"},
	}

	tags := m.Tags()
	if len(tags) != 2 {
		t.Fatalf("Tags() returned %d tags, want 2", len(tags))
	}
	if want := `<link rel="stylesheet" href="/assets/index-def456.css">`; tags[0] != want {
		t.Errorf("tags[0] = %q, want %q", tags[0], want)
	}
	if want := `<script type="module" src="/assets/index-abc123.js"></script>`; tags[1] != want {
		t.Errorf("tags[1] = %q, want %q", tags[1], want)
	}
}

func TestLoadManifest(t *testing.T) {
	path := writeTempFile(t, "assets.json", `{
		"scripts": ["/assets/index-abc123.js"],
		"styles": ["/assets/index-def456.css"]
	}`)

	m, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest() error = %v", err)
	}
	if len(m.Scripts) != 1 || m.Scripts[0] != "/assets/index-abc123.js" {
		t.Errorf("Scripts = %v", m.Scripts)
	}
	if len(m.Styles) != 1 || m.Styles[0] != "/assets/index-def456.css" {
		t.Errorf("Styles = %v", m.Styles)
	}
}

func TestLoadManifestRejectsBadJSON(t *testing.T) {
	path := writeTempFile(t, "assets.json", `{scripts: nope}`)

	if _, err := LoadManifest(path); err == nil {
		t.Error("LoadManifest() accepted malformed JSON")
	}
}

func TestExtractFromHTML(t *testing.T) {
	path := writeTempFile(t, "index.html", `<!doctype html>
<html>
<head>
  <link rel="stylesheet" href="/assets/index-def456.css">
  <link rel="stylesheet" href="https://cdn.example.com/external.css">
  <link rel="icon" href="/favicon.ico">
</head>
<body>
  <div id="root"></div>
  <script type="module" src="/assets/index-abc123.js"></script>
  <script src="https://cdn.example.com/external.js"></script>
</body>
</html>`)

	m, err := ExtractFromHTML(path)
	if err != nil {
		t.Fatalf("ExtractFromHTML() error = %v", err)
	}
	if len(m.Scripts) != 1 || m.Scripts[0] != "/assets/index-abc123.js" {
		t.Errorf("Scripts = %v, want only the local bundle", m.Scripts)
	}
	if len(m.Styles) != 1 || m.Styles[0] != "/assets/index-def456.css" {
		t.Errorf("Styles = %v, want only the local stylesheet", m.Styles)
	}
}

func TestExtractFromHTMLRequiresScripts(t *testing.T) {
	path := writeTempFile(t, "index.html", `<html><body><div id="root"></div></body></html>`)

	_, err := ExtractFromHTML(path)
	if err == nil {
		t.Fatal("ExtractFromHTML() accepted a page with no bundle scripts")
	}
	if !strings.Contains(err.Error(), "no bundle scripts") {
		t.Errorf("error = %v, want mention of missing scripts", err)
	}
}

func TestResolveEmptyIsNoAssets(t *testing.T) {
	m, err := Resolve("", "")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(m.Scripts) != 0 || len(m.Styles) != 0 {
		t.Errorf("Resolve(\"\", \"\") = %+v, want empty manifest", m)
	}
}

func TestResolvePrefersManifest(t *testing.T) {
	manifestPath := writeTempFile(t, "assets.json", `{"scripts": ["/assets/from-manifest.js"]}`)
	indexPath := writeTempFile(t, "index.html", `<html><body><script src="/assets/from-html.js"></script></body></html>`)

	m, err := Resolve(manifestPath, indexPath)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(m.Scripts) != 1 || m.Scripts[0] != "/assets/from-manifest.js" {
		t.Errorf("Scripts = %v, want the manifest entry", m.Scripts)
	}
}
