package notesite

import (
	"bytes"
	"errors"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/avello/notesite/ogimage"
)

// errTransport keeps tests offline: every remote font fetch fails and the
// renderer falls back to the bundled fonts.
type errTransport struct{}

func (errTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, errors.New("offline")
}

func writeNote(t *testing.T, dir, name, frontmatter, body string) {
	t.Helper()
	data := "---\n" + frontmatter + "---\n\n" + body
	if err := os.WriteFile(filepath.Join(dir, name), []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	dir := t.TempDir()
	writeNote(t, dir, "2026-02-12-example.md",
		"title: \"Test Post\"\ndate: \"2026-02-12\"\ndescription: \"An example.\"\ntags:\n  - A\n  - B\n",
		"Hello **world**")
	writeNote(t, dir, "2025-11-01-older.md",
		"title: \"Older Post\"\ndate: \"2025-11-01\"\ntags:\n  - C\n",
		"Older body")
	writeNote(t, dir, "_template.md",
		"title: \"Template\"\ndate: \"2026-01-01\"\n",
		"Template body")

	cfg := SiteConfig{
		URL:            "https://example.dev",
		Author:         "Jane Example",
		Description:    "Notes on Android engineering.",
		ContentDir:     dir,
		OGImageVersion: "v2",
	}
	offline := &http.Client{Transport: errTransport{}}
	return New(cfg, WithOGRenderer(ogimage.New(ogimage.NewFontSource("Inter", offline))))
}

func get(t *testing.T, a *App, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	a.Echo.ServeHTTP(rec, req)
	return rec
}

func TestHandleHome(t *testing.T) {
	rec := get(t, newTestApp(t), "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET / = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Test Post") {
		t.Error("home page missing latest note")
	}
	if !strings.Contains(body, "Jane Example") {
		t.Error("home page missing author")
	}
}

func TestHandlePost(t *testing.T) {
	rec := get(t, newTestApp(t), "/notes/2026-02-12-example/")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET post = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "<strong>world</strong>") {
		t.Error("post body was not rendered from markdown")
	}
	if !strings.Contains(body, `property="og:title" content="Test Post"`) {
		t.Error("post page missing og:title meta tag")
	}
	if !strings.Contains(body, "/notes/2026-02-12-example/opengraph-image.png?v=v2") {
		t.Error("post page missing versioned og:image URL")
	}
}

func TestHandlePostNotFound(t *testing.T) {
	app := newTestApp(t)

	rec := get(t, app, "/notes/no-such-post/")
	if rec.Code != http.StatusNotFound {
		t.Errorf("GET missing post = %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Post not found") {
		t.Error("404 page missing not-found message")
	}

	// Drafts are never resolvable through the normal lookup path.
	if rec := get(t, app, "/notes/_template/"); rec.Code != http.StatusNotFound {
		t.Errorf("GET draft = %d, want 404", rec.Code)
	}
}

func TestHandleNotesListing(t *testing.T) {
	app := newTestApp(t)

	rec := get(t, app, "/notes/")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /notes/ = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Test Post") || !strings.Contains(body, "Older Post") {
		t.Error("listing missing posts")
	}
	if strings.Contains(body, "Template") {
		t.Error("listing includes draft template")
	}
	// Newest first.
	if strings.Index(body, "Test Post") > strings.Index(body, "Older Post") {
		t.Error("listing not sorted newest first")
	}

	filtered := get(t, app, "/notes/?tag=C").Body.String()
	if strings.Contains(filtered, "Test Post") || !strings.Contains(filtered, "Older Post") {
		t.Error("tag filter did not narrow the listing")
	}
}

func TestHandlePostImage(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{
		"/notes/2026-02-12-example/opengraph-image.png",
		"/notes/unknown-slug/opengraph-image.png", // falls back, never 404s
		"/notes/opengraph-image.png",
	} {
		rec := get(t, app, path)
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s = %d, want 200", path, rec.Code)
			continue
		}
		if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "image/png") {
			t.Errorf("GET %s content type = %q, want image/png", path, ct)
			continue
		}
		img, err := png.Decode(bytes.NewReader(rec.Body.Bytes()))
		if err != nil {
			t.Errorf("GET %s: invalid PNG: %v", path, err)
			continue
		}
		if img.Bounds().Dx() != ogimage.Width || img.Bounds().Dy() != ogimage.Height {
			t.Errorf("GET %s: image is %v, want %dx%d", path, img.Bounds(), ogimage.Width, ogimage.Height)
		}
	}
}

func TestHandleSitemap(t *testing.T) {
	rec := get(t, newTestApp(t), "/sitemap.xml")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /sitemap.xml = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/xml") {
		t.Errorf("sitemap content type = %q", ct)
	}
	body := rec.Body.String()
	for _, want := range []string{
		"<loc>https://example.dev</loc>",
		"<loc>https://example.dev/notes/</loc>",
		"<loc>https://example.dev/notes/2026-02-12-example/</loc>",
		"<lastmod>2026-02-12</lastmod>",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("sitemap missing %q", want)
		}
	}
	if strings.Contains(body, "_template") {
		t.Error("sitemap includes draft template")
	}
}

func TestHandleRobots(t *testing.T) {
	rec := get(t, newTestApp(t), "/robots.txt")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /robots.txt = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{
		"User-agent: *\nAllow: /",
		"User-agent: GPTBot",
		"User-agent: ClaudeBot",
		"Sitemap: https://example.dev/sitemap.xml",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("robots.txt missing %q", want)
		}
	}
}

func TestHandleFeed(t *testing.T) {
	rec := get(t, newTestApp(t), "/feed.xml")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /feed.xml = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "<rss") || !strings.Contains(body, "Test Post") {
		t.Errorf("feed output unexpected: %q", body)
	}
}

func TestHandleLegalPages(t *testing.T) {
	app := newTestApp(t)
	for path, want := range map[string]string{
		"/privacy/": "Privacy Policy",
		"/imprint/": "Imprint",
	} {
		rec := get(t, app, path)
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s = %d, want 200", path, rec.Code)
			continue
		}
		if !strings.Contains(rec.Body.String(), want) {
			t.Errorf("GET %s missing %q", path, want)
		}
	}
}

func TestEmptyContentDirServes(t *testing.T) {
	offline := &http.Client{Transport: errTransport{}}
	app := New(SiteConfig{ContentDir: filepath.Join(t.TempDir(), "missing")},
		WithOGRenderer(ogimage.New(ogimage.NewFontSource("Inter", offline))))

	for _, path := range []string{"/", "/notes/", "/sitemap.xml", "/feed.xml"} {
		if rec := get(t, app, path); rec.Code != http.StatusOK {
			t.Errorf("GET %s with missing content dir = %d, want 200", path, rec.Code)
		}
	}
}
