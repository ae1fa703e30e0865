// Package views renders the site's pages as templ components. Components
// are built with templ.ComponentFunc so the package stays plain Go; markup
// is written into a strings.Builder and emitted in one write.
package views

import (
	"context"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/avello/notesite/content"
)

func component(build func(b *strings.Builder)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		build(&b)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func esc(s string) string {
	return html.EscapeString(s)
}

// layout writes the shared document shell: head with SEO/OpenGraph metadata,
// site header and navigation, the page body, and the footer.
func layout(cfg SiteConfig, meta PageMeta, jsonLD string, body func(b *strings.Builder)) templ.Component {
	return component(func(b *strings.Builder) {
		b.WriteString(`<!DOCTYPE html><html lang="en"><head>`)
		b.WriteString(`<meta charset="utf-8"/>`)
		b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1"/>`)
		b.WriteString(`<title>` + esc(meta.Title) + `</title>`)
		if meta.Description != "" {
			b.WriteString(`<meta name="description" content="` + esc(meta.Description) + `"/>`)
		}
		b.WriteString(`<link rel="canonical" href="` + esc(meta.URL) + `"/>`)
		b.WriteString(`<meta property="og:title" content="` + esc(meta.Title) + `"/>`)
		if meta.Description != "" {
			b.WriteString(`<meta property="og:description" content="` + esc(meta.Description) + `"/>`)
		}
		b.WriteString(`<meta property="og:url" content="` + esc(meta.URL) + `"/>`)
		b.WriteString(`<meta property="og:type" content="` + esc(meta.OGType) + `"/>`)
		b.WriteString(`<meta property="og:site_name" content="` + esc(cfg.Name) + `"/>`)
		if meta.Image != "" {
			b.WriteString(`<meta property="og:image" content="` + esc(meta.Image) + `"/>`)
			b.WriteString(`<meta property="og:image:width" content="1200"/>`)
			b.WriteString(`<meta property="og:image:height" content="630"/>`)
			b.WriteString(`<meta name="twitter:card" content="summary_large_image"/>`)
			b.WriteString(`<meta name="twitter:image" content="` + esc(meta.Image) + `"/>`)
		}
		if jsonLD != "" {
			b.WriteString(`<script type="application/ld+json">` + jsonLD + `</script>`)
		}
		b.WriteString(`<link rel="icon" href="/favicon.svg" type="image/svg+xml"/>`)
		b.WriteString(`<link rel="stylesheet" href="/public/styles.css"/>`)
		b.WriteString(`</head><body>`)
		b.WriteString(`<header class="site-header"><a class="site-title" href="/">` + esc(cfg.Author) + `</a>`)
		b.WriteString(`<nav><a href="/notes/">Notes</a></nav></header>`)
		b.WriteString(`<main>`)
		body(b)
		b.WriteString(`</main>`)
		b.WriteString(`<footer class="site-footer"><nav><a href="/privacy/">Privacy</a> <a href="/imprint/">Imprint</a></nav></footer>`)
		b.WriteString(`</body></html>`)
	})
}

// Home is the portfolio landing page: intro plus the latest notes.
func Home(cfg SiteConfig, latest []content.Summary) templ.Component {
	meta := PageMeta{
		Title:       cfg.Author,
		Description: cfg.Description,
		URL:         buildURL(cfg.URL),
		OGType:      "website",
		Image:       OGImageURL(cfg, ""),
	}
	return layout(cfg, meta, WebsiteJsonLD(cfg), func(b *strings.Builder) {
		b.WriteString(`<section class="intro"><h1>` + esc(cfg.Author) + `</h1>`)
		b.WriteString(`<p>` + esc(cfg.Description) + `</p></section>`)
		b.WriteString(`<section class="latest"><h2><a href="/notes/">` + esc(cfg.Name) + `</a></h2>`)
		writePostList(b, cfg, latest)
		b.WriteString(`</section>`)
	})
}

// NotesIndex is the notes listing page, optionally filtered by tag.
func NotesIndex(cfg SiteConfig, posts []content.Summary, activeTag string, tags []string) templ.Component {
	meta := PageMeta{
		Title:       cfg.Name,
		Description: cfg.Description,
		URL:         buildURL(cfg.URL, "notes"),
		OGType:      "website",
		Image:       OGImageURL(cfg, ""),
	}
	return layout(cfg, meta, WebsiteJsonLD(cfg), func(b *strings.Builder) {
		b.WriteString(`<h1>` + esc(cfg.Name) + `</h1>`)
		if len(tags) > 0 {
			b.WriteString(`<nav class="tags">`)
			for _, t := range tags {
				class := "tag"
				if strings.EqualFold(t, activeTag) {
					class = "tag active"
				}
				b.WriteString(`<a class="` + class + `" href="/notes/?tag=` + esc(t) + `">` + esc(t) + `</a>`)
			}
			b.WriteString(`</nav>`)
		}
		writePostList(b, cfg, posts)
	})
}

// Post is the single-note page.
func Post(cfg SiteConfig, post content.Post) templ.Component {
	meta := PageMeta{
		Title:       post.Title,
		Description: post.Description,
		URL:         buildURL(cfg.URL, "notes", post.Slug),
		OGType:      "article",
		Image:       OGImageURL(cfg, post.Slug),
	}
	return layout(cfg, meta, BlogPostingJsonLD(cfg, post.Frontmatter), func(b *strings.Builder) {
		b.WriteString(`<article class="note">`)
		b.WriteString(`<h1>` + esc(post.Title) + `</h1>`)
		b.WriteString(`<p class="note-meta"><time datetime="` + esc(post.Date) + `">` + esc(post.Date) + `</time>`)
		if len(post.Tags) > 0 {
			b.WriteString(` · <span class="note-tags">` + esc(JoinTags(post.Tags)) + `</span>`)
		}
		b.WriteString(`</p>`)
		// Post bodies are our own trusted files; the rendered HTML is
		// emitted verbatim.
		b.WriteString(`<div class="note-body">` + post.HTML + `</div>`)
		b.WriteString(`</article>`)
	})
}

// NotFound is the styled 404 page.
func NotFound(cfg SiteConfig) templ.Component {
	meta := PageMeta{Title: "Not found", URL: buildURL(cfg.URL), OGType: "website"}
	return layout(cfg, meta, "", func(b *strings.Builder) {
		b.WriteString(`<h1>Post not found</h1><p>The page you are looking for does not exist. <a href="/notes/">Back to notes.</a></p>`)
	})
}

// ServerError is the styled 500 page.
func ServerError(cfg SiteConfig) templ.Component {
	meta := PageMeta{Title: "Something went wrong", URL: buildURL(cfg.URL), OGType: "website"}
	return layout(cfg, meta, "", func(b *strings.Builder) {
		b.WriteString(`<h1>Something went wrong</h1><p>Please try again later.</p>`)
	})
}

func writePostList(b *strings.Builder, cfg SiteConfig, posts []content.Summary) {
	if len(posts) == 0 {
		b.WriteString(`<p class="empty">No notes yet.</p>`)
		return
	}
	b.WriteString(`<ul class="post-list">`)
	for _, p := range posts {
		b.WriteString(`<li><article>`)
		b.WriteString(`<h3><a href="` + esc(buildURL(cfg.URL, "notes", p.Slug)) + `">` + esc(p.Title) + `</a></h3>`)
		b.WriteString(`<time datetime="` + esc(p.Date) + `">` + esc(p.Date) + `</time>`)
		if p.Description != "" {
			b.WriteString(`<p>` + esc(p.Description) + `</p>`)
		}
		b.WriteString(`</article></li>`)
	}
	b.WriteString(`</ul>`)
}
