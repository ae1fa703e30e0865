package notesite

import (
	"github.com/avello/notesite/content"
	"github.com/avello/notesite/ogimage"
)

// SiteConfig holds all configuration for a notesite instance.
type SiteConfig struct {
	Name        string // Notes section name (default "Android Engineering Notes")
	URL         string // Canonical URL (default "http://localhost:3000")
	Description string // Site description for meta tags and the home intro
	Author      string // Author name for the header and JSON-LD

	Addr       string // Listen address (default ":3000")
	ContentDir string // Markdown content directory (default "content/notes")

	OGImageVersion string // Cache-buster token embedded in OG image URLs
	FontFamily     string // Remote webfont family for OG images (default "Inter")
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Android Engineering Notes"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.ContentDir == "" {
		c.ContentDir = "content/notes"
	}
	if c.FontFamily == "" {
		c.FontFamily = "Inter"
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance after
// the standard set is wired.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithContentStore replaces the default filesystem content store.
func WithContentStore(s *content.Store) Option {
	return func(a *App) {
		a.Content = s
	}
}

// WithOGRenderer replaces the default OG image renderer, e.g. to use a
// custom font source.
func WithOGRenderer(r *ogimage.Renderer) Option {
	return func(a *App) {
		a.OGImage = r
	}
}
