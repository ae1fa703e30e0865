// Package notesite is a personal portfolio and technical-notes site built
// with Go, Echo, and templ. It serves a home page, a markdown-backed notes
// section, dynamically rendered OpenGraph preview images, legal pages, and
// sitemap/robots/feed endpoints.
//
// Content is plain markdown files with YAML frontmatter in a directory on
// disk; every request recomputes from the filesystem, so publishing a note
// is just dropping a file.
package notesite

import (
	"log"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"

	"github.com/avello/notesite/content"
	"github.com/avello/notesite/ogimage"
	"github.com/avello/notesite/views"
)

// App is the central application. It wires together the content store, the
// OG image renderer, middleware, and routes.
type App struct {
	Config  SiteConfig
	Echo    *echo.Echo
	Content *content.Store
	OGImage *ogimage.Renderer

	customRoutes []func(*App)
	staticDir    string
}

// New creates an App with the given configuration. Routes and middleware
// are wired immediately, so the Echo instance is servable (and testable)
// without calling Start.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		staticDir: "public",
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.Content == nil {
		a.Content = content.New(cfg.ContentDir)
	}
	if a.OGImage == nil {
		a.OGImage = ogimage.New(ogimage.NewFontSource(cfg.FontFamily, nil))
	}

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}

	return a
}

// Start runs the HTTP server until shutdown.
func (a *App) Start() error {
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.Static("/public", a.staticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)

	e.GET("/", a.handleHome)
	e.GET("/notes/", a.handleNotes)
	e.GET("/notes/opengraph-image.png", a.handleSectionImage)
	e.GET("/notes/:slug/", a.handlePost)
	e.GET("/notes/:slug/opengraph-image.png", a.handlePostImage)

	e.GET("/privacy/", a.handlePrivacy)
	e.GET("/imprint/", a.handleImprint)
}

// viewConfig maps SiteConfig onto the subset the views package needs.
func (a *App) viewConfig() views.SiteConfig {
	return views.SiteConfig{
		Name:           a.Config.Name,
		URL:            a.Config.URL,
		Description:    a.Config.Description,
		Author:         a.Config.Author,
		OGImageVersion: a.Config.OGImageVersion,
	}
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustEnv returns the value of the environment variable key, or fatally exits if empty.
func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("notesite: required environment variable %s is not set", key)
	}
	return v
}
