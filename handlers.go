package notesite

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/avello/notesite/content"
	"github.com/avello/notesite/ogimage"
	"github.com/avello/notesite/views"
)

// homeLatestCount is how many of the newest notes the home page shows.
const homeLatestCount = 3

func (a *App) handleHome(c echo.Context) error {
	posts, err := a.Content.List()
	if err != nil {
		return err
	}
	if len(posts) > homeLatestCount {
		posts = posts[:homeLatestCount]
	}
	return Render(c, views.Home(a.viewConfig(), posts))
}

func (a *App) handleNotes(c echo.Context) error {
	tag := c.QueryParam("tag")
	posts, err := a.Content.List()
	if err != nil {
		return err
	}
	tags, err := a.Content.Tags()
	if err != nil {
		return err
	}
	return Render(c, views.NotesIndex(a.viewConfig(), content.FilterByTag(posts, tag), tag, tags))
}

func (a *App) handlePost(c echo.Context) error {
	slug := c.Param("slug")
	post, err := a.Content.Get(slug)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return RenderStatus(c, http.StatusNotFound, views.NotFound(a.viewConfig()))
		}
		return err
	}
	return Render(c, views.Post(a.viewConfig(), post))
}

// handlePostImage serves the per-post OG image. An unknown slug degrades to
// the section fallback title with an empty date rather than a 404, so stale
// social-card URLs still render something sensible.
func (a *App) handlePostImage(c echo.Context) error {
	title, date := a.Config.Name, ""
	if meta, err := a.Content.Meta(c.Param("slug")); err == nil {
		title, date = meta.Title, meta.Date
	}
	return a.renderOGImage(c, title, date)
}

// handleSectionImage serves the section-level OG image used by the home and
// listing pages.
func (a *App) handleSectionImage(c echo.Context) error {
	return a.renderOGImage(c, a.Config.Name, "")
}

func (a *App) renderOGImage(c echo.Context, title, date string) error {
	img, err := a.OGImage.Render(c.Request().Context(), ogimage.Request{
		Title:     title,
		Date:      date,
		SiteLabel: siteLabel(a.Config.URL),
	})
	if err != nil {
		return fmt.Errorf("render og image: %w", err)
	}
	return c.Blob(http.StatusOK, "image/png", img)
}

// siteLabel is the fixed identifier shown bottom-right on OG images: the
// site host without scheme.
func siteLabel(siteURL string) string {
	label := strings.TrimPrefix(siteURL, "https://")
	label = strings.TrimPrefix(label, "http://")
	return strings.TrimSuffix(label, "/")
}

func (a *App) handlePrivacy(c echo.Context) error {
	return Render(c, views.Privacy(a.viewConfig()))
}

func (a *App) handleImprint(c echo.Context) error {
	return Render(c, views.Imprint(a.viewConfig()))
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.staticDir + "/favicon.svg")
}

// aiCrawlers are explicitly allowed by name in robots.txt in addition to
// the blanket allow, so their operators see an affirmative policy.
var aiCrawlers = []string{
	"GPTBot",
	"ClaudeBot",
	"Claude-Web",
	"Google-Extended",
	"PerplexityBot",
	"CCBot",
}

func (a *App) handleRobots(c echo.Context) error {
	var b strings.Builder
	b.WriteString("User-agent: *\nAllow: /\n")
	for _, ua := range aiCrawlers {
		fmt.Fprintf(&b, "\nUser-agent: %s\nAllow: /\n", ua)
	}
	fmt.Fprintf(&b, "\nSitemap: %s/sitemap.xml\n", a.Config.URL)
	return c.String(http.StatusOK, b.String())
}

func (a *App) handleSitemap(c echo.Context) error {
	posts, err := a.Content.List()
	if err != nil {
		return err
	}
	return a.renderSitemap(c, posts)
}

func (a *App) handleFeed(c echo.Context) error {
	posts, err := a.Content.List()
	if err != nil {
		return err
	}
	return a.renderRSS(c, posts)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, views.NotFound(a.viewConfig()))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, views.ServerError(a.viewConfig()))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
