package views

// SiteConfig holds site-wide settings populated from environment variables.
// Every handler passes this to templates so nothing is hardcoded.
type SiteConfig struct {
	Name           string // SITE_NAME
	URL            string // SITE_URL
	Description    string // SITE_DESCRIPTION
	Author         string // SITE_AUTHOR
	OGImageVersion string // cache-buster token for OG image URLs
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head>.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
	Image       string // og:image + twitter:image, absolute URL
}
