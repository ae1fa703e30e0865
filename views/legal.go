package views

import (
	"strings"

	"github.com/a-h/templ"
)

// Privacy is the privacy policy page. The site stores nothing and sets no
// cookies, so the text is short and static.
func Privacy(cfg SiteConfig) templ.Component {
	meta := PageMeta{Title: "Privacy Policy", URL: buildURL(cfg.URL, "privacy"), OGType: "website"}
	return layout(cfg, meta, "", func(b *strings.Builder) {
		b.WriteString(`<article class="legal"><h1>Privacy Policy</h1>`)
		b.WriteString(`<p>This site does not set cookies, does not run analytics scripts, and does not collect or store personal data. Standard web server access logs (IP address, requested URL, user agent) may be retained briefly by the hosting provider for operational purposes.</p>`)
		b.WriteString(`<p>Questions can be directed to the contact listed on the <a href="/imprint/">imprint</a> page.</p>`)
		b.WriteString(`</article>`)
	})
}

// Imprint is the legal notice page.
func Imprint(cfg SiteConfig) templ.Component {
	meta := PageMeta{Title: "Imprint", URL: buildURL(cfg.URL, "imprint"), OGType: "website"}
	return layout(cfg, meta, "", func(b *strings.Builder) {
		b.WriteString(`<article class="legal"><h1>Imprint</h1>`)
		b.WriteString(`<p>` + esc(cfg.Author) + `</p>`)
		b.WriteString(`<p>Responsible for the content of this site: ` + esc(cfg.Author) + `. Contact details are available on request via the site repository.</p>`)
		b.WriteString(`</article>`)
	})
}
