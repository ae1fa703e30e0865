// Package content implements the markdown content store behind the notes
// section. Posts live as UTF-8 markdown files with a YAML frontmatter block;
// the store lists post summaries and renders individual posts to HTML.
// Every read recomputes from the filesystem — the store holds no cache and
// has no write path.
package content

import (
	"errors"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
)

// ErrNotFound is returned when a requested post does not exist.
var ErrNotFound = errors.New("content: post not found")

const (
	markdownExt = ".md"
	draftPrefix = "_"
)

// Frontmatter is the typed metadata block at the top of every content file.
// Date is kept as the literal YYYY-MM-DD string from the file; listings sort
// it lexically.
type Frontmatter struct {
	Slug        string   `yaml:"-"`
	Title       string   `yaml:"title"`
	Date        string   `yaml:"date"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
}

// A Summary describes one post in listings; it carries no body.
type Summary = Frontmatter

// Post is a fully rendered post: frontmatter plus the HTML body.
// HTML is trusted content rendered from our own files and is emitted
// without further escaping. An empty body yields an empty string.
type Post struct {
	Frontmatter
	HTML string
}

// Store reads markdown content files from a single directory on disk.
// The directory is passed in explicitly so nothing couples to the
// process working directory.
type Store struct {
	dir string
	md  goldmark.Markdown
}

// New creates a Store over the given content directory. The directory does
// not have to exist; a missing directory just yields empty listings.
func New(dir string) *Store {
	return &Store{dir: dir, md: newMarkdown()}
}

// newMarkdown builds the CommonMark+GFM pipeline used for post bodies.
// Raw embedded HTML passes through verbatim (we trust our own content
// files), and fenced code blocks get chroma syntax highlighting with
// inline styles so rendered posts need no highlighter stylesheet.
func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github-dark"),
				highlighting.WithFormatOptions(
					chromahtml.WithLineNumbers(false),
				),
			),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)
}
