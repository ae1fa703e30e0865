package content

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"
)

// Get renders the post identified by slug. A missing file, a draft slug,
// or a slug that is not a plain filename all yield ErrNotFound. Rendering
// is deterministic: the same file always produces byte-identical HTML.
func (s *Store) Get(slug string) (Post, error) {
	data, err := s.read(slug)
	if err != nil {
		return Post{}, err
	}
	fm, body, err := parseFrontmatter(data)
	if err != nil {
		return Post{}, fmt.Errorf("content: %s: %w", slug, err)
	}
	var buf bytes.Buffer
	if err := s.md.Convert(body, &buf); err != nil {
		return Post{}, fmt.Errorf("content: render %s: %w", slug, err)
	}
	fm.Slug = slug
	return Post{Frontmatter: fm, HTML: buf.String()}, nil
}

// Meta parses only the frontmatter of slug's file, for callers that need
// title/date without rendering the body (OG images, listings).
func (s *Store) Meta(slug string) (Summary, error) {
	data, err := s.read(slug)
	if err != nil {
		return Summary{}, err
	}
	fm, _, err := parseFrontmatter(data)
	if err != nil {
		return Summary{}, fmt.Errorf("content: %s: %w", slug, err)
	}
	fm.Slug = slug
	return fm, nil
}

func (s *Store) read(slug string) ([]byte, error) {
	if !validSlug(slug) {
		return nil, ErrNotFound
	}
	data, err := os.ReadFile(filepath.Join(s.dir, slug+markdownExt))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("content: read %s: %w", slug, err)
	}
	return data, nil
}

// validSlug rejects drafts and anything that could escape the content
// directory. Slugs are plain filenames, never paths.
func validSlug(slug string) bool {
	if slug == "" || strings.HasPrefix(slug, draftPrefix) {
		return false
	}
	if strings.ContainsAny(slug, `/\`) || strings.Contains(slug, "..") {
		return false
	}
	return true
}

func parseFrontmatter(data []byte) (Frontmatter, []byte, error) {
	var fm Frontmatter
	body, err := frontmatter.Parse(bytes.NewReader(data), &fm)
	if err != nil {
		return Frontmatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}
	return fm, body, nil
}
