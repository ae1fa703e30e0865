package content

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"sort"
	"strings"
)

// List returns one Summary per includable content file, newest first.
// A missing content directory yields an empty listing, not an error.
// A file whose frontmatter fails to parse is skipped and logged so one
// malformed file cannot take down the whole listing.
func (s *Store) List() ([]Summary, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("content: list %s: %w", s.dir, err)
	}

	var posts []Summary
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !includable(name) {
			continue
		}
		slug := strings.TrimSuffix(name, markdownExt)
		fm, err := s.Meta(slug)
		if err != nil {
			log.Printf("content: skipping %s: %v", name, err)
			continue
		}
		posts = append(posts, fm)
	}

	// ISO dates sort lexically. Malformed dates land wherever the string
	// comparison puts them; ties keep encounter (directory) order.
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Date > posts[j].Date
	})
	return posts, nil
}

// Tags returns the unique tags across all listable posts, sorted.
func (s *Store) Tags() ([]string, error) {
	posts, err := s.List()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	var tags []string
	for _, p := range posts {
		for _, t := range p.Tags {
			key := normalizeTag(t)
			if key == "" {
				continue
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			tags = append(tags, strings.TrimSpace(t))
		}
	}
	sort.Strings(tags)
	return tags, nil
}

// FilterByTag returns the posts carrying the given tag. An empty tag
// returns the input unchanged.
func FilterByTag(posts []Summary, tag string) []Summary {
	if tag == "" {
		return posts
	}
	normalized := normalizeTag(tag)
	var filtered []Summary
	for _, p := range posts {
		for _, t := range p.Tags {
			if normalizeTag(t) == normalized {
				filtered = append(filtered, p)
				break
			}
		}
	}
	return filtered
}

// includable reports whether a directory entry is a listable post file.
// Names starting with an underscore are drafts/templates and never listed.
func includable(name string) bool {
	return strings.HasSuffix(name, markdownExt) && !strings.HasPrefix(name, draftPrefix)
}

func normalizeTag(t string) string {
	return strings.ToLower(strings.TrimSpace(t))
}
