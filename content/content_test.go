package content

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, dir, name, data string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func notesFile(title, date, description string, tags []string, body string) string {
	out := "---\ntitle: \"" + title + "\"\ndate: \"" + date + "\"\n"
	if description != "" {
		out += "description: \"" + description + "\"\n"
	}
	if len(tags) > 0 {
		out += "tags:\n"
		for _, tg := range tags {
			out += "  - " + tg + "\n"
		}
	}
	return out + "---\n\n" + body
}

func TestListOneSummaryPerFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "2026-02-12-example.md", notesFile("Test Post", "2026-02-12", "An example.", []string{"A", "B"}, "Hello **world**"))
	writeFile(t, dir, "2025-11-01-older.md", notesFile("Older Post", "2025-11-01", "", nil, "Body"))

	posts, err := New(dir).List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("List returned %d posts, want 2", len(posts))
	}

	got := posts[0]
	want := Summary{
		Slug:        "2026-02-12-example",
		Title:       "Test Post",
		Date:        "2026-02-12",
		Description: "An example.",
		Tags:        []string{"A", "B"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("summary = %+v, want %+v", got, want)
	}
}

func TestListSortedByDateDescending(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.md", notesFile("A", "2024-03-01", "", nil, ""))
	writeFile(t, dir, "b.md", notesFile("B", "2026-01-15", "", nil, ""))
	writeFile(t, dir, "c.md", notesFile("C", "2025-07-30", "", nil, ""))

	posts, err := New(dir).List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	for i := 1; i < len(posts); i++ {
		if posts[i-1].Date < posts[i].Date {
			t.Errorf("posts out of order: %s (%s) before %s (%s)",
				posts[i-1].Slug, posts[i-1].Date, posts[i].Slug, posts[i].Date)
		}
	}
}

func TestListExcludesDraftsAndNonMarkdown(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "post.md", notesFile("Post", "2026-01-01", "", nil, ""))
	writeFile(t, dir, "_template.md", notesFile("Template", "2026-01-02", "", nil, ""))
	writeFile(t, dir, "notes.txt", "not markdown")

	posts, err := New(dir).List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(posts) != 1 || posts[0].Slug != "post" {
		t.Errorf("List = %+v, want only 'post'", posts)
	}
}

func TestListMissingDirectory(t *testing.T) {
	posts, err := New(filepath.Join(t.TempDir(), "does-not-exist")).List()
	if err != nil {
		t.Fatalf("List on missing dir returned error: %v", err)
	}
	if len(posts) != 0 {
		t.Errorf("List on missing dir = %+v, want empty", posts)
	}
}

func TestListEmptyDirectory(t *testing.T) {
	posts, err := New(t.TempDir()).List()
	if err != nil {
		t.Fatalf("List on empty dir returned error: %v", err)
	}
	if len(posts) != 0 {
		t.Errorf("List on empty dir = %+v, want empty", posts)
	}
}

func TestListSkipsMalformedFrontmatter(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good.md", notesFile("Good", "2026-01-01", "", nil, ""))
	writeFile(t, dir, "bad.md", "---\ntitle: [unclosed\n---\nbody")

	posts, err := New(dir).List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(posts) != 1 || posts[0].Slug != "good" {
		t.Errorf("List = %+v, want only 'good'", posts)
	}
}

func TestTags(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.md", notesFile("A", "2026-01-01", "", []string{"Compose", "Testing"}, ""))
	writeFile(t, dir, "b.md", notesFile("B", "2026-01-02", "", []string{"testing", "Gradle"}, ""))

	tags, err := New(dir).Tags()
	if err != nil {
		t.Fatalf("Tags failed: %v", err)
	}
	// Duplicates differing only by case collapse to the spelling seen
	// first, i.e. in the newest post.
	want := []string{"Compose", "Gradle", "testing"}
	if !reflect.DeepEqual(tags, want) {
		t.Errorf("Tags = %v, want %v", tags, want)
	}
}

func TestFilterByTag(t *testing.T) {
	posts := []Summary{
		{Slug: "a", Tags: []string{"Compose"}},
		{Slug: "b", Tags: []string{"Gradle", "compose"}},
		{Slug: "c", Tags: []string{"Testing"}},
	}

	filtered := FilterByTag(posts, "Compose")
	if len(filtered) != 2 || filtered[0].Slug != "a" || filtered[1].Slug != "b" {
		t.Errorf("FilterByTag = %+v, want posts a and b", filtered)
	}

	if got := FilterByTag(posts, ""); len(got) != 3 {
		t.Errorf("FilterByTag with empty tag = %d posts, want all 3", len(got))
	}
}
