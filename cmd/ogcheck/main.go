// ogcheck verifies the OpenGraph contract of a rendered page: the og:title,
// og:image, and twitter:image meta tags are present, and the referenced
// image URL actually serves an image. Each failure class has its own exit
// code so deploy scripts can tell them apart.
package main

import (
	"fmt"
	"html"
	"io"
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// Exit codes, one per failure class.
const (
	exitOK          = 0
	exitUsage       = 1
	exitPageFetch   = 2
	exitMissingTags = 3
	exitImageFetch  = 4
	exitContentType = 5
)

var requiredTags = []string{"og:title", "og:image", "twitter:image"}

var (
	metaTagPattern = regexp.MustCompile(`<meta\b[^>]*>`)
	contentPattern = regexp.MustCompile(`content="([^"]*)"`)
)

func main() {
	var (
		pageURL = pflag.String("url", "", "full URL of the page to check")
		base    = pflag.String("base", "http://localhost:3000", "site base URL, used with --slug")
		slug    = pflag.String("slug", "", "note slug to check against --base")
		timeout = pflag.Duration("timeout", 10*time.Second, "HTTP timeout per request")
	)
	pflag.Parse()

	target := *pageURL
	if target == "" && *slug != "" {
		target = strings.TrimSuffix(*base, "/") + "/notes/" + *slug + "/"
	}
	if target == "" {
		fmt.Fprintln(os.Stderr, "ogcheck: either --url or --slug is required")
		pflag.Usage()
		os.Exit(exitUsage)
	}

	client := &http.Client{Timeout: *timeout}
	os.Exit(run(client, target))
}

func run(client *http.Client, target string) int {
	doc, err := fetchPage(client, target)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ogcheck: fetch page %s: %v\n", target, err)
		return exitPageFetch
	}

	tags := make(map[string]string, len(requiredTags))
	var missing []string
	for _, key := range requiredTags {
		v := metaContent(doc, key)
		if v == "" {
			missing = append(missing, key)
			continue
		}
		tags[key] = v
	}
	if len(missing) > 0 {
		fmt.Fprintf(os.Stderr, "ogcheck: %s: missing meta tags: %s\n", target, strings.Join(missing, ", "))
		return exitMissingTags
	}
	fmt.Printf("og:title   %s\n", tags["og:title"])
	fmt.Printf("og:image   %s\n", tags["og:image"])

	status, contentType, err := checkImage(client, tags["og:image"])
	if err != nil {
		fmt.Fprintf(os.Stderr, "ogcheck: fetch image %s: %v\n", tags["og:image"], err)
		return exitImageFetch
	}
	if status < 200 || status > 299 {
		fmt.Fprintf(os.Stderr, "ogcheck: image %s: status %d\n", tags["og:image"], status)
		return exitImageFetch
	}
	if !strings.HasPrefix(contentType, "image/") {
		fmt.Fprintf(os.Stderr, "ogcheck: image %s: content type %q is not image/*\n", tags["og:image"], contentType)
		return exitContentType
	}

	fmt.Printf("ok: image serves %s (status %d)\n", contentType, status)
	return exitOK
}

func fetchPage(client *http.Client, target string) (string, error) {
	resp, err := client.Get(target)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// metaContent extracts the content attribute of the meta tag whose property
// or name attribute equals key. Pattern matching, not HTML parsing — the
// pages under test are our own output.
func metaContent(doc, key string) string {
	for _, tag := range metaTagPattern.FindAllString(doc, -1) {
		if !strings.Contains(tag, `property="`+key+`"`) && !strings.Contains(tag, `name="`+key+`"`) {
			continue
		}
		if m := contentPattern.FindStringSubmatch(tag); m != nil {
			return html.UnescapeString(m[1])
		}
	}
	return ""
}

func checkImage(client *http.Client, target string) (status int, contentType string, err error) {
	resp, err := client.Get(target)
	if err != nil {
		return 0, "", err
	}
	defer resp.Body.Close()
	// Drain so the connection can be reused; the bytes themselves don't matter.
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode, resp.Header.Get("Content-Type"), nil
}
