package ogimage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"regexp"
	"sync"
	"time"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// ErrFontFormat is returned when the webfont CSS does not contain a
// recognizable font file URL.
var ErrFontFormat = errors.New("ogimage: no font URL in css")

const defaultCSSURL = "https://fonts.googleapis.com/css2?family=%s:wght@%d"

// fontURLPattern extracts the font binary URL from a @font-face src
// declaration in the fetched CSS.
var fontURLPattern = regexp.MustCompile(`src:\s*url\((https?://[^)]+)\)`)

// FontSource resolves the typefaces used by the renderer. It fetches a
// named webfont in two stages (font-face CSS, then the font binary the CSS
// points at) and falls back to the bundled Go fonts whenever the remote
// path fails, so a font-host outage can never fail an image render.
// Fetched fonts are cached for the life of the process.
type FontSource struct {
	family string
	client *http.Client
	cssURL string // fmt template: family, weight

	mu    sync.Mutex
	cache map[int]*sfnt.Font
}

// NewFontSource creates a FontSource for the given font family. A nil
// client gets a default with a timeout, so a hung font host cannot stall
// renders indefinitely.
func NewFontSource(family string, client *http.Client) *FontSource {
	if family == "" {
		family = "Inter"
	}
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &FontSource{
		family: family,
		client: client,
		cssURL: defaultCSSURL,
		cache:  make(map[int]*sfnt.Font),
	}
}

// Bold returns the title typeface (weight 700), falling back to the
// bundled Go Bold when the remote font is unavailable.
func (s *FontSource) Bold(ctx context.Context) *sfnt.Font {
	f, err := s.remote(ctx, 700)
	if err != nil {
		log.Printf("ogimage: remote font %s@700 unavailable, using bundled fallback: %v", s.family, err)
		return fallbackBold()
	}
	return f
}

// Regular returns the footer typeface (weight 400), falling back to the
// bundled Go Regular when the remote font is unavailable.
func (s *FontSource) Regular(ctx context.Context) *sfnt.Font {
	f, err := s.remote(ctx, 400)
	if err != nil {
		log.Printf("ogimage: remote font %s@400 unavailable, using bundled fallback: %v", s.family, err)
		return fallbackRegular()
	}
	return f
}

// remote fetches and parses the webfont at the given weight. The mutex is
// held across the fetch so concurrent renders share a single download per
// weight instead of racing.
func (s *FontSource) remote(ctx context.Context, weight int) (*sfnt.Font, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if f, ok := s.cache[weight]; ok {
		return f, nil
	}

	css, err := s.fetch(ctx, fmt.Sprintf(s.cssURL, url.QueryEscape(s.family), weight))
	if err != nil {
		return nil, err
	}
	m := fontURLPattern.FindSubmatch(css)
	if m == nil {
		return nil, ErrFontFormat
	}
	bin, err := s.fetch(ctx, string(m[1]))
	if err != nil {
		return nil, err
	}
	f, err := opentype.Parse(bin)
	if err != nil {
		return nil, fmt.Errorf("ogimage: parse font %s@%d: %w", s.family, weight, err)
	}
	s.cache[weight] = f
	return f, nil
}

func (s *FontSource) fetch(ctx context.Context, target string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("ogimage: request %s: %w", target, err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ogimage: fetch %s: %w", target, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ogimage: fetch %s: status %d", target, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

var (
	fallbackOnce    sync.Once
	fallbackRegFont *sfnt.Font
	fallbackBldFont *sfnt.Font
)

// The bundled fonts ship as valid TTF bytes inside golang.org/x/image, so
// parse failures here mean a broken build, not bad input.
func loadFallbacks() {
	fallbackOnce.Do(func() {
		var err error
		if fallbackRegFont, err = opentype.Parse(goregular.TTF); err != nil {
			panic(fmt.Sprintf("ogimage: parse bundled regular font: %v", err))
		}
		if fallbackBldFont, err = opentype.Parse(gobold.TTF); err != nil {
			panic(fmt.Sprintf("ogimage: parse bundled bold font: %v", err))
		}
	})
}

func fallbackRegular() *sfnt.Font {
	loadFallbacks()
	return fallbackRegFont
}

func fallbackBold() *sfnt.Font {
	loadFallbacks()
	return fallbackBldFont
}
