// Package ogimage renders the fixed-size (1200×630) OpenGraph preview
// images used for social link previews: a large wrapped title pinned
// top-left and a footer row with the post date on the left and the site
// label on the right.
package ogimage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Canvas dimensions expected by OpenGraph consumers.
const (
	Width  = 1200
	Height = 630
)

const (
	titleSize  = 64
	footerSize = 28
	marginX    = 84
	marginY    = 84

	// Title lines wrap at 86% of the canvas width.
	maxTitleWidth = Width * 86 / 100
)

var (
	background  = color.RGBA{R: 0x0f, G: 0x17, B: 0x2a, A: 0xff}
	titleColor  = color.RGBA{R: 0xf8, G: 0xfa, B: 0xfc, A: 0xff}
	footerColor = color.RGBA{R: 0x94, G: 0xa3, B: 0xb8, A: 0xff}
)

// Request describes one image: the post title and date plus the fixed
// site label shown in the footer.
type Request struct {
	Title     string
	Date      string
	SiteLabel string
}

// Renderer composes OG images. It is stateless apart from the font source;
// the same request always yields byte-identical PNG output for a given set
// of loaded fonts.
type Renderer struct {
	fonts *FontSource
}

// New creates a Renderer over the given font source. A nil source gets a
// default one (remote webfont with bundled fallback).
func New(fonts *FontSource) *Renderer {
	if fonts == nil {
		fonts = NewFontSource("", nil)
	}
	return &Renderer{fonts: fonts}
}

// Render lays out the request onto a 1200×630 canvas and encodes it as PNG.
func (r *Renderer) Render(ctx context.Context, req Request) ([]byte, error) {
	titleFace, err := opentype.NewFace(r.fonts.Bold(ctx), &opentype.FaceOptions{
		Size:    titleSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("ogimage: title face: %w", err)
	}
	defer titleFace.Close()

	footerFace, err := opentype.NewFace(r.fonts.Regular(ctx), &opentype.FaceOptions{
		Size:    footerSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("ogimage: footer face: %w", err)
	}
	defer footerFace.Close()

	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	// Title block, top-left, wrapped.
	metrics := titleFace.Metrics()
	lineHeight := metrics.Height.Ceil() * 6 / 5
	y := marginY + metrics.Ascent.Ceil()
	d := &font.Drawer{Dst: img, Src: image.NewUniform(titleColor), Face: titleFace}
	for _, line := range wrap(titleFace, req.Title, fixed.I(maxTitleWidth)) {
		d.Dot = fixed.P(marginX, y)
		d.DrawString(line)
		y += lineHeight
	}

	// Footer row, bottom-aligned: date left, site label right.
	baseline := Height - marginY
	fd := &font.Drawer{Dst: img, Src: image.NewUniform(footerColor), Face: footerFace}
	if req.Date != "" {
		fd.Dot = fixed.P(marginX, baseline)
		fd.DrawString(req.Date)
	}
	if req.SiteLabel != "" {
		width := font.MeasureString(footerFace, req.SiteLabel)
		fd.Dot = fixed.Point26_6{X: fixed.I(Width-marginX) - width, Y: fixed.I(baseline)}
		fd.DrawString(req.SiteLabel)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("ogimage: encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// wrap splits text into lines no wider than maxWidth. A single word wider
// than maxWidth gets its own line rather than being broken mid-word.
func wrap(face font.Face, text string, maxWidth fixed.Int26_6) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		candidate := line + " " + w
		if font.MeasureString(face, candidate) > maxWidth {
			lines = append(lines, line)
			line = w
			continue
		}
		line = candidate
	}
	return append(lines, line)
}
