package arbor

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/rivo/uniseg"
	"golang.org/x/image/font/gofont/goregular"
)

// Font is the interface for text measurement.
type Font interface {
	MeasureString(text string) (width, height float64)
	LineHeight() float64
}

// FaceFont is a Font that can also be rendered with Ebitengine's text/v2.
type FaceFont interface {
	Font
	Face() text.Face
}

// TTFFont wraps Ebitengine's text/v2 for TrueType font rendering.
type TTFFont struct {
	face   *text.GoTextFace
	source *text.GoTextFaceSource
	size   float64
	lh     float64 // cached line height
}

// LoadTTFFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadTTFFont(ttfData []byte, size float64) (*TTFFont, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("arbor: failed to parse TTF data: %w", err)
	}

	face := &text.GoTextFace{
		Source: source,
		Size:   size,
	}

	m := face.Metrics()
	lh := math.Ceil(m.HAscent + m.HDescent + m.HLineGap)

	return &TTFFont{
		face:   face,
		source: source,
		size:   size,
		lh:     lh,
	}, nil
}

// defaultFonts caches DefaultFont results by size (arbor is single-threaded).
var defaultFonts = map[float64]*TTFFont{}

// DefaultFont returns the Go Regular face at the given size.
func DefaultFont(size float64) *TTFFont {
	if f, ok := defaultFonts[size]; ok {
		return f
	}
	f, err := LoadTTFFont(goregular.TTF, size)
	if err != nil {
		// goregular is embedded and known-good.
		panic(err)
	}
	defaultFonts[size] = f
	return f
}

// MeasureString returns the width and height of the rendered text.
func (f *TTFFont) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical distance between baselines.
func (f *TTFFont) LineHeight() float64 {
	return f.lh
}

// Size returns the point size the font was loaded at.
func (f *TTFFont) Size() float64 {
	return f.size
}

// Face returns the underlying face for direct text/v2 rendering.
func (f *TTFFont) Face() text.Face {
	return f.face
}

// --- Measurement helpers ---

// textWidth returns the rendered width of s in whole pixels.
func textWidth(f Font, s string) int {
	if f == nil || s == "" {
		return 0
	}
	w, _ := f.MeasureString(s)
	return int(math.Ceil(w))
}

// lineHeight returns the font's line height in whole pixels (at least 1).
func lineHeight(f Font) int {
	if f == nil {
		return 1
	}
	lh := int(math.Ceil(f.LineHeight()))
	if lh < 1 {
		return 1
	}
	return lh
}

// graphemes splits s into user-perceived characters.
func graphemes(s string) []string {
	var out []string
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// WrapText breaks s into lines no wider than width, splitting on spaces and
// explicit newlines. A single word wider than width is broken between
// characters. A width <= 0 disables wrapping.
func WrapText(f Font, s string, width int) []string {
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		if width <= 0 {
			lines = append(lines, para)
			continue
		}
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		cur := ""
		for _, w := range words {
			candidate := w
			if cur != "" {
				candidate = cur + " " + w
			}
			if textWidth(f, candidate) <= width {
				cur = candidate
				continue
			}
			if cur != "" {
				lines = append(lines, cur)
				cur = ""
			}
			if textWidth(f, w) <= width {
				cur = w
				continue
			}
			// Break an overlong word between characters.
			for _, g := range graphemes(w) {
				if cur != "" && textWidth(f, cur+g) > width {
					lines = append(lines, cur)
					cur = ""
				}
				cur += g
			}
		}
		lines = append(lines, cur)
	}
	return lines
}
