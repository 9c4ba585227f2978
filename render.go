package arbor

import (
	"cmp"
	"image"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/colorm"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// subImage returns the part of img covered by r, where r is relative to the
// image's own bounds.
func subImage(img *ebiten.Image, r image.Rectangle) *ebiten.Image {
	return img.SubImage(r.Add(img.Bounds().Min)).(*ebiten.Image)
}

// drawTinted draws img at (x, y), blending its colors toward tint by tint.A.
// Alpha is preserved, so transparent pixels stay transparent.
func drawTinted(dst, img *ebiten.Image, x, y float64, tint Color) {
	if tint.A <= 0 {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(x, y)
		dst.DrawImage(img, op)
		return
	}
	a := tint.A
	if a > 1 {
		a = 1
	}
	var cm colorm.ColorM
	cm.Scale(1-a, 1-a, 1-a, 1)
	cm.Translate(tint.R*a, tint.G*a, tint.B*a, 0)
	op := &colorm.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	colorm.DrawImage(dst, img, cm, op)
}

// fillRect fills a rectangle with a solid color.
func fillRect(dst *ebiten.Image, x, y, w, h int, c Color) {
	if w <= 0 || h <= 0 || c.A <= 0 {
		return
	}
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), c.toRGBA(), false)
}

// strokeRect outlines a rectangle.
func strokeRect(dst *ebiten.Image, x, y, w, h int, thickness float32, c Color) {
	if w <= 0 || h <= 0 || c.A <= 0 {
		return
	}
	vector.StrokeRect(dst, float32(x), float32(y), float32(w), float32(h), thickness, c.toRGBA(), false)
}

// drawSprites draws every visible Drawable in ascending Z order. Sprites with
// equal Z keep their slice order. buf is reused to avoid per-frame allocation
// and the (possibly grown) buffer is returned.
func drawSprites(dst *ebiten.Image, sprites []Sprite, buf []Sprite) []Sprite {
	buf = buf[:0]
	for _, s := range sprites {
		if s == nil || s.IsDisposed() || !s.Visible() {
			continue
		}
		if _, ok := s.(Drawable); !ok {
			continue
		}
		buf = append(buf, s)
	}
	slices.SortStableFunc(buf, func(a, b Sprite) int {
		return cmp.Compare(a.Z(), b.Z())
	})
	for _, s := range buf {
		s.(Drawable).Draw(dst)
	}
	return buf
}
