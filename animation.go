package arbor

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 values of a Sprite simultaneously. Create one
// via the convenience constructors (TweenPosition, TweenColor, TweenAlpha)
// and call Update(dt) each frame; the group writes values back through the
// sprite's setters. If the target is disposed, the group stops immediately.
//
// There is no global animation manager; users call Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	vals   [4]float32
	apply  func(vals [4]float32)
	target Sprite
	Done   bool
}

// Update advances all tweens by dt, then applies the values. If the target
// has been disposed, Done is set to true and nothing is written.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		g.vals[i] = val
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
	g.apply(g.vals)
}

// TweenPosition creates a TweenGroup that moves s to (toX, toY).
func TweenPosition(s Sprite, toX, toY int, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: s}
	g.tweens[0] = gween.New(float32(s.X()), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(s.Y()), float32(toY), duration, fn)
	g.apply = func(v [4]float32) {
		s.SetX(int(math.Round(float64(v[0]))))
		s.SetY(int(math.Round(float64(v[1]))))
	}
	return g
}

// TweenColor creates a TweenGroup that animates all four components of the
// sprite's tint to the target color.
func TweenColor(s Sprite, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	from := s.Color()
	g := &TweenGroup{count: 4, target: s}
	g.tweens[0] = gween.New(float32(from.R), float32(to.R), duration, fn)
	g.tweens[1] = gween.New(float32(from.G), float32(to.G), duration, fn)
	g.tweens[2] = gween.New(float32(from.B), float32(to.B), duration, fn)
	g.tweens[3] = gween.New(float32(from.A), float32(to.A), duration, fn)
	g.apply = func(v [4]float32) {
		s.SetColor(Color{float64(v[0]), float64(v[1]), float64(v[2]), float64(v[3])})
	}
	return g
}

// TweenAlpha creates a TweenGroup that animates only the tint strength,
// keeping the tint's RGB.
func TweenAlpha(s Sprite, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: s}
	g.tweens[0] = gween.New(float32(s.Color().A), float32(to), duration, fn)
	g.apply = func(v [4]float32) {
		c := s.Color()
		c.A = float64(v[0])
		s.SetColor(c)
	}
	return g
}

// runFrames steps g once per frame, with a duration measured in frames,
// until it is done. frame is called before each step.
func runFrames(g *TweenGroup, frame func()) {
	for !g.Done {
		frame()
		g.Update(1)
	}
}
