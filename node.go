package arbor

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite is any drawable, updatable element a Container can own: image
// sprites, animated strips, text overlays and modal windows.
//
// Setters on a disposed sprite panic with *DisposedError. Dispose itself is
// idempotent.
type Sprite interface {
	X() int
	Y() int
	Z() int
	Visible() bool
	Color() Color
	SetX(x int)
	SetY(y int)
	SetZ(z int)
	SetVisible(visible bool)
	SetColor(c Color)

	// Update advances per-frame state (animation, text streaming, cursors).
	Update(dt float64)

	Dispose()
	IsDisposed() bool
}

// Drawable is implemented by sprites that can render themselves.
type Drawable interface {
	Draw(dst *ebiten.Image)
}

// --- shared sprite state ---

// spriteBase holds the transform every built-in sprite carries.
type spriteBase struct {
	name     string
	x, y, z  int
	visible  bool
	color    Color
	disposed bool
}

func newSpriteBase(name string) spriteBase {
	return spriteBase{name: name, visible: true}
}

// Name returns the debug name given at construction.
func (b *spriteBase) Name() string { return b.name }

func (b *spriteBase) X() int        { return b.x }
func (b *spriteBase) Y() int        { return b.y }
func (b *spriteBase) Z() int        { return b.z }
func (b *spriteBase) Visible() bool { return b.visible }
func (b *spriteBase) Color() Color  { return b.color }

func (b *spriteBase) SetX(x int) {
	b.checkLive("SetX")
	b.x = x
}

func (b *spriteBase) SetY(y int) {
	b.checkLive("SetY")
	b.y = y
}

func (b *spriteBase) SetZ(z int) {
	b.checkLive("SetZ")
	b.z = z
}

// SetPosition sets x and y together.
func (b *spriteBase) SetPosition(x, y int) {
	b.checkLive("SetPosition")
	b.x = x
	b.y = y
}

func (b *spriteBase) SetVisible(visible bool) {
	b.checkLive("SetVisible")
	b.visible = visible
}

func (b *spriteBase) SetColor(c Color) {
	b.checkLive("SetColor")
	b.color = c
}

// IsDisposed returns true if the sprite has been disposed.
func (b *spriteBase) IsDisposed() bool { return b.disposed }

func (b *spriteBase) checkLive(op string) {
	if b.disposed {
		panic(&DisposedError{Name: b.name, Op: op})
	}
}

// --- Node ---

// NodeType distinguishes rendering behavior for a Node.
type NodeType uint8

const (
	NodeTypeIcon     NodeType = iota // a static image or a sub-rectangle of one
	NodeTypeAnimated                 // a horizontal strip of equally sized frames
	NodeTypePlane                    // an image tiled across a fixed area
)

// Node is the image-backed sprite. A single flat struct serves all three node
// types, as icons, animated strips and planes differ only in how the source
// rectangle is picked.
type Node struct {
	spriteBase
	Type NodeType

	image *ebiten.Image
	src   image.Rectangle // relative to image bounds; empty means whole image

	// Animated strips
	frameCount int
	frameW     int
	frameH     int
	frameSkip  int
	frame      int
	tick       int
	playing    bool

	// Planes
	planeW, planeH int

	// OnUpdate, when set, runs at the end of every Update.
	OnUpdate func(dt float64)
}

// NewIconSprite creates an icon sprite at (x, y). img may be nil and set later.
func NewIconSprite(name string, x, y int, img *ebiten.Image) *Node {
	n := &Node{spriteBase: newSpriteBase(name), Type: NodeTypeIcon, image: img}
	n.x, n.y = x, y
	return n
}

// NewAnimatedSprite creates an animated sprite from a horizontal strip of
// frameCount frames, each frameW x frameH. The frame advances once every
// frameSkip updates while playing.
func NewAnimatedSprite(name string, strip *ebiten.Image, frameCount, frameW, frameH, frameSkip int) *Node {
	if frameCount < 1 {
		frameCount = 1
	}
	if frameSkip < 1 {
		frameSkip = 1
	}
	n := &Node{
		spriteBase: newSpriteBase(name),
		Type:       NodeTypeAnimated,
		image:      strip,
		frameCount: frameCount,
		frameW:     frameW,
		frameH:     frameH,
		frameSkip:  frameSkip,
	}
	n.src = n.frameRect()
	return n
}

// NewPlane creates a sprite that tiles img across a width x height area.
func NewPlane(name string, img *ebiten.Image, width, height int) *Node {
	return &Node{
		spriteBase: newSpriteBase(name),
		Type:       NodeTypePlane,
		image:      img,
		planeW:     width,
		planeH:     height,
	}
}

// Image returns the node's image, or nil.
func (n *Node) Image() *ebiten.Image { return n.image }

// SetImage replaces the node's image.
func (n *Node) SetImage(img *ebiten.Image) {
	n.checkLive("SetImage")
	n.image = img
}

// SourceRect returns the source rectangle relative to the image bounds.
func (n *Node) SourceRect() image.Rectangle { return n.src }

// SetSourceRect restricts drawing to part of the image. An empty rectangle
// draws the whole image.
func (n *Node) SetSourceRect(r image.Rectangle) {
	n.checkLive("SetSourceRect")
	n.src = r
}

// Width returns the drawn width in pixels.
func (n *Node) Width() int {
	switch {
	case n.Type == NodeTypePlane:
		return n.planeW
	case !n.src.Empty():
		return n.src.Dx()
	case n.image != nil:
		return n.image.Bounds().Dx()
	}
	return 0
}

// Height returns the drawn height in pixels.
func (n *Node) Height() int {
	switch {
	case n.Type == NodeTypePlane:
		return n.planeH
	case !n.src.Empty():
		return n.src.Dy()
	case n.image != nil:
		return n.image.Bounds().Dy()
	}
	return 0
}

// --- Animation ---

// Play starts frame advancement.
func (n *Node) Play() {
	n.checkLive("Play")
	n.playing = true
}

// Stop halts frame advancement on the current frame.
func (n *Node) Stop() {
	n.checkLive("Stop")
	n.playing = false
}

// Playing reports whether the strip is advancing.
func (n *Node) Playing() bool { return n.playing }

// Frame returns the current frame index.
func (n *Node) Frame() int { return n.frame }

// SetFrame jumps to frame i (wrapped into range).
func (n *Node) SetFrame(i int) {
	n.checkLive("SetFrame")
	if n.frameCount == 0 {
		return
	}
	n.frame = ((i % n.frameCount) + n.frameCount) % n.frameCount
	n.tick = 0
	n.src = n.frameRect()
}

func (n *Node) frameRect() image.Rectangle {
	return image.Rect(n.frame*n.frameW, 0, (n.frame+1)*n.frameW, n.frameH)
}

// Update advances the animation of an animated strip, then runs OnUpdate.
// Updating a disposed node is a no-op.
func (n *Node) Update(dt float64) {
	if n.disposed {
		return
	}
	if n.Type == NodeTypeAnimated && n.playing && n.frameCount > 1 {
		n.tick++
		if n.tick >= n.frameSkip {
			n.tick = 0
			n.frame = (n.frame + 1) % n.frameCount
			n.src = n.frameRect()
		}
	}
	if n.OnUpdate != nil {
		n.OnUpdate(dt)
	}
}

// Draw renders the node at its position.
func (n *Node) Draw(dst *ebiten.Image) {
	if n.disposed || !n.visible || n.image == nil {
		return
	}
	img := n.image
	if !n.src.Empty() {
		img = subImage(n.image, n.src)
	}
	if n.Type != NodeTypePlane {
		drawTinted(dst, img, float64(n.x), float64(n.y), n.color)
		return
	}
	tw, th := img.Bounds().Dx(), img.Bounds().Dy()
	if tw == 0 || th == 0 {
		return
	}
	area := image.Rect(n.x, n.y, n.x+n.planeW, n.y+n.planeH)
	clip := dst.SubImage(area).(*ebiten.Image)
	for ty := 0; ty < n.planeH; ty += th {
		for tx := 0; tx < n.planeW; tx += tw {
			drawTinted(clip, img, float64(n.x+tx), float64(n.y+ty), n.color)
		}
	}
}

// --- Disposal ---

// Dispose marks the node as disposed and drops its image reference. Images
// are shared through asset resolvers and are not deallocated here.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	debugLog("dispose node %q", n.name)
	n.disposed = true
	n.image = nil
	n.OnUpdate = nil
	n.playing = false
}
