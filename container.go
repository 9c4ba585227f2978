package arbor

import (
	"path"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

// UIFolder is the asset folder every GraphicsFolder is rooted in.
const UIFolder = "graphics/ui"

// Offset is a child's transform relative to its container's origin, captured
// by RecordOffset.
type Offset struct {
	DX, DY, DZ int
	Visible    bool
}

// ContainerConfig carries the services a container's factories need.
type ContainerConfig struct {
	// Name identifies the container in errors and debug output.
	Name string

	// Viewport is shared by every child; nil means a 0x0 viewport.
	Viewport *Viewport

	// Assets resolves image names for AddIconSprite, AddAnimatedArrow and
	// the filename helpers.
	Assets AssetResolver

	// Font measures and renders overlay text. Defaults to DefaultFont(16).
	Font Font

	// Themes is the text theme table given to every overlay. Defaults to
	// DefaultTextThemes().
	Themes map[string]TextTheme

	// CanvasFactory creates overlay canvases. Defaults to ImageCanvasFactory(Font).
	CanvasFactory CanvasFactory

	// GraphicsFolder is the sub-folder of UIFolder holding this screen's art.
	GraphicsFolder string

	// Female selects "_f" variants in GenderedFilename.
	Female bool
}

func (cfg *ContainerConfig) applyDefaults() {
	if cfg.Name == "" {
		cfg.Name = "container"
	}
	if cfg.Viewport == nil {
		cfg.Viewport = NewViewport(0, 0, 0, 0)
	}
	if cfg.Font == nil {
		cfg.Font = DefaultFont(16)
	}
	if cfg.Themes == nil {
		cfg.Themes = DefaultTextThemes()
	}
	if cfg.CanvasFactory == nil {
		ff, ok := cfg.Font.(FaceFont)
		if !ok {
			ff = DefaultFont(16)
		}
		cfg.CanvasFactory = ImageCanvasFactory(ff)
	}
}

// Container owns a set of keyed sprites that move, show, hide and recolor as
// one unit. For every child with a recorded offset o, the container keeps
//
//	child.X == c.X + o.DX, child.Y == c.Y + o.DY, child.Z == c.Z + o.DZ
//	child.Visible == c.Visible && o.Visible, child.Color == c.Color
//
// after every origin mutation. Children without a recorded offset are left
// alone. A Container is itself a Sprite, so containers nest.
type Container struct {
	cfg ContainerConfig

	x, y, z int
	visible bool
	color   Color

	sprites map[string]Sprite
	order   []string
	offsets map[string]Offset
	owned   []Sprite

	disposed bool
	drawBuf  []Sprite
}

// NewContainer creates an empty container at the origin.
func NewContainer(cfg ContainerConfig) *Container {
	cfg.applyDefaults()
	return &Container{
		cfg:     cfg,
		visible: true,
		sprites: make(map[string]Sprite),
		offsets: make(map[string]Offset),
	}
}

// Name returns the container's debug name.
func (c *Container) Name() string { return c.cfg.Name }

// Config returns the configuration the container was created with.
func (c *Container) Config() ContainerConfig { return c.cfg }

// Viewport returns the shared viewport.
func (c *Container) Viewport() *Viewport { return c.cfg.Viewport }

// Assets returns the container's asset resolver (may be nil).
func (c *Container) Assets() AssetResolver { return c.cfg.Assets }

// Font returns the overlay font.
func (c *Container) Font() Font { return c.cfg.Font }

func (c *Container) checkLive(op string) {
	if c.disposed {
		panic(&DisposedError{Name: c.cfg.Name, Op: op})
	}
}

// --- Children ---

// Add creates a child with factory and registers it under key. Panics with
// *DuplicateKeyError if key is taken.
func (c *Container) Add(key string, factory func(*Container) Sprite) Sprite {
	c.checkLive("Add")
	if _, ok := c.sprites[key]; ok {
		panic(&DuplicateKeyError{Owner: c.cfg.Name, Key: key})
	}
	s := factory(c)
	c.sprites[key] = s
	c.order = append(c.order, key)
	debugCheckChildCount(c)
	return s
}

// AddRecorded adds a child and immediately records its offset.
func (c *Container) AddRecorded(key string, factory func(*Container) Sprite) Sprite {
	s := c.Add(key, factory)
	c.RecordOffset(key)
	return s
}

// Own registers s to be updated and disposed with the container. Owned
// sprites are never moved by origin mutators; they manage their own
// absolute position.
func (c *Container) Own(s Sprite) {
	c.checkLive("Own")
	c.owned = append(c.owned, s)
}

// Disown removes s from the owned sprites without disposing it.
func (c *Container) Disown(s Sprite) {
	c.owned = slices.DeleteFunc(c.owned, func(o Sprite) bool { return o == s })
}

// Get returns the child under key, or nil.
func (c *Container) Get(key string) Sprite { return c.sprites[key] }

// Has reports whether key is registered.
func (c *Container) Has(key string) bool {
	_, ok := c.sprites[key]
	return ok
}

// Keys returns child keys in insertion order.
func (c *Container) Keys() []string {
	return append([]string(nil), c.order...)
}

// Len returns the number of children.
func (c *Container) Len() int { return len(c.sprites) }

// Node returns the child under key as a *Node, or nil.
func (c *Container) Node(key string) *Node {
	n, _ := c.sprites[key].(*Node)
	return n
}

// Overlay returns the child under key as an *Overlay, or nil.
func (c *Container) Overlay(key string) *Overlay {
	o, _ := c.sprites[key].(*Overlay)
	return o
}

// --- Offsets ---

// RecordOffset captures the child's current position, depth and visibility
// relative to the origin. Call it once the child is laid out, and again
// whenever its intended relative layout changes. Panics with
// *UnknownKeyError for an unregistered key.
func (c *Container) RecordOffset(key string) {
	c.checkLive("RecordOffset")
	s, ok := c.sprites[key]
	if !ok {
		panic(&UnknownKeyError{Owner: c.cfg.Name, Key: key})
	}
	c.offsets[key] = Offset{
		DX:      s.X() - c.x,
		DY:      s.Y() - c.y,
		DZ:      s.Z() - c.z,
		Visible: s.Visible(),
	}
}

// RecordAllOffsets records every child that has no offset yet.
func (c *Container) RecordAllOffsets() {
	for _, key := range c.order {
		if _, ok := c.offsets[key]; !ok {
			c.RecordOffset(key)
		}
	}
}

// OffsetOf returns the recorded offset for key.
func (c *Container) OffsetOf(key string) (Offset, bool) {
	o, ok := c.offsets[key]
	return o, ok
}

// Reapply pushes the full origin transform to every recorded child.
func (c *Container) Reapply() {
	c.checkLive("Reapply")
	c.each(func(s Sprite, o Offset) {
		s.SetX(c.x + o.DX)
		s.SetY(c.y + o.DY)
		s.SetZ(c.z + o.DZ)
		s.SetVisible(c.visible && o.Visible)
		s.SetColor(c.color)
	})
}

// each calls fn for every live child with a recorded offset.
func (c *Container) each(fn func(Sprite, Offset)) {
	for _, key := range c.order {
		o, ok := c.offsets[key]
		if !ok {
			continue
		}
		s := c.sprites[key]
		if s == nil || s.IsDisposed() {
			continue
		}
		fn(s, o)
	}
}

// --- Origin ---

func (c *Container) X() int        { return c.x }
func (c *Container) Y() int        { return c.y }
func (c *Container) Z() int        { return c.z }
func (c *Container) Visible() bool { return c.visible }
func (c *Container) Color() Color  { return c.color }

func (c *Container) SetX(x int) {
	c.checkLive("SetX")
	c.x = x
	c.each(func(s Sprite, o Offset) { s.SetX(x + o.DX) })
}

func (c *Container) SetY(y int) {
	c.checkLive("SetY")
	c.y = y
	c.each(func(s Sprite, o Offset) { s.SetY(y + o.DY) })
}

func (c *Container) SetZ(z int) {
	c.checkLive("SetZ")
	c.z = z
	c.each(func(s Sprite, o Offset) { s.SetZ(z + o.DZ) })
}

// SetPosition moves the origin to (x, y).
func (c *Container) SetPosition(x, y int) {
	c.SetX(x)
	c.SetY(y)
}

func (c *Container) SetVisible(visible bool) {
	c.checkLive("SetVisible")
	c.visible = visible
	c.each(func(s Sprite, o Offset) { s.SetVisible(visible && o.Visible) })
}

func (c *Container) SetColor(col Color) {
	c.checkLive("SetColor")
	c.color = col
	c.each(func(s Sprite, o Offset) { s.SetColor(col) })
}

// --- Frame ---

// Update advances every live child, then every owned sprite, once.
func (c *Container) Update(dt float64) {
	if c.disposed {
		return
	}
	for _, key := range c.order {
		if s := c.sprites[key]; s != nil && !s.IsDisposed() {
			s.Update(dt)
		}
	}
	for _, s := range c.owned {
		if !s.IsDisposed() {
			s.Update(dt)
		}
	}
}

// Draw renders children and owned sprites in ascending Z order. Owned
// sprites carry their own visibility and still draw while the container is
// hidden.
func (c *Container) Draw(dst *ebiten.Image) {
	if c.disposed {
		return
	}
	all := make([]Sprite, 0, len(c.order)+len(c.owned))
	if c.visible {
		for _, key := range c.order {
			all = append(all, c.sprites[key])
		}
	}
	all = append(all, c.owned...)
	if vp := c.cfg.Viewport; vp != nil && !vp.Rect.Empty() {
		dst = dst.SubImage(vp.Rect).(*ebiten.Image)
	}
	c.drawBuf = drawSprites(dst, all, c.drawBuf)
}

// --- Disposal ---

// Dispose disposes every child not already disposed, then owned sprites,
// clears the container and marks it disposed. Safe to call more than once.
func (c *Container) Dispose() {
	if c.disposed {
		return
	}
	debugLog("dispose container %q (%d children)", c.cfg.Name, len(c.sprites))
	for _, key := range c.order {
		if s := c.sprites[key]; s != nil && !s.IsDisposed() {
			s.Dispose()
		}
	}
	for _, s := range c.owned {
		if !s.IsDisposed() {
			s.Dispose()
		}
	}
	clear(c.sprites)
	clear(c.offsets)
	c.order = nil
	c.owned = nil
	c.drawBuf = nil
	c.disposed = true
}

// IsDisposed reports whether Dispose has been called.
func (c *Container) IsDisposed() bool { return c.disposed }

// --- Factories ---

// AddIconSprite adds a static image sprite at (x, y). filename is resolved
// under GraphicsFolder unless empty.
func (c *Container) AddIconSprite(key string, x, y int, filename string) *Node {
	return c.Add(key, func(c *Container) Sprite {
		var img *ebiten.Image
		if filename != "" {
			img = resolveOrPlaceholder(c.cfg.Assets, path.Join(c.GraphicsFolder(), filename))
		}
		return NewIconSprite(key, x, y, img)
	}).(*Node)
}

// SetImageName swaps the image of the node under key for filename, resolved
// under GraphicsFolder. Panics with *UnknownKeyError if key is not a node.
func (c *Container) SetImageName(key, filename string) {
	n := c.Node(key)
	if n == nil {
		panic(&UnknownKeyError{Owner: c.cfg.Name, Key: key})
	}
	n.SetImage(resolveOrPlaceholder(c.cfg.Assets, path.Join(c.GraphicsFolder(), filename)))
}

// arrowStrips maps each direction to its strip name and frame size.
var arrowStrips = map[Direction]struct {
	name string
	w, h int
}{
	DirectionUp:    {"up_arrow", 28, 40},
	DirectionDown:  {"down_arrow", 28, 40},
	DirectionLeft:  {"left_arrow", 40, 28},
	DirectionRight: {"right_arrow", 40, 28},
}

// Arrow strips are eight frames advancing every second update.
const (
	arrowFrames    = 8
	arrowFrameSkip = 2
)

// AddAnimatedArrow adds a hidden, playing arrow strip at (x, y).
func (c *Container) AddAnimatedArrow(key string, x, y int, dir Direction) *Node {
	a, ok := arrowStrips[dir]
	if !ok {
		a = arrowStrips[DirectionUp]
	}
	return c.Add(key, func(c *Container) Sprite {
		strip := resolveOrPlaceholder(c.cfg.Assets, path.Join(UIFolder, a.name))
		n := NewAnimatedSprite(key, strip, arrowFrames, a.w, a.h, arrowFrameSkip)
		n.SetPosition(x, y)
		n.SetVisible(false)
		n.Play()
		return n
	}).(*Node)
}

// AddOverlay adds a transparent text overlay at depth ZOverlay carrying the
// container's theme table. A width or height < 0 means the viewport's.
func (c *Container) AddOverlay(key string, width, height int) *Overlay {
	if width < 0 {
		width = c.cfg.Viewport.Width()
	}
	if height < 0 {
		height = c.cfg.Viewport.Height()
	}
	return c.Add(key, func(c *Container) Sprite {
		return NewOverlay(key, c.cfg.CanvasFactory(width, height), c.cfg.Themes)
	}).(*Overlay)
}

// --- Filenames ---

// GraphicsFolder returns the folder this container's images live in.
func (c *Container) GraphicsFolder() string {
	return path.Join(UIFolder, c.cfg.GraphicsFolder)
}

// GenderedFilename returns base with the "_f" appendix for a female player,
// when such a file exists.
func (c *Container) GenderedFilename(base string) string {
	if c.cfg.Female {
		return c.FilenameWithAppendix(base, "_f")
	}
	return base
}

// FilenameWithAppendix returns base+appendix if that file resolves in the
// graphics folder, otherwise base.
func (c *Container) FilenameWithAppendix(base, appendix string) string {
	if appendix != "" {
		trial := base + appendix
		if hasAsset(c.cfg.Assets, path.Join(c.GraphicsFolder(), trial)) {
			return trial
		}
	}
	return base
}
