// Package widgets holds composed arbor containers used by editor screens.
package widgets

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/arbor"
)

// Layout of the play controls strip, relative to its origin.
const (
	RowHeight             = 28
	PlayButtonX           = 241
	PlayButtonY           = 13
	PlayButtonSize        = 22
	LoopButtonX           = PlayButtonX + PlayButtonSize + 12
	LoopButtonY           = 16
	LoopButtonSize        = 16
	SlowdownLabelY        = 0
	SlowdownButtonX       = 1
	SlowdownButtonY       = RowHeight - 1
	SlowdownButtonWidth   = 32
	SlowdownButtonSpacing = -3
	DurationTextX         = 464
	DurationLabelY        = SlowdownLabelY
	DurationValueY        = RowHeight
)

// SlowdownFactors are the playback slowdown choices, in button order.
var SlowdownFactors = []int{1, 2, 4, 6, 8}

// FramesPerSecond converts a duration in frames to seconds for display.
const FramesPerSecond = 20.0

// Control is one element of the strip. The concrete type says what the
// element does.
type Control interface {
	isControl()
}

// PlayButton starts playback.
type PlayButton struct{}

// StopButton stops playback.
type StopButton struct{}

// LoopButton turns looping on.
type LoopButton struct{}

// UnloopButton turns looping off.
type UnloopButton struct{}

// SlowdownButton selects a playback slowdown factor.
type SlowdownButton struct{ Factor int }

// Label is static text.
type Label struct{ Text string }

func (PlayButton) isControl()     {}
func (StopButton) isControl()     {}
func (LoopButton) isControl()     {}
func (UnloopButton) isControl()   {}
func (SlowdownButton) isControl() {}
func (Label) isControl()          {}

var iconColor = color.Black

// element is a clickable control backed by a node in the container.
type element struct {
	key     string
	control Control
	node    *arbor.Node
	w, h    int
	enabled bool
}

func (e *element) hit(x, y int) bool {
	if !e.enabled || !e.node.Visible() {
		return false
	}
	return arbor.HitRect{X: e.node.X(), Y: e.node.Y(), Width: e.w, Height: e.h}.Contains(x, y)
}

// Options configures NewPlayControls.
type Options struct {
	Font          arbor.Font
	CanvasFactory arbor.CanvasFactory
	Translator    arbor.Translator
}

// PlayControls is the animation playback strip: play/stop, loop toggle,
// slowdown factor buttons and the animation duration.
type PlayControls struct {
	*arbor.Container

	input    arbor.PointerInput
	tr       arbor.Translator
	overlay  *arbor.Overlay
	elements []*element
	labels   []placedLabel
	images   []*ebiten.Image

	slowdownNormal, slowdownHighlight *ebiten.Image

	duration  int
	slowdown  int
	looping   bool
	requested Control
}

type placedLabel struct {
	Label
	x, y  int
	align arbor.TextAlign
}

// NewPlayControls creates the strip at (x, y) with its own viewport ten
// layers above parent.
func NewPlayControls(x, y, width, height int, parent *arbor.Viewport, input arbor.PointerInput, opts Options) *PlayControls {
	vp := arbor.NewViewport(x, y, width, height)
	if parent != nil {
		vp.Z = parent.Z + 10
	}
	if opts.Translator == nil {
		opts.Translator = arbor.NoTranslation()
	}
	p := &PlayControls{
		Container: arbor.NewContainer(arbor.ContainerConfig{
			Name:          "play_controls",
			Viewport:      vp,
			Font:          opts.Font,
			CanvasFactory: opts.CanvasFactory,
		}),
		input:    input,
		tr:       opts.Translator,
		slowdown: SlowdownFactors[0],
	}
	p.overlay = p.AddOverlay("overlay", width, height)
	p.addControls()
	p.RecordAllOffsets()
	p.SetPosition(x, y)
	p.refresh()
	return p
}

func (p *PlayControls) newImage(w, h int) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	p.images = append(p.images, img)
	return img
}

func fill(img *ebiten.Image, x, y, w, h int) {
	vector.DrawFilledRect(img, float32(x), float32(y), float32(w), float32(h), iconColor, false)
}

// loopingIcon is the 14x14 looping arrow; '#' marks a filled pixel.
var loopingIcon = [14]string{
	"        ##    ",
	"        ###   ",
	" ###########  ",
	"############  ",
	"###     ###  #",
	"##      ##  ##",
	"##          ##",
	"##          ##",
	"##  ##      ##",
	"#  ###     ###",
	"  ############",
	"  ########### ",
	"   ###        ",
	"    ##        ",
}

type buttonImages struct {
	play, stop, once, looping *ebiten.Image
}

func (p *PlayControls) generateImages() buttonImages {
	var b buttonImages
	b.play = p.newImage(PlayButtonSize, PlayButtonSize)
	for j := 0; j < PlayButtonSize-2; j++ {
		w := j + 3
		if j >= (PlayButtonSize-2)/2 {
			w = PlayButtonSize - j
		}
		fill(b.play, PlayButtonSize/4, j+1, w, 1)
	}
	b.stop = p.newImage(PlayButtonSize, PlayButtonSize)
	fill(b.stop, 4, 4, PlayButtonSize-8, PlayButtonSize-8)

	b.once = p.newImage(LoopButtonSize, LoopButtonSize)
	fill(b.once, 1, 7, 11, 2)
	fill(b.once, 8, 5, 2, 6)
	fill(b.once, 10, 6, 1, 4)
	fill(b.once, 13, 1, 2, 14)

	b.looping = p.newImage(LoopButtonSize, LoopButtonSize)
	for row, line := range loopingIcon {
		for col, ch := range line {
			if ch == '#' {
				fill(b.looping, 1+col, 1+row, 1, 1)
			}
		}
	}

	p.slowdownNormal = p.newImage(SlowdownButtonWidth, RowHeight)
	p.slowdownNormal.Fill(color.RGBA{224, 224, 224, 255})
	vector.StrokeRect(p.slowdownNormal, 0, 0, SlowdownButtonWidth, RowHeight, 1, iconColor, false)
	p.slowdownHighlight = p.newImage(SlowdownButtonWidth, RowHeight)
	p.slowdownHighlight.Fill(color.RGBA{160, 200, 255, 255})
	vector.StrokeRect(p.slowdownHighlight, 0, 0, SlowdownButtonWidth, RowHeight, 1, iconColor, false)
	return b
}

func (p *PlayControls) addElement(key string, ctrl Control, x, y, w, h int, img *ebiten.Image) *element {
	n := p.Add(key, func(*arbor.Container) arbor.Sprite {
		return arbor.NewIconSprite(key, x, y, img)
	}).(*arbor.Node)
	e := &element{key: key, control: ctrl, node: n, w: w, h: h, enabled: true}
	p.elements = append(p.elements, e)
	return e
}

func (p *PlayControls) addControls() {
	imgs := p.generateImages()
	play := p.addElement("play", PlayButton{}, PlayButtonX, PlayButtonY, PlayButtonSize, PlayButtonSize, imgs.play)
	play.enabled = false
	stop := p.addElement("stop", StopButton{}, PlayButtonX, PlayButtonY, PlayButtonSize, PlayButtonSize, imgs.stop)
	stop.node.SetVisible(false)
	loop := p.addElement("loop", LoopButton{}, LoopButtonX, LoopButtonY, LoopButtonSize, LoopButtonSize, imgs.once)
	loop.node.SetVisible(!p.looping)
	unloop := p.addElement("unloop", UnloopButton{}, LoopButtonX, LoopButtonY, LoopButtonSize, LoopButtonSize, imgs.looping)
	unloop.node.SetVisible(p.looping)

	step := SlowdownButtonWidth + SlowdownButtonSpacing
	p.labels = append(p.labels, placedLabel{
		Label: Label{Text: p.tr.Get("Slowdown factor")},
		x:     SlowdownButtonX + len(SlowdownFactors)*step/2 - 5,
		y:     SlowdownLabelY,
		align: arbor.TextAlignCenter,
	})
	for i, f := range SlowdownFactors {
		img := p.slowdownNormal
		if f == p.slowdown {
			img = p.slowdownHighlight
		}
		p.addElement(fmt.Sprintf("slowdown%d", f), SlowdownButton{Factor: f},
			SlowdownButtonX+step*i, SlowdownButtonY, SlowdownButtonWidth, RowHeight, img)
	}
	p.labels = append(p.labels,
		placedLabel{Label: Label{Text: p.tr.Get("Duration")}, x: DurationTextX, y: DurationLabelY, align: arbor.TextAlignCenter},
		placedLabel{Label: Label{Text: p.durationText()}, x: DurationTextX, y: DurationValueY, align: arbor.TextAlignCenter},
	)
}

func (p *PlayControls) find(key string) *element {
	for _, e := range p.elements {
		if e.key == key {
			return e
		}
	}
	return nil
}

// show sets an element's visibility and keeps its recorded offset in step.
func (p *PlayControls) show(key string, visible bool) {
	p.find(key).node.SetVisible(visible)
	p.RecordOffset(key)
	p.Reapply()
}

func (p *PlayControls) durationText() string {
	return p.tr.Get("%gs", float64(p.duration)/FramesPerSecond)
}

// refresh redraws the labels and slowdown button numbers.
func (p *PlayControls) refresh() {
	p.overlay.Clear()
	for _, l := range p.labels {
		p.overlay.DrawText(l.Text, l.x, l.y, arbor.TextOptions{Align: l.align, Outline: arbor.OutlineNone})
	}
	for _, e := range p.elements {
		sb, ok := e.control.(SlowdownButton)
		if !ok {
			continue
		}
		x := e.node.X() - p.X() + SlowdownButtonWidth/2
		y := e.node.Y() - p.Y() + 6
		p.overlay.DrawText(fmt.Sprint(sb.Factor), x, y, arbor.TextOptions{Align: arbor.TextAlignCenter, Outline: arbor.OutlineNone})
	}
}

// Slowdown returns the selected slowdown factor.
func (p *PlayControls) Slowdown() int { return p.slowdown }

// Looping reports whether playback loops.
func (p *PlayControls) Looping() bool { return p.looping }

// Duration returns the animation duration in frames.
func (p *PlayControls) Duration() int { return p.duration }

// SetDuration sets the animation duration in frames. The play button is
// only enabled for a non-empty animation.
func (p *PlayControls) SetDuration(frames int) {
	if p.duration == frames {
		return
	}
	p.duration = frames
	p.find("play").enabled = frames != 0
	p.labels[len(p.labels)-1].Text = p.durationText()
	p.refresh()
}

// PrepareToPlay swaps play for stop and disables everything but stop.
func (p *PlayControls) PrepareToPlay() {
	p.show("play", false)
	p.show("stop", true)
	for _, e := range p.elements {
		e.enabled = e.key == "stop"
	}
}

// EndPlaying swaps stop back for play and enables every control.
func (p *PlayControls) EndPlaying() {
	p.show("stop", false)
	p.show("play", true)
	for _, e := range p.elements {
		e.enabled = true
	}
}

// Requested returns the play or stop press since the last call, or nil.
func (p *PlayControls) Requested() Control {
	c := p.requested
	p.requested = nil
	return c
}

// Press applies a control as if it had been clicked.
func (p *PlayControls) Press(ctrl Control) {
	switch c := ctrl.(type) {
	case LoopButton:
		p.show("loop", false)
		p.show("unloop", true)
		p.looping = true
	case UnloopButton:
		p.show("unloop", false)
		p.show("loop", true)
		p.looping = false
	case SlowdownButton:
		p.setSlowdown(c.Factor)
	case PlayButton, StopButton:
		p.requested = c
	case Label:
	}
}

func (p *PlayControls) setSlowdown(factor int) {
	p.slowdown = factor
	for _, e := range p.elements {
		sb, ok := e.control.(SlowdownButton)
		if !ok {
			continue
		}
		if sb.Factor == factor {
			e.node.SetImage(p.slowdownHighlight)
		} else {
			e.node.SetImage(p.slowdownNormal)
		}
	}
}

// Highlighted returns the factors whose buttons are highlighted.
func (p *PlayControls) Highlighted() []int {
	var out []int
	for _, e := range p.elements {
		if sb, ok := e.control.(SlowdownButton); ok && e.node.Image() == p.slowdownHighlight {
			out = append(out, sb.Factor)
		}
	}
	return out
}

// Update advances the strip and applies the control under this frame's
// click, if any.
func (p *PlayControls) Update(dt float64) {
	if p.IsDisposed() {
		return
	}
	p.Container.Update(dt)
	if p.input == nil || !p.Visible() {
		return
	}
	x, y, ok := p.input.Clicked()
	if !ok {
		return
	}
	for _, e := range p.elements {
		if e.hit(x, y) {
			p.Press(e.control)
			return
		}
	}
}

// Dispose disposes the strip and its generated images.
func (p *PlayControls) Dispose() {
	if p.IsDisposed() {
		return
	}
	p.Container.Dispose()
	for _, img := range p.images {
		img.Deallocate()
	}
	p.images = nil
}
