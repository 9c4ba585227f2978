package arbor

import (
	"fmt"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

// Driver advances the host by one frame: everything presented is drawn and
// shown, then control returns to the caller. Every blocking loop in arbor
// calls AdvanceFrame once per iteration, before polling input.
type Driver interface {
	AdvanceFrame()
}

// Presenter is implemented by drivers that draw registered scenes.
type Presenter interface {
	Present(d Drawable)
	Withdraw(d Drawable)
}

// StepDriver is a Driver for tests: it counts frames and optionally runs a
// callback per frame. With MaxFrames > 0 it panics once the limit is passed,
// so a loop that never exits fails instead of hanging.
type StepDriver struct {
	Frames    int
	MaxFrames int
	OnFrame   func(frame int)
}

// AdvanceFrame counts one frame.
func (d *StepDriver) AdvanceFrame() {
	d.Frames++
	if d.MaxFrames > 0 && d.Frames > d.MaxFrames {
		panic(fmt.Sprintf("arbor: step driver passed %d frames", d.MaxFrames))
	}
	if d.OnFrame != nil {
		d.OnFrame(d.Frames)
	}
}

// RunConfig configures Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// TPS defaults to 60.
	TPS int
	// Background is the color the screen is cleared to each frame.
	Background Color
}

// Host bridges arbor's blocking screen logic to ebiten.Game. The logic runs
// on its own goroutine; each AdvanceFrame hands control to Ebitengine until
// the next Update, so exactly one side runs at a time.
type Host struct {
	cfg    RunConfig
	logic  func(h *Host) error
	drawn  []Drawable
	frames int

	started  bool
	finished bool
	resume   chan struct{}
	yield    chan struct{}
	done     chan struct{}
	err      error
	panicVal any
}

// NewHost creates a host that will run logic once the game starts.
func NewHost(cfg RunConfig, logic func(h *Host) error) *Host {
	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}
	return &Host{
		cfg:    cfg,
		logic:  logic,
		resume: make(chan struct{}),
		yield:  make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Run opens a window and runs logic until it returns.
func Run(cfg RunConfig, logic func(h *Host) error) error {
	h := NewHost(cfg, logic)
	ebiten.SetWindowTitle(h.cfg.Title)
	ebiten.SetWindowSize(h.cfg.Width, h.cfg.Height)
	ebiten.SetTPS(h.cfg.TPS)
	return ebiten.RunGame(h)
}

// Frames returns the number of frames the logic has advanced.
func (h *Host) Frames() int { return h.frames }

// Present adds d to the drawables rendered every frame.
func (h *Host) Present(d Drawable) {
	if !slices.Contains(h.drawn, d) {
		h.drawn = append(h.drawn, d)
	}
}

// Withdraw stops rendering d.
func (h *Host) Withdraw(d Drawable) {
	h.drawn = slices.DeleteFunc(h.drawn, func(x Drawable) bool { return x == d })
}

// AdvanceFrame yields to Ebitengine and blocks until the next Update.
// Only the logic goroutine may call it.
func (h *Host) AdvanceFrame() {
	h.frames++
	h.yield <- struct{}{}
	<-h.resume
}

func (h *Host) run() {
	defer close(h.done)
	defer func() {
		if r := recover(); r != nil {
			h.panicVal = r
		}
	}()
	h.err = h.logic(h)
}

// Update implements ebiten.Game. It resumes the logic goroutine and waits
// for it to reach its next AdvanceFrame or to finish. A panic in the logic
// is re-raised here.
func (h *Host) Update() error {
	if h.finished {
		return ebiten.Termination
	}
	if !h.started {
		h.started = true
		go h.run()
	} else {
		h.resume <- struct{}{}
	}
	select {
	case <-h.yield:
		return nil
	case <-h.done:
		h.finished = true
		if h.panicVal != nil {
			panic(h.panicVal)
		}
		if h.err != nil {
			return h.err
		}
		return ebiten.Termination
	}
}

// Draw implements ebiten.Game.
func (h *Host) Draw(screen *ebiten.Image) {
	if h.cfg.Background.A > 0 {
		screen.Fill(h.cfg.Background.toRGBA())
	}
	for _, d := range h.drawn {
		d.Draw(screen)
	}
}

// Layout implements ebiten.Game.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	if h.cfg.Width > 0 && h.cfg.Height > 0 {
		return h.cfg.Width, h.cfg.Height
	}
	return outsideWidth, outsideHeight
}
