package arbor

import (
	"image"
	"path"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

// Default screen size used when SceneConfig leaves it zero.
const (
	DefaultScreenWidth  = 512
	DefaultScreenHeight = 384
)

// SceneConfig configures NewScene. Only Driver and Input matter for a
// running game; everything else has a usable default.
type SceneConfig struct {
	// Name identifies the scene in errors, events and debug output.
	Name string

	Driver Driver
	Input  Input
	Font   Font
	Assets AssetResolver
	Sound  SoundPlayer
	// Translator localizes built-in strings such as "Yes" and "No".
	Translator Translator
	// Numbers runs ChooseNumber. Defaults to WindowNumberChooser.
	Numbers       NumberChooser
	CanvasFactory CanvasFactory
	Events        EventSink

	Width, Height int

	GraphicsFolder string
	// BackgroundFilename is the base name of the background image inside
	// GraphicsFolder. Defaults to "bg".
	BackgroundFilename string
	Female             bool

	// Config supplies fade length, text speed, window skin and themes.
	// Defaults to DefaultConfig().
	Config *Config

	// OnInitSprites adds the screen's own sprites. Offsets of everything
	// added are recorded right after it returns.
	OnInitSprites func(s *Scene)
	// OnRefresh redraws the overlay after Refresh clears it.
	OnRefresh func(s *Scene)
	// OnUpdate runs once per UpdateVisuals, including every dialog frame.
	OnUpdate func(s *Scene)
}

// Scene is a Container that also owns a background plane, a text overlay,
// and two modal text windows (the message box and the speech box), and
// implements the blocking dialogs. The modal windows are owned, not
// children: they manage their own absolute position.
//
// Screens customize a Scene either through the SceneConfig hooks or by
// embedding *Scene in their own type and overriding Visuals methods.
type Scene struct {
	*Container

	cfg      SceneConfig
	viewport *Viewport
	skin     WindowSkin
	dt       float64

	background *Node
	overlay    *Overlay
	messageBox *TextWindow
	speechBox  *TextWindow

	// visuals is the value a Screen drives when it embeds this scene.
	// Dialog frames update through it so overrides run there too.
	visuals Visuals
}

// NewScene builds a scene: viewport, background, overlay, message boxes,
// then the OnInitSprites hook, offset recording and a first Refresh.
func NewScene(cfg SceneConfig) *Scene {
	if cfg.Name == "" {
		cfg.Name = "scene"
	}
	if cfg.Driver == nil {
		cfg.Driver = &StepDriver{}
	}
	if cfg.Input == nil {
		cfg.Input = NewScriptedInput()
	}
	if cfg.Font == nil {
		cfg.Font = DefaultFont(16)
	}
	if cfg.Sound == nil {
		cfg.Sound = NopSound{}
	}
	if cfg.Translator == nil {
		cfg.Translator = NoTranslation()
	}
	if cfg.Numbers == nil {
		cfg.Numbers = WindowNumberChooser{}
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = DefaultScreenWidth, DefaultScreenHeight
	}
	if cfg.BackgroundFilename == "" {
		cfg.BackgroundFilename = "bg"
	}
	if cfg.Config == nil {
		def := DefaultConfig()
		cfg.Config = &def
	}

	s := &Scene{cfg: cfg, skin: cfg.Config.Skin(), dt: 1 / float64(cfg.Config.TPS)}
	s.initViewport()
	s.Container = NewContainer(ContainerConfig{
		Name:           cfg.Name,
		Viewport:       s.viewport,
		Assets:         cfg.Assets,
		Font:           cfg.Font,
		Themes:         cfg.Config.TextThemes(),
		CanvasFactory:  cfg.CanvasFactory,
		GraphicsFolder: cfg.GraphicsFolder,
		Female:         cfg.Female,
	})
	s.initBackground()
	s.overlay = s.AddOverlay("overlay", -1, -1)
	s.initMessageBoxes()
	if cfg.OnInitSprites != nil {
		cfg.OnInitSprites(s)
	}
	s.RecordAllOffsets()
	s.Refresh()

	if p, ok := cfg.Driver.(Presenter); ok {
		p.Present(s)
	}
	debugLog("scene %q created (%d sprites)", cfg.Name, s.Len())
	return s
}

func (s *Scene) initViewport() {
	s.viewport = NewViewport(0, 0, s.cfg.Width, s.cfg.Height)
	s.viewport.Z = ZViewport
}

func (s *Scene) initBackground() {
	name := path.Join(s.GraphicsFolder(), s.GenderedFilename(s.cfg.BackgroundFilename))
	var img *ebiten.Image
	if s.cfg.Assets != nil {
		img, _ = s.cfg.Assets.Resolve(name)
	}
	if img == nil {
		debugLog("scene %q has no background %q", s.cfg.Name, name)
	}
	s.background = s.Add("background", func(*Container) Sprite {
		n := NewPlane("background", img, s.cfg.Width, s.cfg.Height)
		n.SetZ(ZBackground)
		return n
	}).(*Node)
}

func (s *Scene) initMessageBoxes() {
	c := s.cfg.Config
	s.messageBox = NewTextWindow("message_box", s.cfg.Font, s.skin, s.cfg.Width, c.MessageLines, c.TextSpeed)
	s.messageBox.SetZ(ZMessageBox)
	BottomLeftLines(s.messageBox, c.MessageLines, s.cfg.Width, s.cfg.Height)
	s.Own(s.messageBox)

	s.speechBox = NewTextWindow("speech_box", s.cfg.Font, s.skin, s.cfg.Width, c.MessageLines, c.TextSpeed)
	s.speechBox.SetZ(ZSpeechBox)
	BottomLeftLines(s.speechBox, c.MessageLines, s.cfg.Width, s.cfg.Height)
	s.Own(s.speechBox)
}

// Name returns the scene name.
func (s *Scene) Name() string { return s.cfg.Name }

// Config returns the scene's dialog configuration.
func (s *Scene) Config() *Config { return s.cfg.Config }

// Size returns the screen size.
func (s *Scene) Size() (width, height int) { return s.cfg.Width, s.cfg.Height }

// Input returns the scene's input.
func (s *Scene) Input() Input { return s.cfg.Input }

// Sound returns the scene's sound player.
func (s *Scene) Sound() SoundPlayer { return s.cfg.Sound }

// Skin returns the window skin dialogs use.
func (s *Scene) Skin() WindowSkin { return s.skin }

// Viewport returns the scene viewport.
func (s *Scene) Viewport() *Viewport { return s.viewport }

// Background returns the background plane.
func (s *Scene) Background() *Node { return s.background }

// Overlay returns the main text overlay.
func (s *Scene) Overlay() *Overlay { return s.overlay }

// OnOverlay returns the overlay registered under key. Panics with
// *UnknownKeyError if there is none.
func (s *Scene) OnOverlay(key string) *Overlay {
	o := s.Container.Overlay(key)
	if o == nil {
		panic(&UnknownKeyError{Owner: s.cfg.Name, Key: key})
	}
	return o
}

// MessageBox returns the bottom message window.
func (s *Scene) MessageBox() MessageWindow { return s.messageBox }

// SpeechBox returns the window dialogs speak through.
func (s *Scene) SpeechBox() MessageWindow { return s.speechBox }

// T translates str with the scene's Translator.
func (s *Scene) T(str string, vars ...any) string {
	return s.cfg.Translator.Get(str, vars...)
}

// --- Overlay drawing ---

// DrawText draws themed text on the main overlay.
func (s *Scene) DrawText(str string, x, y int, opts TextOptions) {
	s.overlay.DrawText(str, x, y, opts)
}

// DrawParagraphText draws wrapped text limited to lines lines.
func (s *Scene) DrawParagraphText(str string, x, y, width, lines int, theme string) {
	s.overlay.DrawParagraphText(str, x, y, width, lines, theme)
}

// DrawFormattedText draws wrapped text with no line limit.
func (s *Scene) DrawFormattedText(str string, x, y, width int, theme string) {
	s.overlay.DrawFormattedText(str, x, y, width, theme)
}

// DrawImage draws src of the image called name (resolved in the graphics
// folder) onto the main overlay. An empty src draws the whole image.
func (s *Scene) DrawImage(name string, x, y int, src image.Rectangle) {
	img := resolveOrPlaceholder(s.cfg.Assets, path.Join(s.GraphicsFolder(), name))
	s.overlay.DrawImage(img, x, y, src)
}

// DrawNumberFromImage draws s with a number strip image.
func (s *Scene) DrawNumberFromImage(img *ebiten.Image, str string, x, y int, align TextAlign) {
	s.overlay.DrawNumberFromImage(img, str, x, y, align)
}

// CropText shortens str to maxWidth on the main overlay.
func (s *Scene) CropText(str string, maxWidth int, cont string) string {
	return s.overlay.CropText(str, maxWidth, cont)
}

// --- Lifecycle ---

// FadeIn shows the scene and fades it in from black over Config.FadeFrames
// frames.
func (s *Scene) FadeIn() {
	s.SetColor(ColorBlack)
	s.SetVisible(true)
	s.fade(TweenAlpha(s.Container, 0, float32(s.cfg.Config.FadeFrames), ease.Linear))
	s.SetColor(ColorNone)
}

// FadeOut fades the scene to black, then hides it.
func (s *Scene) FadeOut() {
	s.fade(TweenColor(s.Container, ColorBlack, float32(s.cfg.Config.FadeFrames), ease.Linear))
	s.SetVisible(false)
}

func (s *Scene) fade(g *TweenGroup) {
	if s.cfg.Config.FadeFrames <= 0 {
		return
	}
	runFrames(g, s.cfg.Driver.AdvanceFrame)
}

// Dispose disposes every sprite, the modal windows and the viewport, and
// stops presenting the scene. Safe to call more than once.
func (s *Scene) Dispose() {
	if s.Container.IsDisposed() {
		return
	}
	if p, ok := s.cfg.Driver.(Presenter); ok {
		p.Withdraw(s)
	}
	s.Container.Dispose()
	s.viewport.Dispose()
}

// --- Frame ---

// Index is the scene's cursor position. Scenes without a cursor report 0.
func (s *Scene) Index() int { return 0 }

// RefreshOnIndexChanged is called by the navigation loop when Index changes.
func (s *Scene) RefreshOnIndexChanged(oldIndex int) {}

// UpdateInput maps this frame's input to a navigation command: cancel quits.
func (s *Scene) UpdateInput() Command {
	if s.cfg.Input.Triggered(ActionCancel) {
		return CommandQuit
	}
	return CommandNone
}

// AdvanceFrame shows one frame and polls input.
func (s *Scene) AdvanceFrame() {
	s.cfg.Driver.AdvanceFrame()
	s.cfg.Input.Update()
}

// UpdateVisuals advances every sprite and modal window one frame, then runs
// the OnUpdate hook.
func (s *Scene) UpdateVisuals() {
	if s.IsDisposed() {
		return
	}
	s.Container.Update(s.dt)
	if s.cfg.OnUpdate != nil {
		s.cfg.OnUpdate(s)
	}
}

// Update is UpdateVisuals.
func (s *Scene) Update() { s.UpdateVisuals() }

// Refresh redraws everything on the overlay.
func (s *Scene) Refresh() {
	s.RefreshOverlay()
	if s.cfg.OnRefresh != nil {
		s.cfg.OnRefresh(s)
	}
}

// RefreshOverlay clears the main overlay.
func (s *Scene) RefreshOverlay() {
	if s.overlay != nil && !s.overlay.IsDisposed() {
		s.overlay.Clear()
	}
}

// Draw renders the scene.
func (s *Scene) Draw(dst *ebiten.Image) { s.Container.Draw(dst) }

// frame is one dialog iteration: frame, input, visuals.
func (s *Scene) frame() {
	s.AdvanceFrame()
	s.updateVisuals()
}

// bindVisuals routes dialog frames through v, which embeds this scene.
func (s *Scene) bindVisuals(v Visuals) { s.visuals = v }

func (s *Scene) updateVisuals() {
	if s.visuals != nil {
		s.visuals.UpdateVisuals()
		return
	}
	s.UpdateVisuals()
}

// attach shows a temporary modal window until release is called.
func (s *Scene) attach(w Sprite) (release func()) {
	s.Own(w)
	return func() {
		s.Disown(w)
		w.Dispose()
	}
}

// modalZ is the depth of temporary dialog windows.
func (s *Scene) modalZ() int { return s.viewport.Z + 1 }
