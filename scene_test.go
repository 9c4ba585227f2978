package arbor

import (
	"errors"
	"slices"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// recordingSound records the sound effects played.
type recordingSound struct {
	played []string
}

func (s *recordingSound) PlayDecision() { s.played = append(s.played, "decision") }
func (s *recordingSound) PlayCancel()   { s.played = append(s.played, "cancel") }
func (s *recordingSound) PlayCursor()   { s.played = append(s.played, "cursor") }

// presentingDriver is a StepDriver that also tracks presented drawables.
type presentingDriver struct {
	StepDriver
	presented []Drawable
}

func (d *presentingDriver) Present(dr Drawable) { d.presented = append(d.presented, dr) }

func (d *presentingDriver) Withdraw(dr Drawable) {
	d.presented = slices.DeleteFunc(d.presented, func(o Drawable) bool { return o == dr })
}

type testScene struct {
	*Scene
	driver *StepDriver
	input  *ScriptedInput
	sound  *recordingSound
}

// newTestScene builds a 320x240 scene with instant text, no fades and a
// fixed-width font. mod, when set, adjusts the config first.
func newTestScene(mod func(cfg *SceneConfig)) *testScene {
	conf := DefaultConfig()
	conf.TextSpeed = 0
	conf.FadeFrames = 0
	ts := &testScene{
		driver: &StepDriver{MaxFrames: 200},
		input:  NewScriptedInput(),
		sound:  &recordingSound{},
	}
	cfg := SceneConfig{
		Name:          "test",
		Driver:        ts.driver,
		Input:         ts.input,
		Font:          fixedFont{},
		Sound:         ts.sound,
		CanvasFactory: newRecordingCanvas,
		Width:         320,
		Height:        240,
		Config:        &conf,
	}
	if mod != nil {
		mod(&cfg)
	}
	ts.Scene = NewScene(cfg)
	return ts
}

func TestNewSceneLayers(t *testing.T) {
	s := newTestScene(nil)

	if got := s.Keys(); !slices.Equal(got, []string{"background", "overlay"}) {
		t.Errorf("Keys() = %v, want [background overlay]", got)
	}
	if z := s.Background().Z(); z != ZBackground {
		t.Errorf("background Z = %d, want %d", z, ZBackground)
	}
	if z := s.Overlay().Z(); z != ZOverlay {
		t.Errorf("overlay Z = %d, want %d", z, ZOverlay)
	}
	if z := s.MessageBox().Z(); z != ZMessageBox {
		t.Errorf("message box Z = %d, want %d", z, ZMessageBox)
	}
	if z := s.SpeechBox().Z(); z != ZSpeechBox {
		t.Errorf("speech box Z = %d, want %d", z, ZSpeechBox)
	}
	if z := s.Viewport().Z; z != ZViewport {
		t.Errorf("viewport Z = %d, want %d", z, ZViewport)
	}
	box := s.SpeechBox()
	if box.Visible() {
		t.Error("speech box should start hidden")
	}
	// Two 10px lines plus 12px padding on each side.
	if box.Width() != 320 || box.Height() != 44 {
		t.Errorf("speech box size = %dx%d, want 320x44", box.Width(), box.Height())
	}
	if box.X() != 0 || box.Y() != 196 {
		t.Errorf("speech box at (%d, %d), want (0, 196)", box.X(), box.Y())
	}
	if _, ok := s.OffsetOf("background"); !ok {
		t.Error("background offset should be recorded")
	}
}

func TestNewSceneDefaults(t *testing.T) {
	s := NewScene(SceneConfig{Font: fixedFont{}, CanvasFactory: newRecordingCanvas})
	if w, h := s.Size(); w != DefaultScreenWidth || h != DefaultScreenHeight {
		t.Errorf("Size() = %dx%d, want %dx%d", w, h, DefaultScreenWidth, DefaultScreenHeight)
	}
	if s.Name() != "scene" {
		t.Errorf("Name() = %q, want %q", s.Name(), "scene")
	}
	if s.Config().FadeFrames != DefaultConfig().FadeFrames {
		t.Errorf("FadeFrames = %d, want default", s.Config().FadeFrames)
	}
	if got := s.T("Yes"); got != "Yes" {
		t.Errorf("T(Yes) = %q, want Yes", got)
	}
}

func TestSceneBackgroundFilename(t *testing.T) {
	var asked []string
	assets := AssetResolverFunc(func(name string) (*ebiten.Image, bool) {
		asked = append(asked, name)
		return nil, false
	})
	newTestScene(func(cfg *SceneConfig) {
		cfg.Assets = assets
		cfg.GraphicsFolder = "bag"
		cfg.Female = true
	})
	want := []string{"graphics/ui/bag/bg_f", "graphics/ui/bag/bg"}
	if !slices.Equal(asked, want) {
		t.Errorf("resolved %v, want %v", asked, want)
	}
}

func TestSceneInitSpritesRecorded(t *testing.T) {
	var icon *testSprite
	s := newTestScene(func(cfg *SceneConfig) {
		cfg.OnInitSprites = func(s *Scene) {
			icon = s.Add("icon", spriteAt(40, 50, 3)).(*testSprite)
		}
	})
	s.SetPosition(10, 20)
	if icon.X() != 50 || icon.Y() != 70 {
		t.Errorf("icon at (%d, %d), want (50, 70)", icon.X(), icon.Y())
	}
	// Modal windows are owned and keep their absolute position.
	if box := s.SpeechBox(); box.X() != 0 || box.Y() != 196 {
		t.Errorf("speech box moved to (%d, %d)", box.X(), box.Y())
	}
}

func TestSceneRefresh(t *testing.T) {
	refreshes := 0
	s := newTestScene(func(cfg *SceneConfig) {
		cfg.OnRefresh = func(s *Scene) {
			refreshes++
			s.DrawText("Potion", 8, 8, TextOptions{})
		}
	})
	if refreshes != 1 {
		t.Fatalf("refreshes after NewScene = %d, want 1", refreshes)
	}
	s.Refresh()
	calls := s.Overlay().Canvas().(*recordingCanvas).calls
	ops := make([]string, len(calls))
	for i, c := range calls {
		ops[i] = c.op
	}
	if want := []string{"clear", "text", "clear", "text"}; !slices.Equal(ops, want) {
		t.Errorf("canvas ops = %v, want %v", ops, want)
	}
}

func TestSceneOnOverlay(t *testing.T) {
	s := newTestScene(nil)
	if s.OnOverlay("overlay") != s.Overlay() {
		t.Error("OnOverlay(overlay) should return the main overlay")
	}
	r := expectPanic(t, func() { s.OnOverlay("missing") })
	var uk *UnknownKeyError
	if err, ok := r.(error); !ok || !errors.As(err, &uk) {
		t.Fatalf("panic = %v, want *UnknownKeyError", r)
	}
}

func TestSceneUpdateInput(t *testing.T) {
	s := newTestScene(nil)
	s.input.Press(ActionConfirm).Press(ActionCancel)

	s.AdvanceFrame()
	if cmd := s.UpdateInput(); cmd != CommandNone {
		t.Errorf("UpdateInput() on confirm = %q, want none", cmd)
	}
	s.AdvanceFrame()
	if cmd := s.UpdateInput(); cmd != CommandQuit {
		t.Errorf("UpdateInput() on cancel = %q, want %q", cmd, CommandQuit)
	}
	if s.driver.Frames != 2 {
		t.Errorf("frames = %d, want 2", s.driver.Frames)
	}
}

func TestSceneUpdateVisualsHook(t *testing.T) {
	updates := 0
	var icon *testSprite
	s := newTestScene(func(cfg *SceneConfig) {
		cfg.OnInitSprites = func(s *Scene) {
			icon = s.Add("icon", spriteAt(0, 0, 0)).(*testSprite)
		}
		cfg.OnUpdate = func(*Scene) { updates++ }
	})
	s.UpdateVisuals()
	s.Update()
	if updates != 2 || icon.updateCalls != 2 {
		t.Errorf("updates = %d, icon updates = %d, want 2 and 2", updates, icon.updateCalls)
	}
}

func TestSceneFade(t *testing.T) {
	s := newTestScene(func(cfg *SceneConfig) {
		cfg.Config.FadeFrames = 4
	})
	s.SetVisible(false)

	s.FadeIn()
	if s.driver.Frames != 4 {
		t.Errorf("FadeIn frames = %d, want 4", s.driver.Frames)
	}
	if !s.Visible() || s.Background().Color() != ColorNone {
		t.Errorf("after FadeIn visible = %v, color = %v", s.Visible(), s.Background().Color())
	}

	s.FadeOut()
	if s.driver.Frames != 8 {
		t.Errorf("FadeOut frames = %d, want 8", s.driver.Frames)
	}
	if s.Visible() {
		t.Error("scene should be hidden after FadeOut")
	}
	if c := s.Background().Color(); c != ColorBlack {
		t.Errorf("background color = %v, want black", c)
	}
}

func TestSceneFadeWithoutFrames(t *testing.T) {
	s := newTestScene(nil)
	s.FadeIn()
	s.FadeOut()
	if s.driver.Frames != 0 {
		t.Errorf("frames = %d, want 0", s.driver.Frames)
	}
	if s.Visible() {
		t.Error("scene should be hidden after FadeOut")
	}
}

func TestSceneDispose(t *testing.T) {
	d := &presentingDriver{}
	s := newTestScene(func(cfg *SceneConfig) { cfg.Driver = d })
	if len(d.presented) != 1 {
		t.Fatalf("presented = %d, want 1", len(d.presented))
	}
	box := s.SpeechBox()

	s.Dispose()
	s.Dispose()

	if len(d.presented) != 0 {
		t.Errorf("presented after Dispose = %d, want 0", len(d.presented))
	}
	if !s.IsDisposed() || !box.IsDisposed() || !s.Viewport().IsDisposed() {
		t.Error("scene, speech box and viewport should all be disposed")
	}
	s.UpdateVisuals()
}

func TestSceneCropText(t *testing.T) {
	s := newTestScene(nil)
	if got := s.CropText("Hello World", 24, "…"); got != "He…" {
		t.Errorf("CropText = %q, want %q", got, "He…")
	}
}
