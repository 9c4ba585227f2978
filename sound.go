package arbor

import (
	"bytes"
	"fmt"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// SoundPlayer plays the menu sound effects dialogs use.
type SoundPlayer interface {
	PlayDecision()
	PlayCancel()
	PlayCursor()
}

// NopSound is a silent SoundPlayer.
type NopSound struct{}

func (NopSound) PlayDecision() {}
func (NopSound) PlayCancel()   {}
func (NopSound) PlayCursor()   {}

// SE names a menu sound effect.
type SE uint8

const (
	SEDecision SE = iota
	SECancel
	SECursor
)

// SEFiles lists the WAV files of each sound effect within a file system.
// Empty entries stay silent.
type SEFiles struct {
	Decision string `yaml:"decision"`
	Cancel   string `yaml:"cancel"`
	Cursor   string `yaml:"cursor"`
}

// SEPlayer plays WAV sound effects through an Ebitengine audio context.
type SEPlayer struct {
	players map[SE]*audio.Player
	volume  float64
}

// LoadSEPlayer decodes the given WAV files. ctx is typically
// audio.NewContext(44100), created once per process.
func LoadSEPlayer(ctx *audio.Context, fsys fs.FS, files SEFiles) (*SEPlayer, error) {
	p := &SEPlayer{players: make(map[SE]*audio.Player), volume: 1}
	for se, name := range map[SE]string{SEDecision: files.Decision, SECancel: files.Cancel, SECursor: files.Cursor} {
		if name == "" {
			continue
		}
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("arbor: read sound %q: %w", name, err)
		}
		stream, err := wav.DecodeF32(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("arbor: decode sound %q: %w", name, err)
		}
		player, err := ctx.NewPlayerF32(stream)
		if err != nil {
			return nil, fmt.Errorf("arbor: create player for %q: %w", name, err)
		}
		p.players[se] = player
	}
	return p, nil
}

// SetVolume sets the volume of every effect (0 to 1).
func (p *SEPlayer) SetVolume(v float64) {
	p.volume = v
	for _, pl := range p.players {
		pl.SetVolume(v)
	}
}

// Play rewinds and plays se.
func (p *SEPlayer) Play(se SE) {
	pl, ok := p.players[se]
	if !ok {
		return
	}
	if err := pl.Rewind(); err != nil {
		debugLog("rewind sound %d: %v", se, err)
	}
	pl.Play()
}

func (p *SEPlayer) PlayDecision() { p.Play(SEDecision) }
func (p *SEPlayer) PlayCancel()   { p.Play(SECancel) }
func (p *SEPlayer) PlayCursor()   { p.Play(SECursor) }
