package arbor

import (
	"encoding/json"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// AtlasRegion is a named sub-rectangle of one atlas page.
type AtlasRegion struct {
	Page    int
	Rect    image.Rectangle
	Rotated bool // stored 90 degrees clockwise; not resolvable as a plain image
}

// Atlas is a TexturePacker sprite sheet. It implements AssetResolver by
// region name, so windows skins, arrows and icons can share one page.
type Atlas struct {
	// Pages contains the atlas page images indexed by page number.
	Pages   []*ebiten.Image
	regions map[string]AtlasRegion
}

// Region returns the region registered under name.
func (a *Atlas) Region(name string) (AtlasRegion, bool) {
	r, ok := a.regions[name]
	return r, ok
}

// Len returns the number of regions.
func (a *Atlas) Len() int { return len(a.regions) }

// Resolve returns the page sub-image for the region called name.
func (a *Atlas) Resolve(name string) (*ebiten.Image, bool) {
	r, ok := a.regions[name]
	if !ok {
		return nil, false
	}
	if r.Rotated {
		debugLog("atlas region %q is rotated and cannot be resolved", name)
		return nil, false
	}
	if r.Page < 0 || r.Page >= len(a.Pages) || a.Pages[r.Page] == nil {
		debugLog("atlas region %q references missing page %d", name, r.Page)
		return nil, false
	}
	return subImage(a.Pages[r.Page], r.Rect), true
}

// LoadAtlas parses TexturePacker JSON data and associates the given page images.
// Supports both the hash format (single "frames" object) and the array format
// ("textures" array with per-page frame lists).
func LoadAtlas(jsonData []byte, pages []*ebiten.Image) (*Atlas, error) {
	var probe struct {
		Frames   json.RawMessage `json:"frames"`
		Textures json.RawMessage `json:"textures"`
	}
	if err := json.Unmarshal(jsonData, &probe); err != nil {
		return nil, fmt.Errorf("arbor: failed to parse atlas JSON: %w", err)
	}

	atlas := &Atlas{
		Pages:   pages,
		regions: make(map[string]AtlasRegion),
	}

	switch {
	case probe.Textures != nil:
		var textures []struct {
			Frames map[string]atlasFrame `json:"frames"`
		}
		if err := json.Unmarshal(probe.Textures, &textures); err != nil {
			return nil, fmt.Errorf("arbor: failed to parse atlas textures array: %w", err)
		}
		for i, tex := range textures {
			atlas.addFrames(tex.Frames, i)
		}
	case probe.Frames != nil:
		var frames map[string]atlasFrame
		if err := json.Unmarshal(probe.Frames, &frames); err != nil {
			return nil, fmt.Errorf("arbor: failed to parse atlas frames: %w", err)
		}
		atlas.addFrames(frames, 0)
	default:
		return nil, fmt.Errorf("arbor: atlas JSON has neither \"frames\" nor \"textures\" key")
	}
	return atlas, nil
}

type atlasFrame struct {
	Frame struct {
		X int `json:"x"`
		Y int `json:"y"`
		W int `json:"w"`
		H int `json:"h"`
	} `json:"frame"`
	Rotated bool `json:"rotated"`
}

func (a *Atlas) addFrames(frames map[string]atlasFrame, page int) {
	for name, f := range frames {
		a.regions[name] = AtlasRegion{
			Page:    page,
			Rect:    image.Rect(f.Frame.X, f.Frame.Y, f.Frame.X+f.Frame.W, f.Frame.Y+f.Frame.H),
			Rotated: f.Rotated,
		}
	}
}
