package arbor

import (
	"image/color"
	"io/fs"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// AssetResolver maps a logical image name ("graphics/title/bg") to pixels.
// Names never carry a file extension.
type AssetResolver interface {
	Resolve(name string) (*ebiten.Image, bool)
}

// AssetResolverFunc adapts a function to AssetResolver.
type AssetResolverFunc func(name string) (*ebiten.Image, bool)

// Resolve calls f(name).
func (f AssetResolverFunc) Resolve(name string) (*ebiten.Image, bool) { return f(name) }

// imageExtensions are tried in order when resolving a name against a file system.
var imageExtensions = []string{".png", ".jpg", ".jpeg", ".gif"}

// FSAssets resolves names to image files in a file system, caching decoded
// images for the lifetime of the resolver.
type FSAssets struct {
	fsys  fs.FS
	cache map[string]*ebiten.Image
}

// NewFSAssets creates a resolver reading from fsys (for example an embed.FS
// or os.DirFS).
func NewFSAssets(fsys fs.FS) *FSAssets {
	return &FSAssets{fsys: fsys, cache: make(map[string]*ebiten.Image)}
}

// Resolve loads name, trying each supported extension.
func (a *FSAssets) Resolve(name string) (*ebiten.Image, bool) {
	name = strings.TrimPrefix(path.Clean(name), "/")
	if img, ok := a.cache[name]; ok {
		return img, img != nil
	}
	for _, ext := range imageExtensions {
		p := name + ext
		if _, err := fs.Stat(a.fsys, p); err != nil {
			continue
		}
		img, _, err := ebitenutil.NewImageFromFileSystem(a.fsys, p)
		if err != nil {
			debugLog("decode %q: %v", p, err)
			break
		}
		a.cache[name] = img
		return img, true
	}
	a.cache[name] = nil
	return nil, false
}

// MultiResolver tries each resolver in order.
type MultiResolver []AssetResolver

// Resolve returns the first hit.
func (m MultiResolver) Resolve(name string) (*ebiten.Image, bool) {
	for _, r := range m {
		if r == nil {
			continue
		}
		if img, ok := r.Resolve(name); ok {
			return img, true
		}
	}
	return nil, false
}

// magentaImage is created lazily; arbor is single-threaded.
var magentaImage *ebiten.Image

func ensureMagentaImage() *ebiten.Image {
	if magentaImage == nil {
		magentaImage = ebiten.NewImage(1, 1)
		magentaImage.Fill(color.RGBA{R: 255, G: 0, B: 255, A: 255})
	}
	return magentaImage
}

// resolveOrPlaceholder resolves name, falling back to a 1x1 magenta image
// and a debug warning when it is missing.
func resolveOrPlaceholder(r AssetResolver, name string) *ebiten.Image {
	if r != nil {
		if img, ok := r.Resolve(name); ok {
			return img
		}
	}
	debugLog("asset %q not found, using magenta placeholder", name)
	return ensureMagentaImage()
}

// hasAsset reports whether r can resolve name.
func hasAsset(r AssetResolver, name string) bool {
	if r == nil {
		return false
	}
	_, ok := r.Resolve(name)
	return ok
}
