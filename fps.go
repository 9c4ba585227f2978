package arbor

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// ZTop draws above everything else, including modal windows.
const ZTop = math.MaxInt32

// AddFPSDisplay adds a node at (x, y) showing the current FPS and TPS. The
// text is redrawn about every half second. It is not recorded, so it stays
// put when the container moves; call RecordOffset to change that.
func (c *Container) AddFPSDisplay(key string, x, y int) *Node {
	return c.Add(key, func(*Container) Sprite {
		// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
		img := ebiten.NewImage(100, 32)
		n := NewIconSprite(key, x, y, img)
		n.SetZ(ZTop)

		var since float64
		n.OnUpdate = func(dt float64) {
			since += dt
			if since < 0.5 {
				return
			}
			since = 0
			img.Clear()
			img.Fill(color.RGBA{0, 0, 0, 128})
			ebitenutil.DebugPrint(img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
		}
		return n
	}).(*Node)
}
