package pinchzoom

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// statusRefresh is how often the overlay text is rebuilt.
const statusRefresh = 500 * time.Millisecond

// StatusOverlay draws FPS, TPS and the controller state in the top-left
// corner of the screen. The text is refreshed every ~0.5 seconds.
type StatusOverlay struct {
	clock   Clock
	img     *ebiten.Image
	last    time.Time
	text    string
	started bool
}

// NewStatusOverlay creates an overlay. A nil clock uses SystemClock.
func NewStatusOverlay(clock Clock) *StatusOverlay {
	if clock == nil {
		clock = SystemClock{}
	}
	return &StatusOverlay{clock: clock}
}

// Draw refreshes the text when due and draws it on top of screen.
func (o *StatusOverlay) Draw(screen *ebiten.Image, c *Controller) {
	now := o.clock.Now()
	if !o.started || now.Sub(o.last) >= statusRefresh {
		o.started = true
		o.last = now
		o.text = statusText(c, ebiten.ActualFPS(), ebiten.ActualTPS())
		if o.img == nil {
			// 180x64 fits four DebugPrint lines.
			o.img = ebiten.NewImage(180, 64)
		}
		o.img.Clear()
		// Semi-transparent background for readability
		o.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(o.img, o.text)
	}
	screen.DrawImage(o.img, nil)
}

// Text returns the last rendered text.
func (o *StatusOverlay) Text() string { return o.text }

func statusText(c *Controller, fps, tps float64) string {
	off := c.Offset()
	return fmt.Sprintf("FPS: %.1f  TPS: %.1f\nzoom: %.2f\noffset: %.0f, %.0f\nstate: %s",
		fps, tps, c.ZoomFactor(), off.X, off.Y, c.State())
}
