package app

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/lightbox"
)

// overlayRefresh is how often the debug text is rebuilt, in seconds.
const overlayRefresh = 0.5

// overlay is the FPS and viewer-state panel toggled with F1.
type overlay struct {
	visible bool
	elapsed float64
	text    string
}

// Update rebuilds the text every overlayRefresh seconds.
func (o *overlay) Update(dt float64, s lightbox.State, fps, tps float64) {
	if !o.visible {
		return
	}
	o.elapsed += dt
	if o.text != "" && o.elapsed < overlayRefresh {
		return
	}
	o.elapsed = 0
	o.text = overlayText(s, fps, tps)
}

// Toggle shows or hides the panel. Showing it refreshes immediately.
func (o *overlay) Toggle() {
	o.visible = !o.visible
	o.text = ""
	o.elapsed = 0
}

func (o *overlay) Draw(screen *ebiten.Image) {
	if !o.visible || o.text == "" {
		return
	}
	lines := strings.Count(o.text, "\n") + 1
	// Semi-transparent background for readability
	vector.DrawFilledRect(screen, 4, 4, 220, float32(lines*16+8), color.RGBA{0, 0, 0, 160}, false)
	ebitenutil.DebugPrintAt(screen, o.text, 8, 8)
}

func overlayText(s lightbox.State, fps, tps float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "FPS: %.1f\nTPS: %.1f\n", fps, tps)
	fmt.Fprintf(&b, "scale: %.3f\n", s.Scale)
	fmt.Fprintf(&b, "pan: %.1f, %.1f\n", s.PanX, s.PanY)
	fmt.Fprintf(&b, "slide: %.1f\n", s.SlideX)
	fmt.Fprintf(&b, "gesture: %s\n", s.Gesture)
	fmt.Fprintf(&b, "cursor: %s", s.Cursor)
	if s.DisableTouch {
		b.WriteString("\ntouch: disabled")
	}
	return b.String()
}
