package app

import "github.com/phanxgames/lightbox"

// Chrome dimensions in screen pixels.
const (
	captionHeight = 70
	arrowWidth    = 64
	arrowHeight   = 96
	closeSize     = 48
	chromeMargin  = 12
)

// screenLayout measures the window for the viewer. The viewport is the
// window minus the caption bar; the content is the current image fitted
// inside it.
type screenLayout struct {
	width, height int
	image         lightbox.Size
}

var _ lightbox.Layout = (*screenLayout)(nil)

// ViewportRect implements lightbox.Layout.
func (l *screenLayout) ViewportRect() lightbox.Rect {
	h := l.height - captionHeight
	if h < 0 {
		h = 0
	}
	return lightbox.Rect{Width: float64(l.width), Height: float64(h)}
}

// ContentSize implements lightbox.Layout.
func (l *screenLayout) ContentSize() lightbox.Size {
	return lightbox.FitContain(l.image, l.ViewportRect().Size())
}

// captionRect is the bar under the viewport holding the item name.
func (l *screenLayout) captionRect() lightbox.Rect {
	vp := l.ViewportRect()
	return lightbox.Rect{Y: vp.Height, Width: vp.Width, Height: float64(l.height) - vp.Height}
}

func (l *screenLayout) leftArrowRect() lightbox.Rect {
	vp := l.ViewportRect()
	return lightbox.Rect{
		X:      chromeMargin,
		Y:      vp.Height/2 - arrowHeight/2,
		Width:  arrowWidth,
		Height: arrowHeight,
	}
}

func (l *screenLayout) rightArrowRect() lightbox.Rect {
	vp := l.ViewportRect()
	return lightbox.Rect{
		X:      vp.Width - chromeMargin - arrowWidth,
		Y:      vp.Height/2 - arrowHeight/2,
		Width:  arrowWidth,
		Height: arrowHeight,
	}
}

func (l *screenLayout) closeRect() lightbox.Rect {
	vp := l.ViewportRect()
	return lightbox.Rect{
		X:      vp.Width - chromeMargin - closeSize,
		Y:      chromeMargin,
		Width:  closeSize,
		Height: closeSize,
	}
}

// hotspot is an on-screen control.
type hotspot uint8

const (
	hotspotNone hotspot = iota
	hotspotPrevious
	hotspotNext
	hotspotClose
)

// hitTest returns the control under (x, y). Hidden arrows do not respond.
func (l *screenLayout) hitTest(x, y float64, v *lightbox.Viewer) hotspot {
	if !v.Open() {
		return hotspotNone
	}
	switch {
	case l.closeRect().Contains(x, y):
		return hotspotClose
	case v.ShowLeftArrow() && l.leftArrowRect().Contains(x, y):
		return hotspotPrevious
	case v.ShowRightArrow() && l.rightArrowRect().Contains(x, y):
		return hotspotNext
	}
	return hotspotNone
}
