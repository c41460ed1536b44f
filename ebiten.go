package lightbox

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// mousePointerID is the pointer ID reported for the ebiten mouse.
const mousePointerID = 1

// keyBindings maps ebiten keys to the DOM code/key pairs the viewer expects.
var keyBindings = []struct {
	key   ebiten.Key
	event KeyEvent
}{
	{ebiten.KeyEscape, KeyEvent{Code: KeyEscape, Key: KeyEscape}},
	{ebiten.KeyArrowLeft, KeyEvent{Code: KeyArrowLeft, Key: KeyArrowLeft}},
	{ebiten.KeyArrowRight, KeyEvent{Code: KeyArrowRight, Key: KeyArrowRight}},
}

// EbitenInput polls ebiten's mouse, wheel, keyboard and touch state once per
// tick and dispatches the corresponding events to a Viewer.
type EbitenInput struct {
	viewer *Viewer

	// Intercept is consulted on primary presses before the viewer sees them.
	// Returning true consumes the press (used for on-screen buttons).
	Intercept func(x, y float64) bool

	lastX, lastY int

	swiping    bool
	swipeTouch ebiten.TouchID
	lastTouchX int
	touchBuf   []ebiten.TouchID
}

// NewEbitenInput creates an input adapter for v.
func NewEbitenInput(v *Viewer) *EbitenInput {
	return &EbitenInput{viewer: v}
}

// Poll reads this tick's input. Call it from ebiten.Game.Update before
// Viewer.Update.
func (in *EbitenInput) Poll() {
	in.pollKeys()
	in.pollWheel()
	in.pollMouse()
	in.pollTouches()
}

func (in *EbitenInput) pollKeys() {
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			in.viewer.HandleKey(b.event)
		}
	}
}

// pollWheel converts ebiten's notch offsets (positive = up) into DOM-style
// pixel deltas (positive = down).
func (in *EbitenInput) pollWheel() {
	_, dy := ebiten.Wheel()
	if dy == 0 {
		return
	}
	mx, my := ebiten.CursorPosition()
	if !in.inViewport(float64(mx), float64(my)) {
		return
	}
	in.viewer.HandleWheel(WheelEvent{
		DeltaY: -dy * in.viewer.wheelLinePixels,
		X:      float64(mx),
		Y:      float64(my),
	})
}

func (in *EbitenInput) pollMouse() {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	ev := func(button MouseButton) PointerEvent {
		return PointerEvent{PointerID: mousePointerID, Type: PointerMouse, Button: button, X: x, Y: y}
	}

	if mx != in.lastX || my != in.lastY {
		in.viewer.HandlePointerMove(ev(MouseButtonPrimary))
		in.lastX, in.lastY = mx, my
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if (in.Intercept == nil || !in.Intercept(x, y)) && in.inViewport(x, y) {
			in.viewer.HandlePointerDown(ev(MouseButtonPrimary))
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) && in.inViewport(x, y) {
		in.viewer.HandlePointerDown(ev(MouseButtonSecondary))
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		in.viewer.HandlePointerUp(ev(MouseButtonPrimary))
	}
}

// pollTouches follows the first finger down as the swipe touch, like the
// DOM's touches[0].
func (in *EbitenInput) pollTouches() {
	if in.swiping {
		if inpututil.IsTouchJustReleased(in.swipeTouch) {
			in.swiping = false
			in.viewer.HandleTouchEnd()
			return
		}
		tx, _ := ebiten.TouchPosition(in.swipeTouch)
		if tx != in.lastTouchX {
			in.lastTouchX = tx
			in.viewer.HandleTouchMove(float64(tx))
		}
		return
	}

	in.touchBuf = inpututil.AppendJustPressedTouchIDs(in.touchBuf[:0])
	if len(in.touchBuf) == 0 {
		return
	}
	tx, ty := ebiten.TouchPosition(in.touchBuf[0])
	if !in.inViewport(float64(tx), float64(ty)) {
		return
	}
	in.swiping = true
	in.swipeTouch = in.touchBuf[0]
	in.lastTouchX = tx
	in.viewer.HandleTouchStart(float64(tx))
}

// inViewport reports whether a press or wheel at (x, y) belongs to the
// viewer. Chrome outside the viewport, such as a caption bar, does not.
// Moves and releases of a session already started are never filtered.
func (in *EbitenInput) inViewport(x, y float64) bool {
	if in.viewer.layout == nil {
		return true
	}
	return in.viewer.layout.ViewportRect().Contains(x, y)
}

// --- Rendering ---

// FitContain returns the size of an image scaled to fit inside the viewport
// while keeping its aspect ratio. Images are never enlarged.
func FitContain(img, viewport Size) Size {
	if img.Empty() || viewport.Empty() {
		return Size{}
	}
	s := math.Min(1, math.Min(viewport.Width/img.Width, viewport.Height/img.Height))
	return Size{Width: img.Width * s, Height: img.Height * s}
}

// ContentMatrix returns the affine matrix placing an image of size img on
// screen: fitted to the viewport, centered, then zoomed, panned and slid by t.
func ContentMatrix(img Size, viewport Rect, t Transform) [6]float64 {
	fit := FitContain(img, viewport.Size())
	if fit.Empty() {
		return identityTransform
	}
	c := viewport.Center()
	m := translateAffine(-img.Width/2, -img.Height/2)
	m = multiplyAffine(scaleAffine(fit.Width/img.Width), m)
	m = multiplyAffine(t.Matrix(), m)
	m = multiplyAffine(translateAffine(c.X, c.Y), m)
	return m
}

// GeoM converts an affine matrix [a, b, c, d, tx, ty] to an ebiten.GeoM.
func GeoM(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

// Renderer draws the media image of a viewer into the viewport.
type Renderer struct {
	// Filter used when the image is scaled.
	Filter ebiten.Filter
}

// NewRenderer creates a Renderer with linear filtering.
func NewRenderer() *Renderer {
	return &Renderer{Filter: ebiten.FilterLinear}
}

// Draw renders img into the viewport rectangle of dst using t. Content
// outside the viewport is clipped.
func (r *Renderer) Draw(dst, img *ebiten.Image, viewport Rect, t Transform) {
	if img == nil || viewport.Width <= 0 || viewport.Height <= 0 {
		return
	}
	b := img.Bounds()
	size := Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
	m := ContentMatrix(size, viewport, t)

	// Sub-images keep the parent's coordinate space, so m applies unchanged.
	clip := dst.SubImage(image.Rect(
		int(viewport.X), int(viewport.Y),
		int(viewport.X+viewport.Width), int(viewport.Y+viewport.Height),
	)).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM = GeoM(m)
	op.Filter = r.Filter
	clip.DrawImage(img, op)
}
