package app

import (
	"image"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phanxgames/lightbox"
)

func openViewer(l *screenLayout) *lightbox.Viewer {
	v := lightbox.New(nil, lightbox.Options{Layout: l})
	v.SetZoomable(true)
	v.SetOpen(true)
	v.Update()
	return v
}

func TestScreenLayout(t *testing.T) {
	l := &screenLayout{width: 1000, height: 770, image: lightbox.Size{Width: 2000, Height: 1000}}

	assert.Equal(t, lightbox.Rect{Width: 1000, Height: 700}, l.ViewportRect())
	assert.Equal(t, lightbox.Size{Width: 1000, Height: 500}, l.ContentSize())
	assert.Equal(t, lightbox.Rect{Y: 700, Width: 1000, Height: 70}, l.captionRect())

	small := &screenLayout{width: 200, height: 50}
	assert.Equal(t, 0.0, small.ViewportRect().Height, "caption taller than window")
	assert.True(t, small.ContentSize().Empty())
}

func TestHitTest(t *testing.T) {
	l := &screenLayout{width: 1000, height: 770, image: lightbox.Size{Width: 100, Height: 100}}
	v := openViewer(l)

	left := l.leftArrowRect().Center()
	right := l.rightArrowRect().Center()
	closeBtn := l.closeRect().Center()

	assert.Equal(t, hotspotPrevious, l.hitTest(left.X, left.Y, v))
	assert.Equal(t, hotspotNext, l.hitTest(right.X, right.Y, v))
	assert.Equal(t, hotspotClose, l.hitTest(closeBtn.X, closeBtn.Y, v))
	assert.Equal(t, hotspotNone, l.hitTest(500, 350, v))

	v.SetHideLeftArrow(true)
	assert.Equal(t, hotspotNone, l.hitTest(left.X, left.Y, v), "hidden arrow")

	v.Close()
	assert.Equal(t, hotspotNone, l.hitTest(closeBtn.X, closeBtn.Y, v), "closed viewer")
}

func TestCursorShape(t *testing.T) {
	assert.Equal(t, ebiten.CursorShapeDefault, cursorShape(lightbox.CursorDefault))
	assert.Equal(t, ebiten.CursorShapePointer, cursorShape(lightbox.CursorGrab))
	assert.Equal(t, ebiten.CursorShapeMove, cursorShape(lightbox.CursorGrabbing))
}

func TestOverlay(t *testing.T) {
	var o overlay
	s := lightbox.State{Scale: 2, PanX: 10, Gesture: "panning", Cursor: "grabbing"}

	o.Update(1, s, 60, 60)
	assert.Empty(t, o.text, "hidden overlay does not render")

	o.Toggle()
	o.Update(0.016, s, 59.9, 60)
	assert.Contains(t, o.text, "FPS: 59.9")
	assert.Contains(t, o.text, "scale: 2.000")
	assert.Contains(t, o.text, "gesture: panning")
	assert.NotContains(t, o.text, "touch: disabled")

	s.Scale = 3
	o.Update(0.1, s, 60, 60)
	assert.Contains(t, o.text, "scale: 2.000", "refresh is throttled")
	o.Update(0.5, s, 60, 60)
	assert.Contains(t, o.text, "scale: 3.000")

	s.DisableTouch = true
	assert.Contains(t, overlayText(s, 0, 0), "touch: disabled")
}

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"zoomed", "zoomed"},
		{"after-swipe", "after-swipe"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"special!@#", "special___"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeLabel(tt.in), "sanitizeLabel(%q)", tt.in)
	}
}

func TestUnpremultiply(t *testing.T) {
	pixels := []byte{
		100, 50, 0, 200, // half-ish alpha
		10, 20, 30, 255, // opaque
		0, 0, 0, 0, // transparent
	}
	img := unpremultiply(pixels, 3, 1)
	assert.Equal(t, []byte{127, 63, 0, 200}, img.Pix[0:4])
	assert.Equal(t, []byte{10, 20, 30, 255}, img.Pix[4:8])
	assert.Equal(t, []byte{0, 0, 0, 0}, img.Pix[8:12])
}

func TestScreenshotterWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	s := newScreenshotter(dir, zerolog.Nop())
	s.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

	s.Queue("zoomed in")
	s.Queue("zoomed in")
	s.Queue("end")
	require.Equal(t, 3, s.Pending())

	s.write(image.NewNRGBA(image.Rect(0, 0, 4, 4)))
	assert.Equal(t, 0, s.Pending())
	require.Len(t, s.written, 3)
	assert.Equal(t, filepath.Join(dir, "20260102_030405_zoomed_in.png"), s.written[0])
	assert.Equal(t, filepath.Join(dir, "20260102_030405_zoomed_in_1.png"), s.written[1])
	assert.Equal(t, filepath.Join(dir, "20260102_030405_end.png"), s.written[2])

	for _, p := range s.written {
		_, err := os.Stat(p)
		assert.NoError(t, err)
	}
}

func TestScreenshotterRepeatedLabelNeverOverwrites(t *testing.T) {
	dir := t.TempDir()
	s := newScreenshotter(dir, zerolog.Nop())
	s.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

	s.Queue("a")
	s.Queue("b")
	s.Queue("a")
	s.write(image.NewNRGBA(image.Rect(0, 0, 2, 2)))

	// A later flush in the same second continues the numbering.
	s.Queue("a")
	s.write(image.NewNRGBA(image.Rect(0, 0, 2, 2)))

	assert.Equal(t, []string{
		filepath.Join(dir, "20260102_030405_a.png"),
		filepath.Join(dir, "20260102_030405_b.png"),
		filepath.Join(dir, "20260102_030405_a_1.png"),
		filepath.Join(dir, "20260102_030405_a_2.png"),
	}, s.written)
}
