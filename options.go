package lightbox

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Default tuning constants. The swipe threshold and zoom step are UI-feel
// values; keep them as they are.
const (
	DefaultZoomMin         = 1.0
	DefaultZoomMax         = 8.0
	DefaultZoomStep        = 0.0015 // wheel deltaY -> log scale
	DefaultZoomEpsilon     = 0.001  // scale changes below this are dropped
	DefaultSwipeThreshold  = 10.0   // pixels, strict inequality
	DefaultWheelLinePixels = 100.0  // deltaY per wheel notch for line-based wheels
	DefaultTransition      = 60 * time.Millisecond
)

// Options configures a Viewer. Zero-valued numeric fields fall back to the
// Default* constants.
type Options struct {
	// ID identifies the viewer in host notifications. A random UUID is
	// assigned when empty.
	ID string

	// ZoomMin is the fit scale and is always 1; other values are replaced.
	ZoomMin     float64
	ZoomMax     float64
	ZoomStep    float64
	ZoomEpsilon float64

	SwipeThreshold float64

	// WheelLinePixels converts line-based wheel offsets (ebiten reports
	// notches) into pixel deltas.
	WheelLinePixels float64

	// Transition is the duration of the displayed-transform smoothing.
	// Panning always bypasses it. Negative disables smoothing.
	Transition time.Duration

	// Layout measures the viewport and unscaled content. A nil Layout
	// disables wheel zoom and pan clamping.
	Layout Layout

	// Capture receives pointer capture requests. Optional.
	Capture PointerCapture

	// Logger receives debug-level gesture transitions. The zero Logger is
	// disabled.
	Logger zerolog.Logger
}

// DefaultOptions returns options populated with the default constants.
func DefaultOptions() Options {
	return Options{
		ZoomMin:         DefaultZoomMin,
		ZoomMax:         DefaultZoomMax,
		ZoomStep:        DefaultZoomStep,
		ZoomEpsilon:     DefaultZoomEpsilon,
		SwipeThreshold:  DefaultSwipeThreshold,
		WheelLinePixels: DefaultWheelLinePixels,
		Transition:      DefaultTransition,
	}
}

// withDefaults fills zero fields from DefaultOptions.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	o.ZoomMin = d.ZoomMin
	if o.ZoomMax <= 0 {
		o.ZoomMax = d.ZoomMax
	}
	if o.ZoomMax < o.ZoomMin {
		o.ZoomMax = o.ZoomMin
	}
	if o.ZoomStep == 0 {
		o.ZoomStep = d.ZoomStep
	}
	if o.ZoomEpsilon <= 0 {
		o.ZoomEpsilon = d.ZoomEpsilon
	}
	if o.SwipeThreshold <= 0 {
		o.SwipeThreshold = d.SwipeThreshold
	}
	if o.WheelLinePixels <= 0 {
		o.WheelLinePixels = d.WheelLinePixels
	}
	switch {
	case o.Transition == 0:
		o.Transition = d.Transition
	case o.Transition < 0:
		o.Transition = 0 // negative disables smoothing
	}
	return o
}
